package history

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/obrev/obrev/internal/content"
	"github.com/obrev/obrev/internal/router"
	"github.com/obrev/obrev/internal/screen"
	"github.com/obrev/obrev/internal/store"
	"github.com/obrev/obrev/internal/ui/layout"
	"github.com/obrev/obrev/internal/ui/theme"
)

// entry is one finished quiz or scenario, flattened for display.
type entry struct {
	Sequence  int64
	Timestamp time.Time
	Kind      string // "quiz" or "scenario"
	Label     string
	Score     int
	XP        int
	Extra     string
}

type historyLoadedMsg struct {
	Entries []entry
	Err     error
}

// HistoryScreen lists past quizzes and simulation runs, newest first.
type HistoryScreen struct {
	eventRepo store.EventRepo
	entries   []entry
	selected  int
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{eventRepo: eventRepo}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		quizzes, err := s.eventRepo.QueryQuizEvents(ctx, store.QueryOpts{Limit: 50})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		runs, err := s.eventRepo.QueryScenarioEvents(ctx, store.QueryOpts{Limit: 50})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		var entries []entry
		for _, q := range quizzes {
			label := q.ModuleID
			if mod := content.ModuleByID(q.ModuleID); mod != nil {
				label = mod.Title
			}
			entries = append(entries, entry{
				Sequence:  q.Sequence,
				Timestamp: q.Timestamp,
				Kind:      "quiz",
				Label:     label,
				Score:     q.Score,
				XP:        q.XPAwarded,
				Extra:     fmt.Sprintf("%d/%d correct", q.CorrectAnswers, q.TotalQuestions),
			})
		}
		for _, r := range runs {
			label := r.ScenarioID
			if def := content.ScenarioByID(r.ScenarioID); def != nil {
				label = def.Title
			}
			extra := "failed"
			if r.Success {
				extra = "passed"
			}
			if r.TimedOut {
				extra = "timed out"
			}
			entries = append(entries, entry{
				Sequence:  r.Sequence,
				Timestamp: r.Timestamp,
				Kind:      "scenario",
				Label:     label,
				Score:     r.Score,
				XP:        r.XPAwarded,
				Extra:     extra,
			})
		}

		// Interleave by global sequence, newest first.
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Sequence > entries[j].Sequence
		})

		return historyLoadedMsg{Entries: entries}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.entries = msg.Entries
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.entries)-1 {
				s.selected++
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.entries) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Nothing yet. Take a quiz or run a simulation!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, e := range s.entries {
		icon := "📝"
		if e.Kind == "scenario" {
			icon = "🚨"
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s %s  %s  %d%%  %s  +%d XP",
			prefix, icon, e.Timestamp.Format("Jan 02, 2006"), e.Label, e.Score, e.Extra, e.XP)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
