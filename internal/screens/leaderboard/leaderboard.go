package leaderboard

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	lb "github.com/obrev/obrev/internal/leaderboard"
	"github.com/obrev/obrev/internal/progression"
	"github.com/obrev/obrev/internal/router"
	"github.com/obrev/obrev/internal/screen"
	"github.com/obrev/obrev/internal/ui/layout"
	"github.com/obrev/obrev/internal/ui/theme"
)

// LeaderboardScreen shows the weekly standings against the rival
// cohort.
type LeaderboardScreen struct {
	entries []lb.Entry
}

var _ screen.Screen = (*LeaderboardScreen)(nil)
var _ screen.KeyHintProvider = (*LeaderboardScreen)(nil)

// New computes standings once when the screen opens.
func New(prog *progression.Service) *LeaderboardScreen {
	var st progression.State
	if prog != nil {
		st = prog.State()
	}
	board := lb.New(rand.New(rand.NewSource(time.Now().UnixNano())))
	return &LeaderboardScreen{
		entries: board.Standings(st),
	}
}

func (s *LeaderboardScreen) Title() string {
	return "Leaderboard"
}

func (s *LeaderboardScreen) Init() tea.Cmd {
	return nil
}

func (s *LeaderboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LeaderboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *LeaderboardScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
			Render("This week's standings")))
	b.WriteString("\n\n")

	for _, e := range s.entries {
		medal := "  "
		switch e.Rank {
		case 1:
			medal = "🥇"
		case 2:
			medal = "🥈"
		case 3:
			medal = "🥉"
		}

		line := fmt.Sprintf("%s %2d.  %s %-16s  Lv %-2d  %6d XP  ★ %d",
			medal, e.Rank, e.Avatar, e.Name, e.Level, e.XP, e.Streak)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if e.IsYou {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
			line += "  ◂ you"
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	you := lb.YourRank(s.entries)
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("You are #%d of %d this week", you.Rank, len(s.entries)))))
	b.WriteString("\n")

	return b.String()
}
