package modulemap

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/obrev/obrev/internal/content"
	"github.com/obrev/obrev/internal/progression"
	"github.com/obrev/obrev/internal/router"
	"github.com/obrev/obrev/internal/screen"
	"github.com/obrev/obrev/internal/ui/layout"
	"github.com/obrev/obrev/internal/ui/theme"
)

type rowKind int

const (
	rowModuleHeader rowKind = iota
	rowTopic
)

type row struct {
	kind   rowKind
	module *content.Module
	topic  *content.Topic
}

// PracticeFactory builds the practice screen for a chosen module/topic.
// When nil the map is browse-only.
type PracticeFactory func(moduleID, topicID string) screen.Screen

// ModuleMapScreen shows the curriculum with per-module progress and
// per-topic completion. With a PracticeFactory set, selecting a topic
// starts a quiz on it.
type ModuleMapScreen struct {
	prog         *progression.Service
	startQuiz    PracticeFactory
	rows         []row
	modules      []content.Module
	cursor       int
	scrollOffset int
	expanded     map[int]bool
}

var _ screen.Screen = (*ModuleMapScreen)(nil)
var _ screen.KeyHintProvider = (*ModuleMapScreen)(nil)

// New creates a new ModuleMapScreen.
func New(prog *progression.Service, startQuiz PracticeFactory) *ModuleMapScreen {
	modules := content.Modules()

	var rows []row
	for i := range modules {
		rows = append(rows, row{kind: rowModuleHeader, module: &modules[i]})
		for j := range modules[i].Topics {
			rows = append(rows, row{kind: rowTopic, module: &modules[i], topic: &modules[i].Topics[j]})
		}
	}

	s := &ModuleMapScreen{
		prog:      prog,
		startQuiz: startQuiz,
		rows:      rows,
		modules:   modules,
		expanded:  make(map[int]bool),
	}

	// Cursor starts on the first topic row.
	for i, r := range s.rows {
		if r.kind == rowTopic {
			s.cursor = i
			break
		}
	}

	return s
}

func (s *ModuleMapScreen) Title() string {
	if s.startQuiz != nil {
		return "Choose a Topic"
	}
	return "Module Map"
}

func (s *ModuleMapScreen) Init() tea.Cmd {
	return nil
}

func (s *ModuleMapScreen) KeyHints() []layout.KeyHint {
	action := "Details"
	if s.startQuiz != nil {
		action = "Start quiz"
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: action},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ModuleMapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		for i := s.cursor - 1; i >= 0; i-- {
			if s.rows[i].kind == rowTopic {
				s.cursor = i
				break
			}
		}
	case "down", "j":
		for i := s.cursor + 1; i < len(s.rows); i++ {
			if s.rows[i].kind == rowTopic {
				s.cursor = i
				break
			}
		}
	case "enter":
		r := s.rows[s.cursor]
		if r.kind != rowTopic {
			return s, nil
		}
		if s.startQuiz == nil {
			s.expanded[s.cursor] = !s.expanded[s.cursor]
			return s, nil
		}
		if s.prog != nil {
			s.prog.SetCurrentModule(r.module.ID)
			s.prog.SetCurrentTopic(r.topic.ID)
		}
		next := s.startQuiz(r.module.ID, r.topic.ID)
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: next}
		}
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	return s, nil
}

func (s *ModuleMapScreen) View(width, height int) string {
	var st progression.State
	if s.prog != nil {
		st = s.prog.State()
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, r := range s.rows {
		switch r.kind {
		case rowModuleHeader:
			pct := st.ModuleProgress[r.module.ID]
			header := fmt.Sprintf("%s  %s", r.module.Title, renderProgress(pct, 20))
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().
					Foreground(lipgloss.Color(r.module.Color)).
					Bold(true).
					Render(header)))
			b.WriteString("\n")

		case rowTopic:
			mark := "○"
			markStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
			if topicCompleted(st, r.module.ID, r.topic.ID) {
				mark = "●"
				markStyle = lipgloss.NewStyle().Foreground(theme.Success)
			}

			prefix := "  "
			if i == s.cursor {
				prefix = "▸ "
			}

			line := fmt.Sprintf("%s%s %s  (%d min)", prefix, markStyle.Render(mark), r.topic.Title, r.topic.EstimatedMins)

			style := lipgloss.NewStyle().Foreground(theme.Text)
			if i == s.cursor {
				style = style.Foreground(theme.Primary).Bold(true)
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
			b.WriteString("\n")

			if s.expanded[i] {
				for _, kp := range r.topic.KeyPoints {
					b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
						lipgloss.NewStyle().Foreground(theme.TextDim).Render("      · "+kp)))
					b.WriteString("\n")
				}
			}
		}
	}

	return b.String()
}

// renderProgress draws a compact bar like ▰▰▰▱▱ 60%.
func renderProgress(pct, cells int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := pct * cells / 100
	bar := strings.Repeat("▰", filled) + strings.Repeat("▱", cells-filled)
	return fmt.Sprintf("%s %d%%", bar, pct)
}

func topicCompleted(st progression.State, moduleID, topicID string) bool {
	for _, t := range st.TopicsCompleted[moduleID] {
		if t == topicID {
			return true
		}
	}
	return false
}
