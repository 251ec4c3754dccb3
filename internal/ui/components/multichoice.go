package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/obrev/obrev/internal/ui/theme"
)

// MultiChoice presents one question with lettered options. After
// submission the component locks and colors the correct and chosen
// answers.
type MultiChoice struct {
	Question     string
	Options      []string
	CorrectIndex int
	Selected     int
	Submitted    bool
	ChosenIndex  int
}

func NewMultiChoice(question string, options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Question:     question,
		Options:      options,
		CorrectIndex: correctIndex,
		ChosenIndex:  -1,
	}
}

func (m MultiChoice) Init() tea.Cmd { return nil }

func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || m.Submitted {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		m.Submitted = true
		m.ChosenIndex = m.Selected
	}
	return m, nil
}

func (m MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Question))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "â–¸ "
		}
		line := fmt.Sprintf("%s%c)  %s", prefix, 'A'+i, opt)
		b.WriteString(m.optionStyle(i).Render(line))
		b.WriteByte('\n')
	}
	return b.String()
}

func (m MultiChoice) optionStyle(i int) lipgloss.Style {
	if m.Submitted {
		switch i {
		case m.CorrectIndex:
			return lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
		case m.ChosenIndex:
			return lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
		default:
			return lipgloss.NewStyle().Foreground(theme.TextDim)
		}
	}
	if i == m.Selected {
		return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(theme.Text)
}

// IsCorrect reports whether the submitted choice was right.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && m.ChosenIndex == m.CorrectIndex
}
