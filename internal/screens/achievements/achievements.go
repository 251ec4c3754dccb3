package achievements

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

// AchievementsScreen shows the full catalog with unlock status.
type AchievementsScreen struct {
	prog    *progression.Service
	catalog []content.Achievement
	cursor  int
}

var _ screen.Screen = (*AchievementsScreen)(nil)
var _ screen.KeyHintProvider = (*AchievementsScreen)(nil)

// New creates a new AchievementsScreen.
func New(prog *progression.Service) *AchievementsScreen {
	return &AchievementsScreen{
		prog:    prog,
		catalog: content.Achievements(),
	}
}

func (s *AchievementsScreen) Title() string {
	return "Achievements"
}

func (s *AchievementsScreen) Init() tea.Cmd {
	return nil
}

func (s *AchievementsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *AchievementsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.catalog)-1 {
			s.cursor++
		}
	}
	return s, nil
}

func (s *AchievementsScreen) View(width, height int) string {
	var st progression.State
	if s.prog != nil {
		st = s.prog.State()
	}

	unlocked := 0
	for _, a := range s.catalog {
		if st.HasAchievement(a.ID) {
			unlocked++
		}
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
			Render(fmt.Sprintf("Unlocked %d of %d", unlocked, len(s.catalog)))))
	b.WriteString("\n\n")

	for i, a := range s.catalog {
		has := st.HasAchievement(a.ID)

		icon := a.Icon
		if !has {
			icon = "🔒"
		}

		prefix := "  "
		if i == s.cursor {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s  %-18s %s", prefix, icon, a.Title, a.Description)

		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if has {
			style = lipgloss.NewStyle().Foreground(theme.Text)
		}
		if i == s.cursor {
			style = style.Bold(true)
			if has {
				style = style.Foreground(theme.Primary)
			}
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if i == s.cursor {
			bonus := fmt.Sprintf("      +%d XP on unlock", a.XP)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Accent).Render(bonus)))
			b.WriteString("\n")
		}
	}

	return b.String()
}
