package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/obrev/obrev/internal/quiz"
	"github.com/obrev/obrev/internal/router"
	"github.com/obrev/obrev/internal/scenario"
	"github.com/obrev/obrev/internal/screen"
	"github.com/obrev/obrev/internal/ui/layout"
	"github.com/obrev/obrev/internal/ui/theme"
)

// ResultsScreen shows the outcome of a finished quiz or scenario run.
type ResultsScreen struct {
	headline     string
	headlineGood bool
	score        int
	detail       string
	durationSecs int
	outcome      quiz.Outcome
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// NewQuiz builds the results screen for a quiz summary.
func NewQuiz(sum quiz.Summary, outcome quiz.Outcome) *ResultsScreen {
	headline := "Quiz complete!"
	good := true
	if sum.Score < 50 {
		headline = "Quiz complete — keep practicing"
		good = false
	}
	return &ResultsScreen{
		headline:     headline,
		headlineGood: good,
		score:        sum.Score,
		detail:       fmt.Sprintf("%d of %d correct", sum.CorrectAnswers, sum.TotalQuestions),
		durationSecs: sum.DurationSecs,
		outcome:      outcome,
	}
}

// NewScenario builds the results screen for a scenario result.
func NewScenario(res scenario.Result, outcome quiz.Outcome) *ResultsScreen {
	var headline string
	good := res.Success
	switch {
	case res.TimedOut:
		headline = "Time ran out!"
	case res.Success:
		headline = "Patient stabilized!"
	default:
		headline = "Scenario failed"
	}
	return &ResultsScreen{
		headline:     headline,
		headlineGood: good,
		score:        res.Score,
		detail:       fmt.Sprintf("%d of %d decisions correct", res.CorrectDecisions, res.TotalNodes),
		durationSecs: res.DurationSecs,
		outcome:      outcome,
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	var b strings.Builder

	headStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.Success)
	if !s.headlineGood {
		headStyle = headStyle.Foreground(theme.Error)
	}
	b.WriteString(headStyle.Render(s.headline))
	b.WriteString("\n\n")

	scoreStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	b.WriteString(scoreStyle.Render(fmt.Sprintf("Score: %d%%", s.score)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(s.detail))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("Time: %d:%02d", s.durationSecs/60, s.durationSecs%60)))
	b.WriteString("\n\n")

	if s.outcome.XP.Amount > 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
			Render(fmt.Sprintf("+%d XP", s.outcome.XP.Amount)))
		b.WriteString("\n")
	}
	if s.outcome.XP.LeveledUp {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
			Render(fmt.Sprintf("⬆ Level %d!", s.outcome.XP.Level)))
		b.WriteString("\n")
	}
	if s.outcome.Streak > 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Warning).
			Render(fmt.Sprintf("★ %d day streak", s.outcome.Streak)))
		b.WriteString("\n")
	}

	if len(s.outcome.NewlyUnlocked) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
			Render("Achievement unlocked!"))
		b.WriteString("\n")
		for _, a := range s.outcome.NewlyUnlocked {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).
				Render(fmt.Sprintf("%s %s — %s", a.Icon, a.Title, a.Description)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("press enter to continue"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
