package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/obrev/obrev/internal/ui/theme"
)

func (s *PracticeScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s\n\nPress any key to go back", s.errMsg))
	}
	if s.session == nil {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Preparing your questions...")
	}
	if s.quitConfirm {
		return lipgloss.NewStyle().
			Width(width).Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.Text).
			Render("End this quiz?\n\nProgress so far will be lost.\n\n[Y] Yes   [N] No")
	}
	if s.feedback != nil {
		return s.renderFeedback(width, height)
	}
	return s.renderQuestion(width)
}

func (s *PracticeScreen) renderQuestion(width int) string {
	cur := s.session.Current()
	if cur == nil {
		return ""
	}

	answered, total := s.session.Progress()

	var b strings.Builder

	info := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  Question %d of %d", answered+1, total))
	b.WriteString(info)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width-4)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(cur.Prompt))
	b.WriteString("\n\n")

	labels := []string{"1", "2", "3", "4"}
	for i, opt := range cur.Options {
		prefix := "  "
		if i == s.selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, labels[i], opt)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *PracticeScreen) renderFeedback(width, height int) string {
	fb := s.feedback

	var b strings.Builder

	if fb.Correct {
		b.WriteString(theme.Correct.Render("✓ Correct!"))
	} else {
		b.WriteString(theme.Incorrect.Render("✗ Not quite."))
		if s.answered != nil && fb.Answer >= 0 && fb.Answer < len(s.answered.Options) {
			b.WriteString("\n\n")
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).
				Render("Correct answer: " + s.answered.Options[fb.Answer]))
		}
	}

	showRationale := s.prog == nil || s.prog.State().Preferences.ShowRationale
	if fb.Rationale != "" && showRationale {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(width * 2 / 3).
			Render(fb.Rationale))
	}

	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("press any key to continue"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
