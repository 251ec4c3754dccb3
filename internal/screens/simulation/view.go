package simulation

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/obrev/obrev/internal/scenario"
	"github.com/obrev/obrev/internal/ui/components"
	"github.com/obrev/obrev/internal/ui/theme"
)

func (s *SimulationScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}

	switch s.phase {
	case phasePicking:
		return s.renderPicker(width)
	case phaseBriefing:
		return s.renderBriefing(width, height)
	case phaseRunning:
		if s.feedback != nil {
			return s.renderFeedback(width, height)
		}
		return s.renderNode(width)
	}
	return ""
}

func (s *SimulationScreen) renderPicker(width int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
			Render("Choose an emergency scenario")))
	b.WriteString("\n\n")

	for i, def := range s.defs {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.cursor {
			prefix = "▸ "
			style = style.Foreground(theme.Primary).Bold(true)
		}
		line := fmt.Sprintf("%s%s  (%d:%02d limit)", prefix, def.Title, def.TimeLimit/60, def.TimeLimit%60)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("    "+def.Description)))
		b.WriteString("\n\n")
	}

	return b.String()
}

func (s *SimulationScreen) renderBriefing(width, height int) string {
	def := s.defs[s.cursor]

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(def.Title))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(width * 2 / 3).Render(def.Setting))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Warning).Bold(true).
		Render(fmt.Sprintf("⏱ You have %d:%02d. The timer starts when you begin.", def.TimeLimit/60, def.TimeLimit%60)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("Pass mark: %d%% of decisions correct", scenario.PassThreshold)))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("press enter to begin"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (s *SimulationScreen) renderNode(width int) string {
	node := s.engine.Current()
	if node == nil {
		return ""
	}

	warningsOn := s.prog == nil || s.prog.State().Preferences.TimerWarnings

	var b strings.Builder

	// Status line: timer on the right.
	timer := components.Countdown(s.engine.Remaining(), warningsOn)
	left := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render("  " + s.engine.Definition().Title)
	pad := width - lipgloss.Width(left) - lipgloss.Width(timer) - 4
	if pad < 1 {
		pad = 1
	}
	b.WriteString(left + strings.Repeat(" ", pad) + timer)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width-4)))
	b.WriteString("\n\n")

	// Vitals panel.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderVitals(node.Vitals)))
	b.WriteString("\n\n")

	// Clinical prompt.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(node.Prompt))
	b.WriteString("\n\n")

	for i, opt := range node.Options {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "▸ "
			style = style.Foreground(theme.Primary).Bold(true)
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt.Label)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *SimulationScreen) renderFeedback(width, height int) string {
	fb := s.feedback

	var b strings.Builder
	if fb.Correct {
		b.WriteString(theme.Correct.Render("✓ Good call."))
	} else {
		b.WriteString(theme.Incorrect.Render("✗ Wrong move."))
	}
	if fb.Feedback != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(width * 2 / 3).
			Render(fb.Feedback))
	}
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("press any key to continue"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

// monitorWidth keeps the bedside monitor box narrow regardless of the
// terminal size; the longest row is a label plus a reading.
const monitorWidth = 32

// renderVitals draws the bedside monitor box.
func renderVitals(v scenario.Vitals) string {
	row := func(label, value string) string {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%-13s", label)) +
			lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(value)
	}

	lines := []string{
		row("FHR", v.FHR),
		row("Maternal HR", v.MaternalHR),
		row("BP", v.BP),
		row("O2 Sat", v.O2Sat),
		row("Contractions", v.Contractions),
	}

	return components.Card(strings.Join(lines, "\n"), theme.Accent, monitorWidth)
}
