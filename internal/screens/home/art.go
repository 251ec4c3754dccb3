package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/obrev/obrev/internal/progression"
	"github.com/obrev/obrev/internal/ui/components"
	"github.com/obrev/obrev/internal/ui/theme"
)

// Block-letter title (same art as onboarding/banner.go).
const titleFull = `  ██████╗ ██████╗ ██████╗ ███████╗██╗   ██╗
 ██╔═══██╗██╔══██╗██╔══██╗██╔════╝██║   ██║
 ██║   ██║██████╔╝██████╔╝█████╗  ██║   ██║
 ██║   ██║██╔══██╗██╔══██╗██╔══╝  ╚██╗ ██╔╝
 ╚██████╔╝██████╔╝██║  ██║███████╗ ╚████╔╝
  ╚═════╝ ╚═════╝ ╚═╝  ╚═╝╚══════╝  ╚═══╝`

const titleCompact = "O · B · R · E · V"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if compact {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(style.Render(titleCompact))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(titleFull))
}

// renderGreeting renders the student's avatar and name.
func renderGreeting(avatar, name string, cw int) string {
	if name == "" {
		name = "Student"
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("%s  Welcome back, %s", avatar, name))
}

// renderStatsBar renders the dashboard stats in a bordered box matching
// content width.
func renderStatsBar(level, xp, streak, avgScore, cw int, compact bool) string {
	levelStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	xpStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	streakStyle := lipgloss.NewStyle().Foreground(theme.Warning).Bold(true)
	avgStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s %s",
			levelStyle.Render(fmt.Sprintf("Lv%d", level)),
			xpStyle.Render(fmt.Sprintf("◆%d", xp)),
			streakStyle.Render(fmt.Sprintf("★%d", streak)),
			avgStyle.Render(fmt.Sprintf("Ø%d%%", avgScore)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s  %s",
			levelStyle.Render(fmt.Sprintf("LEVEL %d", level)),
			xpStyle.Render(fmt.Sprintf("◆ %d XP", xp)),
			streakStyle.Render(fmt.Sprintf("★ %d DAY STREAK", streak)),
			avgStyle.Render(fmt.Sprintf("AVG %d%%", avgScore)),
		)
	}

	// Wrap in a double-border box at the same content width
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Accent).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderLevelBar shows progress through the current level.
func renderLevelBar(st progression.State, cw int) string {
	into := st.XPIntoLevel()
	pct := float64(into) / float64(progression.XPPerLevel) * 100

	bar := components.NewProgressBar("NEXT LEVEL", pct, false, cw-18)
	label := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d/%d", into, progression.XPPerLevel))

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(bar.View() + "  " + label)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 26

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(items []string, selected int, cw int) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Primary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var buttons []string
	for i, label := range items {
		if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderMenuCompact renders menu items as simple text lines (no borders)
// for very small terminals where bordered buttons would overflow.
func renderMenuCompact(items []string, selected int, cw int) string {
	var lines []string
	for i, label := range items {
		var line string
		if i == selected {
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Primary).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
		lines = append(lines, line)
	}
	block := strings.Join(lines, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}
