package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/obrev/obrev/internal/ui/theme"
)

// ContentWidth picks the shared inner width for stacked panels so that
// cards, bars, and menus line up. Two columns go to the outer border
// and four to padding; the result is clamped to keep long question text
// readable on wide terminals and borders intact on narrow ones.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 64)
}

// Card draws content inside a rounded border sized to the shared
// content width. The border color distinguishes panel kinds: theme.Border
// for neutral panels, theme.Accent for the vitals monitor.
func Card(content string, border color.Color, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(cw - 2).
		Padding(0, 2).
		Render(content)
}

// CabinetFrame is the outermost double border every screen sits in,
// centering its content both ways.
func CabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
