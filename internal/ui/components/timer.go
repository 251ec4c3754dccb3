package components

import (
	"fmt"
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/obrev/obrev/internal/ui/theme"
)

// warningThresholdSecs is when the countdown switches to the warning
// color.
const warningThresholdSecs = 30

// Countdown renders a mm:ss countdown. The color escalates as time runs
// out: dim while comfortable, amber under 30 seconds, red under 10.
func Countdown(remainingSecs int, warningsOn bool) string {
	if remainingSecs < 0 {
		remainingSecs = 0
	}

	var fg color.Color = theme.TextDim
	bold := false
	if warningsOn {
		switch {
		case remainingSecs <= 10:
			fg = theme.Error
			bold = true
		case remainingSecs <= warningThresholdSecs:
			fg = theme.Warning
			bold = true
		}
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Bold(bold).
		Render(fmt.Sprintf("⏱ %d:%02d", remainingSecs/60, remainingSecs%60))
}
