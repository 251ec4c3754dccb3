package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/obrev/obrev/internal/ui/layout"
)

// Screen is one full-window view managed by the router. Update returns
// the screen value to keep on the stack, which lets a screen hand off
// to a different implementation.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the body only; the app chrome draws header and footer.
	View(width, height int) string

	// Title labels the screen in the header.
	Title() string
}

// KeyHintProvider lets a screen put its own key hints in the footer.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
