package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/obrev/obrev/internal/progression"
	"github.com/obrev/obrev/internal/questiongen"
	"github.com/obrev/obrev/internal/quiz"
	"github.com/obrev/obrev/internal/router"
	"github.com/obrev/obrev/internal/screen"
	"github.com/obrev/obrev/internal/screens/home"
	"github.com/obrev/obrev/internal/screens/onboarding"
	"github.com/obrev/obrev/internal/store"
	"github.com/obrev/obrev/internal/ui/layout"
)

// Deps bundles the services the screens need.
type Deps struct {
	Progression *progression.Service
	Awards      *quiz.Service
	Events      store.EventRepo
	Generator   questiongen.Generator
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	progression *progression.Service
	router      *router.Router
	width       int
	height      int
}

// newAppModel creates the root model. Students who have not finished
// onboarding land there first; everyone else starts at home.
func newAppModel(deps Deps) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(deps.Progression, deps.Awards, deps.Events, deps.Generator)
	}

	var r *router.Router
	if deps.Progression != nil && !deps.Progression.State().Onboarded {
		r = router.New(onboarding.New(deps.Progression, homeFactory))
	} else {
		r = router.New(homeFactory())
	}

	return AppModel{
		progression: deps.Progression,
		router:      r,
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Screens own esc; ctrl+c always quits.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	var level, xp, streak int
	if m.progression != nil {
		st := m.progression.State()
		level, xp, streak = st.Level(), st.XP, st.Streak
	}
	header := layout.RenderHeader(title, level, xp, streak, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok && hp.KeyHints() != nil {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(deps Deps) error {
	p := tea.NewProgram(newAppModel(deps))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
