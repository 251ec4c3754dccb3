package onboarding

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/obrev/obrev/internal/progression"
	"github.com/obrev/obrev/internal/router"
	"github.com/obrev/obrev/internal/screen"
	"github.com/obrev/obrev/internal/ui/components"
	"github.com/obrev/obrev/internal/ui/layout"
	"github.com/obrev/obrev/internal/ui/theme"
)

// Avatars the student can pick from during onboarding.
var avatars = []string{"👩‍⚕️", "🧑‍⚕️", "👨‍⚕️", "🩺", "⭐", "🌸"}

// Difficulty choices in onboarding order.
var difficulties = []string{
	progression.DifficultyBeginner,
	progression.DifficultyIntermediate,
	progression.DifficultyAdvanced,
}

type step int

const (
	stepName step = iota
	stepAvatar
	stepDifficulty
)

// OnboardingScreen collects a display name, avatar, and difficulty
// preference before the first study session.
type OnboardingScreen struct {
	prog        *progression.Service
	homeFactory func() screen.Screen

	step       step
	input      components.TextInput
	avatar     int
	difficulty int
	errLine    string
	finished   bool
}

var _ screen.Screen = (*OnboardingScreen)(nil)
var _ screen.KeyHintProvider = (*OnboardingScreen)(nil)

// New creates the onboarding screen. On completion it replaces itself
// with the screen produced by homeFactory.
func New(prog *progression.Service, homeFactory func() screen.Screen) *OnboardingScreen {
	return &OnboardingScreen{
		prog:        prog,
		homeFactory: homeFactory,
		input:       components.NewTextInput("Your name...", false, 24),
	}
}

func (o *OnboardingScreen) Title() string {
	return "Welcome"
}

func (o *OnboardingScreen) Init() tea.Cmd {
	return o.input.Init()
}

func (o *OnboardingScreen) KeyHints() []layout.KeyHint {
	switch o.step {
	case stepAvatar:
		return []layout.KeyHint{
			{Key: "←→", Description: "Choose avatar"},
			{Key: "Enter", Description: "Continue"},
		}
	case stepDifficulty:
		return []layout.KeyHint{
			{Key: "←→", Description: "Choose difficulty"},
			{Key: "Enter", Description: "Start studying"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (o *OnboardingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)

	switch o.step {
	case stepName:
		if isKey && kmsg.String() == "enter" {
			name := strings.TrimSpace(o.input.Value())
			if name == "" {
				o.errLine = "Please enter a name"
				return o, nil
			}
			o.errLine = ""
			o.step = stepAvatar
			return o, nil
		}
		var cmd tea.Cmd
		o.input, cmd = o.input.Update(msg)
		return o, cmd

	case stepAvatar:
		if !isKey {
			return o, nil
		}
		switch kmsg.String() {
		case "left", "h":
			o.avatar = (o.avatar - 1 + len(avatars)) % len(avatars)
		case "right", "l":
			o.avatar = (o.avatar + 1) % len(avatars)
		case "enter":
			o.step = stepDifficulty
		}

	case stepDifficulty:
		if !isKey {
			return o, nil
		}
		switch kmsg.String() {
		case "left", "h":
			o.difficulty = (o.difficulty - 1 + len(difficulties)) % len(difficulties)
		case "right", "l":
			o.difficulty = (o.difficulty + 1) % len(difficulties)
		case "enter":
			return o, o.complete()
		}
	}

	return o, nil
}

func (o *OnboardingScreen) complete() tea.Cmd {
	if o.finished {
		return nil
	}
	o.finished = true

	name := strings.TrimSpace(o.input.Value())

	prefs := o.prog.State().Preferences
	prefs.Difficulty = difficulties[o.difficulty]
	o.prog.UpdatePreferences(prefs)

	o.prog.CompleteOnboarding(context.Background(), name, avatars[o.avatar])

	next := o.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (o *OnboardingScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderBanner(width))
	sections = append(sections, "")
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Obstetric nursing exam prep"))
	sections = append(sections, "")

	switch o.step {
	case stepName:
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("What should we call you?"))
		sections = append(sections, "")
		sections = append(sections, o.input.View())
		if o.errLine != "" {
			sections = append(sections, "")
			sections = append(sections, lipgloss.NewStyle().
				Foreground(theme.Error).
				Render(o.errLine))
		}

	case stepAvatar:
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Pick your avatar"))
		sections = append(sections, "")
		var row []string
		for i, a := range avatars {
			cell := "  " + a + "  "
			if i == o.avatar {
				row = append(row, lipgloss.NewStyle().
					Background(theme.Primary).
					Bold(true).
					Render(cell))
			} else {
				row = append(row, lipgloss.NewStyle().Render(cell))
			}
		}
		sections = append(sections, strings.Join(row, " "))

	case stepDifficulty:
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("How hard should the questions be?"))
		sections = append(sections, "")
		var row []string
		for i, d := range difficulties {
			cell := "  " + d + "  "
			if i == o.difficulty {
				row = append(row, lipgloss.NewStyle().
					Background(theme.Primary).
					Bold(true).
					Render(cell))
			} else {
				row = append(row, lipgloss.NewStyle().
					Foreground(theme.TextDim).
					Render(cell))
			}
		}
		sections = append(sections, strings.Join(row, " "))
		sections = append(sections, "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Success).
			Render("+100 XP for getting started"))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
