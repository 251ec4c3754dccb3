package home

import (
	"math"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/obrev/obrev/internal/progression"
	"github.com/obrev/obrev/internal/questiongen"
	"github.com/obrev/obrev/internal/quiz"
	"github.com/obrev/obrev/internal/router"
	"github.com/obrev/obrev/internal/screen"
	"github.com/obrev/obrev/internal/screens/achievements"
	"github.com/obrev/obrev/internal/screens/history"
	"github.com/obrev/obrev/internal/screens/leaderboard"
	"github.com/obrev/obrev/internal/screens/modulemap"
	"github.com/obrev/obrev/internal/screens/placeholder"
	"github.com/obrev/obrev/internal/screens/practice"
	"github.com/obrev/obrev/internal/screens/simulation"
	"github.com/obrev/obrev/internal/store"
	"github.com/obrev/obrev/internal/ui/components"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	prog       *progression.Service
	menu       components.Menu
	menuLabels []string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(prog *progression.Service, awards *quiz.Service, eventRepo store.EventRepo, generator questiongen.Generator) *HomeScreen {
	menuLabels := []string{
		"PRACTICE QUIZ",
		"CLINICAL SIMULATION",
		"MODULE MAP",
		"LEADERBOARD",
		"ACHIEVEMENTS",
		"HISTORY",
		"EXIT",
	}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			if generator == nil || awards == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Practice Quiz")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: modulemap.New(prog, func(moduleID, topicID string) screen.Screen {
						return practice.New(generator, awards, prog, moduleID, topicID)
					}),
				}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			if awards == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Clinical Simulation")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: simulation.New(awards, prog)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: modulemap.New(prog, nil)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: leaderboard.New(prog)}
			}
		}},
		{Label: menuLabels[4], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: achievements.New(prog)}
			}
		}},
		{Label: menuLabels[5], Action: func() tea.Cmd {
			if eventRepo == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("History")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(eventRepo)}
			}
		}},
		{Label: menuLabels[6], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		prog:       prog,
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := components.ContentWidth(width)

	var st progression.State
	if h.prog != nil {
		st = h.prog.State()
	}
	avg := int(math.Round(st.AverageQuizScore()))

	var sections []string

	sections = append(sections, renderTitle(cw, compact))

	if !compact {
		sections = append(sections, renderGreeting(st.Avatar, st.DisplayName, cw))
	}

	sections = append(sections, renderStatsBar(st.Level(), st.XP, st.Streak, avg, cw, compact))

	if !compact {
		sections = append(sections, renderLevelBar(st, cw))
	}

	if compact {
		sections = append(sections, renderMenuCompact(h.menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderMenu(h.menuLabels, h.menu.Selected, cw))
	}

	content := strings.Join(sections, "\n\n")

	return components.CabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
