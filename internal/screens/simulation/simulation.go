package simulation

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/obrev/obrev/internal/content"
	"github.com/obrev/obrev/internal/progression"
	"github.com/obrev/obrev/internal/quiz"
	"github.com/obrev/obrev/internal/router"
	"github.com/obrev/obrev/internal/scenario"
	"github.com/obrev/obrev/internal/screen"
	"github.com/obrev/obrev/internal/screens/results"
	"github.com/obrev/obrev/internal/ui/layout"
)

// timerTickMsg advances the scenario clock once per second.
type timerTickMsg time.Time

// scenarioEndMsg triggers scoring and the results screen.
type scenarioEndMsg struct{}

type phase int

const (
	phasePicking phase = iota
	phaseBriefing
	phaseRunning
	phaseDone
)

// SimulationScreen runs timed branching emergency scenarios.
type SimulationScreen struct {
	awards *quiz.Service
	prog   *progression.Service

	defs     []scenario.Definition
	cursor   int
	phase    phase
	engine   *scenario.Engine
	selected int
	feedback *scenario.Decision
	errMsg   string
}

var _ screen.Screen = (*SimulationScreen)(nil)
var _ screen.KeyHintProvider = (*SimulationScreen)(nil)

// New creates the simulation screen with the scenario picker open.
func New(awards *quiz.Service, prog *progression.Service) *SimulationScreen {
	return &SimulationScreen{
		awards: awards,
		prog:   prog,
		defs:   content.Scenarios(),
	}
}

func (s *SimulationScreen) Title() string {
	return "Clinical Simulation"
}

func (s *SimulationScreen) Init() tea.Cmd {
	return nil
}

func (s *SimulationScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseBriefing:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Begin"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseRunning:
		if s.feedback != nil {
			return []layout.KeyHint{
				{Key: "any key", Description: "Continue"},
			}
		}
		return []layout.KeyHint{
			{Key: "1-3", Description: "Decide"},
			{Key: "Esc", Description: "Abandon"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Select"},
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *SimulationScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTick()
	case scenarioEndMsg:
		return s.finish()
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *SimulationScreen) handleTick() (screen.Screen, tea.Cmd) {
	if s.phase != phaseRunning || s.engine == nil {
		return s, nil
	}

	s.engine.Tick()
	if s.engine.Status() != scenario.StatusRunning {
		// Clock ran out.
		return s, func() tea.Msg { return scenarioEndMsg{} }
	}
	return s, tickCmd()
}

func (s *SimulationScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.phase {
	case phasePicking:
		switch key {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.defs)-1 {
				s.cursor++
			}
		case "enter":
			if len(s.defs) == 0 {
				return s, nil
			}
			s.phase = phaseBriefing
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil

	case phaseBriefing:
		switch key {
		case "enter":
			return s.begin()
		case "esc":
			s.phase = phasePicking
		}
		return s, nil

	case phaseRunning:
		if s.feedback != nil {
			finished := s.feedback.Finished
			s.feedback = nil
			s.selected = 0
			if finished {
				return s, func() tea.Msg { return scenarioEndMsg{} }
			}
			return s, nil
		}

		node := s.engine.Current()
		if node == nil {
			return s, nil
		}

		switch key {
		case "esc":
			s.engine.Cancel()
			return s, func() tea.Msg { return scenarioEndMsg{} }
		case "1", "2", "3", "4":
			idx := int(key[0] - '1')
			if idx < len(node.Options) {
				s.selected = idx
				return s.decide(node.Options[idx].ID)
			}
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(node.Options)-1 {
				s.selected++
			}
		case "enter":
			return s.decide(node.Options[s.selected].ID)
		}
	}

	return s, nil
}

func (s *SimulationScreen) begin() (screen.Screen, tea.Cmd) {
	def := s.defs[s.cursor]
	eng, err := scenario.NewEngine(&def)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.engine = eng
	s.phase = phaseRunning
	s.selected = 0
	return s, tickCmd()
}

func (s *SimulationScreen) decide(optionID string) (screen.Screen, tea.Cmd) {
	dec, err := s.engine.SelectOption(optionID)
	if err != nil {
		return s, nil
	}
	s.feedback = &dec
	return s, nil
}

func (s *SimulationScreen) finish() (screen.Screen, tea.Cmd) {
	if s.phase == phaseDone || s.engine == nil {
		return s, nil
	}
	s.phase = phaseDone

	res := s.engine.Result()
	if res.Status == scenario.StatusCancelled {
		// Nothing earned; straight back to the picker.
		s.engine = nil
		s.phase = phasePicking
		return s, nil
	}

	outcome := s.awards.RecordScenario(context.Background(), res, time.Now())

	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: results.NewScenario(res, outcome),
		}
	}
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
