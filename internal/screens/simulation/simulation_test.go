package simulation

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/obrev/obrev/internal/content"
	"github.com/obrev/obrev/internal/progression"
	"github.com/obrev/obrev/internal/quiz"
	"github.com/obrev/obrev/internal/router"
	"github.com/obrev/obrev/internal/scenario"
	"github.com/obrev/obrev/internal/screens/results"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func runCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command, got nil")
	}
	return cmd()
}

func newTestSimulation(t *testing.T) (*SimulationScreen, *progression.Service) {
	t.Helper()
	prog := progression.NewService(nil, nil)
	awards := quiz.NewService(prog, nil)
	return New(awards, prog), prog
}

// startFirstScenario drives the picker and briefing to a running engine.
func startFirstScenario(t *testing.T, s *SimulationScreen) {
	t.Helper()
	s.Update(specialKey(tea.KeyEnter)) // pick
	if s.phase != phaseBriefing {
		t.Fatalf("phase = %d, want briefing", s.phase)
	}
	s.Update(specialKey(tea.KeyEnter)) // begin
	if s.phase != phaseRunning || s.engine == nil {
		t.Fatal("scenario did not start")
	}
}

// decideAll plays the scenario choosing the correct option at every
// node, dismissing feedback, and returns the command from the final
// dismissal.
func decideAll(t *testing.T, s *SimulationScreen) tea.Cmd {
	t.Helper()
	for {
		node := s.engine.Current()
		if node == nil {
			t.Fatal("no current node mid-run")
		}
		var chosen string
		for _, opt := range node.Options {
			if opt.Correct {
				chosen = opt.ID
				break
			}
		}
		s.decide(chosen)
		if s.feedback == nil {
			t.Fatal("expected feedback after decision")
		}
		finished := s.feedback.Finished
		_, cmd := s.Update(keyPress(' '))
		if finished {
			return cmd
		}
	}
}

func TestPerfectRunAwardsScenarioXP(t *testing.T) {
	s, prog := newTestSimulation(t)
	startFirstScenario(t, s)

	endCmd := decideAll(t, s)
	msg := runCmd(t, endCmd)
	if _, ok := msg.(scenarioEndMsg); !ok {
		t.Fatalf("expected scenarioEndMsg, got %T", msg)
	}

	_, cmd := s.Update(msg)
	nav := runCmd(t, cmd)
	rep, ok := nav.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", nav)
	}
	if _, ok := rep.Screen.(*results.ResultsScreen); !ok {
		t.Fatalf("expected results screen, got %T", rep.Screen)
	}

	st := prog.State()
	// A perfect run pays 300 XP plus the perfect-quiz unlock bonus.
	want := 100*quiz.ScenarioXPFactor + content.AchievementByID("perfect-quiz").XP
	if st.HasAchievement("night-owl") {
		// Unlocks when the suite runs in the small hours.
		want += content.AchievementByID("night-owl").XP
	}
	if st.XP != want {
		t.Errorf("XP = %d, want %d", st.XP, want)
	}
	if !st.HasAchievement("perfect-quiz") {
		t.Error("perfect-quiz should be unlocked")
	}
}

func TestAbandonEarnsNothing(t *testing.T) {
	s, prog := newTestSimulation(t)
	startFirstScenario(t, s)

	_, cmd := s.Update(specialKey(tea.KeyEscape))
	msg := runCmd(t, cmd)
	s.Update(msg)

	if prog.State().XP != 0 {
		t.Errorf("abandoned run should award nothing, got %d XP", prog.State().XP)
	}
	if s.phase != phasePicking {
		t.Errorf("phase = %d, want picker after abandon", s.phase)
	}
}

func TestClockRunningOutEndsTheRun(t *testing.T) {
	s, _ := newTestSimulation(t)
	startFirstScenario(t, s)

	limit := s.engine.Definition().TimeLimit
	var cmd tea.Cmd
	for i := 0; i <= limit; i++ {
		_, cmd = s.Update(timerTickMsg{})
	}

	msg := runCmd(t, cmd)
	if _, ok := msg.(scenarioEndMsg); !ok {
		t.Fatalf("expected scenarioEndMsg after timeout, got %T", msg)
	}
	if s.engine.Status() != scenario.StatusFailed {
		t.Errorf("status = %v, want failed", s.engine.Status())
	}
}

func TestPickerNavigationStaysInBounds(t *testing.T) {
	s, _ := newTestSimulation(t)

	s.Update(keyPress('k'))
	if s.cursor != 0 {
		t.Errorf("cursor = %d, want 0", s.cursor)
	}
	for i := 0; i < 20; i++ {
		s.Update(keyPress('j'))
	}
	if s.cursor != len(s.defs)-1 {
		t.Errorf("cursor = %d, want %d", s.cursor, len(s.defs)-1)
	}
}
