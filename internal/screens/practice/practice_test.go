package practice

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/obrev/obrev/internal/content"
	"github.com/obrev/obrev/internal/progression"
	"github.com/obrev/obrev/internal/questiongen"
	"github.com/obrev/obrev/internal/quiz"
	"github.com/obrev/obrev/internal/router"
	"github.com/obrev/obrev/internal/screens/results"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// runCmd executes a command and returns the message it produces.
func runCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command, got nil")
	}
	return cmd()
}

func newTestPractice(t *testing.T) (*PracticeScreen, *progression.Service) {
	t.Helper()
	prog := progression.NewService(nil, nil)
	awards := quiz.NewService(prog, nil)
	s := New(&questiongen.BankGenerator{}, awards, prog, "module-7", "prom")
	return s, prog
}

func loadSession(t *testing.T, s *PracticeScreen) {
	t.Helper()
	msg := runCmd(t, s.loadQuestions())
	ready, ok := msg.(quizReadyMsg)
	if !ok {
		t.Fatalf("expected quizReadyMsg, got %T", msg)
	}
	if ready.Err != nil {
		t.Fatalf("loadQuestions: %v", ready.Err)
	}
	s.Update(ready)
	if s.session == nil {
		t.Fatal("session not set after quizReadyMsg")
	}
}

// answerAll plays through the whole quiz, answering correctly when
// correct is true.
func answerAll(t *testing.T, s *PracticeScreen, correct bool) tea.Cmd {
	t.Helper()
	for {
		cur := s.session.Current()
		if cur == nil {
			t.Fatal("no current question mid-quiz")
		}
		choice := cur.Answer
		if !correct {
			choice = (cur.Answer + 1) % len(cur.Options)
		}
		s.selected = choice
		s.Update(specialKey(tea.KeyEnter)) // enter submits
		if s.feedback == nil {
			t.Fatal("expected feedback after submit")
		}
		last := s.feedback.Last
		_, cmd := s.Update(keyPress(' ')) // dismiss feedback
		if last {
			return cmd
		}
	}
}

func TestPerfectQuizAwardsXP(t *testing.T) {
	s, prog := newTestPractice(t)
	loadSession(t, s)

	endCmd := answerAll(t, s, true)
	msg := runCmd(t, endCmd)
	if _, ok := msg.(quizEndMsg); !ok {
		t.Fatalf("expected quizEndMsg, got %T", msg)
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
	// 100% quiz pays 200 XP, plus the perfect-quiz unlock bonus.
	want := 100*quiz.QuizXPFactor + content.AchievementByID("perfect-quiz").XP
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
	if st.ModuleProgress["module-7"] != 10 {
		t.Errorf("module progress = %d, want 10", st.ModuleProgress["module-7"])
	}
}

func TestQuitConfirmLeavesNoTrace(t *testing.T) {
	s, prog := newTestPractice(t)
	loadSession(t, s)

	s.Update(specialKey(tea.KeyEscape))
	if !s.quitConfirm {
		t.Fatal("esc should open the quit confirm")
	}

	_, cmd := s.Update(keyPress('y'))
	nav := runCmd(t, cmd)
	if _, ok := nav.(router.PopScreenMsg); !ok {
		t.Fatalf("expected PopScreenMsg, got %T", nav)
	}

	if prog.State().XP != 0 {
		t.Errorf("abandoned quiz should award nothing, got %d XP", prog.State().XP)
	}
}

func TestWrongAnswerShowsRationale(t *testing.T) {
	s, _ := newTestPractice(t)
	loadSession(t, s)

	cur := s.session.Current()
	s.selected = (cur.Answer + 1) % len(cur.Options)
	s.Update(specialKey(tea.KeyEnter))

	if s.feedback == nil || s.feedback.Correct {
		t.Fatal("expected incorrect feedback")
	}
	view := s.View(80, 24)
	if view == "" {
		t.Fatal("feedback view is empty")
	}
}

func TestTickOnlyRunsWhileActive(t *testing.T) {
	s, _ := newTestPractice(t)
	loadSession(t, s)

	_, cmd := s.Update(timerTickMsg{})
	if cmd == nil {
		t.Error("tick should reschedule while the quiz runs")
	}

	s.finished = true
	_, cmd = s.Update(timerTickMsg{})
	if cmd != nil {
		t.Error("tick should stop once the quiz is finished")
	}
}
