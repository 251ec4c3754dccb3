package quiz

import (
	"errors"
	"testing"

	"github.com/obrev/obrev/internal/content"
)

func threeQuestions() []content.Question {
	return []content.Question{
		{ID: "q1", ModuleID: "module-7", Prompt: "one", Options: []string{"a", "b"}, Answer: 0, Rationale: "r1"},
		{ID: "q2", ModuleID: "module-7", Prompt: "two", Options: []string{"a", "b"}, Answer: 1, Rationale: "r2"},
		{ID: "q3", ModuleID: "module-7", Prompt: "three", Options: []string{"a", "b"}, Answer: 0, Rationale: "r3"},
	}
}

func TestNewSessionRequiresQuestions(t *testing.T) {
	if _, err := NewSession("module-7", "", nil); !errors.Is(err, ErrNoQuestions) {
		t.Errorf("err = %v, want ErrNoQuestions", err)
	}
}

func TestSessionFlow(t *testing.T) {
	s, err := NewSession("module-7", "prom", threeQuestions())
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	if n, total := s.Progress(); n != 1 || total != 3 {
		t.Errorf("progress = %d/%d, want 1/3", n, total)
	}
	if s.Current().ID != "q1" {
		t.Errorf("current = %q, want q1", s.Current().ID)
	}

	// Right, wrong, right: 2/3.
	res, err := s.Answer(0)
	if err != nil || !res.Correct || res.Last {
		t.Fatalf("answer 1 = %+v, %v", res, err)
	}
	res, _ = s.Answer(0)
	if res.Correct {
		t.Error("answer 2 should be wrong")
	}
	if res.Rationale != "r2" || res.Answer != 1 {
		t.Errorf("wrong answer should surface rationale and key, got %+v", res)
	}
	res, _ = s.Answer(0)
	if !res.Last {
		t.Error("third answer should be last")
	}

	if !s.Done() {
		t.Fatal("session should be done")
	}
	if s.Current() != nil {
		t.Error("current should be nil when done")
	}
	if _, err := s.Answer(0); !errors.Is(err, ErrSessionDone) {
		t.Errorf("answer after done = %v, want ErrSessionDone", err)
	}

	sum := s.Summary()
	if sum.Score != 67 || sum.CorrectAnswers != 2 || sum.TotalQuestions != 3 {
		t.Errorf("summary = %+v, want score 67, 2/3", sum)
	}
	if sum.ModuleID != "module-7" || sum.TopicID != "prom" {
		t.Errorf("summary ids = %q/%q", sum.ModuleID, sum.TopicID)
	}
	if len(sum.IncorrectQuestionIDs) != 1 || sum.IncorrectQuestionIDs[0] != "q2" {
		t.Errorf("incorrect question IDs = %v, want [q2]", sum.IncorrectQuestionIDs)
	}
}

func TestSessionTickStopsWhenDone(t *testing.T) {
	s, _ := NewSession("module-7", "", threeQuestions()[:1])
	s.Tick()
	s.Tick()
	s.Answer(0)
	s.Tick() // done, should not count

	if got := s.Summary().DurationSecs; got != 2 {
		t.Errorf("duration = %d, want 2", got)
	}
}

func TestPerfectScore(t *testing.T) {
	s, _ := NewSession("module-7", "", threeQuestions())
	s.Answer(0)
	s.Answer(1)
	s.Answer(0)
	if got := s.Summary().Score; got != 100 {
		t.Errorf("score = %d, want 100", got)
	}
}
