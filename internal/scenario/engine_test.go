package scenario

import (
	"errors"
	"testing"
)

// twoNodeDef is a minimal valid scenario: two decision points, 90s.
func twoNodeDef() *Definition {
	return &Definition{
		ID:        "test-scenario",
		ModuleID:  "module-7",
		Title:     "Test Scenario",
		TimeLimit: 90,
		Root:      "n1",
		Nodes: []Node{
			{
				ID:     "n1",
				Prompt: "First decision",
				Options: []Option{
					{ID: "a", Label: "Right call", Correct: true, Next: "n2"},
					{ID: "b", Label: "Wrong call", Next: "n2"},
				},
			},
			{
				ID:     "n2",
				Prompt: "Second decision",
				Options: []Option{
					{ID: "a", Label: "Right call", Correct: true},
					{ID: "b", Label: "Wrong call"},
				},
			},
		},
	}
}

func mustEngine(t *testing.T, def *Definition) *Engine {
	t.Helper()
	e, err := NewEngine(def)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return e
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Definition)
		wantOK bool
	}{
		{"valid", func(d *Definition) {}, true},
		{"missing id", func(d *Definition) { d.ID = "" }, false},
		{"zero time limit", func(d *Definition) { d.TimeLimit = 0 }, false},
		{"no nodes", func(d *Definition) { d.Nodes = nil }, false},
		{"unknown root", func(d *Definition) { d.Root = "missing" }, false},
		{"duplicate node", func(d *Definition) { d.Nodes = append(d.Nodes, d.Nodes[0]) }, false},
		{"single option", func(d *Definition) { d.Nodes[0].Options = d.Nodes[0].Options[:1] }, false},
		{"no correct option", func(d *Definition) { d.Nodes[0].Options[0].Correct = false }, false},
		{"two correct options", func(d *Definition) { d.Nodes[0].Options[1].Correct = true }, false},
		{"dangling branch", func(d *Definition) { d.Nodes[0].Options[0].Next = "missing" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := twoNodeDef()
			tt.mutate(def)
			err := def.Validate()
			if tt.wantOK && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.wantOK {
				if err == nil {
					t.Fatal("Validate() = nil, want error")
				}
				if !errors.Is(err, ErrInvalidDefinition) {
					t.Errorf("error %v does not wrap ErrInvalidDefinition", err)
				}
			}
		})
	}
}

func TestPerfectRunSucceeds(t *testing.T) {
	e := mustEngine(t, twoNodeDef())

	if e.Status() != StatusRunning {
		t.Fatalf("status = %v, want running", e.Status())
	}
	if e.Current().ID != "n1" {
		t.Fatalf("current = %q, want n1", e.Current().ID)
	}

	// Spend a little clock, then answer both nodes correctly.
	for i := 0; i < 10; i++ {
		e.Tick()
	}

	d, err := e.SelectOption("a")
	if err != nil {
		t.Fatalf("select n1: %v", err)
	}
	if !d.Correct || d.Finished {
		t.Errorf("n1 decision = %+v, want correct, not finished", d)
	}
	if e.Current().ID != "n2" {
		t.Fatalf("current after n1 = %q, want n2", e.Current().ID)
	}

	d, err = e.SelectOption("a")
	if err != nil {
		t.Fatalf("select n2: %v", err)
	}
	if !d.Finished {
		t.Error("terminal option should finish the run")
	}

	r := e.Result()
	if r.Status != StatusSucceeded || !r.Success {
		t.Errorf("result = %+v, want success", r)
	}
	if r.ModuleID != "module-7" {
		t.Errorf("result module = %q, want module-7", r.ModuleID)
	}
	if r.Score != 100 || r.CorrectDecisions != 2 || r.TotalNodes != 2 {
		t.Errorf("score = %d (%d/%d), want 100 (2/2)", r.Score, r.CorrectDecisions, r.TotalNodes)
	}
	if r.DurationSecs != 10 {
		t.Errorf("duration = %d, want 10", r.DurationSecs)
	}
	if r.TimedOut {
		t.Error("completed run should not be marked timed out")
	}
}

func TestPartialScoreFails(t *testing.T) {
	e := mustEngine(t, twoNodeDef())

	// One wrong, one right: 50% < 80% threshold.
	if _, err := e.SelectOption("b"); err != nil {
		t.Fatalf("select n1: %v", err)
	}
	if _, err := e.SelectOption("a"); err != nil {
		t.Fatalf("select n2: %v", err)
	}

	r := e.Result()
	if r.Success || r.Status != StatusFailed {
		t.Errorf("result = %+v, want failed", r)
	}
	if r.Score != 50 {
		t.Errorf("score = %d, want 50", r.Score)
	}
}

func TestTimeoutIsFailure(t *testing.T) {
	def := twoNodeDef()
	def.TimeLimit = 3
	e := mustEngine(t, def)

	// Answer the first node correctly, then let the clock run out.
	if _, err := e.SelectOption("a"); err != nil {
		t.Fatalf("select: %v", err)
	}
	for i := 0; i < 3; i++ {
		e.Tick()
	}

	if e.Status() != StatusFailed {
		t.Fatalf("status = %v, want failed", e.Status())
	}
	r := e.Result()
	if !r.TimedOut {
		t.Error("expected timed out result")
	}
	if r.Success {
		t.Error("timeout must never succeed, regardless of score so far")
	}
	if r.Score != 50 || r.CorrectDecisions != 1 {
		t.Errorf("score = %d (%d correct), want 50 (1)", r.Score, r.CorrectDecisions)
	}
	if r.DurationSecs != 3 {
		t.Errorf("duration = %d, want 3", r.DurationSecs)
	}
}

func TestFinishedRunIsInert(t *testing.T) {
	e := mustEngine(t, twoNodeDef())
	e.SelectOption("a")
	e.SelectOption("a")

	if _, err := e.SelectOption("a"); !errors.Is(err, ErrFinished) {
		t.Errorf("select after finish = %v, want ErrFinished", err)
	}
	if e.Current() != nil {
		t.Error("current should be nil after finish")
	}

	before := e.Result()
	e.Tick()
	e.Cancel()
	if after := e.Result(); after != before {
		t.Errorf("result changed after finish: %+v vs %+v", before, after)
	}
}

func TestUnknownOption(t *testing.T) {
	e := mustEngine(t, twoNodeDef())
	if _, err := e.SelectOption("zzz"); !errors.Is(err, ErrUnknownOption) {
		t.Errorf("err = %v, want ErrUnknownOption", err)
	}
	// A bad selection must not consume a decision.
	if _, err := e.SelectOption("a"); err != nil {
		t.Errorf("valid select after bad one: %v", err)
	}
}

func TestCancelZeroesResult(t *testing.T) {
	e := mustEngine(t, twoNodeDef())
	e.SelectOption("a")
	e.Cancel()

	if e.Status() != StatusCancelled {
		t.Fatalf("status = %v, want cancelled", e.Status())
	}
	r := e.Result()
	if r.Score != 0 || r.CorrectDecisions != 0 || r.Success {
		t.Errorf("cancelled result should carry no score, got %+v", r)
	}

	// Ticking a cancelled run does nothing.
	e.Tick()
	if e.Status() != StatusCancelled {
		t.Error("tick changed status of a cancelled run")
	}
}

func TestTickCountsDown(t *testing.T) {
	e := mustEngine(t, twoNodeDef())
	if e.Remaining() != 90 {
		t.Fatalf("remaining = %d, want 90", e.Remaining())
	}
	e.Tick()
	if e.Remaining() != 89 {
		t.Errorf("remaining = %d, want 89", e.Remaining())
	}
}
