package scenario

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
)

// PassThreshold is the minimum percentage score for a successful run.
const PassThreshold = 80

var (
	// ErrFinished is returned by operations on a run that already ended.
	ErrFinished = errors.New("scenario run already finished")

	// ErrUnknownOption is returned when the selected option does not
	// exist at the current node.
	ErrUnknownOption = errors.New("unknown option")
)

// Engine drives a single run of a scenario definition. It advances on
// logical seconds only: the caller owns the clock and calls Tick once
// per second, so a run is fully deterministic and testable without
// real time.
type Engine struct {
	def    *Definition
	runID  string
	nodeID string

	remaining int
	elapsed   int
	correct   int
	answered  int
	status    Status
	timedOut  bool
}

// NewEngine validates the definition and starts a run at its root node
// with the full time budget.
func NewEngine(def *Definition) (*Engine, error) {
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("new engine: %w", err)
	}
	return &Engine{
		def:       def,
		runID:     uuid.NewString(),
		nodeID:    def.Root,
		remaining: def.TimeLimit,
		status:    StatusRunning,
	}, nil
}

// RunID returns the unique ID of this run.
func (e *Engine) RunID() string { return e.runID }

// Definition returns the scenario being run.
func (e *Engine) Definition() *Definition { return e.def }

// Status returns the current lifecycle state.
func (e *Engine) Status() Status { return e.status }

// Remaining returns the seconds left on the clock.
func (e *Engine) Remaining() int { return e.remaining }

// Current returns the node awaiting a decision, nil once the run ended.
func (e *Engine) Current() *Node {
	if e.status != StatusRunning {
		return nil
	}
	return e.def.node(e.nodeID)
}

// Tick consumes one logical second. When the clock reaches zero the
// run fails as timed out, regardless of decisions made so far.
// Ticks after the run ended are no-ops.
func (e *Engine) Tick() {
	if e.status != StatusRunning {
		return
	}
	e.remaining--
	e.elapsed++
	if e.remaining <= 0 {
		e.remaining = 0
		e.timedOut = true
		e.status = StatusFailed
	}
}

// SelectOption applies the student's decision at the current node.
// A correct choice counts toward the score. The run advances to the
// option's branch target, or finishes when the option is terminal.
func (e *Engine) SelectOption(optionID string) (Decision, error) {
	if e.status != StatusRunning {
		return Decision{}, ErrFinished
	}

	node := e.def.node(e.nodeID)
	var opt *Option
	for i := range node.Options {
		if node.Options[i].ID == optionID {
			opt = &node.Options[i]
			break
		}
	}
	if opt == nil {
		return Decision{}, fmt.Errorf("%w: %q at node %q", ErrUnknownOption, optionID, e.nodeID)
	}

	e.answered++
	if opt.Correct {
		e.correct++
	}

	d := Decision{Correct: opt.Correct, Feedback: opt.Feedback}
	if opt.Next == "" {
		e.finish()
		d.Finished = true
	} else {
		e.nodeID = opt.Next
	}
	return d, nil
}

// Cancel abandons the run. No score is produced and no further
// operations are accepted.
func (e *Engine) Cancel() {
	if e.status != StatusRunning {
		return
	}
	e.status = StatusCancelled
}

// finish closes out a run that reached a terminal option.
func (e *Engine) finish() {
	if e.score() >= PassThreshold {
		e.status = StatusSucceeded
	} else {
		e.status = StatusFailed
	}
}

// score computes the percentage of correct decisions over the total
// node count of the definition, not just the nodes visited.
func (e *Engine) score() int {
	return int(math.Round(float64(e.correct) / float64(len(e.def.Nodes)) * 100))
}

// Result summarizes the run. Valid once the run has ended; scores for
// cancelled runs are zeroed.
func (e *Engine) Result() Result {
	r := Result{
		RunID:        e.runID,
		ScenarioID:   e.def.ID,
		ModuleID:     e.def.ModuleID,
		Status:       e.status,
		TotalNodes:   len(e.def.Nodes),
		DurationSecs: e.elapsed,
		TimedOut:     e.timedOut,
	}
	if e.status == StatusCancelled {
		return r
	}
	r.Score = e.score()
	r.CorrectDecisions = e.correct
	r.Success = e.status == StatusSucceeded
	return r
}
