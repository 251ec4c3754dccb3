package scenario

// Vitals is the monitor readout shown alongside a decision point.
// Values are display strings ("142 bpm", "88/54") rather than numbers;
// scenarios script the readings, nothing computes on them.
type Vitals struct {
	FHR          string
	MaternalHR   string
	BP           string
	O2Sat        string
	Contractions string
}

// Option is one choice at a decision point.
type Option struct {
	ID       string
	Label    string
	Correct  bool
	Feedback string
	Next     string // next node ID; empty means the scenario ends here
}

// Node is a decision point in a scenario.
type Node struct {
	ID      string
	Prompt  string
	Vitals  Vitals
	Options []Option
}

// Definition is a complete branching emergency scenario. ModuleID ties
// the scenario to the course module its completion advances.
type Definition struct {
	ID          string
	ModuleID    string
	Title       string
	Description string
	Setting     string
	TimeLimit   int // seconds
	Root        string
	Nodes       []Node
}

// node looks up a node by ID, nil if absent.
func (d *Definition) node(id string) *Node {
	for i := range d.Nodes {
		if d.Nodes[i].ID == id {
			return &d.Nodes[i]
		}
	}
	return nil
}

// Status is the lifecycle state of a scenario run.
type Status int

const (
	StatusRunning Status = iota
	StatusSucceeded
	StatusFailed
	StatusCancelled
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Decision is the immediate outcome of selecting an option.
type Decision struct {
	Correct  bool
	Feedback string
	Finished bool
}

// Result summarizes a finished run.
type Result struct {
	RunID            string
	ScenarioID       string
	ModuleID         string
	Status           Status
	Score            int // percentage 0-100
	CorrectDecisions int
	TotalNodes       int
	DurationSecs     int
	TimedOut         bool
	Success          bool
}
