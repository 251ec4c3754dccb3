package scenario

import (
	"errors"
	"fmt"
)

// ErrInvalidDefinition wraps all definition validation failures.
var ErrInvalidDefinition = errors.New("invalid scenario definition")

// Validate checks a definition for structural soundness: it must have
// an ID and a positive time limit, at least one node, a root that
// exists, exactly one correct option per node, and every branch target
// must reference a defined node.
func (d *Definition) Validate() error {
	fail := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidDefinition, fmt.Sprintf(format, args...))
	}

	if d.ID == "" {
		return fail("missing ID")
	}
	if d.TimeLimit <= 0 {
		return fail("%s: time limit must be positive", d.ID)
	}
	if len(d.Nodes) == 0 {
		return fail("%s: no nodes", d.ID)
	}
	if d.node(d.Root) == nil {
		return fail("%s: root node %q not defined", d.ID, d.Root)
	}

	seen := make(map[string]bool, len(d.Nodes))
	for _, n := range d.Nodes {
		if n.ID == "" {
			return fail("%s: node with empty ID", d.ID)
		}
		if seen[n.ID] {
			return fail("%s: duplicate node %q", d.ID, n.ID)
		}
		seen[n.ID] = true

		if len(n.Options) < 2 {
			return fail("%s: node %q needs at least two options", d.ID, n.ID)
		}
		correct := 0
		for _, o := range n.Options {
			if o.ID == "" {
				return fail("%s: node %q has option with empty ID", d.ID, n.ID)
			}
			if o.Correct {
				correct++
			}
			if o.Next != "" && d.node(o.Next) == nil {
				return fail("%s: node %q option %q branches to undefined node %q",
					d.ID, n.ID, o.ID, o.Next)
			}
		}
		if correct != 1 {
			return fail("%s: node %q has %d correct options, want exactly 1", d.ID, n.ID, correct)
		}
	}
	return nil
}
