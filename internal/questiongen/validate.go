package questiongen

import (
	"fmt"

	"github.com/obrev/obrev/internal/content"
)

// ValidationError describes why a generated question was rejected.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid generated question: %s", e.Message)
}

// validate checks a generated question before it reaches the student.
func validate(q *content.Question) *ValidationError {
	if q.Prompt == "" {
		return &ValidationError{Message: "prompt is empty"}
	}
	if len(q.Prompt) > 600 {
		return &ValidationError{Message: "prompt exceeds 600 characters"}
	}
	if len(q.Options) != 4 {
		return &ValidationError{Message: fmt.Sprintf("expected 4 options, got %d", len(q.Options))}
	}
	seen := make(map[string]bool, len(q.Options))
	for i, opt := range q.Options {
		if opt == "" {
			return &ValidationError{Message: fmt.Sprintf("option %d is empty", i)}
		}
		if seen[opt] {
			return &ValidationError{Message: fmt.Sprintf("duplicate option %q", opt)}
		}
		seen[opt] = true
	}
	if q.Answer < 0 || q.Answer >= len(q.Options) {
		return &ValidationError{Message: fmt.Sprintf("answer index %d out of range", q.Answer)}
	}
	if q.Rationale == "" {
		return &ValidationError{Message: "rationale is empty"}
	}
	return nil
}
