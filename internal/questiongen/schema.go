package questiongen

import "github.com/obrev/obrev/internal/llm"

// QuestionSchema defines the JSON schema for LLM question generation
// responses.
var QuestionSchema = &llm.Schema{
	Name:        "quiz-question",
	Description: "A single NCLEX-style multiple-choice question with answer and rationale",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"prompt": map[string]any{
				"type":        "string",
				"description": "The question stem shown to the student, in plain ASCII text",
			},
			"options": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"minItems":    4,
				"maxItems":    4,
				"description": "Exactly 4 answer options where exactly one is correct",
			},
			"answer": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     3,
				"description": "Zero-based index of the correct option",
			},
			"rationale": map[string]any{
				"type":        "string",
				"description": "Why the correct answer is right and the distractors are wrong, in clinical terms",
			},
		},
		"required":             []any{"prompt", "options", "answer", "rationale"},
		"additionalProperties": false,
	},
}
