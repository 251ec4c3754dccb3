package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func questionSchema() *Schema {
	return &Schema{
		Name:        "quiz-item",
		Description: "A single quiz item",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"prompt": map[string]any{"type": "string"},
				"answer": map[string]any{"type": "integer", "minimum": 0},
				"tier":   map[string]any{"type": "string", "enum": []any{"easy", "medium", "hard"}},
			},
			"required": []any{"prompt", "answer"},
		},
	}
}

func TestValidateResponseAccepts(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"all fields", `{"prompt":"Name the first stage of labor.","answer":2,"tier":"easy"}`},
		{"optional omitted", `{"prompt":"Define lochia.","answer":0}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := validateResponse(questionSchema(), json.RawMessage(tt.raw)); err != nil {
				t.Fatalf("validateResponse: %v", err)
			}
		})
	}
}

func TestValidateResponseRejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing required", `{"prompt":"Define lochia."}`},
		{"wrong type", `{"prompt":"Define lochia.","answer":"two"}`},
		{"bad enum", `{"prompt":"Define lochia.","answer":1,"tier":"expert"}`},
		{"malformed json", `{not json}`},
		{"empty", ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(questionSchema(), json.RawMessage(tt.raw))
			var invalid *ErrInvalidResponse
			if !errors.As(err, &invalid) {
				t.Fatalf("err = %T (%v), want ErrInvalidResponse", err, err)
			}
		})
	}
}

func TestValidateResponseNilSchemaPasses(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`{"anything":"goes"}`)); err != nil {
		t.Fatalf("nil schema should pass, got: %v", err)
	}
}

func TestValidateResponseNestedStructures(t *testing.T) {
	schema := &Schema{
		Name: "quiz-batch",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"prompt": map[string]any{"type": "string"},
					},
					"required": []any{"prompt"},
				},
				"options": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"question", "options"},
		},
	}

	valid := json.RawMessage(`{"question":{"prompt":"Pick one."},"options":["a","b","c","d"]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("validateResponse: %v", err)
	}

	invalid := json.RawMessage(`{"question":{"prompt":"Pick one."},"options":[1,2]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("want error for wrong array item type")
	}
}
