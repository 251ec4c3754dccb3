package llm

import "testing"

func TestGeminiModelAliases(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // raw IDs pass through
	}
	for _, tt := range tests {
		if got := resolveModel(tt.in, geminiModels); got != tt.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGeminiSchemaTranslation(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"prompt": map[string]any{"type": "string"},
			"answer": map[string]any{"type": "integer"},
			"difficulty": map[string]any{
				"type": "string",
				"enum": []any{"beginner", "intermediate", "advanced"},
			},
			"options": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"prompt", "answer"},
	}

	s := buildGeminiSchema(def)

	if s.Type != "OBJECT" {
		t.Fatalf("type = %s, want OBJECT", s.Type)
	}
	if len(s.Properties) != 4 {
		t.Fatalf("properties = %d, want 4", len(s.Properties))
	}
	if s.Properties["prompt"].Type != "STRING" {
		t.Fatalf("prompt type = %s, want STRING", s.Properties["prompt"].Type)
	}
	if s.Properties["answer"].Type != "INTEGER" {
		t.Fatalf("answer type = %s, want INTEGER", s.Properties["answer"].Type)
	}
	if len(s.Properties["difficulty"].Enum) != 3 {
		t.Fatalf("enum values = %d, want 3", len(s.Properties["difficulty"].Enum))
	}
	if s.Properties["options"].Type != "ARRAY" {
		t.Fatalf("options type = %s, want ARRAY", s.Properties["options"].Type)
	}
	if s.Properties["options"].Items.Type != "STRING" {
		t.Fatalf("options items = %s, want STRING", s.Properties["options"].Items.Type)
	}
	if len(s.Required) != 2 {
		t.Fatalf("required = %d, want 2", len(s.Required))
	}
}
