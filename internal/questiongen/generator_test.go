package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/obrev/obrev/internal/content"
	"github.com/obrev/obrev/internal/llm"
)

func testInput(t *testing.T) GenerateInput {
	t.Helper()
	mod := content.ModuleByID("module-8")
	if mod == nil {
		t.Fatal("module-8 missing from catalog")
	}
	topic := mod.Topic("postpartum-hemorrhage")
	if topic == nil {
		t.Fatal("postpartum-hemorrhage missing from module-8")
	}
	return GenerateInput{Module: mod, Topic: topic}
}

func validOutput() json.RawMessage {
	return json.RawMessage(`{
		"prompt": "A client is 2 hours postpartum with a boggy fundus. What is the nurse's first action?",
		"options": ["Massage the fundus", "Administer oxytocin", "Notify the provider", "Increase IV fluids"],
		"answer": 0,
		"rationale": "Fundal massage is the first-line intervention for uterine atony. Medications follow if the uterus does not firm."
	}`)
}

func TestLLMGeneratorProducesQuestion(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validOutput()})
	gen := New(mock, DefaultConfig())

	q, err := gen.Generate(context.Background(), testInput(t))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if q.ModuleID != "module-8" || q.TopicID != "postpartum-hemorrhage" {
		t.Errorf("question tagged %s/%s, want module-8/postpartum-hemorrhage", q.ModuleID, q.TopicID)
	}
	if !strings.HasPrefix(q.ID, "gen-") {
		t.Errorf("generated ID = %q, want gen- prefix", q.ID)
	}
	if len(q.Options) != 4 || q.Answer != 0 {
		t.Errorf("options/answer = %d/%d", len(q.Options), q.Answer)
	}
}

func TestLLMGeneratorRequestShape(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validOutput()})
	gen := New(mock, DefaultConfig())

	input := testInput(t)
	input.PriorPrompts = []string{"What is the leading cause of early postpartum hemorrhage?"}

	if _, err := gen.Generate(context.Background(), input); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "quiz-question" {
		t.Errorf("schema = %+v, want quiz-question", req.Schema)
	}
	userMsg := req.Messages[0].Content
	if !strings.Contains(userMsg, "Postpartum Complications") {
		t.Errorf("user message missing module title:\n%s", userMsg)
	}
	if !strings.Contains(userMsg, "leading cause of early postpartum hemorrhage") {
		t.Errorf("user message missing prior prompt:\n%s", userMsg)
	}
}

func TestLLMGeneratorRejectsInvalidOutput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty prompt", `{"prompt":"","options":["a","b","c","d"],"answer":0,"rationale":"r"}`},
		{"three options", `{"prompt":"p","options":["a","b","c"],"answer":0,"rationale":"r"}`},
		{"answer out of range", `{"prompt":"p","options":["a","b","c","d"],"answer":4,"rationale":"r"}`},
		{"duplicate options", `{"prompt":"p","options":["a","a","c","d"],"answer":0,"rationale":"r"}`},
		{"missing rationale", `{"prompt":"p","options":["a","b","c","d"],"answer":0,"rationale":""}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(tt.body)})
			gen := New(mock, DefaultConfig())

			_, err := gen.Generate(context.Background(), testInput(t))
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("err = %v, want ValidationError", err)
			}
		})
	}
}

func TestBankGeneratorSkipsAskedPrompts(t *testing.T) {
	gen := &BankGenerator{}
	input := testInput(t)

	first, err := gen.Generate(context.Background(), input)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	input.PriorPrompts = []string{first.Prompt}
	second, err := gen.Generate(context.Background(), input)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if second.Prompt == first.Prompt {
		t.Errorf("bank repeated %q while unasked questions remained", first.Prompt)
	}
}

func TestBankGeneratorWrapsWhenExhausted(t *testing.T) {
	gen := &BankGenerator{}
	input := testInput(t)

	for _, q := range content.Questions(input.Module.ID, input.Topic.ID) {
		input.PriorPrompts = append(input.PriorPrompts, q.Prompt)
	}
	for _, q := range content.Questions(input.Module.ID, "") {
		input.PriorPrompts = append(input.PriorPrompts, q.Prompt)
	}

	q, err := gen.Generate(context.Background(), input)
	if err != nil {
		t.Fatalf("Generate after exhaustion: %v", err)
	}
	if q.Prompt == "" {
		t.Error("wrapped question is empty")
	}
}

func TestWithFallbackUsesBankOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("upstream down")})
	gen := WithFallback(New(mock, DefaultConfig()), &BankGenerator{})

	q, err := gen.Generate(context.Background(), testInput(t))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.HasPrefix(q.ID, "q-") {
		t.Errorf("fallback question ID = %q, want bank q- prefix", q.ID)
	}
}

func TestWithFallbackPrefersPrimary(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validOutput()})
	gen := WithFallback(New(mock, DefaultConfig()), &BankGenerator{})

	q, err := gen.Generate(context.Background(), testInput(t))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.HasPrefix(q.ID, "gen-") {
		t.Errorf("primary question ID = %q, want gen- prefix", q.ID)
	}
}
