package questiongen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/obrev/obrev/internal/content"
	"github.com/obrev/obrev/internal/llm"
)

// Generator produces quiz questions for a module/topic pair.
type Generator interface {
	// Generate produces a single validated question for the given input.
	Generate(ctx context.Context, input GenerateInput) (*content.Question, error)
}

// LLMGenerator implements Generator using an LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// questionOutput is the raw LLM response before validation.
type questionOutput struct {
	Prompt    string   `json:"prompt"`
	Options   []string `json:"options"`
	Answer    int      `json:"answer"`
	Rationale string   `json:"rationale"`
}

// Generate produces a single question for the given input context.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*content.Question, error) {
	if input.Module == nil || input.Topic == nil {
		return nil, fmt.Errorf("questiongen: module and topic are required")
	}

	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, g.config)},
		},
		Schema:      QuestionSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw questionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	q := &content.Question{
		ID:        "gen-" + uuid.NewString(),
		ModuleID:  input.Module.ID,
		TopicID:   input.Topic.ID,
		Prompt:    raw.Prompt,
		Options:   raw.Options,
		Answer:    raw.Answer,
		Rationale: raw.Rationale,
	}

	if verr := validate(q); verr != nil {
		return nil, verr
	}

	return q, nil
}

// BankGenerator serves questions from the built-in bank. It is the
// offline path: no API key, no network.
type BankGenerator struct{}

// Generate returns the first bank question for the topic that is not in
// PriorPrompts, wrapping around to repeats only when the bank for the
// topic is exhausted.
func (g *BankGenerator) Generate(_ context.Context, input GenerateInput) (*content.Question, error) {
	if input.Module == nil || input.Topic == nil {
		return nil, fmt.Errorf("questiongen: module and topic are required")
	}

	bank := content.Questions(input.Module.ID, input.Topic.ID)
	if len(bank) == 0 {
		bank = content.Questions(input.Module.ID, "")
	}
	if len(bank) == 0 {
		return nil, fmt.Errorf("no bank questions for module %q", input.Module.ID)
	}

	asked := make(map[string]bool, len(input.PriorPrompts))
	for _, p := range input.PriorPrompts {
		asked[p] = true
	}
	for i := range bank {
		if !asked[bank[i].Prompt] {
			return &bank[i], nil
		}
	}

	// Every bank question was already asked this session.
	q := bank[len(input.PriorPrompts)%len(bank)]
	return &q, nil
}

// fallbackGenerator tries a primary generator and falls back to a
// secondary when the primary fails for any reason.
type fallbackGenerator struct {
	primary  Generator
	fallback Generator
}

// WithFallback wraps primary so that any generation error is absorbed by
// asking fallback instead. Used to keep quizzes working when the LLM is
// unreachable or returns garbage.
func WithFallback(primary, fallback Generator) Generator {
	return &fallbackGenerator{primary: primary, fallback: fallback}
}

func (g *fallbackGenerator) Generate(ctx context.Context, input GenerateInput) (*content.Question, error) {
	q, err := g.primary.Generate(ctx, input)
	if err == nil {
		return q, nil
	}
	return g.fallback.Generate(ctx, input)
}
