package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single abstraction the rest of the app sees for
// language-model access. Implementations exist for Anthropic, OpenAI,
// Gemini, and a scripted mock.
type Provider interface {
	// Generate runs one completion. When Request.Schema is set the
	// provider uses its native structured-output mechanism and the
	// returned Content is schema-validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the model this provider is configured for.
	ModelID() string
}

// Request is a provider-neutral completion request.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation so far. Question generation sends a
	// single user message.
	Messages []Message

	// Schema, when set, constrains the output to conforming JSON.
	// When nil the response is raw text wrapped as json.RawMessage.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0,1]; zero means deterministic.
	Temperature float64
}

// Message is one turn of conversation.
type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and describes the JSON shape the model must produce.
type Schema struct {
	// Name identifies the schema; kebab-case, e.g. "quiz-question".
	// Providers use it as the tool or response-format name.
	Name string

	// Description is sent to the model to guide generation.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Response is a provider-neutral completion result.
type Response struct {
	// Content is the generated output. Schema-validated JSON when the
	// request carried a schema, raw text otherwise.
	Content json.RawMessage

	// Usage is the token count the provider reported.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage is token accounting for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
