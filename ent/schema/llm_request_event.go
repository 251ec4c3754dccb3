package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMRequestEvent logs one LLM API call, successful or not, for the
// usage reports in the llm CLI command.
type LLMRequestEvent struct {
	ent.Schema
}

func (LLMRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LLMRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").
			Comment("Configured provider: anthropic, openai, gemini"),
		field.String("model").
			Comment("Model that served the request"),
		field.String("purpose").
			Comment("Caller label, e.g. question-gen"),
		field.Int("input_tokens").
			Default(0).
			Comment("Prompt tokens"),
		field.Int("output_tokens").
			Default(0).
			Comment("Completion tokens"),
		field.Int64("latency_ms").
			Default(0).
			Comment("Request wall time in milliseconds"),
		field.Bool("success").
			Comment("False when the call errored"),
		field.String("error_message").
			Default("").
			Comment("Error text for failed calls"),
	}
}

func (LLMRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider"),
		index.Fields("purpose"),
		index.Fields("success"),
	}
}
