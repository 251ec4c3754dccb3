package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizEvent records a completed quiz attempt.
type QuizEvent struct {
	ent.Schema
}

func (QuizEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("quiz_id").
			NotEmpty().
			Comment("UUID of the quiz attempt"),
		field.String("module_id").
			NotEmpty().
			Comment("Module the quiz belongs to"),
		field.String("topic_id").
			Default("").
			Comment("Topic within the module, empty for mixed quizzes"),
		field.Int("score").
			Comment("Percentage score 0-100"),
		field.Int("total_questions"),
		field.Int("correct_answers"),
		field.Int("duration_secs").
			Default(0),
		field.Int("xp_awarded").
			Default(0),
	}
}

func (QuizEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("module_id"),
		index.Fields("topic_id"),
	}
}
