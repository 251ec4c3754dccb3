package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent marks an app session starting or ending; the start
// event carries the streak heartbeat result.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID shared by a session's start and end events"),
		field.String("action").
			NotEmpty().
			Comment("Lifecycle action: start or end"),
		field.String("study_day").
			Default("").
			Comment("Local calendar day YYYY-MM-DD, start events only"),
		field.Int("streak_after").
			Default(0).
			Comment("Streak after the heartbeat, start events only"),
		field.Int("duration_secs").
			Default(0).
			Comment("Session length in seconds, end events only"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
