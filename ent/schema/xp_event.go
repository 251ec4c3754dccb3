package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// XPEvent records an experience-point award.
type XPEvent struct {
	ent.Schema
}

func (XPEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (XPEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("amount").
			Comment("XP awarded by this event"),
		field.String("reason").
			NotEmpty().
			Comment("What earned the XP: quiz, scenario, onboarding"),
		field.Int("total_after").
			Comment("Lifetime XP after applying this award"),
		field.Int("level_after").
			Comment("Level after applying this award"),
	}
}

func (XPEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("reason"),
	}
}
