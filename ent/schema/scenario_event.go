package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScenarioEvent records a completed emergency simulation run.
type ScenarioEvent struct {
	ent.Schema
}

func (ScenarioEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ScenarioEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			NotEmpty().
			Comment("UUID of the simulation run"),
		field.String("scenario_id").
			NotEmpty().
			Comment("Scenario definition that was run"),
		field.Int("score").
			Comment("Percentage score 0-100"),
		field.Int("correct_decisions"),
		field.Int("total_nodes"),
		field.Int("duration_secs").
			Default(0).
			Comment("Logical seconds consumed before the run ended"),
		field.Bool("success").
			Comment("Whether the run met the passing threshold"),
		field.Bool("timed_out").
			Default(false),
		field.Int("xp_awarded").
			Default(0),
	}
}

func (ScenarioEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("scenario_id"),
		index.Fields("success"),
	}
}
