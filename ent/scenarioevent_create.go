// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/obrev/obrev/ent/scenarioevent"
)

// ScenarioEventCreate is the builder for creating a ScenarioEvent entity.
type ScenarioEventCreate struct {
	config
	mutation *ScenarioEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ScenarioEventCreate) SetSequence(v int64) *ScenarioEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ScenarioEventCreate) SetTimestamp(v time.Time) *ScenarioEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ScenarioEventCreate) SetNillableTimestamp(v *time.Time) *ScenarioEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *ScenarioEventCreate) SetRunID(v string) *ScenarioEventCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetScenarioID sets the "scenario_id" field.
func (_c *ScenarioEventCreate) SetScenarioID(v string) *ScenarioEventCreate {
	_c.mutation.SetScenarioID(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *ScenarioEventCreate) SetScore(v int) *ScenarioEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetCorrectDecisions sets the "correct_decisions" field.
func (_c *ScenarioEventCreate) SetCorrectDecisions(v int) *ScenarioEventCreate {
	_c.mutation.SetCorrectDecisions(v)
	return _c
}

// SetTotalNodes sets the "total_nodes" field.
func (_c *ScenarioEventCreate) SetTotalNodes(v int) *ScenarioEventCreate {
	_c.mutation.SetTotalNodes(v)
	return _c
}

// SetDurationSecs sets the "duration_secs" field.
func (_c *ScenarioEventCreate) SetDurationSecs(v int) *ScenarioEventCreate {
	_c.mutation.SetDurationSecs(v)
	return _c
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_c *ScenarioEventCreate) SetNillableDurationSecs(v *int) *ScenarioEventCreate {
	if v != nil {
		_c.SetDurationSecs(*v)
	}
	return _c
}

// SetSuccess sets the "success" field.
func (_c *ScenarioEventCreate) SetSuccess(v bool) *ScenarioEventCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetTimedOut sets the "timed_out" field.
func (_c *ScenarioEventCreate) SetTimedOut(v bool) *ScenarioEventCreate {
	_c.mutation.SetTimedOut(v)
	return _c
}

// SetNillableTimedOut sets the "timed_out" field if the given value is not nil.
func (_c *ScenarioEventCreate) SetNillableTimedOut(v *bool) *ScenarioEventCreate {
	if v != nil {
		_c.SetTimedOut(*v)
	}
	return _c
}

// SetXpAwarded sets the "xp_awarded" field.
func (_c *ScenarioEventCreate) SetXpAwarded(v int) *ScenarioEventCreate {
	_c.mutation.SetXpAwarded(v)
	return _c
}

// SetNillableXpAwarded sets the "xp_awarded" field if the given value is not nil.
func (_c *ScenarioEventCreate) SetNillableXpAwarded(v *int) *ScenarioEventCreate {
	if v != nil {
		_c.SetXpAwarded(*v)
	}
	return _c
}

// Mutation returns the ScenarioEventMutation object of the builder.
func (_c *ScenarioEventCreate) Mutation() *ScenarioEventMutation {
	return _c.mutation
}

// Save creates the ScenarioEvent in the database.
func (_c *ScenarioEventCreate) Save(ctx context.Context) (*ScenarioEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScenarioEventCreate) SaveX(ctx context.Context) *ScenarioEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScenarioEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScenarioEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScenarioEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := scenarioevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		v := scenarioevent.DefaultDurationSecs
		_c.mutation.SetDurationSecs(v)
	}
	if _, ok := _c.mutation.TimedOut(); !ok {
		v := scenarioevent.DefaultTimedOut
		_c.mutation.SetTimedOut(v)
	}
	if _, ok := _c.mutation.XpAwarded(); !ok {
		v := scenarioevent.DefaultXpAwarded
		_c.mutation.SetXpAwarded(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScenarioEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ScenarioEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ScenarioEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "ScenarioEvent.run_id"`)}
	}
	if v, ok := _c.mutation.RunID(); ok {
		if err := scenarioevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "ScenarioEvent.run_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScenarioID(); !ok {
		return &ValidationError{Name: "scenario_id", err: errors.New(`ent: missing required field "ScenarioEvent.scenario_id"`)}
	}
	if v, ok := _c.mutation.ScenarioID(); ok {
		if err := scenarioevent.ScenarioIDValidator(v); err != nil {
			return &ValidationError{Name: "scenario_id", err: fmt.Errorf(`ent: validator failed for field "ScenarioEvent.scenario_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "ScenarioEvent.score"`)}
	}
	if _, ok := _c.mutation.CorrectDecisions(); !ok {
		return &ValidationError{Name: "correct_decisions", err: errors.New(`ent: missing required field "ScenarioEvent.correct_decisions"`)}
	}
	if _, ok := _c.mutation.TotalNodes(); !ok {
		return &ValidationError{Name: "total_nodes", err: errors.New(`ent: missing required field "ScenarioEvent.total_nodes"`)}
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		return &ValidationError{Name: "duration_secs", err: errors.New(`ent: missing required field "ScenarioEvent.duration_secs"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "ScenarioEvent.success"`)}
	}
	if _, ok := _c.mutation.TimedOut(); !ok {
		return &ValidationError{Name: "timed_out", err: errors.New(`ent: missing required field "ScenarioEvent.timed_out"`)}
	}
	if _, ok := _c.mutation.XpAwarded(); !ok {
		return &ValidationError{Name: "xp_awarded", err: errors.New(`ent: missing required field "ScenarioEvent.xp_awarded"`)}
	}
	return nil
}

func (_c *ScenarioEventCreate) sqlSave(ctx context.Context) (*ScenarioEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScenarioEventCreate) createSpec() (*ScenarioEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ScenarioEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scenarioevent.Table, sqlgraph.NewFieldSpec(scenarioevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(scenarioevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(scenarioevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(scenarioevent.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.ScenarioID(); ok {
		_spec.SetField(scenarioevent.FieldScenarioID, field.TypeString, value)
		_node.ScenarioID = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(scenarioevent.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.CorrectDecisions(); ok {
		_spec.SetField(scenarioevent.FieldCorrectDecisions, field.TypeInt, value)
		_node.CorrectDecisions = value
	}
	if value, ok := _c.mutation.TotalNodes(); ok {
		_spec.SetField(scenarioevent.FieldTotalNodes, field.TypeInt, value)
		_node.TotalNodes = value
	}
	if value, ok := _c.mutation.DurationSecs(); ok {
		_spec.SetField(scenarioevent.FieldDurationSecs, field.TypeInt, value)
		_node.DurationSecs = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(scenarioevent.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.TimedOut(); ok {
		_spec.SetField(scenarioevent.FieldTimedOut, field.TypeBool, value)
		_node.TimedOut = value
	}
	if value, ok := _c.mutation.XpAwarded(); ok {
		_spec.SetField(scenarioevent.FieldXpAwarded, field.TypeInt, value)
		_node.XpAwarded = value
	}
	return _node, _spec
}

// ScenarioEventCreateBulk is the builder for creating many ScenarioEvent entities in bulk.
type ScenarioEventCreateBulk struct {
	config
	err      error
	builders []*ScenarioEventCreate
}

// Save creates the ScenarioEvent entities in the database.
func (_c *ScenarioEventCreateBulk) Save(ctx context.Context) ([]*ScenarioEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScenarioEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScenarioEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ScenarioEventCreateBulk) SaveX(ctx context.Context) []*ScenarioEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScenarioEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScenarioEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
