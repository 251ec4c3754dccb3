// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/obrev/obrev/ent/predicate"
	"github.com/obrev/obrev/ent/scenarioevent"
)

// ScenarioEventUpdate is the builder for updating ScenarioEvent entities.
type ScenarioEventUpdate struct {
	config
	hooks    []Hook
	mutation *ScenarioEventMutation
}

// Where appends a list predicates to the ScenarioEventUpdate builder.
func (_u *ScenarioEventUpdate) Where(ps ...predicate.ScenarioEvent) *ScenarioEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *ScenarioEventUpdate) SetRunID(v string) *ScenarioEventUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *ScenarioEventUpdate) SetNillableRunID(v *string) *ScenarioEventUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetScenarioID sets the "scenario_id" field.
func (_u *ScenarioEventUpdate) SetScenarioID(v string) *ScenarioEventUpdate {
	_u.mutation.SetScenarioID(v)
	return _u
}

// SetNillableScenarioID sets the "scenario_id" field if the given value is not nil.
func (_u *ScenarioEventUpdate) SetNillableScenarioID(v *string) *ScenarioEventUpdate {
	if v != nil {
		_u.SetScenarioID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *ScenarioEventUpdate) SetScore(v int) *ScenarioEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ScenarioEventUpdate) SetNillableScore(v *int) *ScenarioEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ScenarioEventUpdate) AddScore(v int) *ScenarioEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetCorrectDecisions sets the "correct_decisions" field.
func (_u *ScenarioEventUpdate) SetCorrectDecisions(v int) *ScenarioEventUpdate {
	_u.mutation.ResetCorrectDecisions()
	_u.mutation.SetCorrectDecisions(v)
	return _u
}

// SetNillableCorrectDecisions sets the "correct_decisions" field if the given value is not nil.
func (_u *ScenarioEventUpdate) SetNillableCorrectDecisions(v *int) *ScenarioEventUpdate {
	if v != nil {
		_u.SetCorrectDecisions(*v)
	}
	return _u
}

// AddCorrectDecisions adds value to the "correct_decisions" field.
func (_u *ScenarioEventUpdate) AddCorrectDecisions(v int) *ScenarioEventUpdate {
	_u.mutation.AddCorrectDecisions(v)
	return _u
}

// SetTotalNodes sets the "total_nodes" field.
func (_u *ScenarioEventUpdate) SetTotalNodes(v int) *ScenarioEventUpdate {
	_u.mutation.ResetTotalNodes()
	_u.mutation.SetTotalNodes(v)
	return _u
}

// SetNillableTotalNodes sets the "total_nodes" field if the given value is not nil.
func (_u *ScenarioEventUpdate) SetNillableTotalNodes(v *int) *ScenarioEventUpdate {
	if v != nil {
		_u.SetTotalNodes(*v)
	}
	return _u
}

// AddTotalNodes adds value to the "total_nodes" field.
func (_u *ScenarioEventUpdate) AddTotalNodes(v int) *ScenarioEventUpdate {
	_u.mutation.AddTotalNodes(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *ScenarioEventUpdate) SetDurationSecs(v int) *ScenarioEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *ScenarioEventUpdate) SetNillableDurationSecs(v *int) *ScenarioEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *ScenarioEventUpdate) AddDurationSecs(v int) *ScenarioEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *ScenarioEventUpdate) SetSuccess(v bool) *ScenarioEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *ScenarioEventUpdate) SetNillableSuccess(v *bool) *ScenarioEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetTimedOut sets the "timed_out" field.
func (_u *ScenarioEventUpdate) SetTimedOut(v bool) *ScenarioEventUpdate {
	_u.mutation.SetTimedOut(v)
	return _u
}

// SetNillableTimedOut sets the "timed_out" field if the given value is not nil.
func (_u *ScenarioEventUpdate) SetNillableTimedOut(v *bool) *ScenarioEventUpdate {
	if v != nil {
		_u.SetTimedOut(*v)
	}
	return _u
}

// SetXpAwarded sets the "xp_awarded" field.
func (_u *ScenarioEventUpdate) SetXpAwarded(v int) *ScenarioEventUpdate {
	_u.mutation.ResetXpAwarded()
	_u.mutation.SetXpAwarded(v)
	return _u
}

// SetNillableXpAwarded sets the "xp_awarded" field if the given value is not nil.
func (_u *ScenarioEventUpdate) SetNillableXpAwarded(v *int) *ScenarioEventUpdate {
	if v != nil {
		_u.SetXpAwarded(*v)
	}
	return _u
}

// AddXpAwarded adds value to the "xp_awarded" field.
func (_u *ScenarioEventUpdate) AddXpAwarded(v int) *ScenarioEventUpdate {
	_u.mutation.AddXpAwarded(v)
	return _u
}

// Mutation returns the ScenarioEventMutation object of the builder.
func (_u *ScenarioEventUpdate) Mutation() *ScenarioEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScenarioEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScenarioEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScenarioEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScenarioEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScenarioEventUpdate) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := scenarioevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "ScenarioEvent.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScenarioID(); ok {
		if err := scenarioevent.ScenarioIDValidator(v); err != nil {
			return &ValidationError{Name: "scenario_id", err: fmt.Errorf(`ent: validator failed for field "ScenarioEvent.scenario_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ScenarioEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scenarioevent.Table, scenarioevent.Columns, sqlgraph.NewFieldSpec(scenarioevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(scenarioevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScenarioID(); ok {
		_spec.SetField(scenarioevent.FieldScenarioID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(scenarioevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(scenarioevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectDecisions(); ok {
		_spec.SetField(scenarioevent.FieldCorrectDecisions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectDecisions(); ok {
		_spec.AddField(scenarioevent.FieldCorrectDecisions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalNodes(); ok {
		_spec.SetField(scenarioevent.FieldTotalNodes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalNodes(); ok {
		_spec.AddField(scenarioevent.FieldTotalNodes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(scenarioevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(scenarioevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(scenarioevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimedOut(); ok {
		_spec.SetField(scenarioevent.FieldTimedOut, field.TypeBool, value)
	}
	if value, ok := _u.mutation.XpAwarded(); ok {
		_spec.SetField(scenarioevent.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpAwarded(); ok {
		_spec.AddField(scenarioevent.FieldXpAwarded, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scenarioevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScenarioEventUpdateOne is the builder for updating a single ScenarioEvent entity.
type ScenarioEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScenarioEventMutation
}

// SetRunID sets the "run_id" field.
func (_u *ScenarioEventUpdateOne) SetRunID(v string) *ScenarioEventUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *ScenarioEventUpdateOne) SetNillableRunID(v *string) *ScenarioEventUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetScenarioID sets the "scenario_id" field.
func (_u *ScenarioEventUpdateOne) SetScenarioID(v string) *ScenarioEventUpdateOne {
	_u.mutation.SetScenarioID(v)
	return _u
}

// SetNillableScenarioID sets the "scenario_id" field if the given value is not nil.
func (_u *ScenarioEventUpdateOne) SetNillableScenarioID(v *string) *ScenarioEventUpdateOne {
	if v != nil {
		_u.SetScenarioID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *ScenarioEventUpdateOne) SetScore(v int) *ScenarioEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ScenarioEventUpdateOne) SetNillableScore(v *int) *ScenarioEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ScenarioEventUpdateOne) AddScore(v int) *ScenarioEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetCorrectDecisions sets the "correct_decisions" field.
func (_u *ScenarioEventUpdateOne) SetCorrectDecisions(v int) *ScenarioEventUpdateOne {
	_u.mutation.ResetCorrectDecisions()
	_u.mutation.SetCorrectDecisions(v)
	return _u
}

// SetNillableCorrectDecisions sets the "correct_decisions" field if the given value is not nil.
func (_u *ScenarioEventUpdateOne) SetNillableCorrectDecisions(v *int) *ScenarioEventUpdateOne {
	if v != nil {
		_u.SetCorrectDecisions(*v)
	}
	return _u
}

// AddCorrectDecisions adds value to the "correct_decisions" field.
func (_u *ScenarioEventUpdateOne) AddCorrectDecisions(v int) *ScenarioEventUpdateOne {
	_u.mutation.AddCorrectDecisions(v)
	return _u
}

// SetTotalNodes sets the "total_nodes" field.
func (_u *ScenarioEventUpdateOne) SetTotalNodes(v int) *ScenarioEventUpdateOne {
	_u.mutation.ResetTotalNodes()
	_u.mutation.SetTotalNodes(v)
	return _u
}

// SetNillableTotalNodes sets the "total_nodes" field if the given value is not nil.
func (_u *ScenarioEventUpdateOne) SetNillableTotalNodes(v *int) *ScenarioEventUpdateOne {
	if v != nil {
		_u.SetTotalNodes(*v)
	}
	return _u
}

// AddTotalNodes adds value to the "total_nodes" field.
func (_u *ScenarioEventUpdateOne) AddTotalNodes(v int) *ScenarioEventUpdateOne {
	_u.mutation.AddTotalNodes(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *ScenarioEventUpdateOne) SetDurationSecs(v int) *ScenarioEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *ScenarioEventUpdateOne) SetNillableDurationSecs(v *int) *ScenarioEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *ScenarioEventUpdateOne) AddDurationSecs(v int) *ScenarioEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *ScenarioEventUpdateOne) SetSuccess(v bool) *ScenarioEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *ScenarioEventUpdateOne) SetNillableSuccess(v *bool) *ScenarioEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetTimedOut sets the "timed_out" field.
func (_u *ScenarioEventUpdateOne) SetTimedOut(v bool) *ScenarioEventUpdateOne {
	_u.mutation.SetTimedOut(v)
	return _u
}

// SetNillableTimedOut sets the "timed_out" field if the given value is not nil.
func (_u *ScenarioEventUpdateOne) SetNillableTimedOut(v *bool) *ScenarioEventUpdateOne {
	if v != nil {
		_u.SetTimedOut(*v)
	}
	return _u
}

// SetXpAwarded sets the "xp_awarded" field.
func (_u *ScenarioEventUpdateOne) SetXpAwarded(v int) *ScenarioEventUpdateOne {
	_u.mutation.ResetXpAwarded()
	_u.mutation.SetXpAwarded(v)
	return _u
}

// SetNillableXpAwarded sets the "xp_awarded" field if the given value is not nil.
func (_u *ScenarioEventUpdateOne) SetNillableXpAwarded(v *int) *ScenarioEventUpdateOne {
	if v != nil {
		_u.SetXpAwarded(*v)
	}
	return _u
}

// AddXpAwarded adds value to the "xp_awarded" field.
func (_u *ScenarioEventUpdateOne) AddXpAwarded(v int) *ScenarioEventUpdateOne {
	_u.mutation.AddXpAwarded(v)
	return _u
}

// Mutation returns the ScenarioEventMutation object of the builder.
func (_u *ScenarioEventUpdateOne) Mutation() *ScenarioEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScenarioEventUpdate builder.
func (_u *ScenarioEventUpdateOne) Where(ps ...predicate.ScenarioEvent) *ScenarioEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScenarioEventUpdateOne) Select(field string, fields ...string) *ScenarioEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScenarioEvent entity.
func (_u *ScenarioEventUpdateOne) Save(ctx context.Context) (*ScenarioEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScenarioEventUpdateOne) SaveX(ctx context.Context) *ScenarioEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScenarioEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScenarioEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScenarioEventUpdateOne) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := scenarioevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "ScenarioEvent.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScenarioID(); ok {
		if err := scenarioevent.ScenarioIDValidator(v); err != nil {
			return &ValidationError{Name: "scenario_id", err: fmt.Errorf(`ent: validator failed for field "ScenarioEvent.scenario_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ScenarioEventUpdateOne) sqlSave(ctx context.Context) (_node *ScenarioEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scenarioevent.Table, scenarioevent.Columns, sqlgraph.NewFieldSpec(scenarioevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScenarioEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scenarioevent.FieldID)
		for _, f := range fields {
			if !scenarioevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scenarioevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(scenarioevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScenarioID(); ok {
		_spec.SetField(scenarioevent.FieldScenarioID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(scenarioevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(scenarioevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectDecisions(); ok {
		_spec.SetField(scenarioevent.FieldCorrectDecisions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectDecisions(); ok {
		_spec.AddField(scenarioevent.FieldCorrectDecisions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalNodes(); ok {
		_spec.SetField(scenarioevent.FieldTotalNodes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalNodes(); ok {
		_spec.AddField(scenarioevent.FieldTotalNodes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(scenarioevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(scenarioevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(scenarioevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimedOut(); ok {
		_spec.SetField(scenarioevent.FieldTimedOut, field.TypeBool, value)
	}
	if value, ok := _u.mutation.XpAwarded(); ok {
		_spec.SetField(scenarioevent.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpAwarded(); ok {
		_spec.AddField(scenarioevent.FieldXpAwarded, field.TypeInt, value)
	}
	_node = &ScenarioEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scenarioevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
