// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/obrev/obrev/ent/scenarioevent"
)

// ScenarioEvent is the model entity for the ScenarioEvent schema.
type ScenarioEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Global monotonic sequence, shared across event types
	Sequence int64 `json:"sequence,omitempty"`
	// Event time, UTC
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID of the simulation run
	RunID string `json:"run_id,omitempty"`
	// Scenario definition that was run
	ScenarioID string `json:"scenario_id,omitempty"`
	// Percentage score 0-100
	Score int `json:"score,omitempty"`
	// CorrectDecisions holds the value of the "correct_decisions" field.
	CorrectDecisions int `json:"correct_decisions,omitempty"`
	// TotalNodes holds the value of the "total_nodes" field.
	TotalNodes int `json:"total_nodes,omitempty"`
	// Logical seconds consumed before the run ended
	DurationSecs int `json:"duration_secs,omitempty"`
	// Whether the run met the passing threshold
	Success bool `json:"success,omitempty"`
	// TimedOut holds the value of the "timed_out" field.
	TimedOut bool `json:"timed_out,omitempty"`
	// XpAwarded holds the value of the "xp_awarded" field.
	XpAwarded    int `json:"xp_awarded,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScenarioEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scenarioevent.FieldSuccess, scenarioevent.FieldTimedOut:
			values[i] = new(sql.NullBool)
		case scenarioevent.FieldID, scenarioevent.FieldSequence, scenarioevent.FieldScore, scenarioevent.FieldCorrectDecisions, scenarioevent.FieldTotalNodes, scenarioevent.FieldDurationSecs, scenarioevent.FieldXpAwarded:
			values[i] = new(sql.NullInt64)
		case scenarioevent.FieldRunID, scenarioevent.FieldScenarioID:
			values[i] = new(sql.NullString)
		case scenarioevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScenarioEvent fields.
func (_m *ScenarioEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scenarioevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case scenarioevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case scenarioevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case scenarioevent.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case scenarioevent.FieldScenarioID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scenario_id", values[i])
			} else if value.Valid {
				_m.ScenarioID = value.String
			}
		case scenarioevent.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case scenarioevent.FieldCorrectDecisions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_decisions", values[i])
			} else if value.Valid {
				_m.CorrectDecisions = int(value.Int64)
			}
		case scenarioevent.FieldTotalNodes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_nodes", values[i])
			} else if value.Valid {
				_m.TotalNodes = int(value.Int64)
			}
		case scenarioevent.FieldDurationSecs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_secs", values[i])
			} else if value.Valid {
				_m.DurationSecs = int(value.Int64)
			}
		case scenarioevent.FieldSuccess:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field success", values[i])
			} else if value.Valid {
				_m.Success = value.Bool
			}
		case scenarioevent.FieldTimedOut:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field timed_out", values[i])
			} else if value.Valid {
				_m.TimedOut = value.Bool
			}
		case scenarioevent.FieldXpAwarded:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field xp_awarded", values[i])
			} else if value.Valid {
				_m.XpAwarded = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ScenarioEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ScenarioEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ScenarioEvent.
// Note that you need to call ScenarioEvent.Unwrap() before calling this method if this ScenarioEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ScenarioEvent) Update() *ScenarioEventUpdateOne {
	return NewScenarioEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ScenarioEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ScenarioEvent) Unwrap() *ScenarioEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ScenarioEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ScenarioEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ScenarioEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("scenario_id=")
	builder.WriteString(_m.ScenarioID)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("correct_decisions=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectDecisions))
	builder.WriteString(", ")
	builder.WriteString("total_nodes=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalNodes))
	builder.WriteString(", ")
	builder.WriteString("duration_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationSecs))
	builder.WriteString(", ")
	builder.WriteString("success=")
	builder.WriteString(fmt.Sprintf("%v", _m.Success))
	builder.WriteString(", ")
	builder.WriteString("timed_out=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimedOut))
	builder.WriteString(", ")
	builder.WriteString("xp_awarded=")
	builder.WriteString(fmt.Sprintf("%v", _m.XpAwarded))
	builder.WriteByte(')')
	return builder.String()
}

// ScenarioEvents is a parsable slice of ScenarioEvent.
type ScenarioEvents []*ScenarioEvent
