// Code generated by ent, DO NOT EDIT.

package scenarioevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/obrev/obrev/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldTimestamp, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldRunID, v))
}

// ScenarioID applies equality check predicate on the "scenario_id" field. It's identical to ScenarioIDEQ.
func ScenarioID(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldScenarioID, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldScore, v))
}

// CorrectDecisions applies equality check predicate on the "correct_decisions" field. It's identical to CorrectDecisionsEQ.
func CorrectDecisions(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldCorrectDecisions, v))
}

// TotalNodes applies equality check predicate on the "total_nodes" field. It's identical to TotalNodesEQ.
func TotalNodes(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldTotalNodes, v))
}

// DurationSecs applies equality check predicate on the "duration_secs" field. It's identical to DurationSecsEQ.
func DurationSecs(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldDurationSecs, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldSuccess, v))
}

// TimedOut applies equality check predicate on the "timed_out" field. It's identical to TimedOutEQ.
func TimedOut(v bool) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldTimedOut, v))
}

// XpAwarded applies equality check predicate on the "xp_awarded" field. It's identical to XpAwardedEQ.
func XpAwarded(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldXpAwarded, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLTE(FieldTimestamp, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldContainsFold(FieldRunID, v))
}

// ScenarioIDEQ applies the EQ predicate on the "scenario_id" field.
func ScenarioIDEQ(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldScenarioID, v))
}

// ScenarioIDNEQ applies the NEQ predicate on the "scenario_id" field.
func ScenarioIDNEQ(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNEQ(FieldScenarioID, v))
}

// ScenarioIDIn applies the In predicate on the "scenario_id" field.
func ScenarioIDIn(vs ...string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldIn(FieldScenarioID, vs...))
}

// ScenarioIDNotIn applies the NotIn predicate on the "scenario_id" field.
func ScenarioIDNotIn(vs ...string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNotIn(FieldScenarioID, vs...))
}

// ScenarioIDGT applies the GT predicate on the "scenario_id" field.
func ScenarioIDGT(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGT(FieldScenarioID, v))
}

// ScenarioIDGTE applies the GTE predicate on the "scenario_id" field.
func ScenarioIDGTE(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGTE(FieldScenarioID, v))
}

// ScenarioIDLT applies the LT predicate on the "scenario_id" field.
func ScenarioIDLT(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLT(FieldScenarioID, v))
}

// ScenarioIDLTE applies the LTE predicate on the "scenario_id" field.
func ScenarioIDLTE(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLTE(FieldScenarioID, v))
}

// ScenarioIDContains applies the Contains predicate on the "scenario_id" field.
func ScenarioIDContains(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldContains(FieldScenarioID, v))
}

// ScenarioIDHasPrefix applies the HasPrefix predicate on the "scenario_id" field.
func ScenarioIDHasPrefix(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldHasPrefix(FieldScenarioID, v))
}

// ScenarioIDHasSuffix applies the HasSuffix predicate on the "scenario_id" field.
func ScenarioIDHasSuffix(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldHasSuffix(FieldScenarioID, v))
}

// ScenarioIDEqualFold applies the EqualFold predicate on the "scenario_id" field.
func ScenarioIDEqualFold(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEqualFold(FieldScenarioID, v))
}

// ScenarioIDContainsFold applies the ContainsFold predicate on the "scenario_id" field.
func ScenarioIDContainsFold(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldContainsFold(FieldScenarioID, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLTE(FieldScore, v))
}

// CorrectDecisionsEQ applies the EQ predicate on the "correct_decisions" field.
func CorrectDecisionsEQ(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldCorrectDecisions, v))
}

// CorrectDecisionsNEQ applies the NEQ predicate on the "correct_decisions" field.
func CorrectDecisionsNEQ(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNEQ(FieldCorrectDecisions, v))
}

// CorrectDecisionsIn applies the In predicate on the "correct_decisions" field.
func CorrectDecisionsIn(vs ...int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldIn(FieldCorrectDecisions, vs...))
}

// CorrectDecisionsNotIn applies the NotIn predicate on the "correct_decisions" field.
func CorrectDecisionsNotIn(vs ...int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNotIn(FieldCorrectDecisions, vs...))
}

// CorrectDecisionsGT applies the GT predicate on the "correct_decisions" field.
func CorrectDecisionsGT(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGT(FieldCorrectDecisions, v))
}

// CorrectDecisionsGTE applies the GTE predicate on the "correct_decisions" field.
func CorrectDecisionsGTE(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGTE(FieldCorrectDecisions, v))
}

// CorrectDecisionsLT applies the LT predicate on the "correct_decisions" field.
func CorrectDecisionsLT(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLT(FieldCorrectDecisions, v))
}

// CorrectDecisionsLTE applies the LTE predicate on the "correct_decisions" field.
func CorrectDecisionsLTE(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLTE(FieldCorrectDecisions, v))
}

// TotalNodesEQ applies the EQ predicate on the "total_nodes" field.
func TotalNodesEQ(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldTotalNodes, v))
}

// TotalNodesNEQ applies the NEQ predicate on the "total_nodes" field.
func TotalNodesNEQ(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNEQ(FieldTotalNodes, v))
}

// TotalNodesIn applies the In predicate on the "total_nodes" field.
func TotalNodesIn(vs ...int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldIn(FieldTotalNodes, vs...))
}

// TotalNodesNotIn applies the NotIn predicate on the "total_nodes" field.
func TotalNodesNotIn(vs ...int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNotIn(FieldTotalNodes, vs...))
}

// TotalNodesGT applies the GT predicate on the "total_nodes" field.
func TotalNodesGT(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGT(FieldTotalNodes, v))
}

// TotalNodesGTE applies the GTE predicate on the "total_nodes" field.
func TotalNodesGTE(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGTE(FieldTotalNodes, v))
}

// TotalNodesLT applies the LT predicate on the "total_nodes" field.
func TotalNodesLT(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLT(FieldTotalNodes, v))
}

// TotalNodesLTE applies the LTE predicate on the "total_nodes" field.
func TotalNodesLTE(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLTE(FieldTotalNodes, v))
}

// DurationSecsEQ applies the EQ predicate on the "duration_secs" field.
func DurationSecsEQ(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldDurationSecs, v))
}

// DurationSecsNEQ applies the NEQ predicate on the "duration_secs" field.
func DurationSecsNEQ(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNEQ(FieldDurationSecs, v))
}

// DurationSecsIn applies the In predicate on the "duration_secs" field.
func DurationSecsIn(vs ...int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldIn(FieldDurationSecs, vs...))
}

// DurationSecsNotIn applies the NotIn predicate on the "duration_secs" field.
func DurationSecsNotIn(vs ...int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNotIn(FieldDurationSecs, vs...))
}

// DurationSecsGT applies the GT predicate on the "duration_secs" field.
func DurationSecsGT(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGT(FieldDurationSecs, v))
}

// DurationSecsGTE applies the GTE predicate on the "duration_secs" field.
func DurationSecsGTE(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGTE(FieldDurationSecs, v))
}

// DurationSecsLT applies the LT predicate on the "duration_secs" field.
func DurationSecsLT(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLT(FieldDurationSecs, v))
}

// DurationSecsLTE applies the LTE predicate on the "duration_secs" field.
func DurationSecsLTE(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLTE(FieldDurationSecs, v))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNEQ(FieldSuccess, v))
}

// TimedOutEQ applies the EQ predicate on the "timed_out" field.
func TimedOutEQ(v bool) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldTimedOut, v))
}

// TimedOutNEQ applies the NEQ predicate on the "timed_out" field.
func TimedOutNEQ(v bool) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNEQ(FieldTimedOut, v))
}

// XpAwardedEQ applies the EQ predicate on the "xp_awarded" field.
func XpAwardedEQ(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldXpAwarded, v))
}

// XpAwardedNEQ applies the NEQ predicate on the "xp_awarded" field.
func XpAwardedNEQ(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNEQ(FieldXpAwarded, v))
}

// XpAwardedIn applies the In predicate on the "xp_awarded" field.
func XpAwardedIn(vs ...int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldIn(FieldXpAwarded, vs...))
}

// XpAwardedNotIn applies the NotIn predicate on the "xp_awarded" field.
func XpAwardedNotIn(vs ...int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNotIn(FieldXpAwarded, vs...))
}

// XpAwardedGT applies the GT predicate on the "xp_awarded" field.
func XpAwardedGT(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGT(FieldXpAwarded, v))
}

// XpAwardedGTE applies the GTE predicate on the "xp_awarded" field.
func XpAwardedGTE(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGTE(FieldXpAwarded, v))
}

// XpAwardedLT applies the LT predicate on the "xp_awarded" field.
func XpAwardedLT(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLT(FieldXpAwarded, v))
}

// XpAwardedLTE applies the LTE predicate on the "xp_awarded" field.
func XpAwardedLTE(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLTE(FieldXpAwarded, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScenarioEvent) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScenarioEvent) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScenarioEvent) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.NotPredicates(p))
}
