// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/obrev/obrev/ent/achievementevent"
	"github.com/obrev/obrev/ent/llmrequestevent"
	"github.com/obrev/obrev/ent/quizevent"
	"github.com/obrev/obrev/ent/scenarioevent"
	"github.com/obrev/obrev/ent/schema"
	"github.com/obrev/obrev/ent/sessionevent"
	"github.com/obrev/obrev/ent/snapshot"
	"github.com/obrev/obrev/ent/xpevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	achievementeventMixin := schema.AchievementEvent{}.Mixin()
	achievementeventMixinFields0 := achievementeventMixin[0].Fields()
	_ = achievementeventMixinFields0
	achievementeventFields := schema.AchievementEvent{}.Fields()
	_ = achievementeventFields
	// achievementeventDescTimestamp is the schema descriptor for timestamp field.
	achievementeventDescTimestamp := achievementeventMixinFields0[1].Descriptor()
	// achievementevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	achievementevent.DefaultTimestamp = achievementeventDescTimestamp.Default.(func() time.Time)
	// achievementeventDescAchievementID is the schema descriptor for achievement_id field.
	achievementeventDescAchievementID := achievementeventFields[0].Descriptor()
	// achievementevent.AchievementIDValidator is a validator for the "achievement_id" field. It is called by the builders before save.
	achievementevent.AchievementIDValidator = achievementeventDescAchievementID.Validators[0].(func(string) error)
	// achievementeventDescTitle is the schema descriptor for title field.
	achievementeventDescTitle := achievementeventFields[1].Descriptor()
	// achievementevent.DefaultTitle holds the default value on creation for the title field.
	achievementevent.DefaultTitle = achievementeventDescTitle.Default.(string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	quizeventMixin := schema.QuizEvent{}.Mixin()
	quizeventMixinFields0 := quizeventMixin[0].Fields()
	_ = quizeventMixinFields0
	quizeventFields := schema.QuizEvent{}.Fields()
	_ = quizeventFields
	// quizeventDescTimestamp is the schema descriptor for timestamp field.
	quizeventDescTimestamp := quizeventMixinFields0[1].Descriptor()
	// quizevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizevent.DefaultTimestamp = quizeventDescTimestamp.Default.(func() time.Time)
	// quizeventDescQuizID is the schema descriptor for quiz_id field.
	quizeventDescQuizID := quizeventFields[0].Descriptor()
	// quizevent.QuizIDValidator is a validator for the "quiz_id" field. It is called by the builders before save.
	quizevent.QuizIDValidator = quizeventDescQuizID.Validators[0].(func(string) error)
	// quizeventDescModuleID is the schema descriptor for module_id field.
	quizeventDescModuleID := quizeventFields[1].Descriptor()
	// quizevent.ModuleIDValidator is a validator for the "module_id" field. It is called by the builders before save.
	quizevent.ModuleIDValidator = quizeventDescModuleID.Validators[0].(func(string) error)
	// quizeventDescTopicID is the schema descriptor for topic_id field.
	quizeventDescTopicID := quizeventFields[2].Descriptor()
	// quizevent.DefaultTopicID holds the default value on creation for the topic_id field.
	quizevent.DefaultTopicID = quizeventDescTopicID.Default.(string)
	// quizeventDescDurationSecs is the schema descriptor for duration_secs field.
	quizeventDescDurationSecs := quizeventFields[6].Descriptor()
	// quizevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	quizevent.DefaultDurationSecs = quizeventDescDurationSecs.Default.(int)
	// quizeventDescXpAwarded is the schema descriptor for xp_awarded field.
	quizeventDescXpAwarded := quizeventFields[7].Descriptor()
	// quizevent.DefaultXpAwarded holds the default value on creation for the xp_awarded field.
	quizevent.DefaultXpAwarded = quizeventDescXpAwarded.Default.(int)
	scenarioeventMixin := schema.ScenarioEvent{}.Mixin()
	scenarioeventMixinFields0 := scenarioeventMixin[0].Fields()
	_ = scenarioeventMixinFields0
	scenarioeventFields := schema.ScenarioEvent{}.Fields()
	_ = scenarioeventFields
	// scenarioeventDescTimestamp is the schema descriptor for timestamp field.
	scenarioeventDescTimestamp := scenarioeventMixinFields0[1].Descriptor()
	// scenarioevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	scenarioevent.DefaultTimestamp = scenarioeventDescTimestamp.Default.(func() time.Time)
	// scenarioeventDescRunID is the schema descriptor for run_id field.
	scenarioeventDescRunID := scenarioeventFields[0].Descriptor()
	// scenarioevent.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	scenarioevent.RunIDValidator = scenarioeventDescRunID.Validators[0].(func(string) error)
	// scenarioeventDescScenarioID is the schema descriptor for scenario_id field.
	scenarioeventDescScenarioID := scenarioeventFields[1].Descriptor()
	// scenarioevent.ScenarioIDValidator is a validator for the "scenario_id" field. It is called by the builders before save.
	scenarioevent.ScenarioIDValidator = scenarioeventDescScenarioID.Validators[0].(func(string) error)
	// scenarioeventDescDurationSecs is the schema descriptor for duration_secs field.
	scenarioeventDescDurationSecs := scenarioeventFields[5].Descriptor()
	// scenarioevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	scenarioevent.DefaultDurationSecs = scenarioeventDescDurationSecs.Default.(int)
	// scenarioeventDescTimedOut is the schema descriptor for timed_out field.
	scenarioeventDescTimedOut := scenarioeventFields[7].Descriptor()
	// scenarioevent.DefaultTimedOut holds the default value on creation for the timed_out field.
	scenarioevent.DefaultTimedOut = scenarioeventDescTimedOut.Default.(bool)
	// scenarioeventDescXpAwarded is the schema descriptor for xp_awarded field.
	scenarioeventDescXpAwarded := scenarioeventFields[8].Descriptor()
	// scenarioevent.DefaultXpAwarded holds the default value on creation for the xp_awarded field.
	scenarioevent.DefaultXpAwarded = scenarioeventDescXpAwarded.Default.(int)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescStudyDay is the schema descriptor for study_day field.
	sessioneventDescStudyDay := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultStudyDay holds the default value on creation for the study_day field.
	sessionevent.DefaultStudyDay = sessioneventDescStudyDay.Default.(string)
	// sessioneventDescStreakAfter is the schema descriptor for streak_after field.
	sessioneventDescStreakAfter := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultStreakAfter holds the default value on creation for the streak_after field.
	sessionevent.DefaultStreakAfter = sessioneventDescStreakAfter.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	xpeventMixin := schema.XPEvent{}.Mixin()
	xpeventMixinFields0 := xpeventMixin[0].Fields()
	_ = xpeventMixinFields0
	xpeventFields := schema.XPEvent{}.Fields()
	_ = xpeventFields
	// xpeventDescTimestamp is the schema descriptor for timestamp field.
	xpeventDescTimestamp := xpeventMixinFields0[1].Descriptor()
	// xpevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	xpevent.DefaultTimestamp = xpeventDescTimestamp.Default.(func() time.Time)
	// xpeventDescReason is the schema descriptor for reason field.
	xpeventDescReason := xpeventFields[1].Descriptor()
	// xpevent.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	xpevent.ReasonValidator = xpeventDescReason.Validators[0].(func(string) error)
}
