package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// PreferencesData is the serialized form of student preferences.
type PreferencesData struct {
	SoundEnabled         bool   `json:"sound_enabled"`
	HapticEnabled        bool   `json:"haptic_enabled"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
	Theme                string `json:"theme,omitempty"`
	Difficulty           string `json:"difficulty,omitempty"`
	TimerWarnings        bool   `json:"timer_warnings"`
	ShowRationale        bool   `json:"show_rationale"`
}

// QuizRecord is the serialized form of one quiz attempt in the history.
type QuizRecord struct {
	QuizID               string    `json:"quiz_id"`
	ModuleID             string    `json:"module_id"`
	TopicID              string    `json:"topic_id,omitempty"`
	Score                int       `json:"score"`
	TotalQuestions       int       `json:"total_questions"`
	CorrectAnswers       int       `json:"correct_answers"`
	TimeSpentSecs        int       `json:"time_spent_secs,omitempty"`
	IncorrectQuestionIDs []string  `json:"incorrect_question_ids,omitempty"`
	TakenAt              time.Time `json:"taken_at"`
}

// ProgressionSnapshotData is the serialized progression state.
type ProgressionSnapshotData struct {
	DisplayName     string              `json:"display_name"`
	Avatar          string              `json:"avatar"`
	XP              int                 `json:"xp"`
	Level           int                 `json:"level"`
	Streak          int                 `json:"streak"`
	TotalTimeSpent  int                 `json:"total_time_spent,omitempty"`
	LastStudyDay    string              `json:"last_study_day,omitempty"`
	Achievements    []string            `json:"achievements,omitempty"`
	QuizHistory     []QuizRecord        `json:"quiz_history,omitempty"`
	ModuleProgress  map[string]int      `json:"module_progress,omitempty"`
	TopicsCompleted map[string][]string `json:"topics_completed,omitempty"`
	Preferences     PreferencesData     `json:"preferences"`
	CurrentModule   string              `json:"current_module,omitempty"`
	CurrentTopic    string              `json:"current_topic,omitempty"`
	Onboarded       bool                `json:"onboarded"`
}

// SnapshotData captures the full student state at a point in time.
type SnapshotData struct {
	Version     int                      `json:"version"`
	Progression *ProgressionSnapshotData `json:"progression,omitempty"`
}

// Snapshot represents a point-in-time capture of student state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages student state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot. A zero Sequence or Timestamp is filled
	// in from the global counter and the wall clock.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// QuizEventData captures the data for a single quiz completion event.
type QuizEventData struct {
	QuizID         string
	ModuleID       string
	TopicID        string
	Score          int
	TotalQuestions int
	CorrectAnswers int
	DurationSecs   int
	XPAwarded      int
}

// QuizEventRecord is a persisted quiz event read back from the log.
type QuizEventRecord struct {
	QuizEventData
	Sequence  int64
	Timestamp time.Time
}

// ScenarioEventData captures the data for a simulation completion event.
type ScenarioEventData struct {
	RunID            string
	ScenarioID       string
	Score            int
	CorrectDecisions int
	TotalNodes       int
	DurationSecs     int
	Success          bool
	TimedOut         bool
	XPAwarded        int
}

// ScenarioEventRecord is a persisted scenario event read back from the log.
type ScenarioEventRecord struct {
	ScenarioEventData
	Sequence  int64
	Timestamp time.Time
}

// XPEventData captures a single XP award.
type XPEventData struct {
	Amount     int
	Reason     string
	TotalAfter int
	LevelAfter int
}

// AchievementEventData captures the first unlock of an achievement.
type AchievementEventData struct {
	AchievementID string
	Title         string
}

// SessionEventData captures a study-session lifecycle event.
type SessionEventData struct {
	SessionID    string
	Action       string // "start" or "end"
	StudyDay     string // start only
	StreakAfter  int    // start only
	DurationSecs int    // end only
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMEventRecord is a persisted LLM request event read back from the log.
type LLMEventRecord struct {
	LLMRequestEventData
	Sequence  int64
	Timestamp time.Time
}

// LLMUsageStat aggregates LLM usage under one purpose label.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendQuizEvent records a completed quiz.
	AppendQuizEvent(ctx context.Context, data QuizEventData) error

	// QueryQuizEvents returns quiz events, newest first.
	QueryQuizEvents(ctx context.Context, opts QueryOpts) ([]QuizEventRecord, error)

	// AppendScenarioEvent records a completed simulation run.
	AppendScenarioEvent(ctx context.Context, data ScenarioEventData) error

	// QueryScenarioEvents returns scenario events, newest first.
	QueryScenarioEvents(ctx context.Context, opts QueryOpts) ([]ScenarioEventRecord, error)

	// AppendXPEvent records an XP award.
	AppendXPEvent(ctx context.Context, data XPEventData) error

	// AppendAchievementEvent records an achievement unlock.
	AppendAchievementEvent(ctx context.Context, data AchievementEventData) error

	// AppendSessionEvent records a study-session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// LLMUsageByPurpose aggregates call counts, token totals, and mean
	// latency per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)
}
