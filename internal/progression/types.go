package progression

import "time"

// XPPerLevel is the amount of XP that spans one level.
// Level is always derived: floor(XP / XPPerLevel) + 1.
const XPPerLevel = 1000

// Difficulty preference values.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// Preferences holds student-tunable settings carried across resets.
// Sound and notifications are stored for the profile but the terminal
// client does not act on them.
type Preferences struct {
	SoundEnabled         bool
	HapticEnabled        bool
	NotificationsEnabled bool
	Theme                string // "dark" or "light"
	Difficulty           string
	TimerWarnings        bool
	ShowRationale        bool
}

// DefaultPreferences returns the preferences a fresh profile starts with.
func DefaultPreferences() Preferences {
	return Preferences{
		SoundEnabled:         true,
		HapticEnabled:        true,
		NotificationsEnabled: true,
		Theme:                "dark",
		Difficulty:           DifficultyBeginner,
		TimerWarnings:        true,
		ShowRationale:        true,
	}
}

// QuizResult is one completed quiz attempt in the history.
// IncorrectQuestionIDs lets review flows resurface missed questions.
type QuizResult struct {
	QuizID               string
	ModuleID             string
	TopicID              string
	Score                int // percentage 0-100
	TotalQuestions       int
	CorrectAnswers       int
	TimeSpentSecs        int
	IncorrectQuestionIDs []string
	TakenAt              time.Time
}

// XPAward describes the outcome of an XP grant.
type XPAward struct {
	Amount    int
	TotalXP   int
	Level     int
	LeveledUp bool
}

// State is the full progression state of a student profile.
type State struct {
	DisplayName     string
	Avatar          string
	XP              int
	Streak          int
	TotalTimeSpent  int    // cumulative study seconds across all quizzes
	LastStudyDay    string // local calendar day, YYYY-MM-DD
	Achievements    []string
	QuizHistory     []QuizResult
	ModuleProgress  map[string]int
	TopicsCompleted map[string][]string
	Preferences     Preferences
	CurrentModule   string
	CurrentTopic    string
	Onboarded       bool
}

// Level derives the current level from lifetime XP.
func (st State) Level() int {
	return st.XP/XPPerLevel + 1
}

// XPIntoLevel returns how far into the current level the student is.
func (st State) XPIntoLevel() int {
	return st.XP % XPPerLevel
}

// AverageQuizScore recomputes the mean score over the full history.
// Returns 0 for an empty history.
func (st State) AverageQuizScore() float64 {
	if len(st.QuizHistory) == 0 {
		return 0
	}
	sum := 0
	for _, q := range st.QuizHistory {
		sum += q.Score
	}
	return float64(sum) / float64(len(st.QuizHistory))
}

// HasAchievement reports whether the achievement is already unlocked.
func (st State) HasAchievement(id string) bool {
	for _, a := range st.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

// clone deep-copies the state so callers can't mutate service internals.
func (st State) clone() State {
	out := st
	out.Achievements = append([]string(nil), st.Achievements...)
	out.QuizHistory = append([]QuizResult(nil), st.QuizHistory...)
	for i := range out.QuizHistory {
		out.QuizHistory[i].IncorrectQuestionIDs = append([]string(nil), out.QuizHistory[i].IncorrectQuestionIDs...)
	}
	if st.ModuleProgress != nil {
		out.ModuleProgress = make(map[string]int, len(st.ModuleProgress))
		for k, v := range st.ModuleProgress {
			out.ModuleProgress[k] = v
		}
	}
	if st.TopicsCompleted != nil {
		out.TopicsCompleted = make(map[string][]string, len(st.TopicsCompleted))
		for k, v := range st.TopicsCompleted {
			out.TopicsCompleted[k] = append([]string(nil), v...)
		}
	}
	return out
}
