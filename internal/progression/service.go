package progression

import (
	"context"
	"time"

	"github.com/obrev/obrev/internal/store"
)

// Service owns the student progression state: XP, streaks, achievements,
// quiz history and module progress. It is the single writer for that
// state; screens read through State() and mutate through the operations
// below. All derived values (level, average score) are recomputed from
// the base state and never stored.
type Service struct {
	state  State
	events store.EventRepo
}

// NewService restores a Service from snapshot data, or starts a fresh
// profile when snap is nil. eventRepo may be nil (events are skipped).
func NewService(snap *store.ProgressionSnapshotData, eventRepo store.EventRepo) *Service {
	s := &Service{events: eventRepo}
	if snap != nil {
		s.state = stateFromSnapshot(snap)
	} else {
		s.state = freshState()
	}
	return s
}

func freshState() State {
	return State{
		ModuleProgress:  map[string]int{},
		TopicsCompleted: map[string][]string{},
		Preferences:     DefaultPreferences(),
	}
}

// State returns a deep copy of the current progression state.
func (s *Service) State() State {
	return s.state.clone()
}

// SetDisplayName updates the profile name.
func (s *Service) SetDisplayName(name string) {
	s.state.DisplayName = name
}

// SetAvatar updates the profile avatar.
func (s *Service) SetAvatar(avatar string) {
	s.state.Avatar = avatar
}

// UpdatePreferences replaces the student preferences.
func (s *Service) UpdatePreferences(p Preferences) {
	s.state.Preferences = p
}

// SetCurrentModule records which module the student is working in.
func (s *Service) SetCurrentModule(moduleID string) {
	s.state.CurrentModule = moduleID
	s.state.CurrentTopic = ""
}

// SetCurrentTopic records which topic the student is working in.
func (s *Service) SetCurrentTopic(topicID string) {
	s.state.CurrentTopic = topicID
}

// AddXP grants XP and reports whether the student leveled up.
// Negative amounts decrement, so callers can make corrective
// adjustments; the level stays derived from the new total either way.
func (s *Service) AddXP(ctx context.Context, amount int, reason string) XPAward {
	before := s.state.Level()
	s.state.XP += amount
	after := s.state.Level()

	award := XPAward{
		Amount:    amount,
		TotalXP:   s.state.XP,
		Level:     after,
		LeveledUp: after > before,
	}
	if s.events != nil && amount != 0 {
		_ = s.events.AppendXPEvent(ctx, store.XPEventData{
			Amount:     amount,
			Reason:     reason,
			TotalAfter: s.state.XP,
			LevelAfter: after,
		})
	}
	return award
}

// RecordQuiz appends a quiz result to the history and adds its duration
// to the cumulative study time. The running average is not stored;
// State().AverageQuizScore() recomputes it on demand.
func (s *Service) RecordQuiz(res QuizResult) {
	if res.TakenAt.IsZero() {
		res.TakenAt = time.Now()
	}
	s.state.QuizHistory = append(s.state.QuizHistory, res)
	s.state.TotalTimeSpent += res.TimeSpentSecs
}

// AdvanceModule adds delta to a module's completion percentage,
// clamped to [0, 100]. Returns the new value.
func (s *Service) AdvanceModule(moduleID string, delta int) int {
	if s.state.ModuleProgress == nil {
		s.state.ModuleProgress = map[string]int{}
	}
	v := s.state.ModuleProgress[moduleID] + delta
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	s.state.ModuleProgress[moduleID] = v
	return v
}

// SetTopicsCompleted replaces the completed-topic list for a module.
func (s *Service) SetTopicsCompleted(moduleID string, topics []string) {
	if s.state.TopicsCompleted == nil {
		s.state.TopicsCompleted = map[string][]string{}
	}
	s.state.TopicsCompleted[moduleID] = append([]string(nil), topics...)
}

// MarkTopicCompleted adds a topic to a module's completed list if absent.
func (s *Service) MarkTopicCompleted(moduleID, topicID string) {
	if s.state.TopicsCompleted == nil {
		s.state.TopicsCompleted = map[string][]string{}
	}
	for _, t := range s.state.TopicsCompleted[moduleID] {
		if t == topicID {
			return
		}
	}
	s.state.TopicsCompleted[moduleID] = append(s.state.TopicsCompleted[moduleID], topicID)
}

// Unlock adds an achievement if not already held. Returns true when the
// achievement was newly unlocked; repeat unlocks are no-ops.
func (s *Service) Unlock(ctx context.Context, id, title string) bool {
	if s.state.HasAchievement(id) {
		return false
	}
	s.state.Achievements = append(s.state.Achievements, id)
	if s.events != nil {
		_ = s.events.AppendAchievementEvent(ctx, store.AchievementEventData{
			AchievementID: id,
			Title:         title,
		})
	}
	return true
}

// TouchStudyDay applies the daily streak rule for a study activity
// happening at now, and returns the streak afterwards. Studying twice
// on the same day leaves the streak untouched. LastStudyDay only moves
// forward: a backward clock jump must not let the streak increment
// again when the clock returns to the real day.
func (s *Service) TouchStudyDay(now time.Time) int {
	next := nextStreak(s.state.Streak, s.state.LastStudyDay, now)
	s.state.Streak = next
	if day := now.Format(StudyDayFormat); day > s.state.LastStudyDay {
		s.state.LastStudyDay = day
	}
	return next
}

// CompleteOnboarding marks the profile onboarded and grants the
// welcome bonus. Calling it again is a no-op.
func (s *Service) CompleteOnboarding(ctx context.Context, name, avatar string) {
	if s.state.Onboarded {
		return
	}
	s.state.DisplayName = name
	s.state.Avatar = avatar
	s.state.Onboarded = true
	s.AddXP(ctx, 100, "onboarding")
}

// Reset wipes all progression but preserves identity: display name,
// avatar and preferences survive the reset.
func (s *Service) Reset() {
	name := s.state.DisplayName
	avatar := s.state.Avatar
	prefs := s.state.Preferences
	onboarded := s.state.Onboarded

	s.state = freshState()
	s.state.DisplayName = name
	s.state.Avatar = avatar
	s.state.Preferences = prefs
	s.state.Onboarded = onboarded
}
