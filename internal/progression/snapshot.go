package progression

import "github.com/obrev/obrev/internal/store"

// SnapshotData exports the current state for snapshot persistence.
func (s *Service) SnapshotData() *store.ProgressionSnapshotData {
	st := s.state.clone()

	history := make([]store.QuizRecord, len(st.QuizHistory))
	for i, q := range st.QuizHistory {
		history[i] = store.QuizRecord{
			QuizID:               q.QuizID,
			ModuleID:             q.ModuleID,
			TopicID:              q.TopicID,
			Score:                q.Score,
			TotalQuestions:       q.TotalQuestions,
			CorrectAnswers:       q.CorrectAnswers,
			TimeSpentSecs:        q.TimeSpentSecs,
			IncorrectQuestionIDs: q.IncorrectQuestionIDs,
			TakenAt:              q.TakenAt,
		}
	}

	return &store.ProgressionSnapshotData{
		DisplayName:     st.DisplayName,
		Avatar:          st.Avatar,
		XP:              st.XP,
		Level:           st.Level(),
		Streak:          st.Streak,
		TotalTimeSpent:  st.TotalTimeSpent,
		LastStudyDay:    st.LastStudyDay,
		Achievements:    st.Achievements,
		QuizHistory:     history,
		ModuleProgress:  st.ModuleProgress,
		TopicsCompleted: st.TopicsCompleted,
		Preferences: store.PreferencesData{
			SoundEnabled:         st.Preferences.SoundEnabled,
			HapticEnabled:        st.Preferences.HapticEnabled,
			NotificationsEnabled: st.Preferences.NotificationsEnabled,
			Theme:                st.Preferences.Theme,
			Difficulty:           st.Preferences.Difficulty,
			TimerWarnings:        st.Preferences.TimerWarnings,
			ShowRationale:        st.Preferences.ShowRationale,
		},
		CurrentModule: st.CurrentModule,
		CurrentTopic:  st.CurrentTopic,
		Onboarded:     st.Onboarded,
	}
}

// stateFromSnapshot rebuilds progression state from persisted data.
// Level is ignored on restore; it is always derived from XP.
func stateFromSnapshot(snap *store.ProgressionSnapshotData) State {
	st := freshState()
	st.DisplayName = snap.DisplayName
	st.Avatar = snap.Avatar
	st.XP = snap.XP
	st.Streak = snap.Streak
	st.TotalTimeSpent = snap.TotalTimeSpent
	st.LastStudyDay = snap.LastStudyDay
	st.Achievements = append([]string(nil), snap.Achievements...)
	st.CurrentModule = snap.CurrentModule
	st.CurrentTopic = snap.CurrentTopic
	st.Onboarded = snap.Onboarded
	st.Preferences = Preferences{
		SoundEnabled:         snap.Preferences.SoundEnabled,
		HapticEnabled:        snap.Preferences.HapticEnabled,
		NotificationsEnabled: snap.Preferences.NotificationsEnabled,
		Theme:                snap.Preferences.Theme,
		Difficulty:           snap.Preferences.Difficulty,
		TimerWarnings:        snap.Preferences.TimerWarnings,
		ShowRationale:        snap.Preferences.ShowRationale,
	}
	// Older snapshots may lack these fields; fall back to defaults.
	if st.Preferences.Theme == "" {
		st.Preferences.Theme = DefaultPreferences().Theme
	}
	if st.Preferences.Difficulty == "" {
		st.Preferences.Difficulty = DefaultPreferences().Difficulty
	}

	for _, q := range snap.QuizHistory {
		st.QuizHistory = append(st.QuizHistory, QuizResult{
			QuizID:               q.QuizID,
			ModuleID:             q.ModuleID,
			TopicID:              q.TopicID,
			Score:                q.Score,
			TotalQuestions:       q.TotalQuestions,
			CorrectAnswers:       q.CorrectAnswers,
			TimeSpentSecs:        q.TimeSpentSecs,
			IncorrectQuestionIDs: append([]string(nil), q.IncorrectQuestionIDs...),
			TakenAt:              q.TakenAt,
		})
	}
	for k, v := range snap.ModuleProgress {
		st.ModuleProgress[k] = v
	}
	for k, v := range snap.TopicsCompleted {
		st.TopicsCompleted[k] = append([]string(nil), v...)
	}
	return st
}
