package progression

import (
	"context"
	"testing"
	"time"
)

func newTestService() *Service {
	return NewService(nil, nil)
}

func TestLevelDerivedFromXP(t *testing.T) {
	tests := []struct {
		xp    int
		level int
	}{
		{0, 1},
		{999, 1},
		{1000, 2},
		{1001, 2},
		{2350, 3},
		{9999, 10},
		{10000, 11},
	}
	for _, tt := range tests {
		st := State{XP: tt.xp}
		if got := st.Level(); got != tt.level {
			t.Errorf("Level(xp=%d) = %d, want %d", tt.xp, got, tt.level)
		}
	}
}

func TestAddXPLevelUp(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	award := s.AddXP(ctx, 900, "quiz")
	if award.LeveledUp {
		t.Error("900 XP should not level up from level 1")
	}
	if award.Level != 1 {
		t.Errorf("level = %d, want 1", award.Level)
	}

	award = s.AddXP(ctx, 200, "quiz")
	if !award.LeveledUp {
		t.Error("crossing 1000 XP should level up")
	}
	if award.Level != 2 || award.TotalXP != 1100 {
		t.Errorf("level/total = %d/%d, want 2/1100", award.Level, award.TotalXP)
	}
}

func TestAddXPNegativeAdjusts(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	s.AddXP(ctx, 1100, "quiz")
	award := s.AddXP(ctx, -200, "correction")
	if award.Amount != -200 || award.TotalXP != 900 {
		t.Errorf("corrective XP: amount=%d total=%d, want -200/900", award.Amount, award.TotalXP)
	}
	if award.LeveledUp {
		t.Error("dropping below a level boundary is not a level-up")
	}
	if got := s.State().Level(); got != 1 {
		t.Errorf("level after correction = %d, want 1", got)
	}
}

func TestStreakRule(t *testing.T) {
	day := func(s string) time.Time {
		d, err := time.Parse(StudyDayFormat, s)
		if err != nil {
			t.Fatalf("parse %q: %v", s, err)
		}
		return d
	}

	tests := []struct {
		name    string
		streak  int
		lastDay string
		today   string
		want    int
	}{
		{"first study", 0, "", "2026-09-01", 1},
		{"same day", 4, "2026-09-01", "2026-09-01", 4},
		{"next day", 4, "2026-09-01", "2026-09-02", 5},
		{"two day gap", 4, "2026-09-01", "2026-09-03", 1},
		{"week gap", 9, "2026-08-20", "2026-09-01", 1},
		{"across month boundary", 2, "2026-08-31", "2026-09-01", 3},
		{"clock moved backwards", 4, "2026-09-02", "2026-09-01", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nextStreak(tt.streak, tt.lastDay, day(tt.today)); got != tt.want {
				t.Errorf("nextStreak(%d, %q, %s) = %d, want %d",
					tt.streak, tt.lastDay, tt.today, got, tt.want)
			}
		})
	}
}

func TestStreakAcrossDSTChange(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("no tz database: %v", err)
	}

	// US clocks sprang forward on 2026-03-08, making it a 23-hour day.
	spring := time.Date(2026, 3, 9, 12, 0, 0, 0, loc)
	if got := nextStreak(3, "2026-03-08", spring); got != 4 {
		t.Errorf("consecutive days across spring-forward: streak = %d, want 4", got)
	}

	// Clocks fell back on 2026-11-01, a 25-hour day.
	fall := time.Date(2026, 11, 2, 12, 0, 0, 0, loc)
	if got := nextStreak(3, "2026-11-01", fall); got != 4 {
		t.Errorf("consecutive days across fall-back: streak = %d, want 4", got)
	}
}

func TestTouchStudyDayClockRollback(t *testing.T) {
	s := newTestService()
	d1 := time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC)
	back := time.Date(2026, 9, 1, 23, 0, 0, 0, time.UTC)

	s.TouchStudyDay(d1)
	if got := s.TouchStudyDay(back); got != 1 {
		t.Errorf("streak after rollback = %d, want 1", got)
	}
	if got := s.State().LastStudyDay; got != "2026-09-02" {
		t.Errorf("last study day moved backward to %q", got)
	}

	// The clock returning to the real day must be a same-day no-op,
	// not a second increment.
	if got := s.TouchStudyDay(d1.Add(2 * time.Hour)); got != 1 {
		t.Errorf("streak after clock recovered = %d, want 1", got)
	}
}

func TestTouchStudyDayUpdatesLastDay(t *testing.T) {
	s := newTestService()
	d1 := time.Date(2026, 9, 1, 22, 30, 0, 0, time.UTC)
	d2 := time.Date(2026, 9, 2, 7, 0, 0, 0, time.UTC)

	if got := s.TouchStudyDay(d1); got != 1 {
		t.Errorf("first touch streak = %d, want 1", got)
	}
	// Same evening, again.
	if got := s.TouchStudyDay(d1.Add(time.Hour)); got != 1 {
		t.Errorf("same-day touch streak = %d, want 1", got)
	}
	if got := s.TouchStudyDay(d2); got != 2 {
		t.Errorf("next-day touch streak = %d, want 2", got)
	}
	if s.State().LastStudyDay != "2026-09-02" {
		t.Errorf("last study day = %q, want 2026-09-02", s.State().LastStudyDay)
	}
}

func TestUnlockIdempotent(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	if !s.Unlock(ctx, "first-module", "First Steps") {
		t.Error("first unlock should report newly unlocked")
	}
	if s.Unlock(ctx, "first-module", "First Steps") {
		t.Error("second unlock should be a no-op")
	}
	if got := len(s.State().Achievements); got != 1 {
		t.Errorf("achievements = %d, want 1", got)
	}
}

func TestAverageQuizScoreRecomputed(t *testing.T) {
	s := newTestService()

	if avg := s.State().AverageQuizScore(); avg != 0 {
		t.Errorf("empty history average = %v, want 0", avg)
	}

	scores := []int{100, 80, 60}
	for _, sc := range scores {
		s.RecordQuiz(QuizResult{QuizID: "q", ModuleID: "module-7", Score: sc, TotalQuestions: 5})
	}
	if avg := s.State().AverageQuizScore(); avg != 80 {
		t.Errorf("average = %v, want 80", avg)
	}

	s.RecordQuiz(QuizResult{QuizID: "q", ModuleID: "module-7", Score: 0, TotalQuestions: 5})
	if avg := s.State().AverageQuizScore(); avg != 60 {
		t.Errorf("average after zero score = %v, want 60", avg)
	}
}

func TestTotalTimeSpentAccumulates(t *testing.T) {
	s := newTestService()

	s.RecordQuiz(QuizResult{QuizID: "q-1", ModuleID: "module-7", Score: 80, TotalQuestions: 5, TimeSpentSecs: 240})
	s.RecordQuiz(QuizResult{
		QuizID: "q-2", ModuleID: "module-7", Score: 60, TotalQuestions: 5,
		TimeSpentSecs: 180, IncorrectQuestionIDs: []string{"q-prom", "q-dystocia"},
	})

	st := s.State()
	if st.TotalTimeSpent != 420 {
		t.Errorf("total time spent = %d, want 420", st.TotalTimeSpent)
	}
	if got := st.QuizHistory[1].IncorrectQuestionIDs; len(got) != 2 || got[0] != "q-prom" {
		t.Errorf("incorrect question IDs = %v", got)
	}

	s.Reset()
	if got := s.State().TotalTimeSpent; got != 0 {
		t.Errorf("total time spent after reset = %d, want 0", got)
	}
}

func TestAdvanceModuleClamped(t *testing.T) {
	s := newTestService()

	tests := []struct {
		delta int
		want  int
	}{
		{10, 10},
		{10, 20},
		{100, 100}, // clamps at 100
		{10, 100},
		{-30, 70},
		{-200, 0}, // clamps at 0
	}
	for i, tt := range tests {
		if got := s.AdvanceModule("module-7", tt.delta); got != tt.want {
			t.Errorf("step %d: AdvanceModule(%d) = %d, want %d", i, tt.delta, got, tt.want)
		}
	}
}

func TestTopicsCompletedReplaceAndMark(t *testing.T) {
	s := newTestService()

	s.SetTopicsCompleted("module-7", []string{"a", "b"})
	s.SetTopicsCompleted("module-7", []string{"c"})
	if got := s.State().TopicsCompleted["module-7"]; len(got) != 1 || got[0] != "c" {
		t.Errorf("topics = %v, want [c] (replace semantics)", got)
	}

	s.MarkTopicCompleted("module-7", "d")
	s.MarkTopicCompleted("module-7", "d")
	if got := s.State().TopicsCompleted["module-7"]; len(got) != 2 {
		t.Errorf("topics = %v, want [c d]", got)
	}
}

func TestResetPreservesIdentity(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	s.CompleteOnboarding(ctx, "Maya", "nurse-1")
	s.UpdatePreferences(Preferences{SoundEnabled: false, TimerWarnings: true, ShowRationale: false})
	s.AddXP(ctx, 2500, "quiz")
	s.Unlock(ctx, "first-module", "First Steps")
	s.RecordQuiz(QuizResult{QuizID: "q", ModuleID: "module-7", Score: 90, TotalQuestions: 5})
	s.AdvanceModule("module-7", 50)
	s.TouchStudyDay(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))

	s.Reset()

	st := s.State()
	if st.DisplayName != "Maya" || st.Avatar != "nurse-1" {
		t.Errorf("identity lost: name=%q avatar=%q", st.DisplayName, st.Avatar)
	}
	if st.Preferences.SoundEnabled || !st.Preferences.TimerWarnings {
		t.Errorf("preferences lost: %+v", st.Preferences)
	}
	if st.XP != 0 || st.Level() != 1 || st.Streak != 0 {
		t.Errorf("progress not cleared: xp=%d level=%d streak=%d", st.XP, st.Level(), st.Streak)
	}
	if len(st.Achievements) != 0 || len(st.QuizHistory) != 0 || len(st.ModuleProgress) != 0 {
		t.Error("history not cleared")
	}
	if !st.Onboarded {
		t.Error("reset should not force re-onboarding")
	}
}

func TestCompleteOnboardingOnce(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	s.CompleteOnboarding(ctx, "Maya", "nurse-1")
	if got := s.State().XP; got != 100 {
		t.Errorf("welcome bonus = %d, want 100", got)
	}

	s.CompleteOnboarding(ctx, "Other", "nurse-2")
	st := s.State()
	if st.XP != 100 {
		t.Errorf("repeat onboarding changed XP to %d", st.XP)
	}
	if st.DisplayName != "Maya" {
		t.Errorf("repeat onboarding changed name to %q", st.DisplayName)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	s.CompleteOnboarding(ctx, "Maya", "nurse-1")
	s.AddXP(ctx, 2250, "quiz")
	s.Unlock(ctx, "perfect-score", "Perfectionist")
	s.RecordQuiz(QuizResult{
		QuizID: "q-1", ModuleID: "module-7", TopicID: "pph",
		Score: 100, TotalQuestions: 5, CorrectAnswers: 5,
		TimeSpentSecs:        300,
		IncorrectQuestionIDs: []string{"q-missed"},
		TakenAt:              time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
	})
	s.AdvanceModule("module-7", 30)
	s.SetTopicsCompleted("module-7", []string{"pph"})
	s.SetCurrentModule("module-7")
	s.SetCurrentTopic("pph")
	s.TouchStudyDay(time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))

	snap := s.SnapshotData()
	if snap.Level != 3 {
		t.Errorf("snapshot level = %d, want 3", snap.Level)
	}

	restored := NewService(snap, nil)
	a, b := s.State(), restored.State()

	if a.XP != b.XP || a.Streak != b.Streak || a.LastStudyDay != b.LastStudyDay {
		t.Errorf("core state mismatch: %+v vs %+v", a, b)
	}
	if b.Level() != 3 {
		t.Errorf("restored level = %d, want 3", b.Level())
	}
	if len(b.Achievements) != 1 || b.Achievements[0] != "perfect-score" {
		t.Errorf("achievements = %v", b.Achievements)
	}
	if len(b.QuizHistory) != 1 || b.QuizHistory[0].Score != 100 {
		t.Errorf("quiz history = %+v", b.QuizHistory)
	}
	if q := b.QuizHistory[0]; q.TimeSpentSecs != 300 || len(q.IncorrectQuestionIDs) != 1 {
		t.Errorf("quiz record detail lost in round trip: %+v", q)
	}
	if b.TotalTimeSpent != 300 {
		t.Errorf("restored total time spent = %d, want 300", b.TotalTimeSpent)
	}
	if b.ModuleProgress["module-7"] != 30 {
		t.Errorf("module progress = %v", b.ModuleProgress)
	}
	if b.CurrentModule != "module-7" || b.CurrentTopic != "pph" {
		t.Errorf("current module/topic = %q/%q", b.CurrentModule, b.CurrentTopic)
	}
	if !b.Onboarded {
		t.Error("onboarded flag lost in round trip")
	}
}

func TestStateIsACopy(t *testing.T) {
	s := newTestService()
	s.AdvanceModule("module-7", 10)

	st := s.State()
	st.ModuleProgress["module-7"] = 99
	st.Achievements = append(st.Achievements, "fake")

	if s.State().ModuleProgress["module-7"] != 10 {
		t.Error("mutating the returned state leaked into the service")
	}
	if len(s.State().Achievements) != 0 {
		t.Error("appending to returned achievements leaked into the service")
	}
}
