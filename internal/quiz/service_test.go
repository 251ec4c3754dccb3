package quiz

import (
	"context"
	"testing"
	"time"

	"github.com/obrev/obrev/internal/content"
	"github.com/obrev/obrev/internal/progression"
	"github.com/obrev/obrev/internal/scenario"
)

// afternoon avoids the night-owl window in tests that don't target it.
var afternoon = time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)

func newTestPolicy() (*Service, *progression.Service) {
	prog := progression.NewService(nil, nil)
	return NewService(prog, nil), prog
}

func hasUnlock(out Outcome, id string) bool {
	for _, a := range out.NewlyUnlocked {
		if a.ID == id {
			return true
		}
	}
	return false
}

func TestRecordQuizAwardsXPAndProgress(t *testing.T) {
	svc, prog := newTestPolicy()
	ctx := context.Background()

	out := svc.RecordQuiz(ctx, Summary{
		QuizID: "q-1", ModuleID: "module-7", TopicID: "prom",
		Score: 80, TotalQuestions: 5, CorrectAnswers: 4, DurationSecs: 300,
		IncorrectQuestionIDs: []string{"q-prom"},
	}, afternoon)

	if out.XP.Amount != 160 {
		t.Errorf("quiz XP = %d, want 160 (score*2)", out.XP.Amount)
	}
	if out.ModuleProgress != 10 {
		t.Errorf("module progress = %d, want 10", out.ModuleProgress)
	}
	if out.Streak != 1 {
		t.Errorf("streak = %d, want 1", out.Streak)
	}

	st := prog.State()
	if len(st.QuizHistory) != 1 || st.QuizHistory[0].Score != 80 {
		t.Errorf("history = %+v", st.QuizHistory)
	}
	if q := st.QuizHistory[0]; q.TimeSpentSecs != 300 || len(q.IncorrectQuestionIDs) != 1 {
		t.Errorf("history record detail = %+v, want time 300 and 1 missed question", q)
	}
	if st.TotalTimeSpent != 300 {
		t.Errorf("total time spent = %d, want 300", st.TotalTimeSpent)
	}
	if got := st.TopicsCompleted["module-7"]; len(got) != 1 || got[0] != "prom" {
		t.Errorf("topics completed = %v", got)
	}
}

func TestPerfectQuizUnlocks(t *testing.T) {
	svc, prog := newTestPolicy()
	ctx := context.Background()

	out := svc.RecordQuiz(ctx, Summary{
		QuizID: "q-1", ModuleID: "module-7",
		Score: 100, TotalQuestions: 5, CorrectAnswers: 5, DurationSecs: 400,
	}, afternoon)

	if !hasUnlock(out, "perfect-quiz") {
		t.Fatal("expected perfect-quiz unlock")
	}
	// Quiz XP 200 + perfect-quiz bonus 200.
	if got := prog.State().XP; got != 400 {
		t.Errorf("total XP = %d, want 400", got)
	}

	// A second perfect quiz must not re-unlock or re-award the bonus.
	out = svc.RecordQuiz(ctx, Summary{
		QuizID: "q-2", ModuleID: "module-7",
		Score: 100, TotalQuestions: 5, CorrectAnswers: 5, DurationSecs: 400,
	}, afternoon)
	if hasUnlock(out, "perfect-quiz") {
		t.Error("perfect-quiz unlocked twice")
	}
	if got := prog.State().XP; got != 600 {
		t.Errorf("total XP = %d, want 600", got)
	}
}

func TestSpeedDemon(t *testing.T) {
	tests := []struct {
		name     string
		score    int
		duration int
		want     bool
	}{
		{"fast and accurate", 80, 90, true},
		{"fast but sloppy", 60, 90, false},
		{"accurate but slow", 100, 240, false},
		{"zero duration ignored", 100, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestPolicy()
			out := svc.RecordQuiz(context.Background(), Summary{
				QuizID: "q", ModuleID: "module-7",
				Score: tt.score, TotalQuestions: 5, CorrectAnswers: tt.score / 20,
				DurationSecs: tt.duration,
			}, afternoon)
			if got := hasUnlock(out, "speed-demon"); got != tt.want {
				t.Errorf("speed-demon = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNightOwl(t *testing.T) {
	svc, _ := newTestPolicy()
	late := time.Date(2026, 9, 1, 1, 30, 0, 0, time.UTC)

	out := svc.RecordQuiz(context.Background(), Summary{
		QuizID: "q", ModuleID: "module-7", Score: 60, TotalQuestions: 5, CorrectAnswers: 3,
		DurationSecs: 300,
	}, late)
	if !hasUnlock(out, "night-owl") {
		t.Error("expected night-owl for a 1:30am quiz")
	}
}

func TestWeekStreakUnlock(t *testing.T) {
	svc, _ := newTestPolicy()
	ctx := context.Background()

	var out Outcome
	day := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		out = svc.RecordQuiz(ctx, Summary{
			QuizID: "q", ModuleID: "module-7", Score: 60,
			TotalQuestions: 5, CorrectAnswers: 3, DurationSecs: 300,
		}, day.AddDate(0, 0, i))
	}
	if out.Streak != 7 {
		t.Fatalf("streak = %d, want 7", out.Streak)
	}
	if !hasUnlock(out, "week-streak") {
		t.Error("expected week-streak unlock on day 7")
	}
}

func TestModuleCompletionChain(t *testing.T) {
	svc, prog := newTestPolicy()
	ctx := context.Background()

	// Ten quizzes push module-7 to 100%.
	var out Outcome
	for i := 0; i < 10; i++ {
		out = svc.RecordQuiz(ctx, Summary{
			QuizID: "q", ModuleID: "module-7", Score: 60,
			TotalQuestions: 5, CorrectAnswers: 3, DurationSecs: 300,
		}, afternoon)
	}
	if out.ModuleProgress != 100 {
		t.Fatalf("module progress = %d, want 100", out.ModuleProgress)
	}
	if !hasUnlock(out, "first-module") {
		t.Error("expected first-module unlock at 100%")
	}
	if hasUnlock(out, "all-modules") {
		t.Error("all-modules should wait for every module")
	}

	// Finish module-8 too.
	for i := 0; i < 10; i++ {
		out = svc.RecordQuiz(ctx, Summary{
			QuizID: "q", ModuleID: "module-8", Score: 60,
			TotalQuestions: 5, CorrectAnswers: 3, DurationSecs: 300,
		}, afternoon)
	}
	if !hasUnlock(out, "all-modules") {
		t.Error("expected all-modules after completing every module")
	}
	if !prog.State().HasAchievement("first-module") {
		t.Error("first-module should remain unlocked")
	}
}

func TestRecordScenarioAwardsXP(t *testing.T) {
	svc, _ := newTestPolicy()

	out := svc.RecordScenario(context.Background(), scenario.Result{
		RunID: "r-1", ScenarioID: "shoulder-dystocia",
		Status: scenario.StatusSucceeded, Score: 100,
		CorrectDecisions: 3, TotalNodes: 3, DurationSecs: 80, Success: true,
	}, afternoon)

	if out.XP.Amount != 300 {
		t.Errorf("scenario XP = %d, want 300 (score*3)", out.XP.Amount)
	}
	if !hasUnlock(out, "perfect-quiz") {
		t.Error("perfect scenario run should count as a perfect score")
	}
}

func TestRecordScenarioBumpsModuleProgress(t *testing.T) {
	svc, prog := newTestPolicy()

	out := svc.RecordScenario(context.Background(), scenario.Result{
		RunID: "r-1", ScenarioID: "shoulder-dystocia", ModuleID: "module-7",
		Status: scenario.StatusSucceeded, Score: 100,
		CorrectDecisions: 3, TotalNodes: 3, DurationSecs: 80, Success: true,
	}, afternoon)

	if out.ModuleProgress != 10 {
		t.Errorf("module progress = %d, want 10", out.ModuleProgress)
	}
	if got := prog.State().ModuleProgress["module-7"]; got != 10 {
		t.Errorf("stored module progress = %d, want 10", got)
	}

	// A failed run still advances the module, like the quiz path.
	out = svc.RecordScenario(context.Background(), scenario.Result{
		RunID: "r-2", ScenarioID: "cord-prolapse", ModuleID: "module-7",
		Status: scenario.StatusFailed, Score: 33,
		CorrectDecisions: 1, TotalNodes: 3, DurationSecs: 150, TimedOut: true,
	}, afternoon)
	if out.ModuleProgress != 20 {
		t.Errorf("module progress after failed run = %d, want 20", out.ModuleProgress)
	}
}

func TestTimedOutScenarioStillEarnsPartialXP(t *testing.T) {
	svc, _ := newTestPolicy()

	out := svc.RecordScenario(context.Background(), scenario.Result{
		RunID: "r-1", ScenarioID: "cord-prolapse",
		Status: scenario.StatusFailed, Score: 33,
		CorrectDecisions: 1, TotalNodes: 3, DurationSecs: 150,
		TimedOut: true,
	}, afternoon)

	if out.XP.Amount != 99 {
		t.Errorf("XP = %d, want 99", out.XP.Amount)
	}
	if hasUnlock(out, "perfect-quiz") {
		t.Error("failed run must not unlock perfect score")
	}
}

func TestCancelledScenarioEarnsNothing(t *testing.T) {
	svc, prog := newTestPolicy()

	out := svc.RecordScenario(context.Background(), scenario.Result{
		RunID: "r-1", ScenarioID: "cord-prolapse", ModuleID: "module-7",
		Status: scenario.StatusCancelled,
	}, afternoon)

	if out.XP.Amount != 0 {
		t.Errorf("cancelled XP = %d, want 0", out.XP.Amount)
	}
	st := prog.State()
	if st.XP != 0 || st.Streak != 0 {
		t.Errorf("cancelled run mutated state: xp=%d streak=%d", st.XP, st.Streak)
	}
	if got := st.ModuleProgress["module-7"]; got != 0 {
		t.Errorf("cancelled run advanced module progress to %d", got)
	}
}

func TestOnRecordHookFiresPerResult(t *testing.T) {
	svc, _ := newTestPolicy()
	ctx := context.Background()

	saves := 0
	svc.OnRecord(func(context.Context) { saves++ })

	svc.RecordQuiz(ctx, Summary{
		QuizID: "q-1", ModuleID: "module-7", Score: 80,
		TotalQuestions: 5, CorrectAnswers: 4, DurationSecs: 300,
	}, afternoon)
	if saves != 1 {
		t.Fatalf("saves after quiz = %d, want 1", saves)
	}

	svc.RecordScenario(ctx, scenario.Result{
		RunID: "r-1", ScenarioID: "shoulder-dystocia", ModuleID: "module-7",
		Status: scenario.StatusSucceeded, Score: 100,
		CorrectDecisions: 3, TotalNodes: 3, Success: true,
	}, afternoon)
	if saves != 2 {
		t.Fatalf("saves after scenario = %d, want 2", saves)
	}

	// Cancelled runs record nothing, so nothing to persist.
	svc.RecordScenario(ctx, scenario.Result{
		RunID: "r-2", ScenarioID: "cord-prolapse",
		Status: scenario.StatusCancelled,
	}, afternoon)
	if saves != 2 {
		t.Errorf("saves after cancelled run = %d, want 2", saves)
	}
}

func TestAchievementXPMatchesCatalog(t *testing.T) {
	a := content.AchievementByID("perfect-quiz")
	if a == nil || a.XP != 200 {
		t.Fatalf("catalog perfect-quiz = %+v", a)
	}
}
