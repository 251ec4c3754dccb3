package quiz

import (
	"context"
	"time"

	"github.com/obrev/obrev/internal/content"
	"github.com/obrev/obrev/internal/progression"
	"github.com/obrev/obrev/internal/scenario"
	"github.com/obrev/obrev/internal/store"
)

// Award policy constants.
const (
	// QuizXPFactor converts a quiz percentage score into XP.
	QuizXPFactor = 2

	// ScenarioXPFactor converts a scenario percentage score into XP.
	ScenarioXPFactor = 3

	// ModuleProgressStep is the completion percentage earned per quiz.
	ModuleProgressStep = 10

	// SpeedDemonSecs is the quiz duration ceiling for the speed-demon
	// achievement.
	SpeedDemonSecs = 120

	// SpeedDemonMinScore keeps rushed guessing from earning speed-demon.
	SpeedDemonMinScore = 80

	// nightOwlUntilHour closes the night-owl window (midnight to 5am).
	nightOwlUntilHour = 5

	// weekStreakDays is the streak length for the week-streak achievement.
	weekStreakDays = 7
)

// Outcome reports everything a finished quiz or scenario earned.
type Outcome struct {
	XP             progression.XPAward
	NewlyUnlocked  []content.Achievement
	ModuleProgress int
	Streak         int
}

// Service applies the award policy. It is the only place that
// translates raw results into progression mutations, so XP rates and
// achievement conditions live here and nowhere else.
type Service struct {
	prog    *progression.Service
	events  store.EventRepo
	persist func(context.Context)
}

// NewService creates the award policy over a progression service.
// eventRepo may be nil (events are skipped).
func NewService(prog *progression.Service, eventRepo store.EventRepo) *Service {
	return &Service{prog: prog, events: eventRepo}
}

// OnRecord registers a hook that runs after every recorded result, so
// the caller can persist a snapshot write-through instead of waiting
// for exit. Cancelled runs record nothing and do not trigger it.
func (s *Service) OnRecord(fn func(context.Context)) {
	s.persist = fn
}

// RecordQuiz applies a finished quiz: history, streak, XP, module
// progress, achievements, and the persisted quiz event.
func (s *Service) RecordQuiz(ctx context.Context, sum Summary, now time.Time) Outcome {
	s.prog.RecordQuiz(progression.QuizResult{
		QuizID:               sum.QuizID,
		ModuleID:             sum.ModuleID,
		TopicID:              sum.TopicID,
		Score:                sum.Score,
		TotalQuestions:       sum.TotalQuestions,
		CorrectAnswers:       sum.CorrectAnswers,
		TimeSpentSecs:        sum.DurationSecs,
		IncorrectQuestionIDs: sum.IncorrectQuestionIDs,
		TakenAt:              now,
	})

	out := Outcome{Streak: s.prog.TouchStudyDay(now)}
	out.XP = s.prog.AddXP(ctx, sum.Score*QuizXPFactor, "quiz")
	out.ModuleProgress = s.prog.AdvanceModule(sum.ModuleID, ModuleProgressStep)
	if sum.TopicID != "" {
		s.prog.MarkTopicCompleted(sum.ModuleID, sum.TopicID)
	}

	s.unlockEarned(ctx, &out, quizChecks(sum, now))
	s.checkModuleCompletion(ctx, &out)

	if s.events != nil {
		_ = s.events.AppendQuizEvent(ctx, store.QuizEventData{
			QuizID:         sum.QuizID,
			ModuleID:       sum.ModuleID,
			TopicID:        sum.TopicID,
			Score:          sum.Score,
			TotalQuestions: sum.TotalQuestions,
			CorrectAnswers: sum.CorrectAnswers,
			DurationSecs:   sum.DurationSecs,
			XPAwarded:      out.XP.Amount,
		})
	}
	if s.persist != nil {
		s.persist(ctx)
	}
	return out
}

// RecordScenario applies a finished simulation run: streak, XP, module
// progress, achievements, and the persisted scenario event. Cancelled
// runs earn nothing and are not recorded.
func (s *Service) RecordScenario(ctx context.Context, res scenario.Result, now time.Time) Outcome {
	if res.Status == scenario.StatusCancelled {
		return Outcome{Streak: s.prog.State().Streak}
	}

	out := Outcome{Streak: s.prog.TouchStudyDay(now)}
	out.XP = s.prog.AddXP(ctx, res.Score*ScenarioXPFactor, "scenario")
	if res.ModuleID != "" {
		out.ModuleProgress = s.prog.AdvanceModule(res.ModuleID, ModuleProgressStep)
	}

	s.unlockEarned(ctx, &out, scenarioChecks(res, now))
	s.checkModuleCompletion(ctx, &out)

	if s.events != nil {
		_ = s.events.AppendScenarioEvent(ctx, store.ScenarioEventData{
			RunID:            res.RunID,
			ScenarioID:       res.ScenarioID,
			Score:            res.Score,
			CorrectDecisions: res.CorrectDecisions,
			TotalNodes:       res.TotalNodes,
			DurationSecs:     res.DurationSecs,
			Success:          res.Success,
			TimedOut:         res.TimedOut,
			XPAwarded:        out.XP.Amount,
		})
	}
	if s.persist != nil {
		s.persist(ctx)
	}
	return out
}

// quizChecks returns the achievement IDs a quiz result earns.
func quizChecks(sum Summary, now time.Time) []string {
	var ids []string
	if sum.Score == 100 {
		ids = append(ids, "perfect-quiz")
	}
	if sum.DurationSecs > 0 && sum.DurationSecs < SpeedDemonSecs && sum.Score >= SpeedDemonMinScore {
		ids = append(ids, "speed-demon")
	}
	if now.Hour() < nightOwlUntilHour {
		ids = append(ids, "night-owl")
	}
	return ids
}

// scenarioChecks returns the achievement IDs a scenario run earns.
func scenarioChecks(res scenario.Result, now time.Time) []string {
	var ids []string
	if res.Success && res.Score == 100 {
		ids = append(ids, "perfect-quiz")
	}
	if now.Hour() < nightOwlUntilHour {
		ids = append(ids, "night-owl")
	}
	return ids
}

// unlockEarned unlocks each earned achievement, granting its bonus XP
// once, and collects the newly unlocked entries. The streak check runs
// on every result since any activity can extend the streak.
func (s *Service) unlockEarned(ctx context.Context, out *Outcome, ids []string) {
	if out.Streak >= weekStreakDays {
		ids = append(ids, "week-streak")
	}
	for _, id := range ids {
		a := content.AchievementByID(id)
		if a == nil {
			continue
		}
		if s.prog.Unlock(ctx, a.ID, a.Title) {
			out.NewlyUnlocked = append(out.NewlyUnlocked, *a)
			s.prog.AddXP(ctx, a.XP, "achievement")
		}
	}
}

// checkModuleCompletion unlocks the module-completion achievements
// when a module, or every module, reaches 100%.
func (s *Service) checkModuleCompletion(ctx context.Context, out *Outcome) {
	st := s.prog.State()

	anyComplete := false
	allComplete := true
	for _, m := range content.Modules() {
		if st.ModuleProgress[m.ID] >= 100 {
			anyComplete = true
		} else {
			allComplete = false
		}
	}

	var ids []string
	if anyComplete {
		ids = append(ids, "first-module")
	}
	if allComplete {
		ids = append(ids, "all-modules")
	}
	for _, id := range ids {
		a := content.AchievementByID(id)
		if a == nil {
			continue
		}
		if s.prog.Unlock(ctx, a.ID, a.Title) {
			out.NewlyUnlocked = append(out.NewlyUnlocked, *a)
			s.prog.AddXP(ctx, a.XP, "achievement")
		}
	}
}
