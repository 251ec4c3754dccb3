package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	// Save a snapshot carrying progression state.
	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version: 1,
			Progression: &ProgressionSnapshotData{
				DisplayName:    "Maya",
				XP:             2350,
				Level:          3,
				Streak:         4,
				LastStudyDay:   "2026-09-01",
				Achievements:   []string{"first-module", "perfect-score"},
				ModuleProgress: map[string]int{"module-7": 40},
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	// Retrieve it.
	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	prog := snap.Data.Progression
	if prog == nil {
		t.Fatal("expected progression data in snapshot")
	}
	if prog.XP != 2350 || prog.Level != 3 {
		t.Errorf("xp/level = %d/%d, want 2350/3", prog.XP, prog.Level)
	}
	if len(prog.Achievements) != 2 {
		t.Errorf("achievements = %v, want 2 entries", prog.Achievements)
	}
	if prog.ModuleProgress["module-7"] != 40 {
		t.Errorf("module-7 progress = %d, want 40", prog.ModuleProgress["module-7"])
	}
}

func TestSnapshotSaveFillsSequenceAndTimestamp(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// Advance the counter so the snapshot picks up a non-zero sequence.
	events := s.EventRepo()
	for i := 0; i < 3; i++ {
		if err := events.AppendXPEvent(ctx, XPEventData{Amount: 10, Reason: "quiz"}); err != nil {
			t.Fatalf("append xp event %d: %v", i, err)
		}
	}

	snap := &Snapshot{Data: SnapshotData{Version: 1}}
	if err := s.SnapshotRepo().Save(ctx, snap); err != nil {
		t.Fatalf("save: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("filled sequence = %d, want 3", snap.Sequence)
	}
	if snap.Timestamp.IsZero() {
		t.Error("expected timestamp to be filled")
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: i + 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
	if snap.Data.Version != 3 {
		t.Errorf("data.version = %d, want 3", snap.Data.Version)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune to keep 5.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	// Latest should still be sequence 7.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}

	cur, err := sc.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if cur != 5 {
		t.Errorf("current = %d, want 5", cur)
	}
}

func TestQuizEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendQuizEvent(ctx, QuizEventData{
		QuizID:         "q-1",
		ModuleID:       "module-7",
		TopicID:        "postpartum-hemorrhage",
		Score:          80,
		TotalQuestions: 5,
		CorrectAnswers: 4,
		DurationSecs:   95,
		XPAwarded:      160,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	records, err := repo.QueryQuizEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	r := records[0]
	if r.ModuleID != "module-7" || r.Score != 80 || r.XPAwarded != 160 {
		t.Errorf("record = %+v, want module-7/80/160", r.QuizEventData)
	}
	if r.Sequence != 1 {
		t.Errorf("sequence = %d, want 1", r.Sequence)
	}
}

func TestScenarioEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendScenarioEvent(ctx, ScenarioEventData{
		RunID:            "run-1",
		ScenarioID:       "shoulder-dystocia",
		Score:            100,
		CorrectDecisions: 3,
		TotalNodes:       3,
		DurationSecs:     74,
		Success:          true,
		XPAwarded:        300,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	records, err := repo.QueryScenarioEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	r := records[0]
	if !r.Success || r.TimedOut {
		t.Errorf("success/timed_out = %v/%v, want true/false", r.Success, r.TimedOut)
	}
	if r.Score != 100 || r.TotalNodes != 3 {
		t.Errorf("score/nodes = %d/%d, want 100/3", r.Score, r.TotalNodes)
	}
}

func TestEventsShareGlobalSequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendQuizEvent(ctx, QuizEventData{QuizID: "q-1", ModuleID: "module-7", Score: 60, TotalQuestions: 5, CorrectAnswers: 3}); err != nil {
		t.Fatalf("append quiz: %v", err)
	}
	if err := repo.AppendXPEvent(ctx, XPEventData{Amount: 120, Reason: "quiz", TotalAfter: 120, LevelAfter: 1}); err != nil {
		t.Fatalf("append xp: %v", err)
	}
	if err := repo.AppendAchievementEvent(ctx, AchievementEventData{AchievementID: "first-module", Title: "First Steps"}); err != nil {
		t.Fatalf("append achievement: %v", err)
	}
	if err := repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s-1", Action: "start", StudyDay: "2026-09-01", StreakAfter: 1}); err != nil {
		t.Fatalf("append session: %v", err)
	}
	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock-1", Purpose: "question-gen", Success: true}); err != nil {
		t.Fatalf("append llm: %v", err)
	}

	records, err := repo.QueryQuizEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query quiz: %v", err)
	}
	if records[0].Sequence != 1 {
		t.Errorf("quiz sequence = %d, want 1", records[0].Sequence)
	}

	cur, err := s.seq.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if cur != 5 {
		t.Errorf("sequence after 5 events = %d, want 5", cur)
	}
}

func TestQueryOptsFiltering(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		err := repo.AppendQuizEvent(ctx, QuizEventData{
			QuizID:         "q",
			ModuleID:       "module-8",
			Score:          i * 20,
			TotalQuestions: 5,
			CorrectAnswers: i,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := repo.QueryQuizEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query limit: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("limit 2 returned %d records", len(records))
	}
	// Newest first.
	if records[0].Sequence != 5 {
		t.Errorf("first sequence = %d, want 5", records[0].Sequence)
	}

	records, err = repo.QueryQuizEvents(ctx, QueryOpts{After: 3})
	if err != nil {
		t.Fatalf("query after: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("after 3 returned %d records, want 2", len(records))
	}
}

func TestAutoMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"snapshots", "quiz_events", "scenario_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}
