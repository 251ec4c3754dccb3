package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/obrev/obrev/internal/app"
	"github.com/obrev/obrev/internal/llm"
	"github.com/obrev/obrev/internal/progression"
	"github.com/obrev/obrev/internal/questiongen"
	"github.com/obrev/obrev/internal/quiz"
	"github.com/obrev/obrev/internal/store"
)

const (
	// snapshotVersion tags saved state for future migrations.
	snapshotVersion = 1

	// keepSnapshots bounds how many old snapshots survive pruning.
	keepSnapshots = 20
)

// runApp opens the store, restores the student's state, builds
// dependencies, launches the TUI, and saves a snapshot on exit.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	events := st.EventRepo()
	snapshots := st.SnapshotRepo()

	prog, err := loadProgression(ctx, snapshots, events)
	if err != nil {
		return err
	}

	// Opening the app counts as the day's study heartbeat.
	sessionID := uuid.NewString()
	startedAt := time.Now()
	streak := prog.TouchStudyDay(startedAt)
	_ = events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:   sessionID,
		Action:      "start",
		StudyDay:    startedAt.Format(progression.StudyDayFormat),
		StreakAfter: streak,
	})

	// Write-through: each recorded result persists a fresh snapshot, so
	// a crash mid-session loses at most the run in progress.
	awards := quiz.NewService(prog, events)
	awards.OnRecord(func(ctx context.Context) {
		if err := saveSnapshot(ctx, snapshots, prog); err != nil {
			fmt.Fprintln(os.Stderr, "save progress:", err)
		}
	})

	deps := app.Deps{
		Progression: prog,
		Awards:      awards,
		Events:      events,
		Generator:   newGenerator(ctx, events),
	}

	runErr := app.Run(deps)

	_ = events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:    sessionID,
		Action:       "end",
		DurationSecs: int(time.Since(startedAt).Seconds()),
	})
	if err := saveSnapshot(ctx, snapshots, prog); err != nil {
		fmt.Fprintln(os.Stderr, "save progress:", err)
	}
	return runErr
}

// loadProgression restores progression from the latest snapshot, or
// starts fresh when none exists.
func loadProgression(ctx context.Context, snapshots store.SnapshotRepo, events store.EventRepo) (*progression.Service, error) {
	snap, err := snapshots.Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	var data *store.ProgressionSnapshotData
	if snap != nil {
		data = snap.Data.Progression
	}
	return progression.NewService(data, events), nil
}

// saveSnapshot persists the current state and prunes old snapshots.
func saveSnapshot(ctx context.Context, snapshots store.SnapshotRepo, prog *progression.Service) error {
	err := snapshots.Save(ctx, &store.Snapshot{
		Data: store.SnapshotData{
			Version:     snapshotVersion,
			Progression: prog.SnapshotData(),
		},
	})
	if err != nil {
		return err
	}
	return snapshots.Prune(ctx, keepSnapshots)
}

// newGenerator builds the question source: an LLM generator with the
// built-in bank as fallback when a provider is configured, the bank
// alone otherwise. The app works fully offline.
func newGenerator(ctx context.Context, events store.EventRepo) questiongen.Generator {
	bank := &questiongen.BankGenerator{}

	cfg, ok := discoverLLM()
	if !ok {
		return bank
	}

	provider, err := llm.NewProvider(ctx, cfg, events)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Using the built-in question bank.")
		return bank
	}

	return questiongen.WithFallback(questiongen.New(provider, questiongen.DefaultConfig()), bank)
}

// discoverLLM prefers explicit OBREV_* configuration, then falls back
// to probing the standard provider API key variables.
func discoverLLM() (llm.Config, bool) {
	cfg := llm.ConfigFromEnv()
	if cfg.Validate() == nil {
		return cfg, true
	}
	return llm.DiscoverConfig()
}
