package store

import (
	"context"
	"fmt"

	"github.com/obrev/obrev/ent"
	"github.com/obrev/obrev/ent/scenarioevent"
)

func (r *eventRepo) AppendScenarioEvent(ctx context.Context, data ScenarioEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ScenarioEvent.Create().
		SetSequence(seqNum).
		SetRunID(data.RunID).
		SetScenarioID(data.ScenarioID).
		SetScore(data.Score).
		SetCorrectDecisions(data.CorrectDecisions).
		SetTotalNodes(data.TotalNodes).
		SetDurationSecs(data.DurationSecs).
		SetSuccess(data.Success).
		SetTimedOut(data.TimedOut).
		SetXpAwarded(data.XPAwarded).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save scenario event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryScenarioEvents(ctx context.Context, opts QueryOpts) ([]ScenarioEventRecord, error) {
	query := r.client.ScenarioEvent.Query().
		Order(ent.Desc(scenarioevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(scenarioevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(scenarioevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(scenarioevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(scenarioevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query scenario events: %w", err)
	}

	records := make([]ScenarioEventRecord, len(events))
	for i, e := range events {
		records[i] = ScenarioEventRecord{
			ScenarioEventData: ScenarioEventData{
				RunID:            e.RunID,
				ScenarioID:       e.ScenarioID,
				Score:            e.Score,
				CorrectDecisions: e.CorrectDecisions,
				TotalNodes:       e.TotalNodes,
				DurationSecs:     e.DurationSecs,
				Success:          e.Success,
				TimedOut:         e.TimedOut,
				XPAwarded:        e.XpAwarded,
			},
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return records, nil
}
