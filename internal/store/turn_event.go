package store

import (
	"context"
	"fmt"

	"github.com/pupilplay/engine/ent"
	"github.com/pupilplay/engine/ent/turnevent"
)

func (r *eventRepo) AppendTurn(ctx context.Context, data TurnEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.TurnEvent.Create().
		SetSequence(seqNum).
		SetEpisodeID(data.EpisodeID).
		SetTurn(data.Turn).
		SetUserMessage(data.UserMessage).
		SetFinalMessage(data.FinalMessage).
		SetTier(data.Tier).
		SetDegraded(data.Degraded).
		SetRounds(data.Rounds).
		SetDifficulty(data.Difficulty).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save turn event: %w", err)
	}

	return nil
}

func (r *eventRepo) QueryTurnEvents(ctx context.Context, opts QueryOpts) ([]TurnEventRecord, error) {
	q := r.client.TurnEvent.Query().
		Order(ent.Desc(turnevent.FieldSequence))

	if opts.EpisodeID != "" {
		q = q.Where(turnevent.EpisodeID(opts.EpisodeID))
	}
	if opts.After > 0 {
		q = q.Where(turnevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(turnevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(turnevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(turnevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query turn events: %w", err)
	}

	records := make([]TurnEventRecord, len(events))
	for i, e := range events {
		records[i] = TurnEventRecord{
			ID:        e.ID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			TurnEventData: TurnEventData{
				EpisodeID:    e.EpisodeID,
				Turn:         e.Turn,
				UserMessage:  e.UserMessage,
				FinalMessage: e.FinalMessage,
				Tier:         e.Tier,
				Degraded:     e.Degraded,
				Rounds:       e.Rounds,
				Difficulty:   e.Difficulty,
			},
		}
	}
	return records, nil
}
