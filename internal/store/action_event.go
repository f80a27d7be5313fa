package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendAction(ctx context.Context, data ActionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ActionEvent.Create().
		SetSequence(seqNum).
		SetEpisodeID(data.EpisodeID).
		SetCallID(data.CallID).
		SetName(data.Name).
		SetOk(data.OK).
		SetFailure(data.Failure).
		SetDetail(data.Detail).
		SetDurationMs(data.DurationMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save action event: %w", err)
	}

	return nil
}
