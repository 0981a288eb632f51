package services

import (
	"context"
	"errors"
	"fmt"

	"mingle_server/models"
)

// ActionService orchestrates a swipe: record the edge, then run the match
// check when the swipe was a like. Recording itself knows nothing about
// matching.
type ActionService struct {
	Interactions *InteractionService
	Matches      *MatchService
}

// ProcessSwipe handles a "like" or "skip" from actor on target.
//
// A like whose edge already exists still runs the match check: the earlier
// pass may have recorded the edge and then died before the detector finished,
// and the duplicate call is the only retry that edge will ever get. The
// detector is idempotent, so re-running it is safe — but only when the
// recorded edge really is a like; a recorded skip must never trigger match
// creation.
func (as *ActionService) ProcessSwipe(ctx context.Context, actorID, targetID, kind string) (map[string]string, error) {
	switch kind {
	case models.InteractionKindLike, models.InteractionKindSkip:
	default:
		return nil, errors.New("invalid action")
	}

	recordErr := as.Interactions.Record(ctx, actorID, targetID, kind)
	if recordErr != nil && !errors.Is(recordErr, ErrAlreadyRecorded) {
		return nil, recordErr
	}

	if kind == models.InteractionKindSkip {
		if recordErr != nil {
			return nil, recordErr
		}
		return map[string]string{"message": "User skipped"}, nil
	}

	if recordErr != nil {
		edge, err := as.Interactions.Get(ctx, actorID, targetID)
		if err != nil {
			return nil, err
		}
		if edge == nil || edge.Kind != models.InteractionKindLike {
			return nil, recordErr
		}
	}

	match, err := as.Matches.OnLikeRecorded(ctx, actorID, targetID)
	if err != nil {
		return nil, fmt.Errorf("like recorded but match check failed: %w", err)
	}
	if match != nil {
		return map[string]string{"message": "It's a match!", "matchId": match.MatchID}, nil
	}
	if recordErr != nil {
		return nil, recordErr
	}
	return map[string]string{"message": "User liked"}, nil
}
