package services

import (
	"context"
	"fmt"
	"time"

	"mingle_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

type MatchService struct {
	Dynamo       *DynamoService
	Profiles     *UserProfileService
	Interactions *InteractionService
}

// OnLikeRecorded runs the match check after a like from actor to target has
// been recorded. When the reciprocal like exists, the match for the unordered
// pair is created at most once: the record is keyed by the pair key and written
// with a create-if-absent guard, so whichever side's trigger runs first wins
// and the loser gets the already-created match back. Returns nil when no
// reciprocal like exists yet.
func (ms *MatchService) OnLikeRecorded(ctx context.Context, actorID, targetID string) (*models.Match, error) {
	reciprocal, err := ms.Interactions.Get(ctx, targetID, actorID)
	if err != nil {
		return nil, err
	}
	if reciprocal == nil || reciprocal.Kind != models.InteractionKindLike {
		return nil, nil
	}

	userA, userB := actorID, targetID
	if userB < userA {
		userA, userB = userB, userA
	}

	match := models.Match{
		PairKey:   models.PairKey(actorID, targetID),
		MatchID:   uuid.NewString(),
		UserA:     userA,
		UserB:     userB,
		CreatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}

	created, err := ms.Dynamo.PutItemIfAbsent(ctx, models.MatchesTable, match, "pairKey")
	if err != nil {
		return nil, err
	}
	if !created {
		// The other side's trigger got there first.
		existing, err := ms.getByPairKey(ctx, match.PairKey)
		if err != nil {
			return nil, err
		}
		match = *existing
	}

	// The index puts are plain overwrites keyed by (userId, matchId) and run
	// on every pass, including the already-created branch, so a pass that died
	// between the match create and the index writes heals on the next trigger.
	for _, userID := range []string{match.UserA, match.UserB} {
		entry := models.UserMatch{UserID: userID, MatchID: match.MatchID}
		if err := ms.Dynamo.PutItem(ctx, models.UserMatchesTable, entry); err != nil {
			return nil, fmt.Errorf("failed to index match for %s: %w", userID, err)
		}
	}

	return &match, nil
}

// GetMatch looks a match up by its id via the matchId GSI. GSI reads are
// eventually consistent, so a just-created match can be briefly invisible
// here; callers that hold the pair key should use getByPairKey instead.
func (ms *MatchService) GetMatch(ctx context.Context, matchID string) (*models.Match, error) {
	keyCondition := "matchId = :matchId"
	expressionValues := map[string]types.AttributeValue{
		":matchId": &types.AttributeValueMemberS{Value: matchID},
	}

	items, err := ms.Dynamo.QueryItemsWithIndex(ctx, models.MatchesTable, models.MatchIDIndex, keyCondition, expressionValues, nil, 1)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("match %s: %w", matchID, ErrNotFound)
	}

	var match models.Match
	if err := attributevalue.UnmarshalMap(items[0], &match); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}
	return &match, nil
}

func (ms *MatchService) getByPairKey(ctx context.Context, pairKey string) (*models.Match, error) {
	key := map[string]types.AttributeValue{
		"pairKey": &types.AttributeValueMemberS{Value: pairKey},
	}

	item, err := ms.Dynamo.GetItem(ctx, models.MatchesTable, key)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("match pair %s: %w", pairKey, ErrNotFound)
	}

	var match models.Match
	if err := attributevalue.UnmarshalMap(item, &match); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}
	return &match, nil
}

// ListForUser returns the ids of every match the user participates in.
func (ms *MatchService) ListForUser(ctx context.Context, userID string) ([]string, error) {
	keyCondition := "userId = :userId"
	expressionValues := map[string]types.AttributeValue{
		":userId": &types.AttributeValueMemberS{Value: userID},
	}

	items, err := ms.Dynamo.QueryItems(ctx, models.UserMatchesTable, keyCondition, expressionValues, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch match index: %w", err)
	}

	var entries []models.UserMatch
	if err := attributevalue.UnmarshalListOfMaps(items, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match index: %w", err)
	}

	matchIDs := make([]string, 0, len(entries))
	for _, entry := range entries {
		matchIDs = append(matchIDs, entry.MatchID)
	}
	return matchIDs, nil
}

// GetCurrentMatches returns the user's matches enriched with the counterpart's
// display details and the last-message summary, for the match list view.
// Matches whose counterpart profile no longer exists are skipped.
func (ms *MatchService) GetCurrentMatches(ctx context.Context, userID string) ([]map[string]interface{}, error) {
	matchIDs, err := ms.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	enriched := make([]map[string]interface{}, 0, len(matchIDs))
	for _, matchID := range matchIDs {
		match, err := ms.GetMatch(ctx, matchID)
		if err != nil {
			continue
		}

		otherID := match.OtherUser(userID)
		otherProfile, err := ms.Profiles.GetUserProfile(ctx, otherID)
		if err != nil {
			continue
		}

		enriched = append(enriched, map[string]interface{}{
			"matchId":       match.MatchID,
			"userId":        otherProfile.UserID,
			"firstName":     otherProfile.FirstName,
			"lastName":      otherProfile.LastName,
			"profileImage":  otherProfile.ProfileImage,
			"lastMessage":   match.LastMessage,
			"lastMessageAt": match.LastMessageAt,
			"createdAt":     match.CreatedAt,
		})
	}
	return enriched, nil
}

// UpdateSummary moves the match's last-message snapshot forward. The update is
// guarded so the summary timestamp never regresses under concurrent appends; a
// stale update is silently skipped.
func (ms *MatchService) UpdateSummary(ctx context.Context, pairKey, text, createdAt string) error {
	key := map[string]types.AttributeValue{
		"pairKey": &types.AttributeValueMemberS{Value: pairKey},
	}

	updateExpression := "SET lastMessage = :text, lastMessageAt = :ts"
	conditionExpression := "attribute_not_exists(lastMessageAt) OR lastMessageAt <= :ts"
	expressionValues := map[string]types.AttributeValue{
		":text": &types.AttributeValueMemberS{Value: text},
		":ts":   &types.AttributeValueMemberS{Value: createdAt},
	}

	_, err := ms.Dynamo.UpdateItemIfCondition(ctx, models.MatchesTable, updateExpression, conditionExpression, key, expressionValues, nil)
	return err
}
