package services

import (
	"context"
	"fmt"
	"time"

	"mingle_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type InteractionService struct {
	Dynamo *DynamoService
}

// Record stores a directed swipe edge from actor to target. An edge is written
// at most once per ordered pair: a second attempt fails with ErrAlreadyRecorded
// and leaves the existing edge untouched, whichever kind it was.
func (is *InteractionService) Record(ctx context.Context, actorID, targetID, kind string) error {
	if kind != models.InteractionKindLike && kind != models.InteractionKindSkip {
		return fmt.Errorf("invalid interaction kind '%s'", kind)
	}
	if actorID == targetID {
		return fmt.Errorf("actor and target must differ")
	}

	interaction := models.Interaction{
		ActorID:   actorID,
		TargetID:  targetID,
		Kind:      kind,
		CreatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}

	created, err := is.Dynamo.PutItemIfAbsent(ctx, models.InteractionsTable, interaction, "actorId")
	if err != nil {
		return err
	}
	if !created {
		return fmt.Errorf("%s -> %s: %w", actorID, targetID, ErrAlreadyRecorded)
	}
	return nil
}

// Get fetches the edge for an ordered pair, or nil when none exists.
func (is *InteractionService) Get(ctx context.Context, actorID, targetID string) (*models.Interaction, error) {
	key := map[string]types.AttributeValue{
		"actorId":  &types.AttributeValueMemberS{Value: actorID},
		"targetId": &types.AttributeValueMemberS{Value: targetID},
	}

	item, err := is.Dynamo.GetItem(ctx, models.InteractionsTable, key)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	var interaction models.Interaction
	if err := attributevalue.UnmarshalMap(item, &interaction); err != nil {
		return nil, fmt.Errorf("failed to unmarshal interaction: %w", err)
	}
	return &interaction, nil
}

// ListByActor returns every edge the actor has recorded, regardless of kind.
func (is *InteractionService) ListByActor(ctx context.Context, actorID string) ([]models.Interaction, error) {
	keyCondition := "actorId = :actorId"
	expressionValues := map[string]types.AttributeValue{
		":actorId": &types.AttributeValueMemberS{Value: actorID},
	}

	items, err := is.Dynamo.QueryItems(ctx, models.InteractionsTable, keyCondition, expressionValues, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch interactions: %w", err)
	}

	var interactions []models.Interaction
	if err := attributevalue.UnmarshalListOfMaps(items, &interactions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal interactions: %w", err)
	}
	return interactions, nil
}
