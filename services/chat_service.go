package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mingle_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// ChatService owns a match's message thread and its denormalized last-message
// summary. It is the only writer of the summary fields.
type ChatService struct {
	Dynamo  *DynamoService
	Matches *MatchService
}

// AppendMessage appends a message to a match's thread and moves the summary
// forward. Only the two participants may post. Returns the message as stored,
// so callers relay exactly what was persisted rather than the raw input.
func (cs *ChatService) AppendMessage(ctx context.Context, matchID, senderID, text string) (*models.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("message text cannot be empty")
	}

	match, err := cs.Matches.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !match.HasParticipant(senderID) {
		return nil, fmt.Errorf("%s in match %s: %w", senderID, matchID, ErrNotParticipant)
	}

	message := models.Message{
		MatchID:   matchID,
		CreatedAt: time.Now().UTC().Format(time.RFC3339Nano),
		MessageID: uuid.NewString(),
		SenderID:  senderID,
		Content:   text,
	}

	if err := cs.Dynamo.PutItem(ctx, models.MessagesTable, message); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}

	if err := cs.Matches.UpdateSummary(ctx, match.PairKey, message.Content, message.CreatedAt); err != nil {
		return nil, fmt.Errorf("message stored but summary update failed: %w", err)
	}

	return &message, nil
}

// ListMessages fetches a match's thread ordered by timestamp ascending. Each
// call re-reads the store, so a live thread picks up new appends.
func (cs *ChatService) ListMessages(ctx context.Context, matchID string) ([]models.Message, error) {
	if _, err := cs.Matches.GetMatch(ctx, matchID); err != nil {
		return nil, err
	}

	keyCondition := "#matchId = :matchId"
	expressionValues := map[string]types.AttributeValue{
		":matchId": &types.AttributeValueMemberS{Value: matchID},
	}
	expressionNames := map[string]string{
		"#matchId": "matchId",
	}

	items, err := cs.Dynamo.QueryItems(ctx, models.MessagesTable, keyCondition, expressionValues, expressionNames, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	// The createdAt sort key already yields ascending order.
	var messages []models.Message
	if err := attributevalue.UnmarshalListOfMaps(items, &messages); err != nil {
		return nil, fmt.Errorf("failed to unmarshal messages: %w", err)
	}
	return messages, nil
}
