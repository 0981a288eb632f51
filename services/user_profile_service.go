package services

import (
	"context"
	"fmt"
	"time"

	"mingle_server/models"
	"mingle_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type UserProfileService struct {
	Dynamo *DynamoService
}

// AddUserProfile adds a new user profile to DynamoDB
func (ups *UserProfileService) AddUserProfile(ctx context.Context, profile models.UserProfile) (*models.UserProfile, error) {
	if profile.CreatedAt == "" {
		profile.CreatedAt = time.Now().UTC().Format(time.RFC3339Nano)
	}

	if err := ups.Dynamo.PutItem(ctx, models.UserProfilesTable, profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetUserProfile retrieves a user profile by ID
func (ups *UserProfileService) GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	item, err := ups.Dynamo.GetItem(ctx, models.UserProfilesTable, key)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("profile %s: %w", userID, ErrNotFound)
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &profile, nil
}

// UpdateUserProfile applies partial edits to an existing profile. Only the
// owner-facing display attributes may be changed; the profile must already
// exist.
func (ups *UserProfileService) UpdateUserProfile(ctx context.Context, userID string, updates map[string]interface{}) (*models.UserProfile, error) {
	if _, err := ups.GetUserProfile(ctx, userID); err != nil {
		return nil, err
	}
	if len(updates) == 0 {
		return ups.GetUserProfile(ctx, userID)
	}

	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	updateExpression := "SET"
	expressionAttributeValues := make(map[string]types.AttributeValue)
	expressionAttributeNames := make(map[string]string)

	for k, v := range updates {
		attr, err := attributevalue.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal field '%s': %w", k, err)
		}
		placeholder := ":" + k
		attributeName := "#" + k
		updateExpression += " " + attributeName + " = " + placeholder + ","
		expressionAttributeValues[placeholder] = attr
		expressionAttributeNames[attributeName] = k
	}
	updateExpression = updateExpression[:len(updateExpression)-1]

	updatedItem, err := ups.Dynamo.UpdateItem(ctx, models.UserProfilesTable, updateExpression, key, expressionAttributeValues, expressionAttributeNames)
	if err != nil {
		return nil, err
	}

	var updatedProfile models.UserProfile
	if err := attributevalue.UnmarshalMap(updatedItem, &updatedProfile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated profile: %w", err)
	}
	return &updatedProfile, nil
}

// GetAllProfilesExcept scans the profile population, dropping the viewer and
// any user id in the exclude set.
func (ups *UserProfileService) GetAllProfilesExcept(ctx context.Context, viewerID string, exclude map[string]struct{}) ([]models.UserProfile, error) {
	var profiles []models.UserProfile
	err := ups.Dynamo.ScanWithFilter(ctx, models.UserProfilesTable, func(item map[string]types.AttributeValue) bool {
		userID := utils.ExtractString(item, "userId")
		if userID == "" || userID == viewerID {
			return false
		}
		_, excluded := exclude[userID]
		return !excluded
	}, &profiles)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profiles: %w", err)
	}
	return profiles, nil
}

// DeleteUserProfile removes a user's profile, their preferences and their
// match-index entries. Interaction edges and match records are retained as
// historical data; a deleted user can never be offered again because the
// queue builder only considers profiles returned by the population scan.
func (ups *UserProfileService) DeleteUserProfile(ctx context.Context, userID string) error {
	if _, err := ups.GetUserProfile(ctx, userID); err != nil {
		return err
	}

	profileKey := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
	if err := ups.Dynamo.DeleteItem(ctx, models.UserProfilesTable, profileKey); err != nil {
		return err
	}
	if err := ups.Dynamo.DeleteItem(ctx, models.UserPreferencesTable, profileKey); err != nil {
		return err
	}

	// Drop the per-user match index so nothing references the gone profile.
	keyCondition := "userId = :userId"
	expressionValues := map[string]types.AttributeValue{
		":userId": &types.AttributeValueMemberS{Value: userID},
	}
	entries, err := ups.Dynamo.QueryItems(ctx, models.UserMatchesTable, keyCondition, expressionValues, nil, 0)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		matchID := utils.ExtractString(entry, "matchId")
		entryKey := map[string]types.AttributeValue{
			"userId":  &types.AttributeValueMemberS{Value: userID},
			"matchId": &types.AttributeValueMemberS{Value: matchID},
		}
		if err := ups.Dynamo.DeleteItem(ctx, models.UserMatchesTable, entryKey); err != nil {
			return err
		}
	}

	return nil
}
