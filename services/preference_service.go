package services

import (
	"context"
	"fmt"

	"mingle_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type PreferenceService struct {
	Dynamo *DynamoService
}

// GetPreferences loads a viewer's matching preferences. A viewer who never
// saved any gets the defaults; unset fields on a stored record also fall back
// to their defaults so the filter always sees complete values.
func (ps *PreferenceService) GetPreferences(ctx context.Context, userID string) (models.Preferences, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	item, err := ps.Dynamo.GetItem(ctx, models.UserPreferencesTable, key)
	if err != nil {
		return models.Preferences{}, err
	}
	if item == nil {
		return models.DefaultPreferences(userID), nil
	}

	var prefs models.Preferences
	if err := attributevalue.UnmarshalMap(item, &prefs); err != nil {
		return models.Preferences{}, fmt.Errorf("failed to unmarshal preferences: %w", err)
	}

	prefs.UserID = userID
	if prefs.MinAge == 0 {
		prefs.MinAge = models.DefaultMinAge
	}
	if prefs.MaxAge == 0 {
		prefs.MaxAge = models.DefaultMaxAge
	}
	if prefs.GenderPreference == "" {
		prefs.GenderPreference = models.GenderAny
	}
	return prefs, nil
}

// PutPreferences validates and stores a viewer's preferences. Invalid values
// are rejected before anything is written.
func (ps *PreferenceService) PutPreferences(ctx context.Context, prefs models.Preferences) error {
	if err := validatePreferences(prefs); err != nil {
		return err
	}
	return ps.Dynamo.PutItem(ctx, models.UserPreferencesTable, prefs)
}

func validatePreferences(prefs models.Preferences) error {
	if prefs.UserID == "" {
		return fmt.Errorf("%w: missing userId", ErrInvalidPreference)
	}
	if prefs.MinAge < models.MinAllowedAge || prefs.MinAge > models.MaxAllowedAge {
		return fmt.Errorf("%w: minAge %d outside [%d, %d]", ErrInvalidPreference, prefs.MinAge, models.MinAllowedAge, models.MaxAllowedAge)
	}
	if prefs.MaxAge < models.MinAllowedAge || prefs.MaxAge > models.MaxAllowedAge {
		return fmt.Errorf("%w: maxAge %d outside [%d, %d]", ErrInvalidPreference, prefs.MaxAge, models.MinAllowedAge, models.MaxAllowedAge)
	}
	if prefs.MinAge > prefs.MaxAge {
		return fmt.Errorf("%w: minAge %d greater than maxAge %d", ErrInvalidPreference, prefs.MinAge, prefs.MaxAge)
	}
	return nil
}
