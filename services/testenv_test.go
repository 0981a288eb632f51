package services

import (
	"context"
	"testing"

	"mingle_server/models"

	"github.com/stretchr/testify/require"
)

// testEnv wires the full service graph against the in-memory store, the same
// way main.go wires it against DynamoDB.
type testEnv struct {
	dynamo       *DynamoService
	profiles     *UserProfileService
	preferences  *PreferenceService
	interactions *InteractionService
	matches      *MatchService
	feed         *FeedService
	actions      *ActionService
	chat         *ChatService
}

func newTestEnv() *testEnv {
	return newTestEnvWith(newFakeDynamo())
}

// newFlakyTestEnv wires the services over a store whose next calls can be
// made to fail, for exercising recovery after partial writes.
func newFlakyTestEnv() (*testEnv, *flakyDynamo) {
	flaky := &flakyDynamo{DynamoAPI: newFakeDynamo()}
	return newTestEnvWith(flaky), flaky
}

func newTestEnvWith(client DynamoAPI) *testEnv {
	dynamo := &DynamoService{Client: client}
	profiles := &UserProfileService{Dynamo: dynamo}
	preferences := &PreferenceService{Dynamo: dynamo}
	interactions := &InteractionService{Dynamo: dynamo}
	matches := &MatchService{Dynamo: dynamo, Profiles: profiles, Interactions: interactions}
	return &testEnv{
		dynamo:       dynamo,
		profiles:     profiles,
		preferences:  preferences,
		interactions: interactions,
		matches:      matches,
		feed:         &FeedService{Profiles: profiles, Preferences: preferences, Interactions: interactions},
		actions:      &ActionService{Interactions: interactions, Matches: matches},
		chat:         &ChatService{Dynamo: dynamo, Matches: matches},
	}
}

func (e *testEnv) addProfile(t *testing.T, userID string, age int, gender, course string) {
	t.Helper()
	_, err := e.profiles.AddUserProfile(context.Background(), models.UserProfile{
		UserID:    userID,
		FirstName: userID,
		LastName:  "Tester",
		Age:       age,
		Gender:    gender,
		Course:    course,
	})
	require.NoError(t, err)
}

// matchedPair creates two mutually liking users and returns their match.
func (e *testEnv) matchedPair(t *testing.T, userA, userB string) *models.Match {
	t.Helper()
	ctx := context.Background()
	e.addProfile(t, userA, 22, "Male", "CS")
	e.addProfile(t, userB, 23, "Female", "CS")
	require.NoError(t, e.interactions.Record(ctx, userA, userB, models.InteractionKindLike))
	require.NoError(t, e.interactions.Record(ctx, userB, userA, models.InteractionKindLike))
	match, err := e.matches.OnLikeRecorded(ctx, userB, userA)
	require.NoError(t, err)
	require.NotNil(t, match)
	return match
}
