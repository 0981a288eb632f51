package services

import (
	"context"
	"sync"
	"testing"

	"mingle_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordCreatesEdgeOnce(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	require.NoError(t, env.interactions.Record(ctx, "alice", "bob", models.InteractionKindLike))

	edge, err := env.interactions.Get(ctx, "alice", "bob")
	require.NoError(t, err)
	require.NotNil(t, edge)
	assert.Equal(t, "alice", edge.ActorID)
	assert.Equal(t, "bob", edge.TargetID)
	assert.Equal(t, models.InteractionKindLike, edge.Kind)
	assert.NotEmpty(t, edge.CreatedAt)
}

func TestRecordDuplicateLeavesOriginalUntouched(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	require.NoError(t, env.interactions.Record(ctx, "alice", "bob", models.InteractionKindLike))
	original, err := env.interactions.Get(ctx, "alice", "bob")
	require.NoError(t, err)

	err = env.interactions.Record(ctx, "alice", "bob", models.InteractionKindSkip)
	assert.ErrorIs(t, err, ErrAlreadyRecorded)

	edge, err := env.interactions.Get(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.Equal(t, original.Kind, edge.Kind)
	assert.Equal(t, original.CreatedAt, edge.CreatedAt)
}

func TestRecordIsDirected(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	require.NoError(t, env.interactions.Record(ctx, "alice", "bob", models.InteractionKindLike))

	// The reverse edge is a different ordered pair and still open.
	require.NoError(t, env.interactions.Record(ctx, "bob", "alice", models.InteractionKindSkip))
}

func TestRecordRejectsInvalidInput(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	assert.Error(t, env.interactions.Record(ctx, "alice", "bob", "superlike"))
	assert.Error(t, env.interactions.Record(ctx, "alice", "alice", models.InteractionKindLike))
}

func TestRecordConcurrentDuplicates(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	const attempts = 16
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- env.interactions.Record(ctx, "alice", "bob", models.InteractionKindLike)
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, duplicates int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case assert.ErrorIs(t, err, ErrAlreadyRecorded):
			duplicates++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, duplicates)

	edges, err := env.interactions.ListByActor(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, edges, 1)
}

func TestListByActor(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	require.NoError(t, env.interactions.Record(ctx, "alice", "bob", models.InteractionKindLike))
	require.NoError(t, env.interactions.Record(ctx, "alice", "carol", models.InteractionKindSkip))
	require.NoError(t, env.interactions.Record(ctx, "bob", "alice", models.InteractionKindLike))

	edges, err := env.interactions.ListByActor(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, edges, 2)
	targets := []string{edges[0].TargetID, edges[1].TargetID}
	assert.ElementsMatch(t, []string{"bob", "carol"}, targets)
}
