package services

import (
	"context"
	"testing"
	"time"

	"github.com/forgeworks/forge/ent"
	testdb "github.com/forgeworks/forge/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// insertEvent writes an event row directly. Production writes go through
// pkg/events so the INSERT and pg_notify share a transaction; the read
// side under test is the same either way.
func insertEvent(t *testing.T, client *ent.Client, projectID, channel, payload string) *ent.Event {
	t.Helper()
	evt, err := client.Event.Create().
		SetProjectID(projectID).
		SetChannel(channel).
		SetPayload(payload).
		SetCreatedAt(time.Now()).
		Save(context.Background())
	require.NoError(t, err)
	return evt
}

func TestEventService_GetEventsSince(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEventService(client.Client)
	ctx := context.Background()

	user := createTestUser(t, client.Client)
	proj := createTestProject(t, client.Client, user.ID)
	channel := "project:" + proj.ID

	evt1 := insertEvent(t, client.Client, proj.ID, channel, `{"type":"stage.started","stage":"spec"}`)
	evt2 := insertEvent(t, client.Client, proj.ID, channel, `{"type":"stage.completed","stage":"spec"}`)
	evt3 := insertEvent(t, client.Client, proj.ID, channel, `{"type":"project.completed"}`)

	t.Run("returns everything after the cursor, oldest first", func(t *testing.T) {
		events, err := service.GetEventsSince(ctx, channel, evt1.ID, 0)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, evt2.ID, events[0].ID)
		assert.Equal(t, evt3.ID, events[1].ID)
	})

	t.Run("cursor zero returns the full history", func(t *testing.T) {
		events, err := service.GetEventsSince(ctx, channel, 0, 0)
		require.NoError(t, err)
		assert.Len(t, events, 3)
	})

	t.Run("respects limit", func(t *testing.T) {
		events, err := service.GetEventsSince(ctx, channel, 0, 2)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, evt1.ID, events[0].ID)
	})

	t.Run("other channels are invisible", func(t *testing.T) {
		events, err := service.GetEventsSince(ctx, "project:other", 0, 0)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}

func TestEventService_Cleanup(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEventService(client.Client)
	ctx := context.Background()

	user := createTestUser(t, client.Client)
	projA := createTestProject(t, client.Client, user.ID)
	projB := createTestProject(t, client.Client, user.ID)

	insertEvent(t, client.Client, projA.ID, "project:"+projA.ID, `{"type":"x"}`)
	insertEvent(t, client.Client, projA.ID, "project:"+projA.ID, `{"type":"y"}`)
	insertEvent(t, client.Client, projB.ID, "project:"+projB.ID, `{"type":"z"}`)

	t.Run("cleanup by project removes only that project's events", func(t *testing.T) {
		count, err := service.CleanupProjectEvents(ctx, projA.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		remaining, err := service.GetEventsSince(ctx, "project:"+projB.ID, 0, 0)
		require.NoError(t, err)
		assert.Len(t, remaining, 1)
	})

	t.Run("orphan cleanup removes events past the TTL", func(t *testing.T) {
		old, err := client.Event.Create().
			SetProjectID(projB.ID).
			SetChannel("project:" + projB.ID).
			SetPayload(`{"type":"stale"}`).
			SetCreatedAt(time.Now().Add(-48 * time.Hour)).
			Save(ctx)
		require.NoError(t, err)

		count, err := service.CleanupOrphanedEvents(ctx, 24*time.Hour)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		events, err := service.GetEventsSince(ctx, "project:"+projB.ID, 0, 0)
		require.NoError(t, err)
		for _, evt := range events {
			assert.NotEqual(t, old.ID, evt.ID)
		}
	})
}
