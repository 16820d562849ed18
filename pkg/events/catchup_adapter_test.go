package events

import (
	"context"
	"fmt"
	"testing"

	"github.com/forgeworks/forge/ent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockEventQuerier implements eventQuerier for testing the adapter.
type mockEventQuerier struct {
	events []*ent.Event
	err    error
}

func (m *mockEventQuerier) GetEventsSince(_ context.Context, _ string, _ int, limit int) ([]*ent.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	if limit > 0 && len(m.events) > limit {
		return m.events[:limit], nil
	}
	return m.events, nil
}

func TestEventServiceAdapter_GetCatchupEvents(t *testing.T) {
	// The adapter decodes the stored JSON text into the payload map.
	querier := &mockEventQuerier{
		events: []*ent.Event{
			{ID: 10, Payload: `{"type":"stage.status","stage":"spec","status":"started"}`},
			{ID: 20, Payload: `{"type":"project.status","status":"generating"}`},
		},
	}

	adapter := NewEventServiceAdapter(querier)
	events, err := adapter.GetCatchupEvents(context.Background(), "project:test", 0, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, 10, events[0].ID)
	assert.Equal(t, 20, events[1].ID)

	assert.Equal(t, "stage.status", events[0].Payload["type"])
	assert.Equal(t, "spec", events[0].Payload["stage"])
	assert.Equal(t, "project.status", events[1].Payload["type"])
	assert.Equal(t, "generating", events[1].Payload["status"])
}

func TestEventServiceAdapter_GetCatchupEvents_WithLimit(t *testing.T) {
	querier := &mockEventQuerier{
		events: []*ent.Event{
			{ID: 1, Payload: `{"seq":1}`},
			{ID: 2, Payload: `{"seq":2}`},
			{ID: 3, Payload: `{"seq":3}`},
		},
	}

	adapter := NewEventServiceAdapter(querier)
	events, err := adapter.GetCatchupEvents(context.Background(), "project:test", 0, 2)
	require.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Equal(t, 1, events[0].ID)
	assert.Equal(t, 2, events[1].ID)
}

func TestEventServiceAdapter_GetCatchupEvents_Error(t *testing.T) {
	querier := &mockEventQuerier{
		err: fmt.Errorf("database connection lost"),
	}

	adapter := NewEventServiceAdapter(querier)
	events, err := adapter.GetCatchupEvents(context.Background(), "project:test", 0, 10)
	assert.Error(t, err)
	assert.Nil(t, events)
	assert.Contains(t, err.Error(), "database connection lost")
}

func TestEventServiceAdapter_GetCatchupEvents_CorruptPayload(t *testing.T) {
	querier := &mockEventQuerier{
		events: []*ent.Event{
			{ID: 7, Payload: `{not json`},
		},
	}

	adapter := NewEventServiceAdapter(querier)
	events, err := adapter.GetCatchupEvents(context.Background(), "project:test", 0, 10)
	assert.Error(t, err)
	assert.Nil(t, events)
	assert.Contains(t, err.Error(), "decode stored event 7")
}

func TestEventServiceAdapter_GetCatchupEvents_Empty(t *testing.T) {
	querier := &mockEventQuerier{
		events: []*ent.Event{},
	}

	adapter := NewEventServiceAdapter(querier)
	events, err := adapter.GetCatchupEvents(context.Background(), "project:test", 0, 10)
	require.NoError(t, err)
	assert.Empty(t, events)
}
