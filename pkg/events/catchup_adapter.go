package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/forgeworks/forge/ent"
)

// eventQuerier is the slice of services.EventService the adapter needs.
type eventQuerier interface {
	GetEventsSince(ctx context.Context, channel string, sinceID, limit int) ([]*ent.Event, error)
}

// EventServiceAdapter wraps services.EventService to implement CatchupQuerier.
type EventServiceAdapter struct {
	eventService eventQuerier
}

// NewEventServiceAdapter creates a CatchupQuerier from an EventService.
func NewEventServiceAdapter(es eventQuerier) *EventServiceAdapter {
	return &EventServiceAdapter{eventService: es}
}

// GetCatchupEvents queries events since sinceID up to limit for the catchup
// mechanism. Stored payloads are JSON text; a row that fails to decode is
// an error rather than a silent skip, since a gap in catchup delivery would
// leave the client with a stale view it cannot detect.
func (a *EventServiceAdapter) GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]CatchupEvent, error) {
	events, err := a.eventService.GetEventsSince(ctx, channel, sinceID, limit)
	if err != nil {
		return nil, err
	}

	result := make([]CatchupEvent, len(events))
	for i, evt := range events {
		var payload map[string]any
		if err := json.Unmarshal([]byte(evt.Payload), &payload); err != nil {
			return nil, fmt.Errorf("decode stored event %d: %w", evt.ID, err)
		}
		result[i] = CatchupEvent{
			ID:      evt.ID,
			Payload: payload,
		}
	}
	return result, nil
}
