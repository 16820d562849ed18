package services

import (
	"context"
	"fmt"
	"time"

	"github.com/forgeworks/forge/ent"
	"github.com/forgeworks/forge/ent/event"
)

// EventService reads and prunes persisted progress events. Writing goes
// through pkg/events so the INSERT and pg_notify share a transaction.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// GetEventsSince retrieves a channel's events after the given ID, oldest
// first. This is the WebSocket catchup query; limit 0 means no limit.
func (s *EventService) GetEventsSince(ctx context.Context, channel string, sinceID int, limit int) ([]*ent.Event, error) {
	query := s.client.Event.Query().
		Where(
			event.ChannelEQ(channel),
			event.IDGT(sinceID),
		).
		Order(ent.Asc(event.FieldID))

	if limit > 0 {
		query = query.Limit(limit)
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	return events, nil
}

// CleanupProjectEvents removes all events for a project.
func (s *EventService) CleanupProjectEvents(ctx context.Context, projectID string) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(event.ProjectIDEQ(projectID)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup project events: %w", err)
	}

	return count, nil
}

// CleanupOrphanedEvents removes events older than the TTL.
func (s *EventService) CleanupOrphanedEvents(ctx context.Context, ttl time.Duration) (int, error) {
	cutoff := time.Now().Add(-ttl)

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup orphaned events: %w", err)
	}

	return count, nil
}
