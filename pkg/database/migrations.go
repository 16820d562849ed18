package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateCatchupIndexes creates indexes that Ent cannot express because they
// include the serial primary key. The events catchup query scans
// WHERE channel = $1 AND id > $2 ORDER BY id, so (channel, id) must be
// index-ordered.
func CreateCatchupIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_events_channel_id
		ON events (channel, id)`)
	if err != nil {
		return fmt.Errorf("failed to create events catchup index: %w", err)
	}

	return nil
}
