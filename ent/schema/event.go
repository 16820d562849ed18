package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for append-only progress events.
// Rows back the WebSocket catchup query; live delivery goes through
// pg_notify in the same transaction (pkg/events). The integer ID is the
// catchup cursor, so it must stay monotonically increasing per channel.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("project_id").
			Immutable(),
		field.String("channel").
			Immutable(),
		field.Text("payload").
			Immutable().
			Comment("JSON event body as sent to subscribers"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Event.
func (Event) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("events").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Event.
// The catchup index (channel, id) includes the serial PK, which ent cannot
// express; it is created in pkg/database/migrations.go.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
	}
}
