package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Message holds the schema definition for one chat turn inside a thread.
// History is replayed oldest-first when building refinement prompts.
type Message struct {
	ent.Schema
}

// Fields of the Message.
func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("thread_id").
			Immutable(),
		field.Enum("role").
			Values("user", "agent"),
		field.Text("content"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Message.
func (Message) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("thread", Thread.Type).
			Ref("messages").
			Field("thread_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Message.
func (Message) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("thread_id", "created_at"),
	}
}
