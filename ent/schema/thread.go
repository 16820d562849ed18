package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Thread holds the schema definition for a conversation attached to a
// project. Chat turns accumulate here and feed refinement prompts.
type Thread struct {
	ent.Schema
}

// Fields of the Thread.
func (Thread) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("thread_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.String("title").
			NotEmpty(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Thread.
func (Thread) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("threads").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
		edge.To("messages", Message.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Thread.
func (Thread) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "created_at"),
	}
}
