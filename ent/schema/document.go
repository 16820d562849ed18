package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Document holds the schema definition for an uploaded knowledge document.
// The (user_id, content_hash) unique index makes re-uploads idempotent.
type Document struct {
	ent.Schema
}

// Fields of the Document.
func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("document_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("filename").
			NotEmpty(),
		field.String("content_hash").
			Immutable().
			Comment("SHA-256 of the raw upload, hex encoded"),
		field.Int64("size_bytes"),
		field.Int("chunk_count").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Document.
func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", User.Type).
			Ref("documents").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
		edge.To("chunks", DocumentChunk.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Document.
func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "content_hash").
			Unique(),
	}
}
