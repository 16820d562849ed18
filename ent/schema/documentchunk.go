package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/pgvector/pgvector-go"
)

// DocumentChunk holds the schema definition for one embedded slice of a
// document. Similarity search runs as raw SQL over the vector column
// (pkg/rag); ent handles writes and cascade deletes.
type DocumentChunk struct {
	ent.Schema
}

// Fields of the DocumentChunk.
func (DocumentChunk) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("chunk_id").
			Unique().
			Immutable(),
		field.String("document_id").
			Immutable(),
		field.String("user_id").
			Immutable().
			Comment("Denormalized owner for retrieval filters"),
		field.Int("chunk_index").
			Comment("Position within the source document"),
		field.Text("content"),
		field.Other("embedding", pgvector.Vector{}).
			SchemaType(map[string]string{
				dialect.Postgres: "vector(768)",
			}),
	}
}

// Edges of the DocumentChunk.
func (DocumentChunk) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("chunks").
			Field("document_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the DocumentChunk.
func (DocumentChunk) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("document_id", "chunk_index").
			Unique(),
	}
}
