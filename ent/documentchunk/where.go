// Code generated by ent, DO NOT EDIT.

package documentchunk

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/forgeworks/forge/ent/predicate"
	pgvector "github.com/pgvector/pgvector-go"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldContainsFold(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldEQ(FieldDocumentID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldEQ(FieldUserID, v))
}

// ChunkIndex applies equality check predicate on the "chunk_index" field. It's identical to ChunkIndexEQ.
func ChunkIndex(v int) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldEQ(FieldChunkIndex, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldEQ(FieldContent, v))
}

// Embedding applies equality check predicate on the "embedding" field. It's identical to EmbeddingEQ.
func Embedding(v pgvector.Vector) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldEQ(FieldEmbedding, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldNotIn(FieldDocumentID, vs...))
}

// DocumentIDGT applies the GT predicate on the "document_id" field.
func DocumentIDGT(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldGT(FieldDocumentID, v))
}

// DocumentIDGTE applies the GTE predicate on the "document_id" field.
func DocumentIDGTE(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldGTE(FieldDocumentID, v))
}

// DocumentIDLT applies the LT predicate on the "document_id" field.
func DocumentIDLT(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldLT(FieldDocumentID, v))
}

// DocumentIDLTE applies the LTE predicate on the "document_id" field.
func DocumentIDLTE(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldLTE(FieldDocumentID, v))
}

// DocumentIDContains applies the Contains predicate on the "document_id" field.
func DocumentIDContains(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldContains(FieldDocumentID, v))
}

// DocumentIDHasPrefix applies the HasPrefix predicate on the "document_id" field.
func DocumentIDHasPrefix(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldHasPrefix(FieldDocumentID, v))
}

// DocumentIDHasSuffix applies the HasSuffix predicate on the "document_id" field.
func DocumentIDHasSuffix(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldHasSuffix(FieldDocumentID, v))
}

// DocumentIDEqualFold applies the EqualFold predicate on the "document_id" field.
func DocumentIDEqualFold(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldEqualFold(FieldDocumentID, v))
}

// DocumentIDContainsFold applies the ContainsFold predicate on the "document_id" field.
func DocumentIDContainsFold(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldContainsFold(FieldDocumentID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldContainsFold(FieldUserID, v))
}

// ChunkIndexEQ applies the EQ predicate on the "chunk_index" field.
func ChunkIndexEQ(v int) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldEQ(FieldChunkIndex, v))
}

// ChunkIndexNEQ applies the NEQ predicate on the "chunk_index" field.
func ChunkIndexNEQ(v int) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldNEQ(FieldChunkIndex, v))
}

// ChunkIndexIn applies the In predicate on the "chunk_index" field.
func ChunkIndexIn(vs ...int) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldIn(FieldChunkIndex, vs...))
}

// ChunkIndexNotIn applies the NotIn predicate on the "chunk_index" field.
func ChunkIndexNotIn(vs ...int) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldNotIn(FieldChunkIndex, vs...))
}

// ChunkIndexGT applies the GT predicate on the "chunk_index" field.
func ChunkIndexGT(v int) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldGT(FieldChunkIndex, v))
}

// ChunkIndexGTE applies the GTE predicate on the "chunk_index" field.
func ChunkIndexGTE(v int) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldGTE(FieldChunkIndex, v))
}

// ChunkIndexLT applies the LT predicate on the "chunk_index" field.
func ChunkIndexLT(v int) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldLT(FieldChunkIndex, v))
}

// ChunkIndexLTE applies the LTE predicate on the "chunk_index" field.
func ChunkIndexLTE(v int) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldLTE(FieldChunkIndex, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldContainsFold(FieldContent, v))
}

// EmbeddingEQ applies the EQ predicate on the "embedding" field.
func EmbeddingEQ(v pgvector.Vector) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldEQ(FieldEmbedding, v))
}

// EmbeddingNEQ applies the NEQ predicate on the "embedding" field.
func EmbeddingNEQ(v pgvector.Vector) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldNEQ(FieldEmbedding, v))
}

// EmbeddingIn applies the In predicate on the "embedding" field.
func EmbeddingIn(vs ...pgvector.Vector) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldIn(FieldEmbedding, vs...))
}

// EmbeddingNotIn applies the NotIn predicate on the "embedding" field.
func EmbeddingNotIn(vs ...pgvector.Vector) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldNotIn(FieldEmbedding, vs...))
}

// EmbeddingGT applies the GT predicate on the "embedding" field.
func EmbeddingGT(v pgvector.Vector) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldGT(FieldEmbedding, v))
}

// EmbeddingGTE applies the GTE predicate on the "embedding" field.
func EmbeddingGTE(v pgvector.Vector) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldGTE(FieldEmbedding, v))
}

// EmbeddingLT applies the LT predicate on the "embedding" field.
func EmbeddingLT(v pgvector.Vector) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldLT(FieldEmbedding, v))
}

// EmbeddingLTE applies the LTE predicate on the "embedding" field.
func EmbeddingLTE(v pgvector.Vector) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldLTE(FieldEmbedding, v))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.DocumentChunk {
	return predicate.DocumentChunk(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.DocumentChunk {
	return predicate.DocumentChunk(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DocumentChunk) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DocumentChunk) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DocumentChunk) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.NotPredicates(p))
}
