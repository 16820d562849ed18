package models

import (
	"github.com/forgeworks/forge/ent"
	"github.com/pgvector/pgvector-go"
)

// ChunkData is one embedded slice of a document, ready for insertion.
type ChunkData struct {
	Index     int
	Content   string
	Embedding pgvector.Vector
}

// CreateDocumentParams contains fields for persisting an ingested document
// together with its chunks.
type CreateDocumentParams struct {
	UserID      string
	Filename    string
	ContentHash string
	SizeBytes   int64
	Chunks      []ChunkData
}

// IngestResult reports what ingestion did: either a fresh document or the
// user's existing copy when the content hash matched.
type IngestResult struct {
	Document     *ent.Document `json:"document"`
	Deduplicated bool          `json:"deduplicated"`
}
