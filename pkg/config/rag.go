package config

// EmbeddingDimensions is the width of stored chunk vectors. It is baked
// into the document_chunks column type, so changing it requires a
// migration and re-embedding every document.
const EmbeddingDimensions = 768

// RAGConfig controls document ingestion and context retrieval.
type RAGConfig struct {
	// EmbeddingModel is the provider model used for chunk and query vectors.
	EmbeddingModel string `yaml:"embedding_model"`

	// ChunkSize is the maximum chunk length in characters.
	ChunkSize int `yaml:"chunk_size"`

	// ChunkOverlap is the character overlap between adjacent slices of an
	// oversized paragraph. Must be smaller than ChunkSize.
	ChunkOverlap int `yaml:"chunk_overlap"`

	// EmbedBatchSize caps texts per embedding API call.
	EmbedBatchSize int `yaml:"embed_batch_size"`

	// MaxDocumentBytes rejects uploads above this size.
	MaxDocumentBytes int64 `yaml:"max_document_bytes"`

	// TopK is the default number of chunks retrieved per query.
	TopK int `yaml:"top_k"`

	// MinSimilarity discards retrieved chunks at or below this cosine
	// similarity.
	MinSimilarity float64 `yaml:"min_similarity"`
}

// DefaultRAGConfig returns the built-in retrieval defaults.
func DefaultRAGConfig() *RAGConfig {
	return &RAGConfig{
		EmbeddingModel:   "gemini-embedding-001",
		ChunkSize:        500,
		ChunkOverlap:     50,
		EmbedBatchSize:   100,
		MaxDocumentBytes: 5 * 1024 * 1024,
		TopK:             5,
		MinSimilarity:    0.3,
	}
}

// validateRAG checks retrieval configuration sanity.
func validateRAG(r *RAGConfig) error {
	if r.ChunkSize < 1 {
		return NewValidationError("rag", "rag", "chunk_size", ErrInvalidValue)
	}
	if r.ChunkOverlap < 0 || r.ChunkOverlap >= r.ChunkSize {
		return NewValidationError("rag", "rag", "chunk_overlap", ErrInvalidValue)
	}
	if r.EmbedBatchSize < 1 || r.EmbedBatchSize > 100 {
		return NewValidationError("rag", "rag", "embed_batch_size", ErrInvalidValue)
	}
	if r.MaxDocumentBytes < 1 {
		return NewValidationError("rag", "rag", "max_document_bytes", ErrInvalidValue)
	}
	if r.TopK < 1 {
		return NewValidationError("rag", "rag", "top_k", ErrInvalidValue)
	}
	if r.MinSimilarity < -1 || r.MinSimilarity > 1 {
		return NewValidationError("rag", "rag", "min_similarity", ErrInvalidValue)
	}
	if r.EmbeddingModel == "" {
		return NewValidationError("rag", "rag", "embedding_model", ErrMissingRequiredField)
	}
	return nil
}
