package rag

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pgvector/pgvector-go"

	"github.com/forgeworks/forge/pkg/models"
	"github.com/forgeworks/forge/pkg/services"
)

// DefaultTopK is how many chunks retrieval considers per query.
const DefaultTopK = 5

// minSimilarity drops chunks that matched only because LIMIT wanted
// rows; below this the content is noise to the spec agent.
const minSimilarity = 0.3

// Service ingests documents and retrieves the chunks most relevant to
// a prompt. Chunk storage goes through DocumentService; the similarity
// search needs the raw handle because ent has no vector operators.
type Service struct {
	documents *services.DocumentService
	embedder  Embedder
	db        *sql.DB
}

// ErrEmbedderUnavailable is returned by operations that need embeddings
// when the service was built without an embedder (no provider API key).
var ErrEmbedderUnavailable = errors.New("rag: no embedding provider configured")

// NewService assembles the RAG flow. embedder may be nil: ingestion and
// retrieval then fail with ErrEmbedderUnavailable at call time, so a
// key-less development server still boots.
func NewService(documents *services.DocumentService, embedder Embedder, db *sql.DB) *Service {
	return &Service{documents: documents, embedder: embedder, db: db}
}

// IngestDocument extracts, chunks, embeds, and stores one upload. The
// content hash is computed over the extracted text, so re-uploading
// the same content under a different filename still deduplicates, and
// the duplicate path spends nothing on embeddings.
func (s *Service) IngestDocument(ctx context.Context, userID, filename string, content []byte) (*models.IngestResult, error) {
	text, err := ExtractText(filename, content)
	if err != nil {
		return nil, err
	}

	chunkTexts := ChunkText(text, DefaultChunkSize, DefaultChunkOverlap)
	if len(chunkTexts) == 0 {
		return nil, services.NewValidationError("file", "no extractable text")
	}

	sum := sha256.Sum256([]byte(text))
	hash := hex.EncodeToString(sum[:])

	existing, err := s.documents.FindByHash(ctx, userID, hash)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		slog.Info("document already indexed", "filename", existing.Filename, "document_id", existing.ID)
		return &models.IngestResult{Document: existing, Deduplicated: true}, nil
	}

	if s.embedder == nil {
		return nil, ErrEmbedderUnavailable
	}
	embeddings, err := s.embedder.EmbedDocuments(ctx, chunkTexts)
	if err != nil {
		return nil, fmt.Errorf("embed document: %w", err)
	}

	chunks := make([]models.ChunkData, len(chunkTexts))
	for i, chunkText := range chunkTexts {
		chunks[i] = models.ChunkData{
			Index:     i,
			Content:   chunkText,
			Embedding: pgvector.NewVector(embeddings[i]),
		}
	}

	result, err := s.documents.CreateWithChunks(ctx, models.CreateDocumentParams{
		UserID:      userID,
		Filename:    filename,
		ContentHash: hash,
		SizeBytes:   int64(len(content)),
		Chunks:      chunks,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("document ingested", "filename", filename, "chunks", len(chunks))
	return result, nil
}

// RetrieveContext returns the user's chunks most similar to the query,
// joined with "\n---\n", or an empty string when nothing is relevant.
// Users without documents skip the query embedding entirely.
func (s *Service) RetrieveContext(ctx context.Context, userID, query string, topK int) (string, error) {
	if topK <= 0 {
		topK = DefaultTopK
	}

	count, err := s.documents.CountForUser(ctx, userID)
	if err != nil {
		return "", err
	}
	if count == 0 {
		return "", nil
	}

	if s.embedder == nil {
		return "", ErrEmbedderUnavailable
	}
	queryVec, err := s.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return "", fmt.Errorf("embed query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT content, 1 - (embedding <=> $1::vector) AS similarity
		FROM document_chunks
		WHERE user_id = $2
		ORDER BY embedding <=> $1::vector
		LIMIT $3`,
		pgvector.NewVector(queryVec), userID, topK)
	if err != nil {
		return "", fmt.Errorf("similarity search: %w", err)
	}
	defer rows.Close()

	var parts []string
	for rows.Next() {
		var content string
		var similarity float64
		if err := rows.Scan(&content, &similarity); err != nil {
			return "", fmt.Errorf("scan chunk: %w", err)
		}
		if similarity > minSimilarity {
			parts = append(parts, content)
		}
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("similarity search: %w", err)
	}

	return strings.Join(parts, "\n---\n"), nil
}
