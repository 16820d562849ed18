package services

import (
	"context"
	"fmt"
	"time"

	"github.com/forgeworks/forge/ent"
	"github.com/forgeworks/forge/ent/document"
	"github.com/forgeworks/forge/pkg/models"
	"github.com/google/uuid"
)

// DocumentService manages uploaded knowledge documents and their chunks.
// Uploads are idempotent per user: the same content hash returns the
// existing document instead of re-indexing.
type DocumentService struct {
	client *ent.Client
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(client *ent.Client) *DocumentService {
	return &DocumentService{client: client}
}

// CreateWithChunks persists a document and its embedded chunks in one
// transaction. When the user already owns a document with the same
// content hash, that document is returned with Deduplicated set.
func (s *DocumentService) CreateWithChunks(httpCtx context.Context, params models.CreateDocumentParams) (*models.IngestResult, error) {
	if params.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if params.Filename == "" {
		return nil, NewValidationError("filename", "required")
	}
	if params.ContentHash == "" {
		return nil, NewValidationError("content_hash", "required")
	}
	if len(params.Chunks) == 0 {
		return nil, NewValidationError("chunks", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 30*time.Second)
	defer cancel()

	existing, err := s.FindByHash(ctx, params.UserID, params.ContentHash)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &models.IngestResult{Document: existing, Deduplicated: true}, nil
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	doc, err := tx.Document.Create().
		SetID(uuid.New().String()).
		SetUserID(params.UserID).
		SetFilename(params.Filename).
		SetContentHash(params.ContentHash).
		SetSizeBytes(params.SizeBytes).
		SetChunkCount(len(params.Chunks)).
		SetCreatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Race: a concurrent upload of the same content won — use it.
			existing, queryErr := s.FindByHash(ctx, params.UserID, params.ContentHash)
			if queryErr != nil {
				return nil, queryErr
			}
			if existing != nil {
				return &models.IngestResult{Document: existing, Deduplicated: true}, nil
			}
		}
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	builders := make([]*ent.DocumentChunkCreate, len(params.Chunks))
	for i, chunk := range params.Chunks {
		builders[i] = tx.DocumentChunk.Create().
			SetID(uuid.New().String()).
			SetDocumentID(doc.ID).
			SetUserID(params.UserID).
			SetChunkIndex(chunk.Index).
			SetContent(chunk.Content).
			SetEmbedding(chunk.Embedding)
	}
	if _, err := tx.DocumentChunk.CreateBulk(builders...).Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to create document chunks: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit document: %w", err)
	}

	return &models.IngestResult{Document: doc, Deduplicated: false}, nil
}

// FindByHash returns the user's document with the given content hash, or
// nil when none exists.
func (s *DocumentService) FindByHash(ctx context.Context, userID, contentHash string) (*ent.Document, error) {
	doc, err := s.client.Document.Query().
		Where(
			document.UserIDEQ(userID),
			document.ContentHashEQ(contentHash),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query document by hash: %w", err)
	}
	return doc, nil
}

// Get retrieves a document scoped to its owner.
func (s *DocumentService) Get(ctx context.Context, userID, documentID string) (*ent.Document, error) {
	if documentID == "" {
		return nil, NewValidationError("document_id", "required")
	}

	doc, err := s.client.Document.Query().
		Where(
			document.IDEQ(documentID),
			document.UserIDEQ(userID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return doc, nil
}

// CountForUser returns how many documents the user owns. Retrieval
// checks this before paying for a query embedding.
func (s *DocumentService) CountForUser(ctx context.Context, userID string) (int, error) {
	count, err := s.client.Document.Query().
		Where(document.UserIDEQ(userID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}
	return count, nil
}

// ListForUser returns the user's documents, newest first.
func (s *DocumentService) ListForUser(ctx context.Context, userID string) ([]*ent.Document, error) {
	docs, err := s.client.Document.Query().
		Where(document.UserIDEQ(userID)).
		Order(ent.Desc(document.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return docs, nil
}

// Delete removes a document and cascades to its chunks. Scoped to the owner.
func (s *DocumentService) Delete(httpCtx context.Context, userID, documentID string) error {
	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	count, err := s.client.Document.Delete().
		Where(
			document.IDEQ(documentID),
			document.UserIDEQ(userID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}
