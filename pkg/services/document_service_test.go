package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/forgeworks/forge/ent/documentchunk"
	"github.com/forgeworks/forge/pkg/models"
	testdb "github.com/forgeworks/forge/test/database"
	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testChunks builds n embedded chunks with unit vectors for insertion.
func testChunks(n int) []models.ChunkData {
	chunks := make([]models.ChunkData, n)
	for i := range chunks {
		vec := make([]float32, 768)
		vec[i%768] = 1
		chunks[i] = models.ChunkData{
			Index:     i,
			Content:   fmt.Sprintf("chunk %d content", i),
			Embedding: pgvector.NewVector(vec),
		}
	}
	return chunks
}

func TestDocumentService_CreateWithChunks(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDocumentService(client.Client)
	ctx := context.Background()

	user := createTestUser(t, client.Client)

	t.Run("persists document and chunks atomically", func(t *testing.T) {
		result, err := service.CreateWithChunks(ctx, models.CreateDocumentParams{
			UserID:      user.ID,
			Filename:    "api-style-guide.md",
			ContentHash: "hash-1",
			SizeBytes:   2048,
			Chunks:      testChunks(3),
		})
		require.NoError(t, err)
		assert.False(t, result.Deduplicated)
		assert.Equal(t, "api-style-guide.md", result.Document.Filename)
		assert.Equal(t, 3, result.Document.ChunkCount)

		count, err := client.DocumentChunk.Query().
			Where(documentchunk.DocumentIDEQ(result.Document.ID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("same content hash dedupes per user", func(t *testing.T) {
		first, err := service.CreateWithChunks(ctx, models.CreateDocumentParams{
			UserID:      user.ID,
			Filename:    "notes.txt",
			ContentHash: "hash-dup",
			SizeBytes:   100,
			Chunks:      testChunks(1),
		})
		require.NoError(t, err)
		require.False(t, first.Deduplicated)

		second, err := service.CreateWithChunks(ctx, models.CreateDocumentParams{
			UserID:      user.ID,
			Filename:    "notes-renamed.txt",
			ContentHash: "hash-dup",
			SizeBytes:   100,
			Chunks:      testChunks(1),
		})
		require.NoError(t, err)
		assert.True(t, second.Deduplicated)
		assert.Equal(t, first.Document.ID, second.Document.ID)
		assert.Equal(t, "notes.txt", second.Document.Filename, "existing document is returned unchanged")
	})

	t.Run("same hash for another user is a fresh document", func(t *testing.T) {
		other := createTestUser(t, client.Client)
		result, err := service.CreateWithChunks(ctx, models.CreateDocumentParams{
			UserID:      other.ID,
			Filename:    "notes.txt",
			ContentHash: "hash-dup",
			SizeBytes:   100,
			Chunks:      testChunks(1),
		})
		require.NoError(t, err)
		assert.False(t, result.Deduplicated)
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := service.CreateWithChunks(ctx, models.CreateDocumentParams{
			UserID:      user.ID,
			Filename:    "empty.txt",
			ContentHash: "hash-empty",
		})
		assert.True(t, IsValidationError(err), "chunkless document is rejected")
	})
}

func TestDocumentService_ListAndGet(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDocumentService(client.Client)
	ctx := context.Background()

	owner := createTestUser(t, client.Client)
	other := createTestUser(t, client.Client)

	result, err := service.CreateWithChunks(ctx, models.CreateDocumentParams{
		UserID:      owner.ID,
		Filename:    "schema.json",
		ContentHash: "hash-list",
		SizeBytes:   512,
		Chunks:      testChunks(2),
	})
	require.NoError(t, err)
	docID := result.Document.ID

	t.Run("owner sees own documents", func(t *testing.T) {
		docs, err := service.ListForUser(ctx, owner.ID)
		require.NoError(t, err)
		assert.Len(t, docs, 1)

		doc, err := service.Get(ctx, owner.ID, docID)
		require.NoError(t, err)
		assert.Equal(t, "schema.json", doc.Filename)
	})

	t.Run("cross-user access is indistinguishable from missing", func(t *testing.T) {
		docs, err := service.ListForUser(ctx, other.ID)
		require.NoError(t, err)
		assert.Empty(t, docs)

		_, err = service.Get(ctx, other.ID, docID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("count is per user", func(t *testing.T) {
		count, err := service.CountForUser(ctx, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		count, err = service.CountForUser(ctx, other.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})
}

func TestDocumentService_Delete(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDocumentService(client.Client)
	ctx := context.Background()

	owner := createTestUser(t, client.Client)
	other := createTestUser(t, client.Client)

	result, err := service.CreateWithChunks(ctx, models.CreateDocumentParams{
		UserID:      owner.ID,
		Filename:    "delete-me.txt",
		ContentHash: "hash-del",
		SizeBytes:   64,
		Chunks:      testChunks(2),
	})
	require.NoError(t, err)
	docID := result.Document.ID

	t.Run("cross-user delete yields ErrNotFound", func(t *testing.T) {
		assert.ErrorIs(t, service.Delete(ctx, other.ID, docID), ErrNotFound)
	})

	t.Run("owner delete cascades to chunks", func(t *testing.T) {
		require.NoError(t, service.Delete(ctx, owner.ID, docID))

		_, err := service.Get(ctx, owner.ID, docID)
		assert.ErrorIs(t, err, ErrNotFound)

		count, err := client.DocumentChunk.Query().
			Where(documentchunk.DocumentIDEQ(docID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("deleting twice yields ErrNotFound", func(t *testing.T) {
		assert.ErrorIs(t, service.Delete(ctx, owner.ID, docID), ErrNotFound)
	})
}
