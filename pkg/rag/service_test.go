package rag

import (
	"context"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeworks/forge/ent"
	"github.com/forgeworks/forge/pkg/models"
	"github.com/forgeworks/forge/pkg/services"
	testdb "github.com/forgeworks/forge/test/database"
)

// fakeEmbedder hands out deterministic unit vectors and counts calls so
// tests can prove when the embedding API would not have been paid.
type fakeEmbedder struct {
	queryVec   []float32
	docCalls   int
	queryCalls int
}

func (f *fakeEmbedder) EmbedDocuments(_ context.Context, texts []string) ([][]float32, error) {
	f.docCalls++
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = unitVec(i)
	}
	return out, nil
}

func (f *fakeEmbedder) EmbedQuery(_ context.Context, _ string) ([]float32, error) {
	f.queryCalls++
	return f.queryVec, nil
}

func unitVec(axis int) []float32 {
	v := make([]float32, EmbeddingDimensions)
	v[axis%EmbeddingDimensions] = 1
	return v
}

func vec768(components map[int]float32) pgvector.Vector {
	v := make([]float32, EmbeddingDimensions)
	for i, val := range components {
		v[i] = val
	}
	return pgvector.NewVector(v)
}

func createUser(t *testing.T, client *ent.Client) *ent.User {
	t.Helper()
	u, err := client.User.Create().
		SetID(uuid.New().String()).
		SetEmail(uuid.New().String() + "@example.com").
		SetPasswordHash("$2a$10$testhash").
		SetCreatedAt(time.Now()).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func TestServiceIngestDocument(t *testing.T) {
	client := testdb.NewTestClient(t)
	docs := services.NewDocumentService(client.Client)
	embedder := &fakeEmbedder{queryVec: unitVec(0)}
	svc := NewService(docs, embedder, client.DB())
	ctx := context.Background()

	user := createUser(t, client.Client)

	// Two 300-char paragraphs cannot share a 500-char chunk.
	content := []byte(strings.Repeat("a", 300) + "\n\n" + strings.Repeat("b", 300))

	t.Run("extracts, chunks, embeds, stores", func(t *testing.T) {
		result, err := svc.IngestDocument(ctx, user.ID, "notes.txt", content)
		require.NoError(t, err)
		assert.False(t, result.Deduplicated)
		assert.Equal(t, "notes.txt", result.Document.Filename)
		assert.Equal(t, 2, result.Document.ChunkCount)
		assert.Equal(t, 1, embedder.docCalls)
	})

	t.Run("same content under a new name deduplicates without embedding", func(t *testing.T) {
		first, err := docs.ListForUser(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, first, 1)

		result, err := svc.IngestDocument(ctx, user.ID, "copy-of-notes.txt", content)
		require.NoError(t, err)
		assert.True(t, result.Deduplicated)
		assert.Equal(t, first[0].ID, result.Document.ID)
		assert.Equal(t, 1, embedder.docCalls, "duplicate upload must not re-embed")
	})

	t.Run("unsupported file type", func(t *testing.T) {
		_, err := svc.IngestDocument(ctx, user.ID, "binary.exe", []byte("MZ"))
		assert.ErrorIs(t, err, ErrUnsupportedFile)
	})

	t.Run("file with no extractable text", func(t *testing.T) {
		_, err := svc.IngestDocument(ctx, user.ID, "blank.txt", []byte("   \n\n  "))
		require.Error(t, err)
		assert.True(t, services.IsValidationError(err))
	})
}

func TestServiceRetrieveContext(t *testing.T) {
	client := testdb.NewTestClient(t)
	docs := services.NewDocumentService(client.Client)
	embedder := &fakeEmbedder{queryVec: unitVec(0)}
	svc := NewService(docs, embedder, client.DB())
	ctx := context.Background()

	owner := createUser(t, client.Client)
	stranger := createUser(t, client.Client)
	empty := createUser(t, client.Client)

	// Similarity against the query axis e0: alpha = 1.0, bravo ≈ 0.707,
	// charlie = 0.2 (below the 0.3 floor).
	diag := float32(math.Sqrt(0.5))
	_, err := docs.CreateWithChunks(ctx, models.CreateDocumentParams{
		UserID:      owner.ID,
		Filename:    "corpus.txt",
		ContentHash: "hash-corpus",
		SizeBytes:   64,
		Chunks: []models.ChunkData{
			{Index: 0, Content: "alpha", Embedding: vec768(map[int]float32{0: 1})},
			{Index: 1, Content: "bravo", Embedding: vec768(map[int]float32{0: diag, 1: diag})},
			{Index: 2, Content: "charlie", Embedding: vec768(map[int]float32{0: 0.2, 1: float32(math.Sqrt(0.96))})},
		},
	})
	require.NoError(t, err)

	_, err = docs.CreateWithChunks(ctx, models.CreateDocumentParams{
		UserID:      stranger.ID,
		Filename:    "other.txt",
		ContentHash: "hash-other",
		SizeBytes:   16,
		Chunks: []models.ChunkData{
			{Index: 0, Content: "zulu", Embedding: vec768(map[int]float32{0: 1})},
		},
	})
	require.NoError(t, err)

	t.Run("ranks by similarity and applies the floor", func(t *testing.T) {
		got, err := svc.RetrieveContext(ctx, owner.ID, "what is alpha", 5)
		require.NoError(t, err)
		assert.Equal(t, "alpha\n---\nbravo", got)
	})

	t.Run("top-k bounds the candidates", func(t *testing.T) {
		got, err := svc.RetrieveContext(ctx, owner.ID, "what is alpha", 1)
		require.NoError(t, err)
		assert.Equal(t, "alpha", got)
	})

	t.Run("results never cross users", func(t *testing.T) {
		got, err := svc.RetrieveContext(ctx, stranger.ID, "what is alpha", 5)
		require.NoError(t, err)
		assert.Equal(t, "zulu", got)
	})

	t.Run("user without documents skips the query embedding", func(t *testing.T) {
		before := embedder.queryCalls
		got, err := svc.RetrieveContext(ctx, empty.ID, "anything", 5)
		require.NoError(t, err)
		assert.Equal(t, "", got)
		assert.Equal(t, before, embedder.queryCalls)
	})

	t.Run("zero top-k uses the default", func(t *testing.T) {
		got, err := svc.RetrieveContext(ctx, owner.ID, "what is alpha", 0)
		require.NoError(t, err)
		assert.Equal(t, "alpha\n---\nbravo", got)
	})
}
