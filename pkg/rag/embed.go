package rag

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const (
	// EmbeddingModel produces the vectors stored in document_chunks.
	EmbeddingModel = "gemini-embedding-001"

	// EmbeddingDimensions must match the vector(768) column type.
	EmbeddingDimensions = 768

	// The embedding API accepts at most 100 contents per call.
	embedBatchSize = 100
)

// Embedder turns text into vectors. Documents and queries use
// different task types, so the interface keeps the two paths apart.
type Embedder interface {
	EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error)
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
}

// GoogleEmbedder generates embeddings with the Gemini embedding API.
type GoogleEmbedder struct {
	client *genai.Client
	model  string
}

// NewGoogleEmbedder dials the Gemini API with an explicit key.
func NewGoogleEmbedder(ctx context.Context, apiKey string) (*GoogleEmbedder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("rag: google api key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("rag: create genai client: %w", err)
	}
	return &GoogleEmbedder{client: client, model: EmbeddingModel}, nil
}

// EmbedDocuments embeds chunk texts for storage, batching to the API
// limit. Output order matches input order.
func (e *GoogleEmbedder) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	out := make([][]float32, 0, len(texts))
	for start := 0; start < len(texts); start += embedBatchSize {
		end := start + embedBatchSize
		if end > len(texts) {
			end = len(texts)
		}
		batch, err := e.embed(ctx, texts[start:end], "RETRIEVAL_DOCUMENT")
		if err != nil {
			return nil, err
		}
		out = append(out, batch...)
	}
	return out, nil
}

// EmbedQuery embeds a retrieval query.
func (e *GoogleEmbedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	vecs, err := e.embed(ctx, []string{text}, "RETRIEVAL_QUERY")
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

func (e *GoogleEmbedder) embed(ctx context.Context, texts []string, task string) ([][]float32, error) {
	contents := make([]*genai.Content, len(texts))
	for i, text := range texts {
		contents[i] = genai.NewContentFromText(text, genai.RoleUser)
	}

	result, err := e.client.Models.EmbedContent(ctx, e.model, contents, &genai.EmbedContentConfig{
		TaskType: task,
	})
	if err != nil {
		return nil, fmt.Errorf("embed batch: %w", err)
	}
	if len(result.Embeddings) != len(texts) {
		return nil, fmt.Errorf("embed batch: got %d embeddings for %d texts", len(result.Embeddings), len(texts))
	}

	vecs := make([][]float32, len(result.Embeddings))
	for i, emb := range result.Embeddings {
		if len(emb.Values) != EmbeddingDimensions {
			return nil, fmt.Errorf("embedding dimensionality %d does not match vector(%d) storage", len(emb.Values), EmbeddingDimensions)
		}
		vecs[i] = emb.Values
	}
	return vecs, nil
}

// Close releases the underlying API client. The genai SDK client holds
// no resources that require explicit closing.
func (e *GoogleEmbedder) Close() error {
	return nil
}
