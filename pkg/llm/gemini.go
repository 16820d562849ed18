package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GoogleProvider serves the Gemini model family through the
// google.golang.org/genai SDK. One provider instance handles every
// Gemini model in the catalog; the model ID is passed per call.
type GoogleProvider struct {
	client *genai.Client
}

// NewGoogleProvider dials the Gemini API with an explicit key so tests
// and callers never depend on ambient environment variables.
func NewGoogleProvider(ctx context.Context, apiKey string) (*GoogleProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("llm: google api key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("llm: create genai client: %w", err)
	}
	return &GoogleProvider{client: client}, nil
}

// Generate runs a single completion against the named Gemini model.
// Errors are normalized into the shared taxonomy so the router can make
// retry and fallback decisions without knowing the backend.
func (p *GoogleProvider) Generate(ctx context.Context, model string, req Request) (string, error) {
	temp := req.Temperature
	cfg := &genai.GenerateContentConfig{
		Temperature: &temp,
	}
	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxTokens)
	}
	if req.JSONMode {
		cfg.ResponseMIMEType = "application/json"
	}

	contents := []*genai.Content{
		genai.NewContentFromText(req.User, genai.RoleUser),
	}

	resp, err := p.client.Models.GenerateContent(ctx, model, contents, cfg)
	if err != nil {
		return "", classify(model, err)
	}
	return resp.Text(), nil
}

// Close releases the underlying API client. The genai SDK client holds
// no resources that require explicit closing.
func (p *GoogleProvider) Close() error {
	return nil
}
