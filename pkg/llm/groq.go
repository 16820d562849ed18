package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	groqBaseURL = "https://api.groq.com/openai/v1"

	// Generation calls on large prompts routinely run past a minute.
	groqTimeout = 120 * time.Second
)

// GroqProvider speaks Groq's OpenAI-compatible chat completions API
// over plain HTTP. Groq hosts the open-weight models in the catalog
// and serves as the fallback when the Gemini quota is exhausted.
type GroqProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewGroqProvider builds a provider with an explicit key.
func NewGroqProvider(apiKey string) (*GroqProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("llm: groq api key is required")
	}
	return &GroqProvider{
		apiKey:     apiKey,
		baseURL:    groqBaseURL,
		httpClient: &http.Client{Timeout: groqTimeout},
	}, nil
}

type groqMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type groqResponseFormat struct {
	Type string `json:"type"`
}

type groqChatRequest struct {
	Model          string              `json:"model"`
	Messages       []groqMessage       `json:"messages"`
	Temperature    float32             `json:"temperature"`
	MaxTokens      int                 `json:"max_tokens,omitempty"`
	ResponseFormat *groqResponseFormat `json:"response_format,omitempty"`
}

type groqChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Generate runs a single completion against the named Groq model.
func (p *GroqProvider) Generate(ctx context.Context, model string, req Request) (string, error) {
	messages := make([]groqMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, groqMessage{Role: "system", Content: req.System})
	}
	messages = append(messages, groqMessage{Role: "user", Content: req.User})

	body := groqChatRequest{
		Model:       model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.JSONMode {
		body.ResponseFormat = &groqResponseFormat{Type: "json_object"}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", NewCallError(KindTerminal, model, fmt.Errorf("encode request: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", NewCallError(KindTerminal, model, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return "", classify(model, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", NewCallError(KindNetworkTransient, model, fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		return "", NewCallError(kindForStatus(resp.StatusCode), model,
			fmt.Errorf("groq returned %d: %s", resp.StatusCode, truncateBody(data)))
	}

	var parsed groqChatResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", NewCallError(KindSchemaInvalid, model, fmt.Errorf("decode response: %w", err))
	}
	if parsed.Error != nil {
		return "", NewCallError(KindTerminal, model, fmt.Errorf("groq error: %s", parsed.Error.Message))
	}
	if len(parsed.Choices) == 0 {
		return "", NewCallError(KindSchemaInvalid, model, errors.New("response contained no choices"))
	}
	return parsed.Choices[0].Message.Content, nil
}

// kindForStatus maps HTTP status codes onto the shared error taxonomy.
func kindForStatus(status int) Kind {
	switch {
	case status == http.StatusTooManyRequests:
		return KindQuotaExhausted
	case status >= 500:
		return KindNetworkTransient
	default:
		return KindTerminal
	}
}

func truncateBody(b []byte) string {
	const max = 512
	if len(b) > max {
		return string(b[:max]) + "..."
	}
	return string(b)
}
