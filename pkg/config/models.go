package config

import (
	"fmt"
	"sort"
	"sync"
)

// Provider identifiers understood by the LLM layer.
const (
	ProviderGoogle = "google"
	ProviderGroq   = "groq"
)

// Model tiers. Primary models are eligible defaults; fallback models are
// only reached by following fallback links or by explicit request.
const (
	TierPrimary  = "primary"
	TierFallback = "fallback"
)

// DefaultModel is the catalog entry used when a request names no model.
const DefaultModel = "gemini-2.0-flash"

// ModelConfig describes one catalog entry: which provider serves the model
// and where to go next when the model's quota is exhausted.
type ModelConfig struct {
	// Provider type (required): "google" or "groq".
	Provider string `yaml:"provider"`

	// Tier: "primary" or "fallback".
	Tier string `yaml:"tier"`

	// Fallback is the model ID tried next on quota exhaustion.
	// Empty means end of chain.
	Fallback string `yaml:"fallback,omitempty"`

	// MaxOutputTokens caps completion length. 0 means provider default.
	MaxOutputTokens int `yaml:"max_output_tokens,omitempty"`
}

// builtinModels is the shipped catalog. Quota pressure escalates upward:
// each fallback is at least as capable as the model it replaces.
func builtinModels() map[string]*ModelConfig {
	return map[string]*ModelConfig{
		"gemini-2.0-flash": {
			Provider:        ProviderGoogle,
			Tier:            TierPrimary,
			Fallback:        "gemini-2.5-flash",
			MaxOutputTokens: 16384,
		},
		"gemini-2.5-flash": {
			Provider:        ProviderGoogle,
			Tier:            TierPrimary,
			Fallback:        "gemini-2.5-pro",
			MaxOutputTokens: 16384,
		},
		"gemini-2.5-pro": {
			Provider:        ProviderGoogle,
			Tier:            TierPrimary,
			MaxOutputTokens: 16384,
		},
		"llama-3.3-70b-versatile": {
			Provider:        ProviderGroq,
			Tier:            TierFallback,
			MaxOutputTokens: 8192,
		},
	}
}

// ModelRegistry stores the model catalog in memory with thread-safe access.
type ModelRegistry struct {
	models  map[string]*ModelConfig
	defName string
	mu      sync.RWMutex
}

// NewModelRegistry creates a registry from the given catalog. The caller's
// map is copied to prevent external mutation.
func NewModelRegistry(models map[string]*ModelConfig, defaultModel string) *ModelRegistry {
	copied := make(map[string]*ModelConfig, len(models))
	for k, v := range models {
		copied[k] = v
	}
	return &ModelRegistry{
		models:  copied,
		defName: defaultModel,
	}
}

// Get retrieves a model configuration by ID (thread-safe).
func (r *ModelRegistry) Get(id string) (*ModelConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, exists := r.models[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrModelNotFound, id)
	}
	return m, nil
}

// GetAll returns all model configurations (thread-safe, returns copy).
func (r *ModelRegistry) GetAll() map[string]*ModelConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*ModelConfig, len(r.models))
	for k, v := range r.models {
		result[k] = v
	}
	return result
}

// Has checks if a model exists in the catalog (thread-safe).
func (r *ModelRegistry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.models[id]
	return exists
}

// Default returns the catalog's default model ID.
func (r *ModelRegistry) Default() string {
	return r.defName
}

// IDs returns all model IDs in sorted order (thread-safe).
func (r *ModelRegistry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.models))
	for id := range r.models {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of catalog entries (thread-safe).
func (r *ModelRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.models)
}

// FallbackChain returns the model IDs reachable from start by following
// fallback links, starting with start itself. A visited set makes the walk
// terminate even if a user-supplied catalog links models into a cycle.
func (r *ModelRegistry) FallbackChain(start string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, exists := r.models[start]; !exists {
		return nil, fmt.Errorf("%w: %s", ErrModelNotFound, start)
	}

	chain := make([]string, 0, len(r.models))
	visited := make(map[string]bool, len(r.models))
	for id := start; id != "" && !visited[id]; {
		m, exists := r.models[id]
		if !exists {
			break
		}
		visited[id] = true
		chain = append(chain, id)
		id = m.Fallback
	}
	return chain, nil
}

// validateModels checks catalog integrity: provider/tier enums and that
// every fallback link points at a catalog entry.
func validateModels(models map[string]*ModelConfig, defaultModel string) error {
	if _, ok := models[defaultModel]; !ok {
		return NewValidationError("model", defaultModel, "", fmt.Errorf("%w: default model not in catalog", ErrInvalidValue))
	}
	for id, m := range models {
		switch m.Provider {
		case ProviderGoogle, ProviderGroq:
		default:
			return NewValidationError("model", id, "provider", fmt.Errorf("%w: %q", ErrInvalidValue, m.Provider))
		}
		switch m.Tier {
		case TierPrimary, TierFallback:
		default:
			return NewValidationError("model", id, "tier", fmt.Errorf("%w: %q", ErrInvalidValue, m.Tier))
		}
		if m.Fallback != "" {
			if _, ok := models[m.Fallback]; !ok {
				return NewValidationError("model", id, "fallback", fmt.Errorf("%w: links to unknown model %q", ErrInvalidValue, m.Fallback))
			}
		}
		if m.MaxOutputTokens < 0 {
			return NewValidationError("model", id, "max_output_tokens", fmt.Errorf("%w: must be >= 0", ErrInvalidValue))
		}
	}
	return nil
}
