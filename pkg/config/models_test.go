package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelRegistry(t *testing.T) {
	registry := NewModelRegistry(builtinModels(), DefaultModel)

	t.Run("get existing model", func(t *testing.T) {
		m, err := registry.Get("gemini-2.0-flash")
		require.NoError(t, err)
		assert.Equal(t, ProviderGoogle, m.Provider)
		assert.Equal(t, "gemini-2.5-flash", m.Fallback)
	})

	t.Run("get unknown model", func(t *testing.T) {
		_, err := registry.Get("gpt-oss-999")
		assert.ErrorIs(t, err, ErrModelNotFound)
	})

	t.Run("default model is in catalog", func(t *testing.T) {
		assert.True(t, registry.Has(registry.Default()))
	})

	t.Run("ids are sorted", func(t *testing.T) {
		ids := registry.IDs()
		require.Len(t, ids, 4)
		assert.Equal(t, "gemini-2.0-flash", ids[0])
	})
}

func TestFallbackChain(t *testing.T) {
	t.Run("walks full builtin chain", func(t *testing.T) {
		registry := NewModelRegistry(builtinModels(), DefaultModel)

		chain, err := registry.FallbackChain("gemini-2.0-flash")
		require.NoError(t, err)
		assert.Equal(t, []string{"gemini-2.0-flash", "gemini-2.5-flash", "gemini-2.5-pro"}, chain)
	})

	t.Run("terminal model yields single-element chain", func(t *testing.T) {
		registry := NewModelRegistry(builtinModels(), DefaultModel)

		chain, err := registry.FallbackChain("gemini-2.5-pro")
		require.NoError(t, err)
		assert.Equal(t, []string{"gemini-2.5-pro"}, chain)
	})

	t.Run("unknown start is an error", func(t *testing.T) {
		registry := NewModelRegistry(builtinModels(), DefaultModel)

		_, err := registry.FallbackChain("nope")
		assert.ErrorIs(t, err, ErrModelNotFound)
	})

	t.Run("cycle terminates with each model visited once", func(t *testing.T) {
		registry := NewModelRegistry(map[string]*ModelConfig{
			"a": {Provider: ProviderGoogle, Tier: TierPrimary, Fallback: "b"},
			"b": {Provider: ProviderGoogle, Tier: TierPrimary, Fallback: "a"},
		}, "a")

		chain, err := registry.FallbackChain("a")
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, chain)
	})

	t.Run("self-referencing model appears once", func(t *testing.T) {
		registry := NewModelRegistry(map[string]*ModelConfig{
			"solo": {Provider: ProviderGroq, Tier: TierFallback, Fallback: "solo"},
		}, "solo")

		chain, err := registry.FallbackChain("solo")
		require.NoError(t, err)
		assert.Equal(t, []string{"solo"}, chain)
	})
}

func TestValidateModels(t *testing.T) {
	tests := []struct {
		name         string
		models       map[string]*ModelConfig
		defaultModel string
		wantErr      bool
	}{
		{
			name:         "builtin catalog is valid",
			models:       builtinModels(),
			defaultModel: DefaultModel,
			wantErr:      false,
		},
		{
			name:         "default model missing from catalog",
			models:       map[string]*ModelConfig{"a": {Provider: ProviderGoogle, Tier: TierPrimary}},
			defaultModel: "b",
			wantErr:      true,
		},
		{
			name: "unknown provider",
			models: map[string]*ModelConfig{
				"a": {Provider: "openai", Tier: TierPrimary},
			},
			defaultModel: "a",
			wantErr:      true,
		},
		{
			name: "unknown tier",
			models: map[string]*ModelConfig{
				"a": {Provider: ProviderGoogle, Tier: "experimental"},
			},
			defaultModel: "a",
			wantErr:      true,
		},
		{
			name: "fallback links to unknown model",
			models: map[string]*ModelConfig{
				"a": {Provider: ProviderGoogle, Tier: TierPrimary, Fallback: "ghost"},
			},
			defaultModel: "a",
			wantErr:      true,
		},
		{
			name: "negative max output tokens",
			models: map[string]*ModelConfig{
				"a": {Provider: ProviderGoogle, Tier: TierPrimary, MaxOutputTokens: -1},
			},
			defaultModel: "a",
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateModels(tt.models, tt.defaultModel)
			if tt.wantErr {
				require.Error(t, err)
				var verr *ValidationError
				assert.ErrorAs(t, err, &verr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
