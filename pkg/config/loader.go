package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Environment variable names. PLATFORM_DATABASE_URL is the only hard
// requirement; everything else has a usable default for local development.
const (
	EnvDatabaseURL  = "PLATFORM_DATABASE_URL"
	EnvSecretKey    = "PLATFORM_SECRET_KEY"
	EnvTokenExpiry  = "PLATFORM_TOKEN_EXPIRY"
	EnvDataDir      = "PLATFORM_DATA_DIR"
	EnvHost         = "PLATFORM_HOST"
	EnvPort         = "PLATFORM_PORT"
	EnvCORSOrigins  = "CORS_ORIGINS"
	EnvGoogleAPIKey = "GOOGLE_API_KEY"
	EnvGroqAPIKey   = "GROQ_API_KEY"
	EnvConfigFile   = "FORGE_CONFIG"
)

// devSecretKey is the fallback signing key. Fine for laptops, useless for
// anything reachable from a network.
const devSecretKey = "dev-secret-change-me"

// ForgeYAMLConfig represents the optional forge.yaml overlay structure.
// Every section is optional; set fields override built-in defaults.
type ForgeYAMLConfig struct {
	Models       map[string]*ModelConfig `yaml:"models"`
	DefaultModel string                  `yaml:"default_model"`
	Queue        *QueueConfig            `yaml:"queue"`
	Sandbox      *SandboxConfig          `yaml:"sandbox"`
	RAG          *RAGConfig              `yaml:"rag"`
	Retention    *RetentionConfig        `yaml:"retention"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Read scalar settings from the environment
//  2. Load the optional forge.yaml overlay (with {{.VAR}} env expansion)
//  3. Merge overlay sections over built-in defaults
//  4. Build the model registry
//  5. Validate everything
func Initialize(ctx context.Context) (*Config, error) {
	cfg, err := load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	stats := cfg.Stats()
	slog.Info("Configuration initialized",
		"models", stats.Models,
		"default_model", stats.DefaultModel,
		"overlay", stats.OverlayFile,
		"data_dir", cfg.DataDir)

	return cfg, nil
}

func load(_ context.Context) (*Config, error) {
	dbURL := os.Getenv(EnvDatabaseURL)
	if dbURL == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingRequiredField, EnvDatabaseURL)
	}

	secret := os.Getenv(EnvSecretKey)
	if secret == "" {
		secret = devSecretKey
		slog.Warn("PLATFORM_SECRET_KEY not set, using development default")
	}

	if os.Getenv(EnvGoogleAPIKey) == "" {
		slog.Warn("GOOGLE_API_KEY not set, generation and document ingestion will fail")
	}

	cfg := &Config{
		Host:         os.Getenv(EnvHost),
		Port:         envInt(EnvPort, 8080),
		CORSOrigins:  splitOrigins(os.Getenv(EnvCORSOrigins)),
		DatabaseURL:  dbURL,
		SecretKey:    secret,
		TokenExpiry:  time.Duration(envInt(EnvTokenExpiry, 60)) * time.Minute,
		GoogleAPIKey: os.Getenv(EnvGoogleAPIKey),
		GroqAPIKey:   os.Getenv(EnvGroqAPIKey),
		DataDir:      envOr(EnvDataDir, "data"),
		Queue:        DefaultQueueConfig(),
		Sandbox:      DefaultSandboxConfig(),
		RAG:          DefaultRAGConfig(),
		Retention:    DefaultRetentionConfig(),
	}

	overlay, path, err := loadOverlay()
	if err != nil {
		return nil, err
	}
	cfg.configFile = path

	models := builtinModels()
	defaultModel := DefaultModel
	if overlay != nil {
		if err := applyOverlay(cfg, overlay); err != nil {
			return nil, NewLoadError(path, err)
		}
		models = mergeModels(models, overlay.Models)
		if overlay.DefaultModel != "" {
			defaultModel = overlay.DefaultModel
		}
	}
	cfg.Models = NewModelRegistry(models, defaultModel)

	return cfg, nil
}

// loadOverlay reads the optional YAML overlay. The path comes from
// FORGE_CONFIG; when unset, ./forge.yaml is used if present. A configured
// path that does not exist is an error; the implicit default is not.
func loadOverlay() (*ForgeYAMLConfig, string, error) {
	path := os.Getenv(EnvConfigFile)
	implicit := false
	if path == "" {
		path = "forge.yaml"
		implicit = true
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if implicit {
				return nil, "", nil
			}
			return nil, "", NewLoadError(path, ErrConfigNotFound)
		}
		return nil, "", NewLoadError(path, err)
	}

	// Expand environment variables using {{.VAR}} template syntax.
	// ExpandEnv passes original data through on template errors so the
	// YAML parser can produce the clearer message.
	data = ExpandEnv(data)

	var overlay ForgeYAMLConfig
	overlay.Models = make(map[string]*ModelConfig)
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, "", NewLoadError(path, fmt.Errorf("%w: %v", ErrInvalidYAML, err))
	}

	return &overlay, path, nil
}

// applyOverlay merges overlay tuning sections into cfg. Defaults stay in
// place for any field the overlay leaves unset (mergo zero-value rule).
func applyOverlay(cfg *Config, overlay *ForgeYAMLConfig) error {
	if overlay.Queue != nil {
		if err := mergo.Merge(cfg.Queue, overlay.Queue, mergo.WithOverride); err != nil {
			return fmt.Errorf("failed to merge queue config: %w", err)
		}
	}
	if overlay.Sandbox != nil {
		if err := mergo.Merge(cfg.Sandbox, overlay.Sandbox, mergo.WithOverride); err != nil {
			return fmt.Errorf("failed to merge sandbox config: %w", err)
		}
	}
	if overlay.RAG != nil {
		if err := mergo.Merge(cfg.RAG, overlay.RAG, mergo.WithOverride); err != nil {
			return fmt.Errorf("failed to merge rag config: %w", err)
		}
	}
	if overlay.Retention != nil {
		if err := mergo.Merge(cfg.Retention, overlay.Retention, mergo.WithOverride); err != nil {
			return fmt.Errorf("failed to merge retention config: %w", err)
		}
	}
	return nil
}

// mergeModels overlays user catalog entries onto the built-in catalog.
// A user entry replaces the built-in entry wholesale; partial edits to a
// built-in model are not supported.
func mergeModels(builtin, user map[string]*ModelConfig) map[string]*ModelConfig {
	merged := make(map[string]*ModelConfig, len(builtin)+len(user))
	for id, m := range builtin {
		merged[id] = m
	}
	for id, m := range user {
		merged[id] = m
	}
	return merged
}

// validate performs comprehensive validation on loaded configuration.
func validate(cfg *Config) error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return NewValidationError("server", "server", "port", ErrInvalidValue)
	}
	if cfg.TokenExpiry < time.Minute || cfg.TokenExpiry > 1440*time.Minute {
		return NewValidationError("server", "server", "token_expiry", ErrInvalidValue)
	}
	if err := validateModels(cfg.Models.GetAll(), cfg.Models.Default()); err != nil {
		return err
	}
	if err := validateQueue(cfg.Queue); err != nil {
		return err
	}
	if err := validateSandbox(cfg.Sandbox); err != nil {
		return err
	}
	if err := validateRAG(cfg.RAG); err != nil {
		return err
	}
	return validateRetention(cfg.Retention)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("Invalid integer in environment, using default",
			"var", key, "value", v, "default", def)
		return def
	}
	return n
}

// splitOrigins parses the comma-separated CORS_ORIGINS value. Empty input
// yields the local development origins.
func splitOrigins(s string) []string {
	if s == "" {
		return []string{"http://localhost:3000", "http://localhost:5173"}
	}
	parts := strings.Split(s, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
