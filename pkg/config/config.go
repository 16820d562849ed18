package config

import "time"

// Config is the umbrella configuration object returned by Initialize()
// and used throughout the application. Scalar settings come from the
// environment; the model catalog and tuning knobs can be overridden by an
// optional forge.yaml overlay.
type Config struct {
	configFile string // Overlay file path, empty when none was loaded

	// Server settings
	Host        string
	Port        int
	CORSOrigins []string

	// DatabaseURL is the Postgres connection string (required).
	DatabaseURL string

	// Auth settings
	SecretKey   string
	TokenExpiry time.Duration

	// Provider API keys. Empty keys disable the provider at runtime.
	GoogleAPIKey string
	GroqAPIKey   string

	// DataDir is the root of user-scoped project storage. Archives are
	// staged under DataDir/staging before moving into place.
	DataDir string

	// Tuning knobs
	Queue     *QueueConfig
	Sandbox   *SandboxConfig
	RAG       *RAGConfig
	Retention *RetentionConfig

	// Models is the LLM catalog with fallback links.
	Models *ModelRegistry
}

// Initialize is defined in loader.go

// Stats contains statistics about loaded configuration
type Stats struct {
	Models       int
	DefaultModel string
	OverlayFile  string
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	s := Stats{OverlayFile: c.configFile}
	if c.Models != nil {
		s.Models = c.Models.Len()
		s.DefaultModel = c.Models.Default()
	}
	return s
}

// ConfigFile returns the overlay file path, or "" when none was loaded.
func (c *Config) ConfigFile() string {
	return c.configFile
}

// GetModel retrieves a model configuration by ID.
// This is a convenience method that wraps ModelRegistry.Get().
func (c *Config) GetModel(id string) (*ModelConfig, error) {
	return c.Models.Get(id)
}

// DefaultModelID returns the catalog's default model.
func (c *Config) DefaultModelID() string {
	return c.Models.Default()
}

// StagingDir returns the archive staging directory under DataDir.
func (c *Config) StagingDir() string {
	return c.DataDir + "/staging"
}
