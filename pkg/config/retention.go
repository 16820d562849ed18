package config

import "time"

// RetentionConfig controls the background cleanup service.
type RetentionConfig struct {
	// EventTTL is the maximum age of progress Event rows before deletion.
	// WebSocket catchup only needs recent history.
	EventTTL time.Duration `yaml:"event_ttl"`

	// StagingTTL is how long orphaned archives may sit in the staging
	// directory before being swept. Archives are normally moved into
	// user storage within seconds of assembly.
	StagingTTL time.Duration `yaml:"staging_ttl"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		EventTTL:        24 * time.Hour,
		StagingTTL:      1 * time.Hour,
		CleanupInterval: 1 * time.Hour,
	}
}

// validateRetention checks retention configuration sanity.
func validateRetention(r *RetentionConfig) error {
	if r.EventTTL <= 0 || r.StagingTTL <= 0 || r.CleanupInterval <= 0 {
		return NewValidationError("retention", "retention", "", ErrInvalidValue)
	}
	return nil
}
