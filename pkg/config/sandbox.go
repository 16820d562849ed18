package config

import "time"

// Review positions for the code review loop. The loop itself is one
// implementation; position decides when the pipeline invokes it.
const (
	ReviewPreSandbox  = "pre_sandbox"
	ReviewPostSandbox = "post_sandbox"
	ReviewBoth        = "both"
	ReviewDisabled    = "disabled"
)

// SandboxConfig controls container verification and the repair loop.
type SandboxConfig struct {
	// PortRangeStart/PortRangeEnd bound the host ports leased to sandbox
	// stacks. Concurrent verifications draw distinct ports from this range.
	PortRangeStart int `yaml:"port_range_start"`
	PortRangeEnd   int `yaml:"port_range_end"`

	// ComposeUpTimeout caps `docker compose up -d --build`.
	ComposeUpTimeout time.Duration `yaml:"compose_up_timeout"`

	// TeardownTimeout caps `docker compose down -v`.
	TeardownTimeout time.Duration `yaml:"teardown_timeout"`

	// HealthTimeout is the total budget for the app to answer /health.
	HealthTimeout time.Duration `yaml:"health_timeout"`

	// HealthPollInterval is the delay between health probes.
	HealthPollInterval time.Duration `yaml:"health_poll_interval"`

	// MaxRepairAttempts bounds deploy→test→patch cycles per run.
	MaxRepairAttempts int `yaml:"max_repair_attempts"`

	// MaxReviewIterations bounds review→revise cycles per run.
	MaxReviewIterations int `yaml:"max_review_iterations"`

	// TrustScoreThreshold is the minimum reviewer score (0-10) required,
	// together with approval, to end the review loop early.
	TrustScoreThreshold int `yaml:"trust_score_threshold"`

	// ReviewPosition places the review loop relative to sandbox
	// verification: pre_sandbox, post_sandbox, both, or disabled.
	ReviewPosition string `yaml:"review_position"`

	// ScratchDir is where archives are unpacked for verification.
	// Empty means os.TempDir().
	ScratchDir string `yaml:"scratch_dir"`
}

// DefaultSandboxConfig returns the built-in sandbox defaults.
func DefaultSandboxConfig() *SandboxConfig {
	return &SandboxConfig{
		PortRangeStart:      9123,
		PortRangeEnd:        9222,
		ComposeUpTimeout:    180 * time.Second,
		TeardownTimeout:     30 * time.Second,
		HealthTimeout:       90 * time.Second,
		HealthPollInterval:  2 * time.Second,
		MaxRepairAttempts:   3,
		MaxReviewIterations: 5,
		TrustScoreThreshold: 7,
		ReviewPosition:      ReviewPostSandbox,
	}
}

// validateSandbox checks sandbox configuration sanity.
func validateSandbox(s *SandboxConfig) error {
	if s.PortRangeStart < 1024 || s.PortRangeEnd > 65535 || s.PortRangeEnd < s.PortRangeStart {
		return NewValidationError("sandbox", "sandbox", "port_range", ErrInvalidValue)
	}
	if s.HealthTimeout <= 0 || s.HealthPollInterval <= 0 {
		return NewValidationError("sandbox", "sandbox", "health_timeout", ErrInvalidValue)
	}
	if s.MaxRepairAttempts < 0 {
		return NewValidationError("sandbox", "sandbox", "max_repair_attempts", ErrInvalidValue)
	}
	if s.MaxReviewIterations < 1 {
		return NewValidationError("sandbox", "sandbox", "max_review_iterations", ErrInvalidValue)
	}
	if s.TrustScoreThreshold < 0 || s.TrustScoreThreshold > 10 {
		return NewValidationError("sandbox", "sandbox", "trust_score_threshold", ErrInvalidValue)
	}
	switch s.ReviewPosition {
	case ReviewPreSandbox, ReviewPostSandbox, ReviewBoth, ReviewDisabled:
	default:
		return NewValidationError("sandbox", "sandbox", "review_position", ErrInvalidValue)
	}
	return nil
}
