package database

import (
	"errors"
	"time"
)

// Config holds database connection settings. URL is the full Postgres
// connection string from PLATFORM_DATABASE_URL; pool settings have
// defaults suitable for a single replica.
type Config struct {
	URL string

	// Connection pool settings
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// NewConfig returns a Config for the given connection URL with default
// pool settings.
func NewConfig(url string) Config {
	return Config{
		URL:             url,
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	}
}

// Validate checks connection settings before opening the pool.
func (c Config) Validate() error {
	if c.URL == "" {
		return errors.New("database URL is required")
	}
	if c.MaxOpenConns < 1 {
		return errors.New("max open connections must be at least 1")
	}
	if c.MaxIdleConns < 0 || c.MaxIdleConns > c.MaxOpenConns {
		return errors.New("max idle connections must be between 0 and max open connections")
	}
	return nil
}
