// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Fallback identity used by the lenient client when the configured values
// are missing or malformed.
const (
	DefaultProjectID = "ejlhmf3v"
	DefaultDataset   = "production"
)

var (
	// ErrMissingProjectID is returned by StrictIdentity when SANITY_PROJECT_ID is empty.
	ErrMissingProjectID = errors.New("SANITY_PROJECT_ID must be set")
	// ErrMissingDataset is returned by StrictIdentity when SANITY_DATASET is empty.
	ErrMissingDataset = errors.New("SANITY_DATASET must be set")

	projectIDPattern = regexp.MustCompile(`^[a-z0-9]+$`)
	datasetPattern   = regexp.MustCompile(`^[a-z0-9_-]+$`)
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host     string `env:"APP_HOST" envDefault:"0.0.0.0"`
	Port     string `env:"APP_PORT" envDefault:"8080"`
	Env      string `env:"APP_ENV" envDefault:"development"` // "development", "production", "testing"
	LogLevel string `env:"APP_LOG_LEVEL" envDefault:"info"`

	// Content store
	SanityProjectID  string `env:"SANITY_PROJECT_ID"`
	SanityDataset    string `env:"SANITY_DATASET"`
	SanityAPIVersion string `env:"SANITY_API_VERSION" envDefault:"2024-01-01"`
	SanityToken      string `env:"SANITY_API_TOKEN"`
	SanityAPIHost    string `env:"SANITY_API_HOST"` // optional base URL override

	// Response cache for the CDN-backed API client. Zero disables it.
	ContentCacheTTL time.Duration `env:"CONTENT_CACHE_TTL" envDefault:"0s"`

	// Valkey (Redis-compatible cache), optional
	ValkeyHost     string `env:"VALKEY_HOST"`
	ValkeyPort     string `env:"VALKEY_PORT" envDefault:"6379"`
	ValkeyPassword string `env:"VALKEY_PASSWORD"`

	// Per-IP limit applied to /api routes
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"10"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"20"`
	// Key clients by X-Forwarded-For/X-Real-IP; only set behind a reverse proxy.
	TrustProxyHeaders bool `env:"TRUST_PROXY_HEADERS" envDefault:"false"`

	ExportDir string `env:"EXPORT_DIR" envDefault:"dist"`

	// S3-compatible object storage for published exports, optional
	S3Endpoint  string `env:"S3_ENDPOINT"`
	S3Region    string `env:"S3_REGION" envDefault:"us-east-1"`
	S3AccessKey string `env:"S3_ACCESS_KEY"`
	S3SecretKey string `env:"S3_SECRET_KEY"`
	S3Bucket    string `env:"S3_BUCKET"`
	S3Prefix    string `env:"S3_PREFIX"`
	S3PublicURL string `env:"S3_PUBLIC_URL"` // optional CDN URL for published files
}

// Identity names the project and dataset a content client talks to.
type Identity struct {
	ProjectID string
	Dataset   string
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	switch cfg.Env {
	case "development", "production", "testing":
	default:
		return nil, fmt.Errorf("APP_ENV must be development, production or testing, got %q", cfg.Env)
	}

	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	if cfg.ContentCacheTTL < 0 {
		return nil, fmt.Errorf("CONTENT_CACHE_TTL must not be negative")
	}

	return cfg, nil
}

// StrictIdentity returns the configured identity, failing when either value
// is missing. Used by the site client, which must not start half-configured.
func (c *Config) StrictIdentity() (Identity, error) {
	if strings.TrimSpace(c.SanityProjectID) == "" {
		return Identity{}, ErrMissingProjectID
	}
	if strings.TrimSpace(c.SanityDataset) == "" {
		return Identity{}, ErrMissingDataset
	}
	return Identity{ProjectID: c.SanityProjectID, Dataset: c.SanityDataset}, nil
}

// LenientIdentity returns the configured identity with invalid values
// replaced by the defaults. See SanitizeIdentity.
func (c *Config) LenientIdentity() Identity {
	return SanitizeIdentity(c.SanityProjectID, c.SanityDataset)
}

// SanitizeIdentity validates a project id against ^[a-z0-9]+$ and a dataset
// against ^[a-z0-9_-]+$. Values that fail are replaced with DefaultProjectID
// and DefaultDataset and a warning is logged; it never fails.
func SanitizeIdentity(projectID, dataset string) Identity {
	id := Identity{ProjectID: projectID, Dataset: dataset}

	if !projectIDPattern.MatchString(projectID) {
		slog.Warn("invalid content project id, using default",
			"value", projectID,
			"default", DefaultProjectID,
		)
		id.ProjectID = DefaultProjectID
	}
	if !datasetPattern.MatchString(dataset) {
		slog.Warn("invalid content dataset, using default",
			"value", dataset,
			"default", DefaultDataset,
		)
		id.Dataset = DefaultDataset
	}

	return id
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// IsProduction returns true in production. The API client reads through the
// content CDN only in production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// UseValkey returns true if a Valkey host is configured.
func (c *Config) UseValkey() bool {
	return c.ValkeyHost != ""
}

// UseS3 returns true if export publishing to object storage is configured.
func (c *Config) UseS3() bool {
	return c.S3Endpoint != "" && c.S3AccessKey != "" && c.S3Bucket != ""
}

// SlogLevel maps LogLevel to a slog.Level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
