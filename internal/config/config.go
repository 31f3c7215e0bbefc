// Package config handles application configuration loading from environment
// variables, optionally seeded from a .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Settings sources.
const (
	SourceREST     = "rest"
	SourcePostgres = "postgres"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// PostgreSQL connection
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Valkey (Redis-compatible cache)
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// Site settings
	SettingsSource string        // "rest" or "postgres"
	RESTURL        string        // base URL of the hosted REST endpoint
	RESTAPIKey     string        // sent as apikey and bearer token
	SettingsWait   time.Duration // how long GET /api/settings waits for a load
	PageCacheTTL   time.Duration

	// Throttling of login and second-factor attempts
	LoginRateLimit  int           // attempts per window, per route and client
	LoginRateWindow time.Duration // sliding window for LoginRateLimit
	TrustProxy      bool          // take client addresses from X-Forwarded-For
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Returns an error if critical values
// are missing or malformed.
func Load() (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		DBHost:     envOrDefault("POSTGRES_HOST", "localhost"),
		DBPort:     envOrDefault("POSTGRES_PORT", "5432"),
		DBUser:     envOrDefault("POSTGRES_USER", "lawsite"),
		DBPassword: envOrDefault("POSTGRES_PASSWORD", "changeme"),
		DBName:     envOrDefault("POSTGRES_DB", "lawsite"),

		ValkeyHost:     envOrDefault("VALKEY_HOST", "localhost"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		SettingsSource: envOrDefault("SETTINGS_SOURCE", SourcePostgres),
		RESTURL:        os.Getenv("REST_URL"),
		RESTAPIKey:     os.Getenv("REST_API_KEY"),
	}

	var err error
	if cfg.SettingsWait, err = durationOrDefault("SETTINGS_WAIT", 2*time.Second); err != nil {
		return nil, err
	}
	if cfg.PageCacheTTL, err = durationOrDefault("PAGE_CACHE_TTL", 5*time.Minute); err != nil {
		return nil, err
	}

	if cfg.LoginRateWindow, err = durationOrDefault("LOGIN_RATE_WINDOW", time.Minute); err != nil {
		return nil, err
	}
	if cfg.LoginRateLimit, err = intOrDefault("LOGIN_RATE_LIMIT", 10); err != nil {
		return nil, err
	}
	if cfg.LoginRateLimit < 1 {
		return nil, fmt.Errorf("LOGIN_RATE_LIMIT must be at least 1, got %d", cfg.LoginRateLimit)
	}
	if cfg.LoginRateWindow <= 0 {
		return nil, fmt.Errorf("LOGIN_RATE_WINDOW must be positive, got %s", cfg.LoginRateWindow)
	}
	if cfg.TrustProxy, err = boolOrDefault("TRUST_PROXY", false); err != nil {
		return nil, err
	}

	switch cfg.SettingsSource {
	case SourcePostgres:
	case SourceREST:
		if cfg.RESTURL == "" || cfg.RESTAPIKey == "" {
			return nil, fmt.Errorf("REST_URL and REST_API_KEY are required when SETTINGS_SOURCE=rest")
		}
	default:
		return nil, fmt.Errorf("SETTINGS_SOURCE must be %q or %q, got %q", SourceREST, SourcePostgres, cfg.SettingsSource)
	}

	if cfg.Env == "production" {
		if cfg.DBPassword == "changeme" {
			return nil, fmt.Errorf("POSTGRES_PASSWORD must be set in production")
		}
	}

	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// loadDotEnv copies variables from path into the environment without
// overriding ones already set. A missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationOrDefault(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func intOrDefault(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func boolOrDefault(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
