package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Search    SearchConfig
	Extract   ExtractConfig
	RateLimit RateLimitConfig
	Log       LogConfig
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Host string // default: "0.0.0.0"
	Port int    // default: 8000
	Mode string // "debug", "release", "test"; default: "release"
}

// SearchConfig controls the backend fallback chain.
type SearchConfig struct {
	// Timeout is the per-backend fetch deadline.
	Timeout time.Duration // default: 20s

	// MaxResults caps the number of results a single request may ask for.
	MaxResults int // default: 10
}

// ExtractConfig controls content extraction and snippet enrichment.
type ExtractConfig struct {
	// Timeout is the per-page content fetch deadline. Shorter than the
	// search timeout: a slow page should not stall the whole response.
	Timeout time.Duration // default: 12s

	// MaxPageChars is the character budget for extracted page text.
	MaxPageChars int // default: 4000

	// Workers is the number of concurrent enrichment fetches.
	Workers int // default: 10
}

// RateLimitConfig controls per-client rate limiting.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate per client IP.
	RequestsPerSecond float64 // default: 5

	// Burst is the maximum burst size per client IP.
	Burst int // default: 10
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string // default: "info"
	Format string // "json" or "text"; default: "json"
}

// Load reads configuration from environment variables with sane defaults.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host: envOr("SCOUR_HOST", "0.0.0.0"),
			Port: envIntOr("SCOUR_PORT", 8000),
			Mode: envOr("SCOUR_MODE", "release"),
		},
		Search: SearchConfig{
			Timeout:    envDurationOr("SCOUR_SEARCH_TIMEOUT", 20*time.Second),
			MaxResults: envIntOr("SCOUR_MAX_RESULTS", 10),
		},
		Extract: ExtractConfig{
			Timeout:      envDurationOr("SCOUR_CONTENT_TIMEOUT", 12*time.Second),
			MaxPageChars: envIntOr("MAX_PAGE_CHARS", 4000),
			Workers:      envIntOr("SCOUR_ENRICH_WORKERS", 10),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: envFloatOr("SCOUR_RATE_RPS", 5.0),
			Burst:             envIntOr("SCOUR_RATE_BURST", 10),
		},
		Log: LogConfig{
			Level:  envOr("SCOUR_LOG_LEVEL", "info"),
			Format: envOr("SCOUR_LOG_FORMAT", "json"),
		},
	}
}

// --- helper functions ---

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envFloatOr(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
