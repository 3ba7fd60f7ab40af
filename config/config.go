package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Fetch     FetchConfig
	Render    RenderConfig
	Extract   ExtractConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
	Log       LogConfig
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Host string // default: "0.0.0.0"
	Port int    // default: 8080
	Mode string // "debug", "release", "test"; default: "release"
}

// FetchConfig controls the direct HTTP fetcher.
type FetchConfig struct {
	// AttemptTimeout is the deadline for a single client-profile attempt.
	AttemptTimeout time.Duration // default: 15s

	// MaxRedirects is the redirect hop limit per attempt.
	MaxRedirects int // default: 10

	// MaxBodyBytes caps how much of a response body is read.
	MaxBodyBytes int64 // default: 10 MiB
}

// RenderConfig controls the remote rendering fallback.
type RenderConfig struct {
	// Token is the bearer credential for the rendering service.
	// When empty the fallback is disabled and direct-fetch failures
	// degrade to a domain-only record.
	Token string

	// Endpoint is the rendering service base URL.
	Endpoint string // default: "https://production-sfo.browserless.io"

	// Proxy selects the rendering service's egress proxy pool.
	Proxy string // default: "residential"

	// Timeout bounds the rendering call. Rendering is inherently slower
	// than a direct fetch and is the last line of defense.
	Timeout time.Duration // default: 60s
}

// ExtractConfig controls extraction and normalization behavior.
type ExtractConfig struct {
	// PriceMin and PriceMax bound accepted prices (exclusive). These are
	// heuristic sanity checks, not currency-aware validation, so they
	// stay configurable.
	PriceMin float64 // default: 0
	PriceMax float64 // default: 100000

	// TitleMaxLen and DescriptionMaxLen truncate extracted text fields.
	TitleMaxLen       int // default: 255
	DescriptionMaxLen int // default: 500

	// InteractiveTimeout is the default caller-side ceiling applied by
	// the API layer; past it the caller accepts a partial record.
	InteractiveTimeout time.Duration // default: 5s

	// MaxTimeout is the maximum per-request ceiling a client may ask for.
	MaxTimeout time.Duration // default: 90s
}

// AuthConfig controls API key authentication.
type AuthConfig struct {
	// Enabled toggles API key authentication.
	Enabled bool // default: false

	// APIKeys is the list of valid API keys.
	APIKeys []string
}

// RateLimitConfig controls per-key rate limiting.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate per API key.
	RequestsPerSecond float64 // default: 5

	// Burst is the maximum burst size per API key.
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
			Host: envOr("METASCOUT_HOST", "0.0.0.0"),
			Port: envIntOr("METASCOUT_PORT", 8080),
			Mode: envOr("METASCOUT_MODE", "release"),
		},
		Fetch: FetchConfig{
			AttemptTimeout: envDurationOr("METASCOUT_FETCH_TIMEOUT", 15*time.Second),
			MaxRedirects:   envIntOr("METASCOUT_MAX_REDIRECTS", 10),
			MaxBodyBytes:   int64(envIntOr("METASCOUT_MAX_BODY_BYTES", 10<<20)),
		},
		Render: RenderConfig{
			Token:    os.Getenv("BROWSERLESS_API_KEY"),
			Endpoint: envOr("METASCOUT_RENDER_ENDPOINT", "https://production-sfo.browserless.io"),
			Proxy:    envOr("METASCOUT_RENDER_PROXY", "residential"),
			Timeout:  envDurationOr("METASCOUT_RENDER_TIMEOUT", 60*time.Second),
		},
		Extract: ExtractConfig{
			PriceMin:           envFloatOr("METASCOUT_PRICE_MIN", 0),
			PriceMax:           envFloatOr("METASCOUT_PRICE_MAX", 100000),
			TitleMaxLen:        envIntOr("METASCOUT_TITLE_MAX_LEN", 255),
			DescriptionMaxLen:  envIntOr("METASCOUT_DESC_MAX_LEN", 500),
			InteractiveTimeout: envDurationOr("METASCOUT_INTERACTIVE_TIMEOUT", 5*time.Second),
			MaxTimeout:         envDurationOr("METASCOUT_MAX_TIMEOUT", 90*time.Second),
		},
		Auth: AuthConfig{
			Enabled: envBoolOr("METASCOUT_AUTH_ENABLED", false),
			APIKeys: envSliceOr("METASCOUT_API_KEYS", nil),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: envFloatOr("METASCOUT_RATE_RPS", 5.0),
			Burst:             envIntOr("METASCOUT_RATE_BURST", 10),
		},
		Log: LogConfig{
			Level:  envOr("METASCOUT_LOG_LEVEL", "info"),
			Format: envOr("METASCOUT_LOG_FORMAT", "json"),
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

func envBoolOr(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
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

func envSliceOr(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		return result
	}
	return fallback
}
