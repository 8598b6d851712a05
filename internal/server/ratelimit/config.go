package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path; a trailing "/" matches every path below it
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window; 0 means unlimited
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// LoadConfig loads rate limiting configuration from the environment.
// A nil getenv reads the process environment.
func LoadConfig(getenv func(string) string) *Config {
	if getenv == nil {
		getenv = os.Getenv
	}
	e := env(getenv)

	if !e.boolOr("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    e.intOr("RATE_LIMIT_DEFAULT_LIMIT", 1000),
		DefaultWindow:   e.durationOr("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: e.durationOr("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       e.set("RATE_LIMIT_WHITELIST"),
		Blacklist:       e.set("RATE_LIMIT_BLACKLIST"),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the default endpoint-specific configurations.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Scoring runs on every edit in the builder, so it gets a generous budget
		{Path: "/score", Method: "POST", Limit: 600, Window: time.Minute, Burst: 60},

		// Draft writes (moderate limits)
		{Path: "/drafts", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/drafts/", Method: "PUT", Limit: 300, Window: time.Minute, Burst: 30},
		{Path: "/drafts/", Method: "DELETE", Limit: 100, Window: time.Minute, Burst: 10},

		// Reads use the default limit; health is always unlimited
	}
}

// env reads typed settings; empty or unparsable values yield the fallback.
type env func(string) string

func (e env) intOr(key string, fallback int) int {
	if n, err := strconv.Atoi(strings.TrimSpace(e(key))); err == nil {
		return n
	}
	return fallback
}

func (e env) boolOr(key string, fallback bool) bool {
	if b, err := strconv.ParseBool(strings.TrimSpace(e(key))); err == nil {
		return b
	}
	return fallback
}

func (e env) durationOr(key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(strings.TrimSpace(e(key))); err == nil {
		return d
	}
	return fallback
}

// set parses a comma-separated list of client IDs.
func (e env) set(key string) map[string]bool {
	result := make(map[string]bool)
	for _, item := range strings.Split(e(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			result[item] = true
		}
	}
	return result
}
