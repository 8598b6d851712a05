// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Config represents settings that can be loaded from a JSON file and the environment.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	Port            int    `json:"port,omitempty" validate:"gte=0,lte=65535"`          // HTTP listen port
	DatabaseURL     string `json:"database_url,omitempty"`                             // PostgreSQL connection URL for drafts
	TopImprovements int    `json:"top_improvements,omitempty" validate:"gte=0,lte=11"` // Improvements shown in compact views
	LogLevel        string `json:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	LogFormat       string `json:"log_format,omitempty" validate:"omitempty,oneof=console json"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Port:            8080,
		TopImprovements: 3,
		LogLevel:        "info",
		LogFormat:       "console",
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("config error: %w", err)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "oneof":
			messages = append(messages, fmt.Sprintf("'%s' must be one of [%s]", fe.Field(), fe.Param()))
		case "gte", "lte":
			messages = append(messages, fmt.Sprintf("'%s' must be between bounds (%s %s)", fe.Field(), fe.Tag(), fe.Param()))
		default:
			messages = append(messages, fmt.Sprintf("'%s' failed '%s'", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("config error: %s", strings.Join(messages, "; "))
}

// MergeWithDefaults returns a new Config with zero fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.TopImprovements == 0 {
		result.TopImprovements = defaults.TopImprovements
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}

	return result
}

// ApplyEnv overrides fields from environment variables when they are set.
// Unparseable numbers are ignored.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if getenv == nil {
		getenv = os.Getenv
	}

	if v := getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := getenv("TOP_IMPROVEMENTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.TopImprovements = n
		}
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	if v := getenv("LOG_FORMAT"); v != "" {
		c.LogFormat = strings.ToLower(v)
	}
}

// Resolve builds the effective configuration: file values (if path is set),
// then environment overrides, then defaults for anything still unset.
func Resolve(path string, getenv func(string) string) (Config, error) {
	cfg := &Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}

	cfg.ApplyEnv(getenv)
	merged := cfg.MergeWithDefaults(Default())
	if err := merged.Validate(); err != nil {
		return Config{}, err
	}
	return merged, nil
}
