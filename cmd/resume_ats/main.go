// Package main provides the resume_ats CLI for scoring resume documents and serving the scoring API.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	logFormat  string

	// cfg is resolved before any subcommand runs
	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "resume_ats",
	Short: "ATS readiness scoring for resume documents",
	Long: "resume_ats scores resume documents against a fixed set of ATS readiness rules, " +
		"validates them against the resume JSON schema and serves the scorer over REST.",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: resolveConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: console or json")
}

// resolveConfig merges the config file, environment and flags, then sets up logging
func resolveConfig(cmd *cobra.Command, _ []string) error {
	resolved, err := config.Resolve(configPath, os.Getenv)
	if err != nil {
		return err
	}

	if logLevel != "" {
		resolved.LogLevel = logLevel
	}
	if logFormat != "" {
		resolved.LogFormat = logFormat
	}
	if err := resolved.Validate(); err != nil {
		return err
	}

	cfg = resolved
	observability.SetupLogger(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
