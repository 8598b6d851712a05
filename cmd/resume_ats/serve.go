package main

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/server"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that scores resume documents. When DATABASE_URL is set,
drafts are stored in PostgreSQL; otherwise the draft endpoints answer 503.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config, 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	port := cfg.Port
	if servePort > 0 {
		port = servePort
	}

	srvCfg := server.Config{
		Port:            port,
		TopImprovements: cfg.TopImprovements,
	}

	if cfg.DatabaseURL != "" {
		ctx := cmd.Context()
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer database.Close()

		if err := database.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("failed to prepare draft storage: %w", err)
		}
		srvCfg.Drafts = database
		log.Info().Msg("Draft storage enabled")
	} else {
		log.Warn().Msg("DATABASE_URL not set, draft endpoints disabled")
	}

	srv, err := server.New(srvCfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
