package main

import (
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"nuros/internal/analysis"
	"nuros/internal/api"
	"nuros/internal/risk"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var bind string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the demo HTTP API",
		Long: `Serve hosts the analysis pipeline behind a small HTTP API. A .env file in
the working directory is loaded when present so deployments can override the
bind address without editing the config file.

Endpoints:
  GET  /v1/health
  POST /v1/analyze   multipart: audio (WAV), subject_id, life_stage`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Optional; absence is not an error.
			_ = godotenv.Load()

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			if b := strings.TrimSpace(bind); b != "" {
				cfg.API.Bind = b
			}

			logger, err := ctx.buildLogger(cfg)
			if err != nil {
				return err
			}

			session := analysis.NewSession(cfg, risk.NewNoise(randomSeed()), logger)
			server := api.NewServer(cfg, session, logger)

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return server.Run(runCtx)
		},
	}

	cmd.Flags().StringVarP(&bind, "bind", "b", "", "Listen address (default: config api.bind)")

	return cmd
}
