package main

import (
	"context"
	"time"

	"github.com/guttosm/recipe-service/config"
	"github.com/guttosm/recipe-service/internal/app"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Long:  `Starts the HTTP API. Configuration is read from environment variables, after the optional --env-file is loaded.`,
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()

	application, err := app.InitializeApp(cfg)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := application.Close(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to release resources")
		}
	}()

	server := app.NewServer(application.Router, cfg.Server)
	return server.Run(cmd.Context())
}
