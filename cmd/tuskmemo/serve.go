package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sandevgo/tuskmemo/pkg/log"
	"github.com/sandevgo/tuskmemo/pkg/srv"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API and Telegram bot",
	Long:  `Starts every transport enabled in the configuration (HTTP API, Telegram) and runs until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// logger setup
		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting tuskmemo")

		app := NewApp(ctx)
		if names, err := app.briefing.Bundles(ctx); err != nil {
			logger.Warn().Err(err).Msg("failed to list bundles")
		} else {
			logger.Info().Int("count", len(names)).Str("path", app.cfg.GetBundlesPath()).Msg("bundles available")
		}

		services := NewServices(ctx, app)

		// Start services
		srv.StartServices(ctx, services)

		// Wait for shutdown signal
		srv.ShutdownServices(ctx, services)
		logger.Info().Msg("tuskmemo has been shut down gracefully")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
