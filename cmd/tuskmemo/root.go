package main

import (
	"context"
	"os"

	"github.com/sandevgo/tuskmemo/internal/config"
	"github.com/sandevgo/tuskmemo/internal/core"
	"github.com/sandevgo/tuskmemo/pkg/log"
	"github.com/spf13/cobra"
)

var (
	debug bool
)

var rootCmd = &cobra.Command{
	Use:   "tuskmemo",
	Short: "TuskMemo - pre-meeting briefing memos",
	Long: `TuskMemo turns a briefing bundle (event, attendee profiles, organization)
into a memo with context, talking points and a confidence rating.`,
	Version:      core.TaskVersion,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags available to all subcommands
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", config.IsDebug(), "enable debug logging")
}

func setupLogger(ctx context.Context) (context.Context, func()) {
	isDebug := debug || config.IsDebug()
	return log.NewContextWithLogger(ctx, isDebug)
}
