package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sandevgo/tuskmemo/internal/transport/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve memo tools over MCP stdio",
	Long:  `Runs an MCP server on stdin/stdout exposing the list_bundles and generate_memo tools. Logs go to stderr.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		app := NewApp(ctx)
		defer app.fetcher.Close()

		return mcp.NewServer(app.briefing, app.fetcher, os.Stdin, os.Stdout).Start(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
