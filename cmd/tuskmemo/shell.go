package main

import (
	"os"
	"os/signal"

	"github.com/sandevgo/tuskmemo/internal/service/briefing"
	"github.com/sandevgo/tuskmemo/internal/service/command"
	"github.com/sandevgo/tuskmemo/internal/transport/cli"
	"github.com/spf13/cobra"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive shell with the chat commands",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		app := NewApp(ctx)
		router := command.NewRouter(app.briefing, briefing.TransportCLI)

		rl, err := cli.NewReadLine(ctx, router, app.briefing, app.cfg)
		if err != nil {
			return err
		}
		defer rl.Shutdown(ctx)

		return rl.Start(ctx)
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
