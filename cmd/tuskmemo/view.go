package main

import (
	"os"

	"github.com/sandevgo/tuskmemo/internal/service/briefing"
	"github.com/sandevgo/tuskmemo/internal/transport/tui"
	"github.com/spf13/cobra"
)

var (
	viewFile string
	viewURL  string
)

var viewCmd = &cobra.Command{
	Use:   "view [bundle]",
	Short: "Read a memo in a terminal pager",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		app := NewApp(ctx)
		ctx = briefing.WithRequestID(ctx, briefing.TransportCLI)

		m, err := loadMemo(ctx, app, args, viewFile, viewURL)
		if err != nil {
			return err
		}
		return tui.Run(ctx, m, os.Stdin, cmd.OutOrStdout())
	},
}

func init() {
	viewCmd.Flags().StringVarP(&viewFile, "file", "f", "", "read the bundle from a JSON or YAML file")
	viewCmd.Flags().StringVarP(&viewURL, "url", "u", "", "fetch the bundle from a URL")
	rootCmd.AddCommand(viewCmd)
}
