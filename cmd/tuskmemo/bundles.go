package main

import (
	"fmt"

	"github.com/sandevgo/tuskmemo/internal/service/ui"
	"github.com/spf13/cobra"
)

var bundlesCmd = &cobra.Command{
	Use:   "bundles",
	Short: "List bundles in the bundles directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		app := NewApp(ctx)
		names, err := app.briefing.Bundles(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(names) == 0 {
			fmt.Fprintln(out, ui.DescStyle.Render("No bundles in "+app.cfg.GetBundlesPath()))
			return nil
		}
		for _, name := range names {
			fmt.Fprintln(out, name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(bundlesCmd)
}
