package main

import (
	"github.com/sandevgo/tuskmemo/internal/config"
	"github.com/sandevgo/tuskmemo/internal/service/installer"
	"github.com/sandevgo/tuskmemo/pkg/log"
	"github.com/spf13/cobra"
)

var (
	configForce    bool
	configDefaults bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the runtime configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a .env file to the runtime directory",
	Long: `Runs a short wizard and writes the answers to <runtime>/.env, then seeds
the bundles directory with an example bundle. With --defaults the wizard is
skipped and every value keeps its default.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		logger := log.FromCtx(ctx)
		runtimePath := config.GetRuntimePath()
		state := installer.NewInstallState(runtimePath, configForce)

		if !configDefaults {
			// run wizard (includes save step)
			if _, err := installer.RunWizard(state); err != nil {
				return err
			}
		} else {
			if _, err := installer.SaveEnv(state); err != nil {
				return err
			}
			if _, err := installer.WriteExampleBundle(state); err != nil {
				return err
			}
		}

		logger.Info().Str("path", state.App.GetEnvPath()).Msg("configuration written")
		logger.Info().Str("path", state.App.GetBundlesPath()).Msg("example bundle ready, try 'tuskmemo generate example'")
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing .env")
	configInitCmd.Flags().BoolVar(&configDefaults, "defaults", false, "skip the wizard and write defaults")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
