package main

import (
	"fmt"
	"os"

	"wellbeing/config"
	"wellbeing/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configDir string

var rootCmd = &cobra.Command{
	Use:   "wellbeing",
	Short: "Wellbeing journal backend",
	Long: `wellbeing serves the daily gratitude, happiness and wellness journal API.
Configuration is read from <config-dir>/base.yaml, <config-dir>/$CONFIG_ENV.yaml,
.env and the environment, in that order.`,
	SilenceUsage: true,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "config", "directory holding base.yaml")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(tokenCmd)
}

// loadConfig reads the configuration and installs the process logger.
func loadConfig() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configDir)
	if err != nil {
		return nil, nil, err
	}
	log, err := utils.NewLogger(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, log, nil
}
