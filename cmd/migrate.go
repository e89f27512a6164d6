package main

import (
	"wellbeing/config"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Args:  cobra.NoArgs,
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	db, err := config.Database(cfg.DB, log)
	if err != nil {
		return err
	}
	if err := config.Migrate(db); err != nil {
		return err
	}
	log.Info("migration complete")
	return nil
}
