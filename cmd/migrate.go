package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bmeddeb/gitlens/internal/contract"
	"github.com/bmeddeb/gitlens/internal/store"
)

// migrateCmd runs database migrations for the analytics store.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the analysis tracking store.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  gitlens migrate --store-backend sqlite

  # Migrate to specific version
  gitlens migrate --store-backend sqlite --target-version 1

  # Rollback to initial state
  gitlens migrate --store-backend sqlite --target-version 0`,
	// Resolve config only; migrations manage the connection themselves.
	PreRunE: func(_ *cobra.Command, args []string) error {
		return configSetup(args)
	},
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := store.Migrate(cfg.StoreBackend, cfg.StoreConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
