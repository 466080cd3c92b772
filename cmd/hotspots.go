package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bmeddeb/gitlens/core"
	"github.com/bmeddeb/gitlens/internal/contract"
)

// hotspotsCmd ranks source files by churn weighted with a size proxy.
var hotspotsCmd = &cobra.Command{
	Use:   "hotspots [repo-path]",
	Short: "Rank source files by churn weighted with current size.",
	Long: `Rank currently tracked source files by a hotspot factor.

The factor multiplies distinct-commit churn by the square root of the
file's current line count, so large files that change often float to
the top. Vendored directories and non-source extensions are excluded.

Examples:
  # Top hotspots for the current repository
  gitlens hotspots

  # Export the ranking for later analysis
  gitlens hotspots --output csv --output-file hotspots.csv
  gitlens hotspots --parquet-file hotspots.parquet`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteHotspots(rootCtx, cfg, historySource, analyticsStore); err != nil {
			contract.LogFatal("Cannot run hotspot analysis", err)
		}
	},
}
