package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bmeddeb/gitlens/core"
	"github.com/bmeddeb/gitlens/internal/contract"
)

// timelineCmd aggregates commit counts into period buckets.
var timelineCmd = &cobra.Command{
	Use:   "timeline [repo-path]",
	Short: "Show commit activity bucketed by time period.",
	Long: `Aggregate commit history into sparse time-period buckets.

Buckets commits by hour, day, ISO week, month or year, counting each
commit exactly once. Periods with no commits are omitted.

Examples:
  # Daily activity for the current repository
  gitlens timeline

  # Weekly activity for another repository
  gitlens timeline --period week ~/src/project

  # Activity by one author since a date
  gitlens timeline --author alice --since 2026-01-01T00:00:00Z`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTimeline(rootCtx, cfg, historySource, analyticsStore); err != nil {
			contract.LogFatal("Cannot run timeline analysis", err)
		}
	},
}
