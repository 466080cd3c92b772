package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bmeddeb/gitlens/core"
	"github.com/bmeddeb/gitlens/internal/contract"
)

// churnCmd aggregates distinct-commit churn per path.
var churnCmd = &cobra.Command{
	Use:   "churn [repo-path]",
	Short: "Show per-file churn counted as distinct touching commits.",
	Long: `Aggregate how many distinct commits touched each path in the window.

A commit touching the same file twice still counts once. Each record
carries the last modification time, the authors in encounter order and
the dominant author when one exists.

Examples:
  # Churn for the current repository
  gitlens churn

  # Churn restricted to one subtree
  gitlens churn --filter internal/`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteChurn(rootCtx, cfg, historySource, analyticsStore); err != nil {
			contract.LogFatal("Cannot run churn analysis", err)
		}
	},
}

// frequencyCmd ranks paths by how often they change.
var frequencyCmd = &cobra.Command{
	Use:   "frequency [repo-path]",
	Short: "Rank files by change frequency.",
	Long: `Rank paths by how many commits changed them, most frequent first.

Ties keep the order paths were first encountered in history, so output
is stable across runs.

Examples:
  # Most frequently changed files
  gitlens frequency

  # Narrow to a recent window
  gitlens frequency --since 2026-06-01T00:00:00Z --limit 50`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteFrequency(rootCtx, cfg, historySource, analyticsStore); err != nil {
			contract.LogFatal("Cannot run frequency analysis", err)
		}
	},
}
