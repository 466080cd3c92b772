package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bmeddeb/gitlens/core"
	"github.com/bmeddeb/gitlens/internal/contract"
)

// contributionsCmd summarizes per-author activity across the window.
var contributionsCmd = &cobra.Command{
	Use:   "contributions [repo-path]",
	Short: "Summarize per-author commits, line deltas and files changed.",
	Long: `Summarize each author's activity across the analyzed window.

Counts commits, added and removed lines and changed files per author,
diffing each commit against its first parent. Root commits diff against
the empty tree so initial imports are counted too.

Examples:
  # Contribution stats for the current repository
  gitlens contributions

  # Stats for a single author
  gitlens contributions --author alice`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteContributions(rootCtx, cfg, historySource, analyticsStore); err != nil {
			contract.LogFatal("Cannot run contribution analysis", err)
		}
	},
}

// divergenceCmd compares two refs against their merge base.
var divergenceCmd = &cobra.Command{
	Use:   "divergence <base-ref> <target-ref> [repo-path]",
	Short: "Show how two refs have diverged from their merge base.",
	Long: `Compare two Git references against their common ancestor.

Reports the merge base, commits ahead and behind, and the number of
paths whose content differs between the two refs.

Examples:
  # Compare a feature branch against main
  gitlens divergence main feature/login

  # Compare refs in another repository
  gitlens divergence v1.0.0 v2.0.0 ~/src/project`,
	Args: cobra.RangeArgs(2, 3),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if err := sharedSetup(rootCtx, cmd, args[2:]); err != nil {
			return err
		}
		cfg.BaseRef = args[0]
		cfg.TargetRef = args[1]
		return nil
	},
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteDivergence(rootCtx, cfg, historySource, analyticsStore); err != nil {
			contract.LogFatal("Cannot run divergence analysis", err)
		}
	},
}
