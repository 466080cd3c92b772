package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bmeddeb/gitlens/core"
	"github.com/bmeddeb/gitlens/internal/contract"
)

// ownershipCmd attributes current lines to the authors who last changed them.
var ownershipCmd = &cobra.Command{
	Use:   "ownership [repo-path]",
	Short: "Attribute current lines of source files to their last authors.",
	Long: `Attribute every current line of every tracked source file to the
author who last changed it, with per-directory rollups.

Files whose attribution fails are skipped and reported; they never
abort the whole pass.

Examples:
  # Ownership for the current repository
  gitlens ownership

  # Machine-readable attribution
  gitlens ownership --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteOwnership(rootCtx, cfg, historySource, analyticsStore); err != nil {
			contract.LogFatal("Cannot run ownership analysis", err)
		}
	},
}

// knowledgeCmd builds per-author expertise profiles.
var knowledgeCmd = &cobra.Command{
	Use:   "knowledge [repo-path]",
	Short: "Build per-author expertise profiles from line attribution.",
	Long: `Invert line attribution into per-author knowledge profiles.

For each author, reports owned lines per file, per directory and per
language extension, plus the author's share of all attributed lines.

Examples:
  # Knowledge map for the current repository
  gitlens knowledge

  # Export profiles as Parquet
  gitlens knowledge --parquet-file knowledge.parquet`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteKnowledge(rootCtx, cfg, historySource, analyticsStore); err != nil {
			contract.LogFatal("Cannot run knowledge analysis", err)
		}
	},
}
