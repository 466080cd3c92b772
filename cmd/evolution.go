package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bmeddeb/gitlens/core"
	"github.com/bmeddeb/gitlens/internal/contract"
)

// evolutionCmd traces one file's history across renames.
var evolutionCmd = &cobra.Command{
	Use:   "evolution <file-path> [repo-path]",
	Short: "Trace a file's history across renames with per-commit line deltas.",
	Long: `Follow one file through its rename chain, newest commit first.

For each commit that touched the file, reports the author, timestamp,
message and line additions/removals computed from the patch.

Examples:
  # Trace a file in the current repository
  gitlens evolution internal/server.go

  # Trace a file in another repository
  gitlens evolution src/main.py ~/src/project`,
	Args: cobra.RangeArgs(1, 2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if err := sharedSetup(rootCtx, cmd, args[1:]); err != nil {
			return err
		}
		cfg.FilePath = args[0]
		return nil
	},
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteEvolution(rootCtx, cfg, historySource, analyticsStore); err != nil {
			contract.LogFatal("Cannot run evolution analysis", err)
		}
	},
}
