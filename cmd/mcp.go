package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bmeddeb/gitlens/internal/mcp"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the GitLens MCP server",
	Long:  `Launch an MCP server that allows AI agents to run history analyses via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Configuration still resolves normally; stdout is reserved for
		// the protocol so commands must not print to it.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, historySource)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
