package cmd

import (
	"github.com/huangsam/starchart/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the starchart MCP server",
	Long:  `Launch an MCP server on stdio that lets AI agents list repositories, read series and align them via standard tools.`,
	Args:  cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return sharedSetup(rootCtx, cmd, nil)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, version)
	},
}
