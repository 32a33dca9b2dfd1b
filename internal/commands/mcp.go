package commands

import (
	"github.com/physlab/simforge/internal/forgeserver"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:    "mcp",
	Short:  "Run the simforge MCP server (used by AI coding agents)",
	Long:   "Starts the simforge MCP server over stdio, exposing scaffold, export, and verify as typed tool calls.",
	Hidden: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return forgeserver.Run(cmd.Context())
	},
}
