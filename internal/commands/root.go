package commands

import (
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "0.3.0"

var rootCmd = &cobra.Command{
	Use:     "simforge",
	Short:   "Scaffolding, export, and verification for physics simulations",
	Long:    "Simforge scaffolds new Ebitengine physics simulations, exports them as web bundles, and verifies that every simulation in the workspace compiles.",
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(mcpCmd)
}
