package commands

import (
	"fmt"

	"github.com/physlab/simforge/internal/config"
	"github.com/physlab/simforge/internal/export"
	"github.com/physlab/simforge/internal/terminal"
	"github.com/physlab/simforge/internal/workspace"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [chapter section name]",
	Short: "Build a simulation's web bundle and site pages",
	Long:  "Compiles the simulation to WebAssembly, copies its HTML shell, and creates any missing navigation index pages under the output root.",
	Args:  cobra.RangeArgs(0, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(cmd, args)
	},
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ref, err := resolveRef(args)
	if err != nil {
		return err
	}

	outputRoot := terminal.AskDefault("Output root", cfg.DefaultExportRoot())

	spinner := terminal.NewSpinner(fmt.Sprintf("Exporting %s...", ref))
	spinner.Start()
	result, err := export.New(cfg).Export(cmd.Context(), ref, outputRoot)
	spinner.Stop()
	if err != nil {
		return err
	}

	terminal.Success(fmt.Sprintf("Exported %s", ref))
	terminal.Detail("Bundle", result.PkgDir)
	terminal.Detail("Page", result.OutputDir)
	for _, page := range result.Pages {
		if !page.Created {
			terminal.Warning(fmt.Sprintf("Left existing index untouched: %s (new simulations are not auto-listed; curate by hand)", page.Path))
		}
	}
	return nil
}

// resolveRef builds a UnitRef from three positional arguments, prompting
// for any that were omitted. All three are required.
func resolveRef(args []string) (workspace.UnitRef, error) {
	var chapter, section, name string
	switch len(args) {
	case 3:
		chapter, section, name = args[0], args[1], args[2]
	case 0:
		if !terminal.IsInteractive() {
			return workspace.UnitRef{}, fmt.Errorf("usage: simforge export <chapter> <section> <name>")
		}
		chapter = terminal.Ask("Chapter number")
		section = terminal.Ask("Section number")
		name = terminal.Ask("Simulation name")
	default:
		return workspace.UnitRef{}, fmt.Errorf("usage: simforge export <chapter> <section> <name> (got %d of 3 arguments)", len(args))
	}
	return workspace.NewUnitRef(chapter, section, name)
}
