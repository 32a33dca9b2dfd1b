package commands

import (
	"fmt"

	"github.com/physlab/simforge/internal/config"
	"github.com/physlab/simforge/internal/scaffold"
	"github.com/physlab/simforge/internal/terminal"
	"github.com/physlab/simforge/internal/workspace"
	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Scaffold a new simulation",
	Long:  "Interactively collects a chapter number, section number, snake_case name, and display title, then generates the simulation's manifest, entry points, and HTML shell.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNew()
	},
}

func runNew() error {
	// Print welcome banner first (before config load which may fail)
	terminal.Banner(Version)

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	terminal.Header("New simulation")
	chapter := terminal.Ask("Chapter number")
	section := terminal.Ask("Section number")
	name := terminal.Ask("Simulation name (snake_case)")

	ref, err := workspace.NewUnitRef(chapter, section, name)
	if err != nil {
		return err
	}

	title := terminal.AskDefault("Display title", ref.Name)

	result, err := scaffold.Generate(cfg.WorkspaceRoot, ref, title)
	if err != nil {
		return err
	}

	terminal.Success(fmt.Sprintf("Created %s", result.Dir))
	for _, f := range result.Files {
		terminal.Detail("File", f)
	}
	terminal.Detail("Window title", result.WindowTitle)

	if terminal.Confirm("Register in go.work?") {
		added, err := workspace.Register(cfg.WorkspaceRoot, ref.RelDir())
		if err != nil {
			return err
		}
		if added {
			terminal.Success("Registered in go.work")
		} else {
			terminal.Info("Already registered in go.work")
		}
	}

	terminal.Header("Next steps")
	terminal.Detail("Run natively", fmt.Sprintf("go run ./%s/cmd", ref.RelDir()))
	terminal.Detail("Export for web", fmt.Sprintf("simforge export %d %d %s", ref.Chapter, ref.Section, ref.Name))
	return nil
}
