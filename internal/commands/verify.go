package commands

import (
	"fmt"

	"github.com/physlab/simforge/internal/config"
	"github.com/physlab/simforge/internal/terminal"
	"github.com/physlab/simforge/internal/verify"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Compile-check every simulation in the workspace",
	Long:  "Runs the workspace-wide check first, then an isolated compile check per discovered simulation, and reports aggregate pass/fail counts.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVerify(cmd)
	},
}

func runVerify(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	v := verify.New(cfg)

	terminal.Detail("Toolchain", config.GoVersion(cfg.GoPath))

	spinner := terminal.NewSpinner("Checking workspace...")
	spinner.Start()
	err = v.CheckWorkspace(cmd.Context())
	spinner.Stop()
	if err != nil {
		return err
	}
	terminal.Success("Workspace check passed")

	terminal.Header("Simulations")
	report, err := v.CheckUnits(cmd.Context(), func(r verify.UnitResult) {
		terminal.Unit(r.Unit.Ref.String(), r.OK, r.Elapsed)
	})
	if err != nil {
		return err
	}
	if len(report.Units) == 0 {
		terminal.Info("No simulations found")
		return nil
	}

	terminal.Divider()
	fmt.Printf("  %d succeeded, %d failed\n", report.Succeeded, report.Failed)
	if !report.OK() {
		for _, r := range report.Units {
			if !r.OK {
				terminal.Error(r.Unit.Ref.String())
				fmt.Print(r.Output)
			}
		}
		return fmt.Errorf("%d of %d simulations failed to build", report.Failed, len(report.Units))
	}
	terminal.Success("All simulations build")
	return nil
}
