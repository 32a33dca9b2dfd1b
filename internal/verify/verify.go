// Package verify runs the workspace-wide compile check and the isolated
// per-unit checks, aggregating results into one report.
package verify

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/physlab/simforge/internal/config"
	"github.com/physlab/simforge/internal/workspace"
)

// Runner executes a compile-check subprocess. Tests substitute a stub.
type Runner func(ctx context.Context, dir, name string, args ...string) ([]byte, error)

func defaultRunner(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Env = os.Environ()
	return cmd.CombinedOutput()
}

// Verifier checks that the workspace and every build-unit compile.
type Verifier struct {
	cfg    *config.Config
	runner Runner
}

// New creates a Verifier using the real Go toolchain.
func New(cfg *config.Config) *Verifier {
	return &Verifier{cfg: cfg, runner: defaultRunner}
}

// NewWithRunner creates a Verifier with a custom subprocess runner.
func NewWithRunner(cfg *config.Config, r Runner) *Verifier {
	return &Verifier{cfg: cfg, runner: r}
}

// UnitResult is the outcome of one unit's isolated check.
type UnitResult struct {
	Unit    workspace.Unit
	OK      bool
	Output  string // subprocess output, kept only on failure
	Elapsed time.Duration
}

// Report aggregates the verification run.
type Report struct {
	Units     []UnitResult
	Succeeded int
	Failed    int
}

// OK reports whether every unit check passed.
func (r *Report) OK() bool {
	return r.Failed == 0
}

// CheckWorkspace runs the workspace-wide compile check. A failure here
// makes per-unit results meaningless, so callers abort on error.
func (v *Verifier) CheckWorkspace(ctx context.Context) error {
	out, err := v.runner(ctx, v.cfg.WorkspaceRoot, v.cfg.GoPath, "vet", "./...")
	if err != nil {
		return fmt.Errorf("workspace check failed: %w\n%s", err, out)
	}
	return nil
}

// CheckUnits discovers every build-unit and runs an isolated compile
// check per unit, continuing past individual failures. The onResult
// callback (optional) fires after each unit for progress reporting.
func (v *Verifier) CheckUnits(ctx context.Context, onResult func(UnitResult)) (*Report, error) {
	units, err := workspace.Discover(v.cfg.WorkspaceRoot)
	if err != nil {
		return nil, err
	}

	report := &Report{}
	for _, unit := range units {
		start := time.Now()
		out, err := v.runner(ctx, unit.Dir, v.cfg.GoPath, "build", "./...")
		result := UnitResult{
			Unit:    unit,
			OK:      err == nil,
			Elapsed: time.Since(start),
		}
		if err != nil {
			result.Output = string(out)
			report.Failed++
		} else {
			report.Succeeded++
		}
		report.Units = append(report.Units, result)
		if onResult != nil {
			onResult(result)
		}
	}
	return report, nil
}
