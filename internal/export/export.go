// Package export builds a unit's web bundle and assembles the static
// site tree underneath an operator-chosen output root.
package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/physlab/simforge/internal/config"
	"github.com/physlab/simforge/internal/workspace"
)

// Runner executes the packaging subprocess. Tests substitute a stub.
type Runner func(ctx context.Context, dir string, env []string, name string, args ...string) ([]byte, error)

func defaultRunner(ctx context.Context, dir string, env []string, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), env...)
	return cmd.CombinedOutput()
}

// Exporter packages build-units for the web.
type Exporter struct {
	cfg    *config.Config
	runner Runner

	// WasmExec optionally overrides the wasm_exec.js source path.
	// Empty means resolve it from GOROOT.
	WasmExec string
}

// New creates an Exporter using the real Go toolchain.
func New(cfg *config.Config) *Exporter {
	return &Exporter{cfg: cfg, runner: defaultRunner}
}

// NewWithRunner creates an Exporter with a custom subprocess runner.
func NewWithRunner(cfg *config.Config, r Runner) *Exporter {
	return &Exporter{cfg: cfg, runner: r}
}

// Result describes a completed export.
type Result struct {
	Ref       workspace.UnitRef
	OutputDir string // <root>/chapter_<c>/section_<s>/<name>
	PkgDir    string // OutputDir/pkg
	Pages     []IndexPage
}

// Export compiles the unit to a wasm bundle under
// <outputRoot>/chapter_<c>/section_<s>/<name>/pkg, copies the HTML
// shell next to it, and ensures the navigation index pages exist.
// The unit's source directory must exist before the builder is invoked.
func (e *Exporter) Export(ctx context.Context, ref workspace.UnitRef, outputRoot string) (*Result, error) {
	srcDir := ref.Dir(e.cfg.WorkspaceRoot)
	if info, err := os.Stat(srcDir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("simulation %s not found at %s; run `simforge new` first", ref, srcDir)
	}

	outputRoot, err := absRoot(outputRoot)
	if err != nil {
		return nil, err
	}

	outDir := ref.Dir(outputRoot)
	pkgDir := filepath.Join(outDir, "pkg")
	if err := os.MkdirAll(pkgDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", pkgDir, err)
	}

	// Release-profile wasm build of the unit's entry point.
	wasmOut := filepath.Join(pkgDir, ref.Name+".wasm")
	env := []string{"GOOS=js", "GOARCH=wasm"}
	out, err := e.runner(ctx, srcDir, env, e.cfg.GoPath,
		"build", "-trimpath", "-ldflags", "-s -w", "-o", wasmOut, "./cmd")
	if err != nil {
		return nil, fmt.Errorf("wasm build failed: %w\n%s", err, out)
	}

	if err := e.copyWasmExec(pkgDir); err != nil {
		return nil, err
	}

	// Copy the HTML shell, when the unit has one.
	shell := filepath.Join(srcDir, "index.html")
	if _, err := os.Stat(shell); err == nil {
		if err := copyFile(shell, filepath.Join(outDir, "index.html")); err != nil {
			return nil, fmt.Errorf("failed to copy HTML shell: %w", err)
		}
	}

	pages, err := EnsureIndexesReport(outputRoot, e.cfg.SiteTitle(), ref)
	if err != nil {
		return nil, err
	}

	return &Result{Ref: ref, OutputDir: outDir, PkgDir: pkgDir, Pages: pages}, nil
}

// copyWasmExec places the Go wasm loader shim into the bundle.
func (e *Exporter) copyWasmExec(pkgDir string) error {
	src := e.WasmExec
	if src == "" {
		var err error
		src, err = config.WasmExecPath(e.cfg.GoPath)
		if err != nil {
			return err
		}
	}
	if err := copyFile(src, filepath.Join(pkgDir, "wasm_exec.js")); err != nil {
		return fmt.Errorf("failed to copy wasm_exec.js: %w", err)
	}
	return nil
}

// absRoot normalizes a possibly-relative output root against the
// invocation-time working directory. A leading ~ expands to the
// operator's home directory.
func absRoot(root string) (string, error) {
	if root == "" {
		return "", fmt.Errorf("output root is required")
	}
	if root == "~" || strings.HasPrefix(root, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to expand ~ in output root: %w", err)
		}
		root = filepath.Join(home, root[1:])
	}
	if filepath.IsAbs(root) {
		return filepath.Clean(root), nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return filepath.Join(cwd, root), nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
