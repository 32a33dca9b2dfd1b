package export

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/physlab/simforge/internal/config"
	"github.com/physlab/simforge/internal/workspace"
)

type runnerCall struct {
	dir  string
	args []string
}

// stubRunner records invocations and writes a fake wasm artifact.
func stubRunner(calls *[]runnerCall) Runner {
	return func(ctx context.Context, dir string, env []string, name string, args ...string) ([]byte, error) {
		*calls = append(*calls, runnerCall{dir: dir, args: args})
		for i, a := range args {
			if a == "-o" && i+1 < len(args) {
				if err := os.WriteFile(args[i+1], []byte("wasm"), 0o644); err != nil {
					return nil, err
				}
			}
		}
		return nil, nil
	}
}

func testSetup(t *testing.T) (*config.Config, workspace.UnitRef, string) {
	t.Helper()
	root := t.TempDir()
	ref := workspace.UnitRef{Chapter: 1, Section: 1, Name: "orders_of_magnitude"}

	srcDir := ref.Dir(root)
	if err := os.MkdirAll(srcDir, 0o755); err != nil {
		t.Fatal(err)
	}
	shell := "<html><title>Chapter 1.1 - Orders of Magnitude</title></html>\n"
	if err := os.WriteFile(filepath.Join(srcDir, "index.html"), []byte(shell), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{GoPath: "go", WorkspaceRoot: root}
	return cfg, ref, t.TempDir()
}

func newTestExporter(t *testing.T, cfg *config.Config, calls *[]runnerCall) *Exporter {
	t.Helper()
	e := NewWithRunner(cfg, stubRunner(calls))
	wasmExec := filepath.Join(t.TempDir(), "wasm_exec.js")
	if err := os.WriteFile(wasmExec, []byte("// shim\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	e.WasmExec = wasmExec
	return e
}

func TestExportProducesBundleAndIndexes(t *testing.T) {
	cfg, ref, outRoot := testSetup(t)
	var calls []runnerCall
	e := newTestExporter(t, cfg, &calls)

	result, err := e.Export(context.Background(), ref, outRoot)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	if len(calls) != 1 {
		t.Fatalf("builder invoked %d times, want 1", len(calls))
	}
	if calls[0].dir != ref.Dir(cfg.WorkspaceRoot) {
		t.Errorf("builder ran in %s, want unit source dir", calls[0].dir)
	}
	joined := strings.Join(calls[0].args, " ")
	for _, want := range []string{"build", "-trimpath", "./cmd"} {
		if !strings.Contains(joined, want) {
			t.Errorf("builder args missing %q: %v", want, calls[0].args)
		}
	}

	wantFiles := []string{
		filepath.Join(result.PkgDir, "orders_of_magnitude.wasm"),
		filepath.Join(result.PkgDir, "wasm_exec.js"),
		filepath.Join(result.OutputDir, "index.html"),
		filepath.Join(outRoot, "index.html"),
		filepath.Join(outRoot, "chapter_1", "index.html"),
		filepath.Join(outRoot, "chapter_1", "section_1", "index.html"),
	}
	for _, f := range wantFiles {
		if _, err := os.Stat(f); err != nil {
			t.Errorf("missing output %s: %v", f, err)
		}
	}
}

func TestExportFailsBeforeBuildWhenSourceMissing(t *testing.T) {
	cfg, _, outRoot := testSetup(t)
	var calls []runnerCall
	e := newTestExporter(t, cfg, &calls)

	missing := workspace.UnitRef{Chapter: 9, Section: 9, Name: "nonexistent"}
	if _, err := e.Export(context.Background(), missing, outRoot); err == nil {
		t.Fatal("expected error for missing source directory")
	}
	if len(calls) != 0 {
		t.Fatalf("builder invoked %d times for a missing unit, want 0", len(calls))
	}
}

func TestExportRequiresOutputRoot(t *testing.T) {
	cfg, ref, _ := testSetup(t)
	var calls []runnerCall
	e := newTestExporter(t, cfg, &calls)

	if _, err := e.Export(context.Background(), ref, ""); err == nil {
		t.Fatal("expected error for empty output root")
	}
}

func TestExportSurfacesBuilderFailure(t *testing.T) {
	cfg, ref, outRoot := testSetup(t)
	e := NewWithRunner(cfg, func(ctx context.Context, dir string, env []string, name string, args ...string) ([]byte, error) {
		return []byte("cmd/main.go:7: undefined: boids.Run"), errors.New("exit status 1")
	})

	_, err := e.Export(context.Background(), ref, outRoot)
	if err == nil {
		t.Fatal("expected error when the builder fails")
	}
	if !strings.Contains(err.Error(), "wasm build failed") {
		t.Fatalf("error missing build context: %v", err)
	}
	if !strings.Contains(err.Error(), "undefined: boids.Run") {
		t.Fatalf("error should carry subprocess output: %v", err)
	}
}

func TestAbsRootExpandsTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home dir in test environment")
	}

	got, err := absRoot("~/sims")
	if err != nil {
		t.Fatalf("absRoot: %v", err)
	}
	if want := filepath.Join(home, "sims"); got != want {
		t.Fatalf("absRoot(~/sims) = %q, want %q", got, want)
	}

	got, err = absRoot("~")
	if err != nil {
		t.Fatalf("absRoot: %v", err)
	}
	if got != home {
		t.Fatalf("absRoot(~) = %q, want %q", got, home)
	}
}

func TestExportLeavesExistingIndexUntouched(t *testing.T) {
	cfg, ref, outRoot := testSetup(t)
	var calls []runnerCall
	e := newTestExporter(t, cfg, &calls)

	if _, err := e.Export(context.Background(), ref, outRoot); err != nil {
		t.Fatalf("first Export: %v", err)
	}

	// Hand-edit the section index, then export again.
	sectionIndex := filepath.Join(outRoot, "chapter_1", "section_1", "index.html")
	edited := []byte("<html><body>hand curated</body></html>\n")
	if err := os.WriteFile(sectionIndex, edited, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := e.Export(context.Background(), ref, outRoot); err != nil {
		t.Fatalf("second Export: %v", err)
	}

	data, err := os.ReadFile(sectionIndex)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != string(edited) {
		t.Fatalf("second export rewrote an existing index page:\n%s", data)
	}
}

func TestEnsureIndexesListsPresentChildren(t *testing.T) {
	outRoot := t.TempDir()
	for _, rel := range []string{
		"chapter_1/section_1/orders_of_magnitude",
		"chapter_1/section_1/vectors",
		"chapter_2/section_1/kinematics",
	} {
		if err := os.MkdirAll(filepath.Join(outRoot, filepath.FromSlash(rel)), 0o755); err != nil {
			t.Fatal(err)
		}
	}

	ref := workspace.UnitRef{Chapter: 1, Section: 1, Name: "orders_of_magnitude"}
	report, err := EnsureIndexesReport(outRoot, "Physics Simulations", ref)
	if err != nil {
		t.Fatalf("EnsureIndexesReport: %v", err)
	}
	for _, p := range report {
		if !p.Created {
			t.Errorf("page %s not created on fresh tree", p.Path)
		}
	}

	rootIndex, err := os.ReadFile(filepath.Join(outRoot, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"chapter_1/", "chapter_2/", "Physics Simulations"} {
		if !strings.Contains(string(rootIndex), want) {
			t.Errorf("root index missing %q:\n%s", want, rootIndex)
		}
	}

	sectionIndex, err := os.ReadFile(filepath.Join(outRoot, "chapter_1", "section_1", "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"orders_of_magnitude/", "vectors/", "orders of magnitude"} {
		if !strings.Contains(string(sectionIndex), want) {
			t.Errorf("section index missing %q:\n%s", want, sectionIndex)
		}
	}
}

func TestEnsureIndexesIdempotent(t *testing.T) {
	outRoot := t.TempDir()
	ref := workspace.UnitRef{Chapter: 1, Section: 1, Name: "boids"}
	if err := os.MkdirAll(ref.Dir(outRoot), 0o755); err != nil {
		t.Fatal(err)
	}

	if err := EnsureIndexes(outRoot, "Sims", ref); err != nil {
		t.Fatalf("first EnsureIndexes: %v", err)
	}
	report, err := EnsureIndexesReport(outRoot, "Sims", ref)
	if err != nil {
		t.Fatalf("second EnsureIndexesReport: %v", err)
	}
	for _, p := range report {
		if p.Created {
			t.Errorf("page %s recreated on second run", p.Path)
		}
	}
}
