// Package scaffold generates new simulation build-units: a manifest, a
// library entry point, a native entry point, and the static HTML shell.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/physlab/simforge/internal/workspace"
)

// Result describes a successful generation.
type Result struct {
	Ref         workspace.UnitRef
	Dir         string   // absolute unit directory
	Files       []string // paths of the generated files, relative to Dir
	WindowTitle string
}

// Generate creates the build-unit for ref under the workspace root.
// An empty title defaults to the unit name. The target directory must
// not already exist; generation never overwrites or merges.
func Generate(root string, ref workspace.UnitRef, title string) (*Result, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		title = ref.Name
	}
	windowTitle := ref.WindowTitle(title)

	dir := ref.Dir(root)
	if _, err := os.Stat(dir); err == nil {
		return nil, fmt.Errorf("%s already exists; refusing to overwrite", dir)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to check %s: %w", dir, err)
	}

	if err := os.MkdirAll(filepath.Join(dir, "cmd"), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}

	type genFile struct {
		rel     string
		content string
	}
	files := []genFile{
		{"go.mod", generateGoMod(ref.Name)},
		{ref.Name + ".go", generateSim(ref.Name, windowTitle)},
		{filepath.Join("cmd", "main.go"), generateMain(ref.Name)},
		{"index.html", generateHTML(ref.Name, windowTitle)},
	}

	result := &Result{Ref: ref, Dir: dir, WindowTitle: windowTitle}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(dir, f.rel), []byte(f.content), 0o644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", f.rel, err)
		}
		result.Files = append(result.Files, f.rel)
	}
	return result, nil
}
