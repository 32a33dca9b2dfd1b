package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// Register adds a unit directory to the workspace go.work file as a use
// directive. The edit is a read-modify-write with an existence check:
// an already-registered path is reported via the second return value and
// the file is left untouched.
func Register(root, relDir string) (added bool, err error) {
	workPath := filepath.Join(root, "go.work")
	data, err := os.ReadFile(workPath)
	if err != nil {
		return false, fmt.Errorf("failed to read go.work: %w", err)
	}
	wf, err := modfile.ParseWork(workPath, data, nil)
	if err != nil {
		return false, fmt.Errorf("failed to parse go.work: %w", err)
	}

	use := "./" + filepath.ToSlash(relDir)
	for _, u := range wf.Use {
		if u.Path == use || u.Path == filepath.ToSlash(relDir) {
			return false, nil
		}
	}

	if err := wf.AddUse(use, ""); err != nil {
		return false, fmt.Errorf("failed to add use directive: %w", err)
	}
	wf.SortBlocks()
	wf.Cleanup()

	if err := os.WriteFile(workPath, modfile.Format(wf.Syntax), 0o644); err != nil {
		return false, fmt.Errorf("failed to write go.work: %w", err)
	}
	return true, nil
}
