package workspace

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/mod/modfile"
)

// Unit is a discovered build-unit: its identifier, on-disk location, and
// the package name declared by its manifest.
type Unit struct {
	Ref        UnitRef
	Dir        string // absolute path to the unit directory
	ModulePath string // module path from go.mod
	Package    string // last element of the module path
}

// Discover walks the chapter_*/section_*/*/ convention under root and
// returns every directory that carries a go.mod manifest, sorted by
// chapter, section, name. Convention-matching directories without a
// manifest are skipped; they are not an error.
func Discover(root string) ([]Unit, error) {
	chapters, err := numberedDirs(root, "chapter_")
	if err != nil {
		return nil, fmt.Errorf("failed to scan workspace: %w", err)
	}

	var units []Unit
	for _, ch := range chapters {
		sections, err := numberedDirs(filepath.Join(root, ch.name), "section_")
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", ch.name, err)
		}
		for _, sec := range sections {
			secDir := filepath.Join(root, ch.name, sec.name)
			entries, err := os.ReadDir(secDir)
			if err != nil {
				return nil, fmt.Errorf("failed to scan %s: %w", secDir, err)
			}
			for _, entry := range entries {
				if !entry.IsDir() || !namePattern.MatchString(entry.Name()) {
					continue
				}
				unitDir := filepath.Join(secDir, entry.Name())
				modulePath, err := ReadModulePath(filepath.Join(unitDir, "go.mod"))
				if err != nil {
					if os.IsNotExist(err) {
						continue // not a build-unit
					}
					return nil, err
				}
				units = append(units, Unit{
					Ref:        UnitRef{Chapter: ch.num, Section: sec.num, Name: entry.Name()},
					Dir:        unitDir,
					ModulePath: modulePath,
					Package:    path.Base(modulePath),
				})
			}
		}
	}

	sort.Slice(units, func(i, j int) bool {
		a, b := units[i].Ref, units[j].Ref
		if a.Chapter != b.Chapter {
			return a.Chapter < b.Chapter
		}
		if a.Section != b.Section {
			return a.Section < b.Section
		}
		return a.Name < b.Name
	})
	return units, nil
}

// ReadModulePath reads the module path declared by a go.mod file.
func ReadModulePath(gomod string) (string, error) {
	data, err := os.ReadFile(gomod)
	if err != nil {
		return "", err
	}
	f, err := modfile.ParseLax(gomod, data, nil)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", gomod, err)
	}
	if f.Module == nil || f.Module.Mod.Path == "" {
		return "", fmt.Errorf("%s declares no module path", gomod)
	}
	return f.Module.Mod.Path, nil
}

type numberedDir struct {
	name string
	num  int
}

// numberedDirs lists subdirectories of dir named <prefix><n> with n a
// non-negative integer, sorted by n.
func numberedDirs(dir, prefix string) ([]numberedDir, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var dirs []numberedDir
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}
		n, err := strconv.Atoi(entry.Name()[len(prefix):])
		if err != nil || n < 0 {
			continue
		}
		dirs = append(dirs, numberedDir{name: entry.Name(), num: n})
	}
	sort.Slice(dirs, func(i, j int) bool { return dirs[i].num < dirs[j].num })
	return dirs, nil
}
