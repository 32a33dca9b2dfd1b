// Package workspace models the chapter_<c>/section_<s>/<name>/ directory
// convention that identifies every simulation build-unit, and the go.work
// file that ties the units into one workspace.
package workspace

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// namePattern restricts unit names to lowercase snake_case identifiers,
// so they stay valid as Go package names and URL path segments.
var namePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// UnitRef identifies one build-unit within the workspace.
type UnitRef struct {
	Chapter int
	Section int
	Name    string
}

// NewUnitRef validates raw operator input and builds a UnitRef.
// Chapter and section must parse as non-negative integers and the name
// must be a snake_case identifier.
func NewUnitRef(chapter, section, name string) (UnitRef, error) {
	c, err := parseSegment("chapter", chapter)
	if err != nil {
		return UnitRef{}, err
	}
	s, err := parseSegment("section", section)
	if err != nil {
		return UnitRef{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return UnitRef{}, fmt.Errorf("simulation name is required")
	}
	if !namePattern.MatchString(name) {
		return UnitRef{}, fmt.Errorf("invalid simulation name %q: must be lowercase snake_case (e.g. orders_of_magnitude)", name)
	}
	return UnitRef{Chapter: c, Section: s, Name: name}, nil
}

func parseSegment(label, raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%s number is required", label)
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s number %q: must be a non-negative integer", label, raw)
	}
	return n, nil
}

// RelDir returns the unit's directory relative to the workspace root.
func (r UnitRef) RelDir() string {
	return filepath.Join(
		fmt.Sprintf("chapter_%d", r.Chapter),
		fmt.Sprintf("section_%d", r.Section),
		r.Name,
	)
}

// Dir returns the unit's directory under the given workspace root.
func (r UnitRef) Dir(root string) string {
	return filepath.Join(root, r.RelDir())
}

// Label returns the "Chapter <c>.<s>" prefix used in window titles and
// index pages.
func (r UnitRef) Label() string {
	return fmt.Sprintf("Chapter %d.%d", r.Chapter, r.Section)
}

// WindowTitle returns the full window/page title for the unit.
func (r UnitRef) WindowTitle(displayTitle string) string {
	return fmt.Sprintf("%s - %s", r.Label(), displayTitle)
}

// String returns the slash-joined identifier, e.g. "1/1/orders_of_magnitude".
func (r UnitRef) String() string {
	return fmt.Sprintf("%d/%d/%s", r.Chapter, r.Section, r.Name)
}
