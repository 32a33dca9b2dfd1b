package export

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/physlab/simforge/internal/workspace"
)

// IndexPage reports the fate of one navigation page during an export.
type IndexPage struct {
	Path    string
	Created bool // false when an existing page was left untouched
}

// EnsureIndexes idempotently creates the three-level navigation tree
// for ref under the output root: root index, chapter index, section
// index. A page already on disk is never regenerated or merged — hand
// edits win over automatic aggregation. Newly created pages list every
// child currently present in the output tree, not just ref.
func EnsureIndexes(outputRoot, siteTitle string, ref workspace.UnitRef) error {
	_, err := EnsureIndexesReport(outputRoot, siteTitle, ref)
	return err
}

// EnsureIndexesReport is EnsureIndexes returning the per-page outcome,
// so callers can tell the operator which pages were skipped.
func EnsureIndexesReport(outputRoot, siteTitle string, ref workspace.UnitRef) ([]IndexPage, error) {
	chapterDir := filepath.Join(outputRoot, fmt.Sprintf("chapter_%d", ref.Chapter))
	sectionDir := filepath.Join(chapterDir, fmt.Sprintf("section_%d", ref.Section))

	pages := []struct {
		path   string
		render func() string
	}{
		{filepath.Join(outputRoot, "index.html"), func() string {
			return renderIndex(siteTitle, childLinks(outputRoot, "chapter_", "Chapter "))
		}},
		{filepath.Join(chapterDir, "index.html"), func() string {
			return renderIndex(fmt.Sprintf("Chapter %d", ref.Chapter), childLinks(chapterDir, "section_", "Section "))
		}},
		{filepath.Join(sectionDir, "index.html"), func() string {
			return renderIndex(fmt.Sprintf("Chapter %d, Section %d", ref.Chapter, ref.Section), unitLinks(sectionDir))
		}},
	}

	var report []IndexPage
	for _, p := range pages {
		if _, err := os.Stat(p.path); err == nil {
			report = append(report, IndexPage{Path: p.path})
			continue
		} else if !os.IsNotExist(err) {
			return report, fmt.Errorf("failed to check %s: %w", p.path, err)
		}
		if err := os.WriteFile(p.path, []byte(p.render()), 0o644); err != nil {
			return report, fmt.Errorf("failed to write %s: %w", p.path, err)
		}
		report = append(report, IndexPage{Path: p.path, Created: true})
	}
	return report, nil
}

type link struct {
	href  string
	label string
}

// childLinks lists <prefix><n> subdirectories of dir as navigation
// links, sorted numerically.
func childLinks(dir, prefix, label string) []link {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var nums []int
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}
		if n, err := strconv.Atoi(entry.Name()[len(prefix):]); err == nil && n >= 0 {
			nums = append(nums, n)
		}
	}
	sort.Ints(nums)
	links := make([]link, 0, len(nums))
	for _, n := range nums {
		links = append(links, link{
			href:  fmt.Sprintf("%s%d/", prefix, n),
			label: fmt.Sprintf("%s%d", label, n),
		})
	}
	return links
}

// unitLinks lists every subdirectory of a section directory as a
// navigation link; partially exported units stay reachable.
func unitLinks(dir string) []link {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var links []link
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		links = append(links, link{
			href:  entry.Name() + "/",
			label: strings.ReplaceAll(entry.Name(), "_", " "),
		})
	}
	sort.Slice(links, func(i, j int) bool { return links[i].href < links[j].href })
	return links
}

// renderIndex produces a minimal static listing page.
func renderIndex(title string, links []link) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("  <meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "  <title>%s</title>\n", title)
	b.WriteString("  <style>\n")
	b.WriteString("    body { margin: 0; background: #1a2330; color: #e6e6e6; font-family: sans-serif; }\n")
	b.WriteString("    main { max-width: 640px; margin: 40px auto; padding: 0 20px; }\n")
	b.WriteString("    a { color: #6fb3e0; text-decoration: none; }\n")
	b.WriteString("    li { margin: 6px 0; }\n")
	b.WriteString("  </style>\n</head>\n<body>\n  <main>\n")
	fmt.Fprintf(&b, "    <h1>%s</h1>\n", title)
	b.WriteString("    <ul>\n")
	for _, l := range links {
		fmt.Fprintf(&b, "      <li><a href=\"%s\">%s</a></li>\n", l.href, l.label)
	}
	b.WriteString("    </ul>\n  </main>\n</body>\n</html>\n")
	return b.String()
}
