package workspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeWork(t *testing.T, root, content string) string {
	t.Helper()
	path := filepath.Join(root, "go.work")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRegisterAddsUseDirective(t *testing.T) {
	root := t.TempDir()
	path := writeWork(t, root, "go 1.26\n\nuse .\n")

	added, err := Register(root, filepath.Join("chapter_1", "section_1", "boids"))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if !added {
		t.Fatal("expected added=true for a new member")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "./chapter_1/section_1/boids") {
		t.Fatalf("go.work missing new use directive:\n%s", data)
	}
	if !strings.Contains(string(data), "use") {
		t.Fatalf("go.work lost its use block:\n%s", data)
	}
}

func TestRegisterIsIdempotent(t *testing.T) {
	root := t.TempDir()
	path := writeWork(t, root, "go 1.26\n\nuse (\n\t.\n\t./chapter_1/section_1/boids\n)\n")
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	added, err := Register(root, filepath.Join("chapter_1", "section_1", "boids"))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if added {
		t.Fatal("expected added=false for an existing member")
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Fatalf("go.work changed on a no-op registration:\nbefore:\n%s\nafter:\n%s", before, after)
	}
}

func TestRegisterMissingWorkFile(t *testing.T) {
	if _, err := Register(t.TempDir(), "chapter_1/section_1/boids"); err == nil {
		t.Fatal("expected error when go.work is absent")
	}
}
