package commands

import (
	"strings"
	"testing"
)

func TestResolveRefThreeArgs(t *testing.T) {
	ref, err := resolveRef([]string{"1", "2", "boids"})
	if err != nil {
		t.Fatalf("resolveRef: %v", err)
	}
	if ref.Chapter != 1 || ref.Section != 2 || ref.Name != "boids" {
		t.Fatalf("unexpected ref: %+v", ref)
	}
}

func TestResolveRefPartialArgs(t *testing.T) {
	for _, args := range [][]string{
		{"1"},
		{"1", "2"},
	} {
		_, err := resolveRef(args)
		if err == nil {
			t.Errorf("resolveRef(%v): expected error, got none", args)
			continue
		}
		if !strings.Contains(err.Error(), "usage:") {
			t.Errorf("resolveRef(%v): error should show usage: %v", args, err)
		}
	}
}

func TestResolveRefNoArgsNonInteractive(t *testing.T) {
	// Test runs detached from a terminal, so the prompt path is closed
	// and a bare invocation must fail with usage.
	_, err := resolveRef(nil)
	if err == nil {
		t.Fatal("expected error with no arguments and no terminal")
	}
	if !strings.Contains(err.Error(), "usage:") {
		t.Fatalf("error should show usage: %v", err)
	}
}

func TestResolveRefValidatesArgs(t *testing.T) {
	if _, err := resolveRef([]string{"one", "2", "boids"}); err == nil {
		t.Fatal("expected error for non-numeric chapter")
	}
	if _, err := resolveRef([]string{"1", "2", "Two-Body"}); err == nil {
		t.Fatal("expected error for invalid name")
	}
}
