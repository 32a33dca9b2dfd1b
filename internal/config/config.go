package config

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// WorkFile is the workspace-wide build configuration at the workspace root.
const WorkFile = "go.work"

// fileName is the optional per-workspace settings file.
const fileName = ".simforge.yaml"

// Config holds the CLI configuration.
type Config struct {
	// GoPath is the path to the go binary.
	GoPath string

	// WorkspaceRoot is the directory containing go.work. All build-units
	// live under it as chapter_<c>/section_<s>/<name>/.
	WorkspaceRoot string

	// Settings are the optional operator overrides from .simforge.yaml.
	Settings Settings
}

// Settings are the operator-tunable values read from .simforge.yaml.
// Every field is optional; zero values fall back to built-in defaults.
type Settings struct {
	// ExportRoot is the default output root for exported bundles.
	ExportRoot string `yaml:"export_root"`

	// SiteTitle is the heading used on the generated root index page.
	SiteTitle string `yaml:"site_title"`
}

// Load validates the environment and returns a Config.
// The workspace root is found by walking up from the current directory
// to the nearest go.work file.
func Load() (*Config, error) {
	goPath, err := exec.LookPath("go")
	if err != nil {
		return nil, fmt.Errorf("go toolchain not found: %w\nInstall: https://go.dev/dl", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	root, err := FindWorkspaceRoot(cwd)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		GoPath:        goPath,
		WorkspaceRoot: root,
	}
	if err := cfg.loadSettings(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FindWorkspaceRoot walks up from dir to the nearest directory containing go.work.
func FindWorkspaceRoot(dir string) (string, error) {
	dir = filepath.Clean(dir)
	for {
		if _, err := os.Stat(filepath.Join(dir, WorkFile)); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("no go.work found in this or any parent directory; run from inside the simulation workspace")
		}
		dir = parent
	}
}

// loadSettings reads .simforge.yaml from the workspace root, if present.
func (c *Config) loadSettings() error {
	data, err := os.ReadFile(filepath.Join(c.WorkspaceRoot, fileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", fileName, err)
	}
	if err := yaml.Unmarshal(data, &c.Settings); err != nil {
		return fmt.Errorf("failed to parse %s: %w", fileName, err)
	}
	return nil
}

// DefaultExportRoot returns the output root for exported bundles:
// the .simforge.yaml override when set, otherwise ~/simforge-site.
func (c *Config) DefaultExportRoot() string {
	if c.Settings.ExportRoot != "" {
		return c.Settings.ExportRoot
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "simforge-site"
	}
	return filepath.Join(home, "simforge-site")
}

// SiteTitle returns the root index heading, defaulting to "Physics Simulations".
func (c *Config) SiteTitle() string {
	if c.Settings.SiteTitle != "" {
		return c.Settings.SiteTitle
	}
	return "Physics Simulations"
}

// GoVersion returns the installed Go toolchain version.
func GoVersion(goPath string) string {
	out, err := exec.Command(goPath, "version").Output()
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(string(out))
}

// WasmExecPath locates wasm_exec.js inside GOROOT. The file moved from
// misc/wasm to lib/wasm in Go 1.24; both locations are probed.
func WasmExecPath(goPath string) (string, error) {
	out, err := exec.Command(goPath, "env", "GOROOT").Output()
	if err != nil {
		return "", fmt.Errorf("failed to resolve GOROOT: %w", err)
	}
	goroot := strings.TrimSpace(string(out))
	for _, rel := range []string{
		filepath.Join("lib", "wasm", "wasm_exec.js"),
		filepath.Join("misc", "wasm", "wasm_exec.js"),
	} {
		p := filepath.Join(goroot, rel)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("wasm_exec.js not found under GOROOT %s", goroot)
}
