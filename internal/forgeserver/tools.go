package forgeserver

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/physlab/simforge/internal/config"
	"github.com/physlab/simforge/internal/export"
	"github.com/physlab/simforge/internal/scaffold"
	"github.com/physlab/simforge/internal/verify"
	"github.com/physlab/simforge/internal/workspace"
)

type textOutput struct {
	Message string `json:"message"`
}

// scaffoldSimInput is the input for the scaffold_sim tool.
type scaffoldSimInput struct {
	Chapter int    `json:"chapter" jsonschema:"description=Chapter number (non-negative integer)"`
	Section int    `json:"section" jsonschema:"description=Section number (non-negative integer)"`
	Name    string `json:"name" jsonschema:"description=Simulation name in snake_case e.g. orders_of_magnitude"`
	Title   string `json:"title" jsonschema:"description=Display title shown in the window and page header. Defaults to the name."`
}

func handleScaffoldSim(ctx context.Context, req *mcp.CallToolRequest, input scaffoldSimInput) (*mcp.CallToolResult, textOutput, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, textOutput{}, err
	}

	ref, err := workspace.NewUnitRef(
		strconv.Itoa(input.Chapter), strconv.Itoa(input.Section), input.Name)
	if err != nil {
		return nil, textOutput{}, err
	}

	result, err := scaffold.Generate(cfg.WorkspaceRoot, ref, input.Title)
	if err != nil {
		return nil, textOutput{}, err
	}

	if _, err := workspace.Register(cfg.WorkspaceRoot, ref.RelDir()); err != nil {
		return nil, textOutput{}, err
	}

	return nil, textOutput{Message: fmt.Sprintf(
		"Created %s (%s) and registered it in go.work. Files: %s.",
		result.Dir, result.WindowTitle, strings.Join(result.Files, ", "))}, nil
}

// exportSimInput is the input for the export_sim tool.
type exportSimInput struct {
	Chapter    int    `json:"chapter" jsonschema:"description=Chapter number"`
	Section    int    `json:"section" jsonschema:"description=Section number"`
	Name       string `json:"name" jsonschema:"description=Simulation name"`
	OutputRoot string `json:"output_root" jsonschema:"description=Site output root directory. Defaults to the configured export root."`
}

func handleExportSim(ctx context.Context, req *mcp.CallToolRequest, input exportSimInput) (*mcp.CallToolResult, textOutput, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, textOutput{}, err
	}

	ref, err := workspace.NewUnitRef(
		strconv.Itoa(input.Chapter), strconv.Itoa(input.Section), input.Name)
	if err != nil {
		return nil, textOutput{}, err
	}

	outputRoot := input.OutputRoot
	if outputRoot == "" {
		outputRoot = cfg.DefaultExportRoot()
	}

	result, err := export.New(cfg).Export(ctx, ref, outputRoot)
	if err != nil {
		return nil, textOutput{}, err
	}

	return nil, textOutput{Message: fmt.Sprintf(
		"Exported %s. Bundle: %s. Page: %s/index.html.",
		ref, result.PkgDir, result.OutputDir)}, nil
}

// verifyWorkspaceInput is the input for the verify_workspace tool.
type verifyWorkspaceInput struct{}

func handleVerifyWorkspace(ctx context.Context, req *mcp.CallToolRequest, input verifyWorkspaceInput) (*mcp.CallToolResult, textOutput, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, textOutput{}, err
	}

	v := verify.New(cfg)
	if err := v.CheckWorkspace(ctx); err != nil {
		return nil, textOutput{}, err
	}

	report, err := v.CheckUnits(ctx, nil)
	if err != nil {
		return nil, textOutput{}, err
	}

	if !report.OK() {
		var failed []string
		for _, r := range report.Units {
			if !r.OK {
				failed = append(failed, r.Unit.Ref.String())
			}
		}
		return nil, textOutput{Message: fmt.Sprintf(
			"%d succeeded, %d failed. Failing simulations: %s.",
			report.Succeeded, report.Failed, strings.Join(failed, ", "))}, nil
	}

	return nil, textOutput{Message: fmt.Sprintf(
		"Workspace check passed; all %d simulations build.", report.Succeeded)}, nil
}
