// Package forgeserver exposes the scaffold, export, and verify
// operations as MCP tools over stdio.
package forgeserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Run starts the simforge MCP server over stdio.
// It blocks until the client disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "simforge",
			Version: "v1.0.0",
		},
		nil,
	)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "scaffold_sim",
		Description: "Scaffold a new physics simulation in the workspace. Creates chapter_<c>/section_<s>/<name>/ with a go.mod manifest, library and native entry points, and an HTML shell. Fails if the directory already exists. Example: scaffold_sim(chapter: 1, section: 1, name: \"orders_of_magnitude\", title: \"Orders of Magnitude\")",
	}, handleScaffoldSim)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "export_sim",
		Description: "Compile a simulation to a WebAssembly bundle under the output root, copy its HTML shell, and create any missing navigation index pages. Existing index pages are never overwritten.",
	}, handleExportSim)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "verify_workspace",
		Description: "Run the workspace-wide compile check, then an isolated compile check for every discovered simulation. Returns aggregate pass/fail counts. Read-only apart from Go build caches.",
	}, handleVerifyWorkspace)

	return server.Run(ctx, &mcp.StdioTransport{})
}
