package scaffold

import (
	"fmt"
	"strings"
)

// unitModulePrefix is the module path prefix for generated build-units.
const unitModulePrefix = "github.com/physlab/sims/"

// simforgeModule is the workspace module hosting the simkit library.
const simforgeModule = "github.com/physlab/simforge"

// engineModule pins the engine version in generated manifests so unit
// builds resolve the same engine as the workspace module.
const engineModule = "github.com/hajimehoshi/ebiten/v2 v2.8.6"

// generateGoMod produces the unit manifest. The simforge dependency is
// path-relative: three levels up from chapter_<c>/section_<s>/<name>/.
func generateGoMod(name string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "module %s%s\n", unitModulePrefix, name)
	b.WriteString("\ngo 1.26\n")
	fmt.Fprintf(&b, "\nrequire %s v0.0.0\n", simforgeModule)
	fmt.Fprintf(&b, "\nrequire %s // indirect\n", engineModule)
	fmt.Fprintf(&b, "\nreplace %s => ../../../\n", simforgeModule)
	return b.String()
}

// generateSim produces the library entry point: an App with the window
// title, a one-time setup hook, and an empty per-frame update hook for
// the author to fill in.
func generateSim(name, windowTitle string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "// Package %s is the %q simulation.\n", name, windowTitle)
	fmt.Fprintf(&b, "package %s\n\n", name)
	b.WriteString("import (\n")
	b.WriteString("\t\"log\"\n\n")
	fmt.Fprintf(&b, "\t\"%s/simkit\"\n", simforgeModule)
	b.WriteString(")\n\n")
	b.WriteString("// Run builds the application and starts the engine run loop.\n")
	b.WriteString("func Run() error {\n")
	fmt.Fprintf(&b, "\tapp := simkit.NewApp(simkit.WindowTitle(%q))\n", windowTitle)
	b.WriteString("\tapp.OnSetup(setup)\n")
	b.WriteString("\tapp.OnUpdate(update)\n")
	b.WriteString("\treturn app.Run()\n")
	b.WriteString("}\n\n")
	b.WriteString("func setup(w *simkit.World) {\n")
	b.WriteString("\tw.SpawnCamera()\n")
	fmt.Fprintf(&b, "\tlog.Println(\"%s: simulation started\")\n", name)
	b.WriteString("}\n\n")
	b.WriteString("func update(w *simkit.World, dt float64) {\n")
	b.WriteString("\t// Simulation logic goes here.\n")
	b.WriteString("}\n")
	return b.String()
}

// generateMain produces the native entry point: a standalone executable
// wrapper around the library's Run. The web target builds the same
// package with GOOS=js GOARCH=wasm.
func generateMain(name string) string {
	var b strings.Builder
	b.WriteString("package main\n\n")
	b.WriteString("import (\n")
	b.WriteString("\t\"fmt\"\n")
	b.WriteString("\t\"os\"\n\n")
	fmt.Fprintf(&b, "\t\"%s%s\"\n", unitModulePrefix, name)
	b.WriteString(")\n\n")
	b.WriteString("func main() {\n")
	fmt.Fprintf(&b, "\tif err := %s.Run(); err != nil {\n", name)
	b.WriteString("\t\tfmt.Fprintf(os.Stderr, \"Error: %v\\n\", err)\n")
	b.WriteString("\t\tos.Exit(1)\n")
	b.WriteString("\t}\n")
	b.WriteString("}\n")
	return b.String()
}

// generateHTML produces the static shell that loads the exported wasm
// bundle, swapping the loading indicator for the engine canvas on
// success and showing the error text on failure.
func generateHTML(name, windowTitle string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>%[2]s</title>
  <style>
    body { margin: 0; background: #1a2330; color: #e6e6e6; font-family: sans-serif; }
    header { padding: 12px 20px; background: #111822; }
    header h1 { margin: 0; font-size: 18px; font-weight: 600; }
    #stage { display: flex; justify-content: center; padding: 20px; }
    #loading { padding: 40px; color: #8ba0b8; }
    canvas { outline: none; }
  </style>
</head>
<body>
  <header><h1>%[2]s</h1></header>
  <div id="stage">
    <div id="loading">Loading simulation…</div>
  </div>
  <script src="pkg/wasm_exec.js"></script>
  <script>
    const go = new Go();
    WebAssembly.instantiateStreaming(fetch("pkg/%[1]s.wasm"), go.importObject)
      .then((result) => {
        document.getElementById("loading").remove();
        go.run(result.instance);
      })
      .catch((err) => {
        document.getElementById("loading").textContent = "Failed to load simulation: " + err;
      });
  </script>
</body>
</html>
`, name, windowTitle)
}
