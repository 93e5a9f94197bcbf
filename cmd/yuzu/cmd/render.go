package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-yuzu/yuzu/cmd/yuzu/internal/config"
	"github.com/go-yuzu/yuzu/cmd/yuzu/internal/manifest"
	"github.com/go-yuzu/yuzu/pkg/vdom"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render a manifest to HTML",
		Long: `Render a YAML manifest describing a descriptor tree to static HTML.

The manifest is materialized through the same engine path a live
application uses and serialized. Output goes to stdout unless -o or
the render.output setting in yuzu.yaml says otherwise.

Examples:
  yuzu render app.yaml
  yuzu render app.yaml -o public/index.html`,
		Usage: "yuzu render <manifest.yaml> [-o output.html]",
		Run:   runRender,
	})
}

func runRender(args []string) error {
	var manifestPath, outputPath string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-o", "--output":
			if i+1 >= len(args) {
				return fmt.Errorf("-o requires a file path")
			}
			outputPath = args[i+1]
			i++
		default:
			if manifestPath != "" {
				return fmt.Errorf("unexpected argument %q", args[i])
			}
			manifestPath = args[i]
		}
	}
	if manifestPath == "" {
		return fmt.Errorf("manifest file is required\n\nUsage: yuzu render <manifest.yaml> [-o output.html]")
	}

	if outputPath == "" {
		// The project config may name a default output. Rendering
		// outside a module is fine; there is just no config to consult.
		if root, err := config.FindProjectRoot(); err == nil {
			if resolved, err := config.Resolve(root); err == nil && resolved.Output != "" {
				outputPath = filepath.Join(root, resolved.Output)
			}
		}
	}

	m, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}

	node := vdom.Materialize(m.Build())
	if node == nil {
		return fmt.Errorf("manifest produced no renderable tree")
	}
	html := node.OuterHTML() + "\n"

	if outputPath == "" {
		fmt.Print(html)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(outputPath, []byte(html), 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Printf("Rendered %s -> %s\n", manifestPath, outputPath)
	return nil
}
