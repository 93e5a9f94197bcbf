// Package main provides the Yuzu showcase: a set of small components
// demonstrating idiomatic patterns, rendered to static HTML.
//
// Run with an output directory to write one page per demo, or without
// arguments to print everything to stdout:
//
//	go run ./showcase
//	go run ./showcase out/
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-yuzu/yuzu/pkg/dom"
	"github.com/go-yuzu/yuzu/pkg/vdom"
)

func main() {
	outDir := ""
	if len(os.Args) > 1 {
		outDir = os.Args[1]
	}

	for _, demo := range demos {
		html, err := renderDemo(demo)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering %s: %v\n", demo.Slug, err)
			os.Exit(1)
		}

		if outDir == "" {
			fmt.Printf("=== %s: %s ===\n%s\n\n", demo.Title, demo.Subtitle, html)
			continue
		}

		path := filepath.Join(outDir, demo.Slug+".html")
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", outDir, err)
			os.Exit(1)
		}
		if err := os.WriteFile(path, []byte(html+"\n"), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", path)
	}
}

// renderDemo mounts a demo, runs its exercise steps, and serializes the
// final tree.
func renderDemo(demo Demo) (string, error) {
	body := dom.NewElement("body")
	attach := dom.NewElement("div")
	body.AppendChild(attach)

	inst, err := vdom.Mount(demo.Ctor, attach)
	if err != nil {
		return "", err
	}
	defer inst.Unmount()

	if demo.Exercise != nil {
		demo.Exercise(inst)
	}
	return inst.Node().OuterHTML(), nil
}
