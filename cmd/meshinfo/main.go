// meshinfo is a CLI utility for inspecting text mesh descriptions.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Faultbox/hierarchy/internal/engine/model"
	"github.com/Faultbox/hierarchy/pkg/formats"
	"github.com/Faultbox/hierarchy/pkg/math"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		os.Exit(cmdInfo(args))
	case "check":
		os.Exit(cmdCheck(args))
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`meshinfo - mesh description utility

Usage:
  meshinfo <command> [options]

Commands:
  info <file.obj>...     Show vertex/face counts and bounds
  check <file.obj>...    Report malformed files and degenerate normals

Examples:
  meshinfo info bunny.obj dragon.obj
  meshinfo check -v *.obj`)
}

func cmdInfo(args []string) int {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	raw := fs.Bool("raw", false, "Show bounds as read, before normalization")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshinfo info [-raw] <file.obj>...")
		return 1
	}

	status := 0
	for _, path := range fs.Args() {
		obj, err := formats.ParseOBJFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			status = 1
			continue
		}
		m, err := model.Build(meshName(path), obj, model.BuildOptions{})
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			status = 1
			continue
		}

		fmt.Printf("Mesh:       %s\n", path)
		fmt.Printf("Vertices:   %d\n", m.VertexCount())
		fmt.Printf("Faces:      %d\n", m.FaceCount())
		if *raw {
			fmt.Printf("Centroid:   %s\n", formatVec(obj.Centroid()))
			fmt.Printf("Bounds:     %s .. %s\n", formatVec(obj.Min), formatVec(obj.Max))
		} else {
			b := m.Bounds()
			fmt.Printf("Bounds:     %s .. %s\n", formatVec(b.Min), formatVec(b.Max))
		}
		fmt.Printf("Degenerate: %d\n", len(m.DegenerateVertices()))
		fmt.Println()
	}
	return status
}

func cmdCheck(args []string) int {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	verbose := fs.Bool("v", false, "List every degenerate vertex")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshinfo check [-v] <file.obj>...")
		return 1
	}

	failed := 0
	for _, path := range fs.Args() {
		obj, err := formats.ParseOBJFile(path)
		if err != nil {
			var fe *formats.MeshFormatError
			if errors.As(err, &fe) && fe.Line > 0 {
				fmt.Printf("FAIL %s:%d: %v\n", path, fe.Line, fe.Err)
			} else {
				fmt.Printf("FAIL %s: %v\n", path, err)
			}
			failed++
			continue
		}

		m, err := model.Build(meshName(path), obj, model.BuildOptions{})
		if err != nil {
			fmt.Printf("FAIL %s: %v\n", path, err)
			failed++
			continue
		}

		degenerate := m.DegenerateVertices()
		if len(degenerate) == 0 {
			fmt.Printf("ok   %s\n", path)
			continue
		}

		fmt.Printf("WARN %s: %d vertices without a normal\n", path, len(degenerate))
		if *verbose {
			for _, i := range degenerate {
				fmt.Printf("       vertex %d at %s\n", i+1, formatVec(obj.Vertices[i]))
			}
		}
	}

	if failed > 0 {
		fmt.Printf("\n%d of %d files failed\n", failed, fs.NArg())
		return 1
	}
	return 0
}

func meshName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

func formatVec(v math.Vec3) string {
	return fmt.Sprintf("(%.4f, %.4f, %.4f)", v.X, v.Y, v.Z)
}
