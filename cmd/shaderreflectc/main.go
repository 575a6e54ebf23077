// Command shaderreflectc reflects a WGSL shader and emits its artifacts.
//
// Usage:
//
//	shaderreflectc [options] <input.wgsl>
//
// Examples:
//
//	shaderreflectc shader.wgsl                          # Print reflection JSON
//	shaderreflectc -decl shader.gen.go shader.wgsl      # Write the declaration file
//	shaderreflectc -entry fs_main shader.wgsl           # Select an entry point
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/shaderreflect"
)

var (
	name    = flag.String("name", "", "shader name (default: input file basename)")
	entry   = flag.String("entry", "", "entry point to reflect (default: the module's only one)")
	pkg     = flag.String("pkg", "shaders", "package clause of generated Go files")
	declOut = flag.String("decl", "", "declaration output file")
	implOut = flag.String("impl", "", "implementation output file")
	jsonOut = flag.String("json", "", "reflection JSON output file (default: stdout)")
	version = flag.Bool("version", false, "print version")
)

const toolVersion = "0.1.0-dev"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Printf("shaderreflectc version %s\n", toolVersion)
		return
	}

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Error: no input file specified")
		usage()
		os.Exit(1)
	}

	inputPath := args[0]
	source, err := os.ReadFile(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	shaderName := *name
	if shaderName == "" {
		base := filepath.Base(inputPath)
		shaderName = strings.TrimSuffix(base, filepath.Ext(base))
	}

	artifacts, err := shaderreflect.ReflectWGSL(string(source), shaderreflect.Options{
		ShaderName:  shaderName,
		EntryPoint:  *entry,
		PackageName: *pkg,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Reflection error: %v\n", err)
		os.Exit(1)
	}

	if *declOut != "" {
		if err := os.WriteFile(*declOut, artifacts.Declaration, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
	}
	if *implOut != "" {
		if err := os.WriteFile(*implOut, artifacts.Implementation, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
	}

	if *jsonOut != "" {
		if err := os.WriteFile(*jsonOut, artifacts.JSON, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
	} else if *declOut == "" && *implOut == "" {
		os.Stdout.Write(artifacts.JSON)
		fmt.Println()
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: shaderreflectc [options] <input.wgsl>\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  shaderreflectc shader.wgsl                      Print reflection JSON\n")
	fmt.Fprintf(os.Stderr, "  shaderreflectc -decl out.gen.go shader.wgsl     Generate declarations\n")
	fmt.Fprintf(os.Stderr, "  shaderreflectc -entry fs_main shader.wgsl       Select an entry point\n")
}
