// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package shaderreflect generates reflection metadata and Go source
// artifacts from compiled shader modules.
//
// shaderreflect inspects a shader's interface (uniform buffers, stage
// inputs and outputs, textures and samplers) and produces:
//   - a structured JSON reflection document
//   - a declaration file with byte-exact host struct mirrors and binding
//     constants
//   - an implementation file with shader metadata and the vertex buffer
//     layout for pipeline construction
//
// The package provides a simple, high-level API as well as lower-level
// access to the individual stages.
//
// Example usage (from WGSL source):
//
//	source := `
//	@vertex
//	fn main(@location(0) position: vec2<f32>) -> @builtin(position) vec4<f32> {
//	    return vec4<f32>(position, 0.0, 1.0);
//	}
//	`
//	artifacts, err := shaderreflect.ReflectWGSL(source, shaderreflect.Options{
//	    ShaderName: "solid_fill",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("solid_fill_shader.gen.go", artifacts.Declaration, 0o644)
//
// For custom upstream compilers, adapt the module yourself and use the
// reflector package directly:
//
//	doc, err := reflector.Reflect(irmod.New(module), reflector.Options{...})
package shaderreflect

import (
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/ir"

	"github.com/gogpu/shaderreflect/codegen"
	"github.com/gogpu/shaderreflect/irmod"
	"github.com/gogpu/shaderreflect/reflector"
)

// Options configures reflection and artifact generation.
type Options struct {
	// ShaderName names the shader in generated artifacts. Generated
	// identifiers derive from it, so it should be a snake_case name.
	ShaderName string

	// EntryPoint selects one entry point by name. Empty means the module
	// must declare exactly one.
	EntryPoint string

	// HeaderFileName is the declaration file name recorded in the
	// reflection document. Defaults to "<ShaderName>_shader.gen.go".
	HeaderFileName string

	// PackageName is the package clause of the generated Go files
	// (default "shaders").
	PackageName string
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{PackageName: "shaders"}
}

// Artifacts is the complete output of one reflection pass.
type Artifacts struct {
	// Document is the assembled reflection document.
	Document *reflector.Document

	// JSON is the document in structured text form.
	JSON []byte

	// Declaration and Implementation are the generated Go source files.
	Declaration    []byte
	Implementation []byte
}

// ReflectWGSL compiles WGSL source and reflects its interface.
//
// This is the simplest way to reflect a shader. For modules produced by
// other frontends, use ReflectModule.
func ReflectWGSL(source string, opts Options) (*Artifacts, error) {
	ast, err := naga.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	module, err := naga.LowerWithSource(ast, source)
	if err != nil {
		return nil, fmt.Errorf("lowering error: %w", err)
	}
	return ReflectModule(module, opts)
}

// ReflectModule reflects a compiled IR module.
//
// The pipeline is:
//  1. Adapt the IR module to the reflection query interface
//  2. Assemble the reflection document
//  3. Render the JSON, declaration and implementation artifacts
func ReflectModule(module *ir.Module, opts Options) (*Artifacts, error) {
	if opts.HeaderFileName == "" && opts.ShaderName != "" {
		opts.HeaderFileName = opts.ShaderName + "_shader.gen.go"
	}

	var mod *irmod.Module
	if opts.EntryPoint != "" {
		mod = irmod.NewForEntryPoint(module, opts.EntryPoint)
	} else {
		mod = irmod.New(module)
	}

	// Namer stays nil so anonymous member names draw from the shared
	// process-wide counter and never repeat across reflections.
	doc, err := reflector.Reflect(mod, reflector.Options{
		ShaderName:     opts.ShaderName,
		HeaderFileName: opts.HeaderFileName,
	})
	if err != nil {
		return nil, err
	}
	if doc.ShaderStage == "vertex" {
		if _, ok := doc.PerVertexStruct(); !ok {
			Logger().Warn("vertex input layout not synthesized",
				"shader", opts.ShaderName,
				"stage_inputs", len(doc.StageInputs))
		}
	}
	Logger().Debug("reflected shader module",
		"shader", opts.ShaderName,
		"stage", doc.ShaderStage,
		"uniform_buffers", len(doc.UniformBuffers),
		"stage_inputs", len(doc.StageInputs),
		"structs", len(doc.StructDefinitions))

	raw, err := doc.JSON()
	if err != nil {
		return nil, fmt.Errorf("encoding reflection document: %w", err)
	}
	decl, impl, err := codegen.Generate(doc, codegen.Options{PackageName: opts.PackageName})
	if err != nil {
		return nil, err
	}

	return &Artifacts{
		Document:       doc,
		JSON:           raw,
		Declaration:    decl,
		Implementation: impl,
	}, nil
}
