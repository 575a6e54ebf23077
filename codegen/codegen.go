// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package codegen renders a reflection document into Go source artifacts:
// a declaration file with host-side struct mirrors and binding constants,
// and an implementation file with shader metadata and the vertex buffer
// layout for pipeline construction.
package codegen

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"text/template"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/shaderreflect/reflector"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Options configures artifact generation.
type Options struct {
	// PackageName is the package clause of the generated files.
	PackageName string

	// DeclTemplate and ImplTemplate override the embedded templates when
	// non-empty. Overrides use the same function map and data as the
	// defaults.
	DeclTemplate string
	ImplTemplate string
}

// DefaultOptions returns the default generation options.
func DefaultOptions() Options {
	return Options{PackageName: "shaders"}
}

// templateData is the root object both templates render against.
type templateData struct {
	Package string
	Doc     *reflector.Document

	// Layout is non-nil when the document carries a synthesized
	// per-vertex structure expressible as vertex attributes.
	Layout *gputypes.VertexBufferLayout
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"camelCase":       CamelCase,
		"shaderStage":     StageTag,
		"hostType":        hostType,
		"isPadding":       reflector.IsPaddingTag,
		"paddingSize":     paddingSize,
		"vertexFormatTag": vertexFormatTag,
	}
}

// Generate renders the declaration and implementation artifacts for doc.
// Both outputs are gofmt-formatted.
func Generate(doc *reflector.Document, opts Options) (decl, impl []byte, err error) {
	if opts.PackageName == "" {
		opts.PackageName = DefaultOptions().PackageName
	}

	data := &templateData{Package: opts.PackageName, Doc: doc}
	if layout, ok := VertexLayout(doc); ok {
		data.Layout = &layout
	}

	decl, err = render("decl.go.tmpl", opts.DeclTemplate, data)
	if err != nil {
		return nil, nil, fmt.Errorf("declaration artifact: %w", err)
	}
	impl, err = render("impl.go.tmpl", opts.ImplTemplate, data)
	if err != nil {
		return nil, nil, fmt.Errorf("implementation artifact: %w", err)
	}
	return decl, impl, nil
}

func render(name, override string, data *templateData) ([]byte, error) {
	var (
		tmpl *template.Template
		err  error
	)
	if override != "" {
		tmpl, err = template.New(name).Funcs(funcMap()).Parse(override)
	} else {
		tmpl, err = template.New(name).Funcs(funcMap()).ParseFS(templateFS, "templates/"+name)
	}
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting rendered source: %w", err)
	}
	return src, nil
}

// hostType maps a reflection member type tag to the Go type mirroring it
// byte for byte. Scalar tags are already Go type names.
func hostType(tag string) string {
	switch tag {
	case reflector.TagMatrix:
		return "[16]float32"
	case reflector.TagPoint:
		return "[2]float32"
	case reflector.TagVector3:
		return "[3]float32"
	case reflector.TagVector4:
		return "[4]float32"
	default:
		return tag
	}
}

// paddingSize extracts the byte count from a padding type tag.
func paddingSize(tag string) uint32 {
	var n uint32
	fmt.Sscanf(tag, "Padding<%d>", &n)
	return n
}

// vertexFormatTag renders a vertex format constant as source text.
func vertexFormatTag(f gputypes.VertexFormat) string {
	switch f {
	case gputypes.VertexFormatFloat32x2:
		return "gputypes.VertexFormatFloat32x2"
	case gputypes.VertexFormatFloat32x3:
		return "gputypes.VertexFormatFloat32x3"
	case gputypes.VertexFormatFloat32x4:
		return "gputypes.VertexFormatFloat32x4"
	default:
		return fmt.Sprintf("gputypes.VertexFormat(%d)", f)
	}
}
