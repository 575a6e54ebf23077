// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package codegen

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/shaderreflect/reflector"
)

// VertexAttributes maps the synthesized per-vertex structure to gputypes
// vertex attributes, one per member in location order. It reports false
// when the document has no per-vertex structure or a member has no
// single-format equivalent (opaque padding inputs).
func VertexAttributes(doc *reflector.Document) ([]gputypes.VertexAttribute, bool) {
	def, ok := doc.PerVertexStruct()
	if !ok {
		return nil, false
	}
	attrs := make([]gputypes.VertexAttribute, 0, len(def.Members))
	for i, member := range def.Members {
		format, ok := vertexFormat(member.Type)
		if !ok {
			return nil, false
		}
		attrs = append(attrs, gputypes.VertexAttribute{
			Format:         format,
			Offset:         uint64(member.Offset),
			ShaderLocation: uint32(i),
		})
	}
	return attrs, true
}

// VertexLayout wraps the per-vertex attributes into a single interleaved
// buffer layout with per-vertex stepping.
func VertexLayout(doc *reflector.Document) (gputypes.VertexBufferLayout, bool) {
	attrs, ok := VertexAttributes(doc)
	if !ok {
		return gputypes.VertexBufferLayout{}, false
	}
	def, _ := doc.PerVertexStruct()
	return gputypes.VertexBufferLayout{
		ArrayStride: uint64(def.ByteLength),
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes:  attrs,
	}, true
}

func vertexFormat(tag string) (gputypes.VertexFormat, bool) {
	switch tag {
	case reflector.TagPoint:
		return gputypes.VertexFormatFloat32x2, true
	case reflector.TagVector3:
		return gputypes.VertexFormatFloat32x3, true
	case reflector.TagVector4:
		return gputypes.VertexFormatFloat32x4, true
	default:
		return 0, false
	}
}
