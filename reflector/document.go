// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package reflector

import "encoding/json"

// TypeInfo describes a resource's resolved type without layout expansion.
type TypeInfo struct {
	TypeName string `json:"type_name"`
	BitWidth uint32 `json:"bit_width"`
	VecSize  uint32 `json:"vec_size"`
	Columns  uint32 `json:"columns"`
}

// ResourceBinding is one reflected shader interface resource: its name,
// binding coordinates, automatic platform binding slots and resolved type.
type ResourceBinding struct {
	Name          string   `json:"name"`
	DescriptorSet uint32   `json:"descriptor_set"`
	Binding       uint32   `json:"binding"`
	Location      uint32   `json:"location"`
	Index         uint32   `json:"index"`
	MSLResource0  uint32   `json:"msl_res_0"`
	MSLResource1  uint32   `json:"msl_res_1"`
	MSLResource2  uint32   `json:"msl_res_2"`
	MSLResource3  uint32   `json:"msl_res_3"`
	Type          TypeInfo `json:"type"`
}

// StructMember is one offset-annotated member of a structure layout.
// Members are contiguous; gaps are always explicit padding members.
type StructMember struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	Offset     uint32 `json:"offset"`
	ByteLength uint32 `json:"byte_length"`
}

// StructDefinition is the complete layout of one structure.
type StructDefinition struct {
	Name       string         `json:"name"`
	ByteLength uint32         `json:"byte_length"`
	Members    []StructMember `json:"members"`
}

// Document is the complete description of one shader module's interface.
// It is assembled once by [Reflect] and never mutated afterwards.
type Document struct {
	Entrypoint        string             `json:"entrypoint"`
	ShaderName        string             `json:"shader_name"`
	ShaderStage       string             `json:"shader_stage"`
	HeaderFileName    string             `json:"header_file_name"`
	UniformBuffers    []ResourceBinding  `json:"uniform_buffers"`
	StageInputs       []ResourceBinding  `json:"stage_inputs"`
	SampledImages     []ResourceBinding  `json:"sampled_images"`
	StageOutputs      []ResourceBinding  `json:"stage_outputs"`
	StructDefinitions []StructDefinition `json:"struct_definitions"`
}

// JSON returns the document in its human-readable structured text form,
// suitable for diagnostics and debugging.
func (d *Document) JSON() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// PerVertexStruct returns the synthesized per-vertex input structure if
// the document carries one.
func (d *Document) PerVertexStruct() (StructDefinition, bool) {
	for _, def := range d.StructDefinitions {
		if def.Name == PerVertexStructName {
			return def, true
		}
	}
	return StructDefinition{}, false
}
