// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package reflector

// PerVertexStructName is the name of the structure synthesized from a
// vertex shader's stage inputs.
const PerVertexStructName = "PerVertexData"

// vertexInputType maps a stage input's type to its host representation.
// Unlike struct member layout there is no scalar mapping here; anything
// that is not a recognized 32-bit float vector degrades to opaque padding
// of the type's packed size. The byte length is the packed size in every
// case.
func vertexInputType(td TypeDescriptor) (tag string, byteLength uint32) {
	total := td.Columns * td.VecSize * td.BitWidth / 8

	floatVector := td.BaseType == TypeFloat && td.BitWidth == float32Bits && td.Columns == 1
	switch {
	case floatVector && td.VecSize == 2:
		return TagPoint, total
	case floatVector && td.VecSize == 4:
		return TagVector4, total
	case floatVector && td.VecSize == 3:
		return TagVector3, total
	}
	return PaddingTag(total), total
}

// synthesizePerVertexStruct builds the implicit vertex input structure,
// with members ordered by ascending location. It reports false when the
// module has no stage inputs (the code generation templates assume a
// non-zero sized structure) or when the input locations are not a
// duplicate-free contiguous set starting at zero.
func synthesizePerVertexStruct(m Module, inputs []Resource) (StructDefinition, bool) {
	if len(inputs) == 0 {
		return StructDefinition{}, false
	}

	byLocation := make(map[uint32]Resource, len(inputs))
	for _, input := range inputs {
		location := m.Decoration(input.ID, DecorationLocation)
		if _, dup := byLocation[location]; dup {
			return StructDefinition{}, false
		}
		byLocation[location] = input
	}
	for i := range uint32(len(inputs)) {
		if _, ok := byLocation[i]; !ok {
			// Locations are not contiguous from zero.
			return StructDefinition{}, false
		}
	}

	def := StructDefinition{Name: PerVertexStructName}
	for i := range uint32(len(inputs)) {
		input := byLocation[i]
		td, ok := m.ResolveType(input.Type)
		if !ok {
			return StructDefinition{}, false
		}
		tag, length := vertexInputType(td)
		def.Members = append(def.Members, StructMember{
			Name:       input.Name,
			Type:       tag,
			Offset:     def.ByteLength,
			ByteLength: length,
		})
		def.ByteLength += length
	}
	return def, true
}
