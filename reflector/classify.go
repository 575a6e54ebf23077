// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package reflector

// memberKind classifies a struct member's type for layout purposes. The
// closed set of variants keeps the priority order of the layout rules
// explicit: 4x4 float matrix, float vec2/vec3/vec4, recognized scalar,
// opaque padding.
type memberKind interface {
	memberKind()
}

// matrixMember is a tightly packed 4x4 32-bit float matrix.
type matrixMember struct{}

// pointMember is a 32-bit float 2-component vector.
type pointMember struct{}

// vector3Member is a 32-bit float 3-component vector.
type vector3Member struct{}

// vector4Member is a 32-bit float 4-component vector.
type vector4Member struct{}

// scalarMember is a single scalar with a host representation.
type scalarMember struct {
	scalar knownScalar
}

// opaqueMember is an unsupported type represented as padding of its
// packed byte size.
type opaqueMember struct {
	size uint32
}

func (matrixMember) memberKind()  {}
func (pointMember) memberKind()   {}
func (vector3Member) memberKind() {}
func (vector4Member) memberKind() {}
func (scalarMember) memberKind()  {}
func (opaqueMember) memberKind()  {}

// classifyMember evaluates the layout rules once for a member type.
// Anything that is neither a recognized float composite nor a true scalar
// with a host mapping degrades to opaque padding, never to an error.
func classifyMember(td TypeDescriptor) memberKind {
	float32Type := td.BaseType == TypeFloat && td.BitWidth == float32Bits

	switch {
	case float32Type && td.Columns == 4 && td.VecSize == 4:
		return matrixMember{}
	case float32Type && td.Columns == 1 && td.VecSize == 2:
		return pointMember{}
	case float32Type && td.Columns == 1 && td.VecSize == 3:
		return vector3Member{}
	case float32Type && td.Columns == 1 && td.VecSize == 4:
		return vector4Member{}
	}

	if scalar, ok := knownScalarType(td.BaseType); ok && td.Columns == 1 && td.VecSize == 1 {
		return scalarMember{scalar: scalar}
	}

	return opaqueMember{size: td.BitWidth * td.VecSize * td.Columns / 8}
}
