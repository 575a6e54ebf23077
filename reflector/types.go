// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package reflector

import "fmt"

// BaseType is the resolved primitive category of a shader type.
type BaseType uint8

const (
	TypeVoid BaseType = iota
	TypeBoolean
	TypeSignedByte
	TypeUnsignedByte
	TypeSignedShort
	TypeUnsignedShort
	TypeSignedInt
	TypeUnsignedInt
	TypeSignedInt64
	TypeUnsignedInt64
	TypeAtomicCounter
	TypeHalfFloat
	TypeFloat
	TypeDouble
	TypeStruct
	TypeImage
	TypeSampledImage
	TypeSampler
	TypeUnknown
)

// String returns the type tag used in the document's resource type info.
func (t BaseType) String() string {
	switch t {
	case TypeVoid:
		return "Void"
	case TypeBoolean:
		return "Boolean"
	case TypeSignedByte:
		return "SignedByte"
	case TypeUnsignedByte:
		return "UnsignedByte"
	case TypeSignedShort:
		return "SignedShort"
	case TypeUnsignedShort:
		return "UnsignedShort"
	case TypeSignedInt:
		return "SignedInt"
	case TypeUnsignedInt:
		return "UnsignedInt"
	case TypeSignedInt64:
		return "SignedInt64"
	case TypeUnsignedInt64:
		return "UnsignedInt64"
	case TypeAtomicCounter:
		return "AtomicCounter"
	case TypeHalfFloat:
		return "HalfFloat"
	case TypeFloat:
		return "Float"
	case TypeDouble:
		return "Double"
	case TypeStruct:
		return "Struct"
	case TypeImage:
		return "Image"
	case TypeSampledImage:
		return "SampledImage"
	case TypeSampler:
		return "Sampler"
	default:
		return "Unknown"
	}
}

// TypeDescriptor describes a resolved type: its primitive category, bit
// width, vector component count and matrix column count. It is derived
// purely from the upstream module and carries no layout information.
type TypeDescriptor struct {
	BaseType BaseType
	BitWidth uint32
	VecSize  uint32
	Columns  uint32
}

// knownScalar is the host representation of a recognized shader scalar.
type knownScalar struct {
	name     string
	byteSize uint32
}

// knownScalarType maps a primitive category to its host scalar
// representation. Only booleans and 32-bit floats, unsigned and signed
// integers have one; every other category reports false and callers fall
// back to opaque padding.
func knownScalarType(t BaseType) (knownScalar, bool) {
	switch t {
	case TypeBoolean:
		return knownScalar{name: "bool", byteSize: 1}, true
	case TypeFloat:
		return knownScalar{name: "float32", byteSize: 4}, true
	case TypeUnsignedInt:
		return knownScalar{name: "uint32", byteSize: 4}, true
	case TypeSignedInt:
		return knownScalar{name: "int32", byteSize: 4}, true
	}
	return knownScalar{}, false
}

// Host composite byte sizes. The declaration artifact defines these
// composites as float32 arrays, so Vector3 stays at its packed 12 bytes.
const (
	sizeMatrix  = 64
	sizePoint   = 8
	sizeVector3 = 12
	sizeVector4 = 16

	float32Bits = 32
)

// Type tags used in [StructMember.Type] for the host composite types.
const (
	TagMatrix  = "Matrix"
	TagPoint   = "Point"
	TagVector3 = "Vector3"
	TagVector4 = "Vector4"
)

// PaddingTag returns the opaque padding type tag for a byte size.
func PaddingTag(size uint32) string {
	return fmt.Sprintf("Padding<%d>", size)
}

// IsPaddingTag reports whether a member type tag denotes opaque padding.
func IsPaddingTag(tag string) bool {
	return len(tag) > 8 && tag[:8] == "Padding<"
}
