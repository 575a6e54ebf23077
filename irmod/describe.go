// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package irmod

import (
	"github.com/gogpu/naga/ir"

	"github.com/gogpu/shaderreflect/reflector"
)

// describe flattens an IR type into a reflector descriptor: primitive
// category, bit width, vector size and column count. Arrays carry their
// element's descriptor, so the layout pass sees the element's extent
// rather than a zero-width unknown.
func describe(types []ir.Type, inner ir.TypeInner) reflector.TypeDescriptor {
	switch t := inner.(type) {
	case ir.ScalarType:
		return reflector.TypeDescriptor{
			BaseType: scalarBase(t),
			BitWidth: uint32(t.Width) * 8,
			VecSize:  1,
			Columns:  1,
		}

	case ir.VectorType:
		return reflector.TypeDescriptor{
			BaseType: scalarBase(t.Scalar),
			BitWidth: uint32(t.Scalar.Width) * 8,
			VecSize:  uint32(t.Size),
			Columns:  1,
		}

	case ir.MatrixType:
		return reflector.TypeDescriptor{
			BaseType: scalarBase(t.Scalar),
			BitWidth: uint32(t.Scalar.Width) * 8,
			VecSize:  uint32(t.Rows),
			Columns:  uint32(t.Columns),
		}

	case ir.StructType:
		return reflector.TypeDescriptor{BaseType: reflector.TypeStruct, VecSize: 1, Columns: 1}

	case ir.ImageType:
		return reflector.TypeDescriptor{BaseType: reflector.TypeImage, VecSize: 1, Columns: 1}

	case ir.SamplerType:
		return reflector.TypeDescriptor{BaseType: reflector.TypeSampler, VecSize: 1, Columns: 1}

	case ir.ArrayType:
		if int(t.Base) < len(types) {
			return describe(types, types[t.Base].Inner)
		}
		return reflector.TypeDescriptor{BaseType: reflector.TypeUnknown, VecSize: 1, Columns: 1}

	case ir.AtomicType:
		return reflector.TypeDescriptor{
			BaseType: reflector.TypeAtomicCounter,
			BitWidth: uint32(t.Scalar.Width) * 8,
			VecSize:  1,
			Columns:  1,
		}

	default:
		// Pointers have no flat interface representation and degrade to
		// opaque padding downstream.
		return reflector.TypeDescriptor{BaseType: reflector.TypeUnknown, VecSize: 1, Columns: 1}
	}
}

// scalarBase maps an IR scalar to the reflector primitive category.
func scalarBase(s ir.ScalarType) reflector.BaseType {
	switch s.Kind {
	case ir.ScalarBool:
		return reflector.TypeBoolean

	case ir.ScalarFloat:
		switch s.Width {
		case 2:
			return reflector.TypeHalfFloat
		case 8:
			return reflector.TypeDouble
		default:
			return reflector.TypeFloat
		}

	case ir.ScalarSint:
		switch s.Width {
		case 1:
			return reflector.TypeSignedByte
		case 2:
			return reflector.TypeSignedShort
		case 8:
			return reflector.TypeSignedInt64
		default:
			return reflector.TypeSignedInt
		}

	case ir.ScalarUint:
		switch s.Width {
		case 1:
			return reflector.TypeUnsignedByte
		case 2:
			return reflector.TypeUnsignedShort
		case 8:
			return reflector.TypeUnsignedInt64
		default:
			return reflector.TypeUnsignedInt
		}
	}
	return reflector.TypeUnknown
}
