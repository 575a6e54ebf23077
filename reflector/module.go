// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package reflector

import "iter"

// TypeID identifies a type in the upstream module. The zero value means
// "no type" and terminates alias chains.
type TypeID uint32

// ResourceID identifies a shader interface resource in the upstream module.
type ResourceID uint32

// ResourceCategory selects one of the module's resource lists.
type ResourceCategory uint8

const (
	// UniformBuffers are uniform buffer objects.
	UniformBuffers ResourceCategory = iota

	// StageInputs are the entry point's location-bound inputs.
	StageInputs

	// StageOutputs are the entry point's location-bound outputs.
	StageOutputs

	// SampledImages are combined texture-sampler resources.
	SampledImages

	// SeparateImages are textures without an attached sampler.
	SeparateImages

	// SeparateSamplers are standalone sampler objects.
	SeparateSamplers
)

// Decoration identifies a binding coordinate attached to a resource.
type Decoration uint8

const (
	// DecorationDescriptorSet is the resource's descriptor set index.
	DecorationDescriptorSet Decoration = iota

	// DecorationBinding is the binding index within the descriptor set.
	DecorationBinding

	// DecorationLocation is the input/output location.
	DecorationLocation

	// DecorationIndex is the color attachment index.
	DecorationIndex
)

// Stage is the execution stage of a shader entry point.
type Stage uint8

const (
	StageVertex Stage = iota
	StageFragment
	StageUnsupported
)

// String returns the stage name recorded in the document.
func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unsupported"
	}
}

// EntryPoint describes one entry point of the upstream module.
type EntryPoint struct {
	Name  string
	Stage Stage
}

// Resource is one shader interface binding as listed by the upstream module.
type Resource struct {
	ID   ResourceID
	Type TypeID
	Name string
}

// ResourceIndices holds up to four platform-assigned automatic binding
// slots for a resource. Slots past the primary are used when automatic
// binding allocation must split a resource across several slots.
type ResourceIndices struct {
	Primary    uint32
	Secondary  uint32
	Tertiary   uint32
	Quaternary uint32
}

// Module is the read-only query interface of the upstream type-resolved
// shader module. Reflection holds the module for the duration of one
// invocation and the resulting document keeps no references into it.
type Module interface {
	// EntryPoints returns the module's entry points in declaration order.
	EntryPoints() []EntryPoint

	// Resources returns the resource list of a category for the current
	// entry point.
	Resources(category ResourceCategory) []Resource

	// ResolveType returns the descriptor for a type identifier.
	ResolveType(id TypeID) (TypeDescriptor, bool)

	// TypeName returns the declared name of a type, or "".
	TypeName(id TypeID) string

	// TypeAlias returns the identifier a type aliases, or zero when the
	// type stands on its own.
	TypeAlias(id TypeID) TypeID

	// StructMemberTypes returns the ordered member type list of a struct
	// type, or nil if the type is not a structure.
	StructMemberTypes(id TypeID) []TypeID

	// MemberAlias returns the declared name of a struct member, if any.
	MemberAlias(id TypeID, index int) (string, bool)

	// Decoration returns a decoration value for a resource, or the
	// decoration's defined default when absent.
	Decoration(id ResourceID, kind Decoration) uint32

	// ResourceIndices returns the automatic platform binding slots
	// assigned to a resource.
	ResourceIndices(id ResourceID) ResourceIndices

	// StructTypeIDs yields every struct type identifier appearing in the
	// module. The sequence is finite, single-use and may contain
	// duplicates; callers are responsible for deduplication.
	StructTypeIDs() iter.Seq[TypeID]
}
