// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package irmod adapts a naga IR module to the reflector query interface.
//
// The adapter is read-only: it indexes the module's entry point interface
// once at construction (global variables, flattened stage inputs and
// outputs) and answers every [reflector.Module] query from that index.
// Type identifiers are 1-based over the IR type arena; zero means "no
// type" and, since naga IR has no type aliasing, alias queries always
// report none.
package irmod

import (
	"iter"

	"github.com/gogpu/naga/ir"

	"github.com/gogpu/shaderreflect/reflector"
)

// Module wraps an ir.Module for one entry point.
type Module struct {
	module *ir.Module
	entry  []reflector.EntryPoint

	resources   map[reflector.ResourceCategory][]reflector.Resource
	decorations []decorationSet
	indices     []reflector.ResourceIndices
}

// decorationSet holds the binding coordinates of one indexed resource.
type decorationSet struct {
	descriptorSet uint32
	binding       uint32
	location      uint32
	index         uint32
}

// New adapts a module. When the module declares exactly one entry point
// its interface is indexed; otherwise every entry point is surfaced
// unindexed so the assembler rejects the module with an entry point
// count error.
func New(m *ir.Module) *Module {
	mod := newModule(m)
	for _, ep := range m.EntryPoints {
		mod.entry = append(mod.entry, reflector.EntryPoint{Name: ep.Name, Stage: stageOf(ep.Stage)})
	}
	if len(m.EntryPoints) == 1 {
		mod.index(&m.EntryPoints[0])
	}
	return mod
}

// NewForEntryPoint adapts a module for the named entry point. A name
// that matches nothing yields a module with no entry points.
func NewForEntryPoint(m *ir.Module, name string) *Module {
	mod := newModule(m)
	for i := range m.EntryPoints {
		if m.EntryPoints[i].Name != name {
			continue
		}
		ep := &m.EntryPoints[i]
		mod.entry = []reflector.EntryPoint{{Name: ep.Name, Stage: stageOf(ep.Stage)}}
		mod.index(ep)
		break
	}
	return mod
}

func newModule(m *ir.Module) *Module {
	return &Module{
		module:    m,
		resources: make(map[reflector.ResourceCategory][]reflector.Resource),
	}
}

func stageOf(s ir.ShaderStage) reflector.Stage {
	switch s {
	case ir.StageVertex:
		return reflector.StageVertex
	case ir.StageFragment:
		return reflector.StageFragment
	default:
		return reflector.StageUnsupported
	}
}

// index walks the entry point's interface, assigning resource ids and
// automatic platform binding slots in declaration order. Slot allocation
// mirrors Metal's per-kind counters: buffers, textures and samplers each
// count up independently.
func (mod *Module) index(ep *ir.EntryPoint) {
	var bufferSlot, textureSlot, samplerSlot uint32

	for _, global := range mod.module.GlobalVariables {
		var (
			category reflector.ResourceCategory
			slot     *uint32
		)
		switch mod.typeInner(global.Type).(type) {
		case ir.ImageType:
			category = reflector.SeparateImages
			slot = &textureSlot
		case ir.SamplerType:
			category = reflector.SeparateSamplers
			slot = &samplerSlot
		default:
			if global.Space != ir.SpaceUniform {
				continue
			}
			category = reflector.UniformBuffers
			slot = &bufferSlot
		}

		var dec decorationSet
		if global.Binding != nil {
			dec.descriptorSet = global.Binding.Group
			dec.binding = global.Binding.Binding
		}
		mod.add(category, global.Name, typeID(global.Type), dec, reflector.ResourceIndices{Primary: *slot})
		*slot++
	}

	fn := &ep.Function
	for i := range fn.Arguments {
		arg := &fn.Arguments[i]
		mod.addStageIO(reflector.StageInputs, arg.Name, arg.Type, arg.Binding)
	}
	if fn.Result != nil {
		mod.addStageIO(reflector.StageOutputs, "output", fn.Result.Type, fn.Result.Binding)
	}
}

// addStageIO registers a location-bound entry point input or output.
// Unbound struct IO carries per-member bindings and is flattened into one
// resource per location-bound member; builtins are not interface
// resources and are skipped.
func (mod *Module) addStageIO(cat reflector.ResourceCategory, name string, t ir.TypeHandle, binding *ir.Binding) {
	if binding != nil {
		if loc, ok := (*binding).(ir.LocationBinding); ok {
			mod.add(cat, name, typeID(t), decorationSet{location: loc.Location}, reflector.ResourceIndices{})
		}
		return
	}

	st, ok := mod.typeInner(t).(ir.StructType)
	if !ok {
		return
	}
	for _, member := range st.Members {
		if member.Binding == nil {
			continue
		}
		loc, ok := (*member.Binding).(ir.LocationBinding)
		if !ok {
			continue
		}
		mod.add(cat, member.Name, typeID(member.Type), decorationSet{location: loc.Location}, reflector.ResourceIndices{})
	}
}

func (mod *Module) add(cat reflector.ResourceCategory, name string, t reflector.TypeID, dec decorationSet, idx reflector.ResourceIndices) {
	id := reflector.ResourceID(len(mod.decorations))
	mod.decorations = append(mod.decorations, dec)
	mod.indices = append(mod.indices, idx)
	mod.resources[cat] = append(mod.resources[cat], reflector.Resource{ID: id, Type: t, Name: name})
}

// typeID converts an arena handle to a 1-based reflector type id.
func typeID(h ir.TypeHandle) reflector.TypeID {
	return reflector.TypeID(h) + 1
}

func (mod *Module) typeAt(id reflector.TypeID) (*ir.Type, bool) {
	if id == 0 || int(id) > len(mod.module.Types) {
		return nil, false
	}
	return &mod.module.Types[id-1], true
}

func (mod *Module) typeInner(h ir.TypeHandle) ir.TypeInner {
	if int(h) >= len(mod.module.Types) {
		return nil
	}
	return mod.module.Types[h].Inner
}

// EntryPoints implements reflector.Module.
func (mod *Module) EntryPoints() []reflector.EntryPoint { return mod.entry }

// Resources implements reflector.Module.
func (mod *Module) Resources(cat reflector.ResourceCategory) []reflector.Resource {
	return mod.resources[cat]
}

// ResolveType implements reflector.Module.
func (mod *Module) ResolveType(id reflector.TypeID) (reflector.TypeDescriptor, bool) {
	t, ok := mod.typeAt(id)
	if !ok {
		return reflector.TypeDescriptor{}, false
	}
	return describe(mod.module.Types, t.Inner), true
}

// TypeName implements reflector.Module.
func (mod *Module) TypeName(id reflector.TypeID) string {
	t, ok := mod.typeAt(id)
	if !ok {
		return ""
	}
	return t.Name
}

// TypeAlias implements reflector.Module. naga IR has no type aliasing.
func (mod *Module) TypeAlias(reflector.TypeID) reflector.TypeID { return 0 }

// StructMemberTypes implements reflector.Module.
func (mod *Module) StructMemberTypes(id reflector.TypeID) []reflector.TypeID {
	t, ok := mod.typeAt(id)
	if !ok {
		return nil
	}
	st, ok := t.Inner.(ir.StructType)
	if !ok {
		return nil
	}
	ids := make([]reflector.TypeID, len(st.Members))
	for i, member := range st.Members {
		ids[i] = typeID(member.Type)
	}
	return ids
}

// MemberAlias implements reflector.Module.
func (mod *Module) MemberAlias(id reflector.TypeID, index int) (string, bool) {
	t, ok := mod.typeAt(id)
	if !ok {
		return "", false
	}
	st, ok := t.Inner.(ir.StructType)
	if !ok || index >= len(st.Members) || st.Members[index].Name == "" {
		return "", false
	}
	return st.Members[index].Name, true
}

// Decoration implements reflector.Module. Absent decorations default to
// zero.
func (mod *Module) Decoration(id reflector.ResourceID, kind reflector.Decoration) uint32 {
	if int(id) >= len(mod.decorations) {
		return 0
	}
	dec := mod.decorations[id]
	switch kind {
	case reflector.DecorationDescriptorSet:
		return dec.descriptorSet
	case reflector.DecorationBinding:
		return dec.binding
	case reflector.DecorationLocation:
		return dec.location
	case reflector.DecorationIndex:
		return dec.index
	default:
		return 0
	}
}

// ResourceIndices implements reflector.Module.
func (mod *Module) ResourceIndices(id reflector.ResourceID) reflector.ResourceIndices {
	if int(id) >= len(mod.indices) {
		return reflector.ResourceIndices{}
	}
	return mod.indices[id]
}

// StructTypeIDs implements reflector.Module, yielding every struct type
// in the arena in declaration order.
func (mod *Module) StructTypeIDs() iter.Seq[reflector.TypeID] {
	return func(yield func(reflector.TypeID) bool) {
		for handle := range mod.module.Types {
			if _, ok := mod.module.Types[handle].Inner.(ir.StructType); !ok {
				continue
			}
			if !yield(reflector.TypeID(handle) + 1) {
				return
			}
		}
	}
}
