// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package reflector

import "iter"

// fakeType is one type in a hand-built test module.
type fakeType struct {
	desc    TypeDescriptor
	name    string
	alias   TypeID
	members []fakeMember
}

// fakeMember pairs a member type with its declared name ("" = anonymous).
type fakeMember struct {
	typ  TypeID
	name string
}

// fakeModule is a hand-built Module implementation for layout and
// assembly tests. Alias chains, duplicate struct ids and missing types
// can all be staged explicitly.
type fakeModule struct {
	entries   []EntryPoint
	types     map[TypeID]fakeType
	resources map[ResourceCategory][]Resource
	decor     map[ResourceID]map[Decoration]uint32
	indices   map[ResourceID]ResourceIndices
	structIDs []TypeID
}

func newFakeModule() *fakeModule {
	return &fakeModule{
		types:     make(map[TypeID]fakeType),
		resources: make(map[ResourceCategory][]Resource),
		decor:     make(map[ResourceID]map[Decoration]uint32),
		indices:   make(map[ResourceID]ResourceIndices),
	}
}

func (f *fakeModule) addType(id TypeID, t fakeType) {
	f.types[id] = t
	if t.desc.BaseType == TypeStruct {
		f.structIDs = append(f.structIDs, id)
	}
}

func (f *fakeModule) addResource(cat ResourceCategory, id ResourceID, typ TypeID, name string) {
	f.resources[cat] = append(f.resources[cat], Resource{ID: id, Type: typ, Name: name})
}

func (f *fakeModule) setDecoration(id ResourceID, kind Decoration, value uint32) {
	if f.decor[id] == nil {
		f.decor[id] = make(map[Decoration]uint32)
	}
	f.decor[id][kind] = value
}

func (f *fakeModule) EntryPoints() []EntryPoint { return f.entries }

func (f *fakeModule) Resources(cat ResourceCategory) []Resource { return f.resources[cat] }

func (f *fakeModule) ResolveType(id TypeID) (TypeDescriptor, bool) {
	t, ok := f.types[id]
	if !ok {
		return TypeDescriptor{}, false
	}
	return t.desc, true
}

func (f *fakeModule) TypeName(id TypeID) string { return f.types[id].name }

func (f *fakeModule) TypeAlias(id TypeID) TypeID { return f.types[id].alias }

func (f *fakeModule) StructMemberTypes(id TypeID) []TypeID {
	t, ok := f.types[id]
	if !ok || t.desc.BaseType != TypeStruct {
		return nil
	}
	ids := make([]TypeID, len(t.members))
	for i, m := range t.members {
		ids[i] = m.typ
	}
	return ids
}

func (f *fakeModule) MemberAlias(id TypeID, index int) (string, bool) {
	t, ok := f.types[id]
	if !ok || index >= len(t.members) || t.members[index].name == "" {
		return "", false
	}
	return t.members[index].name, true
}

func (f *fakeModule) Decoration(id ResourceID, kind Decoration) uint32 {
	return f.decor[id][kind]
}

func (f *fakeModule) ResourceIndices(id ResourceID) ResourceIndices {
	return f.indices[id]
}

func (f *fakeModule) StructTypeIDs() iter.Seq[TypeID] {
	return func(yield func(TypeID) bool) {
		for _, id := range f.structIDs {
			if !yield(id) {
				return
			}
		}
	}
}

// Descriptor helpers for common shader types.

func scalarDesc(base BaseType, bits uint32) TypeDescriptor {
	return TypeDescriptor{BaseType: base, BitWidth: bits, VecSize: 1, Columns: 1}
}

func floatVecDesc(size uint32) TypeDescriptor {
	return TypeDescriptor{BaseType: TypeFloat, BitWidth: 32, VecSize: size, Columns: 1}
}

func mat4Desc() TypeDescriptor {
	return TypeDescriptor{BaseType: TypeFloat, BitWidth: 32, VecSize: 4, Columns: 4}
}

func structDesc() TypeDescriptor {
	return TypeDescriptor{BaseType: TypeStruct, VecSize: 1, Columns: 1}
}
