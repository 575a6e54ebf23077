// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package reflector

import "testing"

func TestReadStructMembers_ScalarPacking(t *testing.T) {
	f := newFakeModule()
	f.addType(1, fakeType{desc: scalarDesc(TypeFloat, 32)})
	f.addType(2, fakeType{desc: scalarDesc(TypeUnsignedInt, 32)})
	f.addType(3, fakeType{desc: scalarDesc(TypeSignedInt, 32)})
	f.addType(10, fakeType{
		desc: structDesc(),
		name: "Params",
		members: []fakeMember{
			{typ: 1, name: "scale"},
			{typ: 2, name: "count"},
			{typ: 3, name: "offset"},
		},
	})

	members := readStructMembers(f, 10, new(MemberNamer))
	want := []StructMember{
		{Name: "scale", Type: "float32", Offset: 0, ByteLength: 4},
		{Name: "count", Type: "uint32", Offset: 4, ByteLength: 4},
		{Name: "offset", Type: "int32", Offset: 8, ByteLength: 4},
	}
	if len(members) != len(want) {
		t.Fatalf("got %d members, want %d", len(members), len(want))
	}
	for i, m := range members {
		if m != want[i] {
			t.Errorf("member %d = %+v, want %+v", i, m, want[i])
		}
	}

	// The padded member lengths must add up to the declared total.
	def, ok := reflectStructDefinition(f, 10, new(MemberNamer))
	if !ok {
		t.Fatal("reflectStructDefinition failed")
	}
	var sum uint32
	for _, m := range def.Members {
		sum += m.ByteLength
	}
	if sum != def.ByteLength {
		t.Errorf("member lengths sum to %d, declared total is %d", sum, def.ByteLength)
	}
}

func TestReadStructMembers_WideBooleanGetsPadding(t *testing.T) {
	f := newFakeModule()
	f.addType(1, fakeType{desc: scalarDesc(TypeBoolean, 32)})
	f.addType(10, fakeType{
		desc:    structDesc(),
		name:    "Flags",
		members: []fakeMember{{typ: 1, name: "enabled"}},
	})

	members := readStructMembers(f, 10, new(MemberNamer))
	if len(members) != 2 {
		t.Fatalf("got %d members, want bool plus padding", len(members))
	}
	if members[0].Type != "bool" || members[0].ByteLength != 1 || members[0].Offset != 0 {
		t.Errorf("bool member = %+v", members[0])
	}
	if members[1].Type != "Padding<3>" || members[1].ByteLength != 3 || members[1].Offset != 1 {
		t.Errorf("padding member = %+v", members[1])
	}

	// Declared names carry over to the companion padding member; only
	// synthesized names take the _pad suffix.
	if members[1].Name != "enabled" {
		t.Errorf("padding member name = %q, want declared name", members[1].Name)
	}

	// The raw total still matches the padded layout: 32 bits = 1 + 3.
	def, _ := reflectStructDefinition(f, 10, new(MemberNamer))
	if def.ByteLength != 4 {
		t.Errorf("total byte length = %d, want 4", def.ByteLength)
	}
}

func TestReadStructMembers_NarrowBooleanNoPadding(t *testing.T) {
	f := newFakeModule()
	f.addType(1, fakeType{desc: scalarDesc(TypeBoolean, 8)})
	f.addType(10, fakeType{
		desc:    structDesc(),
		members: []fakeMember{{typ: 1, name: "flag"}},
	})

	members := readStructMembers(f, 10, new(MemberNamer))
	if len(members) != 1 {
		t.Fatalf("got %d members, want 1 (no padding for 8-bit bool)", len(members))
	}
}

func TestReadStructMembers_CompositeSpecialCases(t *testing.T) {
	tests := []struct {
		name       string
		desc       TypeDescriptor
		wantType   string
		wantLength uint32
	}{
		{"matrix4x4", mat4Desc(), TagMatrix, 64},
		{"vec2", floatVecDesc(2), TagPoint, 8},
		{"vec3", floatVecDesc(3), TagVector3, 12},
		{"vec4", floatVecDesc(4), TagVector4, 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakeModule()
			f.addType(1, fakeType{desc: tt.desc})
			f.addType(10, fakeType{
				desc:    structDesc(),
				members: []fakeMember{{typ: 1, name: "m"}},
			})

			members := readStructMembers(f, 10, new(MemberNamer))
			if len(members) != 1 {
				t.Fatalf("got %d members, want 1 (composites never get trailing padding)", len(members))
			}
			if members[0].Type != tt.wantType || members[0].ByteLength != tt.wantLength {
				t.Errorf("member = %+v, want type %s length %d", members[0], tt.wantType, tt.wantLength)
			}
		})
	}
}

func TestReadStructMembers_UnknownCompositeBecomesPadding(t *testing.T) {
	f := newFakeModule()
	// A double-precision vec2 has no host mapping.
	f.addType(1, fakeType{desc: TypeDescriptor{BaseType: TypeDouble, BitWidth: 64, VecSize: 2, Columns: 1}})
	// A non-square float matrix does not match the 4x4 special case.
	f.addType(2, fakeType{desc: TypeDescriptor{BaseType: TypeFloat, BitWidth: 32, VecSize: 4, Columns: 2}})
	f.addType(10, fakeType{
		desc: structDesc(),
		members: []fakeMember{
			{typ: 1, name: "dv"},
			{typ: 2, name: "m24"},
		},
	})

	members := readStructMembers(f, 10, new(MemberNamer))
	want := []StructMember{
		{Name: "dv", Type: "Padding<16>", Offset: 0, ByteLength: 16},
		{Name: "m24", Type: "Padding<32>", Offset: 16, ByteLength: 32},
	}
	for i, m := range members {
		if m != want[i] {
			t.Errorf("member %d = %+v, want %+v", i, m, want[i])
		}
	}
}

func TestReadStructMembers_UnresolvableMemberSkipped(t *testing.T) {
	f := newFakeModule()
	f.addType(1, fakeType{desc: scalarDesc(TypeFloat, 32)})
	f.addType(10, fakeType{
		desc: structDesc(),
		members: []fakeMember{
			{typ: 1, name: "before"},
			{typ: 99, name: "ghost"}, // no such type
			{typ: 1, name: "after"},
		},
	})

	members := readStructMembers(f, 10, new(MemberNamer))
	want := []StructMember{
		{Name: "before", Type: "float32", Offset: 0, ByteLength: 4},
		{Name: "after", Type: "float32", Offset: 4, ByteLength: 4},
	}
	if len(members) != len(want) {
		t.Fatalf("got %d members, want %d (unresolvable member skipped)", len(members), len(want))
	}
	for i, m := range members {
		if m != want[i] {
			t.Errorf("member %d = %+v, want %+v", i, m, want[i])
		}
	}
	for _, m := range members {
		if m.ByteLength == 0 {
			t.Errorf("zero-length member %+v in layout", m)
		}
	}
}

func TestMemberName_AnonymousMembers(t *testing.T) {
	f := newFakeModule()
	f.addType(1, fakeType{desc: scalarDesc(TypeBoolean, 32)})
	f.addType(10, fakeType{
		desc:    structDesc(),
		members: []fakeMember{{typ: 1}},
	})

	members := readStructMembers(f, 10, new(MemberNamer))
	if len(members) != 2 {
		t.Fatalf("got %d members, want 2", len(members))
	}
	if members[0].Name != "unnamed_0" {
		t.Errorf("member name = %q, want unnamed_0", members[0].Name)
	}
	if members[1].Name != "unnamed_1_pad" {
		t.Errorf("padding name = %q, want unnamed_1_pad", members[1].Name)
	}
}

func TestMemberName_AliasChain(t *testing.T) {
	f := newFakeModule()
	f.addType(1, fakeType{desc: scalarDesc(TypeFloat, 32)})
	// 10 aliases 11, which aliases 12 where the names live.
	f.addType(10, fakeType{desc: structDesc(), alias: 11, members: []fakeMember{{typ: 1}}})
	f.addType(11, fakeType{desc: structDesc(), alias: 12, members: []fakeMember{{typ: 1}}})
	f.addType(12, fakeType{desc: structDesc(), members: []fakeMember{{typ: 1, name: "radius"}}})

	got := memberName(f, 10, 0, "", new(MemberNamer))
	if got != "radius" {
		t.Errorf("memberName through alias chain = %q, want radius", got)
	}
}

func TestMemberName_SelfReferentialAliasCapped(t *testing.T) {
	f := newFakeModule()
	f.addType(10, fakeType{desc: structDesc(), alias: 10, members: []fakeMember{{name: "never_found"}}})

	got := memberName(f, 10, 0, "", new(MemberNamer))
	if got != "unnamed_0" {
		t.Errorf("memberName on alias cycle = %q, want synthesized name", got)
	}
}

func TestReflectStructDefinition_Rejections(t *testing.T) {
	f := newFakeModule()
	f.addType(1, fakeType{desc: scalarDesc(TypeFloat, 32)})
	f.addType(10, fakeType{desc: structDesc(), name: "_RESERVED_IDENTIFIER_FIXUP"})

	if _, ok := reflectStructDefinition(f, 1, new(MemberNamer)); ok {
		t.Error("non-struct type must not reflect")
	}
	if _, ok := reflectStructDefinition(f, 10, new(MemberNamer)); ok {
		t.Error("reserved struct type must not reflect")
	}
	if _, ok := reflectStructDefinition(f, 99, new(MemberNamer)); ok {
		t.Error("unknown type id must not reflect")
	}
}
