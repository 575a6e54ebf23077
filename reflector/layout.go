// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package reflector

import "strings"

const (
	// reservedIdentifierMarker marks compiler-internal struct types that
	// must not appear in the document.
	reservedIdentifierMarker = "_RESERVED_IDENTIFIER_"

	// maxAliasDepth bounds alias chain traversal in case the upstream
	// module produces a self-referential alias. Exceeding it counts as
	// "no name found".
	maxAliasDepth = 8

	// padSuffix disambiguates a companion padding member from the scalar
	// it follows.
	padSuffix = "_pad"
)

// memberName returns the declared name of a struct member, following the
// type alias chain to the underlying type, or a synthesized placeholder
// when no name is declared. suffix applies to synthesized names only.
func memberName(m Module, id TypeID, index int, suffix string, namer *MemberNamer) string {
	resolved := id
	for range maxAliasDepth {
		alias := m.TypeAlias(resolved)
		if alias == 0 {
			if name, ok := m.MemberAlias(resolved, index); ok && name != "" {
				return name
			}
			break
		}
		resolved = alias
	}
	return namer.Anonymous(suffix)
}

// readStructMembers produces the tightly packed, offset-annotated member
// layout of a struct type. Every member's offset is the running total
// before emission; injected padding counts toward the total like any
// other member.
func readStructMembers(m Module, id TypeID, namer *MemberNamer) []StructMember {
	var (
		members []StructMember
		offset  uint32
	)

	emit := func(name, tag string, length uint32) {
		members = append(members, StructMember{
			Name:       name,
			Type:       tag,
			Offset:     offset,
			ByteLength: length,
		})
		offset += length
	}

	for i, memberID := range m.StructMemberTypes(id) {
		td, ok := m.ResolveType(memberID)
		if !ok {
			// An unresolvable member contributes nothing to the declared
			// total either; skipping keeps the layout free of zero-length
			// members.
			continue
		}

		switch kind := classifyMember(td).(type) {
		case matrixMember:
			emit(memberName(m, id, i, "", namer), TagMatrix, sizeMatrix)

		case pointMember:
			emit(memberName(m, id, i, "", namer), TagPoint, sizePoint)

		case vector3Member:
			emit(memberName(m, id, i, "", namer), TagVector3, sizeVector3)

		case vector4Member:
			emit(memberName(m, id, i, "", namer), TagVector4, sizeVector4)

		case scalarMember:
			emit(memberName(m, id, i, "", namer), kind.scalar.name, kind.scalar.byteSize)
			// A scalar declared wider than its host representation keeps
			// subsequent offsets correct via a companion padding member.
			if declared := td.BitWidth / 8; declared > kind.scalar.byteSize {
				pad := declared - kind.scalar.byteSize
				emit(memberName(m, id, i, padSuffix, namer), PaddingTag(pad), pad)
			}

		case opaqueMember:
			emit(memberName(m, id, i, "", namer), PaddingTag(kind.size), kind.size)
		}
	}
	return members
}

// reflectStructDefinition builds the definition of one struct type.
// It reports false for non-struct types and for compiler-reserved types.
// The total byte length is the sum of each member's natural packed size,
// before any layout rule adjustments.
func reflectStructDefinition(m Module, id TypeID, namer *MemberNamer) (StructDefinition, bool) {
	td, ok := m.ResolveType(id)
	if !ok || td.BaseType != TypeStruct {
		return StructDefinition{}, false
	}

	name := m.TypeName(id)
	if strings.Contains(name, reservedIdentifierMarker) {
		return StructDefinition{}, false
	}

	var total uint32
	for _, memberID := range m.StructMemberTypes(id) {
		memberTD, ok := m.ResolveType(memberID)
		if !ok {
			continue
		}
		total += memberTD.BitWidth * memberTD.VecSize * memberTD.Columns / 8
	}

	return StructDefinition{
		Name:       name,
		ByteLength: total,
		Members:    readStructMembers(m, id, namer),
	}, true
}
