// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package reflector

// reflectResource extracts one resource's name, binding coordinates,
// automatic platform binding slots and resolved type. The type is kept as
// a flat descriptor; struct layout expansion happens separately in the
// struct definition pass.
func reflectResource(m Module, res Resource) (ResourceBinding, bool) {
	td, ok := m.ResolveType(res.Type)
	if !ok {
		return ResourceBinding{}, false
	}
	indices := m.ResourceIndices(res.ID)

	return ResourceBinding{
		Name:          res.Name,
		DescriptorSet: m.Decoration(res.ID, DecorationDescriptorSet),
		Binding:       m.Decoration(res.ID, DecorationBinding),
		Location:      m.Decoration(res.ID, DecorationLocation),
		Index:         m.Decoration(res.ID, DecorationIndex),
		MSLResource0:  indices.Primary,
		MSLResource1:  indices.Secondary,
		MSLResource2:  indices.Tertiary,
		MSLResource3:  indices.Quaternary,
		Type: TypeInfo{
			TypeName: td.BaseType.String(),
			BitWidth: td.BitWidth,
			VecSize:  td.VecSize,
			Columns:  td.Columns,
		},
	}, true
}

// reflectResources reflects a whole category. A single unresolvable
// resource fails the category, and with it the enclosing document.
func reflectResources(m Module, resources []Resource) ([]ResourceBinding, bool) {
	result := make([]ResourceBinding, 0, len(resources))
	for _, res := range resources {
		binding, ok := reflectResource(m, res)
		if !ok {
			return nil, false
		}
		result = append(result, binding)
	}
	return result, true
}
