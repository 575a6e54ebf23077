// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package reflector

import "fmt"

// Options configures one reflection invocation.
type Options struct {
	// ShaderName is the declared shader name recorded in the document.
	ShaderName string

	// HeaderFileName is the declaration artifact file name recorded in
	// the document for the implementation artifact to reference.
	HeaderFileName string

	// Namer assigns placeholder names to undeclared struct members.
	// When nil the process-wide namer is used; tests inject a fresh
	// namer to get deterministic name sequences.
	Namer *MemberNamer
}

// Reflect assembles the reflection document for one shader module.
// Assembly is fail-fast: the first missing mandatory piece aborts the
// whole invocation, and a partially assembled document is never returned.
func Reflect(m Module, opts Options) (*Document, error) {
	namer := opts.Namer
	if namer == nil {
		namer = &defaultNamer
	}

	entrypoints := m.EntryPoints()
	if len(entrypoints) != 1 {
		return nil, NewError(ErrBadEntryPointCount,
			fmt.Sprintf("found %d entry points in the shader, expected 1", len(entrypoints)))
	}
	entry := entrypoints[0]

	doc := &Document{
		Entrypoint:        entry.Name,
		ShaderName:        opts.ShaderName,
		ShaderStage:       entry.Stage.String(),
		HeaderFileName:    opts.HeaderFileName,
		StructDefinitions: []StructDefinition{},
	}

	var ok bool
	if doc.UniformBuffers, ok = reflectResources(m, m.Resources(UniformBuffers)); !ok {
		return nil, NewError(ErrTypeResolution, "uniform buffers")
	}

	stageInputs := m.Resources(StageInputs)
	if doc.StageInputs, ok = reflectResources(m, stageInputs); !ok {
		return nil, NewError(ErrTypeResolution, "stage inputs")
	}

	// Combined texture-samplers first, then separate images, then
	// separate samplers, regardless of their declaration order.
	combined, okCombined := reflectResources(m, m.Resources(SampledImages))
	images, okImages := reflectResources(m, m.Resources(SeparateImages))
	samplers, okSamplers := reflectResources(m, m.Resources(SeparateSamplers))
	if !okCombined || !okImages || !okSamplers {
		return nil, NewError(ErrTypeResolution, "sampled images")
	}
	doc.SampledImages = make([]ResourceBinding, 0, len(combined)+len(images)+len(samplers))
	doc.SampledImages = append(doc.SampledImages, combined...)
	doc.SampledImages = append(doc.SampledImages, images...)
	doc.SampledImages = append(doc.SampledImages, samplers...)

	if doc.StageOutputs, ok = reflectResources(m, m.Resources(StageOutputs)); !ok {
		return nil, NewError(ErrTypeResolution, "stage outputs")
	}

	// A failed synthesis is not fatal; the module struct scan proceeds
	// independently.
	if entry.Stage == StageVertex {
		if def, ok := synthesizePerVertexStruct(m, stageInputs); ok {
			doc.StructDefinitions = append(doc.StructDefinitions, def)
		}
	}

	// The module may report the same struct type more than once, which
	// would lead to duplicate definitions.
	visited := make(map[TypeID]struct{})
	for id := range m.StructTypeIDs() {
		if _, seen := visited[id]; seen {
			continue
		}
		visited[id] = struct{}{}
		if def, ok := reflectStructDefinition(m, id, namer); ok {
			doc.StructDefinitions = append(doc.StructDefinitions, def)
		}
	}

	return doc, nil
}
