// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package codegen

import "strings"

// CamelCase converts a snake_case identifier to CamelCase. Empty segments
// collapse, so "frame__info" and "frame_info" render the same.
func CamelCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, segment := range strings.Split(s, "_") {
		if segment == "" {
			continue
		}
		b.WriteString(strings.ToUpper(segment[:1]))
		b.WriteString(segment[1:])
	}
	return b.String()
}

// StageTag maps a reflection stage name to the gputypes shader stage
// expression emitted into generated source.
func StageTag(stage string) string {
	switch stage {
	case "vertex":
		return "gputypes.ShaderStageVertex"
	case "fragment":
		return "gputypes.ShaderStageFragment"
	default:
		return "gputypes.ShaderStage(0)"
	}
}
