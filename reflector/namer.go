// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package reflector

import (
	"fmt"
	"sync/atomic"
)

// MemberNamer assigns placeholder names to struct members that have no
// declared name. The counter is atomic and never reset, so names stay
// unique across every reflection in the process, including reflections
// running concurrently on separate goroutines.
type MemberNamer struct {
	counter atomic.Uint64
}

// Anonymous returns the next placeholder name. suffix disambiguates
// companion members, such as trailing padding, from the member they
// follow.
func (n *MemberNamer) Anonymous(suffix string) string {
	id := n.counter.Add(1) - 1
	return fmt.Sprintf("unnamed_%d%s", id, suffix)
}

// defaultNamer is the process-wide namer used when Options does not
// inject one.
var defaultNamer MemberNamer
