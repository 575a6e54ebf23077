// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package reflector builds a structured description of a compiled shader
// module's interface.
//
// Given the query interface of an upstream type-resolved module (see
// [Module]), Reflect produces a [Document]: the entry point metadata,
// every resource binding grouped by category, and byte-exact padded
// layouts for every structure appearing in the module, including an
// implicit per-vertex input structure synthesized for vertex shaders.
// The document is the sole handoff to artifact rendering and is never
// mutated after assembly.
package reflector
