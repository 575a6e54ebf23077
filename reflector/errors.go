// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package reflector

import "fmt"

// ErrorKind categorizes reflection failures.
type ErrorKind uint8

const (
	// ErrBadEntryPointCount indicates the module does not declare
	// exactly one entry point.
	ErrBadEntryPointCount ErrorKind = iota

	// ErrTypeResolution indicates a resource's type could not be
	// resolved.
	ErrTypeResolution
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrBadEntryPointCount:
		return "BadEntryPointCount"
	case ErrTypeResolution:
		return "TypeResolution"
	default:
		return "Unknown"
	}
}

// Error represents a reflection failure. A failed reflection yields no
// document; callers must treat the whole invocation as failed.
type Error struct {
	// Kind categorizes the error.
	Kind ErrorKind

	// Message identifies the reflection step that failed.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("reflector %s: %s", e.Kind, e.Message)
}

// NewError creates a new reflection error.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
	}
}
