// Package errors provides structured error handling for the yuzu engine.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindMount indicates an invalid argument to the mount entry point.
	KindMount
	// KindRender indicates a failure while materializing or patching.
	KindRender
	// KindState indicates a reactive state misuse, such as a mutation
	// from a goroutine that does not own the container.
	KindState
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindMount:
		return "mount"
	case KindRender:
		return "render"
	case KindState:
		return "state"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// EngineError represents a structured error in the yuzu engine.
type EngineError struct {
	// Op is the operation that failed (e.g., "vdom.Mount").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}

// MountError reports an invalid argument to the mount entry point.
// Mount is the only operation in the core with a recoverable error
// channel; everything past it fails fatally for the render pass.
type MountError struct {
	// Reason describes which argument was invalid and why.
	Reason string
	// Component is the type name of the offending component, if known.
	Component string
}

func (e *MountError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("mount %s: %s", e.Component, e.Reason)
	}
	return fmt.Sprintf("mount: %s", e.Reason)
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "cmd.render").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the yuzu engine.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *EngineError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
