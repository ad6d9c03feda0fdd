// Package errors provides structured error handling for the ribbon core.
//
// Most failures while building a ribbon are recoverable: a malformed field
// falls back to its default, an unsupported branch is dropped, a missing
// resource is treated as absent. Those are reported through the global
// ErrorHandler instead of being returned. Programmer misuse is returned as a
// sentinel error or, for broken integrations, raised as a ContractError panic.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindDeclaration indicates an unparsable or out-of-range declaration field.
	KindDeclaration
	// KindShape indicates a branch dropped because its parent does not accept it
	// or the recursion depth was exceeded.
	KindShape
	// KindResource indicates a missing declaration, controller, image or plugin.
	KindResource
	// KindMisuse indicates a broken integration.
	KindMisuse
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindController indicates a controller constructor failure.
	KindController
)

func (k ErrorKind) String() string {
	switch k {
	case KindDeclaration:
		return "declaration"
	case KindShape:
		return "shape"
	case KindResource:
		return "resource"
	case KindMisuse:
		return "misuse"
	case KindPanic:
		return "panic"
	case KindController:
		return "controller"
	default:
		return "unknown"
	}
}

// Sentinel errors returned by the public ribbon surface.
var (
	ErrEmptyID             = stderrors.New("ribbon: empty id")
	ErrNilHost             = stderrors.New("ribbon: nil host")
	ErrNilResolver         = stderrors.New("ribbon: nil resolver")
	ErrUnknownTab          = stderrors.New("ribbon: unknown contextual tab")
	ErrNoConstructor       = stderrors.New("ribbon: no matching controller constructor")
	ErrDuplicateController = stderrors.New("ribbon: controller already bound")
	ErrNotFound            = stderrors.New("ribbon: not found")
)

// RibbonError represents a structured, non-fatal error.
type RibbonError struct {
	// Op is the operation that failed (e.g., "ribbon.BuildItem").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// ID is the declaration id or identity path involved, if any.
	ID string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *RibbonError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s [%s] id=%s: %v", e.Op, e.Kind, e.ID, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *RibbonError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "ribbon.BuildItem").
	Op string
	// ID is the declaration id or identity path being processed, if any.
	ID string
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

// FieldError represents a declaration field that could not be coerced.
type FieldError struct {
	// Field is the attribute name.
	Field string
	// Value is the raw input.
	Value string
	// Default is the value substituted in its place.
	Default any
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid value %q for %s, using %v", e.Value, e.Field, e.Default)
}

// ContractError reports programmer misuse. It is raised with panic because it
// indicates a broken integration rather than bad input.
type ContractError struct {
	Op  string
	Msg string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s: contract violation: %s", e.Op, e.Msg)
}

// Contractf builds a ContractError for op.
func Contractf(op, format string, args ...any) *ContractError {
	return &ContractError{Op: op, Msg: fmt.Sprintf(format, args...)}
}

// ErrorHandler receives errors reported by the ribbon core.
type ErrorHandler interface {
	// HandleError is called when a recoverable error occurs.
	HandleError(err *RibbonError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

// Is, As and New mirror the standard library so callers need one import.
var (
	Is  = stderrors.Is
	As  = stderrors.As
	New = stderrors.New
)
