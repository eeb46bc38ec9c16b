package qtab

import (
	"errors"
	"fmt"

	"github.com/latticeq/qtab/internal/qtab/protocols"
)

// ErrorCode represents a qtab error code.
type ErrorCode int

const (
	// ErrUnknown represents an unknown error.
	ErrUnknown ErrorCode = iota

	// ErrInvalidConfig represents an invalid configuration error.
	ErrInvalidConfig

	// ErrBadDataStructure represents project! called on a tableau shape
	// that cannot support the requested operation in sub-cubic time
	// (spec §7.2): a Destabilizer whose Rank is not full.
	ErrBadDataStructure

	// ErrUndefinedBehavior represents a documented-undefined-behavior
	// precondition violation (spec §7.3): traceout! with |Q| > rank,
	// reset_qubits! with mismatched sizes.
	ErrUndefinedBehavior

	// ErrInvalidInput represents an invalid input error.
	ErrInvalidInput
)

func (c ErrorCode) String() string {
	switch c {
	case ErrInvalidConfig:
		return "InvalidConfig"
	case ErrBadDataStructure:
		return "BadDataStructure"
	case ErrUndefinedBehavior:
		return "UndefinedBehavior"
	case ErrInvalidInput:
		return "InvalidInput"
	default:
		return "Unknown"
	}
}

// TableauError represents a qtab tableau error.
type TableauError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error returns the error message.
func (e *TableauError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("qtab error [%s]: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("qtab error [%s]: %s", e.Code, e.Message)
}

// Unwrap returns the cause of the error.
func (e *TableauError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error.
func (e *TableauError) Is(target error) bool {
	t, ok := target.(*TableauError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// classify wraps an internal protocols error into the public TableauError
// taxonomy. It returns nil unchanged.
func classify(fn string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, protocols.ErrBadDataStructure) {
		return &TableauError{Code: ErrBadDataStructure, Message: fn + ": non-full-rank Destabilizer", Cause: err}
	}
	return &TableauError{Code: ErrUnknown, Message: fn + " failed", Cause: err}
}
