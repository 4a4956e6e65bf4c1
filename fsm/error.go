package fsm

import (
	"errors"
	"fmt"
)

// Common compile and search errors
var (
	// ErrInvalidSymbol indicates a pattern atom outside the supported
	// alphabet (ASCII literals plus the '.', '*', '+' metacharacters)
	ErrInvalidSymbol = errors.New("invalid pattern symbol")

	// ErrDanglingQuantifier indicates a '*' or '+' with no atom to apply
	// to: either at the start of the pattern or directly after another
	// quantifier
	ErrDanglingQuantifier = errors.New("quantifier has no preceding atom")

	// ErrBudgetExceeded indicates a budgeted search ran out of steps
	// before reaching a verdict
	ErrBudgetExceeded = errors.New("match step budget exceeded")
)

// CompileError wraps compilation errors with the pattern and the byte
// offset of the offending symbol.
type CompileError struct {
	Pattern string
	Pos     int
	Err     error
}

// Error implements the error interface
func (e *CompileError) Error() string {
	return fmt.Sprintf("fsm: cannot compile %q at offset %d: %v", e.Pattern, e.Pos, e.Err)
}

// Unwrap returns the underlying error
func (e *CompileError) Unwrap() error {
	return e.Err
}
