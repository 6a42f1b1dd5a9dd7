// Package errors provides standardized error handling patterns for the
// rustamath-mks packages. It includes standard error variables for the
// dimensional-analysis failure modes, a DimensionError type carrying the
// offending operation and units, and helper functions for consistent error
// wrapping and classification.
package errors

import (
	"errors"
	"fmt"
)

// Standard error variables for the core algebra.
var (
	// ErrIncompatibleUnits is reported when an operation that requires
	// dimensional equality (addition, subtraction, ordered comparison) is
	// given operands with differing unit vectors.
	ErrIncompatibleUnits = errors.New("incompatible units")

	// ErrNonIntegerExponent is reported when a root operation would produce
	// a non-integer exponent for some base dimension.
	ErrNonIntegerExponent = errors.New("non-integer unit exponent")
)

// Standard error variables for collaborators outside the core algebra.
var (
	// ErrUnknownConstant is reported on a lookup of a constant name that is
	// not in the table.
	ErrUnknownConstant = errors.New("unknown constant")

	// ErrInvalidCatalog is reported when a user-defined constant catalog
	// fails validation.
	ErrInvalidCatalog = errors.New("invalid catalog")
)

// DimensionError reports a dimensional-analysis failure together with the
// operation that detected it and the rendered units involved. It wraps one of
// the standard error variables, so errors.Is(err, ErrIncompatibleUnits) and
// errors.Is(err, ErrNonIntegerExponent) see through it.
type DimensionError struct {
	Err       error  // standard error variable for the failure mode
	Operation string // operation that detected the mismatch, e.g. "Add"
	Left      string // rendered unit of the first operand
	Right     string // rendered unit of the second operand, empty for unary operations
}

// Error implements the error interface.
func (de *DimensionError) Error() string {
	if de.Right != "" {
		return fmt.Sprintf("%s: %v: %s vs %s", de.Operation, de.Err, de.Left, de.Right)
	}
	return fmt.Sprintf("%s: %v: %s", de.Operation, de.Err, de.Left)
}

// Unwrap returns the standard error variable for the failure mode.
func (de *DimensionError) Unwrap() error { return de.Err }

// NewIncompatibleUnits creates a DimensionError for an operation that
// requires both operands to share a unit.
func NewIncompatibleUnits(operation, left, right string) error {
	return &DimensionError{
		Err:       ErrIncompatibleUnits,
		Operation: operation,
		Left:      left,
		Right:     right,
	}
}

// NewNonIntegerExponent creates a DimensionError for a root operation that
// would produce a fractional dimension.
func NewNonIntegerExponent(operation, unit string) error {
	return &DimensionError{
		Err:       ErrNonIntegerExponent,
		Operation: operation,
		Left:      unit,
	}
}

// IsIncompatibleUnits checks if an error was caused by a dimensional
// mismatch, seeing through any wrapping.
func IsIncompatibleUnits(err error) bool {
	return errors.Is(err, ErrIncompatibleUnits)
}

// IsNonIntegerExponent checks if an error was caused by a root operation on
// a unit with an exponent not divisible by the root degree.
func IsNonIntegerExponent(err error) bool {
	return errors.Is(err, ErrNonIntegerExponent)
}

// Wrap creates a standardized error with context following the pattern:
// "component.method: action failed: %w"
func Wrap(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s.%s: %s failed: %w", component, method, action, err)
}
