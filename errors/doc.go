// Package errors provides standardized error handling patterns for the
// rustamath-mks packages.
//
// # Overview
//
// The core algebra has exactly two failure modes, both programmer errors at
// the call site rather than transient conditions:
//
//   - ErrIncompatibleUnits: an operation requiring dimensional equality
//     (addition, subtraction, ordered comparison) was given operands with
//     differing unit vectors.
//   - ErrNonIntegerExponent: a root operation would produce a fractional
//     dimension (integer exponents only; fractional dimensions are out of
//     scope).
//
// Two further variables cover the collaborators outside the core:
// ErrUnknownConstant for failed constant-table lookups and ErrInvalidCatalog
// for user catalogs that fail validation.
//
// Errors are detected synchronously at the point of the offending operation
// and returned immediately. There is no retry, no coercion to a "best" unit,
// and no logging inside the library; callers decide whether to treat a
// failure as fatal or branch on it.
//
// # Error Inspection
//
// All errors integrate with the standard library's errors.Is and errors.As:
//
//	period, err := length.Div(accel)
//	if errors.IsIncompatibleUnits(err) {
//	    // fix the call site, this is a bug
//	}
//
//	var de *errors.DimensionError
//	if stderrors.As(err, &de) {
//	    log.Printf("op=%s left=%s right=%s", de.Operation, de.Left, de.Right)
//	}
//
// # Error Wrapping Pattern
//
// Error wrapping follows the standardized format:
//
//	"component.method: action failed: %w"
//
// applied via Wrap(err, "Catalog", "Load", "read file"). Classification is
// preserved through the chain because wrapping uses %w.
package errors
