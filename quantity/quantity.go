package quantity

import (
	"math"
	"strconv"

	"github.com/igorlesik/rustamath-mks/errors"
	"github.com/igorlesik/rustamath-mks/unit"
)

// Quantity is a physical quantity: a float64 magnitude tagged with its Unit.
//
// Quantities follow an immutable discipline: every operation returns a new
// Quantity and never mutates its operands. The magnitude is unconstrained;
// negative and non-finite values are legal and follow IEEE 754 semantics.
type Quantity struct {
	// Val is the magnitude in MKSA base units.
	Val float64
	// Unit is the dimension of the magnitude.
	Unit unit.Unit
}

// New creates a quantity from a magnitude already expressed in MKSA base
// units.
func New(val float64, u unit.Unit) Quantity {
	return Quantity{Val: val, Unit: u}
}

// NewScaled creates a quantity from a magnitude expressed in a non-base
// measurement unit, converting it via that unit's MKSA factor. The factors
// live in the constant package:
//
//	length := quantity.NewScaled(6, constant.Foot, unit.Foot) // 1.8288 m
func NewScaled(val, factor float64, u unit.Unit) Quantity {
	return Quantity{Val: val * factor, Unit: u}
}

// NewScalar creates a dimensionless quantity.
func NewScalar(val float64) Quantity {
	return Quantity{Val: val, Unit: unit.Dimensionless}
}

// Add returns the sum of two quantities. Both operands must share a unit;
// otherwise Add fails with errors.ErrIncompatibleUnits.
func (q Quantity) Add(r Quantity) (Quantity, error) {
	if !q.Unit.Equal(r.Unit) {
		return Quantity{}, errors.NewIncompatibleUnits("Add", q.Unit.String(), r.Unit.String())
	}
	return Quantity{Val: q.Val + r.Val, Unit: q.Unit}, nil
}

// Sub returns the difference of two quantities. Both operands must share a
// unit; otherwise Sub fails with errors.ErrIncompatibleUnits.
func (q Quantity) Sub(r Quantity) (Quantity, error) {
	if !q.Unit.Equal(r.Unit) {
		return Quantity{}, errors.NewIncompatibleUnits("Sub", q.Unit.String(), r.Unit.String())
	}
	return Quantity{Val: q.Val - r.Val, Unit: q.Unit}, nil
}

// Mul returns the product of two quantities. Always defined: any two
// quantities can be multiplied, the result unit is the product of the
// operand units.
func (q Quantity) Mul(r Quantity) Quantity {
	return Quantity{Val: q.Val * r.Val, Unit: q.Unit.Mul(r.Unit)}
}

// Div returns the quotient of two quantities. Always defined; division by a
// zero magnitude follows float64 semantics (Inf or NaN) rather than raising
// a library error.
func (q Quantity) Div(r Quantity) Quantity {
	return Quantity{Val: q.Val / r.Val, Unit: q.Unit.Div(r.Unit)}
}

// Sqrt returns the square root of the quantity. It fails with
// errors.ErrNonIntegerExponent if any unit exponent is odd. A negative
// magnitude yields NaN, per float64 semantics.
func (q Quantity) Sqrt() (Quantity, error) {
	u, err := q.Unit.Root(2)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Val: math.Sqrt(q.Val), Unit: u}, nil
}

// Cbrt returns the cubic root of the quantity. It fails with
// errors.ErrNonIntegerExponent if any unit exponent is not divisible by
// three.
func (q Quantity) Cbrt() (Quantity, error) {
	u, err := q.Unit.Root(3)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Val: math.Cbrt(q.Val), Unit: u}, nil
}

// Pow raises the quantity to an integer power. Always defined; a power of
// zero yields a dimensionless 1 (for finite non-zero magnitudes, per
// math.Pow).
func (q Quantity) Pow(n int) Quantity {
	return Quantity{Val: math.Pow(q.Val, float64(n)), Unit: q.Unit.Pow(n)}
}

// Equal reports whether two quantities have the same unit and the same
// magnitude. Equality is total: quantities of different dimensions are
// simply unequal, never an error. Use Compare when a dimension mismatch
// should be detected loudly.
func (q Quantity) Equal(r Quantity) bool {
	return q.Unit.Equal(r.Unit) && q.Val == r.Val
}

// Compare orders two quantities of the same dimension, returning -1, 0 or
// +1. Quantities of different dimensions cannot be ordered; Compare fails
// with errors.ErrIncompatibleUnits.
func (q Quantity) Compare(r Quantity) (int, error) {
	if !q.Unit.Equal(r.Unit) {
		return 0, errors.NewIncompatibleUnits("Compare", q.Unit.String(), r.Unit.String())
	}
	switch {
	case q.Val < r.Val:
		return -1, nil
	case q.Val > r.Val:
		return 1, nil
	default:
		return 0, nil
	}
}

// Less reports whether q is strictly smaller than r. Fails with
// errors.ErrIncompatibleUnits when the units differ.
func (q Quantity) Less(r Quantity) (bool, error) {
	c, err := q.Compare(r)
	if err != nil {
		return false, err
	}
	return c < 0, nil
}

// Greater reports whether q is strictly larger than r. Fails with
// errors.ErrIncompatibleUnits when the units differ.
func (q Quantity) Greater(r Quantity) (bool, error) {
	c, err := q.Compare(r)
	if err != nil {
		return false, err
	}
	return c > 0, nil
}

// String renders the magnitude followed by the bracketed unit, e.g.
// "9.80665 [m / s^2]".
func (q Quantity) String() string {
	return strconv.FormatFloat(q.Val, 'g', -1, 64) + " " + q.Unit.String()
}
