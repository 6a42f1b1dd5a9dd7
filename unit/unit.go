package unit

import (
	"github.com/igorlesik/rustamath-mks/errors"
)

// Dim indexes the base dimensions of the MKSA system in canonical order.
type Dim int

// Base dimensions. The order is fixed: it defines the layout of the exponent
// vector and the rendering order of unit strings.
const (
	Length Dim = iota
	Mass
	DimTime
	Current
	Temperature
	Amount
	Luminosity

	numDims
)

// symbols holds the rendering symbol for each base dimension, in canonical
// order.
var symbols = [numDims]string{"m", "kg", "s", "A", "K", "mol", "cd"}

// String returns the symbol of the base dimension, e.g. "kg" for Mass.
func (d Dim) String() string {
	if d < 0 || d >= numDims {
		return "?"
	}
	return symbols[d]
}

// ParseDim maps a base-dimension symbol ("m", "kg", "s", "A", "K", "mol",
// "cd") back to its Dim. The second return value reports whether the symbol
// is known.
func ParseDim(symbol string) (Dim, bool) {
	for i, s := range symbols {
		if s == symbol {
			return Dim(i), true
		}
	}
	return 0, false
}

// Unit represents a physical dimension as a vector of integer exponents over
// the seven MKSA base dimensions. The zero value is the dimensionless unit.
//
// Units are immutable: every operation returns a new Unit and never mutates
// the receiver, so Units are safe to copy and share freely.
type Unit struct {
	exp [numDims]int
}

// Dimensionless is the all-zero unit, the multiplicative identity.
var Dimensionless = Unit{}

// New returns a Unit with the given base-dimension exponents, in canonical
// order: length, mass, time, current, temperature, amount, luminosity.
func New(length, mass, time, current, temperature, amount, luminosity int) Unit {
	return Unit{exp: [numDims]int{length, mass, time, current, temperature, amount, luminosity}}
}

// FromExponents builds a Unit from a sparse dimension-to-exponent map.
// Dimensions absent from the map have exponent zero.
func FromExponents(exps map[Dim]int) Unit {
	var u Unit
	for d, e := range exps {
		if d >= 0 && d < numDims {
			u.exp[d] = e
		}
	}
	return u
}

// Exponent returns the exponent of one base dimension.
func (u Unit) Exponent(d Dim) int {
	if d < 0 || d >= numDims {
		return 0
	}
	return u.exp[d]
}

// IsDimensionless reports whether every exponent is zero.
func (u Unit) IsDimensionless() bool {
	return u == Dimensionless
}

// Equal reports structural equality of the exponent vectors.
func (u Unit) Equal(v Unit) bool {
	return u == v
}

// Mul returns the unit of a product of two quantities: the element-wise sum
// of the exponent vectors. Always defined.
func (u Unit) Mul(v Unit) Unit {
	var r Unit
	for i := range u.exp {
		r.exp[i] = u.exp[i] + v.exp[i]
	}
	return r
}

// Div returns the unit of a quotient of two quantities: the element-wise
// difference of the exponent vectors. Always defined, negative exponents
// included.
func (u Unit) Div(v Unit) Unit {
	var r Unit
	for i := range u.exp {
		r.exp[i] = u.exp[i] - v.exp[i]
	}
	return r
}

// Pow returns the unit raised to an integer power: every exponent multiplied
// by n. n may be negative (inverse) or zero (dimensionless). Always defined.
func (u Unit) Pow(n int) Unit {
	var r Unit
	for i := range u.exp {
		r.exp[i] = u.exp[i] * n
	}
	return r
}

// Root returns the n-th root of the unit: every exponent divided by n.
// It fails with errors.ErrNonIntegerExponent if any exponent is not evenly
// divisible by n; only integer exponents are representable. A degree of zero
// is reported the same way, since no exponent divides evenly by zero.
func (u Unit) Root(n int) (Unit, error) {
	if n == 0 {
		return Unit{}, errors.NewNonIntegerExponent("Root", u.String())
	}
	var r Unit
	for i := range u.exp {
		if u.exp[i]%n != 0 {
			return Unit{}, errors.NewNonIntegerExponent("Root", u.String())
		}
		r.exp[i] = u.exp[i] / n
	}
	return r, nil
}
