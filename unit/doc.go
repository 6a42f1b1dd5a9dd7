// Package unit implements the MKSA unit algebra: a Unit is an immutable
// vector of integer exponents over the seven base dimensions (length, mass,
// time, current, temperature, amount of substance, luminous intensity).
//
// Representing units as exponent vectors reduces all unit algebra to
// element-wise integer arithmetic:
//
//   - Mul adds exponent vectors
//   - Div subtracts them
//   - Pow scales them by an integer
//   - Root divides them by an integer (the only fallible operation: every
//     exponent must divide evenly, since fractional dimensions are out of
//     scope)
//
// Each operation is O(1) over the fixed dimension count. Two Units are equal
// iff all seven exponents are pairwise equal; the dimensionless unit is the
// all-zero vector and the multiplicative identity.
//
//	velocity := unit.Distance.Div(unit.Time)
//	velocity.Equal(unit.SpeedOfLight) // true
//	velocity.String()                 // "[m / s]"
//
// The package also provides named Units for the physical constants and
// common measurement units used by the constant package, e.g.
// unit.SpeedOfLight, unit.Foot, unit.LightYear:
//
//	unit.SpeedOfLight.Mul(unit.Time).Equal(unit.LightYear) // true
package unit
