// Package quantity implements arithmetic over physical quantities: float64
// magnitudes tagged with MKSA units.
//
// The type enforces "you cannot add apples to oranges" at the arithmetic
// layer. Addition, subtraction and ordered comparison require both operands
// to share a unit and fail with errors.ErrIncompatibleUnits otherwise.
// Multiplication and division never fail: any two quantities can be
// combined, the result unit follows from the unit algebra.
//
//	length := quantity.NewScaled(6, constant.Foot, unit.Foot)
//	g := quantity.New(9.80665, unit.GravAccel)
//	period, _ := length.Div(g).Sqrt() // T = sqrt(L/g), unit [s]
//
// Equality across dimensions is total and returns false (a length is never
// equal to a time); ordered comparison across dimensions is an error. See
// the Equal and Compare documentation.
package quantity
