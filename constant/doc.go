// Package constant is the read-only table of physical constants and
// measurement-unit conversion factors in MKSA base units, each paired with
// its unit from the unit package, plus dimensionless metric-prefix scale
// factors.
//
// The table is pure static data: no logic beyond lookup, initialized before
// first use and never modified, safe for concurrent reads.
//
//	c, _ := constant.Lookup("speed_of_light")
//	halfC := c.Quantity().Mul(quantity.NewScalar(0.5))
package constant
