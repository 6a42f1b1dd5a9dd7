package unit

import (
	"strconv"
	"strings"
)

// String returns the canonical bracketed rendering of the unit.
//
// Dimensionless renders as "[]". Positive powers come first, space-separated
// in canonical dimension order, with a "^k" suffix when the exponent exceeds
// one. Negative powers follow after " / " with their signs dropped. When all
// powers are negative the numerator is rendered as "1".
//
//	New(1, 0, -2, 0, 0, 0, 0).String()  // "[m / s^2]"
//	New(-3, -1, 4, 2, 0, 0, 0).String() // "[s^4 A^2 / m^3 kg]"
//	New(0, 0, -1, 0, 0, 0, 0).String()  // "[1 / s]"
func (u Unit) String() string {
	return "[" + u.Render() + "]"
}

// Render returns the unit string without the surrounding brackets; the
// dimensionless unit renders as the empty string.
func (u Unit) Render() string {
	var pos, neg []string
	for i, e := range u.exp {
		switch {
		case e > 0:
			pos = append(pos, powerTerm(symbols[i], e))
		case e < 0:
			neg = append(neg, powerTerm(symbols[i], -e))
		}
	}

	if pos == nil && neg == nil {
		return ""
	}

	var b strings.Builder
	if pos != nil {
		b.WriteString(strings.Join(pos, " "))
	} else {
		b.WriteString("1")
	}
	if neg != nil {
		b.WriteString(" / ")
		b.WriteString(strings.Join(neg, " "))
	}
	return b.String()
}

func powerTerm(symbol string, e int) string {
	if e > 1 {
		return symbol + "^" + strconv.Itoa(e)
	}
	return symbol
}
