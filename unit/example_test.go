package unit_test

import (
	"fmt"

	"github.com/igorlesik/rustamath-mks/unit"
)

// ExampleUnit_Mul demonstrates combining units algebraically.
func ExampleUnit_Mul() {
	distance := unit.SpeedOfLight.Mul(unit.Time)
	fmt.Println(distance.Equal(unit.LightYear))
	fmt.Println(distance)
	// Output:
	// true
	// [m]
}

// ExampleUnit_String demonstrates the canonical bracketed rendering.
func ExampleUnit_String() {
	fmt.Println(unit.Dimensionless)
	fmt.Println(unit.GravAccel)
	fmt.Println(unit.VacuumPermittivity)
	// Output:
	// []
	// [m / s^2]
	// [s^4 A^2 / m^3 kg]
}

// ExampleUnit_Root demonstrates the divisibility requirement of roots.
func ExampleUnit_Root() {
	timeSquared := unit.Time.Pow(2)
	period, err := timeSquared.Root(2)
	fmt.Println(period, err)

	_, err = unit.SpeedOfLight.Root(2)
	fmt.Println(err)
	// Output:
	// [s] <nil>
	// Root: non-integer unit exponent: [m / s]
}
