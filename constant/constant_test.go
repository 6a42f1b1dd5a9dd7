package constant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igorlesik/rustamath-mks/errors"
	"github.com/igorlesik/rustamath-mks/quantity"
	"github.com/igorlesik/rustamath-mks/unit"
)

func TestLookup(t *testing.T) {
	e, err := Lookup("speed_of_light")
	require.NoError(t, err)
	assert.Equal(t, "speed_of_light", e.Key)
	assert.Equal(t, 2.99792458e8, e.Factor)
	assert.True(t, e.Unit.Equal(unit.SpeedOfLight))
	assert.Equal(t, "Speed of light", e.Description)
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("flux_capacitance")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUnknownConstant)
}

func TestTableKeysAreUnique(t *testing.T) {
	assert.Len(t, index, len(table), "duplicate keys collapse in the index")
	for _, e := range table {
		assert.NotEmpty(t, e.Key)
		assert.NotEmpty(t, e.Description)
	}
}

// The speed-of-light unit multiplied by the time unit equals the light-year
// unit exactly, by exponent-vector equality.
func TestSpeedOfLightTimesTimeIsLightYear(t *testing.T) {
	c, err := Lookup("speed_of_light")
	require.NoError(t, err)

	assert.True(t, c.Unit.Mul(unit.Time).Equal(unit.LightYear))
}

// Traveling one light year at the speed of light takes about 365.25 days.
func TestLightYearTravelTime(t *testing.T) {
	ly, err := Lookup("light_year")
	require.NoError(t, err)
	c, err := Lookup("speed_of_light")
	require.NoError(t, err)

	travel := ly.Quantity().Div(c.Quantity())
	assert.True(t, travel.Unit.Equal(unit.Time))
	assert.InEpsilon(t, Day*365.25, travel.Val, 1.0e-4)
}

func TestQuantity(t *testing.T) {
	g, err := Lookup("grav_accel")
	require.NoError(t, err)

	q := g.Quantity()
	assert.Equal(t, quantity.New(9.80665, unit.GravAccel), q)
	assert.Equal(t, "[m / s^2]", q.Unit.String())
}

func TestFind(t *testing.T) {
	gallons := Find("gallon")
	require.Len(t, gallons, 3)
	assert.Equal(t, "us_gallon", gallons[0].Key)
	assert.Equal(t, "canadian_gallon", gallons[1].Key)
	assert.Equal(t, "uk_gallon", gallons[2].Key)

	// Description matching is case-insensitive.
	planck := Find("PLANCK")
	require.Len(t, planck, 2)

	assert.Empty(t, Find("furlong"))
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	require.Len(t, all, len(table))
	assert.Equal(t, "speed_of_light", all[0].Key)

	all[0].Key = "mutated"
	fresh, err := Lookup("speed_of_light")
	require.NoError(t, err)
	assert.Equal(t, "speed_of_light", fresh.Key)
}

// Factors agree with the units they are tagged with: one mile per hour
// expressed via its factor matches the mile and hour factors combined.
func TestFactorConsistency(t *testing.T) {
	assert.InEpsilon(t, Mile/Hour, MilesPerHour, 1e-9)
	assert.InEpsilon(t, 1e3/Hour, KilometersPerHour, 1e-9)
	assert.InEpsilon(t, NauticalMile/Hour, Knot, 1e-9)
	assert.InEpsilon(t, 12*Inch, Foot, 1e-12)
	assert.InEpsilon(t, 3*Foot, Yard, 1e-12)
}
