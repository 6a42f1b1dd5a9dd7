package constant

import (
	"fmt"
	"strings"

	"github.com/igorlesik/rustamath-mks/errors"
	"github.com/igorlesik/rustamath-mks/quantity"
	"github.com/igorlesik/rustamath-mks/unit"
)

// Entry is one record of the constant table: a named factor paired with the
// Unit describing its dimension.
type Entry struct {
	// Key is the snake_case lookup name, e.g. "speed_of_light".
	Key string
	// Unit is the dimension of the constant.
	Unit unit.Unit
	// Factor is the magnitude in MKSA base units.
	Factor float64
	// Description is the human-readable name.
	Description string
}

// Quantity returns the constant as a quantity.Quantity ready for arithmetic.
func (e Entry) Quantity() quantity.Quantity {
	return quantity.New(e.Factor, e.Unit)
}

// table is read-only after initialization; order is canonical and stable.
var table = []Entry{
	{"speed_of_light", unit.SpeedOfLight, SpeedOfLight, "Speed of light"},
	{"gravitational_constant", unit.GravitationalConstant, GravitationalConstant, "Gravitational constant"},
	{"plancks_constant_h", unit.PlancksConstantH, PlancksConstantH, "Planck's constant h"},
	{"plancks_constant_hbar", unit.PlancksConstantHBar, PlancksConstantHBar, "Planck's constant h bar"},
	{"astronomical_unit", unit.AstronomicalUnit, AstronomicalUnit, "Astronomical unit"},
	{"light_year", unit.LightYear, LightYear, "Light year"},
	{"parsec", unit.Parsec, Parsec, "Parsec"},
	{"grav_accel", unit.GravAccel, GravAccel, "Grav acceleration"},
	{"electron_volt", unit.ElectronVolt, ElectronVolt, "Electron volt"},
	{"mass_electron", unit.MassElectron, MassElectron, "Mass of electron"},
	{"mass_muon", unit.MassMuon, MassMuon, "Mass of muon"},
	{"mass_proton", unit.MassProton, MassProton, "Mass of proton"},
	{"mass_neutron", unit.MassNeutron, MassNeutron, "Mass of neutron"},
	{"rydberg", unit.Rydberg, Rydberg, "Rydberg"},
	{"boltzmann", unit.Boltzmann, Boltzmann, "Boltzmann"},
	{"molar_gas", unit.MolarGas, MolarGas, "Molar gas"},
	{"standard_gas_volume", unit.StandardGasVolume, StandardGasVolume, "Standard gas volume"},
	{"second", unit.Second, Second, "Second"},
	{"minute", unit.Minute, Minute, "Minute"},
	{"hour", unit.Hour, Hour, "Hour"},
	{"day", unit.Day, Day, "Day"},
	{"week", unit.Week, Week, "Week"},
	{"meter", unit.Meter, Meter, "Meter"},
	{"inch", unit.Inch, Inch, "Inch"},
	{"foot", unit.Foot, Foot, "Foot"},
	{"yard", unit.Yard, Yard, "Yard"},
	{"mile", unit.Mile, Mile, "Mile"},
	{"nautical_mile", unit.NauticalMile, NauticalMile, "Nautical mile"},
	{"fathom", unit.Fathom, Fathom, "Fathom"},
	{"mil", unit.Mil, Mil, "Mil"},
	{"point", unit.Point, Point, "Point"},
	{"texpoint", unit.Texpoint, Texpoint, "Textpoint"},
	{"micron", unit.Micron, Micron, "Micron"},
	{"angstrom", unit.Angstrom, Angstrom, "Angstrom"},
	{"hectare", unit.Hectare, Hectare, "Hectare"},
	{"acre", unit.Acre, Acre, "Acre"},
	{"barn", unit.Barn, Barn, "Barn"},
	{"liter", unit.Liter, Liter, "Liter"},
	{"us_gallon", unit.UsGallon, UsGallon, "US gallon"},
	{"quart", unit.Quart, Quart, "Quart"},
	{"pint", unit.Pint, Pint, "Pint"},
	{"cup", unit.Cup, Cup, "Cup"},
	{"fluid_ounce", unit.FluidOunce, FluidOunce, "Fluid ounce"},
	{"tablespoon", unit.Tablespoon, Tablespoon, "Tablespoon"},
	{"teaspoon", unit.Teaspoon, Teaspoon, "Teaspoon"},
	{"canadian_gallon", unit.CanadianGallon, CanadianGallon, "Canadian gallon"},
	{"uk_gallon", unit.UkGallon, UkGallon, "UK gallon"},
	{"miles_per_hour", unit.MilesPerHour, MilesPerHour, "Miles per hour"},
	{"kilometers_per_hour", unit.KilometersPerHour, KilometersPerHour, "Kilometers per hour"},
	{"knot", unit.Knot, Knot, "Knot"},
	{"kilogram", unit.Kilogram, Kilogram, "Kilogram"},
	{"pound_mass", unit.PoundMass, PoundMass, "Pound mass"},
	{"ounce_mass", unit.OunceMass, OunceMass, "Ounce mass"},
	{"ton", unit.Ton, Ton, "Ton"},
	{"metric_ton", unit.MetricTon, MetricTon, "Metric ton"},
	{"uk_ton", unit.UkTon, UkTon, "UK ton"},
	{"troy_ounce", unit.TroyOunce, TroyOunce, "Troy ounce"},
	{"carat", unit.Carat, Carat, "Carat"},
	{"unified_atomic_mass", unit.UnifiedAtomicMass, UnifiedAtomicMass, "Unified atomic mass"},
	{"gram_force", unit.GramForce, GramForce, "Gram force"},
	{"pound_force", unit.PoundForce, PoundForce, "Pound force"},
	{"kilopound_force", unit.KilopoundForce, KilopoundForce, "Kilopound force"},
	{"poundal", unit.Poundal, Poundal, "Poundal"},
	{"calorie", unit.Calorie, Calorie, "Calorie"},
	{"btu", unit.Btu, Btu, "Btu"},
	{"therm", unit.Therm, Therm, "Therm"},
	{"horsepower", unit.Horsepower, Horsepower, "Horsepower"},
	{"bar", unit.Bar, Bar, "Bar"},
	{"std_atmosphere", unit.StdAtmosphere, StdAtmosphere, "Standard atmosphere"},
	{"torr", unit.Torr, Torr, "Torr"},
	{"meter_of_mercury", unit.MeterOfMercury, MeterOfMercury, "Meter of mercury"},
	{"inch_of_mercury", unit.InchOfMercury, InchOfMercury, "Inch of mercury"},
	{"inch_of_water", unit.InchOfWater, InchOfWater, "Inch of water"},
	{"psi", unit.Psi, Psi, "Psi"},
	{"poise", unit.Poise, Poise, "Poise"},
	{"stokes", unit.Stokes, Stokes, "Stokes"},
	{"stilb", unit.Stilb, Stilb, "Stilb"},
	{"lumen", unit.Lumen, Lumen, "Lumen"},
	{"lux", unit.Lux, Lux, "Lux"},
	{"phot", unit.Phot, Phot, "Phot"},
	{"footcandle", unit.Footcandle, Footcandle, "Footcandle"},
	{"lambert", unit.Lambert, Lambert, "Lambert"},
	{"footlambert", unit.Footlambert, Footlambert, "Footlambert"},
	{"curie", unit.Curie, Curie, "Curie"},
	{"roentgen", unit.Roentgen, Roentgen, "Roentgen"},
	{"rad", unit.Rad, Rad, "Rad"},
	{"solar_mass", unit.SolarMass, SolarMass, "Solar mass"},
	{"bohr_radius", unit.BohrRadius, BohrRadius, "Bohr radius"},
	{"newton", unit.Newton, Newton, "Newton"},
	{"dyne", unit.Dyne, Dyne, "Dyne"},
	{"joule", unit.Joule, Joule, "Joule"},
	{"erg", unit.Erg, Erg, "Erg"},
	{"stefan_boltzmann_constant", unit.StefanBoltzmannConstant, StefanBoltzmannConstant, "Stefan-Boltzmann constant"},
	{"thomson_cross_section", unit.ThomsonCrossSection, ThomsonCrossSection, "Thomson cross section"},
	{"bohr_magneton", unit.BohrMagneton, BohrMagneton, "Bohr magneton"},
	{"nuclear_magneton", unit.NuclearMagneton, NuclearMagneton, "Nuclear magneton"},
	{"electron_magnetic_moment", unit.ElectronMagneticMoment, ElectronMagneticMoment, "Electron magnetic moment"},
	{"proton_magnetic_moment", unit.ProtonMagneticMoment, ProtonMagneticMoment, "Proton magnetic moment"},
	{"faraday", unit.Faraday, Faraday, "Faraday"},
	{"electron_charge", unit.ElectronCharge, ElectronCharge, "Electron charge"},
	{"vacuum_permittivity", unit.VacuumPermittivity, VacuumPermittivity, "Vacuum permittivity"},
	{"vacuum_permeability", unit.VacuumPermeability, VacuumPermeability, "Vacuum permeability"},
	{"debye", unit.Debye, Debye, "Debye"},
	{"gauss", unit.Gauss, Gauss, "Gauss"},
}

var index = make(map[string]int, len(table))

func init() {
	for i, e := range table {
		index[e.Key] = i
	}
}

// Lookup returns the table entry for a key. It fails with
// errors.ErrUnknownConstant for keys not in the table.
func Lookup(key string) (Entry, error) {
	i, ok := index[key]
	if !ok {
		return Entry{}, fmt.Errorf("constant %q: %w", key, errors.ErrUnknownConstant)
	}
	return table[i], nil
}

// Find returns the entries whose key or description contains substr,
// case-insensitively, in canonical table order.
func Find(substr string) []Entry {
	needle := strings.ToLower(substr)
	var out []Entry
	for _, e := range table {
		if strings.Contains(e.Key, needle) ||
			strings.Contains(strings.ToLower(e.Description), needle) {
			out = append(out, e)
		}
	}
	return out
}

// All returns a copy of the constant table in canonical order.
func All() []Entry {
	out := make([]Entry, len(table))
	copy(out, table)
	return out
}
