package constant

// Physical constants and measurement-unit conversion factors in MKSA base
// units. A factor converts a magnitude expressed in the named unit into base
// units, e.g. 6 feet is 6 * Foot meters. Values follow the GSL MKS constant
// table.
const (
	// SpeedOfLight is [m / s].
	SpeedOfLight = 2.99792458e8
	// GravitationalConstant is [m^3 / kg s^2].
	GravitationalConstant = 6.673e-11
	// PlancksConstantH is [m^2 kg / s].
	PlancksConstantH = 6.62606896e-34
	// PlancksConstantHBar is [m^2 kg / s].
	PlancksConstantHBar = 1.05457162825e-34
	// AstronomicalUnit is [m].
	AstronomicalUnit = 1.49597870691e11
	// LightYear is [m].
	LightYear = 9.46053620707e15
	// Parsec is [m].
	Parsec = 3.08567758135e16
	// GravAccel is [m / s^2].
	GravAccel = 9.80665e0
	// ElectronVolt is [m^2 kg / s^2].
	ElectronVolt = 1.602176487e-19
	// MassElectron is [kg].
	MassElectron = 9.10938188e-31
	// MassMuon is [kg].
	MassMuon = 1.88353109e-28
	// MassProton is [kg].
	MassProton = 1.67262158e-27
	// MassNeutron is [kg].
	MassNeutron = 1.67492716e-27
	// Rydberg is [m^2 kg / s^2].
	Rydberg = 2.17987196968e-18
	// Boltzmann is [m^2 kg / s^2 K].
	Boltzmann = 1.3806504e-23
	// MolarGas is [m^2 kg / s^2 K mol].
	MolarGas = 8.314472e0
	// StandardGasVolume is [m^3 / mol].
	StandardGasVolume = 2.2710981e-2

	// Second is [s].
	Second = 1.0
	// Minute is [s].
	Minute = 6.0e1
	// Hour is [s].
	Hour = 3.6e3
	// Day is [s].
	Day = 8.64e4
	// Week is [s].
	Week = 6.048e5

	// Meter is [m].
	Meter = 1.0
	// Inch is [m].
	Inch = 2.54e-2
	// Foot is [m].
	Foot = 3.048e-1
	// Yard is [m].
	Yard = 9.144e-1
	// Mile is [m].
	Mile = 1.609344e3
	// NauticalMile is [m].
	NauticalMile = 1.852e3
	// Fathom is [m].
	Fathom = 1.8288e0
	// Mil is [m].
	Mil = 2.54e-5
	// Point is [m].
	Point = 3.52777777778e-4
	// Texpoint is [m].
	Texpoint = 3.51459803515e-4
	// Micron is [m].
	Micron = 1e-6
	// Angstrom is [m].
	Angstrom = 1e-10

	// Hectare is [m^2].
	Hectare = 1e4
	// Acre is [m^2].
	Acre = 4.04685642241e3
	// Barn is [m^2].
	Barn = 1e-28

	// Liter is [m^3].
	Liter = 1e-3
	// UsGallon is [m^3].
	UsGallon = 3.78541178402e-3
	// Quart is [m^3].
	Quart = 9.46352946004e-4
	// Pint is [m^3].
	Pint = 4.73176473002e-4
	// Cup is [m^3].
	Cup = 2.36588236501e-4
	// FluidOunce is [m^3].
	FluidOunce = 2.95735295626e-5
	// Tablespoon is [m^3].
	Tablespoon = 1.47867647813e-5
	// Teaspoon is [m^3].
	Teaspoon = 4.92892159375e-6
	// CanadianGallon is [m^3].
	CanadianGallon = 4.54609e-3
	// UkGallon is [m^3].
	UkGallon = 4.546092e-3

	// MilesPerHour is [m / s].
	MilesPerHour = 4.4704e-1
	// KilometersPerHour is [m / s].
	KilometersPerHour = 2.77777777778e-1
	// Knot is [m / s].
	Knot = 5.14444444444e-1

	// Kilogram is [kg].
	Kilogram = 1.0
	// PoundMass is [kg].
	PoundMass = 4.5359237e-1
	// OunceMass is [kg].
	OunceMass = 2.8349523125e-2
	// Ton is [kg].
	Ton = 9.0718474e2
	// MetricTon is [kg].
	MetricTon = 1e3
	// UkTon is [kg].
	UkTon = 1.0160469088e3
	// TroyOunce is [kg].
	TroyOunce = 3.1103475e-2
	// Carat is [kg].
	Carat = 2e-4
	// UnifiedAtomicMass is [kg].
	UnifiedAtomicMass = 1.660538782e-27

	// GramForce is [m kg / s^2].
	GramForce = 9.80665e-3
	// PoundForce is [m kg / s^2].
	PoundForce = 4.44822161526e0
	// KilopoundForce is [m kg / s^2].
	KilopoundForce = 4.44822161526e3
	// Poundal is [m kg / s^2].
	Poundal = 1.38255e-1

	// Calorie is [m^2 kg / s^2].
	Calorie = 4.1868e0
	// Btu is [m^2 kg / s^2].
	Btu = 1.05505585262e3
	// Therm is [m^2 kg / s^2].
	Therm = 1.05506e8
	// Horsepower is [m^2 kg / s^3].
	Horsepower = 7.457e2

	// Bar is [kg / m s^2].
	Bar = 1e5
	// StdAtmosphere is [kg / m s^2].
	StdAtmosphere = 1.01325e5
	// Torr is [kg / m s^2].
	Torr = 1.33322368421e2
	// MeterOfMercury is [kg / m s^2].
	MeterOfMercury = 1.33322368421e5
	// InchOfMercury is [kg / m s^2].
	InchOfMercury = 3.38638815789e3
	// InchOfWater is [kg / m s^2].
	InchOfWater = 2.490889e2
	// Psi is [kg / m s^2].
	Psi = 6.89475729317e3

	// Poise is [kg / m s].
	Poise = 1e-1
	// Stokes is [m^2 / s].
	Stokes = 1e-4

	// Stilb is [cd / m^2].
	Stilb = 1e4
	// Lumen is [cd].
	Lumen = 1e0
	// Lux is [cd / m^2].
	Lux = 1e0
	// Phot is [cd / m^2].
	Phot = 1e4
	// Footcandle is [cd / m^2].
	Footcandle = 1.076e1
	// Lambert is [cd / m^2].
	Lambert = 1e4
	// Footlambert is [cd / m^2].
	Footlambert = 1.07639104e1

	// Curie is [1 / s].
	Curie = 3.7e10
	// Roentgen is [s A / kg].
	Roentgen = 2.58e-4
	// Rad is [m^2 / s^2].
	Rad = 1e-2

	// SolarMass is [kg].
	SolarMass = 1.98892e30
	// BohrRadius is [m].
	BohrRadius = 5.291772083e-11
	// Newton is [m kg / s^2].
	Newton = 1e0
	// Dyne is [m kg / s^2].
	Dyne = 1e-5
	// Joule is [m^2 kg / s^2].
	Joule = 1e0
	// Erg is [m^2 kg / s^2].
	Erg = 1e-7
	// StefanBoltzmannConstant is [kg / s^3 K^4].
	StefanBoltzmannConstant = 5.67040047374e-8
	// ThomsonCrossSection is [m^2].
	ThomsonCrossSection = 6.65245893699e-29

	// BohrMagneton is [m^2 A].
	BohrMagneton = 9.27400899e-24
	// NuclearMagneton is [m^2 A].
	NuclearMagneton = 5.05078317e-27
	// ElectronMagneticMoment is [m^2 A].
	ElectronMagneticMoment = 9.28476362e-24
	// ProtonMagneticMoment is [m^2 A].
	ProtonMagneticMoment = 1.410606633e-26

	// Faraday is [s A / mol].
	Faraday = 9.64853429775e4
	// ElectronCharge is [s A].
	ElectronCharge = 1.602176487e-19
	// VacuumPermittivity is [s^4 A^2 / m^3 kg].
	VacuumPermittivity = 8.854187817e-12
	// VacuumPermeability is [m kg / s^2 A^2].
	VacuumPermeability = 1.25663706144e-6
	// Debye is [s^2 A / m^2].
	Debye = 3.33564095198e-30
	// Gauss is [kg / s^2 A].
	Gauss = 1e-4
)
