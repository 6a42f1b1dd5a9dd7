package unit

// Units of the physical constants and of the common measurement units, as
// MKSA exponent vectors. Many named units share one dimension (every length
// unit is [m]); the distinct names document intent at call sites and pair
// with the conversion factors in the constant package.
var (
	// SpeedOfLight is [m / s].
	SpeedOfLight = New(1, 0, -1, 0, 0, 0, 0)
	// GravitationalConstant is [m^3 / kg s^2].
	GravitationalConstant = New(3, -1, -2, 0, 0, 0, 0)
	// PlancksConstantH is [m^2 kg / s].
	PlancksConstantH = New(2, 1, -1, 0, 0, 0, 0)
	// PlancksConstantHBar is [m^2 kg / s].
	PlancksConstantHBar = New(2, 1, -1, 0, 0, 0, 0)
	// AstronomicalUnit is [m].
	AstronomicalUnit = New(1, 0, 0, 0, 0, 0, 0)
	// LightYear is [m].
	LightYear = New(1, 0, 0, 0, 0, 0, 0)
	// Parsec is [m].
	Parsec = New(1, 0, 0, 0, 0, 0, 0)
	// Accel is [m / s^2].
	Accel = New(1, 0, -2, 0, 0, 0, 0)
	// GravAccel is [m / s^2].
	GravAccel = New(1, 0, -2, 0, 0, 0, 0)
	// ElectronVolt is [m^2 kg / s^2].
	ElectronVolt = New(2, 1, -2, 0, 0, 0, 0)
	// MassElectron is [kg].
	MassElectron = New(0, 1, 0, 0, 0, 0, 0)
	// MassMuon is [kg].
	MassMuon = New(0, 1, 0, 0, 0, 0, 0)
	// MassProton is [kg].
	MassProton = New(0, 1, 0, 0, 0, 0, 0)
	// MassNeutron is [kg].
	MassNeutron = New(0, 1, 0, 0, 0, 0, 0)
	// Rydberg is [m^2 kg / s^2].
	Rydberg = New(2, 1, -2, 0, 0, 0, 0)
	// Boltzmann is [m^2 kg / s^2 K].
	Boltzmann = New(2, 1, -2, 0, -1, 0, 0)
	// MolarGas is [m^2 kg / s^2 K mol].
	MolarGas = New(2, 1, -2, 0, -1, -1, 0)
	// StandardGasVolume is [m^3 / mol].
	StandardGasVolume = New(3, 0, 0, 0, 0, -1, 0)

	// Time is [s].
	Time = New(0, 0, 1, 0, 0, 0, 0)
	// Second is [s].
	Second = New(0, 0, 1, 0, 0, 0, 0)
	// Minute is [s].
	Minute = New(0, 0, 1, 0, 0, 0, 0)
	// Hour is [s].
	Hour = New(0, 0, 1, 0, 0, 0, 0)
	// Day is [s].
	Day = New(0, 0, 1, 0, 0, 0, 0)
	// Week is [s].
	Week = New(0, 0, 1, 0, 0, 0, 0)

	// Distance is [m].
	Distance = New(1, 0, 0, 0, 0, 0, 0)
	// Meter is [m].
	Meter = New(1, 0, 0, 0, 0, 0, 0)
	// Inch is [m].
	Inch = New(1, 0, 0, 0, 0, 0, 0)
	// Foot is [m].
	Foot = New(1, 0, 0, 0, 0, 0, 0)
	// Yard is [m].
	Yard = New(1, 0, 0, 0, 0, 0, 0)
	// Mile is [m].
	Mile = New(1, 0, 0, 0, 0, 0, 0)
	// NauticalMile is [m].
	NauticalMile = New(1, 0, 0, 0, 0, 0, 0)
	// Fathom is [m].
	Fathom = New(1, 0, 0, 0, 0, 0, 0)
	// Mil is [m].
	Mil = New(1, 0, 0, 0, 0, 0, 0)
	// Point is [m].
	Point = New(1, 0, 0, 0, 0, 0, 0)
	// Texpoint is [m].
	Texpoint = New(1, 0, 0, 0, 0, 0, 0)
	// Micron is [m].
	Micron = New(1, 0, 0, 0, 0, 0, 0)
	// Angstrom is [m].
	Angstrom = New(1, 0, 0, 0, 0, 0, 0)

	// Hectare is [m^2].
	Hectare = New(2, 0, 0, 0, 0, 0, 0)
	// Acre is [m^2].
	Acre = New(2, 0, 0, 0, 0, 0, 0)
	// Barn is [m^2].
	Barn = New(2, 0, 0, 0, 0, 0, 0)

	// Liter is [m^3].
	Liter = New(3, 0, 0, 0, 0, 0, 0)
	// UsGallon is [m^3].
	UsGallon = New(3, 0, 0, 0, 0, 0, 0)
	// Quart is [m^3].
	Quart = New(3, 0, 0, 0, 0, 0, 0)
	// Pint is [m^3].
	Pint = New(3, 0, 0, 0, 0, 0, 0)
	// Cup is [m^3].
	Cup = New(3, 0, 0, 0, 0, 0, 0)
	// FluidOunce is [m^3].
	FluidOunce = New(3, 0, 0, 0, 0, 0, 0)
	// Tablespoon is [m^3].
	Tablespoon = New(3, 0, 0, 0, 0, 0, 0)
	// Teaspoon is [m^3].
	Teaspoon = New(3, 0, 0, 0, 0, 0, 0)
	// CanadianGallon is [m^3].
	CanadianGallon = New(3, 0, 0, 0, 0, 0, 0)
	// UkGallon is [m^3].
	UkGallon = New(3, 0, 0, 0, 0, 0, 0)

	// Velocity is [m / s].
	Velocity = New(1, 0, -1, 0, 0, 0, 0)
	// MilesPerHour is [m / s].
	MilesPerHour = New(1, 0, -1, 0, 0, 0, 0)
	// KilometersPerHour is [m / s].
	KilometersPerHour = New(1, 0, -1, 0, 0, 0, 0)
	// Knot is [m / s].
	Knot = New(1, 0, -1, 0, 0, 0, 0)

	// Kilogram is [kg].
	Kilogram = New(0, 1, 0, 0, 0, 0, 0)
	// PoundMass is [kg].
	PoundMass = New(0, 1, 0, 0, 0, 0, 0)
	// OunceMass is [kg].
	OunceMass = New(0, 1, 0, 0, 0, 0, 0)
	// Ton is [kg].
	Ton = New(0, 1, 0, 0, 0, 0, 0)
	// MetricTon is [kg].
	MetricTon = New(0, 1, 0, 0, 0, 0, 0)
	// UkTon is [kg].
	UkTon = New(0, 1, 0, 0, 0, 0, 0)
	// TroyOunce is [kg].
	TroyOunce = New(0, 1, 0, 0, 0, 0, 0)
	// Carat is [kg].
	Carat = New(0, 1, 0, 0, 0, 0, 0)
	// UnifiedAtomicMass is [kg].
	UnifiedAtomicMass = New(0, 1, 0, 0, 0, 0, 0)

	// GramForce is [m kg / s^2].
	GramForce = New(1, 1, -2, 0, 0, 0, 0)
	// PoundForce is [m kg / s^2].
	PoundForce = New(1, 1, -2, 0, 0, 0, 0)
	// KilopoundForce is [m kg / s^2].
	KilopoundForce = New(1, 1, -2, 0, 0, 0, 0)
	// Poundal is [m kg / s^2].
	Poundal = New(1, 1, -2, 0, 0, 0, 0)

	// Calorie is [m^2 kg / s^2].
	Calorie = New(2, 1, -2, 0, 0, 0, 0)
	// Btu is [m^2 kg / s^2].
	Btu = New(2, 1, -2, 0, 0, 0, 0)
	// Therm is [m^2 kg / s^2].
	Therm = New(2, 1, -2, 0, 0, 0, 0)
	// Horsepower is [m^2 kg / s^3].
	Horsepower = New(2, 1, -3, 0, 0, 0, 0)

	// Bar is [kg / m s^2].
	Bar = New(-1, 1, -2, 0, 0, 0, 0)
	// StdAtmosphere is [kg / m s^2].
	StdAtmosphere = New(-1, 1, -2, 0, 0, 0, 0)
	// Torr is [kg / m s^2].
	Torr = New(-1, 1, -2, 0, 0, 0, 0)
	// MeterOfMercury is [kg / m s^2].
	MeterOfMercury = New(-1, 1, -2, 0, 0, 0, 0)
	// InchOfMercury is [kg / m s^2].
	InchOfMercury = New(-1, 1, -2, 0, 0, 0, 0)
	// InchOfWater is [kg / m s^2].
	InchOfWater = New(-1, 1, -2, 0, 0, 0, 0)
	// Psi is [kg / m s^2].
	Psi = New(-1, 1, -2, 0, 0, 0, 0)

	// Poise is [kg / m s].
	Poise = New(-1, 1, -1, 0, 0, 0, 0)
	// Stokes is [m^2 / s].
	Stokes = New(2, 0, -1, 0, 0, 0, 0)

	// Stilb is [cd / m^2].
	Stilb = New(-2, 0, 0, 0, 0, 0, 1)
	// Lumen is [cd] (the steradian is dimensionless).
	Lumen = New(0, 0, 0, 0, 0, 0, 1)
	// Lux is [cd / m^2].
	Lux = New(-2, 0, 0, 0, 0, 0, 1)
	// Phot is [cd / m^2].
	Phot = New(-2, 0, 0, 0, 0, 0, 1)
	// Footcandle is [cd / m^2].
	Footcandle = New(-2, 0, 0, 0, 0, 0, 1)
	// Lambert is [cd / m^2].
	Lambert = New(-2, 0, 0, 0, 0, 0, 1)
	// Footlambert is [cd / m^2].
	Footlambert = New(-2, 0, 0, 0, 0, 0, 1)

	// Curie is [1 / s].
	Curie = New(0, 0, -1, 0, 0, 0, 0)
	// Roentgen is [s A / kg].
	Roentgen = New(0, -1, 1, 1, 0, 0, 0)
	// Rad is [m^2 / s^2].
	Rad = New(2, 0, -2, 0, 0, 0, 0)

	// SolarMass is [kg].
	SolarMass = New(0, 1, 0, 0, 0, 0, 0)
	// BohrRadius is [m].
	BohrRadius = New(1, 0, 0, 0, 0, 0, 0)
	// Newton is [m kg / s^2].
	Newton = New(1, 1, -2, 0, 0, 0, 0)
	// Dyne is [m kg / s^2].
	Dyne = New(1, 1, -2, 0, 0, 0, 0)
	// Joule is [m^2 kg / s^2].
	Joule = New(2, 1, -2, 0, 0, 0, 0)
	// Erg is [m^2 kg / s^2].
	Erg = New(2, 1, -2, 0, 0, 0, 0)
	// StefanBoltzmannConstant is [kg / s^3 K^4].
	StefanBoltzmannConstant = New(0, 1, -3, 0, -4, 0, 0)
	// ThomsonCrossSection is [m^2].
	ThomsonCrossSection = New(2, 0, 0, 0, 0, 0, 0)

	// BohrMagneton is [m^2 A].
	BohrMagneton = New(2, 0, 0, 1, 0, 0, 0)
	// NuclearMagneton is [m^2 A].
	NuclearMagneton = New(2, 0, 0, 1, 0, 0, 0)
	// ElectronMagneticMoment is [m^2 A].
	ElectronMagneticMoment = New(2, 0, 0, 1, 0, 0, 0)
	// ProtonMagneticMoment is [m^2 A].
	ProtonMagneticMoment = New(2, 0, 0, 1, 0, 0, 0)

	// Faraday is [s A / mol].
	Faraday = New(0, 0, 1, 1, 0, -1, 0)
	// ElectronCharge is [s A].
	ElectronCharge = New(0, 0, 1, 1, 0, 0, 0)
	// VacuumPermittivity is [s^4 A^2 / m^3 kg].
	VacuumPermittivity = New(-3, -1, 4, 2, 0, 0, 0)
	// VacuumPermeability is [m kg / s^2 A^2].
	VacuumPermeability = New(1, 1, -2, -2, 0, 0, 0)
	// Debye is [s^2 A / m^2].
	Debye = New(-2, 0, 2, 1, 0, 0, 0)
	// Gauss is [kg / s^2 A].
	Gauss = New(0, 1, -2, -1, 0, 0, 0)
	// Ampere is [A].
	Ampere = New(0, 0, 0, 1, 0, 0, 0)
)
