package constant

// Dimensionless metric-prefix scaling factors.
const (
	// Yotta is 10^24.
	Yotta = 1.0e24
	// Zetta is 10^21.
	Zetta = 1.0e21
	// Exa is 10^18.
	Exa = 1.0e18
	// Peta is 10^15.
	Peta = 1.0e15
	// Tera is 10^12.
	Tera = 1.0e12
	// Giga is 10^9.
	Giga = 1.0e9
	// Mega is 10^6.
	Mega = 1.0e6
	// Kilo is 10^3.
	Kilo = 1.0e3
	// Milli is 10^-3.
	Milli = 1.0e-3
	// Micro is 10^-6.
	Micro = 1.0e-6
	// Nano is 10^-9.
	Nano = 1.0e-9
	// Pico is 10^-12.
	Pico = 1.0e-12
	// Femto is 10^-15.
	Femto = 1.0e-15
	// Atto is 10^-18.
	Atto = 1.0e-18
	// Zepto is 10^-21.
	Zepto = 1.0e-21
	// Yocto is 10^-24.
	Yocto = 1.0e-24
)

// Binary storage sizes.
const (
	// Kilobyte is 1024 bytes.
	Kilobyte = 1024.0
	// Megabyte is 1024 kilobytes.
	Megabyte = Kilobyte * Kilobyte
	// Gigabyte is 1024 megabytes.
	Gigabyte = Megabyte * Kilobyte
	// Terabyte is 1024 gigabytes.
	Terabyte = Gigabyte * Kilobyte
	// Petabyte is 1024 terabytes.
	Petabyte = Terabyte * Kilobyte
)

// Scale multiplies a number by a factor: Scale(2.1, Mega) is 2.1e6.
func Scale(v, factor float64) float64 {
	return v * factor
}

// InUnits divides a number by a factor, expressing it in multiples of that
// factor: InUnits(Scale(2.1, Mega), Kilo) is 2100.
func InUnits(v, factor float64) float64 {
	return v / factor
}
