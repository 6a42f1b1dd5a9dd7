package unit

import (
	"testing"

	"github.com/igorlesik/rustamath-mks/errors"
)

// Common vectors used across tests
var (
	velocity = New(1, 0, -1, 0, 0, 0, 0)
	accel    = New(1, 0, -2, 0, 0, 0, 0)
	energy   = New(2, 1, -2, 0, 0, 0, 0)
	kelvin   = New(0, 0, 0, 0, 1, 0, 0)
	candela  = New(0, 0, 0, 0, 0, 0, 1)
)

func TestMul(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Unit
		expected Unit
	}{
		{
			name:     "velocity times time is distance",
			a:        velocity,
			b:        Time,
			expected: Distance,
		},
		{
			name:     "identity",
			a:        accel,
			b:        Dimensionless,
			expected: accel,
		},
		{
			name:     "inverse cancels",
			a:        velocity,
			b:        velocity.Pow(-1),
			expected: Dimensionless,
		},
		{
			name:     "exponents add across all dimensions",
			a:        New(1, 2, 3, 4, 5, 6, 7),
			b:        New(-1, 1, -3, 1, 0, -6, 1),
			expected: New(0, 3, 0, 5, 5, 0, 8),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Mul(tt.b)
			if !got.Equal(tt.expected) {
				t.Errorf("Mul() = %v, expected %v", got, tt.expected)
			}
			// Multiplication of exponent vectors is commutative.
			if comm := tt.b.Mul(tt.a); !comm.Equal(got) {
				t.Errorf("Mul() not commutative: %v vs %v", got, comm)
			}
		})
	}
}

func TestDiv(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Unit
		expected Unit
	}{
		{
			name:     "distance over time is velocity",
			a:        Distance,
			b:        Time,
			expected: velocity,
		},
		{
			name:     "self division collapses to dimensionless",
			a:        energy,
			b:        energy,
			expected: Dimensionless,
		},
		{
			name:     "division produces negative exponents",
			a:        Dimensionless,
			b:        Time,
			expected: New(0, 0, -1, 0, 0, 0, 0),
		},
		{
			name:     "light year over speed of light is time",
			a:        LightYear,
			b:        SpeedOfLight,
			expected: Time,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Div(tt.b); !got.Equal(tt.expected) {
				t.Errorf("Div() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestPow(t *testing.T) {
	tests := []struct {
		name     string
		u        Unit
		n        int
		expected Unit
	}{
		{
			name:     "square of distance is area",
			u:        Distance,
			n:        2,
			expected: Hectare,
		},
		{
			name:     "negative power inverts",
			u:        Time,
			n:        -1,
			expected: Curie,
		},
		{
			name:     "zero power collapses to dimensionless",
			u:        energy,
			n:        0,
			expected: Dimensionless,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.u.Pow(tt.n); !got.Equal(tt.expected) {
				t.Errorf("Pow(%d) = %v, expected %v", tt.n, got, tt.expected)
			}
		})
	}
}

func TestPowComposition(t *testing.T) {
	// Pow(Pow(u, n), m) == Pow(u, n*m) for a spread of n, m.
	u := New(1, -2, 3, 0, 1, 0, -1)
	for _, n := range []int{-3, -1, 0, 1, 2, 5} {
		for _, m := range []int{-2, 0, 1, 3} {
			left := u.Pow(n).Pow(m)
			right := u.Pow(n * m)
			if !left.Equal(right) {
				t.Errorf("Pow(%d).Pow(%d) = %v, expected %v", n, m, left, right)
			}
		}
	}
}

func TestRoot(t *testing.T) {
	tests := []struct {
		name     string
		u        Unit
		n        int
		expected Unit
		wantErr  bool
	}{
		{
			name:     "square root of time squared",
			u:        Time.Pow(2),
			n:        2,
			expected: Time,
		},
		{
			name:     "cubic root of volume",
			u:        Liter,
			n:        3,
			expected: Meter,
		},
		{
			name:     "root of dimensionless is dimensionless",
			u:        Dimensionless,
			n:        2,
			expected: Dimensionless,
		},
		{
			name:     "negative degree",
			u:        New(2, 0, -2, 0, 0, 0, 0),
			n:        -2,
			expected: New(-1, 0, 1, 0, 0, 0, 0),
		},
		{
			name:    "odd exponent fails",
			u:       velocity,
			n:       2,
			wantErr: true,
		},
		{
			name:    "partially divisible vector fails",
			u:       New(2, 1, -2, 0, 0, 0, 0),
			n:       2,
			wantErr: true,
		},
		{
			name:    "zero degree fails",
			u:       Time,
			n:       0,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.u.Root(tt.n)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Root(%d) = %v, expected error", tt.n, got)
				}
				if !errors.IsNonIntegerExponent(err) {
					t.Errorf("Root(%d) error = %v, expected non-integer exponent", tt.n, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Root(%d) unexpected error: %v", tt.n, err)
			}
			if !got.Equal(tt.expected) {
				t.Errorf("Root(%d) = %v, expected %v", tt.n, got, tt.expected)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	if !Dimensionless.Equal(Unit{}) {
		t.Error("zero value is not dimensionless")
	}
	if !velocity.Equal(SpeedOfLight) {
		t.Error("equal exponent vectors compare unequal")
	}
	if velocity.Equal(accel) {
		t.Error("different exponent vectors compare equal")
	}
	// Equality is over all seven dimensions, not just the MKSA four.
	if kelvin.Equal(candela) {
		t.Error("temperature equals luminosity")
	}
}

func TestExponent(t *testing.T) {
	u := New(1, 2, 3, 4, 5, 6, 7)
	for d, expected := range map[Dim]int{
		Length: 1, Mass: 2, DimTime: 3, Current: 4,
		Temperature: 5, Amount: 6, Luminosity: 7,
	} {
		if got := u.Exponent(d); got != expected {
			t.Errorf("Exponent(%v) = %d, expected %d", d, got, expected)
		}
	}
	if got := u.Exponent(Dim(99)); got != 0 {
		t.Errorf("Exponent(out of range) = %d, expected 0", got)
	}
}

func TestFromExponents(t *testing.T) {
	u := FromExponents(map[Dim]int{Length: 1, DimTime: -2})
	if !u.Equal(accel) {
		t.Errorf("FromExponents() = %v, expected %v", u, accel)
	}
	if !FromExponents(nil).IsDimensionless() {
		t.Error("FromExponents(nil) is not dimensionless")
	}
}

func TestParseDim(t *testing.T) {
	tests := []struct {
		symbol   string
		expected Dim
		ok       bool
	}{
		{"m", Length, true},
		{"kg", Mass, true},
		{"s", DimTime, true},
		{"A", Current, true},
		{"K", Temperature, true},
		{"mol", Amount, true},
		{"cd", Luminosity, true},
		{"ft", 0, false},
		{"", 0, false},
		{"a", 0, false}, // symbols are case-sensitive
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			d, ok := ParseDim(tt.symbol)
			if ok != tt.ok || (ok && d != tt.expected) {
				t.Errorf("ParseDim(%q) = (%v, %v), expected (%v, %v)",
					tt.symbol, d, ok, tt.expected, tt.ok)
			}
		})
	}
}

func TestIsDimensionless(t *testing.T) {
	if !Dimensionless.IsDimensionless() {
		t.Error("Dimensionless.IsDimensionless() = false")
	}
	if Meter.IsDimensionless() {
		t.Error("Meter.IsDimensionless() = true")
	}
	if !Meter.Div(Foot).IsDimensionless() {
		t.Error("length ratio is not dimensionless")
	}
}
