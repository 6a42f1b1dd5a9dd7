package constant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScale(t *testing.T) {
	assert.Equal(t, 2_100_000.0, Scale(2.1, Mega))
	assert.Equal(t, 0.0021, Scale(2.1, Milli))
}

func TestInUnits(t *testing.T) {
	assert.Equal(t, 2100.0, InUnits(Scale(2.1, Mega), Kilo))
	assert.Equal(t, 1000.0, InUnits(Kilo, 1))
}

func TestPrefixFactors(t *testing.T) {
	assert.Equal(t, 1.0e3, Kilo)
	assert.Equal(t, 1.0e24, Yotta)
	assert.Equal(t, 1.0e-24, Yocto)
	assert.Equal(t, 1.0, Mega*Micro)
	assert.Equal(t, 1.0, Giga*Nano)
}

func TestByteSizes(t *testing.T) {
	assert.Equal(t, 1024.0, Kilobyte)
	assert.Equal(t, 1048576.0, Megabyte)
	assert.Equal(t, Megabyte*Kilobyte, Gigabyte)
	assert.Equal(t, Gigabyte*Kilobyte, Terabyte)
	assert.Equal(t, Terabyte*Kilobyte, Petabyte)
}
