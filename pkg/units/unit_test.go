package units_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/units/pkg/units"
)

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		round func(float64) float64
	}{
		{"num", func(v float64) float64 { return units.ToNum(units.Num(v)) }},
		{"percent", func(v float64) float64 { return units.ToPercents(units.Percents(v)) }},
		{"lb", func(v float64) float64 { return units.ToPounds(units.Pounds(v)) }},
		{"day", func(v float64) float64 { return units.ToDays(units.Days(v)) }},
		{"usec", func(v float64) float64 { return units.ToMicroseconds(units.Microseconds(v)) }},
		{"in", func(v float64) float64 { return units.ToInches(units.Inches(v)) }},
		{"tile", func(v float64) float64 { return units.ToTiles(units.Tiles(v)) }},
		{"km2", func(v float64) float64 { return units.ToSquareKilometers(units.SquareKilometers(v)) }},
		{"miph", func(v float64) float64 { return units.ToMilesPerHour(units.MilesPerHour(v)) }},
		{"kmph2", func(v float64) float64 { return units.ToKilometersPerHourSquared(units.KilometersPerHourSquared(v)) }},
		{"inps3", func(v float64) float64 { return units.ToInchesPerSecondCubed(units.InchesPerSecondCubed(v)) }},
		{"mvolt", func(v float64) float64 { return units.ToMillivolts(units.Millivolts(v)) }},
		{"kohm", func(v float64) float64 { return units.ToKiloohms(units.Kiloohms(v)) }},
		{"rpm", func(v float64) float64 { return units.ToRotationsPerMinute(units.RotationsPerMinute(v)) }},
		{"degps2", func(v float64) float64 { return units.ToDegreesPerSecondSquared(units.DegreesPerSecondSquared(v)) }},
		{"degC", func(v float64) float64 { return units.ToDegreesCelsius(units.DegreesCelsius(v)) }},
		{"degF", func(v float64) float64 { return units.ToDegreesFahrenheit(units.DegreesFahrenheit(v)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, v := range []float64{0, 1, -2.5, 1234.5678} {
				assert.InDelta(t, v, tt.round(v), 1e-9*(1+abs(v)))
			}
		})
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func TestConversions(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"inch in cm", units.ToCentimeters(units.Inches(1)), 2.54},
		{"foot in inches", units.ToInches(units.Feet(1)), 12},
		{"mile in feet", units.ToFeet(units.Miles(1)), 5280},
		{"tile in m", units.ToMeters(units.Tiles(1)), 0.6},
		{"km in m", units.ToMeters(units.Kilometers(1)), 1000},
		{"day in sec", units.ToSeconds(units.Days(1)), 86400},
		{"pound in kg", units.ToKilograms(units.Pounds(1)), 0.4536},
		{"miph in mps", units.ToMetersPerSecond(units.MilesPerHour(1)), 0.44704},
		{"mph in mps", units.ToMetersPerSecond(units.MetersPerHour(3600)), 1},
		{"rotation in deg", units.ToDegrees(units.Rotations(1)), 360},
		{"rpm in radps", units.ToRadiansPerSecond(units.RotationsPerMinute(60)), 6.283185307179586},
		{"percent", units.ToNum(units.Percents(50)), 0.5},
		{"0 degC in K", units.ToKelvins(units.DegreesCelsius(0)), 273.15},
		{"32 degF in K", units.ToKelvins(units.DegreesFahrenheit(32)), 273.15},
		{"212 degF in degC", units.ToDegreesCelsius(units.DegreesFahrenheit(212)), 100},
		{"-40 degC in degF", units.ToDegreesFahrenheit(units.DegreesCelsius(-40)), -40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.got, 1e-9)
		})
	}
}

func TestIntegerAndFloatLiterals(t *testing.T) {
	assert.Equal(t, units.Meters(2.0), units.Meters(2))
	assert.Equal(t, units.Meters(2), units.Meters(int8(2)))
	assert.Equal(t, units.Seconds(uint(3)), units.Seconds(float32(3)))
}

func TestUnitAccessors(t *testing.T) {
	assert.Equal(t, "msec", units.Millisecond.Symbol())
	assert.Equal(t, "Millisecond", units.Millisecond.Name())
	assert.InDelta(t, 1e-3, units.Millisecond.Scale(), 0)
	assert.Equal(t, 0.0, units.Meter.Offset())
	assert.Equal(t, 273.15, units.DegreeCelsius.Offset())
	assert.Equal(t, units.Length{}.Dims(), units.Mile.Dims())
	assert.Equal(t, "2000 m", units.Meter.Format(units.Kilometers(2)))
	assert.Equal(t, "kmps", units.KilometerPerSecond.Symbol())
	assert.Equal(t, "Nanosiemen", units.Nanosiemen.Name())
}

func TestDuplicateUnitSymbolPanics(t *testing.T) {
	assert.Panics(t, func() { units.DerivedUnit("m", "OtherMeter", units.Meters(1)) })
	assert.Panics(t, func() { units.Meter.Prefixed(units.Kilo, "OtherKilometer") })
}
