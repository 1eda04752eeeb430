package units_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/units/pkg/units"
)

func TestCompassAngle(t *testing.T) {
	tests := []struct {
		compass float64
		want    float64
	}{
		{15, 75},
		{-15, 105},
		{0, 90},
		{90, 0},
		{180, -90},
	}
	for _, tt := range tests {
		c := units.CompassDegrees(tt.compass)
		assert.InDelta(t, tt.want, units.ToDegrees(c.Angle()), tol, "compass %v", tt.compass)
		assert.InDelta(t, tt.compass, units.ToCompassDegrees(c.Angle()), tol, "compass %v", tt.compass)
	}
}

func TestCompassSpacesAreDistinct(t *testing.T) {
	// One conversion moves the reading: a bearing of x is not the standard
	// angle x, except at the 45 degree fixed point.
	for _, x := range []float64{0, 15, -15, 90, 200} {
		got := units.ToDegrees(units.CompassDegrees(x).Angle())
		assert.NotEqual(t, x, got, "compass %v", x)
		assert.InDelta(t, 90-x, got, tol, "compass %v", x)
	}
	assert.InDelta(t, 45, units.ToDegrees(units.CompassDegrees(45).Angle()), tol)

	// Feeding the result back in needs an explicit reinterpretation of the
	// number; the types do not chain.
	compass := reflect.TypeOf(units.Compass{})
	angle := reflect.TypeOf(units.Angle{})
	assert.False(t, compass.ConvertibleTo(angle))
	assert.False(t, angle.ConvertibleTo(compass))
	_, ok := angle.MethodByName("Angle")
	assert.False(t, ok, "an Angle has no compass conversion")
	_, ok = compass.MethodByName("Angle")
	assert.True(t, ok)
}

func TestCompassConstructors(t *testing.T) {
	assert.InDelta(t, 90, units.ToDegrees(units.CompassRadians(0).Angle()), tol)
	assert.InDelta(t, -270, units.ToDegrees(units.CompassRotations(1).Angle()), tol)
	assert.InDelta(t, 0.25, units.ToCompassRotations(units.Degrees(0)), tol)
	assert.InDelta(t, 0, units.ToCompassRadians(units.Degrees(90)), tol)

	c := units.CompassOf(units.Degrees(30))
	assert.InDelta(t, 30, units.ToDegrees(c.Angle()), tol)

	sum := units.CompassDegrees(10).Add(units.CompassDegrees(20)).Sub(units.CompassDegrees(5))
	assert.InDelta(t, 65, units.ToDegrees(sum.Angle()), tol)
	assert.InDelta(t, 90, units.ToDegrees(units.CompassDegrees(10).Mul(2).Div(2).Neg().Add(units.CompassDegrees(10)).Angle()), tol)
	assert.Equal(t, "0 cdeg", units.CompassRadians(0).String())
}

func TestConstrainAngle(t *testing.T) {
	tests := []struct {
		in      float64
		want180 float64
		want360 float64
	}{
		{0, 0, 0},
		{200, -160, 200},
		{-90, -90, 270},
		{180, 180, 180},
		{-180, 180, 180},
		{540, 180, 180},
		{725, 5, 5},
		{-725, -5, 355},
	}
	for _, tt := range tests {
		a := units.Degrees(tt.in)
		assert.InDelta(t, tt.want180, units.ToDegrees(units.ConstrainAngle180(a)), 1e-6, "180 of %v", tt.in)
		assert.InDelta(t, tt.want360, units.ToDegrees(units.ConstrainAngle360(a)), 1e-6, "360 of %v", tt.in)
	}
}

func TestConstrainAngle_Boundaries(t *testing.T) {
	turn := units.ToRadians(units.Rotations(1))
	tests := []struct {
		name string
		in   float64
	}{
		{"tiny negative", -1e-17},
		{"just below zero", math.Nextafter(0, -1)},
		{"full turn", 2 * math.Pi},
		{"just above pi", math.Nextafter(math.Pi, 4)},
		{"just below -pi", math.Nextafter(-math.Pi, -4)},
		{"-pi", -math.Pi},
		{"pi", math.Pi},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := units.Radians(tt.in)

			r360 := units.ToRadians(units.ConstrainAngle360(a))
			assert.GreaterOrEqual(t, r360, 0.0)
			assert.Less(t, r360, turn)

			r180 := units.ToRadians(units.ConstrainAngle180(a))
			assert.Greater(t, r180, -math.Pi)
			assert.LessOrEqual(t, r180, math.Pi)
		})
	}

	assert.Equal(t, 0.0, units.ToRadians(units.ConstrainAngle360(units.Radians(-1e-17))))
	assert.InDelta(t, 180, units.ToDegrees(units.ConstrainAngle180(units.Radians(math.Nextafter(math.Pi, 4)))), 1e-9)
}

func TestTrig(t *testing.T) {
	assert.InDelta(t, 0.5, units.ToNum(units.Sin(units.Degrees(30))), tol)
	assert.InDelta(t, 0.5, units.ToNum(units.Cos(units.Degrees(60))), tol)
	assert.InDelta(t, 1, units.ToNum(units.Tan(units.Degrees(45))), tol)
	assert.InDelta(t, 30, units.ToDegrees(units.Asin(units.Num(0.5))), tol)
	assert.InDelta(t, 60, units.ToDegrees(units.Acos(units.Num(0.5))), tol)
	assert.InDelta(t, 45, units.ToDegrees(units.Atan(units.Num(1))), tol)
	assert.InDelta(t, 135, units.ToDegrees(units.Atan2(units.Meters(1), units.Meters(-1))), tol)
}
