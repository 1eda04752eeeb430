package spatial

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/units/pkg/units"
)

const tol = 1e-9

func TestVector2D_Arithmetic(t *testing.T) {
	a := New(units.Meters(1), units.Meters(2))
	b := New(units.Meters(3), units.Meters(-1))

	assert.Equal(t, New(units.Meters(4), units.Meters(1)), a.Add(b))
	assert.Equal(t, New(units.Meters(-2), units.Meters(3)), a.Sub(b))
	assert.Equal(t, New(units.Meters(2), units.Meters(4)), a.Mul(2))
	assert.Equal(t, New(units.Meters(0.5), units.Meters(1)), a.Div(2))
	assert.Equal(t, "(1 m, 2 m)", a.String())
}

func TestVector2D_Polar(t *testing.T) {
	v := FromPolar(units.Degrees(90), units.Meters(-2))
	assert.InDelta(t, 0, units.ToMeters(v.X), tol)
	assert.InDelta(t, 2, units.ToMeters(v.Y), tol)

	u := UnitVector(units.Degrees(60))
	assert.InDelta(t, 0.5, units.ToNum(u.X), tol)
	assert.InDelta(t, 1, units.ToNum(u.Magnitude()), tol)

	assert.InDelta(t, 60, units.ToDegrees(u.Theta()), tol)
}

func TestVector2D_Geometry(t *testing.T) {
	origin := New(units.Meters(0), units.Meters(0))
	p := New(units.Meters(3), units.Meters(4))

	assert.InDelta(t, 5, units.ToMeters(p.Magnitude()), tol)
	assert.InDelta(t, 5, units.ToMeters(origin.DistanceTo(p)), tol)
	assert.Equal(t, p, origin.VectorTo(p))
	assert.InDelta(t, 180, units.ToDegrees(p.AngleTo(New(units.Meters(0), units.Meters(4)))), tol)

	n := p.Normalize()
	assert.InDelta(t, 0.6, units.ToNum(n.X), tol)
	assert.InDelta(t, 0.8, units.ToNum(n.Y), tol)
}

func TestVector2D_Rotation(t *testing.T) {
	v := New(units.Meters(1), units.Meters(0))

	r := v.RotatedBy(units.Degrees(90))
	assert.InDelta(t, 0, units.ToMeters(r.X), tol)
	assert.InDelta(t, 1, units.ToMeters(r.Y), tol)

	r = New(units.Meters(0), units.Meters(2)).RotatedTo(units.Degrees(180))
	assert.InDelta(t, -2, units.ToMeters(r.X), tol)
	assert.InDelta(t, 0, units.ToMeters(r.Y), tol)
}

func TestVector2D_DotCross(t *testing.T) {
	force := New(units.Newtons(0), units.Newtons(10))
	arm := New(units.Meters(2), units.Meters(0))

	torque := Cross[units.TorqueTag](arm, force)
	assert.InDelta(t, 20, units.ToNewtonMeters(torque), tol)

	work := Dot[units.TorqueTag](force, New(units.Meters(1), units.Meters(3)))
	assert.InDelta(t, 30, work.Base(), tol)

	area := Dot[units.AreaTag](arm, arm)
	assert.InDelta(t, 4, units.ToSquareMeters(area), tol)

	var err error
	func() {
		defer func() { err, _ = recover().(error) }()
		Dot[units.LengthTag](arm, arm)
	}()
	assert.True(t, errors.Is(err, units.ErrDimensionMismatch))
}

func TestVector2D_CommonAliases(t *testing.T) {
	var p V2Position = New(units.Feet(1), units.Inches(12))
	require.InDelta(t, units.ToMeters(p.X), units.ToMeters(p.Y), tol)

	var v V2Velocity = FromPolar(units.Degrees(0), units.MetersPerSecond(3))
	assert.InDelta(t, 3, units.ToMetersPerSecond(v.X), tol)
}
