package spatial

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/units/pkg/units"
)

func TestNewPose_StoresOrientation(t *testing.T) {
	p := NewPoseXY(units.Meters(1), units.Meters(2), units.Degrees(90))
	assert.Equal(t, units.Meters(1), p.X)
	assert.InDelta(t, 90, units.ToDegrees(p.Orientation), tol)

	var vp VelocityPose = NewPose(New(units.MetersPerSecond(1), units.MetersPerSecond(0)), units.RadiansPerSecond(0.5))
	assert.InDelta(t, 0.5, units.ToRadiansPerSecond(vp.Orientation), tol)

	var ap AccelerationPose = NewPoseXY(units.MetersPerSecondSquared(1), units.MetersPerSecondSquared(2), units.RotationsPerMinuteSquared(0))
	ap = ap.Turn(units.RotationsPerMinuteSquared(2))
	assert.InDelta(t, 2, units.ToRotationsPerMinuteSquared(ap.Orientation), tol)
	assert.InDelta(t, 63.43494882292201, units.ToDegrees(ap.Theta()), 1e-9)
}

func TestNewPose_RejectsMismatchedOrientation(t *testing.T) {
	var err error
	func() {
		defer func() { err, _ = recover().(error) }()
		NewPoseXY(units.Meters(1), units.Meters(2), units.RadiansPerSecond(1))
	}()
	require.Error(t, err)
	assert.True(t, errors.Is(err, units.ErrDimensionMismatch))
}

func TestPose_With(t *testing.T) {
	var p Pose = NewPoseXY(units.Meters(0), units.Meters(0), units.Degrees(0))
	p = p.WithOrientation(units.Degrees(45)).WithVector(New(units.Meters(3), units.Meters(4)))

	assert.InDelta(t, 45, units.ToDegrees(p.Orientation), tol)
	assert.InDelta(t, 5, units.ToMeters(p.Magnitude()), tol)
	assert.Equal(t, "(3 m, 4 m, 0.7853981633974483 rad)", p.String())
}
