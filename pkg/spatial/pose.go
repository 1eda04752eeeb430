package spatial

import (
	"fmt"

	"github.com/mesh-intelligence/units/pkg/units"
)

// AbstractPose is a planar position (or one of its time derivatives) with
// an orientation of the matching angular dimension: A must be L with the
// length and angle exponents exchanged.
type AbstractPose[L, A units.Tag] struct {
	Vector2D[L]
	Orientation units.Quantity[A]
}

// Pose is a position and heading.
type Pose = AbstractPose[units.LengthTag, units.AngleTag]

// VelocityPose is a linear and angular velocity.
type VelocityPose = AbstractPose[units.LinearVelocityTag, units.AngularVelocityTag]

// AccelerationPose is a linear and angular acceleration.
type AccelerationPose = AbstractPose[units.LinearAccelerationTag, units.AngularAccelerationTag]

// NewPose returns the pose at v with the given orientation. It panics with a
// *units.DimensionError if A is not the angular counterpart of L.
func NewPose[L, A units.Tag](v Vector2D[L], orientation units.Quantity[A]) AbstractPose[L, A] {
	want := v.X.Dims().Swap(units.BaseLength, units.BaseAngle)
	if got := orientation.Dims(); got != want {
		panic(&units.DimensionError{Op: "NewPose", Want: want, Got: got})
	}
	return AbstractPose[L, A]{Vector2D: v, Orientation: orientation}
}

// NewPoseXY is NewPose(New(x, y), orientation).
func NewPoseXY[L, A units.Tag](x, y units.Quantity[L], orientation units.Quantity[A]) AbstractPose[L, A] {
	return NewPose(New(x, y), orientation)
}

// WithOrientation returns p with its orientation replaced.
func (p AbstractPose[L, A]) WithOrientation(o units.Quantity[A]) AbstractPose[L, A] {
	p.Orientation = o
	return p
}

// WithVector returns p with its vector replaced.
func (p AbstractPose[L, A]) WithVector(v Vector2D[L]) AbstractPose[L, A] {
	p.Vector2D = v
	return p
}

// Turn returns p with d added to its orientation.
func (p AbstractPose[L, A]) Turn(d units.Quantity[A]) AbstractPose[L, A] {
	p.Orientation = p.Orientation.Add(d)
	return p
}

func (p AbstractPose[L, A]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", p.X, p.Y, p.Orientation)
}
