package units

import (
	"math"
	"strconv"
)

// quarterTurn is 90° in radians, the offset between the two conventions.
const quarterTurn = math.Pi / 2

// Compass is a bearing: zero on the standard 90° axis, increasing
// clockwise. It is deliberately not an Angle. Use Angle to obtain the
// standard-position equivalent; there is no implicit path back.
type Compass struct {
	rad float64
}

// CompassRadians returns a bearing of v radians.
func CompassRadians[N Real](v N) Compass {
	return Compass{rad: float64(v)}
}

// CompassDegrees returns a bearing of v degrees.
func CompassDegrees[N Real](v N) Compass {
	return Compass{rad: Degree.Of(float64(v)).v}
}

// CompassRotations returns a bearing of v full turns.
func CompassRotations[N Real](v N) Compass {
	return Compass{rad: Rotation.Of(float64(v)).v}
}

// CompassOf returns the bearing of a standard-position angle. This is the
// explicit reverse of Compass.Angle.
func CompassOf(a Angle) Compass {
	return Compass{rad: quarterTurn - a.v}
}

// Angle converts c to standard position: 90° − c.
func (c Compass) Angle() Angle {
	return Angle{v: quarterTurn - c.rad}
}

// Neg returns -c.
func (c Compass) Neg() Compass { return Compass{rad: -c.rad} }

// Add returns c + d.
func (c Compass) Add(d Compass) Compass { return Compass{rad: c.rad + d.rad} }

// Sub returns c - d.
func (c Compass) Sub(d Compass) Compass { return Compass{rad: c.rad - d.rad} }

// Mul scales c by f.
func (c Compass) Mul(f float64) Compass { return Compass{rad: c.rad * f} }

// Div divides c by f.
func (c Compass) Div(f float64) Compass { return Compass{rad: c.rad / f} }

// String formats the bearing in degrees, e.g. "15 cdeg".
func (c Compass) String() string {
	return strconv.FormatFloat(c.rad/Degree.Scale(), 'g', -1, 64) + " cdeg"
}

// ToCompassRadians returns the bearing of a in radians.
func ToCompassRadians(a Angle) float64 { return CompassOf(a).rad }

// ToCompassDegrees returns the bearing of a in degrees.
func ToCompassDegrees(a Angle) float64 { return CompassOf(a).rad / Degree.Scale() }

// ToCompassRotations returns the bearing of a in full turns.
func ToCompassRotations(a Angle) float64 { return CompassOf(a).rad / Rotation.Scale() }

// ConstrainAngle360 maps a into [0°, 360°).
func ConstrainAngle360(a Angle) Angle {
	r := Mod(a, Rotation.One())
	if r.v < 0 {
		r.v += Rotation.Scale()
	}
	// A tiny negative remainder rounds up to a full turn.
	if r.v >= Rotation.Scale() {
		r.v = 0
	}
	return r
}

// ConstrainAngle180 maps a into (-180°, 180°]; -180° becomes +180°.
func ConstrainAngle180(a Angle) Angle {
	half := Degree.Of(180)
	return half.Sub(ConstrainAngle360(half.Sub(a)))
}

// Sin returns the sine of a.
func Sin(a Angle) Number { return Number{v: math.Sin(a.v)} }

// Cos returns the cosine of a.
func Cos(a Angle) Number { return Number{v: math.Cos(a.v)} }

// Tan returns the tangent of a.
func Tan(a Angle) Number { return Number{v: math.Tan(a.v)} }

// Asin returns the arcsine of n.
func Asin(n Number) Angle { return Angle{v: math.Asin(n.v)} }

// Acos returns the arccosine of n.
func Acos(n Number) Angle { return Angle{v: math.Acos(n.v)} }

// Atan returns the arctangent of n.
func Atan(n Number) Angle { return Angle{v: math.Atan(n.v)} }

// Atan2 returns the angle of the point (x, y). Both coordinates must share
// a dimension.
func Atan2[T Tag](y, x Quantity[T]) Angle {
	return Angle{v: math.Atan2(y.v, x.v)}
}
