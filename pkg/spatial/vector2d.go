package spatial

import (
	"fmt"

	"github.com/mesh-intelligence/units/pkg/units"
)

// Vector2D is a planar vector with components of dimension T.
type Vector2D[T units.Tag] struct {
	X units.Quantity[T]
	Y units.Quantity[T]
}

// Common planar vectors.
type (
	V2Position     = Vector2D[units.LengthTag]
	V2Velocity     = Vector2D[units.LinearVelocityTag]
	V2Acceleration = Vector2D[units.LinearAccelerationTag]
	V2Force        = Vector2D[units.ForceTag]
)

// New returns the vector (x, y).
func New[T units.Tag](x, y units.Quantity[T]) Vector2D[T] {
	return Vector2D[T]{X: x, Y: y}
}

// FromPolar returns the vector of length |m| pointing at theta.
func FromPolar[T units.Tag](theta units.Angle, m units.Quantity[T]) Vector2D[T] {
	m = units.Abs(m)
	theta = units.ConstrainAngle360(theta)
	return Vector2D[T]{
		X: m.Mul(units.ToNum(units.Cos(theta))),
		Y: m.Mul(units.ToNum(units.Sin(theta))),
	}
}

// UnitVector returns the dimensionless unit vector pointing at theta.
func UnitVector(theta units.Angle) Vector2D[units.NumberTag] {
	return FromPolar(theta, units.Num(1))
}

// Add returns v + o.
func (v Vector2D[T]) Add(o Vector2D[T]) Vector2D[T] {
	return Vector2D[T]{X: v.X.Add(o.X), Y: v.Y.Add(o.Y)}
}

// Sub returns v - o.
func (v Vector2D[T]) Sub(o Vector2D[T]) Vector2D[T] {
	return Vector2D[T]{X: v.X.Sub(o.X), Y: v.Y.Sub(o.Y)}
}

// Mul scales v by f.
func (v Vector2D[T]) Mul(f float64) Vector2D[T] {
	return Vector2D[T]{X: v.X.Mul(f), Y: v.Y.Mul(f)}
}

// Div divides v by f.
func (v Vector2D[T]) Div(f float64) Vector2D[T] {
	return Vector2D[T]{X: v.X.Div(f), Y: v.Y.Div(f)}
}

// Theta returns the direction of v.
func (v Vector2D[T]) Theta() units.Angle {
	return units.Atan2(v.Y, v.X)
}

// Magnitude returns |v|.
func (v Vector2D[T]) Magnitude() units.Quantity[T] {
	return units.Hypot(v.X, v.Y)
}

// VectorTo returns the vector from v to o.
func (v Vector2D[T]) VectorTo(o Vector2D[T]) Vector2D[T] {
	return o.Sub(v)
}

// AngleTo returns the direction from v to o.
func (v Vector2D[T]) AngleTo(o Vector2D[T]) units.Angle {
	return v.VectorTo(o).Theta()
}

// DistanceTo returns |o - v|.
func (v Vector2D[T]) DistanceTo(o Vector2D[T]) units.Quantity[T] {
	return v.VectorTo(o).Magnitude()
}

// Normalize returns v / |v| as a dimensionless vector. The zero vector
// yields NaN components.
func (v Vector2D[T]) Normalize() Vector2D[units.NumberTag] {
	m := v.Magnitude()
	return Vector2D[units.NumberTag]{
		X: units.Div[units.NumberTag](v.X, m),
		Y: units.Div[units.NumberTag](v.Y, m),
	}
}

// RotatedBy returns v rotated counter-clockwise by angle.
func (v Vector2D[T]) RotatedBy(angle units.Angle) Vector2D[T] {
	return FromPolar(v.Theta().Add(angle), v.Magnitude())
}

// RotatedTo returns a vector of v's magnitude pointing at angle.
func (v Vector2D[T]) RotatedTo(angle units.Angle) Vector2D[T] {
	return FromPolar(angle, v.Magnitude())
}

func (v Vector2D[T]) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}

// Dot returns the scalar product of a and b tagged R, e.g.
// Dot[units.TorqueTag](force, arm). It panics with a *units.DimensionError
// if R is not the product of the component dimensions.
func Dot[R, T, Q units.Tag](a Vector2D[T], b Vector2D[Q]) units.Quantity[R] {
	return units.Mul[R](a.X, b.X).Add(units.Mul[R](a.Y, b.Y))
}

// Cross returns the z component of a × b tagged R.
func Cross[R, T, Q units.Tag](a Vector2D[T], b Vector2D[Q]) units.Quantity[R] {
	return units.Mul[R](a.X, b.Y).Sub(units.Mul[R](a.Y, b.X))
}
