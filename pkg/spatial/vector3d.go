package spatial

import (
	"fmt"

	"github.com/mesh-intelligence/units/pkg/units"
)

// Vector3D is a spatial vector with components of dimension T.
type Vector3D[T units.Tag] struct {
	X units.Quantity[T]
	Y units.Quantity[T]
	Z units.Quantity[T]
}

// Common spatial vectors.
type (
	V3Position     = Vector3D[units.LengthTag]
	V3Velocity     = Vector3D[units.LinearVelocityTag]
	V3Acceleration = Vector3D[units.LinearAccelerationTag]
	V3Force        = Vector3D[units.ForceTag]
)

// New3 returns the vector (x, y, z).
func New3[T units.Tag](x, y, z units.Quantity[T]) Vector3D[T] {
	return Vector3D[T]{X: x, Y: y, Z: z}
}

// FromDirection returns the vector of length |m| whose direction angles to
// the x, y and z axes are given by dir.
func FromDirection[T units.Tag](dir Vector3D[units.AngleTag], m units.Quantity[T]) Vector3D[T] {
	m = units.Abs(m)
	return Vector3D[T]{
		X: m.Mul(units.ToNum(units.Cos(dir.X))),
		Y: m.Mul(units.ToNum(units.Cos(dir.Y))),
		Z: m.Mul(units.ToNum(units.Cos(dir.Z))),
	}
}

// Add returns v + o.
func (v Vector3D[T]) Add(o Vector3D[T]) Vector3D[T] {
	return Vector3D[T]{X: v.X.Add(o.X), Y: v.Y.Add(o.Y), Z: v.Z.Add(o.Z)}
}

// Sub returns v - o.
func (v Vector3D[T]) Sub(o Vector3D[T]) Vector3D[T] {
	return Vector3D[T]{X: v.X.Sub(o.X), Y: v.Y.Sub(o.Y), Z: v.Z.Sub(o.Z)}
}

// Mul scales v by f.
func (v Vector3D[T]) Mul(f float64) Vector3D[T] {
	return Vector3D[T]{X: v.X.Mul(f), Y: v.Y.Mul(f), Z: v.Z.Mul(f)}
}

// Div divides v by f.
func (v Vector3D[T]) Div(f float64) Vector3D[T] {
	return Vector3D[T]{X: v.X.Div(f), Y: v.Y.Div(f), Z: v.Z.Div(f)}
}

// Magnitude returns |v|.
func (v Vector3D[T]) Magnitude() units.Quantity[T] {
	return units.Hypot(units.Hypot(v.X, v.Y), v.Z)
}

// Theta returns the direction angles of v to the x, y and z axes.
func (v Vector3D[T]) Theta() Vector3D[units.AngleTag] {
	n := v.Normalize()
	return Vector3D[units.AngleTag]{X: units.Acos(n.X), Y: units.Acos(n.Y), Z: units.Acos(n.Z)}
}

// VectorTo returns the vector from v to o.
func (v Vector3D[T]) VectorTo(o Vector3D[T]) Vector3D[T] {
	return o.Sub(v)
}

// AngleTo returns the angle between v and o.
func (v Vector3D[T]) AngleTo(o Vector3D[T]) units.Angle {
	a, b := v.Normalize(), o.Normalize()
	cos := units.Clamp(Dot3[units.NumberTag](a, b), units.Num(-1), units.Num(1))
	return units.Acos(cos)
}

// DistanceTo returns |o - v|.
func (v Vector3D[T]) DistanceTo(o Vector3D[T]) units.Quantity[T] {
	return v.VectorTo(o).Magnitude()
}

// Normalize returns v / |v| as a dimensionless vector.
func (v Vector3D[T]) Normalize() Vector3D[units.NumberTag] {
	m := v.Magnitude()
	return Vector3D[units.NumberTag]{
		X: units.Div[units.NumberTag](v.X, m),
		Y: units.Div[units.NumberTag](v.Y, m),
		Z: units.Div[units.NumberTag](v.Z, m),
	}
}

func (v Vector3D[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}

// Dot3 returns the scalar product of a and b tagged R.
func Dot3[R, T, Q units.Tag](a Vector3D[T], b Vector3D[Q]) units.Quantity[R] {
	return units.Mul[R](a.X, b.X).Add(units.Mul[R](a.Y, b.Y)).Add(units.Mul[R](a.Z, b.Z))
}

// Cross3 returns a × b with components tagged R.
func Cross3[R, T, Q units.Tag](a Vector3D[T], b Vector3D[Q]) Vector3D[R] {
	return Vector3D[R]{
		X: units.Mul[R](a.Y, b.Z).Sub(units.Mul[R](a.Z, b.Y)),
		Y: units.Mul[R](a.Z, b.X).Sub(units.Mul[R](a.X, b.Z)),
		Z: units.Mul[R](a.X, b.Y).Sub(units.Mul[R](a.Y, b.X)),
	}
}
