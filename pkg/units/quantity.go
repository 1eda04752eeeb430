package units

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Tag is implemented by the zero-size marker types that parametrize
// Quantity. Dims must return the same vector on every call.
type Tag interface {
	Dims() Dims
}

// Real is the set of numeric types accepted by unit constructors, so that
// both Meters(2) and Meters(2.5) work without conversions.
type Real interface {
	constraints.Integer | constraints.Float
}

// Measurable is the run-time view shared by Quantity and Dynamic.
type Measurable interface {
	Base() float64
	Dims() Dims
}

// Quantity is a float64 in base units tagged with a dimension. The zero
// value is zero of that dimension.
type Quantity[T Tag] struct {
	v float64
}

// New returns a quantity holding v base units. It performs no conversion.
func New[T Tag](v float64) Quantity[T] {
	return Quantity[T]{v: v}
}

// Base returns the value in base units.
func (q Quantity[T]) Base() float64 { return q.v }

// Dims returns the exponent vector of T.
func (q Quantity[T]) Dims() Dims {
	var t T
	return t.Dims()
}

// Convert returns q as a multiple of other.
func (q Quantity[T]) Convert(other Quantity[T]) float64 {
	return q.v / other.v
}

// Add returns q + r.
func (q Quantity[T]) Add(r Quantity[T]) Quantity[T] {
	return Quantity[T]{v: q.v + r.v}
}

// Sub returns q - r.
func (q Quantity[T]) Sub(r Quantity[T]) Quantity[T] {
	return Quantity[T]{v: q.v - r.v}
}

// Neg returns -q.
func (q Quantity[T]) Neg() Quantity[T] {
	return Quantity[T]{v: -q.v}
}

// Mul scales q by a dimensionless factor.
func (q Quantity[T]) Mul(f float64) Quantity[T] {
	return Quantity[T]{v: q.v * f}
}

// Div divides q by a dimensionless divisor.
func (q Quantity[T]) Div(f float64) Quantity[T] {
	return Quantity[T]{v: q.v / f}
}

// Eq reports q == r.
func (q Quantity[T]) Eq(r Quantity[T]) bool { return q.v == r.v }

// Ne reports q != r.
func (q Quantity[T]) Ne(r Quantity[T]) bool { return q.v != r.v }

// Lt reports q < r.
func (q Quantity[T]) Lt(r Quantity[T]) bool { return q.v < r.v }

// Le reports q <= r.
func (q Quantity[T]) Le(r Quantity[T]) bool { return q.v <= r.v }

// Gt reports q > r.
func (q Quantity[T]) Gt(r Quantity[T]) bool { return q.v > r.v }

// Ge reports q >= r.
func (q Quantity[T]) Ge(r Quantity[T]) bool { return q.v >= r.v }

// Compare returns -1, 0 or +1 following cmp.Compare on the base values.
func (q Quantity[T]) Compare(r Quantity[T]) int {
	return cmp.Compare(q.v, r.v)
}

// Isomorphic reports whether all ms share one dimension. Quantities with the
// same tag are always isomorphic; this is the check for Dynamic values and
// for distinct tags that happen to report equal Dims.
func Isomorphic(ms ...Measurable) bool {
	for i := 1; i < len(ms); i++ {
		if ms[i].Dims() != ms[0].Dims() {
			return false
		}
	}
	return true
}

// Cast reinterprets the base value of q under tag R without any check.
// The caller is responsible for the result making physical sense.
func Cast[R, T Tag](q Quantity[T]) Quantity[R] {
	return Quantity[R]{v: q.v}
}
