package units

import "math"

// Abs returns |q|.
func Abs[T Tag](q Quantity[T]) Quantity[T] {
	return Quantity[T]{v: math.Abs(q.v)}
}

// Sgn returns -1, 0 or +1 as a Number.
func Sgn[T Tag](q Quantity[T]) Number {
	switch {
	case q.v > 0:
		return Number{v: 1}
	case q.v < 0:
		return Number{v: -1}
	}
	return Number{}
}

// Signbit reports whether q is negative or negative zero.
func Signbit[T Tag](q Quantity[T]) bool {
	return math.Signbit(q.v)
}

// Copysign returns a quantity with the magnitude of q and the sign of sign.
// The two arguments may have different dimensions.
func Copysign[T, U Tag](q Quantity[T], sign Quantity[U]) Quantity[T] {
	return Quantity[T]{v: math.Copysign(q.v, sign.v)}
}

// Max returns the larger of a and b, preferring b when they compare equal.
func Max[T Tag](a, b Quantity[T]) Quantity[T] {
	if a.v > b.v {
		return a
	}
	return b
}

// Min returns the smaller of a and b, preferring b when they compare equal.
func Min[T Tag](a, b Quantity[T]) Quantity[T] {
	if a.v < b.v {
		return a
	}
	return b
}

// Pow returns q^n tagged R, e.g. Pow[VolumeTag](side, 3). It panics with a
// *DimensionError if R is not n times the dimension of q.
func Pow[R, T Tag](q Quantity[T], n int) Quantity[R] {
	return checked[R]("Pow", q.Dims().Scale(Int(int64(n))), math.Pow(q.v, float64(n)))
}

// RootN returns the n-th root of q tagged R. Odd roots of negative values
// keep their sign.
func RootN[R, T Tag](q Quantity[T], n int) Quantity[R] {
	return checked[R]("Root", q.Dims().Scale(Frac(1, int64(n))), root(q.v, int64(n)))
}

// Square returns q² tagged R.
func Square[R, T Tag](q Quantity[T]) Quantity[R] { return Pow[R](q, 2) }

// Cube returns q³ tagged R.
func Cube[R, T Tag](q Quantity[T]) Quantity[R] { return Pow[R](q, 3) }

// Sqrt returns √q tagged R.
func Sqrt[R, T Tag](q Quantity[T]) Quantity[R] { return RootN[R](q, 2) }

// Cbrt returns ∛q tagged R.
func Cbrt[R, T Tag](q Quantity[T]) Quantity[R] { return RootN[R](q, 3) }

// Hypot returns √(a² + b²) without undue overflow.
func Hypot[T Tag](a, b Quantity[T]) Quantity[T] {
	return Quantity[T]{v: math.Hypot(a.v, b.v)}
}

// Mod returns the floating-point remainder of a/b with the sign of a.
func Mod[T Tag](a, b Quantity[T]) Quantity[T] {
	return Quantity[T]{v: math.Mod(a.v, b.v)}
}

// Remainder returns the IEEE 754 remainder of a/b.
func Remainder[T Tag](a, b Quantity[T]) Quantity[T] {
	return Quantity[T]{v: math.Remainder(a.v, b.v)}
}

// Clamp returns lo if q < lo, hi if hi < q, and q otherwise. The result is
// unspecified when lo > hi.
func Clamp[T Tag](q, lo, hi Quantity[T]) Quantity[T] {
	if q.v < lo.v {
		return lo
	}
	if hi.v < q.v {
		return hi
	}
	return q
}

// Ceil rounds q up to a whole multiple of step.
func Ceil[T Tag](q, step Quantity[T]) Quantity[T] {
	return Quantity[T]{v: math.Ceil(q.v/step.v) * step.v}
}

// Floor rounds q down to a whole multiple of step.
func Floor[T Tag](q, step Quantity[T]) Quantity[T] {
	return Quantity[T]{v: math.Floor(q.v/step.v) * step.v}
}

// Trunc rounds q toward zero to a whole multiple of step.
func Trunc[T Tag](q, step Quantity[T]) Quantity[T] {
	return Quantity[T]{v: math.Trunc(q.v/step.v) * step.v}
}

// Round rounds q to the nearest multiple of step, half away from zero.
func Round[T Tag](q, step Quantity[T]) Quantity[T] {
	return Quantity[T]{v: math.Round(q.v/step.v) * step.v}
}
