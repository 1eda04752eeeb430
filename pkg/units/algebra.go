package units

import "math"

// Product returns a*b with the summed exponent vector.
func Product(a, b Measurable) Dynamic {
	return Dynamic{v: a.Base() * b.Base(), dims: a.Dims().Add(b.Dims())}
}

// Quotient returns a/b with the subtracted exponent vector.
func Quotient(a, b Measurable) Dynamic {
	return Dynamic{v: a.Base() / b.Base(), dims: a.Dims().Sub(b.Dims())}
}

// Exponentiate raises q to the rational exponent e. Exponents stay exact; only the
// value goes through math.Pow.
func Exponentiate(q Measurable, e Ratio) Dynamic {
	return Dynamic{v: math.Pow(q.Base(), e.Float64()), dims: q.Dims().Scale(e)}
}

// Root returns the n-th root of q. Odd roots of negative values keep their
// sign instead of producing NaN.
func Root(q Measurable, n int64) Dynamic {
	return Dynamic{v: root(q.Base(), n), dims: q.Dims().Scale(Frac(1, n))}
}

func root(v float64, n int64) float64 {
	switch {
	case n == 2:
		return math.Sqrt(v)
	case n == 3:
		return math.Cbrt(v)
	case v < 0 && n%2 != 0:
		return -math.Pow(-v, 1/float64(n))
	}
	return math.Pow(v, 1/float64(n))
}

// checked builds a quantity tagged R after verifying that the dimension an
// operation produced matches R.
func checked[R Tag](op string, got Dims, v float64) Quantity[R] {
	var r R
	if want := r.Dims(); want != got {
		panic(&DimensionError{Op: op, Want: want, Got: got})
	}
	return Quantity[R]{v: v}
}

// Mul returns a*b as a quantity tagged R, e.g. Mul[AreaTag](w, h). It panics
// with a *DimensionError if R is not the product dimension.
func Mul[R, A, B Tag](a Quantity[A], b Quantity[B]) Quantity[R] {
	return checked[R]("Mul", a.Dims().Add(b.Dims()), a.v*b.v)
}

// Div returns a/b as a quantity tagged R, e.g. Div[LinearVelocityTag](d, t).
// It panics with a *DimensionError if R is not the quotient dimension.
func Div[R, A, B Tag](a Quantity[A], b Quantity[B]) Quantity[R] {
	return checked[R]("Div", a.Dims().Sub(b.Dims()), a.v/b.v)
}

// ToLinear converts an angular quantity to its linear counterpart on a
// circle of the given radius (linear = angular × radius), e.g. an
// AngularVelocity to a LinearVelocity. L must be A with the angle and length
// exponents exchanged.
func ToLinear[L, A Tag](angular Quantity[A], radius Length) Quantity[L] {
	return checked[L]("ToLinear", angular.Dims().Swap(BaseLength, BaseAngle), angular.v*radius.v)
}

// ToAngular is the inverse of ToLinear (angular = linear / radius).
func ToAngular[A, L Tag](linear Quantity[L], radius Length) Quantity[A] {
	return checked[A]("ToAngular", linear.Dims().Swap(BaseLength, BaseAngle), linear.v/radius.v)
}
