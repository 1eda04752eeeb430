package units

import "fmt"

// Dynamic is a quantity whose dimension is only known at run time. It is
// what Product, Quotient and Exponentiate return; convert it back to a statically
// tagged quantity with As or MustAs.
type Dynamic struct {
	v    float64
	dims Dims
}

// NewDynamic returns a Dynamic holding v base units of dimension d.
func NewDynamic(v float64, d Dims) Dynamic {
	return Dynamic{v: v, dims: d}
}

// Base returns the value in base units.
func (d Dynamic) Base() float64 { return d.v }

// Dims returns the exponent vector.
func (d Dynamic) Dims() Dims { return d.dims }

// Named returns the registered dimension matching d, if any.
func (d Dynamic) Named() (Named, bool) { return Lookup(d.dims) }

// Name returns the registered dimension name or the exponent tokens.
func (d Dynamic) Name() string { return NameOf(d.dims) }

// String formats d like Quantity.String.
func (d Dynamic) String() string { return format(d.v, d.dims) }

// Format implements fmt.Formatter.
func (d Dynamic) Format(f fmt.State, verb rune) { formatTo(f, verb, d.v, d.dims) }

// As converts m to a quantity tagged T. It returns a *DimensionError when
// the dimensions differ.
func As[T Tag](m Measurable) (Quantity[T], error) {
	var t T
	if want, got := t.Dims(), m.Dims(); want != got {
		return Quantity[T]{}, &DimensionError{Op: "As", Want: want, Got: got}
	}
	return Quantity[T]{v: m.Base()}, nil
}

// MustAs is like As but panics on a dimension mismatch.
func MustAs[T Tag](m Measurable) Quantity[T] {
	q, err := As[T](m)
	if err != nil {
		panic(err)
	}
	return q
}
