package units

import "strconv"

// Unit is a named scale for quantities tagged T: one unit equals scale base
// units, and the unit's zero sits at offset base units. Offset is non-zero
// only for interval scales such as degrees Celsius.
type Unit[T Tag] struct {
	symbol string
	name   string
	scale  float64
	offset float64
}

// BaseUnit registers the dimension of T under dimension and returns its
// scale-1 unit. It panics if the dimension or symbol is already registered,
// which makes a conflicting package-level definition fail at start-up.
func BaseUnit[T Tag](dimension, symbol, name string) Unit[T] {
	MustRegister[T](dimension, symbol)
	return newUnit[T](symbol, name, 1, 0)
}

// DerivedUnit returns a unit equal to multiple, e.g.
// DerivedUnit("in", "Inch", Centimeter.Of(2.54)).
func DerivedUnit[T Tag](symbol, name string, multiple Quantity[T]) Unit[T] {
	return newUnit[T](symbol, name, multiple.v, 0)
}

// Affine returns a unit with a shifted zero: v units are v*scale + offset
// base units.
func Affine[T Tag](symbol, name string, scale, offset float64) Unit[T] {
	return newUnit[T](symbol, name, scale, offset)
}

func newUnit[T Tag](symbol, name string, scale, offset float64) Unit[T] {
	var t T
	err := defaultRegistry.registerUnit(UnitInfo{
		Symbol: symbol,
		Name:   name,
		Scale:  scale,
		Offset: offset,
		Dims:   t.Dims(),
	})
	if err != nil {
		panic(err)
	}
	return Unit[T]{symbol: symbol, name: name, scale: scale, offset: offset}
}

// Prefixed returns the unit scaled by a metric prefix. The symbol is the
// prefix symbol followed by u's symbol.
func (u Unit[T]) Prefixed(p Prefix, name string) Unit[T] {
	return newUnit[T](p.Symbol+u.symbol, name, u.scale*p.Factor, u.offset)
}

// Of returns v of this unit as a quantity.
func (u Unit[T]) Of(v float64) Quantity[T] {
	return Quantity[T]{v: v*u.scale + u.offset}
}

// In returns q expressed in this unit.
func (u Unit[T]) In(q Quantity[T]) float64 {
	return (q.v - u.offset) / u.scale
}

// One returns one of this unit.
func (u Unit[T]) One() Quantity[T] {
	return u.Of(1)
}

// Format renders q in this unit, e.g. "2.5 in".
func (u Unit[T]) Format(q Quantity[T]) string {
	return strconv.FormatFloat(u.In(q), 'g', -1, 64) + " " + u.symbol
}

// Symbol returns the unit symbol.
func (u Unit[T]) Symbol() string { return u.symbol }

// Name returns the Go name of the unit.
func (u Unit[T]) Name() string { return u.name }

// Scale returns the number of base units in one unit.
func (u Unit[T]) Scale() float64 { return u.scale }

// Offset returns the base-unit value of the unit's zero.
func (u Unit[T]) Offset() float64 { return u.offset }

// Dims returns the exponent vector of T.
func (u Unit[T]) Dims() Dims {
	var t T
	return t.Dims()
}
