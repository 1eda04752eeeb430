package units

import "strings"

// Base indexes one of the eight base dimensions in a Dims vector.
type Base int

// Base dimensions, in Dims order.
const (
	BaseMass Base = iota
	BaseLength
	BaseTime
	BaseCurrent
	BaseAngle
	BaseTemperature
	BaseLuminosity
	BaseMoles

	numBases
)

var baseSymbols = [numBases]string{"kg", "m", "s", "A", "rad", "K", "cd", "mol"}

var baseNames = [numBases]string{"mass", "length", "time", "current", "angle", "temperature", "luminosity", "moles"}

// Symbol returns the base unit symbol of b, e.g. "kg" for BaseMass.
func (b Base) Symbol() string { return baseSymbols[b] }

// String returns the dimension name of b, e.g. "mass".
func (b Base) String() string { return baseNames[b] }

// Dims is the exponent vector of a physical dimension. Two Dims are equal
// (with ==) iff every exponent is equal.
type Dims [numBases]Ratio

// NewDims builds a Dims from integer exponents in Base order.
func NewDims(mass, length, time, current, angle, temperature, luminosity, moles int64) Dims {
	return Dims{
		Int(mass), Int(length), Int(time), Int(current),
		Int(angle), Int(temperature), Int(luminosity), Int(moles),
	}
}

// Of returns the exponent of base b.
func (d Dims) Of(b Base) Ratio { return d[b] }

// With returns a copy of d with the exponent of b set to r.
func (d Dims) With(b Base, r Ratio) Dims {
	d[b] = r
	return d
}

// Add returns the component-wise sum, the dimension of a product.
func (d Dims) Add(o Dims) Dims {
	for i := range d {
		d[i] = d[i].Add(o[i])
	}
	return d
}

// Sub returns the component-wise difference, the dimension of a quotient.
func (d Dims) Sub(o Dims) Dims {
	for i := range d {
		d[i] = d[i].Sub(o[i])
	}
	return d
}

// Scale multiplies every exponent by r, the dimension of a power.
func (d Dims) Scale(r Ratio) Dims {
	for i := range d {
		d[i] = d[i].Mul(r)
	}
	return d
}

// Swap exchanges the exponents of a and b.
func (d Dims) Swap(a, b Base) Dims {
	d[a], d[b] = d[b], d[a]
	return d
}

// IsZero reports whether d is dimensionless.
func (d Dims) IsZero() bool {
	return d == Dims{}
}

// String renders the non-zero exponents as base symbol tokens joined by
// '*', e.g. "kg*m^2*s^-2" or "m^1/2". A dimensionless vector renders as "1".
func (d Dims) String() string {
	var tokens []string
	for i, r := range d {
		if r.IsZero() {
			continue
		}
		tok := baseSymbols[i]
		if r != Int(1) {
			tok += "^" + r.String()
		}
		tokens = append(tokens, tok)
	}
	if len(tokens) == 0 {
		return "1"
	}
	return strings.Join(tokens, "*")
}
