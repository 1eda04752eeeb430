package units

import (
	"strconv"

	"modernc.org/mathutil"
)

// Ratio is an exact signed rational number kept in lowest terms with a
// positive denominator. The zero value is 0/1.
type Ratio struct {
	num int64
	// denm1 is the denominator minus one, so that Ratio{} is a valid zero.
	denm1 int64
}

// Frac returns the reduced ratio num/den. It panics if den is zero.
func Frac(num, den int64) Ratio {
	if den == 0 {
		panic("units: zero denominator in ratio")
	}
	if den < 0 {
		num, den = -num, -den
	}
	if num == 0 {
		return Ratio{}
	}
	g := int64(mathutil.GCDUint64(abs64(num), uint64(den)))
	return Ratio{num: num / g, denm1: den/g - 1}
}

// Int returns the ratio n/1.
func Int(n int64) Ratio {
	return Ratio{num: n}
}

func abs64(n int64) uint64 {
	if n < 0 {
		return uint64(-n)
	}
	return uint64(n)
}

// Num returns the numerator.
func (r Ratio) Num() int64 { return r.num }

// Den returns the denominator, which is always positive.
func (r Ratio) Den() int64 { return r.denm1 + 1 }

// Add returns r + s.
func (r Ratio) Add(s Ratio) Ratio {
	return Frac(r.num*s.Den()+s.num*r.Den(), r.Den()*s.Den())
}

// Sub returns r - s.
func (r Ratio) Sub(s Ratio) Ratio {
	return r.Add(s.Neg())
}

// Mul returns r * s.
func (r Ratio) Mul(s Ratio) Ratio {
	return Frac(r.num*s.num, r.Den()*s.Den())
}

// Div returns r / s. It panics if s is zero.
func (r Ratio) Div(s Ratio) Ratio {
	return Frac(r.num*s.Den(), r.Den()*s.num)
}

// Neg returns -r.
func (r Ratio) Neg() Ratio {
	return Ratio{num: -r.num, denm1: r.denm1}
}

// IsZero reports whether r is 0.
func (r Ratio) IsZero() bool { return r.num == 0 }

// IsInt reports whether r has denominator 1.
func (r Ratio) IsInt() bool { return r.denm1 == 0 }

// Float64 returns the nearest float64 to r.
func (r Ratio) Float64() float64 {
	return float64(r.num) / float64(r.Den())
}

// String formats r as "n" or "n/d".
func (r Ratio) String() string {
	if r.IsInt() {
		return strconv.FormatInt(r.num, 10)
	}
	return strconv.FormatInt(r.num, 10) + "/" + strconv.FormatInt(r.Den(), 10)
}
