// Package units implements compile-time dimensional analysis for float64
// quantities.
//
// A Quantity is parametrized by a Tag, a zero-size marker type whose Dims
// method reports eight rational exponents (mass, length, time, current,
// angle, temperature, luminosity, moles). Quantities sharing a tag can be
// added, subtracted and compared; mixing tags is a compile error:
//
//	d := units.Meters(3).Add(units.Feet(2)) // Length
//	units.Meters(3).Add(units.Seconds(1))   // does not compile
//
// The value is always stored in base units (kg, m, s, A, rad, K, cd, mol).
// Named units such as Inch or DegreeCelsius convert when a quantity is built
// (Unit.Of, or the generated constructors such as Inches) and when it is
// read back (Unit.In, or the generated To functions such as ToInches).
//
// Go generics cannot compute a new type from two tags, so products,
// quotients, powers and roots are checked at run time instead. Mul, Div, Pow
// and friends take the result tag as an explicit type argument and panic
// with a *DimensionError when it does not match the computed exponents.
// Product, Quotient and Exponentiate return a Dynamic value whose tag is resolved
// against the registry of named dimensions when it is printed or converted
// with As.
//
// Angles come in two conventions. Angle is the standard-position angle
// (counter-clockwise from the reference axis). Compass is a bearing
// (clockwise, zero rotated by 90 degrees); it only becomes an Angle through
// Compass.Angle, which applies standard = 90° − bearing.
package units

//go:generate go run ../../cmd/unitgen -o units_gen.go --test-output units_gen_test.go
