// Package unitgen holds the declarative table of named dimensions and units
// and renders it into the Go source of pkg/units.
package unitgen

// Dimension is one named dimension: a tag type, a Quantity alias and the
// units measured in it.
type Dimension struct {
	// Name is the Go alias, e.g. "Length". The tag type is Name+"Tag".
	Name string
	// Exps are the integer exponents in base order (mass, length, time,
	// current, angle, temperature, luminosity, moles).
	Exps [8]int64
	// Units[0] is the base unit; it must not define Expr, Scale or Offset.
	Units []Unit
}

// Unit is one named unit of a dimension.
type Unit struct {
	// Var is the singular Go name of the unit variable, e.g. "Inch".
	Var string
	// Plural is the constructor name, e.g. "Inches"; the extractor is
	// "To"+Plural.
	Plural string
	Symbol string
	// Expr is a Go expression of the dimension's quantity type written in
	// terms of units defined earlier in the table, e.g.
	// "Centimeter.Of(2.54)".
	Expr string
	// Scale and Offset define an affine unit instead of Expr.
	Scale  string
	Offset string
	// Metric also emits the unit under every metric prefix.
	Metric bool
}

// MetricPrefixes mirrors units.MetricPrefixes by Go name.
var MetricPrefixes = []string{"Tera", "Giga", "Mega", "Kilo", "Centi", "Milli", "Micro", "Nano"}

// prefixSymbols maps a prefix Go name to its symbol.
var prefixSymbols = map[string]string{
	"Tera": "T", "Giga": "G", "Mega": "M", "Kilo": "k",
	"Centi": "c", "Milli": "m", "Micro": "u", "Nano": "n",
}

func squares(dim, base string) []Unit {
	out := make([]Unit, 0, len(MetricPrefixes))
	for _, p := range MetricPrefixes {
		v := p + lowerFirst(base)
		out = append(out, Unit{
			Var:    "Square" + v,
			Plural: "Square" + v + "s",
			Symbol: prefixSymbols[p] + "m2",
			Expr:   "Mul[" + dim + "Tag](" + v + ".One(), " + v + ".One())",
		})
	}
	return out
}

func per(dim, num, den string) string {
	return "Div[" + dim + "Tag](" + num + ".One(), " + den + ".One())"
}

// Table is the unit set of pkg/units, in definition order. A unit may only
// refer to units that appear before it.
var Table = []Dimension{
	{Name: "Number", Units: []Unit{
		{Var: "Unitless", Plural: "Num", Symbol: "num"},
		{Var: "Percent", Plural: "Percents", Symbol: "percent", Expr: "Unitless.Of(0.01)"},
	}},
	{Name: "Mass", Exps: [8]int64{1}, Units: []Unit{
		{Var: "Kilogram", Plural: "Kilograms", Symbol: "kg"},
		{Var: "Gram", Plural: "Grams", Symbol: "g", Expr: "Kilogram.Of(1e-3)"},
		{Var: "Pound", Plural: "Pounds", Symbol: "lb", Expr: "Gram.Of(453.6)"},
	}},
	{Name: "Time", Exps: [8]int64{0, 0, 1}, Units: []Unit{
		{Var: "Second", Plural: "Seconds", Symbol: "sec", Metric: true},
		{Var: "Minute", Plural: "Minutes", Symbol: "min", Expr: "Second.Of(60)"},
		{Var: "Hour", Plural: "Hours", Symbol: "hr", Expr: "Minute.Of(60)"},
		{Var: "Day", Plural: "Days", Symbol: "day", Expr: "Hour.Of(24)"},
	}},
	{Name: "Length", Exps: [8]int64{0, 1}, Units: []Unit{
		{Var: "Meter", Plural: "Meters", Symbol: "m", Metric: true},
		{Var: "Inch", Plural: "Inches", Symbol: "in", Expr: "Centimeter.Of(2.54)"},
		{Var: "Foot", Plural: "Feet", Symbol: "ft", Expr: "Inch.Of(12)"},
		{Var: "Yard", Plural: "Yards", Symbol: "yd", Expr: "Foot.Of(3)"},
		{Var: "Mile", Plural: "Miles", Symbol: "mi", Expr: "Foot.Of(5280)"},
		{Var: "Tile", Plural: "Tiles", Symbol: "tile", Expr: "Millimeter.Of(600)"},
	}},
	{Name: "Area", Exps: [8]int64{0, 2}, Units: append(append([]Unit{
		{Var: "SquareMeter", Plural: "SquareMeters", Symbol: "m2"},
	}, squares("Area", "Meter")...),
		Unit{Var: "SquareInch", Plural: "SquareInches", Symbol: "in2", Expr: "Mul[AreaTag](Inch.One(), Inch.One())"},
	)},
	{Name: "LinearVelocity", Exps: [8]int64{0, 1, -1}, Units: []Unit{
		{Var: "MeterPerSecond", Plural: "MetersPerSecond", Symbol: "mps", Metric: true},
		{Var: "MeterPerHour", Plural: "MetersPerHour", Symbol: "mph", Expr: per("LinearVelocity", "Meter", "Hour"), Metric: true},
		{Var: "InchPerSecond", Plural: "InchesPerSecond", Symbol: "inps", Expr: per("LinearVelocity", "Inch", "Second")},
		{Var: "MilePerHour", Plural: "MilesPerHour", Symbol: "miph", Expr: per("LinearVelocity", "Mile", "Hour")},
	}},
	{Name: "LinearAcceleration", Exps: [8]int64{0, 1, -2}, Units: []Unit{
		{Var: "MeterPerSecondSquared", Plural: "MetersPerSecondSquared", Symbol: "mps2", Metric: true},
		{Var: "MeterPerHourSquared", Plural: "MetersPerHourSquared", Symbol: "mph2", Expr: per("LinearAcceleration", "MeterPerHour", "Hour"), Metric: true},
		{Var: "InchPerSecondSquared", Plural: "InchesPerSecondSquared", Symbol: "inps2", Expr: per("LinearAcceleration", "InchPerSecond", "Second")},
		{Var: "MilePerHourSquared", Plural: "MilesPerHourSquared", Symbol: "miph2", Expr: per("LinearAcceleration", "MilePerHour", "Hour")},
	}},
	{Name: "LinearJerk", Exps: [8]int64{0, 1, -3}, Units: []Unit{
		{Var: "MeterPerSecondCubed", Plural: "MetersPerSecondCubed", Symbol: "mps3", Metric: true},
		{Var: "MeterPerHourCubed", Plural: "MetersPerHourCubed", Symbol: "mph3", Expr: per("LinearJerk", "MeterPerHourSquared", "Hour"), Metric: true},
		{Var: "InchPerSecondCubed", Plural: "InchesPerSecondCubed", Symbol: "inps3", Expr: per("LinearJerk", "InchPerSecondSquared", "Second")},
		{Var: "MilePerHourCubed", Plural: "MilesPerHourCubed", Symbol: "miph3", Expr: per("LinearJerk", "MilePerHourSquared", "Hour")},
	}},
	{Name: "Curvature", Exps: [8]int64{0, -1}, Units: []Unit{
		{Var: "RadianPerMeter", Plural: "RadiansPerMeter", Symbol: "radpm"},
	}},
	{Name: "Inertia", Exps: [8]int64{1, 2}, Units: []Unit{
		{Var: "KilogramMeterSquared", Plural: "KilogramMetersSquared", Symbol: "kgm2"},
	}},
	{Name: "Force", Exps: [8]int64{1, 1, -2}, Units: []Unit{
		{Var: "Newton", Plural: "Newtons", Symbol: "N"},
	}},
	{Name: "Torque", Exps: [8]int64{1, 2, -2}, Units: []Unit{
		{Var: "NewtonMeter", Plural: "NewtonMeters", Symbol: "Nm"},
	}},
	{Name: "Power", Exps: [8]int64{1, 2, -3}, Units: []Unit{
		{Var: "Watt", Plural: "Watts", Symbol: "watt"},
	}},
	{Name: "Current", Exps: [8]int64{0, 0, 0, 1}, Units: []Unit{
		{Var: "Ampere", Plural: "Amperes", Symbol: "amp"},
	}},
	{Name: "Charge", Exps: [8]int64{0, 0, 1, 1}, Units: []Unit{
		{Var: "Coulomb", Plural: "Coulombs", Symbol: "coulomb"},
	}},
	{Name: "Voltage", Exps: [8]int64{1, 2, -3, -1}, Units: []Unit{
		{Var: "Volt", Plural: "Volts", Symbol: "volt", Metric: true},
	}},
	{Name: "Resistance", Exps: [8]int64{1, 2, -3, -2}, Units: []Unit{
		{Var: "Ohm", Plural: "Ohms", Symbol: "ohm", Metric: true},
	}},
	{Name: "Conductance", Exps: [8]int64{-1, -2, 3, 2}, Units: []Unit{
		{Var: "Siemen", Plural: "Siemens", Symbol: "siemen", Metric: true},
	}},
	{Name: "Luminosity", Exps: [8]int64{0, 0, 0, 0, 0, 0, 1}, Units: []Unit{
		{Var: "Candela", Plural: "Candelas", Symbol: "candela"},
	}},
	{Name: "Substance", Exps: [8]int64{0, 0, 0, 0, 0, 0, 0, 1}, Units: []Unit{
		{Var: "Mole", Plural: "Moles", Symbol: "mol"},
	}},
	{Name: "Angle", Exps: [8]int64{0, 0, 0, 0, 1}, Units: []Unit{
		{Var: "Radian", Plural: "Radians", Symbol: "rad"},
		{Var: "Degree", Plural: "Degrees", Symbol: "deg", Expr: "Radian.Of(math.Pi / 180)"},
		{Var: "Rotation", Plural: "Rotations", Symbol: "rot", Expr: "Radian.Of(2 * math.Pi)"},
	}},
	{Name: "AngularVelocity", Exps: [8]int64{0, 0, -1, 0, 1}, Units: []Unit{
		{Var: "RadianPerSecond", Plural: "RadiansPerSecond", Symbol: "radps"},
		{Var: "DegreePerSecond", Plural: "DegreesPerSecond", Symbol: "degps", Expr: per("AngularVelocity", "Degree", "Second")},
		{Var: "RotationPerSecond", Plural: "RotationsPerSecond", Symbol: "rps", Expr: per("AngularVelocity", "Rotation", "Second")},
		{Var: "RotationPerMinute", Plural: "RotationsPerMinute", Symbol: "rpm", Expr: per("AngularVelocity", "Rotation", "Minute")},
	}},
	{Name: "AngularAcceleration", Exps: [8]int64{0, 0, -2, 0, 1}, Units: []Unit{
		{Var: "RadianPerSecondSquared", Plural: "RadiansPerSecondSquared", Symbol: "radps2"},
		{Var: "DegreePerSecondSquared", Plural: "DegreesPerSecondSquared", Symbol: "degps2", Expr: per("AngularAcceleration", "DegreePerSecond", "Second")},
		{Var: "RotationPerSecondSquared", Plural: "RotationsPerSecondSquared", Symbol: "rps2", Expr: per("AngularAcceleration", "RotationPerSecond", "Second")},
		{Var: "RotationPerMinuteSquared", Plural: "RotationsPerMinuteSquared", Symbol: "rpm2", Expr: per("AngularAcceleration", "RotationPerMinute", "Minute")},
	}},
	{Name: "AngularJerk", Exps: [8]int64{0, 0, -3, 0, 1}, Units: []Unit{
		{Var: "RadianPerSecondCubed", Plural: "RadiansPerSecondCubed", Symbol: "radps3"},
		{Var: "DegreePerSecondCubed", Plural: "DegreesPerSecondCubed", Symbol: "degps3", Expr: per("AngularJerk", "DegreePerSecondSquared", "Second")},
		{Var: "RotationPerSecondCubed", Plural: "RotationsPerSecondCubed", Symbol: "rps3", Expr: per("AngularJerk", "RotationPerSecondSquared", "Second")},
		{Var: "RotationPerMinuteCubed", Plural: "RotationsPerMinuteCubed", Symbol: "rpm3", Expr: per("AngularJerk", "RotationPerMinuteSquared", "Minute")},
	}},
	{Name: "Temperature", Exps: [8]int64{0, 0, 0, 0, 0, 1}, Units: []Unit{
		{Var: "Kelvin", Plural: "Kelvins", Symbol: "K"},
		{Var: "DegreeCelsius", Plural: "DegreesCelsius", Symbol: "degC", Scale: "1", Offset: "273.15"},
		{Var: "DegreeFahrenheit", Plural: "DegreesFahrenheit", Symbol: "degF", Scale: "5.0 / 9.0", Offset: "273.15 - 32*5.0/9.0"},
	}},
}
