package units

// Prefix is a metric prefix applied to a unit.
type Prefix struct {
	Name   string
	Symbol string
	Factor float64
}

// Metric prefixes used by the generated unit families.
var (
	Tera  = Prefix{Name: "Tera", Symbol: "T", Factor: 1e12}
	Giga  = Prefix{Name: "Giga", Symbol: "G", Factor: 1e9}
	Mega  = Prefix{Name: "Mega", Symbol: "M", Factor: 1e6}
	Kilo  = Prefix{Name: "Kilo", Symbol: "k", Factor: 1e3}
	Centi = Prefix{Name: "Centi", Symbol: "c", Factor: 1e-2}
	Milli = Prefix{Name: "Milli", Symbol: "m", Factor: 1e-3}
	Micro = Prefix{Name: "Micro", Symbol: "u", Factor: 1e-6}
	Nano  = Prefix{Name: "Nano", Symbol: "n", Factor: 1e-9}
)

// MetricPrefixes lists the prefixes of a metric family, largest first.
var MetricPrefixes = []Prefix{Tera, Giga, Mega, Kilo, Centi, Milli, Micro, Nano}
