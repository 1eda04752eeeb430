package units

import (
	"fmt"
	"io"
	"strconv"
)

// suffix returns the text printed after the number: " <symbol>" for named
// dimensions, " <tokens>" for anonymous ones and nothing for Number.
func suffix(d Dims) string {
	if d.IsZero() {
		return ""
	}
	if n, ok := Lookup(d); ok {
		return " " + n.Symbol
	}
	return " " + d.String()
}

func format(v float64, d Dims) string {
	return strconv.FormatFloat(v, 'g', -1, 64) + suffix(d)
}

// formatTo implements fmt.Formatter for Quantity and Dynamic. Numeric verbs
// apply flags, width and precision to the number only.
func formatTo(f fmt.State, verb rune, v float64, d Dims) {
	switch verb {
	case 'e', 'E', 'f', 'F', 'g', 'G':
		fmt.Fprintf(f, fmt.FormatString(f, verb), v)
		io.WriteString(f, suffix(d))
	case 'v', 's':
		io.WriteString(f, format(v, d))
	default:
		fmt.Fprintf(f, "%%!%c(%s)", verb, format(v, d))
	}
}

// String formats q as its base value followed by the unit symbol, e.g.
// "2 m", "9.81 mps2" or "6 m^3" for a dimension without a registered name.
func (q Quantity[T]) String() string {
	return format(q.v, q.Dims())
}

// Format implements fmt.Formatter.
func (q Quantity[T]) Format(f fmt.State, verb rune) {
	formatTo(f, verb, q.v, q.Dims())
}
