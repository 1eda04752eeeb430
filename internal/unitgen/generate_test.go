package unitgen

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_MatchesCheckedInFile(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Generate(&buf, "units", Table))

	want, err := os.ReadFile(filepath.Join("..", "..", "pkg", "units", "units_gen.go"))
	require.NoError(t, err)
	assert.Equal(t, string(want), buf.String(), "pkg/units/units_gen.go is stale; run mage generate")
}

func TestGenerateTest_MatchesCheckedInFile(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, GenerateTest(&buf, "units", Table))

	want, err := os.ReadFile(filepath.Join("..", "..", "pkg", "units", "units_gen_test.go"))
	require.NoError(t, err)
	assert.Equal(t, string(want), buf.String(), "pkg/units/units_gen_test.go is stale; run mage generate")
}

func TestGenerateTest_CoversEveryUnit(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, GenerateTest(&buf, "geo", Table))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "// Code generated by unitgen. DO NOT EDIT.\n\npackage geo\n"))
	n := 0
	for _, d := range Table {
		for _, u := range Expand(d) {
			assert.Contains(t, out, "return To"+u.Plural+"("+u.Plural+"(v))")
			n++
		}
	}
	assert.Equal(t, n, strings.Count(out, "func(v float64) float64 {"))
}

func TestGenerateTest_RejectsBadTable(t *testing.T) {
	table := []Dimension{{Name: "Length", Exps: [8]int64{0, 1}, Units: []Unit{
		{Var: "Meter", Plural: "Meters", Symbol: "m"},
		{Var: "Foot", Plural: "Feet", Symbol: "ft", Expr: "Yard.Of(1.0 / 3)"},
		{Var: "Yard", Plural: "Yards", Symbol: "yd", Expr: "Meter.Of(0.9144)"},
	}}}
	err := GenerateTest(&bytes.Buffer{}, "geo", table)
	assert.ErrorIs(t, err, ErrForwardReference)
}

func TestGenerate_Output(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Generate(&buf, "units", Table))
	out := buf.String()

	for _, want := range []string{
		"// Code generated by unitgen. DO NOT EDIT.",
		`import "math"`,
		"type LengthTag struct{}",
		"var lengthDims = NewDims(0, 1, 0, 0, 0, 0, 0, 0)",
		"type Length = Quantity[LengthTag]",
		`var Meter = BaseUnit[LengthTag]("Length", "m", "Meter")`,
		`var Kilometer = Meter.Prefixed(Kilo, "Kilometer")`,
		`var Inch = DerivedUnit("in", "Inch", Centimeter.Of(2.54))`,
		`var DegreeCelsius = Affine[TemperatureTag]("degC", "DegreeCelsius", 1, 273.15)`,
		"func Feet[N Real](v N) Length {",
		"func ToFeet(q Length) float64 {",
		"// Force is a quantity of dimension kg*m*s^-2.",
	} {
		assert.Contains(t, out, want)
	}
}

func TestGenerate_NoMathImport(t *testing.T) {
	table := []Dimension{{Name: "Length", Exps: [8]int64{0, 1}, Units: []Unit{
		{Var: "Meter", Plural: "Meters", Symbol: "m"},
		{Var: "Foot", Plural: "Feet", Symbol: "ft", Expr: "Meter.Of(0.3048)"},
	}}}
	var buf bytes.Buffer
	require.NoError(t, Generate(&buf, "geo", table))
	assert.True(t, strings.HasPrefix(buf.String(), "// Code generated by unitgen. DO NOT EDIT.\n\npackage geo\n"))
	assert.NotContains(t, buf.String(), "import")
}

func TestGenerate_Errors(t *testing.T) {
	length := func(units ...Unit) Dimension {
		return Dimension{Name: "Length", Exps: [8]int64{0, 1}, Units: units}
	}
	meter := Unit{Var: "Meter", Plural: "Meters", Symbol: "m"}

	tests := []struct {
		name    string
		table   []Dimension
		wantErr error
	}{
		{
			name: "forward reference",
			table: []Dimension{length(meter,
				Unit{Var: "Foot", Plural: "Feet", Symbol: "ft", Expr: "Inch.Of(12)"},
				Unit{Var: "Inch", Plural: "Inches", Symbol: "in", Expr: "Meter.Of(0.0254)"},
			)},
			wantErr: ErrForwardReference,
		},
		{
			name: "self reference",
			table: []Dimension{length(meter,
				Unit{Var: "Foot", Plural: "Feet", Symbol: "ft", Expr: "Foot.Of(1)"},
			)},
			wantErr: ErrForwardReference,
		},
		{
			name: "reference into a later dimension",
			table: []Dimension{
				length(meter, Unit{Var: "Span", Plural: "Spans", Symbol: "span", Expr: "Meter.Of(Second.One().Base())"}),
				{Name: "Time", Exps: [8]int64{0, 0, 1}, Units: []Unit{{Var: "Second", Plural: "Seconds", Symbol: "s"}}},
			},
			wantErr: ErrForwardReference,
		},
		{
			name: "duplicate symbol",
			table: []Dimension{length(meter,
				Unit{Var: "Metre", Plural: "Metres", Symbol: "m", Expr: "Meter.Of(1)"},
			)},
			wantErr: ErrDuplicateSymbol,
		},
		{
			name: "metric family symbol clash",
			table: []Dimension{length(
				Unit{Var: "Meter", Plural: "Meters", Symbol: "m", Metric: true},
				Unit{Var: "Klick", Plural: "Klicks", Symbol: "km", Expr: "Meter.Of(1000)"},
			)},
			wantErr: ErrDuplicateSymbol,
		},
		{
			name: "duplicate name",
			table: []Dimension{length(meter,
				Unit{Var: "Meter", Plural: "Metres", Symbol: "mt", Expr: "Meter.Of(1)"},
			)},
			wantErr: ErrDuplicateName,
		},
		{
			name: "plural clashes with dimension",
			table: []Dimension{length(meter,
				Unit{Var: "Len", Plural: "Length", Symbol: "len", Expr: "Meter.Of(1)"},
			)},
			wantErr: ErrDuplicateName,
		},
		{
			name: "duplicate dimension",
			table: []Dimension{
				length(meter),
				{Name: "Distance", Exps: [8]int64{0, 1}, Units: []Unit{{Var: "Mile", Plural: "Miles", Symbol: "mi"}}},
			},
			wantErr: ErrDuplicateDimension,
		},
		{
			name:    "base unit with value",
			table:   []Dimension{length(Unit{Var: "Meter", Plural: "Meters", Symbol: "m", Expr: "Meter.Of(1)"})},
			wantErr: ErrInvalidUnit,
		},
		{
			name:    "derived unit without value",
			table:   []Dimension{length(meter, Unit{Var: "Foot", Plural: "Feet", Symbol: "ft"})},
			wantErr: ErrInvalidUnit,
		},
		{
			name: "expression and affine",
			table: []Dimension{length(meter,
				Unit{Var: "Foot", Plural: "Feet", Symbol: "ft", Expr: "Meter.Of(1)", Scale: "2"},
			)},
			wantErr: ErrInvalidUnit,
		},
		{
			name:    "no units",
			table:   []Dimension{{Name: "Length", Exps: [8]int64{0, 1}}},
			wantErr: ErrInvalidUnit,
		},
		{
			name:    "missing symbol",
			table:   []Dimension{length(Unit{Var: "Meter", Plural: "Meters"})},
			wantErr: ErrInvalidUnit,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := Generate(&buf, "units", tt.table)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, buf.Len())
		})
	}
}

func TestExpand(t *testing.T) {
	d := Dimension{Name: "Voltage", Units: []Unit{{Var: "Volt", Plural: "Volts", Symbol: "volt", Metric: true}}}
	got := Expand(d)
	require.Len(t, got, 1+len(MetricPrefixes))
	assert.Equal(t, Unit{Var: "Kilovolt", Plural: "Kilovolts", Symbol: "kvolt", Expr: "Volt.Prefixed(Kilo)"}, got[4])
	assert.Equal(t, "uvolt", got[7].Symbol)
}

func TestTokens(t *testing.T) {
	assert.Equal(t, "1", tokens([8]int64{}))
	assert.Equal(t, "m^2", tokens([8]int64{0, 2}))
	assert.Equal(t, "kg^-1*m^-2*s^3*A^2", tokens([8]int64{-1, -2, 3, 2}))
}
