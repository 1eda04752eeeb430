package units_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/units/pkg/units"
)

type massSquaredTag struct{}

func (massSquaredTag) Dims() units.Dims { return units.NewDims(2, 0, 0, 0, 0, 0, 0, 0) }

func TestLookup(t *testing.T) {
	n, ok := units.Lookup(units.Force{}.Dims())
	require.True(t, ok)
	assert.Equal(t, "Force", n.Name)
	assert.Equal(t, "N", n.Symbol)

	_, ok = units.Lookup(units.NewDims(0, 3, 0, 0, 0, 0, 0, 0))
	assert.False(t, ok)

	assert.Equal(t, "Torque", units.NameOf(units.Torque{}.Dims()))
	assert.Equal(t, "m^3", units.NameOf(units.NewDims(0, 3, 0, 0, 0, 0, 0, 0)))
}

func TestRegister(t *testing.T) {
	// The first call may already have run in an earlier -count iteration.
	_ = units.Register[massSquaredTag]("MassSquared", "kg2")

	n, ok := units.Lookup(massSquaredTag{}.Dims())
	require.True(t, ok)
	assert.Equal(t, "MassSquared", n.Name)
	assert.Equal(t, "4 kg2", units.Product(units.Kilograms(2), units.Kilograms(2)).String())

	err := units.Register[massSquaredTag]("Other", "x")
	assert.ErrorIs(t, err, units.ErrDuplicateDimension)

	err = units.Register[units.LengthTag]("Distance", "d")
	assert.ErrorIs(t, err, units.ErrDuplicateDimension)

	assert.ErrorIs(t, units.Register[massSquaredTag]("", "x"), units.ErrEmptyName)
	assert.Panics(t, func() { units.MustRegister[units.TimeTag]("Duration", "dur") })
}

func TestDimensions(t *testing.T) {
	dims := units.Dimensions()
	require.NotEmpty(t, dims)

	names := make(map[string]string, len(dims))
	for i, d := range dims {
		names[d.Name] = d.Symbol
		if i > 0 {
			assert.LessOrEqual(t, dims[i-1].Name, d.Name)
		}
	}
	assert.Equal(t, "m", names["Length"])
	assert.Equal(t, "K", names["Temperature"])
	assert.Equal(t, "num", names["Number"])
	assert.Equal(t, "mol", names["Substance"])
}

func TestUnits(t *testing.T) {
	all := units.Units()
	bySymbol := make(map[string]units.UnitInfo, len(all))
	for _, u := range all {
		bySymbol[u.Symbol] = u
	}

	in, ok := bySymbol["in"]
	require.True(t, ok)
	assert.Equal(t, "Inch", in.Name)
	assert.Equal(t, "Length", in.Dimension)
	assert.InDelta(t, 0.0254, in.Scale, tol)

	c, ok := bySymbol["degC"]
	require.True(t, ok)
	assert.Equal(t, "Temperature", c.Dimension)
	assert.Equal(t, 273.15, c.Offset)

	km, ok := bySymbol["km"]
	require.True(t, ok)
	assert.Equal(t, "Kilometer", km.Name)
	assert.Equal(t, 1000.0, km.Scale)
}
