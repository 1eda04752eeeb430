package units_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/units/pkg/units"
)

func TestDimsString(t *testing.T) {
	tests := []struct {
		name string
		dims units.Dims
		want string
	}{
		{"dimensionless", units.Dims{}, "1"},
		{"length", units.Length{}.Dims(), "m"},
		{"area", units.Area{}.Dims(), "m^2"},
		{"force", units.Force{}.Dims(), "kg*m*s^-2"},
		{"conductance", units.Conductance{}.Dims(), "kg^-1*m^-2*s^3*A^2"},
		{"half length", units.Length{}.Dims().Scale(units.Frac(1, 2)), "m^1/2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.dims.String())
		})
	}
}

func TestDimsAlgebra(t *testing.T) {
	length := units.Length{}.Dims()
	tm := units.Time{}.Dims()

	assert.Equal(t, units.Area{}.Dims(), length.Add(length))
	assert.Equal(t, units.LinearVelocity{}.Dims(), length.Sub(tm))
	assert.Equal(t, length, units.Area{}.Dims().Scale(units.Frac(1, 2)))
	assert.True(t, length.Sub(length).IsZero())
	assert.Equal(t, units.Int(1), length.Of(units.BaseLength))
	assert.Equal(t, units.Int(-2), units.Force{}.Dims().Of(units.BaseTime))

	swapped := units.AngularVelocity{}.Dims().Swap(units.BaseLength, units.BaseAngle)
	assert.Equal(t, units.LinearVelocity{}.Dims(), swapped)

	d := units.Dims{}.With(units.BaseMoles, units.Int(1))
	assert.Equal(t, units.Substance{}.Dims(), d)
}

func TestDimsComparable(t *testing.T) {
	seen := map[units.Dims]string{
		units.Length{}.Dims(): "Length",
		units.Area{}.Dims():   "Area",
	}
	got, ok := seen[units.NewDims(0, 2, 0, 0, 0, 0, 0, 0)]
	assert.True(t, ok)
	assert.Equal(t, "Area", got)
}

func TestBase(t *testing.T) {
	assert.Equal(t, "kg", units.BaseMass.Symbol())
	assert.Equal(t, "mol", units.BaseMoles.Symbol())
	assert.Equal(t, "angle", units.BaseAngle.String())
}
