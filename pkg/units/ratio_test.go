package units_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/units/pkg/units"
)

func TestFrac(t *testing.T) {
	tests := []struct {
		name     string
		num, den int64
		wantNum  int64
		wantDen  int64
		wantStr  string
	}{
		{"already reduced", 1, 2, 1, 2, "1/2"},
		{"reduces", 6, 8, 3, 4, "3/4"},
		{"negative denominator", 3, -6, -1, 2, "-1/2"},
		{"integer", 4, 2, 2, 1, "2"},
		{"zero", 0, 7, 0, 1, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := units.Frac(tt.num, tt.den)
			assert.Equal(t, tt.wantNum, r.Num())
			assert.Equal(t, tt.wantDen, r.Den())
			assert.Equal(t, tt.wantStr, r.String())
		})
	}
}

func TestFracZeroDenominatorPanics(t *testing.T) {
	assert.Panics(t, func() { units.Frac(1, 0) })
}

func TestRatioZeroValue(t *testing.T) {
	var r units.Ratio
	assert.True(t, r.IsZero())
	assert.Equal(t, int64(1), r.Den())
	assert.Equal(t, units.Int(0), r)
	assert.Equal(t, units.Frac(0, 5), r)
}

func TestRatioArithmetic(t *testing.T) {
	half, third := units.Frac(1, 2), units.Frac(1, 3)

	assert.Equal(t, units.Frac(5, 6), half.Add(third))
	assert.Equal(t, units.Frac(1, 6), half.Sub(third))
	assert.Equal(t, units.Frac(1, 6), half.Mul(third))
	assert.Equal(t, units.Frac(3, 2), half.Div(third))
	assert.Equal(t, units.Frac(-1, 2), half.Neg())
	assert.Equal(t, units.Int(1), half.Add(half))
	assert.True(t, half.Sub(half).IsZero())
	assert.True(t, units.Int(3).IsInt())
	assert.False(t, third.IsInt())
	assert.InDelta(t, 0.5, half.Float64(), 0)
}
