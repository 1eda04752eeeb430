package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/units/pkg/units"
)

func attached(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog", "units.db")
	s := NewStore()
	require.NoError(t, s.Attach(path))
	t.Cleanup(func() { s.Detach() })
	return s, path
}

func TestStore_AttachDetach(t *testing.T) {
	s, path := attached(t)
	assert.FileExists(t, path)
	assert.Equal(t, path, s.Path())

	assert.ErrorIs(t, s.Attach(path), ErrAlreadyAttached)

	require.NoError(t, s.Detach())
	require.NoError(t, s.Detach(), "detach is idempotent")

	ctx := context.Background()
	_, err := s.Save(ctx, "test", nil, nil)
	assert.ErrorIs(t, err, ErrDetached)
	_, err = s.Units(ctx, "")
	assert.ErrorIs(t, err, ErrDetached)
	_, err = s.Dimensions(ctx)
	assert.ErrorIs(t, err, ErrDetached)
	_, err = s.LastExport(ctx)
	assert.ErrorIs(t, err, ErrDetached)
}

func TestStore_SaveRoundTrip(t *testing.T) {
	s, _ := attached(t)
	ctx := context.Background()

	dims := units.Dimensions()
	all := units.Units()
	exp, err := s.Save(ctx, "1.2.3", dims, all)
	require.NoError(t, err)
	assert.Equal(t, len(dims), exp.Dimensions)
	assert.Equal(t, len(all), exp.Units)
	_, err = uuid.Parse(exp.ID)
	assert.NoError(t, err)

	gotDims, err := s.Dimensions(ctx)
	require.NoError(t, err)
	assert.Equal(t, dims, gotDims)

	gotUnits, err := s.Units(ctx, "")
	require.NoError(t, err)
	want := make([]units.UnitInfo, len(all))
	for i, u := range all {
		u.Dims = units.Dims{}
		want[i] = u
	}
	assert.Equal(t, want, gotUnits)

	last, err := s.LastExport(ctx)
	require.NoError(t, err)
	assert.Equal(t, exp, last)
}

func TestStore_UnitsByDimension(t *testing.T) {
	s, _ := attached(t)
	ctx := context.Background()
	_, err := s.Save(ctx, "test", units.Dimensions(), units.Units())
	require.NoError(t, err)

	tests := []struct {
		dimension string
		count     int
		first     string
	}{
		{"Length", 14, "nm"},
		{"length", 14, "nm"},
		{"Temperature", 3, "degF"},
		{"Torque", 1, "Nm"},
		{"Flux", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.dimension, func(t *testing.T) {
			got, err := s.Units(ctx, tt.dimension)
			require.NoError(t, err)
			require.Len(t, got, tt.count)
			if tt.count > 0 {
				assert.Equal(t, tt.first, got[0].Symbol)
			}
		})
	}
}

func TestStore_SaveReplaces(t *testing.T) {
	s, _ := attached(t)
	ctx := context.Background()

	half := units.Named{
		Name:   "RootLength",
		Symbol: "sqm",
		Dims:   units.Dims{}.With(units.BaseLength, units.Frac(1, 2)),
	}
	first, err := s.Save(ctx, "a", units.Dimensions(), units.Units())
	require.NoError(t, err)
	second, err := s.Save(ctx, "b", []units.Named{half}, []units.UnitInfo{
		{Symbol: "sqm", Name: "RootMeter", Dimension: "RootLength", Scale: 1},
	})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	dims, err := s.Dimensions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []units.Named{half}, dims)
	assert.Equal(t, "m^1/2", dims[0].Dims.String())

	last, err := s.LastExport(ctx)
	require.NoError(t, err)
	assert.Equal(t, "b", last.Version)
	assert.Equal(t, 1, last.Units)
	assert.WithinDuration(t, time.Now(), last.CreatedAt, time.Minute)
}

func TestStore_AttachRecreates(t *testing.T) {
	s, path := attached(t)
	ctx := context.Background()
	_, err := s.Save(ctx, "test", units.Dimensions(), units.Units())
	require.NoError(t, err)
	require.NoError(t, s.Detach())

	require.NoError(t, s.Attach(path))
	got, err := s.Units(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, got)
}
