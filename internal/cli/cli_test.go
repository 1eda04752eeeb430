package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/units/internal/config"
	"github.com/mesh-intelligence/units/internal/logging"
	"github.com/mesh-intelligence/units/internal/sqlite"
	"github.com/mesh-intelligence/units/pkg/units"
)

// run executes the root command against a fresh config directory and
// returns stdout and stderr.
func run(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()
	for _, k := range []string{"UNITS_OUTPUT", "UNITS_PRECISION", "UNITS_LOG_LEVEL", "UNITS_LOG_FORMAT", "UNITS_CONFIG_DIR"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config-dir", dir}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Equal(t, "units v"+Version+"\nmodule: github.com/mesh-intelligence/units\n", out)
}

func TestInit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cfg")

	out, _, err := run(t, dir, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "created ")
	assert.FileExists(t, filepath.Join(dir, "config.yaml"))

	out, _, err = run(t, dir, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "config already exists")
}

func TestConfigFileDrivesOutput(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("output: json\nprecision: 1\n"), 0o644))

	out, _, err := run(t, dir, "demo")
	require.NoError(t, err)
	var rows []demoRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	assert.Contains(t, rows, demoRow{"freezing point", "DegreesCelsius(0)", "273.1 K"})

	out, _, err = run(t, dir, "--output", "text", "--precision", "2", "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "273.15 K")
}

func TestDemo_Text(t *testing.T) {
	out, _, err := run(t, t.TempDir(), "--precision", "2", "demo")
	require.NoError(t, err)

	for _, want := range []string{
		"SCENARIO",
		"75.00 deg",
		"105.00 deg",
		"273.15 K",
		"25.81 cm2",
		"-160.00 deg",
		"270.00 deg",
		"10.00 m",
		"125.00 cm",
		"4.00 m",
		"6.00 Nm (Torque)",
		"6.00 m^3",
		"5.00 rad",
		"0.31 mps",
	} {
		assert.Contains(t, out, want)
	}
}

func TestDemo_YAML(t *testing.T) {
	out, _, err := run(t, t.TempDir(), "-o", "yaml", "demo")
	require.NoError(t, err)

	var rows []demoRow
	require.NoError(t, yaml.Unmarshal([]byte(out), &rows))
	require.NotEmpty(t, rows)
	assert.Equal(t, "compass bearing", rows[0].Scenario)
}

func TestCatalog_Dimensions(t *testing.T) {
	out, _, err := run(t, t.TempDir(), "catalog")
	require.NoError(t, err)
	assert.Contains(t, out, "DIMENSION")
	assert.Regexp(t, `Torque\s+Nm\s+kg\*m\^2\*s\^-2\s+1`, out)
	assert.Regexp(t, `Length\s+m\s+m\s+14`, out)
}

func TestCatalog_UnitsJSON(t *testing.T) {
	out, _, err := run(t, t.TempDir(), "-o", "json", "catalog", "--units", "--dimension", "length")
	require.NoError(t, err)

	var rows []units.UnitInfo
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 14)
	for _, r := range rows {
		assert.Equal(t, "Length", r.Dimension)
	}
	assert.Equal(t, "nm", rows[0].Symbol, "sorted by scale")
	assert.Equal(t, "Tm", rows[len(rows)-1].Symbol)
}

func TestCatalog_UnitsText(t *testing.T) {
	out, _, err := run(t, t.TempDir(), "catalog", "--units", "--dimension", "Temperature")
	require.NoError(t, err)
	assert.Regexp(t, `degC\s+DegreeCelsius\s+Temperature\s+1 K\s+273.15`, out)

	out, _, err = run(t, t.TempDir(), "catalog", "--units", "--dimension", "Length")
	require.NoError(t, err)
	assert.Regexp(t, `in\s+Inch\s+Length\s+0.0254 m\s`, out)
	assert.Regexp(t, `mm\s+Millimeter\s+Length\s+0.001 m\s`, out)
	assert.Regexp(t, `Tm\s+Terameter\s+Length\s+1e\+12 m\s`, out)
	assert.NotContains(t, out, "25.4 m")
}

func TestCatalog_UnknownDimension(t *testing.T) {
	_, _, err := run(t, t.TempDir(), "catalog", "--units", "--dimension", "Flux")
	assert.ErrorContains(t, err, `no units for dimension "Flux"`)
}

func TestExport(t *testing.T) {
	db := filepath.Join(t.TempDir(), "units.db")

	out, _, err := run(t, t.TempDir(), "export", db)
	require.NoError(t, err)
	assert.Regexp(t, `^wrote \d+ dimensions and \d+ units to .*units\.db \(\d+(\.\d)? [kMG]?B\)\n$`, out)
	assert.FileExists(t, db)

	out, _, err = run(t, t.TempDir(), "-o", "json", "export", db)
	require.NoError(t, err)
	var exp sqlite.Export
	require.NoError(t, json.Unmarshal([]byte(out), &exp))
	assert.Equal(t, Version, exp.Version)
	assert.Equal(t, len(units.Dimensions()), exp.Dimensions)
	assert.NotEmpty(t, exp.ID)

	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &raw))
	fi, err := os.Stat(db)
	require.NoError(t, err)
	assert.EqualValues(t, fi.Size(), raw["size_bytes"])
}

func TestExport_NeedsFile(t *testing.T) {
	_, _, err := run(t, t.TempDir(), "export")
	assert.Error(t, err)
}

func TestInvalidOutputFlag(t *testing.T) {
	_, _, err := run(t, t.TempDir(), "-o", "xml", "demo")
	assert.ErrorIs(t, err, config.ErrInvalidOutput)
}

func TestInvalidLogSettings(t *testing.T) {
	_, stderr, err := run(t, t.TempDir(), "--log-level", "loud", "catalog")
	assert.ErrorIs(t, err, logging.ErrUnknownLevel)
	assert.NotContains(t, stderr, "configuration loaded")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("log_format: xml\n"), 0o644))
	_, _, err = run(t, dir, "catalog")
	assert.ErrorIs(t, err, logging.ErrUnknownFormat)
}

func TestDebugLogging(t *testing.T) {
	_, stderr, err := run(t, t.TempDir(), "--log-level", "debug", "catalog")
	require.NoError(t, err)
	assert.Contains(t, stderr, "configuration loaded")
	assert.Contains(t, stderr, "dimensions=")
}
