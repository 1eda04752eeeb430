// Package config loads the units command configuration with viper: built-in
// defaults, then config.yaml in the configuration directory, then UNITS_*
// environment variables, then bound command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/units/internal/logging"
	"github.com/mesh-intelligence/units/internal/paths"
)

// Config keys.
const (
	KeyOutput    = "output"
	KeyPrecision = "precision"
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
)

// EnvPrefix is prepended to upper-cased keys, e.g. UNITS_PRECISION.
const EnvPrefix = "UNITS"

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

var outputs = []string{OutputText, OutputJSON, OutputYAML}

// Validation errors.
var (
	ErrInvalidOutput    = errors.New("invalid output format")
	ErrInvalidPrecision = errors.New("invalid precision")
)

// defaultConfigYAML is the content written by WriteDefault.
const defaultConfigYAML = `# units configuration

# Output format of demo and catalog: text, json or yaml.
output: text

# Digits after the decimal point; -1 prints the shortest exact value.
precision: -1

# Diagnostics on stderr: debug, info, warn or error.
log_level: info

# Diagnostics format: text or json.
log_format: text
`

// Config is the resolved configuration.
type Config struct {
	Output    string `mapstructure:"output" yaml:"output" json:"output"`
	Precision int    `mapstructure:"precision" yaml:"precision" json:"precision"`
	LogLevel  string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format" json:"log_format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Output:    OutputText,
		Precision: -1,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// New returns a viper instance with defaults and environment binding set up
// to read config.yaml from configDir.
func New(configDir string) *viper.Viper {
	d := Default()
	v := viper.New()
	v.SetDefault(KeyOutput, d.Output)
	v.SetDefault(KeyPrecision, d.Precision)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyLogFormat, d.LogFormat)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return v
}

// Load reads the config file, if any, and returns the validated
// configuration. A missing config.yaml is not an error.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if !slices.Contains(outputs, c.Output) {
		return fmt.Errorf("%w: %q (want text, json or yaml)", ErrInvalidOutput, c.Output)
	}
	if c.Precision < -1 {
		return fmt.Errorf("%w: %d", ErrInvalidPrecision, c.Precision)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := logging.ParseFormat(c.LogFormat); err != nil {
		return err
	}
	return nil
}

// WriteDefault creates configDir and writes a default config.yaml unless one
// already exists. It returns the file path and whether it was created.
func WriteDefault(configDir string) (string, bool, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", false, fmt.Errorf("create config directory: %w", err)
	}
	path := paths.ConfigFile(configDir)
	_, err := os.Stat(path)
	if err == nil {
		return path, false, nil
	}
	if !os.IsNotExist(err) {
		return "", false, fmt.Errorf("stat config file: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigYAML), 0o644); err != nil {
		return "", false, fmt.Errorf("write config file: %w", err)
	}
	return path, true, nil
}
