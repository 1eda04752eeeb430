// Package cli implements the units command-line interface.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/units/internal/config"
	"github.com/mesh-intelligence/units/internal/logging"
	"github.com/mesh-intelligence/units/internal/paths"
)

// Version is the release of the units command. The build sets it with
// -ldflags "-X .../internal/cli.Version=...".
var Version = "0.1.0"

const modulePath = "github.com/mesh-intelligence/units"

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
)

// rootFlags holds global flag values that are not bound through viper.
type rootFlags struct {
	configDir string
}

// app is the state shared by subcommands once the configuration is loaded.
type app struct {
	flags     rootFlags
	configDir string
	cfg       config.Config
	log       *slog.Logger
}

// flagKeys maps persistent flags to configuration keys.
var flagKeys = map[string]string{
	"output":    config.KeyOutput,
	"precision": config.KeyPrecision,
	"log-level": config.KeyLogLevel,
}

// NewRootCmd creates the top-level "units" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{cfg: config.Default(), log: logging.Discard()}
	root := &cobra.Command{
		Use:   "units",
		Short: "Dimensional analysis for Go quantities",
		Long: "units demonstrates the dimensional-analysis library: it evaluates the\n" +
			"canonical conversion scenarios and lists the registered dimensions and units.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $UNITS_CONFIG_DIR or the platform config dir)")
	pf.StringP("output", "o", config.OutputText, "output format: text, json or yaml")
	pf.Int("precision", -1, "digits after the decimal point; -1 prints the shortest exact value")
	pf.String("log-level", "info", "log level: debug, info, warn or error")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newCatalogCmd(a))
	root.AddCommand(newDemoCmd(a))
	root.AddCommand(newExportCmd(a))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitUserError)
	}
	os.Exit(exitSuccess)
}

// setup resolves the configuration directory, loads the configuration with
// flags taking precedence, and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	dir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	a.configDir = dir

	v := config.New(dir)
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return fmt.Errorf("bind --%s: %w", name, err)
		}
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(cfg.LogFormat)
	if err != nil {
		return err
	}
	a.log = logging.New(cmd.ErrOrStderr(), level, format)
	a.log.Debug("configuration loaded",
		"config_dir", dir,
		"config_file", v.ConfigFileUsed(),
		"output", cfg.Output,
		"precision", cfg.Precision,
	)
	return nil
}
