// Package main provides unitgen, which writes the dimension tags, units and
// constructors of package units from the unit table.
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/units/internal/logging"
	"github.com/mesh-intelligence/units/internal/unitgen"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var output, testOutput, pkg, logLevel string
	cmd := &cobra.Command{
		Use:          "unitgen",
		Short:        "Generate the units package from the unit table",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			log := logging.New(cmd.ErrOrStderr(), level, logging.FormatText)

			var buf bytes.Buffer
			if err := unitgen.Generate(&buf, pkg, unitgen.Table); err != nil {
				return fmt.Errorf("generate: %w", err)
			}
			if output == "" || output == "-" {
				if testOutput != "" {
					return fmt.Errorf("--test-output requires --output")
				}
				_, err := cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			log.Info("generated", "file", output, "dimensions", len(unitgen.Table), "bytes", buf.Len())

			if testOutput == "" {
				return nil
			}
			buf.Reset()
			if err := unitgen.GenerateTest(&buf, pkg, unitgen.Table); err != nil {
				return fmt.Errorf("generate test: %w", err)
			}
			if err := os.WriteFile(testOutput, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", testOutput, err)
			}
			log.Info("generated", "file", testOutput, "bytes", buf.Len())
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&testOutput, "test-output", "", "also write the round-trip test to this file (requires --output)")
	cmd.Flags().StringVar(&pkg, "package", "units", "package name of the generated file")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")
	return cmd
}
