package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/units/internal/sqlite"
	"github.com/mesh-intelligence/units/pkg/units"
)

// exportResult is the export record plus the size of the written file.
type exportResult struct {
	sqlite.Export `yaml:",inline"`
	Size          uint64 `json:"size_bytes" yaml:"size_bytes"`
}

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write the dimension and unit catalog to a SQLite database",
		Long: "export replaces <file> with a SQLite database holding every registered\n" +
			"dimension (with its exponents) and every unit with its scale and offset.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := sqlite.NewStore()
			if err := store.Attach(args[0]); err != nil {
				return fmt.Errorf("open catalog: %w", err)
			}
			path := store.Path()

			exp, err := store.Save(cmd.Context(), Version, units.Dimensions(), units.Units())
			if cerr := store.Detach(); err == nil {
				err = cerr
			}
			if err != nil {
				return fmt.Errorf("save catalog: %w", err)
			}
			res := exportResult{Export: exp}
			if fi, err := os.Stat(path); err == nil {
				res.Size = uint64(fi.Size())
			}
			a.log.Debug("export", "file", path, "id", exp.ID, "size", res.Size)
			return a.render(cmd.OutOrStdout(), res, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "wrote %d dimensions and %d units to %s (%s)\n",
					exp.Dimensions, exp.Units, path, humanize.Bytes(res.Size))
				return err
			})
		},
	}
}
