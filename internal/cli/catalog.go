package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/units/pkg/units"
)

// dimensionRow is one named dimension in the catalog.
type dimensionRow struct {
	Name   string `json:"name" yaml:"name"`
	Symbol string `json:"symbol" yaml:"symbol"`
	Dims   string `json:"dims" yaml:"dims"`
	Units  int    `json:"units" yaml:"units"`
}

func newCatalogCmd(a *app) *cobra.Command {
	var listUnits bool
	var dimension string
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the registered dimensions or units",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if listUnits {
				return a.catalogUnits(cmd.OutOrStdout(), dimension)
			}
			return a.catalogDimensions(cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&listUnits, "units", false, "list units instead of dimensions")
	cmd.Flags().StringVar(&dimension, "dimension", "", "only list units of this dimension (with --units)")
	return cmd
}

func (a *app) catalogDimensions(w io.Writer) error {
	counts := make(map[string]int)
	for _, u := range units.Units() {
		counts[u.Dimension]++
	}
	var rows []dimensionRow
	for _, d := range units.Dimensions() {
		rows = append(rows, dimensionRow{
			Name:   d.Name,
			Symbol: d.Symbol,
			Dims:   d.Dims.String(),
			Units:  counts[d.Name],
		})
	}
	a.log.Debug("catalog", "dimensions", len(rows))
	return a.render(w, rows, func(w io.Writer) error {
		lines := make([]string, len(rows))
		for i, r := range rows {
			lines[i] = fmt.Sprintf("%s\t%s\t%s\t%d", r.Name, r.Symbol, r.Dims, r.Units)
		}
		return table(w, "DIMENSION\tSYMBOL\tBASE UNITS\tUNITS", lines)
	})
}

func (a *app) catalogUnits(w io.Writer, dimension string) error {
	var rows []units.UnitInfo
	for _, u := range units.Units() {
		if dimension == "" || strings.EqualFold(u.Dimension, dimension) {
			rows = append(rows, u)
		}
	}
	if len(rows) == 0 {
		return fmt.Errorf("no units for dimension %q", dimension)
	}
	a.log.Debug("catalog", "units", len(rows), "dimension", dimension)
	return a.render(w, rows, func(w io.Writer) error {
		lines := make([]string, len(rows))
		for i, u := range rows {
			offset := ""
			if u.Offset != 0 {
				offset = a.number(u.Offset)
			}
			lines[i] = fmt.Sprintf("%s\t%s\t%s\t%s\t%s", u.Symbol, u.Name, u.Dimension, baseScale(u), offset)
		}
		return table(w, "SYMBOL\tNAME\tDIMENSION\tSCALE\tOFFSET", lines)
	})
}

// baseScale renders a unit scale in the base unit of its dimension, e.g.
// 0.0254 for Inch as "0.0254 m".
func baseScale(u units.UnitInfo) string {
	v := strconv.FormatFloat(u.Scale, 'g', 10, 64)
	if u.Dims.IsZero() {
		return v
	}
	if n, ok := units.Lookup(u.Dims); ok {
		return v + " " + n.Symbol
	}
	return v + " " + u.Dims.String()
}
