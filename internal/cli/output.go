package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/units/internal/config"
)

// render writes v as JSON or YAML, or calls text for the text format.
func (a *app) render(w io.Writer, v any, text func(w io.Writer) error) error {
	switch a.cfg.Output {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}
	return text(w)
}

// table writes tab-separated rows as aligned columns.
func table(w io.Writer, header string, rows []string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, header)
	for _, r := range rows {
		fmt.Fprintln(tw, r)
	}
	return tw.Flush()
}

// number formats v with the configured precision.
func (a *app) number(v float64) string {
	if a.cfg.Precision < 0 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', a.cfg.Precision, 64)
}

// quantity formats a units value with the configured precision.
func (a *app) quantity(q fmt.Formatter) string {
	if a.cfg.Precision < 0 {
		return fmt.Sprint(q)
	}
	return fmt.Sprintf("%.*f", a.cfg.Precision, q)
}
