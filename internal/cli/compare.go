package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/imperial/internal/domain"
	"github.com/aalvaropc/imperial/internal/usecase"
)

func compareCmd() *cobra.Command {
	var workspace string
	var format string

	c := &cobra.Command{
		Use:   "compare A B",
		Short: "Order two dates chronologically (date classes are ignored)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}
			f, err := resolveFormat(ws, format)
			if err != nil {
				return err
			}

			res, err := usecase.NewCompareDates(ws.clock).Execute(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return printComparison(os.Stdout, res, f)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVar(&format, "format", "", "Output format: pretty|json|plain")
	return c
}

func printComparison(w io.Writer, res usecase.Comparison, format domain.OutputFormat) error {
	switch format {
	case domain.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"a":        res.A,
			"b":        res.B,
			"order":    res.Order,
			"relation": res.Relation(),
		})
	case domain.FormatPlain:
		fmt.Fprintln(w, res.Relation())
		return nil
	case domain.FormatPretty, "":
		fmt.Fprintf(w, "%s %s %s\n", res.A, res.Relation(), res.B)
		fmt.Fprintf(w, "  %s %s %s\n", res.A.RegularDate(), res.Relation(), res.B.RegularDate())
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json|plain)", format)
	}
}
