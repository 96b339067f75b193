package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/imperial/internal/app/template"
	"github.com/aalvaropc/imperial/internal/domain"
	"github.com/aalvaropc/imperial/internal/infra/logger"
	"github.com/aalvaropc/imperial/internal/usecase"
)

func convertCmd() *cobra.Command {
	var workspace string
	var class string
	var format string
	var tpl string

	c := &cobra.Command{
		Use:   "convert [DATE...]",
		Short: "Convert YYYY-MM-DD dates (or \"today\") to imperial notation",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}
			dc, err := resolveClass(ws, class)
			if err != nil {
				return err
			}
			f, err := resolveFormat(ws, format)
			if err != nil {
				return err
			}

			uc := usecase.NewConvertDates(ws.clock)
			convs, err := uc.Execute(cmd.Context(), args, dc)

			logger.Component("cli").Debug("cli.convert",
				"inputs", len(args),
				"converted", len(convs),
				"class", dc,
				"failed", err != nil,
			)

			// Print what converted even when some inputs failed.
			var perr error
			if tpl != "" {
				perr = printConversionsTemplate(os.Stdout, convs, tpl)
			} else {
				perr = printConversions(os.Stdout, convs, f)
			}
			if perr != nil {
				return perr
			}
			return err
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&class, "class", "c", "", "Date class 0-9 (defaults to workspace default)")
	c.Flags().StringVar(&format, "format", "", "Output format: pretty|json|plain")
	c.Flags().StringVarP(&tpl, "template", "t", "", "Line template, e.g. \"{{imperial}} ({{date}})\" (overrides --format)")
	return c
}

func printConversions(w io.Writer, convs []usecase.Conversion, format domain.OutputFormat) error {
	switch format {
	case domain.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{"conversions": convs})
	case domain.FormatPlain:
		for _, c := range convs {
			fmt.Fprintln(w, c.Date.String())
		}
		return nil
	case domain.FormatPretty, "":
		for _, c := range convs {
			printPrettyDate(w, c.Input, c.Date)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json|plain)", format)
	}
}

func printConversionsTemplate(w io.Writer, convs []usecase.Conversion, tpl string) error {
	for _, c := range convs {
		line, err := template.Render(tpl, c.Date, map[string]string{"input": c.Input})
		if err != nil {
			return err
		}
		fmt.Fprintln(w, line)
	}
	return nil
}

func printPrettyDate(w io.Writer, label string, id *domain.ImperialDate) {
	d := id.RegularDate()
	if label == "" || label == d.String() {
		fmt.Fprintf(w, "%s  →  %s\n", d, id)
	} else {
		fmt.Fprintf(w, "%s (%s)  →  %s\n", label, d, id)
	}
	fmt.Fprintf(w, "  class %d · fraction %.3f · millennium %s\n", id.DateClass(), id.YearFraction(), id.MillenniumLabel())
}
