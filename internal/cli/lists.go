package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/imperial/internal/app/template"
	"github.com/aalvaropc/imperial/internal/domain"
	"github.com/aalvaropc/imperial/internal/usecase"
)

func listCmd() *cobra.Command {
	var workspace string
	var file string
	var format string
	var tpl string

	c := &cobra.Command{
		Use:   "list [NAME]",
		Short: "Convert every date of a date list",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}
			f, err := resolveFormat(ws, format)
			if err != nil {
				return err
			}

			arg := file
			if arg == "" && len(args) == 1 {
				arg = args[0]
			}
			path, err := resolveListPath(ws, arg)
			if err != nil {
				return err
			}

			res, err := usecase.NewConvertDateList(ws.lists).Execute(cmd.Context(), path)
			if err != nil {
				return err
			}
			if tpl != "" {
				return printDateListTemplate(os.Stdout, res, tpl)
			}
			return printDateList(os.Stdout, res, f)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&file, "file", "f", "", "Date list file (overrides NAME)")
	c.Flags().StringVar(&format, "format", "", "Output format: pretty|json|plain")
	c.Flags().StringVarP(&tpl, "template", "t", "", "Line template, e.g. \"{{name}}: {{imperial}}\" (overrides --format)")
	return c
}

func printDateList(w io.Writer, res usecase.ListResult, format domain.OutputFormat) error {
	switch format {
	case domain.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case domain.FormatPlain:
		for _, e := range res.Entries {
			fmt.Fprintf(w, "%s\t%s\n", e.Name, e.Date)
		}
		return nil
	case domain.FormatPretty, "":
		fmt.Fprintf(w, "List: %s\n", res.Name)
		fmt.Fprintf(w, "File: %s\n\n", res.Path)
		if len(res.Entries) == 0 {
			fmt.Fprintln(w, "(no dates)")
			return nil
		}
		for _, e := range res.Entries {
			fmt.Fprintf(w, "- %s\n  ", e.Name)
			printPrettyDate(w, "", e.Date)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json|plain)", format)
	}
}

func printDateListTemplate(w io.Writer, res usecase.ListResult, tpl string) error {
	for _, e := range res.Entries {
		line, err := template.Render(tpl, e.Date, map[string]string{"name": e.Name, "list": res.Name})
		if err != nil {
			return err
		}
		fmt.Fprintln(w, line)
	}
	return nil
}

func listsCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "lists",
		Short: "List date-list files in the workspace",
		RunE: func(_ *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			refs, err := ws.lists.ListDateLists(ws.root)
			if err != nil && !domain.IsKind(err, domain.KindNotFound) {
				return err
			}

			if len(refs) == 0 {
				fmt.Println("(no date lists found)")
				return nil
			}

			fmt.Printf("Workspace: %s\n\n", ws.root)
			for _, r := range refs {
				rel, _ := filepath.Rel(ws.root, r.Path)
				fmt.Printf("- %s  (%s)\n", r.Name, rel)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}
