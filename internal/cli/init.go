package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/imperial/internal/infra/fsworkspace"
	"github.com/aalvaropc/imperial/internal/usecase"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create an imperial workspace (imperial.yaml, dates/)",
		RunE: func(_ *cobra.Command, _ []string) error {
			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer())
			root, err := uc.Execute(path, force)
			if err != nil {
				return err
			}
			fmt.Printf("Workspace initialized at %s\n", root)
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", ".", "Directory to initialize")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing template files")
	return cmd
}
