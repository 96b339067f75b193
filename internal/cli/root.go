package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/imperial/internal/infra/fsworkspace"
	"github.com/aalvaropc/imperial/internal/infra/logger"
	"github.com/aalvaropc/imperial/internal/infra/workspacefinder"
	"github.com/aalvaropc/imperial/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var cleanup func() error

	cmd := &cobra.Command{
		Use:          "imperial",
		Short:        "Imperial dating: convert calendar dates to 0 478 016.M3 notation",
		SilenceUsage: true,
		PersistentPreRun: func(c *cobra.Command, _ []string) {
			// Subcommands only log with --debug; the browser always logs.
			if !debug && c.Parent() != nil {
				return
			}
			cleanup, _ = logger.Setup(logger.Config{
				Root:  workspacefinder.NewFinder().RootOr(workingDir()),
				Debug: debug,
			})
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if cleanup != nil {
				_ = cleanup()
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			ws, err := loadWorkspace("")
			if err != nil {
				return err
			}

			deps := tui.Deps{
				Clock:                ws.clock,
				DateClass:            ws.cfg.Defaults.DateClass,
				WorkspaceLocator:     workspacefinder.NewFinder(),
				WorkspaceInitializer: fsworkspace.NewInitializer(),
				Logger:               logger.L(),
				Debug:                debug,
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .imperial/logs/imperial.log")

	cmd.AddCommand(
		convertCmd(),
		compareCmd(),
		listCmd(),
		listsCmd(),
		initCmd(),
		versionCmd(),
	)
	return cmd
}

func workingDir() string {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	wd, _ = filepath.Abs(wd)
	return wd
}
