package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/imperial/internal/domain"
	"github.com/aalvaropc/imperial/internal/infra/clock"
	"github.com/aalvaropc/imperial/internal/infra/workspacefinder"
	"github.com/aalvaropc/imperial/internal/infra/yamldates"
)

// workspaceCtx carries what every command needs. Commands also work outside
// a workspace; found reports whether imperial.yaml was located.
type workspaceCtx struct {
	root  string
	found bool
	cfg   domain.Config
	clock *clock.System
	lists *yamldates.Loader
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, found, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, cfgErr := workspacefinder.LoadConfig(root)
	if cfgErr != nil && !domain.IsKind(cfgErr, domain.KindNotFound) {
		return nil, cfgErr
	}

	clk, err := clock.FromConfig(cfg)
	if err != nil {
		return nil, err
	}

	return &workspaceCtx{
		root:  root,
		found: found && cfgErr == nil,
		cfg:   cfg,
		clock: clk,
		lists: yamldates.NewLoader(yamldates.WithDatesDir(cfg.Paths.DatesDir)),
	}, nil
}

// resolveWorkspaceRoot honors an explicit flag, then searches upward from the
// working directory and finally falls back to the working directory itself.
func resolveWorkspaceRoot(workspaceFlag string) (string, bool, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", false, fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, fileExists(filepath.Join(abs, workspacefinder.ConfigFile)), nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", false, fmt.Errorf("get working directory: %w", err)
	}

	root, err := workspacefinder.NewFinder().FindRoot(wd)
	if err != nil {
		return wd, false, nil
	}
	return root, true, nil
}

func resolveListPath(ws *workspaceCtx, arg string) (string, error) {
	in := strings.TrimSpace(arg)
	if in == "" {
		return "", fmt.Errorf("date list is required (name or --file)")
	}

	// Paths resolve relative to the working directory like any file argument.
	if looksLikePath(in) {
		return filepath.Abs(in)
	}

	datesDir := filepath.Join(ws.root, ws.cfg.Paths.DatesDir)

	if hasYAMLExt(in) {
		p := filepath.Join(datesDir, in)
		if fileExists(p) {
			return p, nil
		}
	}

	p1 := filepath.Join(datesDir, in+".yaml")
	if fileExists(p1) {
		return p1, nil
	}
	p2 := filepath.Join(datesDir, in+".yml")
	if fileExists(p2) {
		return p2, nil
	}

	// As a last resort: match by list "name" field.
	refs, err := ws.lists.ListDateLists(ws.root)
	if err == nil {
		for _, r := range refs {
			if strings.EqualFold(r.Name, in) {
				return r.Path, nil
			}
		}
	}

	return "", fmt.Errorf("date list %q not found in %q (tip: run `imperial lists`)", in, datesDir)
}

// resolveClass parses the --class flag, falling back to the configured
// default when it is empty.
func resolveClass(ws *workspaceCtx, flag string) (int, error) {
	if strings.TrimSpace(flag) == "" {
		return ws.cfg.Defaults.DateClass, nil
	}
	return domain.ParseDateClass(flag)
}

func resolveFormat(ws *workspaceCtx, flag string) (domain.OutputFormat, error) {
	if strings.TrimSpace(flag) == "" {
		return ws.cfg.Defaults.Format, nil
	}
	return domain.ParseOutputFormat(flag)
}

func looksLikePath(s string) bool {
	return strings.Contains(s, "/") || strings.Contains(s, string(filepath.Separator))
}

func hasYAMLExt(s string) bool {
	ext := strings.ToLower(filepath.Ext(s))
	return ext == ".yaml" || ext == ".yml"
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
