package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/imperial/internal/domain"
	"github.com/aalvaropc/imperial/internal/ports"
)

// Finder locates an imperial workspace root by searching for imperial.yaml
// in startDir and its parents.
type Finder struct {
	ConfigFile string // defaults to ConfigFile
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: ConfigFile}
}

var _ ports.WorkspaceLocator = (*Finder)(nil)

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindInvalidArgument,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	// A file argument starts the search from its directory.
	if info, statErr := os.Stat(abs); statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	name := f.ConfigFile
	if name == "" {
		name = ConfigFile
	}

	for cur := filepath.Clean(abs); ; cur = filepath.Dir(cur) {
		if _, err := os.Stat(filepath.Join(cur, name)); err == nil {
			return cur, nil
		}
		if filepath.Dir(cur) == cur {
			return "", &domain.OpError{
				Op:   "workspacefinder.findroot",
				Kind: domain.KindNotFound,
				Path: abs,
				Err:  domain.ErrNotFound,
			}
		}
	}
}

// RootOr returns the workspace root above startDir, or startDir itself when
// there is none. Commands that work without a workspace use it to pick
// where logs go.
func (f *Finder) RootOr(startDir string) string {
	if root, err := f.FindRoot(startDir); err == nil {
		return root
	}
	return startDir
}
