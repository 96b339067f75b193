package fsworkspace

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/imperial/internal/domain"
	"github.com/aalvaropc/imperial/internal/ports"
)

const gitignoreHeader = "# imperial"

var gitignoreEntries = []string{
	".imperial/",
}

// Initializer scaffolds imperial.yaml, a dates/ directory with an example
// list and the log directory.
type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

var _ ports.WorkspaceInitializer = (*Initializer)(nil)

// Init writes the workspace templates under spec.Root. Existing files are
// kept unless force is set.
func (i *Initializer) Init(spec domain.WorkspaceSpec, force bool) error {
	root := filepath.Clean(spec.Root)

	for _, d := range []string{
		filepath.Join(root, "dates"),
		filepath.Join(root, ".imperial", "logs"),
	} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return execErr("fsworkspace.mkdir", d, err)
		}
	}

	if err := ensureGitignore(root); err != nil {
		return execErr("fsworkspace.gitignore", filepath.Join(root, ".gitignore"), err)
	}

	return fs.WalkDir(templatesFS, "templates", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		dst := filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(p, "templates/")))
		if !force {
			if _, statErr := os.Stat(dst); statErr == nil {
				return nil
			}
		}

		b, err := fs.ReadFile(templatesFS, p)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return execErr("fsworkspace.mkdir", filepath.Dir(dst), err)
		}
		if err := os.WriteFile(dst, b, 0o644); err != nil {
			return execErr("fsworkspace.write", dst, err)
		}
		return nil
	})
}

// ensureGitignore appends the imperial entries that .gitignore is missing,
// creating the file when needed.
func ensureGitignore(root string) error {
	path := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	existing := string(b)
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		present[strings.TrimSpace(line)] = true
	}

	var add []string
	if !present[gitignoreHeader] {
		add = append(add, gitignoreHeader)
	}
	for _, e := range gitignoreEntries {
		if !present[e] {
			add = append(add, e)
		}
	}
	if len(add) == 0 || (len(add) == 1 && add[0] == gitignoreHeader) {
		return nil
	}

	var out strings.Builder
	out.WriteString(existing)
	if existing != "" {
		if !strings.HasSuffix(existing, "\n") {
			out.WriteByte('\n')
		}
		out.WriteByte('\n')
	}
	out.WriteString(strings.Join(add, "\n"))
	out.WriteByte('\n')

	return os.WriteFile(path, []byte(out.String()), 0o644)
}

func execErr(op, path string, err error) error {
	return &domain.OpError{Op: op, Kind: domain.KindExecution, Path: path, Err: err}
}
