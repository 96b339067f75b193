package usecase

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestInitWorkspace_AbsoluteRoot(t *testing.T) {
	fi := &fakeInitializer{}
	uc := NewInitWorkspace(fi)

	root, err := uc.Execute("", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !filepath.IsAbs(root) || fi.spec.Root != root {
		t.Fatalf("expected absolute root passed through, got %q / %q", root, fi.spec.Root)
	}
	if !fi.force {
		t.Fatalf("expected force to be forwarded")
	}
}

func TestInitWorkspace_Error(t *testing.T) {
	boom := errors.New("boom")
	uc := NewInitWorkspace(&fakeInitializer{err: boom})
	if _, err := uc.Execute(t.TempDir(), false); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}
