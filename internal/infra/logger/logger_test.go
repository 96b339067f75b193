package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetup_WritesJSONLines(t *testing.T) {
	root := t.TempDir()

	cleanup, err := Setup(Config{Root: root, Debug: true})
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if err := IsReady(); err != nil {
		t.Fatalf("expected ready logger: %v", err)
	}
	if InitTime().IsZero() {
		t.Fatalf("expected init time")
	}

	want := filepath.Join(root, ".imperial", "logs", "imperial.log")
	if Path() != want {
		t.Fatalf("expected path %s, got %s", want, Path())
	}

	Component("test").Debug("test.event", "n", 1)

	if err := cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if IsReady() == nil {
		t.Fatalf("expected logger reset after cleanup")
	}

	b, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d:\n%s", len(lines), b)
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &rec); err != nil {
		t.Fatalf("invalid JSON line: %v", err)
	}
	if rec["msg"] != "test.event" || rec["component"] != "test" {
		t.Fatalf("unexpected record: %v", rec)
	}
}

func TestNewHandler_InfoHidesDebug(t *testing.T) {
	var buf bytes.Buffer
	h := newHandler(&buf, false)
	l := slog.New(h)
	l.Debug("hidden")
	l.Info("shown")

	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("unexpected output: %s", buf.String())
	}
}

func TestL_DiscardsBeforeSetup(t *testing.T) {
	if IsReady() == nil {
		t.Fatalf("expected not ready before Setup")
	}
	L().Info("nothing happens")
}
