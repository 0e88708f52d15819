package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetup_WritesJSONLinesUnderRoot(t *testing.T) {
	root := t.TempDir()

	cleanup, err := Setup(Config{Root: root, Dir: "logs", Debug: true})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	if err := IsReady(); err != nil {
		t.Fatalf("expected ready logger: %v", err)
	}

	want := filepath.Join(root, "logs", "fibprime.log")
	if Path() != want {
		t.Fatalf("expected path %s, got %s", want, Path())
	}

	L().Debug("analyze.start", "bound", 7)

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
		t.Fatalf("unmarshal: %v", err)
	}
	if rec["msg"] != "analyze.start" {
		t.Fatalf("unexpected msg %v", rec["msg"])
	}
	if _, ok := rec["source"]; !ok {
		t.Fatalf("expected source attr in debug mode")
	}
}

func TestSetup_FailureKeepsDiscardLogger(t *testing.T) {
	root := t.TempDir()
	blocker := filepath.Join(root, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cleanup, err := Setup(Config{Root: blocker, Dir: "logs"})
	if err == nil {
		_ = cleanup()
		t.Fatalf("expected error when root is a file")
	}
	if L() == nil {
		t.Fatalf("expected non-nil logger")
	}
	if IsReady() == nil {
		t.Fatalf("expected logger not ready")
	}
}

func TestNew_InfoLevelDropsDebug(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)
	l.Debug("hidden")
	l.Info("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Fatalf("unexpected output %q", out)
	}
}
