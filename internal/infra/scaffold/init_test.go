package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/fibprime/internal/domain"
	"github.com/aalvaropc/fibprime/internal/infra/config"
)

func TestInitializer_Init_WritesLoadableConfig(t *testing.T) {
	tmp := t.TempDir()

	path, err := NewInitializer().Init(domain.InitSpec{Root: tmp}, false)
	if err != nil {
		t.Fatalf("Init error: %v", err)
	}
	if path != filepath.Join(tmp, "fibprime.yaml") {
		t.Fatalf("unexpected path %s", path)
	}

	cfg, err := config.NewLoader(config.WithLookupEnv(func(string) (string, bool) { return "", false })).LoadConfig(tmp)
	if err != nil {
		t.Fatalf("scaffolded config does not load: %v", err)
	}
	if cfg != domain.DefaultConfig() {
		t.Fatalf("expected scaffolded config to equal defaults, got %+v", cfg)
	}
}

func TestInitializer_Init_RefusesOverwriteUnlessForce(t *testing.T) {
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "fibprime.yaml")
	if err := os.WriteFile(cfgPath, []byte("custom\n"), 0o644); err != nil {
		t.Fatalf("write existing config: %v", err)
	}

	i := NewInitializer()
	_, err := i.Init(domain.InitSpec{Root: tmp}, false)
	if !errors.Is(err, os.ErrExist) {
		t.Fatalf("expected os.ErrExist, got %v", err)
	}
	b, _ := os.ReadFile(cfgPath)
	if string(b) != "custom\n" {
		t.Fatalf("expected config preserved, got %q", string(b))
	}

	if _, err := i.Init(domain.InitSpec{Root: tmp}, true); err != nil {
		t.Fatalf("Init (force=true) error: %v", err)
	}
	b, _ = os.ReadFile(cfgPath)
	if !strings.Contains(string(b), "fibprime:") {
		t.Fatalf("expected template content after force, got %q", string(b))
	}
}

func TestEnsureGitignore_AppendsMissingEntriesOnce(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, ".gitignore")
	if err := os.WriteFile(path, []byte("node_modules/\n.env"), 0o644); err != nil {
		t.Fatalf("write gitignore: %v", err)
	}

	if err := ensureGitignore(tmp); err != nil {
		t.Fatalf("ensureGitignore: %v", err)
	}
	if err := ensureGitignore(tmp); err != nil {
		t.Fatalf("ensureGitignore (second): %v", err)
	}

	b, _ := os.ReadFile(path)
	got := string(b)
	if strings.Count(got, ".fibprime/") != 1 {
		t.Fatalf("expected .fibprime/ once, got:\n%s", got)
	}
	if strings.Count(got, ".env") != 1 {
		t.Fatalf("expected .env kept once, got:\n%s", got)
	}
	if !strings.HasPrefix(got, "node_modules/\n.env\n\n# fibprime\n") {
		t.Fatalf("unexpected layout:\n%s", got)
	}
}
