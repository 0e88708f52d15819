package scaffold

import (
	"embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/fibprime/internal/domain"
	"github.com/aalvaropc/fibprime/internal/ports"
)

//go:embed templates/fibprime.yaml
var templatesFS embed.FS

const configName = "fibprime.yaml"

type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

var _ ports.ConfigInitializer = (*Initializer)(nil)

// Init writes fibprime.yaml under spec.Root. An existing file is kept unless force is set.
func (i *Initializer) Init(spec domain.InitSpec, force bool) (string, error) {
	root := filepath.Clean(spec.Root)
	dst := filepath.Join(root, configName)

	if err := os.MkdirAll(root, 0o755); err != nil {
		return "", opErr("scaffold.mkdir", root, err)
	}

	if !force {
		if _, statErr := os.Stat(dst); statErr == nil {
			return dst, &domain.OpError{
				Op:   "scaffold.init",
				Kind: domain.KindInvalidArgument,
				Path: dst,
				Err:  os.ErrExist,
			}
		}
	}

	b, err := templatesFS.ReadFile("templates/" + configName)
	if err != nil {
		return "", opErr("scaffold.template", configName, err)
	}
	if err := os.WriteFile(dst, b, 0o644); err != nil {
		return "", opErr("scaffold.write", dst, err)
	}

	if err := ensureGitignore(root); err != nil {
		return dst, opErr("scaffold.gitignore", filepath.Join(root, ".gitignore"), err)
	}
	return dst, nil
}

func ensureGitignore(root string) error {
	const header = "# fibprime"
	entries := []string{
		".fibprime/",
		".env",
	}

	path := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	existing := string(b)

	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			present[trimmed] = true
		}
	}

	var missing []string
	for _, e := range entries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
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
	if !present[header] {
		out.WriteString(header + "\n")
	}
	for _, e := range missing {
		out.WriteString(e + "\n")
	}

	return os.WriteFile(path, []byte(out.String()), 0o644)
}

func opErr(op, path string, err error) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindExecution,
		Path: path,
		Err:  err,
	}
}
