package ports

import "github.com/aalvaropc/fibprime/internal/domain"

// ConfigLoader loads configuration rooted at a directory (e.g., fibprime.yaml + .env).
type ConfigLoader interface {
	LoadConfig(root string) (domain.Config, error)
}
