package usecase

import (
	"github.com/aalvaropc/fibprime/internal/domain"
	"github.com/aalvaropc/fibprime/internal/ports"
)

type InitConfig struct {
	initializer ports.ConfigInitializer
}

func NewInitConfig(initializer ports.ConfigInitializer) *InitConfig {
	return &InitConfig{initializer: initializer}
}

// Execute scaffolds fibprime.yaml under root and returns the written path.
func (uc *InitConfig) Execute(root string, force bool) (string, error) {
	return uc.initializer.Init(domain.InitSpec{Root: root}, force)
}
