package ports

import "github.com/aalvaropc/fibprime/internal/domain"

type ConfigInitializer interface {
	Init(spec domain.InitSpec, force bool) (path string, err error)
}
