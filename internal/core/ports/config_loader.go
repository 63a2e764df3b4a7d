package ports

import "go.trai.ch/abbsmeta/internal/core/domain"

// ConfigLoader defines the interface for loading the scanner configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load resolves defaults, the config file at path (or the default file in
	// cwd when path is empty) and the environment.
	Load(cwd, path string) (*domain.Config, error)
}
