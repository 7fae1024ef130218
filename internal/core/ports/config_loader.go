package ports

import "go.trai.ch/bump/internal/core/domain"

// ConfigLoader defines the interface for loading the run configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load returns the configuration for a run over packagesDir.
	// When explicitPath is set the file must exist. Otherwise the config file
	// in packagesDir is used if present and the defaults are returned if not.
	Load(packagesDir, explicitPath string) (*domain.Config, error)
}
