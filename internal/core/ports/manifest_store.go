package ports

import "go.trai.ch/bump/internal/core/domain"

// ManifestStore defines the interface for reading and writing package manifests.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest_store.go -destination=mocks/mock_manifest_store.go -package=mocks
type ManifestStore interface {
	// Read loads the manifest found in dir.
	Read(dir string) (*domain.Manifest, error)

	// Write persists m to the manifest file in dir, overwriting it.
	Write(dir string, m *domain.Manifest) error
}
