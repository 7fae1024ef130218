package ports

import "context"

// VersionPrompter defines the interface for asking the operator for a version.
//
//go:generate go run go.uber.org/mock/mockgen -source=prompter.go -destination=mocks/mock_prompter.go -package=mocks
type VersionPrompter interface {
	// Ask blocks until the operator answers. An empty answer yields defaultVersion.
	Ask(ctx context.Context, packageName, defaultVersion string) (string, error)
}
