package ports

// PackageLister defines the interface for discovering package directories.
//
//go:generate go run go.uber.org/mock/mockgen -source=package_lister.go -destination=mocks/mock_package_lister.go -package=mocks
type PackageLister interface {
	// List returns the names of the immediate subdirectories of root.
	List(root string) ([]string, error)
}
