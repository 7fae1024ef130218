// Package fs provides file system adapters for discovering package directories.
package fs

import (
	"sort"

	"github.com/karrick/godirwalk"
	"go.trai.ch/bump/internal/core/domain"
	"go.trai.ch/zerr"
)

// Lister implements ports.PackageLister by reading a single directory level.
type Lister struct{}

// NewLister creates a new Lister.
func NewLister() *Lister {
	return &Lister{}
}

// List returns the names of the subdirectories of root, sorted by name.
// Symbolic links that resolve to directories are included; nothing else is filtered.
func (*Lister) List(root string) ([]string, error) {
	entries, err := godirwalk.ReadDirents(root, nil)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPackageListFailed.Error()), "path", root)
	}

	names := make([]string, 0, len(entries))
	for _, de := range entries {
		isDir, err := de.IsDirOrSymlinkToDir()
		if err != nil || !isDir {
			// Dangling symlinks are not packages.
			continue
		}
		names = append(names, de.Name())
	}

	sort.Strings(names)
	return names, nil
}
