package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bump/internal/core/ports"
)

// ListerNodeID is the unique identifier for the package lister Graft node.
const ListerNodeID graft.ID = "adapter.fs.lister"

func init() {
	graft.Register(graft.Node[ports.PackageLister]{
		ID:        ListerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PackageLister, error) {
			return NewLister(), nil
		},
	})
}
