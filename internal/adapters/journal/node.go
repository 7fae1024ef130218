package journal

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bump/internal/core/ports"
)

// NoopNodeID is the unique identifier for the discarding journal Graft node.
// File journals depend on a run flag and are opened by the app.
const NoopNodeID graft.ID = "adapter.journal.noop"

func init() {
	graft.Register(graft.Node[ports.Journal]{
		ID:        NoopNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Journal, error) {
			return Noop{}, nil
		},
	})
}
