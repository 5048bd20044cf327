package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mbedconf/internal/core/ports"
)

// NodeID is the unique identifier for the run store factory Graft node.
const NodeID graft.ID = "adapter.run_store"

func init() {
	graft.Register(graft.Node[ports.RunStoreFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RunStoreFactory, error) {
			return NewFactory(), nil
		},
	})
}
