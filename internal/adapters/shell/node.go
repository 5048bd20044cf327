package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mbedconf/internal/adapters/logger"
	"go.trai.ch/mbedconf/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the executor Graft node.
	NodeID graft.ID = "adapter.executor"
	// ResolverNodeID is the unique identifier for the runner resolver Graft node.
	ResolverNodeID graft.ID = "adapter.resolver"
)

func init() {
	graft.Register(graft.Node[ports.Executor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Executor, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewExecutor(log), nil
		},
	})

	graft.Register(graft.Node[ports.RunnerResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RunnerResolver, error) {
			return NewResolver(), nil
		},
	})
}
