package app

import (
	"context"
	"time"

	"github.com/grindlemire/graft"
	"go.trai.ch/mbedconf/internal/adapters/cas"       //nolint:depguard // Wired in app layer
	"go.trai.ch/mbedconf/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/mbedconf/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/mbedconf/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/mbedconf/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/mbedconf/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/mbedconf/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// shutdownTimeout bounds how long flushing the tracer may delay exit.
const shutdownTimeout = 3 * time.Second

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
	Tracer ports.Tracer
}

// Shutdown flushes the tracer when it buffers spans. Tracers without
// a Shutdown method are left alone.
func (c *Components) Shutdown(ctx context.Context) error {
	s, ok := c.Tracer.(interface{ Shutdown(context.Context) error })
	if !ok {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	return s.Shutdown(ctx)
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			shell.ResolverNodeID,
			shell.NodeID,
			fs.HasherNodeID,
			cas.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.RunnerResolver](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	stores, err := graft.Dep[ports.RunStoreFactory](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, resolver, executor, hasher, stores, tracer, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
		Tracer: tracer,
	}, nil
}
