package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dummit/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/dummit/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/dummit/internal/adapters/hadolint"  //nolint:depguard // Wired in app layer
	"go.trai.ch/dummit/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/dummit/internal/adapters/settings"  //nolint:depguard // Wired in app layer
	"go.trai.ch/dummit/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/dummit/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.NodeID,
			hadolint.NodeID,
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
			logger.NodeID,
			settings.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.DockerfileStore](ctx)
	if err != nil {
		return nil, err
	}

	linters, err := graft.Dep[ports.LinterProvider](ctx)
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

	return New(loader, store, linters, tracer, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[*settings.Loader](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:      app,
		Logger:   log,
		Settings: loader,
	}, nil
}
