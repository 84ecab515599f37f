package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rab/internal/adapters/cmake"     //nolint:depguard // Wired in app layer
	"go.trai.ch/rab/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/rab/internal/adapters/history"   //nolint:depguard // Wired in app layer
	"go.trai.ch/rab/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/rab/internal/adapters/registry"  //nolint:depguard // Wired in app layer
	"go.trai.ch/rab/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/rab/internal/core/ports"
	"go.trai.ch/rab/internal/engine/invoker"
	"go.trai.ch/rab/internal/engine/planner"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			registry.NodeID,
			planner.NodeID,
			invoker.NodeID,
			cmake.RendererNodeID,
			history.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	declarations, err := graft.Dep[ports.DeclarationLoader](ctx)
	if err != nil {
		return nil, err
	}

	indexes, err := graft.Dep[ports.IndexLoader](ctx)
	if err != nil {
		return nil, err
	}

	plan, err := graft.Dep[*planner.Planner](ctx)
	if err != nil {
		return nil, err
	}

	inv, err := graft.Dep[*invoker.Invoker](ctx)
	if err != nil {
		return nil, err
	}

	toolchains, err := graft.Dep[ports.ToolchainRenderer](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.HistoryStore](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return New(declarations, indexes, plan, inv, toolchains, store, log, tel), nil
}
