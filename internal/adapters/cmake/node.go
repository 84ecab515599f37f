package cmake

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rab/internal/adapters/shell"
	"go.trai.ch/rab/internal/core/ports"
)

const (
	NodeID         graft.ID = "adapter.cmake"
	RendererNodeID graft.ID = "adapter.cmake.renderer"
)

func init() {
	graft.Register(graft.Node[ports.BuildSystem]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.BuildSystem, error) {
			runner, err := graft.Dep[ports.ProcessRunner](ctx)
			if err != nil {
				return nil, err
			}
			return New(runner), nil
		},
	})

	graft.Register(graft.Node[ports.ToolchainRenderer]{
		ID:        RendererNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ToolchainRenderer, error) {
			return New(nil), nil
		},
	})
}
