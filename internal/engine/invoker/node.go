package invoker

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rab/internal/adapters/cmake"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rab/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rab/internal/core/ports"
)

// NodeID is the unique identifier for the invoker Graft node.
const NodeID graft.ID = "engine.invoker"

func init() {
	graft.Register(graft.Node[*Invoker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{cmake.NodeID, telemetry.NodeID},
		Run: func(ctx context.Context) (*Invoker, error) {
			buildSystem, err := graft.Dep[ports.BuildSystem](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return New(buildSystem, tel), nil
		},
	})
}
