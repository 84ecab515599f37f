package planner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rab/internal/adapters/fs" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rab/internal/core/ports"
)

// NodeID is the unique identifier for the planner Graft node.
const NodeID graft.ID = "engine.planner"

func init() {
	graft.Register(graft.Node[*Planner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.StoreNodeID, fs.HasherNodeID},
		Run: func(ctx context.Context) (*Planner, error) {
			store, err := graft.Dep[ports.PackageStore](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.PlanHasher](ctx)
			if err != nil {
				return nil, err
			}

			return New(store, hasher), nil
		},
	})
}
