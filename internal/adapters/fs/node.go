package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rab/internal/core/ports"
)

const (
	WalkerNodeID graft.ID = "adapter.fs.walker"
	StoreNodeID  graft.ID = "adapter.fs.store"
	HasherNodeID graft.ID = "adapter.fs.hasher"
)

func init() {
	// Walker Node (Concrete implementation needed by Store)
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.PackageStore]{
		ID:        StoreNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.PackageStore, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(walker), nil
		},
	})

	graft.Register(graft.Node[ports.PlanHasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PlanHasher, error) {
			return NewHasher(), nil
		},
	})
}
