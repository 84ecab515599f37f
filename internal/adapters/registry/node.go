package registry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rab/internal/core/ports"
)

const NodeID graft.ID = "adapter.index_loader"

func init() {
	graft.Register(graft.Node[ports.IndexLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.IndexLoader, error) {
			return NewLoader(), nil
		},
	})
}
