package history

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rab/internal/core/domain"
	"go.trai.ch/rab/internal/core/ports"
)

const NodeID graft.ID = "adapter.history_store"

func init() {
	graft.Register(graft.Node[ports.HistoryStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.HistoryStore, error) {
			return NewStore(domain.DefaultHistoryPath()), nil
		},
	})
}
