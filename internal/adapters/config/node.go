package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rab/internal/adapters/logger"
	"go.trai.ch/rab/internal/core/ports"
)

const NodeID graft.ID = "adapter.declaration_loader"

func init() {
	graft.Register(graft.Node[ports.DeclarationLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.DeclarationLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
