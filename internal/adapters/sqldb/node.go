package sqldb

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/abbsmeta/internal/adapters/logger"
	"go.trai.ch/abbsmeta/internal/core/ports"
)

// NodeID is the unique identifier for the database opener Graft node.
const NodeID graft.ID = "adapter.sqldb"

func init() {
	graft.Register(graft.Node[ports.DatabaseOpener]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.PortNodeID},
		Run: func(ctx context.Context) (ports.DatabaseOpener, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewOpener(log), nil
		},
	})
}
