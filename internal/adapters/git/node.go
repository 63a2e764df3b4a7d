package git

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/abbsmeta/internal/adapters/logger"
	"go.trai.ch/abbsmeta/internal/core/ports"
)

// NodeID is the unique identifier for the git client Graft node.
const NodeID graft.ID = "adapter.git"

func init() {
	graft.Register(graft.Node[*Client]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.PortNodeID},
		Run: func(ctx context.Context) (*Client, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(log)
		},
	})
}
