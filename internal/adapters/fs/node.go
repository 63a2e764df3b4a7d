package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/abbsmeta/internal/adapters/logger"
	"go.trai.ch/abbsmeta/internal/core/ports"
)

// ScannerNodeID is the unique identifier for the tree scanner Graft node.
const ScannerNodeID graft.ID = "adapter.fs.scanner"

func init() {
	graft.Register(graft.Node[ports.TreeScanner]{
		ID:        ScannerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.PortNodeID},
		Run: func(ctx context.Context) (ports.TreeScanner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewScanner(log), nil
		},
	})
}
