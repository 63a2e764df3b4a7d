package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/abbsmeta/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/abbsmeta/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/abbsmeta/internal/adapters/git"                //nolint:depguard // Wired in app layer
	"go.trai.ch/abbsmeta/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/abbsmeta/internal/adapters/shell"              //nolint:depguard // Wired in app layer
	"go.trai.ch/abbsmeta/internal/adapters/sqldb"              //nolint:depguard // Wired in app layer
	"go.trai.ch/abbsmeta/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/abbsmeta/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger *logger.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.ScannerNodeID,
			git.NodeID,
			shell.NodeID,
			sqldb.NodeID,
			progrock.NodeID,
			logger.PortNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[*logger.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	scanner, err := graft.Dep[ports.TreeScanner](ctx)
	if err != nil {
		return nil, err
	}

	client, err := graft.Dep[*git.Client](ctx)
	if err != nil {
		return nil, err
	}

	sh, err := graft.Dep[ports.Shell](ctx)
	if err != nil {
		return nil, err
	}

	opener, err := graft.Dep[ports.DatabaseOpener](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, scanner, client, client, sh, opener, telemetry, log), nil
}
