// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/abbsmeta/internal/adapters/config"
	_ "go.trai.ch/abbsmeta/internal/adapters/fs"
	_ "go.trai.ch/abbsmeta/internal/adapters/git"
	_ "go.trai.ch/abbsmeta/internal/adapters/logger"
	_ "go.trai.ch/abbsmeta/internal/adapters/shell"
	_ "go.trai.ch/abbsmeta/internal/adapters/sqldb"
	_ "go.trai.ch/abbsmeta/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "go.trai.ch/abbsmeta/internal/app"
)
