package ports

import (
	"context"

	"go.trai.ch/abbsmeta/internal/core/domain"
)

// Database is the relational backend the snapshot is written to.
//
//go:generate go run go.uber.org/mock/mockgen -source=database.go -destination=mocks/mock_database.go -package=mocks
type Database interface {
	// EnsureSchema creates the packages, package_spec and package_dependencies
	// relations if they do not exist.
	EnsureSchema(ctx context.Context) error

	// Apply writes the batch in a single transaction. Relations with no rows
	// in the batch receive no upsert.
	Apply(ctx context.Context, batch domain.Batch) error

	// Close releases the connection.
	Close() error
}

// DatabaseOpener opens a Database from a DSN or file path.
type DatabaseOpener interface {
	Open(ctx context.Context, dsn string) (Database, error)
}
