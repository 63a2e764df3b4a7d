package ports

import (
	"context"

	"go.trai.ch/abbsmeta/internal/core/domain"
)

// DiffProvider reports paths changed between two revisions of a tree.
//
//go:generate go run go.uber.org/mock/mockgen -source=diff.go -destination=mocks/mock_diff.go -package=mocks
type DiffProvider interface {
	// VerifyRevision returns domain.ErrInvalidRevision if rev does not name a commit.
	VerifyRevision(ctx context.Context, root, rev string) error

	// Changed returns the slash separated paths, relative to root, that differ
	// between revA and revB. A non-empty scope restricts the diff to that path.
	Changed(ctx context.Context, root, revA, revB, scope string) ([]string, error)
}

// Syncer brings a tree up to date with its upstream before scanning.
type Syncer interface {
	Sync(ctx context.Context, root string) error
}

// ChangeFilter decides whether a task can be skipped in incremental mode.
type ChangeFilter interface {
	// ShouldSkip reports whether the task's package is unchanged.
	// Errors are fatal for the run.
	ShouldSkip(ctx context.Context, task domain.Task) (bool, error)
}
