// Package changes decides which tasks an incremental scan can skip.
package changes

import (
	"context"
	"strings"
	"sync"

	"go.trai.ch/abbsmeta/internal/core/domain"
	"go.trai.ch/abbsmeta/internal/core/ports"
	"go.trai.ch/zerr"
)

// Strategy selects how changed paths are looked up.
type Strategy int

const (
	// PerTask asks the diff provider once per task, scoped to the task's
	// package directory.
	PerTask Strategy = iota
	// WholeTree asks for one diff of the whole tree and matches task paths
	// against it.
	WholeTree
)

// String returns the strategy name used in logs.
func (s Strategy) String() string {
	if s == WholeTree {
		return "whole-tree"
	}
	return "per-task"
}

// Filter implements ports.ChangeFilter for a revision pair.
type Filter struct {
	diff     ports.DiffProvider
	root     string
	from     string
	to       string
	strategy Strategy

	once  sync.Once
	paths []string
	err   error
}

var _ ports.ChangeFilter = (*Filter)(nil)

// New creates a Filter comparing revision from against to in the tree at root.
func New(diff ports.DiffProvider, root, from, to string, strategy Strategy) *Filter {
	return &Filter{
		diff:     diff,
		root:     root,
		from:     from,
		to:       to,
		strategy: strategy,
	}
}

// ShouldSkip reports whether nothing under the task's package directory
// changed. Diff failures are returned, never treated as "unchanged".
func (f *Filter) ShouldSkip(ctx context.Context, task domain.Task) (bool, error) {
	scope := task.TreePath()

	if f.strategy == PerTask {
		paths, err := f.diff.Changed(ctx, f.root, f.from, f.to, scope)
		if err != nil {
			return false, zerr.With(err, "task", task.String())
		}
		return len(paths) == 0, nil
	}

	f.once.Do(func() {
		f.paths, f.err = f.diff.Changed(ctx, f.root, f.from, f.to, "")
	})
	if f.err != nil {
		return false, zerr.With(f.err, "task", task.String())
	}
	for _, p := range f.paths {
		if Within(p, scope) {
			return false, nil
		}
	}
	return true, nil
}

// Within reports whether the slash separated path is dir or lies below it.
func Within(path, dir string) bool {
	return path == dir || strings.HasPrefix(path, dir+"/")
}
