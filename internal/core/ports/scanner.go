package ports

import (
	"context"

	"go.trai.ch/abbsmeta/internal/core/domain"
)

// ScanOptions controls which directories the tree scanner treats as packages.
type ScanOptions struct {
	// Categories are the directory name prefixes that mark a category.
	Categories []string
	// Selector, when set, keeps only categories whose name starts or ends with it,
	// e.g. "base" or "devel" for base-devel.
	Selector string
	// Variants enables variant-aware scanning: every immediate subdirectory of a
	// package that holds a defines file becomes a task. When disabled only the
	// autobuild directory is considered.
	Variants bool
}

// TreeScanner enumerates the scan tasks of a tree.
//
//go:generate go run go.uber.org/mock/mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type TreeScanner interface {
	// Scan returns every task under root before any of them is evaluated.
	Scan(ctx context.Context, root string, opts ScanOptions) ([]domain.Task, error)
}
