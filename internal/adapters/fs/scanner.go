// Package fs provides the file system adapter that enumerates ABBS trees.
package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/abbsmeta/internal/core/domain"
	"go.trai.ch/abbsmeta/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// autobuildDir is the default variant directory of a package.
	autobuildDir = "autobuild"
	// definesFile holds the per-variant descriptor.
	definesFile = "defines"
)

// Scanner implements ports.TreeScanner over the local file system.
type Scanner struct {
	logger ports.Logger
}

var _ ports.TreeScanner = (*Scanner)(nil)

// NewScanner creates a new Scanner.
func NewScanner(logger ports.Logger) *Scanner {
	return &Scanner{logger: logger}
}

// Scan walks root's categories and packages and returns one task per build variant.
// Directories that vanish while the scan is running are skipped.
func (s *Scanner) Scan(ctx context.Context, root string, opts ports.ScanOptions) ([]domain.Task, error) {
	categories, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, zerr.With(domain.ErrPoolRootNotFound, "root", root)
		}
		return nil, zerr.With(errors.Join(domain.ErrScanFailed, err), "root", root)
	}

	var tasks []domain.Task
	for _, category := range categories {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := category.Name()
		if !category.IsDir() || !isCategory(name, opts) {
			continue
		}

		found, err := s.scanCategory(filepath.Join(root, name), name, opts)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, found...)
	}
	return tasks, nil
}

func (s *Scanner) scanCategory(dir, name string, opts ports.ScanOptions) ([]domain.Task, error) {
	packages, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			s.logger.Debug("category disappeared during scan: " + dir)
			return nil, nil
		}
		return nil, zerr.With(errors.Join(domain.ErrScanFailed, err), "category", dir)
	}

	category := domain.NewInternedString(name)
	var tasks []domain.Task
	for _, pkg := range packages {
		if !pkg.IsDir() {
			continue
		}
		pkgDir := filepath.Join(dir, pkg.Name())
		variants, err := s.variants(pkgDir, opts.Variants)
		if err != nil {
			return nil, err
		}
		for _, variant := range variants {
			tasks = append(tasks, domain.Task{
				Dir:      pkgDir,
				Category: category,
				Package:  pkg.Name(),
				Variant:  variant,
			})
		}
	}
	return tasks, nil
}

// variants returns the subdirectories of pkgDir that hold a defines file.
// Without variant awareness only the autobuild directory is considered.
func (s *Scanner) variants(pkgDir string, variantAware bool) ([]string, error) {
	if !variantAware {
		if hasDefines(filepath.Join(pkgDir, autobuildDir)) {
			return []string{autobuildDir}, nil
		}
		return nil, nil
	}

	entries, err := os.ReadDir(pkgDir)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			s.logger.Debug("package disappeared during scan: " + pkgDir)
			return nil, nil
		}
		return nil, zerr.With(errors.Join(domain.ErrScanFailed, err), "package", pkgDir)
	}

	var variants []string
	for _, entry := range entries {
		if entry.IsDir() && hasDefines(filepath.Join(pkgDir, entry.Name())) {
			variants = append(variants, entry.Name())
		}
	}
	return variants, nil
}

func hasDefines(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, definesFile))
	return err == nil && info.Mode().IsRegular()
}

func isCategory(name string, opts ports.ScanOptions) bool {
	return domain.MatchCategory(name, opts.Categories, opts.Selector)
}
