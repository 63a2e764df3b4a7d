package fs

import (
	"go.trai.ch/abbsmeta/internal/core/domain"
	"go.trai.ch/abbsmeta/internal/core/ports"
)

// ScanCategory exposes scanCategory for testing.
func (s *Scanner) ScanCategory(dir, name string, opts ports.ScanOptions) ([]domain.Task, error) {
	return s.scanCategory(dir, name, opts)
}

// Variants exposes variants for testing.
func (s *Scanner) Variants(pkgDir string, variantAware bool) ([]string, error) {
	return s.variants(pkgDir, variantAware)
}
