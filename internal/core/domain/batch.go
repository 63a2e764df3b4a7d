package domain

import (
	"strings"
	"time"
)

// SourceKey is the package_spec key holding the tree path a package was
// evaluated from. It is outside the attribute vocabulary, so no descriptor
// can set it.
const SourceKey = "DIRECTORY"

// Batch is everything one flush writes, grouped by relation.
type Batch struct {
	Packages     []PackageRecord
	Specs        []SpecEntry
	Dependencies []DependencyEdge
	// Reset clears the relations before writing.
	Reset bool
	// Scope, when set, prunes stored packages the batch no longer accounts for.
	Scope *Scope
}

// Empty reports whether the batch would not touch the database.
func (b Batch) Empty() bool {
	return !b.Reset && b.Scope == nil && len(b.Packages) == 0 && len(b.Specs) == 0 && len(b.Dependencies) == 0
}

// Scope is the part of the tree one scan covered. A stored package that the
// batch does not carry is stale when its source directory belongs to a scanned
// category and was either re-evaluated or no longer exists.
type Scope struct {
	prefixes  []string
	selector  string
	present   map[string]struct{}
	evaluated map[string]struct{}
}

// NewScope creates a scope for categories matching prefixes and selector.
// present and evaluated are "category/package" tree paths.
func NewScope(prefixes []string, selector string, present, evaluated []string) *Scope {
	s := &Scope{
		prefixes:  prefixes,
		selector:  selector,
		present:   make(map[string]struct{}, len(present)),
		evaluated: make(map[string]struct{}, len(evaluated)),
	}
	for _, dir := range present {
		s.present[dir] = struct{}{}
	}
	for _, dir := range evaluated {
		s.evaluated[dir] = struct{}{}
	}
	return s
}

// Stale reports whether a package whose stored source is source, and which
// the batch does not carry, must be removed.
func (s *Scope) Stale(source string) bool {
	parts := strings.SplitN(source, "/", 3)
	if len(parts) < 2 || !MatchCategory(parts[0], s.prefixes, s.selector) {
		return false
	}
	dir := parts[0] + "/" + parts[1]
	if _, ok := s.evaluated[dir]; ok {
		return true
	}
	_, ok := s.present[dir]
	return !ok
}

// ScanReport summarizes one pipeline run.
type ScanReport struct {
	Tasks        int
	Skipped      int
	Discarded    int
	Packages     int
	Specs        int
	Dependencies int
	Duration     time.Duration
}
