// Package store accumulates package records and flushes them as one batch.
package store

import (
	"context"
	"fmt"
	"sync"

	"go.trai.ch/abbsmeta/internal/core/domain"
	"go.trai.ch/abbsmeta/internal/core/ports"
)

// Stats counts what the last built batch contained.
type Stats struct {
	Packages     int
	Specs        int
	Dependencies int
	// Duplicates is the number of records replaced by a later record with the same name.
	Duplicates int
	// Rejected is the number of dependency tokens dropped for having no name.
	Rejected int
}

// Store collects package records from concurrent workers. Records are keyed
// by package name and the last one added wins.
type Store struct {
	logger ports.Logger

	mu         sync.Mutex
	records    map[string]domain.PackageRecord
	order      []string
	duplicates int
	stats      Stats
}

// New creates an empty Store.
func New(logger ports.Logger) *Store {
	return &Store{
		logger:  logger,
		records: make(map[string]domain.PackageRecord),
	}
}

// Add records packages. It is safe for concurrent use.
func (s *Store) Add(records ...domain.PackageRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range records {
		if prev, ok := s.records[r.Name]; ok {
			s.duplicates++
			s.logger.Warn(fmt.Sprintf("duplicate package %s: %s replaces %s", r.Name, r.Directory, prev.Directory))
		} else {
			s.order = append(s.order, r.Name)
		}
		s.records[r.Name] = r
	}
}

// Len returns the number of distinct packages held.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}

// Batch derives the rows of all three relations from the held records.
// Dependency edges sharing a (package, dependency, relationship) key collapse
// to the last token declared. A non-nil scope lets the batch prune packages
// that its directories no longer produce.
func (s *Store) Batch(reset bool, scope *domain.Scope) domain.Batch {
	s.mu.Lock()
	defer s.mu.Unlock()

	batch := domain.Batch{Reset: reset, Scope: scope}
	stats := Stats{Duplicates: s.duplicates}
	edgeIndex := make(map[domain.EdgeKey]int)

	for _, name := range s.order {
		r := s.records[name]
		batch.Packages = append(batch.Packages, r)
		batch.Specs = append(batch.Specs, r.SpecEntries()...)

		for _, e := range r.Dependencies() {
			if e.Dependency == "" {
				stats.Rejected++
				s.logger.Warn(fmt.Sprintf("%s: package %s, %s token %q",
					domain.ErrInvalidDependencyToken, e.Package, e.Relationship, e.Version))
				continue
			}
			if i, ok := edgeIndex[e.Key()]; ok {
				batch.Dependencies[i] = e
				continue
			}
			edgeIndex[e.Key()] = len(batch.Dependencies)
			batch.Dependencies = append(batch.Dependencies, e)
		}
	}

	stats.Packages = len(batch.Packages)
	stats.Specs = len(batch.Specs)
	stats.Dependencies = len(batch.Dependencies)
	s.stats = stats
	return batch
}

// Flush writes the held records to db in one transaction. An empty store
// without reset or scope does not touch db.
func (s *Store) Flush(ctx context.Context, db ports.Database, reset bool, scope *domain.Scope) error {
	batch := s.Batch(reset, scope)
	if batch.Empty() {
		s.logger.Debug("nothing to flush")
		return nil
	}
	return db.Apply(ctx, batch)
}

// Stats returns the counts of the most recently built batch.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}
