// Package sqldb persists scan snapshots to SQLite or PostgreSQL.
package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"slices"
	"strconv"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the pgx driver
	"go.trai.ch/abbsmeta/internal/core/domain"
	"go.trai.ch/abbsmeta/internal/core/ports"
	"go.trai.ch/zerr"
	_ "modernc.org/sqlite" // registers the sqlite driver
)

// Opener implements ports.DatabaseOpener.
type Opener struct {
	logger ports.Logger
}

var _ ports.DatabaseOpener = (*Opener)(nil)

// NewOpener creates a new Opener.
func NewOpener(logger ports.Logger) *Opener {
	return &Opener{logger: logger}
}

// Open connects to dsn. postgres:// and postgresql:// URLs select PostgreSQL;
// anything else without a scheme is a SQLite database file.
func (o *Opener) Open(ctx context.Context, dsn string) (ports.Database, error) {
	d, err := dialectFor(dsn)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open(d.driver, dsn)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrDatabaseOpenFailed, err), "backend", d.name)
	}
	if d == sqliteDialect {
		conn.SetMaxOpenConns(1)
	}
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, zerr.With(errors.Join(domain.ErrDatabaseOpenFailed, err), "backend", d.name)
	}

	db := &DB{conn: conn, dialect: d, logger: o.logger}
	if d == sqliteDialect {
		if err := db.exec(ctx, conn, "PRAGMA journal_mode=WAL"); err != nil {
			_ = conn.Close()
			return nil, zerr.With(errors.Join(domain.ErrDatabaseOpenFailed, err), "backend", d.name)
		}
	}
	o.logger.Debug("opened " + d.name + " database")
	return db, nil
}

func dialectFor(dsn string) (dialect, error) {
	switch {
	case dsn == "":
		return dialect{}, zerr.With(domain.ErrUnsupportedDatabase, "dsn", dsn)
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return postgresDialect, nil
	case strings.Contains(dsn, "://"):
		scheme, _, _ := strings.Cut(dsn, "://")
		return dialect{}, zerr.With(domain.ErrUnsupportedDatabase, "scheme", scheme)
	default:
		return sqliteDialect, nil
	}
}

// DB implements ports.Database over database/sql.
type DB struct {
	conn    *sql.DB
	dialect dialect
	logger  ports.Logger
}

var _ ports.Database = (*DB)(nil)

// EnsureSchema creates the relations and indexes if they do not exist.
func (db *DB) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if err := db.exec(ctx, db.conn, stmt); err != nil {
			return errors.Join(domain.ErrSchemaFailed, err)
		}
	}
	return nil
}

// Apply writes the batch in one transaction. Rows previously stored for the
// batch's packages are replaced, so attributes and edges a package no longer
// declares disappear. Packages the batch's scope marks stale are removed.
func (db *DB) Apply(ctx context.Context, batch domain.Batch) (err error) {
	if batch.Empty() {
		return nil
	}

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return errors.Join(domain.ErrFlushFailed, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if batch.Reset {
		for _, t := range []table{dependenciesTable, specTable, packagesTable} {
			if err = db.exec(ctx, tx, "DELETE FROM "+t.name); err != nil {
				return zerr.With(errors.Join(domain.ErrFlushFailed, err), "relation", t.name)
			}
		}
	} else {
		if err = db.prune(ctx, tx, batch); err != nil {
			return err
		}
		names := make([]any, len(batch.Packages))
		for i, p := range batch.Packages {
			names[i] = p.Name
		}
		if err = db.deleteOwned(ctx, tx, names, specTable, dependenciesTable); err != nil {
			return err
		}
	}

	if err = db.upsert(ctx, tx, packagesTable, len(batch.Packages), func(i int) []any {
		p := batch.Packages[i]
		return []any{p.Name, p.Category, p.Section, p.PkgSection, p.Version, p.Release, p.Description}
	}); err != nil {
		return err
	}
	specs := withSources(batch)
	if err = db.upsert(ctx, tx, specTable, len(specs), func(i int) []any {
		s := specs[i]
		return []any{s.Package, s.Key, s.Value}
	}); err != nil {
		return err
	}
	if err = db.upsert(ctx, tx, dependenciesTable, len(batch.Dependencies), func(i int) []any {
		e := batch.Dependencies[i]
		return []any{e.Package, e.Dependency, e.Version, string(e.Relationship)}
	}); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return errors.Join(domain.ErrFlushFailed, err)
	}
	return nil
}

// prune removes every package the batch does not carry whose stored source
// directory the batch's scope marks stale.
func (db *DB) prune(ctx context.Context, tx *sql.Tx, batch domain.Batch) error {
	if batch.Scope == nil {
		return nil
	}

	carried := make(map[string]struct{}, len(batch.Packages))
	for _, p := range batch.Packages {
		carried[p.Name] = struct{}{}
	}

	rows, err := tx.QueryContext(ctx, db.dialect.selectSources(), domain.SourceKey)
	if err != nil {
		return zerr.With(errors.Join(domain.ErrFlushFailed, err), "relation", specTable.name)
	}
	var stale []any
	for rows.Next() {
		var name, source string
		if err := rows.Scan(&name, &source); err != nil {
			_ = rows.Close()
			return zerr.With(errors.Join(domain.ErrFlushFailed, err), "relation", specTable.name)
		}
		if _, ok := carried[name]; ok || !batch.Scope.Stale(source) {
			continue
		}
		db.logger.Debug("pruning " + name + " from " + source)
		stale = append(stale, name)
	}
	if err := errors.Join(rows.Err(), rows.Close()); err != nil {
		return zerr.With(errors.Join(domain.ErrFlushFailed, err), "relation", specTable.name)
	}

	if len(stale) == 0 {
		return nil
	}
	if err := db.deleteOwned(ctx, tx, stale, specTable, dependenciesTable, packagesTable); err != nil {
		return err
	}
	db.logger.Info("pruned " + strconv.Itoa(len(stale)) + " stale packages")
	return nil
}

// deleteOwned removes the rows of tables owned by the named packages.
func (db *DB) deleteOwned(ctx context.Context, tx *sql.Tx, names []any, tables ...table) error {
	for _, t := range tables {
		for chunk := range chunks(names, db.dialect.maxParams) {
			if err := db.exec(ctx, tx, db.dialect.deleteByPackage(t, len(chunk)), chunk...); err != nil {
				return zerr.With(errors.Join(domain.ErrFlushFailed, err), "relation", t.name)
			}
		}
	}
	return nil
}

// upsert writes n rows into t. Relations without rows issue no statement.
func (db *DB) upsert(ctx context.Context, tx *sql.Tx, t table, n int, row func(int) []any) error {
	if n == 0 {
		return nil
	}
	per := db.dialect.rowsPerStatement(t)
	for start := 0; start < n; start += per {
		end := min(start+per, n)
		args := make([]any, 0, (end-start)*len(t.columns))
		for i := start; i < end; i++ {
			args = append(args, row(i)...)
		}
		if err := db.exec(ctx, tx, db.dialect.upsert(t, end-start), args...); err != nil {
			return zerr.With(errors.Join(domain.ErrFlushFailed, err), "relation", t.name)
		}
	}
	db.logger.Debug("upserted " + t.name)
	return nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (db *DB) exec(ctx context.Context, e execer, query string, args ...any) error {
	if _, err := e.ExecContext(ctx, query, args...); err != nil {
		return zerr.With(zerr.Wrap(err, "statement failed"), "backend", db.dialect.name)
	}
	return nil
}

// withSources appends a source row for every package that knows its directory.
func withSources(batch domain.Batch) []domain.SpecEntry {
	specs := slices.Clip(batch.Specs)
	for _, p := range batch.Packages {
		if p.Directory != "" {
			specs = append(specs, domain.SpecEntry{Package: p.Name, Key: domain.SourceKey, Value: p.Directory})
		}
	}
	return specs
}

// Close releases the connection pool.
func (db *DB) Close() error {
	return db.conn.Close()
}

func chunks(items []any, size int) func(func([]any) bool) {
	return func(yield func([]any) bool) {
		for start := 0; start < len(items); start += size {
			if !yield(items[start:min(start+size, len(items))]) {
				return
			}
		}
	}
}
