// Package app implements the application layer for abbsmeta.
package app

import (
	"context"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"go.trai.ch/abbsmeta/internal/core/domain"
	"go.trai.ch/abbsmeta/internal/core/ports"
	"go.trai.ch/abbsmeta/internal/engine/changes"
	"go.trai.ch/abbsmeta/internal/engine/evaluator"
	"go.trai.ch/abbsmeta/internal/engine/scheduler"
	"go.trai.ch/abbsmeta/internal/engine/store"
	"go.trai.ch/zerr"
)

// ScanOptions are the per-invocation settings of a scan. Zero values keep
// the configured defaults.
type ScanOptions struct {
	// Tree is the name of the tree directory below the base path.
	Tree string
	// Cwd is the directory the config and .env files are looked up in.
	Cwd string
	// ConfigPath is an explicit config file.
	ConfigPath string
	BasePath   string
	Database   string
	// Category keeps only categories whose name starts or ends with it.
	Category string
	Workers  int
	Timeout  time.Duration
	// From and To enable incremental mode when both are set.
	From string
	To   string
	// FastDiff selects the whole-tree change strategy.
	FastDiff   bool
	NoSync     bool
	Reset      bool
	NoVariants bool
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	scanner      ports.TreeScanner
	diff         ports.DiffProvider
	syncer       ports.Syncer
	shell        ports.Shell
	opener       ports.DatabaseOpener
	telemetry    ports.Telemetry
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	scanner ports.TreeScanner,
	diff ports.DiffProvider,
	syncer ports.Syncer,
	shell ports.Shell,
	opener ports.DatabaseOpener,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		scanner:      scanner,
		diff:         diff,
		syncer:       syncer,
		shell:        shell,
		opener:       opener,
		telemetry:    telemetry,
		logger:       logger,
	}
}

// Scan enumerates the tree, evaluates every task and writes the snapshot.
// Nothing is written unless every task finished.
func (a *App) Scan(ctx context.Context, opts ScanOptions) (domain.ScanReport, error) {
	start := time.Now()
	var report domain.ScanReport

	if err := validateTree(opts.Tree); err != nil {
		return report, err
	}
	incremental, err := validateRevisions(opts.From, opts.To)
	if err != nil {
		return report, err
	}

	cfg, err := a.configLoader.Load(opts.Cwd, opts.ConfigPath)
	if err != nil {
		return report, zerr.Wrap(err, "failed to load configuration")
	}
	applyOverrides(cfg, opts)
	root := filepath.Join(cfg.BasePath, opts.Tree)

	if !opts.NoSync {
		if err := a.syncer.Sync(ctx, root); err != nil {
			return report, err
		}
	}

	tasks, err := a.scanner.Scan(ctx, root, ports.ScanOptions{
		Categories: cfg.Categories,
		Selector:   opts.Category,
		Variants:   cfg.Variants,
	})
	if err != nil {
		return report, err
	}
	report.Tasks = len(tasks)
	a.logger.Info("found " + strconv.Itoa(len(tasks)) + " tasks in " + root)

	runOpts := scheduler.Options{Workers: cfg.Workers}
	if incremental {
		filter, err := a.changeFilter(ctx, root, opts)
		if err != nil {
			return report, err
		}
		runOpts.Filter = filter
	}

	eval, err := evaluator.New(a.shell, a.logger, evaluator.Options{
		Timeout:   cfg.Timeout,
		CacheSize: cfg.CacheSize,
	})
	if err != nil {
		return report, err
	}

	res, err := scheduler.NewScheduler(eval, a.telemetry, a.logger).Run(ctx, tasks, runOpts)
	if err != nil {
		return report, zerr.Wrap(err, "scan failed")
	}
	report.Skipped = res.Skipped
	report.Discarded = res.Discarded

	st := store.New(a.logger)
	st.Add(res.Records...)
	a.logger.Debug("collected " + strconv.Itoa(st.Len()) + " packages from " + strconv.Itoa(len(res.Evaluated)) + " directories")

	scope := domain.NewScope(cfg.Categories, opts.Category, treePaths(tasks), res.Evaluated)
	if err := a.flush(ctx, cfg.Database, st, opts.Reset, scope); err != nil {
		return report, err
	}

	stats := st.Stats()
	report.Packages = stats.Packages
	report.Specs = stats.Specs
	report.Dependencies = stats.Dependencies
	report.Duration = time.Since(start)

	if err := a.telemetry.Close(); err != nil {
		a.logger.Warn("failed to close telemetry: " + err.Error())
	}
	return report, nil
}

func (a *App) changeFilter(ctx context.Context, root string, opts ScanOptions) (*changes.Filter, error) {
	for _, rev := range []string{opts.From, opts.To} {
		if err := a.diff.VerifyRevision(ctx, root, rev); err != nil {
			return nil, err
		}
	}
	strategy := changes.PerTask
	if opts.FastDiff {
		strategy = changes.WholeTree
	}
	a.logger.Debug("incremental scan " + opts.From + ".." + opts.To + " (" + strategy.String() + ")")
	return changes.New(a.diff, root, opts.From, opts.To, strategy), nil
}

func (a *App) flush(ctx context.Context, dsn string, st *store.Store, reset bool, scope *domain.Scope) (err error) {
	db, err := a.opener.Open(ctx, dsn)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = zerr.Wrap(cerr, "failed to close database")
		}
	}()

	if err := db.EnsureSchema(ctx); err != nil {
		return err
	}
	return st.Flush(ctx, db, reset, scope)
}

// treePaths returns the distinct "category/package" paths of tasks.
func treePaths(tasks []domain.Task) []string {
	paths := make([]string, 0, len(tasks))
	for _, t := range tasks {
		paths = append(paths, t.TreePath())
	}
	slices.Sort(paths)
	return slices.Compact(paths)
}

func applyOverrides(cfg *domain.Config, opts ScanOptions) {
	if opts.BasePath != "" {
		cfg.BasePath = opts.BasePath
	}
	if opts.Database != "" {
		cfg.Database = opts.Database
	}
	if opts.Workers > 0 {
		cfg.Workers = opts.Workers
	}
	if opts.Timeout > 0 {
		cfg.Timeout = opts.Timeout
	}
	if opts.NoVariants {
		cfg.Variants = false
	}
}

func validateTree(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return zerr.With(domain.ErrInvalidTreeName, "tree", name)
	}
	return nil
}

func validateRevisions(from, to string) (bool, error) {
	if (from == "") != (to == "") {
		err := zerr.With(domain.ErrIncompleteRevisionPair, "from", from)
		return false, zerr.With(err, "to", to)
	}
	return from != "", nil
}
