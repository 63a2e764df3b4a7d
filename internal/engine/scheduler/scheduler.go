// Package scheduler implements the worker pool that evaluates scan tasks.
package scheduler

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"slices"
	"sync"
	"sync/atomic"

	"go.trai.ch/abbsmeta/internal/core/domain"
	"go.trai.ch/abbsmeta/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// TaskStatus represents the status of a task.
type TaskStatus string

const (
	// StatusPending indicates the task is waiting to be claimed.
	StatusPending TaskStatus = "Pending"
	// StatusRunning indicates a worker has claimed the task.
	StatusRunning TaskStatus = "Running"
	// StatusCompleted indicates the task produced a package record.
	StatusCompleted TaskStatus = "Completed"
	// StatusDiscarded indicates the task was evaluated but yielded no record.
	StatusDiscarded TaskStatus = "Discarded"
	// StatusFailed indicates the task aborted the run.
	StatusFailed TaskStatus = "Failed"
	// StatusCached indicates the task was skipped because it did not change.
	StatusCached TaskStatus = "Cached"
)

// Options configures a single Run.
type Options struct {
	// Workers is the number of concurrent workers. Values below one mean one.
	Workers int
	// Filter, when set, is consulted before evaluating each task.
	Filter ports.ChangeFilter
}

// Result is everything a Run collected.
type Result struct {
	// Records are ordered like the tasks they came from.
	Records []domain.PackageRecord
	// Evaluated holds the sorted "category/package" paths of every task that
	// was not skipped, including those that yielded no record.
	Evaluated []string
	Skipped   int
	Discarded int
}

// Scheduler drains a task list with a fixed number of workers.
type Scheduler struct {
	evaluator ports.AttributeEvaluator
	telemetry ports.Telemetry
	logger    ports.Logger

	mu         sync.RWMutex
	taskStatus map[string]TaskStatus
}

// NewScheduler creates a new Scheduler.
func NewScheduler(
	evaluator ports.AttributeEvaluator,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Scheduler {
	return &Scheduler{
		evaluator:  evaluator,
		telemetry:  telemetry,
		logger:     logger,
		taskStatus: make(map[string]TaskStatus),
	}
}

func (s *Scheduler) updateStatus(task domain.Task, status TaskStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.taskStatus[task.String()] = status
}

// collected is a record tagged with the index of its task.
type collected struct {
	index  int
	record domain.PackageRecord
}

// partial is the accumulator owned by a single worker.
type partial struct {
	records   []collected
	evaluated []int
	skipped   int
	discarded int
}

// Run evaluates every task exactly once and returns once all workers have
// finished. Tasks are claimed by advancing a shared atomic cursor. The first
// fatal error cancels the remaining work and is returned without a result.
func (s *Scheduler) Run(ctx context.Context, tasks []domain.Task, opts Options) (Result, error) {
	s.mu.Lock()
	for _, t := range tasks {
		s.taskStatus[t.String()] = StatusPending
	}
	s.mu.Unlock()

	if len(tasks) == 0 {
		return Result{}, nil
	}
	workers := min(max(opts.Workers, 1), len(tasks))

	var cursor atomic.Int64
	partials := make([]partial, workers)

	g, gctx := errgroup.WithContext(ctx)
	for w := range workers {
		local := &partials[w]
		g.Go(func() error {
			for {
				i := int(cursor.Add(1) - 1)
				if i >= len(tasks) {
					return nil
				}
				if err := gctx.Err(); err != nil {
					return err
				}
				if err := s.process(gctx, i, tasks[i], opts.Filter, local); err != nil {
					return err
				}
			}
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	var res Result
	var all []collected
	seen := make(map[string]struct{})
	for _, p := range partials {
		all = append(all, p.records...)
		res.Skipped += p.skipped
		res.Discarded += p.discarded
		for _, i := range p.evaluated {
			dir := tasks[i].TreePath()
			if _, ok := seen[dir]; !ok {
				seen[dir] = struct{}{}
				res.Evaluated = append(res.Evaluated, dir)
			}
		}
	}
	slices.Sort(res.Evaluated)
	slices.SortFunc(all, func(a, b collected) int { return a.index - b.index })

	res.Records = make([]domain.PackageRecord, len(all))
	for i, c := range all {
		res.Records[i] = c.record
	}
	return res, nil
}

func (s *Scheduler) process(
	ctx context.Context,
	index int,
	task domain.Task,
	filter ports.ChangeFilter,
	local *partial,
) (err error) {
	s.updateStatus(task, StatusRunning)
	ctx, vertex := s.telemetry.Record(ctx, task.String())
	defer func() {
		if err != nil {
			s.updateStatus(task, StatusFailed)
			vertex.Complete(err)
		}
	}()

	if filter != nil {
		skip, ferr := filter.ShouldSkip(ctx, task)
		if ferr != nil {
			return ferr
		}
		if skip {
			local.skipped++
			s.updateStatus(task, StatusCached)
			vertex.Cached()
			return nil
		}
	}
	local.evaluated = append(local.evaluated, index)

	spec, ok := s.readDescriptor(task, task.SpecPath())
	if !ok {
		return s.discard(task, vertex, local)
	}
	defines, ok := s.readDescriptor(task, task.DefinesPath())
	if !ok {
		return s.discard(task, vertex, local)
	}

	attrs, err := s.evaluator.Evaluate(ctx, task.VariantDir(), spec, defines)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "evaluation aborted"), "task", task.String())
	}

	record, ok := domain.NewPackageRecord(task, attrs)
	if !ok {
		s.logger.Debug("no package name in " + task.String())
		return s.discard(task, vertex, local)
	}

	local.records = append(local.records, collected{index: index, record: record})
	s.updateStatus(task, StatusCompleted)
	vertex.Complete(nil)
	return nil
}

// readDescriptor reads a descriptor file. Unreadable files are reported and
// the task is dropped, since the tree may change while a scan runs.
func (s *Scheduler) readDescriptor(task domain.Task, path string) (string, bool) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the tree scan
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("descriptor disappeared: " + path)
		} else {
			s.logger.Warn("cannot read descriptor of " + task.String() + ": " + err.Error())
		}
		return "", false
	}
	return string(data), true
}

func (s *Scheduler) discard(task domain.Task, vertex ports.Vertex, local *partial) error {
	local.discarded++
	s.updateStatus(task, StatusDiscarded)
	vertex.Complete(nil)
	return nil
}
