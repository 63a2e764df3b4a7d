package scheduler_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/abbsmeta/internal/adapters/telemetry"
	"go.trai.ch/abbsmeta/internal/core/domain"
	"go.trai.ch/abbsmeta/internal/core/ports/mocks"
	"go.trai.ch/abbsmeta/internal/engine/scheduler"
	"go.uber.org/mock/gomock"
)

// writeTasks lays out n packages under base-devel and returns their tasks.
func writeTasks(t *testing.T, n int) []domain.Task {
	t.Helper()
	root := t.TempDir()
	tasks := make([]domain.Task, n)
	for i := range n {
		pkg := fmt.Sprintf("pkg%03d", i)
		dir := filepath.Join(root, "base-devel", pkg)
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "autobuild"), 0o750))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "spec"), []byte("VER=1.0\n"), 0o600))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "autobuild", "defines"), []byte("PKGNAME="+pkg+"\n"), 0o600))
		tasks[i] = domain.Task{
			Dir:      dir,
			Category: domain.NewInternedString("base-devel"),
			Package:  pkg,
			Variant:  "autobuild",
		}
	}
	return tasks
}

func nameFromDefines(defines string) string {
	var name string
	_, _ = fmt.Sscanf(defines, "PKGNAME=%s", &name)
	return name
}

func TestScheduler_Run_ClaimsEveryTaskOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	tasks := writeTasks(t, 200)

	var mu sync.Mutex
	seen := make(map[string]int)

	eval := mocks.NewMockAttributeEvaluator(ctrl)
	eval.EXPECT().Evaluate(gomock.Any(), gomock.Any(), "VER=1.0\n", gomock.Any()).
		DoAndReturn(func(_ context.Context, dir, _, defines string) (domain.AttributeSet, error) {
			mu.Lock()
			seen[dir]++
			mu.Unlock()
			return domain.AttributeSet{"PKGNAME": nameFromDefines(defines), "VER": "1.0"}, nil
		}).Times(len(tasks))

	s := scheduler.NewScheduler(eval, telemetry.NoOp{}, mocks.NewMockLogger(ctrl))
	res, err := s.Run(context.Background(), tasks, scheduler.Options{Workers: 8})
	require.NoError(t, err)

	require.Len(t, seen, len(tasks))
	for dir, n := range seen {
		assert.Equal(t, 1, n, dir)
	}

	require.Len(t, res.Records, len(tasks))
	for i, rec := range res.Records {
		assert.Equal(t, tasks[i].Package, rec.Name, "records keep task order")
	}
	assert.Zero(t, res.Skipped)
	assert.Zero(t, res.Discarded)

	for _, status := range s.GetTaskStatusMap() {
		assert.Equal(t, scheduler.StatusCompleted, status)
	}
}

func TestScheduler_Run_BoundedParallelism(t *testing.T) {
	tasks := writeTasks(t, 6)

	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)

		var running, peak atomic.Int32
		release := make(chan struct{})

		eval := mocks.NewMockAttributeEvaluator(ctrl)
		eval.EXPECT().Evaluate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _, defines string) (domain.AttributeSet, error) {
				n := running.Add(1)
				for {
					p := peak.Load()
					if n <= p || peak.CompareAndSwap(p, n) {
						break
					}
				}
				<-release
				running.Add(-1)
				return domain.AttributeSet{"PKGNAME": nameFromDefines(defines)}, nil
			}).Times(len(tasks))

		s := scheduler.NewScheduler(eval, telemetry.NoOp{}, mocks.NewMockLogger(ctrl))

		type outcome struct {
			res scheduler.Result
			err error
		}
		done := make(chan outcome)
		go func() {
			res, err := s.Run(context.Background(), tasks, scheduler.Options{Workers: 2})
			done <- outcome{res, err}
		}()

		synctest.Wait()
		assert.Equal(t, int32(2), running.Load())
		close(release)

		out := <-done
		require.NoError(t, out.err)
		assert.Len(t, out.res.Records, len(tasks))
		assert.Equal(t, int32(2), peak.Load())
	})
}

func TestScheduler_Run_SkipsUnchangedTasks(t *testing.T) {
	ctrl := gomock.NewController(t)
	tasks := writeTasks(t, 3)

	filter := mocks.NewMockChangeFilter(ctrl)
	filter.EXPECT().ShouldSkip(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, task domain.Task) (bool, error) {
		return task.Package != "pkg001", nil
	}).Times(3)

	eval := mocks.NewMockAttributeEvaluator(ctrl)
	eval.EXPECT().Evaluate(gomock.Any(), tasks[1].VariantDir(), gomock.Any(), gomock.Any()).
		Return(domain.AttributeSet{"PKGNAME": "pkg001"}, nil)

	s := scheduler.NewScheduler(eval, telemetry.NoOp{}, mocks.NewMockLogger(ctrl))
	res, err := s.Run(context.Background(), tasks, scheduler.Options{Workers: 2, Filter: filter})
	require.NoError(t, err)

	require.Len(t, res.Records, 1)
	assert.Equal(t, "pkg001", res.Records[0].Name)
	assert.Equal(t, 2, res.Skipped)
	assert.Equal(t, []string{"base-devel/pkg001"}, res.Evaluated)

	statuses := s.GetTaskStatusMap()
	assert.Equal(t, scheduler.StatusCached, statuses[tasks[0].String()])
	assert.Equal(t, scheduler.StatusCompleted, statuses[tasks[1].String()])
}

func TestScheduler_Run_FilterErrorIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	tasks := writeTasks(t, 4)

	filter := mocks.NewMockChangeFilter(ctrl)
	filter.EXPECT().ShouldSkip(gomock.Any(), gomock.Any()).
		Return(false, errors.Join(domain.ErrDiffFailed, errors.New("unknown revision"))).
		MinTimes(1)

	eval := mocks.NewMockAttributeEvaluator(ctrl)
	s := scheduler.NewScheduler(eval, telemetry.NoOp{}, mocks.NewMockLogger(ctrl))

	res, err := s.Run(context.Background(), tasks, scheduler.Options{Workers: 1, Filter: filter})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrDiffFailed.Error())
	assert.Empty(t, res.Records)
}

func TestScheduler_Run_DiscardsNamelessRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	tasks := writeTasks(t, 2)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug("no package name in " + tasks[0].String())

	eval := mocks.NewMockAttributeEvaluator(ctrl)
	eval.EXPECT().Evaluate(gomock.Any(), tasks[0].VariantDir(), gomock.Any(), gomock.Any()).
		Return(domain.AttributeSet{"VER": "1.0"}, nil)
	eval.EXPECT().Evaluate(gomock.Any(), tasks[1].VariantDir(), gomock.Any(), gomock.Any()).
		Return(domain.AttributeSet{"PKGNAME": "pkg001"}, nil)

	s := scheduler.NewScheduler(eval, telemetry.NoOp{}, mockLogger)
	res, err := s.Run(context.Background(), tasks, scheduler.Options{Workers: 1})
	require.NoError(t, err)

	assert.Len(t, res.Records, 1)
	assert.Equal(t, 1, res.Discarded)
	assert.Equal(t, []string{"base-devel/pkg000", "base-devel/pkg001"}, res.Evaluated)
	assert.Equal(t, scheduler.StatusDiscarded, s.GetTaskStatusMap()[tasks[0].String()])
}

func TestScheduler_Run_MissingDescriptor(t *testing.T) {
	ctrl := gomock.NewController(t)
	tasks := writeTasks(t, 2)
	require.NoError(t, os.Remove(tasks[0].DefinesPath()))

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn("descriptor disappeared: " + tasks[0].DefinesPath())

	eval := mocks.NewMockAttributeEvaluator(ctrl)
	eval.EXPECT().Evaluate(gomock.Any(), tasks[1].VariantDir(), gomock.Any(), gomock.Any()).
		Return(domain.AttributeSet{"PKGNAME": "pkg001"}, nil)

	s := scheduler.NewScheduler(eval, telemetry.NoOp{}, mockLogger)
	res, err := s.Run(context.Background(), tasks, scheduler.Options{Workers: 2})
	require.NoError(t, err)
	assert.Len(t, res.Records, 1)
	assert.Equal(t, 1, res.Discarded)
}

func TestScheduler_Run_CanceledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	tasks := writeTasks(t, 3)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := scheduler.NewScheduler(mocks.NewMockAttributeEvaluator(ctrl), telemetry.NoOp{}, mocks.NewMockLogger(ctrl))
	_, err := s.Run(ctx, tasks, scheduler.Options{Workers: 2})
	require.ErrorIs(t, err, context.Canceled)
}

func TestScheduler_Run_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := scheduler.NewScheduler(mocks.NewMockAttributeEvaluator(ctrl), telemetry.NoOp{}, mocks.NewMockLogger(ctrl))

	res, err := s.Run(context.Background(), nil, scheduler.Options{Workers: 4})
	require.NoError(t, err)
	assert.Empty(t, res.Records)
}

func TestScheduler_Run_EvaluatedCollapsesVariants(t *testing.T) {
	ctrl := gomock.NewController(t)
	tasks := writeTasks(t, 1)
	variant := tasks[0]
	variant.Variant = "32bit"
	require.NoError(t, os.MkdirAll(variant.VariantDir(), 0o750))
	require.NoError(t, os.WriteFile(variant.DefinesPath(), []byte("PKGNAME=pkg000+32\n"), 0o600))
	tasks = append(tasks, variant)

	eval := mocks.NewMockAttributeEvaluator(ctrl)
	eval.EXPECT().Evaluate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, defines string) (domain.AttributeSet, error) {
			return domain.AttributeSet{"PKGNAME": nameFromDefines(defines)}, nil
		}).Times(2)

	s := scheduler.NewScheduler(eval, telemetry.NoOp{}, mocks.NewMockLogger(ctrl))
	res, err := s.Run(context.Background(), tasks, scheduler.Options{Workers: 2})
	require.NoError(t, err)
	assert.Len(t, res.Records, 2)
	assert.Equal(t, []string{"base-devel/pkg000"}, res.Evaluated)
}
