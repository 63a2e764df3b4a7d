package shell_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.trai.ch/abbsmeta/internal/adapters/shell"
	"go.trai.ch/abbsmeta/internal/core/ports"
	"go.trai.ch/abbsmeta/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func requireBash(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("bash"); err != nil {
		t.Skip("bash not installed")
	}
}

func TestExecutor_Run_CapturesStdout(t *testing.T) {
	requireBash(t)
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	executor := shell.NewExecutor(mockLogger, "bash")
	out, err := executor.Run(context.Background(), t.TempDir(), "VER=1.0\necho \"$VER\"\necho line2\n")
	require.NoError(t, err)
	require.Equal(t, "1.0\nline2\n", string(out))
}

func TestExecutor_Run_WorkingDirectory(t *testing.T) {
	requireBash(t)
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "marker.patch"), nil, 0o600))

	executor := shell.NewExecutor(mockLogger, "bash")
	out, err := executor.Run(context.Background(), dir, "echo *.patch\n")
	require.NoError(t, err)
	require.Equal(t, "marker.patch\n", string(out))
}

func TestExecutor_Run_EmptyEnvironment(t *testing.T) {
	requireBash(t)
	t.Setenv("ABBSMETA_TEST_SECRET", "leaked")
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	executor := shell.NewExecutor(mockLogger, "bash")
	out, err := executor.Run(context.Background(), t.TempDir(), "echo \"${ABBSMETA_TEST_SECRET-unset}\"\n")
	require.NoError(t, err)
	require.Equal(t, "unset\n", string(out))
}

func TestExecutor_Run_Restricted(t *testing.T) {
	requireBash(t)
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

	dir := t.TempDir()
	executor := shell.NewExecutor(mockLogger, "bash")
	_, _ = executor.Run(context.Background(), dir, "echo owned > written.txt\n")

	_, err := os.Stat(filepath.Join(dir, "written.txt"))
	require.True(t, errors.Is(err, os.ErrNotExist), "restricted shell must not redirect output to files")
}

func TestExecutor_Run_FailureKeepsPartialOutput(t *testing.T) {
	requireBash(t)
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	executor := shell.NewExecutor(mockLogger, "bash")
	out, err := executor.Run(context.Background(), t.TempDir(), "echo partial\necho oops >&2\nexit 3\n")
	require.Error(t, err)
	require.Contains(t, err.Error(), "shell evaluation failed")
	require.Equal(t, "partial\n", string(out))
}

func TestExecutor_Run_Timeout(t *testing.T) {
	requireBash(t)
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	executor := shell.NewExecutor(mockLogger, "bash")
	start := time.Now()
	_, err := executor.Run(ctx, t.TempDir(), "while :; do :; done\n")
	require.Error(t, err)
	require.ErrorIs(t, ctx.Err(), context.DeadlineExceeded)
	require.Less(t, time.Since(start), 5*time.Second)
}

func TestExecutor_Run_ShellNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	executor := shell.NewExecutor(mockLogger, "nonexistent-shell-xyz123")
	_, err := executor.Run(context.Background(), t.TempDir(), "echo hi\n")
	require.Error(t, err)
	require.Contains(t, err.Error(), "shell not found")
}

func TestExecutor_Run_StderrToVertex(t *testing.T) {
	requireBash(t)
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

	var stderrBuf bytes.Buffer
	mockVertex := mocks.NewMockVertex(ctrl)
	mockVertex.EXPECT().Stderr().Return(&stderrBuf).AnyTimes()

	ctx := ports.ContextWithVertex(context.Background(), mockVertex)
	executor := shell.NewExecutor(mockLogger, "bash")
	_, err := executor.Run(ctx, t.TempDir(), "echo to-stderr >&2\n")
	require.NoError(t, err)
	require.True(t, strings.Contains(stderrBuf.String(), "to-stderr"))
}
