// Package shell provides the shell adapter that evaluates descriptor scripts.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
	"time"

	"go.trai.ch/abbsmeta/internal/core/ports"
	"go.trai.ch/zerr"
)

// waitDelay bounds how long Run waits for descendants holding the output pipes
// after the shell itself has been killed.
const waitDelay = time.Second

// restrictedFlag starts bash in restricted mode: no cd, no output redirection
// and no commands named by path.
const restrictedFlag = "-r"

// Executor implements ports.Shell by piping scripts into a restricted shell.
//
// Scripts run with an empty environment, so nothing from the caller's
// environment leaks into descriptor evaluation.
type Executor struct {
	logger ports.Logger
	shell  string
}

var _ ports.Shell = (*Executor)(nil)

// NewExecutor creates a new Executor running scripts with the given shell binary.
func NewExecutor(logger ports.Logger, shell string) *Executor {
	if shell == "" {
		shell = "bash"
	}
	return &Executor{
		logger: logger,
		shell:  shell,
	}
}

// Run executes script in dir and returns its standard output.
// Standard error is streamed to the logger and to the vertex carried by ctx, if any.
func (e *Executor) Run(ctx context.Context, dir, script string) ([]byte, error) {
	executable, err := exec.LookPath(e.shell)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "shell not found"), "shell", e.shell)
	}

	cmd := exec.CommandContext(ctx, executable, restrictedFlag) //nolint:gosec // shell is configured by the operator
	cmd.Dir = dir
	cmd.Env = []string{}
	cmd.Stdin = strings.NewReader(script)
	cmd.WaitDelay = waitDelay

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	var stderr io.Writer = &logWriter{logger: e.logger, prefix: dir + ": "}
	if v, ok := ports.VertexFromContext(ctx); ok {
		stderr = io.MultiWriter(stderr, v.Stderr())
	}
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		err = zerr.With(zerr.Wrap(err, "shell evaluation failed"), "exit_code", exitCode)
		return stdout.Bytes(), zerr.With(err, "dir", dir)
	}

	return stdout.Bytes(), nil
}

// logWriter forwards shell diagnostics to the logger, one warning per line.
type logWriter struct {
	logger ports.Logger
	prefix string
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	lines := strings.Split(strings.TrimSuffix(string(p), "\n"), "\n")
	for _, line := range lines {
		if line == "" {
			continue
		}
		w.logger.Warn(w.prefix + line)
	}
	return len(p), nil
}
