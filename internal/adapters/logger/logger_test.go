package logger_test

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/abbsmeta/internal/adapters/logger"
)

// captureStderr captures output written to os.Stderr during the execution of fn.
func captureStderr(fn func()) (string, error) {
	originalStderr := os.Stderr

	r, w, err := os.Pipe()
	if err != nil {
		return "", err
	}
	os.Stderr = w

	done := make(chan string, 1)
	go func() {
		buf, _ := io.ReadAll(r)
		done <- string(buf)
	}()

	fn()

	if err := w.Close(); err != nil {
		os.Stderr = originalStderr
		return "", err
	}
	output := <-done
	if err := r.Close(); err != nil {
		os.Stderr = originalStderr
		return "", err
	}
	os.Stderr = originalStderr

	return output, nil
}

func TestNew_WritesToStderr(t *testing.T) {
	output, err := captureStderr(func() {
		lg := logger.New()
		lg.Info("test initialization")
	})
	require.NoError(t, err)
	require.Contains(t, output, "test initialization")
	require.Contains(t, output, "INFO")
}

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)

	lg.Info("some message")
	lg.Warn("some warning")
	lg.Error(os.ErrPermission)

	output := buf.String()
	require.Contains(t, output, "level=INFO msg=\"some message\"")
	require.Contains(t, output, "level=WARN msg=\"some warning\"")
	require.Contains(t, output, "level=ERROR")
	require.Contains(t, output, "permission denied")
}

func TestLogger_DebugRequiresVerbose(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)

	lg.Debug("hidden")
	require.NotContains(t, buf.String(), "hidden")

	lg.SetVerbose(true)
	lg.Debug("visible")
	require.Contains(t, buf.String(), "visible")

	lg.SetVerbose(false)
	lg.Debug("hidden again")
	require.NotContains(t, buf.String(), "hidden again")
}
