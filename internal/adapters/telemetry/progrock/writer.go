package progrock

import (
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/abbsmeta/internal/core/ports"
)

// LogWriter is a progrock.Writer that reports each vertex once, when it
// finishes, at debug level.
type LogWriter struct {
	logger ports.Logger

	mu       sync.Mutex
	reported map[string]struct{}
	failed   int
	cached   int
	done     int
}

var _ progrock.Writer = (*LogWriter)(nil)

// NewLogWriter creates a new LogWriter.
func NewLogWriter(logger ports.Logger) *LogWriter {
	return &LogWriter{
		logger:   logger,
		reported: make(map[string]struct{}),
	}
}

// WriteStatus implements progrock.Writer.
func (w *LogWriter) WriteStatus(update *progrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, v := range update.Vertexes {
		if v.Completed == nil && !v.Cached {
			continue
		}
		if _, seen := w.reported[v.Id]; seen {
			continue
		}
		w.reported[v.Id] = struct{}{}

		switch {
		case v.Error != nil:
			w.failed++
			w.logger.Debug("failed " + v.Name + ": " + *v.Error)
		case v.Cached:
			w.cached++
			w.logger.Debug("unchanged " + v.Name)
		default:
			w.done++
			w.logger.Debug("evaluated " + v.Name)
		}
	}
	return nil
}

// Counts returns the number of vertices seen finished, skipped and failed.
func (w *LogWriter) Counts() (done, cached, failed int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.done, w.cached, w.failed
}

// Close implements progrock.Writer.
func (w *LogWriter) Close() error {
	return nil
}
