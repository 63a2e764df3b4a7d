package domain

import (
	"runtime"
	"time"
)

// Config holds the tunables of a scan run.
type Config struct {
	// BasePath is the directory containing the source trees.
	BasePath string
	// Database is the snapshot database file or DSN.
	Database string
	// Workers is the number of concurrent evaluations.
	Workers int
	// Timeout bounds a single descriptor evaluation.
	Timeout time.Duration
	// Categories are the directory prefixes that mark a category.
	Categories []string
	// Variants enables variant-aware package detection.
	Variants bool
	// CacheSize is the number of evaluation results kept in memory.
	CacheSize int
}

// DefaultWorkers reserves one core for the coordinating goroutine.
func DefaultWorkers() int {
	return max(runtime.NumCPU()-1, 1)
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		BasePath:   ".",
		Database:   "abbs.db",
		Workers:    DefaultWorkers(),
		Timeout:    30 * time.Second,
		Categories: []string{"base-", "extra-"},
		Variants:   true,
		CacheSize:  256,
	}
}
