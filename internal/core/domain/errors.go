package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidTreeName is returned when a tree name contains a path separator.
	ErrInvalidTreeName = zerr.New("'/' not allowed in tree name, use the base path to change directory")

	// ErrPoolRootNotFound is returned when the tree directory to scan does not exist.
	ErrPoolRootNotFound = zerr.New("pool root not found")

	// ErrScanFailed is returned when the tree structure cannot be enumerated.
	ErrScanFailed = zerr.New("failed to scan tree")

	// ErrIncompleteRevisionPair is returned when only one side of the revision pair is given.
	ErrIncompleteRevisionPair = zerr.New("incremental mode requires both revisions")

	// ErrInvalidRevision is returned when the diff provider cannot resolve a revision.
	ErrInvalidRevision = zerr.New("invalid revision")

	// ErrDiffFailed is returned when the diff provider fails to compute changed paths.
	ErrDiffFailed = zerr.New("failed to compute changed paths")

	// ErrSyncFailed is returned when the tree cannot be synced with its upstream.
	ErrSyncFailed = zerr.New("failed to sync tree")

	// ErrUnsupportedDatabase is returned when the database DSN names an unknown backend.
	ErrUnsupportedDatabase = zerr.New("unsupported database")

	// ErrDatabaseOpenFailed is returned when the snapshot database cannot be opened.
	ErrDatabaseOpenFailed = zerr.New("failed to open database")

	// ErrSchemaFailed is returned when the snapshot schema cannot be created.
	ErrSchemaFailed = zerr.New("failed to create schema")

	// ErrFlushFailed is returned when the pending batch cannot be committed.
	ErrFlushFailed = zerr.New("failed to flush snapshot")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when a config value is out of range.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrInvalidDependencyToken is reported for dependency tokens without a package name.
	ErrInvalidDependencyToken = zerr.New("dependency token has no package name")
)
