package domain

import "go.trai.ch/zerr"

var (
	// ErrPoolClosed is returned when work is submitted to a closed worker pool.
	ErrPoolClosed = zerr.New("worker pool is closed")

	// ErrMetadataUnavailable is returned when an entry was built without a metadata source.
	ErrMetadataUnavailable = zerr.New("metadata unavailable")

	// ErrNotADirectory is returned when a directory handle is requested for a non-directory.
	ErrNotADirectory = zerr.New("not a directory")

	// ErrNoDirHandle is returned when a file system reports a successful open without a handle.
	ErrNoDirHandle = zerr.New("file system returned no directory handle")

	// ErrTraversalFailed is returned by commands that saw at least one traversal error.
	ErrTraversalFailed = zerr.New("traversal finished with errors")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidWorkers is returned when the configured worker count is negative.
	ErrInvalidWorkers = zerr.New("workers must not be negative")

	// ErrInvalidOutputMode is returned for an unknown output mode.
	ErrInvalidOutputMode = zerr.New("invalid output mode, expected auto, tui, linear or json")

	// ErrInvalidLogFormat is returned for an unknown log format.
	ErrInvalidLogFormat = zerr.New("invalid log format, expected pretty or json")

	// ErrInvalidIgnorePattern is returned when an ignore glob is malformed.
	ErrInvalidIgnorePattern = zerr.New("invalid ignore pattern")

	// ErrRootResolveFailed is returned when the traversal root cannot be made absolute.
	ErrRootResolveFailed = zerr.New("failed to resolve root path")

	// ErrFileOpenFailed is returned when a file cannot be opened for hashing.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrWatcherCreateFailed is returned when the fsnotify watcher cannot be created.
	ErrWatcherCreateFailed = zerr.New("failed to create file watcher")

	// ErrWatchAddFailed is returned when a directory cannot be registered with the watcher.
	ErrWatchAddFailed = zerr.New("failed to watch directory")
)
