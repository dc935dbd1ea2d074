package domain

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// Op names the blocking operation that produced a TraversalError.
type Op string

const (
	// OpOpen is opening a directory for enumeration.
	OpOpen Op = "open"
	// OpRead is reading the next entry of an open directory.
	OpRead Op = "read"
	// OpStat is fetching an entry's metadata.
	OpStat Op = "stat"
)

// ErrorKind is a coarse classification of the underlying OS failure.
type ErrorKind uint8

const (
	// ErrorOther is any failure not covered by a more specific kind.
	ErrorOther ErrorKind = iota
	// ErrorNotFound means the path no longer exists.
	ErrorNotFound
	// ErrorPermission means access was denied.
	ErrorPermission
	// ErrorNotADirectory means a directory operation hit a non-directory.
	ErrorNotADirectory
)

// String returns the name of the kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrorNotFound:
		return "not found"
	case ErrorPermission:
		return "permission denied"
	case ErrorNotADirectory:
		return "not a directory"
	default:
		return "other"
	}
}

// TraversalError reports a failed blocking operation on one path.
// It is yielded as an ordinary item; only a failure on the root ends the traversal.
type TraversalError struct {
	Path string
	Op   Op
	// Root is set when the failing directory was the traversal root.
	Root bool
	Err  error
}

// Error implements error.
func (e *TraversalError) Error() string {
	return fmt.Sprintf("io error during %s on %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying OS error.
func (e *TraversalError) Unwrap() error {
	return e.Err
}

// Kind classifies the underlying error.
func (e *TraversalError) Kind() ErrorKind {
	return ClassifyError(e.Err)
}

// ClassifyError maps an OS error to an ErrorKind.
func ClassifyError(err error) ErrorKind {
	switch {
	case err == nil:
		return ErrorOther
	case errors.Is(err, fs.ErrNotExist):
		return ErrorNotFound
	case errors.Is(err, fs.ErrPermission):
		return ErrorPermission
	case errors.Is(err, syscall.ENOTDIR), errors.Is(err, ErrNotADirectory):
		return ErrorNotADirectory
	default:
		return ErrorOther
	}
}
