package rawfile

import (
	"errors"
	"fmt"
)

// ErrIO matches every file open, stat, read, write, sync or rename failure.
var ErrIO = errors.New("i/o error")

// IOError records the failed operation and the file it concerned.
type IOError struct {
	Op   string // "open", "stat", "read", "mmap", "create", "write", "sync", "rename"
	Path string
	Err  error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error {
	return e.Err
}

// Is matches ErrIO.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

func ioErr(op, path string, err error) error {
	return &IOError{Op: op, Path: path, Err: err}
}
