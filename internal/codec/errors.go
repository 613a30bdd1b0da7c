package codec

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrAlignment         = errors.New("byte count is not a multiple of element size")
	ErrUnknownEndianness = errors.New("unknown endianness")
	ErrUnknownWidth      = errors.New("unknown element width")
)

// AlignmentError reports a byte count that does not hold a whole number of elements.
type AlignmentError struct {
	ByteCount   int64
	ElementSize int
}

// Error implements the error interface.
func (e *AlignmentError) Error() string {
	return fmt.Sprintf("%d bytes is not a multiple of element size %d (%d trailing bytes)",
		e.ByteCount, e.ElementSize, e.ByteCount%int64(e.ElementSize))
}

// Is matches ErrAlignment.
func (e *AlignmentError) Is(target error) bool {
	return target == ErrAlignment
}
