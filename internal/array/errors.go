package array

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrShape          = errors.New("invalid shape")
	ErrShapeMismatch  = errors.New("element count does not match shape")
	ErrDimensionality = errors.New("wrong dimensionality for view")
	ErrInvalidWindow  = errors.New("invalid window")
)

// ShapeMismatchError reports both counts involved in a failed ShapedArray construction.
type ShapeMismatchError struct {
	Values   int   // Number of values supplied
	Expected int   // Product of the shape's dimensions
	Shape    Shape // Requested shape
}

// Error implements the error interface.
func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("%d values cannot fill shape %v (%d elements)", e.Values, e.Shape, e.Expected)
}

// Is matches ErrShapeMismatch.
func (e *ShapeMismatchError) Is(target error) bool {
	return target == ErrShapeMismatch
}
