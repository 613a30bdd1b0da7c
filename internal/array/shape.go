package array

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// MaxDims is the highest dimensionality a Shape may have.
const MaxDims = 2

// MaxElements bounds the element count of a Shape so that its byte size at
// the widest element width still fits in an int.
const MaxElements = math.MaxInt / 8

// Shape represents the dimensions of an array.
type Shape []int

// NewShape validates dims and returns them as a Shape.
// It fails with ErrShape when dims is empty, has more than MaxDims entries,
// or contains a non-positive value.
func NewShape(dims ...int) (Shape, error) {
	s := Shape(dims)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s.Clone(), nil
}

// ParseShape parses a comma or "x" separated list such as "2,5" or "2x5".
func ParseShape(text string) (Shape, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == 'x' || r == 'X' || r == ' '
	})
	dims := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: cannot parse %q as a dimension", ErrShape, f)
		}
		dims = append(dims, n)
	}
	return NewShape(dims...)
}

// NumElements returns the product of the dimensions. It is exact for any
// shape that passes Validate.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// NDim returns the number of dimensions.
func (s Shape) NDim() int {
	return len(s)
}

// Validate checks the arity, that all dimensions are > 0, and that the
// element count stays within MaxElements.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: no dimensions given", ErrShape)
	}
	if len(s) > MaxDims {
		return fmt.Errorf("%w: %d dimensions given, at most %d supported", ErrShape, len(s), MaxDims)
	}
	n := 1
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("%w: invalid dimension at index %d: %d (must be > 0)", ErrShape, i, dim)
		}
		if n > MaxElements/dim {
			return fmt.Errorf("%w: %v holds more than %d elements", ErrShape, s, MaxElements)
		}
		n *= dim
	}
	return nil
}

// Equal reports whether both shapes have the same dimensions.
func (s Shape) Equal(other Shape) bool {
	return slices.Equal(s, other)
}

// Clone returns a copy that does not alias s.
func (s Shape) Clone() Shape {
	return slices.Clone(s)
}

// Strides returns the row-major element step of each dimension:
// {1} for a vector and {cols, 1} for a matrix.
func (s Shape) Strides() []int {
	switch len(s) {
	case 0:
		return []int{}
	case 1:
		return []int{1}
	default:
		return []int{s[1], 1}
	}
}

// String formats the shape as "[2 5]".
func (s Shape) String() string {
	return fmt.Sprint([]int(s))
}
