// Package array provides shaped 1D and 2D views over flat sequences of
// decoded or generated floating-point values.
package array

import (
	"fmt"

	"github.com/boel-dev/boel/internal/codec"
	"gonum.org/v1/gonum/mat"
)

// ShapedArray combines a flat value sequence with a Shape.
// It is immutable after construction.
type ShapedArray struct {
	values FlatValues
	shape  Shape
	stride []int
}

// New builds a ShapedArray, taking ownership of values.
// It fails with ErrShape for an invalid shape and with a *ShapeMismatchError
// when values.Len() differs from shape.NumElements().
func New(values FlatValues, shape Shape) (*ShapedArray, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if values.Len() != shape.NumElements() {
		return nil, &ShapeMismatchError{
			Values:   values.Len(),
			Expected: shape.NumElements(),
			Shape:    shape.Clone(),
		}
	}
	return &ShapedArray{
		values: values,
		shape:  shape.Clone(),
		stride: shape.Strides(),
	}, nil
}

// Shape returns a copy of the array's shape.
func (a *ShapedArray) Shape() Shape {
	return a.shape.Clone()
}

// NDim returns the number of dimensions.
func (a *ShapedArray) NDim() int {
	return len(a.shape)
}

// Width returns the element width of the values.
func (a *ShapedArray) Width() codec.Width {
	return a.values.Width()
}

// NumElements returns the total number of elements.
func (a *ShapedArray) NumElements() int {
	return a.values.Len()
}

// Values returns the underlying flat values. Callers must not modify the backing slices.
func (a *ShapedArray) Values() FlatValues {
	return a.values
}

// Flat returns a copy of the flat view widened to float64. It is valid for any dimensionality.
func (a *ShapedArray) Flat() []float64 {
	return a.values.Float64s()
}

// View1D returns the values as a 1D slice.
// Fails with ErrDimensionality if the array is not 1D.
func (a *ShapedArray) View1D() ([]float64, error) {
	if len(a.shape) != 1 {
		return nil, fmt.Errorf("%w: 1D view requested on shape %v", ErrDimensionality, a.shape)
	}
	return a.values.Float64s(), nil
}

// View2D returns the values as rows of a 2D array.
// Fails with ErrDimensionality if the array is not 2D.
func (a *ShapedArray) View2D() ([][]float64, error) {
	if len(a.shape) != 2 {
		return nil, fmt.Errorf("%w: 2D view requested on shape %v", ErrDimensionality, a.shape)
	}
	rows := a.Rows()
	out := make([][]float64, len(rows))
	for i, r := range rows {
		out[i] = r.Float64s()
	}
	return out, nil
}

// At returns the element at the given index, one index per dimension.
func (a *ShapedArray) At(idx ...int) (float64, error) {
	if len(idx) != len(a.shape) {
		return 0, fmt.Errorf("%w: %d indices for shape %v", ErrDimensionality, len(idx), a.shape)
	}
	offset := 0
	for d, i := range idx {
		if i < 0 || i >= a.shape[d] {
			return 0, fmt.Errorf("index %d out of range for dimension %d of shape %v", i, d, a.shape)
		}
		offset += i * a.stride[d]
	}
	return a.values.At(offset), nil
}

// Vector returns a gonum vector for a 1D array.
func (a *ShapedArray) Vector() (*mat.VecDense, error) {
	data, err := a.View1D()
	if err != nil {
		return nil, err
	}
	return mat.NewVecDense(len(data), data), nil
}

// Matrix returns a gonum dense matrix for a 2D array.
func (a *ShapedArray) Matrix() (*mat.Dense, error) {
	if len(a.shape) != 2 {
		return nil, fmt.Errorf("%w: matrix requested on shape %v", ErrDimensionality, a.shape)
	}
	return mat.NewDense(a.shape[0], a.shape[1], a.values.Float64s()), nil
}

// Reshape returns a new array over the same values with a different shape.
func (a *ShapedArray) Reshape(shape Shape) (*ShapedArray, error) {
	return New(a.values, shape)
}

// String renders the array through gonum's matrix formatter. A 1D array
// prints as a single row.
func (a *ShapedArray) String() string {
	var m mat.Matrix
	if v, err := a.Vector(); err == nil {
		m = v.T()
	} else if d, err := a.Matrix(); err == nil {
		m = d
	} else {
		return err.Error()
	}
	return fmt.Sprintf("%v", mat.Formatted(m, mat.Squeeze()))
}
