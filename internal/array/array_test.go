package array

import (
	"math"
	"strconv"
	"testing"

	"github.com/boel-dev/boel/internal/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) + 0.5
	}
	return out
}

func TestNewShapedArray(t *testing.T) {
	a, err := New(Float64Values(seq(10)), Shape{2, 5})
	require.NoError(t, err)
	assert.Equal(t, 2, a.NDim())
	assert.Equal(t, 10, a.NumElements())
	assert.Equal(t, Shape{2, 5}, a.Shape())
	assert.Equal(t, codec.Double, a.Width())
	assert.Equal(t, seq(10), a.Flat())
}

func TestNewShapedArrayMismatch(t *testing.T) {
	for _, n := range []int{0, 9, 11} {
		_, err := New(Float64Values(seq(n)), Shape{2, 5})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrShapeMismatch)

		var mismatch *ShapeMismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, n, mismatch.Values)
		assert.Equal(t, 10, mismatch.Expected)
	}
}

func TestNewShapedArrayInvalidShape(t *testing.T) {
	_, err := New(Float64Values(seq(24)), Shape{2, 3, 4})
	assert.ErrorIs(t, err, ErrShape)
}

func TestFlatViewEqualsInput(t *testing.T) {
	shapes := []Shape{{12}, {3, 4}, {4, 3}, {1, 12}, {12, 1}}
	for _, s := range shapes {
		a, err := New(Float64Values(seq(12)), s)
		require.NoError(t, err, s)
		assert.Equal(t, seq(12), a.Flat(), s)
	}
}

func TestViewDimensionality(t *testing.T) {
	one, err := New(Float32Values([]float32{1, 2, 3}), Shape{3})
	require.NoError(t, err)
	two, err := New(Float32Values([]float32{1, 2, 3, 4, 5, 6}), Shape{2, 3})
	require.NoError(t, err)

	v, err := one.View1D()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, v)

	_, err = one.View2D()
	assert.ErrorIs(t, err, ErrDimensionality)
	_, err = one.Matrix()
	assert.ErrorIs(t, err, ErrDimensionality)

	rows, err := two.View2D()
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, rows)

	_, err = two.View1D()
	assert.ErrorIs(t, err, ErrDimensionality)
	_, err = two.Vector()
	assert.ErrorIs(t, err, ErrDimensionality)
}

func TestAt(t *testing.T) {
	a, err := New(Float64Values(seq(6)), Shape{2, 3})
	require.NoError(t, err)

	got, err := a.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 5.5, got)

	_, err = a.At(2, 0)
	assert.Error(t, err)
	_, err = a.At(1)
	assert.ErrorIs(t, err, ErrDimensionality)
}

func TestGonumViews(t *testing.T) {
	a, err := New(Float64Values(seq(6)), Shape{2, 3})
	require.NoError(t, err)

	m, err := a.Matrix()
	require.NoError(t, err)
	r, c := m.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 3.5, m.At(1, 0))

	b, err := a.Reshape(Shape{6})
	require.NoError(t, err)
	vec, err := b.Vector()
	require.NoError(t, err)
	assert.Equal(t, 6, vec.Len())
	assert.Equal(t, 5.5, vec.AtVec(5))
}

func TestMatrixDoesNotAlias(t *testing.T) {
	data := seq(4)
	a, err := New(Float64Values(data), Shape{2, 2})
	require.NoError(t, err)

	m, err := a.Matrix()
	require.NoError(t, err)
	m.Set(0, 0, -1)
	assert.Equal(t, 0.5, a.Flat()[0])
}

func TestSingleWidthWidensExactly(t *testing.T) {
	in := []float32{0.1, float32(math.Pi), -3.75}
	a, err := New(Float32Values(in), Shape{3})
	require.NoError(t, err)
	for i, v := range a.Flat() {
		assert.Equal(t, in[i], float32(v))
	}
	assert.Equal(t, codec.Single, a.Width())
}

func TestString(t *testing.T) {
	a, err := New(Float64Values([]float64{1, 2, 3, 4}), Shape{2, 2})
	require.NoError(t, err)
	s := a.String()
	assert.Contains(t, s, "1")
	assert.Contains(t, s, "4")

	b, err := a.Reshape(Shape{4})
	require.NoError(t, err)
	assert.NotEmpty(t, b.String())
}

func TestNewShapedArrayRejectsOverflowingShape(t *testing.T) {
	const half = 1 << (strconv.IntSize / 2)
	_, err := New(Float64Values(nil), Shape{half, half})
	assert.ErrorIs(t, err, ErrShape)
}
