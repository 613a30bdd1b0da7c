package array

import (
	"bytes"
	"fmt"

	"github.com/boel-dev/boel/internal/codec"
)

// FlatValues is an ordered sequence of values of a single element width.
// Exactly one of the backing slices is in use, selected by width.
type FlatValues struct {
	width codec.Width
	f32   []float32
	f64   []float64
}

// Float32Values wraps v as single-width values. The slice is owned by the result.
func Float32Values(v []float32) FlatValues {
	return FlatValues{width: codec.Single, f32: v}
}

// Float64Values wraps v as double-width values. The slice is owned by the result.
func Float64Values(v []float64) FlatValues {
	return FlatValues{width: codec.Double, f64: v}
}

// ValuesOf wraps a generic slice, picking the width from T.
func ValuesOf[T codec.Float](v []T) FlatValues {
	switch s := any(v).(type) {
	case []float32:
		return Float32Values(s)
	default:
		return Float64Values(any(v).([]float64))
	}
}

// DecodeValues reinterprets raw bytes as values of width w in byte order e.
// It fails with codec.ErrAlignment when len(b) is not a multiple of w.Size().
func DecodeValues(b []byte, e codec.Endianness, w codec.Width) (FlatValues, error) {
	switch w {
	case codec.Single:
		return decodeAs[float32](b, e)
	case codec.Double:
		return decodeAs[float64](b, e)
	default:
		return FlatValues{}, fmt.Errorf("%w: %d bytes", codec.ErrUnknownWidth, int(w))
	}
}

func decodeAs[T codec.Float](b []byte, e codec.Endianness) (FlatValues, error) {
	v, err := codec.Decode[T](b, e)
	if err != nil {
		return FlatValues{}, err
	}
	return ValuesOf(v), nil
}

// Encode serializes the values in sequence order using byte order e.
// The result holds Len() * Width().Size() bytes.
func (v FlatValues) Encode(e codec.Endianness) []byte {
	if v.width == codec.Single {
		return codec.Encode(v.AsFloat32(), e)
	}
	return codec.Encode(v.AsFloat64(), e)
}

// Width returns the element width.
func (v FlatValues) Width() codec.Width {
	if v.width == 0 {
		return codec.Double
	}
	return v.width
}

// Len returns the number of values.
func (v FlatValues) Len() int {
	if v.width == codec.Single {
		return len(v.f32)
	}
	return len(v.f64)
}

// ByteSize returns the encoded size in bytes.
func (v FlatValues) ByteSize() int {
	return v.Len() * v.Width().Size()
}

// AsFloat32 returns the backing slice of single-width values.
// Panics if the values are not single width.
func (v FlatValues) AsFloat32() []float32 {
	if v.width != codec.Single {
		panic(fmt.Sprintf("values are %s, not f32", v.Width()))
	}
	return v.f32
}

// AsFloat64 returns the backing slice of double-width values.
// Panics if the values are not double width.
func (v FlatValues) AsFloat64() []float64 {
	if v.Width() != codec.Double {
		panic(fmt.Sprintf("values are %s, not f64", v.Width()))
	}
	return v.f64
}

// At returns the i-th value widened to float64. Widening from binary32 is exact.
func (v FlatValues) At(i int) float64 {
	if v.width == codec.Single {
		return float64(v.f32[i])
	}
	return v.f64[i]
}

// Float64s returns a fresh copy of the values widened to float64.
func (v FlatValues) Float64s() []float64 {
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.At(i)
	}
	return out
}

// slice returns the values in [lo, hi) sharing the backing array.
func (v FlatValues) slice(lo, hi int) FlatValues {
	if v.width == codec.Single {
		return Float32Values(v.f32[lo:hi:hi])
	}
	return Float64Values(v.f64[lo:hi:hi])
}

// Equal reports whether both sequences have the same width and identical bit patterns.
func (v FlatValues) Equal(other FlatValues) bool {
	if v.Width() != other.Width() || v.Len() != other.Len() {
		return false
	}
	return bytes.Equal(v.Encode(codec.Little), other.Encode(codec.Little))
}
