package codec

import (
	"encoding/binary"
	"math"
)

// Put writes v into dst using the given byte order.
// dst must hold at least WidthOf[T]().Size() bytes.
func Put[T Float](order binary.ByteOrder, dst []byte, v T) {
	switch x := any(v).(type) {
	case float32:
		order.PutUint32(dst, math.Float32bits(x))
	case float64:
		order.PutUint64(dst, math.Float64bits(x))
	}
}

// Get reads one value of type T from src using the given byte order.
func Get[T Float](order binary.ByteOrder, src []byte) T {
	var v T
	switch p := any(&v).(type) {
	case *float32:
		*p = math.Float32frombits(order.Uint32(src))
	case *float64:
		*p = math.Float64frombits(order.Uint64(src))
	}
	return v
}

// Encode serializes values in sequence order.
// The result holds len(values) * WidthOf[T]().Size() bytes.
func Encode[T Float](values []T, e Endianness) []byte {
	order := e.ByteOrder()
	size := WidthOf[T]().Size()
	buf := make([]byte, len(values)*size)
	for i, v := range values {
		Put(order, buf[i*size:], v)
	}
	return buf
}

// Decode reinterprets src as consecutive values of type T in file order.
// Returns an AlignmentError when len(src) is not a multiple of the element size.
func Decode[T Float](src []byte, e Endianness) ([]T, error) {
	size := WidthOf[T]().Size()
	if err := CheckAlignment(int64(len(src)), WidthOf[T]()); err != nil {
		return nil, err
	}
	order := e.ByteOrder()
	out := make([]T, len(src)/size)
	for i := range out {
		out[i] = Get[T](order, src[i*size:])
	}
	return out, nil
}

// CheckAlignment verifies that n bytes hold a whole number of elements of width w.
func CheckAlignment(n int64, w Width) error {
	if n%int64(w.Size()) != 0 {
		return &AlignmentError{ByteCount: n, ElementSize: w.Size()}
	}
	return nil
}
