package array

import "fmt"

// Rows splits the array into its rows. A 1D array has a single row.
// Rows share the array's backing storage and must not be modified.
func (a *ShapedArray) Rows() []FlatValues {
	cols := a.shape[len(a.shape)-1]
	rows := make([]FlatValues, 0, a.values.Len()/cols)
	for lo := 0; lo < a.values.Len(); lo += cols {
		rows = append(rows, a.values.slice(lo, lo+cols))
	}
	return rows
}

// Chunks splits the flat sequence into consecutive, non-overlapping pieces of
// size values. The last chunk holds the remainder and may be shorter.
func (a *ShapedArray) Chunks(size int) ([]FlatValues, error) {
	return Chunks(a.values, size)
}

// Windows returns overlapping windows of size values, advancing by stride.
// Windows that would run past the end are not returned.
func (a *ShapedArray) Windows(size, stride int) ([]FlatValues, error) {
	return Windows(a.values, size, stride)
}

// Chunks splits v into consecutive pieces of at most size values.
func Chunks(v FlatValues, size int) ([]FlatValues, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: chunk size %d (must be > 0)", ErrInvalidWindow, size)
	}
	n := v.Len()
	out := make([]FlatValues, 0, (n+size-1)/size)
	for lo := 0; lo < n; lo += size {
		out = append(out, v.slice(lo, min(lo+size, n)))
	}
	return out, nil
}

// Windows returns every full window of size values starting at multiples of stride.
func Windows(v FlatValues, size, stride int) ([]FlatValues, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: window size %d (must be > 0)", ErrInvalidWindow, size)
	}
	if stride <= 0 {
		return nil, fmt.Errorf("%w: stride %d (must be > 0)", ErrInvalidWindow, stride)
	}
	n := v.Len()
	var out []FlatValues
	for lo := 0; lo+size <= n; lo += stride {
		out = append(out, v.slice(lo, lo+size))
	}
	return out, nil
}
