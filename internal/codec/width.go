// Package codec converts between IEEE-754 values and their raw byte form.
package codec

import (
	"fmt"
	"strings"
)

// Float is a constraint for the element types a raw file can hold.
type Float interface {
	float32 | float64
}

// Width is the number of bytes composing one encoded value.
type Width int

// Supported element widths.
const (
	Single Width = 4 // IEEE-754 binary32
	Double Width = 8 // IEEE-754 binary64
)

// ParseWidth converts "f32" or "f64" to a Width.
func ParseWidth(s string) (Width, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "f32", "float32", "single":
		return Single, nil
	case "f64", "float64", "double", "":
		return Double, nil
	default:
		return 0, fmt.Errorf("%w: %q (expected f32 or f64)", ErrUnknownWidth, s)
	}
}

// Size returns the byte size of one element.
func (w Width) Size() int {
	switch w {
	case Single:
		return 4
	case Double:
		return 8
	default:
		panic("unknown element width")
	}
}

// Valid reports whether w is Single or Double.
func (w Width) Valid() bool {
	return w == Single || w == Double
}

// String returns the name used on the command line.
func (w Width) String() string {
	switch w {
	case Single:
		return "f32"
	case Double:
		return "f64"
	default:
		return "unknown"
	}
}

// WidthOf infers the Width from a generic float type T.
func WidthOf[T Float]() Width {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return Single
	default:
		return Double
	}
}
