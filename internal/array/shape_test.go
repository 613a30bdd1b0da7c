package array

import (
	"errors"
	"strconv"
	"testing"
)

func TestNewShape(t *testing.T) {
	tests := []struct {
		name    string
		dims    []int
		wantErr bool
	}{
		{"1D", []int{10}, false},
		{"2D", []int{2, 5}, false},
		{"empty", nil, true},
		{"3D", []int{2, 3, 4}, true},
		{"zero", []int{0}, true},
		{"negative", []int{3, -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewShape(tt.dims...)
			if tt.wantErr {
				if !errors.Is(err, ErrShape) {
					t.Fatalf("NewShape(%v) error = %v, want ErrShape", tt.dims, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewShape(%v) unexpected error: %v", tt.dims, err)
			}
			if !s.Equal(Shape(tt.dims)) {
				t.Errorf("NewShape(%v) = %v", tt.dims, s)
			}
		})
	}
}

func TestNewShapeCopiesInput(t *testing.T) {
	dims := []int{2, 3}
	s, err := NewShape(dims...)
	if err != nil {
		t.Fatal(err)
	}
	dims[0] = 99
	if s[0] != 2 {
		t.Errorf("shape aliases caller slice: %v", s)
	}
}

func TestParseShape(t *testing.T) {
	tests := []struct {
		in   string
		want Shape
	}{
		{"12", Shape{12}},
		{"2,5", Shape{2, 5}},
		{"3x4", Shape{3, 4}},
		{" 3 , 4 ", Shape{3, 4}},
	}
	for _, tt := range tests {
		got, err := ParseShape(tt.in)
		if err != nil {
			t.Fatalf("ParseShape(%q): %v", tt.in, err)
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseShape(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "a,b", "1,2,3", "0,4"} {
		if _, err := ParseShape(bad); !errors.Is(err, ErrShape) {
			t.Errorf("ParseShape(%q) error = %v, want ErrShape", bad, err)
		}
	}
}

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{10}, 10},
		{Shape{2, 5}, 10},
		{Shape{3, 4}, 12},
	}
	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("%v.NumElements() = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestShapeStrides(t *testing.T) {
	got := Shape{3, 4}.Strides()
	if len(got) != 2 || got[0] != 4 || got[1] != 1 {
		t.Errorf("Strides() = %v, want [4 1]", got)
	}
	got = Shape{7}.Strides()
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("Strides() = %v, want [1]", got)
	}
}

func TestShapeEqual(t *testing.T) {
	if !(Shape{2, 3}).Equal(Shape{2, 3}) {
		t.Error("equal shapes reported unequal")
	}
	if (Shape{2, 3}).Equal(Shape{3, 2}) {
		t.Error("different shapes reported equal")
	}
	if (Shape{6}).Equal(Shape{6, 1}) {
		t.Error("different arity reported equal")
	}
}

func TestShapeElementCountOverflow(t *testing.T) {
	const half = 1 << (strconv.IntSize / 2)
	tests := []struct {
		name string
		dims []int
	}{
		{"wraps to zero", []int{half, half}},
		{"wraps negative", []int{half + 1, half - 1}},
		{"byte size overflows", []int{MaxElements/2 + 1, 2}},
		{"single huge dimension", []int{MaxElements + 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewShape(tt.dims...); !errors.Is(err, ErrShape) {
				t.Fatalf("NewShape(%v) error = %v, want ErrShape", tt.dims, err)
			}
		})
	}

	text := strconv.Itoa(half) + "," + strconv.Itoa(half)
	if _, err := ParseShape(text); !errors.Is(err, ErrShape) {
		t.Errorf("ParseShape overflow error = %v, want ErrShape", err)
	}
	if _, err := NewShape(MaxElements); err != nil {
		t.Errorf("NewShape(MaxElements) unexpected error: %v", err)
	}
}
