// Copyright 2025 The boel Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package rawarray provides the public API for reading and generating flat,
// headerless binary files of IEEE-754 values.
//
// The package defines:
//   - Endianness, Width: byte order and element width of a file
//   - Shape, ShapedArray: 1D and 2D views over decoded values
//   - ByteCountPolicy: how much of a file is read
//   - Uniform, Normal: distributions for synthetic data
//
// Example:
//
//	arr, err := rawarray.ReadFile("data.bin", rawarray.ReadOptions{
//	    Endianness: rawarray.Big,
//	    Width:      rawarray.Double,
//	    Shape:      rawarray.Shape{2, 5},
//	})
package rawarray

import (
	"fmt"

	"github.com/boel-dev/boel/internal/array"
	"github.com/boel-dev/boel/internal/codec"
	"github.com/boel-dev/boel/internal/random"
	"github.com/boel-dev/boel/internal/rawfile"
	"github.com/rs/zerolog"
)

// Type aliases for public API

// Endianness selects the byte order of a file.
type Endianness = codec.Endianness

// Byte order constants.
const (
	Native Endianness = codec.Native
	Little Endianness = codec.Little
	Big    Endianness = codec.Big
)

// Width is the number of bytes per element.
type Width = codec.Width

// Element width constants.
const (
	Single Width = codec.Single
	Double Width = codec.Double
)

// Shape represents the dimensions of an array (1 or 2 positive sizes).
type Shape = array.Shape

// FlatValues is an ordered sequence of values of one width.
type FlatValues = array.FlatValues

// ShapedArray is a flat value sequence viewed through a Shape.
type ShapedArray = array.ShapedArray

// ByteCountPolicy decides how many bytes are read from a file.
type ByteCountPolicy = rawfile.ByteCountPolicy

// Uniform draws from [Min, Max).
type Uniform = random.Uniform

// Normal draws from a normal distribution.
type Normal = random.Normal

// Distribution is implemented by Uniform and Normal.
type Distribution = random.Spec

// WriteResult describes a completed write.
type WriteResult = rawfile.WriteResult

// Sentinel errors, usable with errors.Is.
var (
	ErrIO             = rawfile.ErrIO
	ErrAlignment      = codec.ErrAlignment
	ErrShape          = array.ErrShape
	ErrShapeMismatch  = array.ErrShapeMismatch
	ErrDimensionality = array.ErrDimensionality
	ErrInvalidWindow  = array.ErrInvalidWindow
	ErrRange          = random.ErrRange
)

// WholeFile reads every byte of a file.
func WholeFile() ByteCountPolicy { return rawfile.WholeFile() }

// LimitedBytes reads at most n bytes, clamped to the file size.
func LimitedBytes(n int64) (ByteCountPolicy, error) { return rawfile.LimitedBytes(n) }

// NewShape validates dims and returns them as a Shape.
func NewShape(dims ...int) (Shape, error) { return array.NewShape(dims...) }

// New shapes values, failing when their count does not match shape.
func New(values FlatValues, shape Shape) (*ShapedArray, error) { return array.New(values, shape) }

// ReadOptions configures ReadFile.
type ReadOptions struct {
	Policy     ByteCountPolicy
	Endianness Endianness
	Width      Width // Defaults to Double
	Shape      Shape // nil selects a 1D shape sized to the decoded values
	UseMmap    bool
	Logger     *zerolog.Logger
}

// ReadFile decodes a file and shapes the result.
// A supplied shape is validated before the file is opened.
func ReadFile(path string, opts ReadOptions) (*ShapedArray, error) {
	if opts.Shape != nil {
		if err := opts.Shape.Validate(); err != nil {
			return nil, err
		}
	}
	if opts.Width == 0 {
		opts.Width = Double
	}

	values, err := rawfile.DecodeWithOptions(path, rawfile.Options{
		Policy:     opts.Policy,
		Endianness: opts.Endianness,
		Width:      opts.Width,
		UseMmap:    opts.UseMmap,
		Logger:     opts.Logger,
	})
	if err != nil {
		return nil, err
	}

	if values.Len() == 0 {
		if opts.Shape == nil {
			return nil, fmt.Errorf("%w: %s holds no values", array.ErrShape, path)
		}
		return array.New(values, opts.Shape)
	}

	flat, err := array.New(values, Shape{values.Len()})
	if err != nil {
		return nil, err
	}
	if opts.Shape == nil {
		return flat, nil
	}
	return flat.Reshape(opts.Shape)
}

// GenerateOptions configures GenerateFile.
type GenerateOptions struct {
	Distribution Distribution
	Shape        Shape
	Width        Width // Defaults to Double
	Endianness   Endianness
	Seed         uint64
	Seeded       bool // Use Seed; otherwise the source is seeded randomly
}

// GenerateFile fills a file with Shape.NumElements() random values.
// Shape and distribution are validated before the file is touched.
func GenerateFile(path string, opts GenerateOptions) (*WriteResult, error) {
	if err := opts.Shape.Validate(); err != nil {
		return nil, err
	}
	if opts.Width == 0 {
		opts.Width = Double
	}

	src := random.NewUnseeded()
	if opts.Seeded {
		src = random.New(opts.Seed)
	}
	values, err := src.Generate(opts.Distribution, opts.Shape.NumElements(), opts.Width)
	if err != nil {
		return nil, err
	}
	return rawfile.WriteFile(path, values, opts.Endianness)
}
