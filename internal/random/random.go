// Package random generates flat sequences of floating-point samples
// from uniform and normal distributions.
package random

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/boel-dev/boel/internal/array"
	"github.com/boel-dev/boel/internal/codec"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrRange reports invalid distribution parameters or a negative element count.
var ErrRange = errors.New("invalid distribution parameters")

// Spec parameterizes a distribution. It is implemented by Uniform and Normal.
type Spec interface {
	Validate() error
	String() string
}

// Uniform draws from the half-open interval [Min, Max).
type Uniform struct {
	Min, Max float64
}

// Validate requires finite bounds with Min < Max and a width Max-Min that is
// itself finite.
func (u Uniform) Validate() error {
	if !isFinite(u.Min) || !isFinite(u.Max) {
		return fmt.Errorf("%w: uniform bounds must be finite, got [%v, %v)", ErrRange, u.Min, u.Max)
	}
	if u.Min >= u.Max {
		return fmt.Errorf("%w: uniform interval [%v, %v) is empty", ErrRange, u.Min, u.Max)
	}
	if !isFinite(u.Max - u.Min) {
		return fmt.Errorf("%w: uniform interval [%v, %v) is wider than the largest float64", ErrRange, u.Min, u.Max)
	}
	return nil
}

func (u Uniform) String() string {
	return fmt.Sprintf("uniform[%v, %v)", u.Min, u.Max)
}

// Normal draws from a normal distribution.
type Normal struct {
	Mean, StdDev float64
}

// Validate requires a finite mean and a finite, positive standard deviation.
func (n Normal) Validate() error {
	if !isFinite(n.Mean) || !isFinite(n.StdDev) {
		return fmt.Errorf("%w: normal parameters must be finite, got mean %v std %v", ErrRange, n.Mean, n.StdDev)
	}
	if n.StdDev <= 0 {
		return fmt.Errorf("%w: standard deviation must be > 0, got %v", ErrRange, n.StdDev)
	}
	return nil
}

func (n Normal) String() string {
	return fmt.Sprintf("normal(%v ± %v)", n.Mean, n.StdDev)
}

// Source generates samples. It is not safe for concurrent use.
type Source struct {
	rng *rand.Rand
	src rand.Source
}

// New returns a deterministic source seeded with seed.
func New(seed uint64) *Source {
	src := rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)
	return &Source{rng: rand.New(src), src: src}
}

// NewUnseeded returns a source seeded from the runtime's random state.
func NewUnseeded() *Source {
	return New(rand.Uint64())
}

// Generate draws count independent samples of width w from spec.
//
// Parameters are validated before sampling begins: invalid parameters and a
// negative count fail with ErrRange. Single-width samples are computed in
// float32 arithmetic rather than rounded from float64 results.
func (s *Source) Generate(spec Spec, count int, w codec.Width) (array.FlatValues, error) {
	if count < 0 {
		return array.FlatValues{}, fmt.Errorf("%w: element count must be >= 0, got %d", ErrRange, count)
	}
	if spec == nil {
		return array.FlatValues{}, fmt.Errorf("%w: no distribution given", ErrRange)
	}
	if err := spec.Validate(); err != nil {
		return array.FlatValues{}, err
	}

	switch w {
	case codec.Single:
		return s.generate32(spec, count)
	case codec.Double:
		return s.generate64(spec, count)
	default:
		return array.FlatValues{}, fmt.Errorf("%w: %d bytes", codec.ErrUnknownWidth, int(w))
	}
}

func (s *Source) generate64(spec Spec, count int) (array.FlatValues, error) {
	out := make([]float64, count)
	switch d := spec.(type) {
	case Uniform:
		dist := distuv.Uniform{Min: d.Min, Max: d.Max, Src: s.src}
		for i := range out {
			x := dist.Rand()
			for x >= d.Max {
				x = dist.Rand()
			}
			out[i] = x
		}
	case Normal:
		dist := distuv.Normal{Mu: d.Mean, Sigma: d.StdDev, Src: s.src}
		for i := range out {
			out[i] = dist.Rand()
		}
	default:
		return array.FlatValues{}, fmt.Errorf("%w: unsupported distribution %T", ErrRange, spec)
	}
	return array.Float64Values(out), nil
}

func (s *Source) generate32(spec Spec, count int) (array.FlatValues, error) {
	out := make([]float32, count)
	switch d := spec.(type) {
	case Uniform:
		lo, hi := float32(d.Min), float32(d.Max)
		if !(lo < hi) || math.IsInf(float64(hi-lo), 0) {
			return array.FlatValues{}, fmt.Errorf("%w: interval [%v, %v) is empty or unbounded in f32", ErrRange, d.Min, d.Max)
		}
		span := hi - lo
		for i := range out {
			x := lo + span*s.rng.Float32()
			for x >= hi {
				x = lo + span*s.rng.Float32()
			}
			out[i] = x
		}
	case Normal:
		mean, std := float32(d.Mean), float32(d.StdDev)
		if std <= 0 || math.IsInf(float64(mean), 0) || math.IsInf(float64(std), 0) {
			return array.FlatValues{}, fmt.Errorf("%w: parameters %v ± %v not representable in f32", ErrRange, d.Mean, d.StdDev)
		}
		for i := range out {
			out[i] = mean + std*float32(s.rng.NormFloat64())
		}
	default:
		return array.FlatValues{}, fmt.Errorf("%w: unsupported distribution %T", ErrRange, spec)
	}
	return array.Float32Values(out), nil
}

// ParseDistribution builds a Spec from its command-line name and parameters.
func ParseDistribution(name string, mean, std, minimum, maximum float64) (Spec, error) {
	var spec Spec
	switch name {
	case "normal", "":
		spec = Normal{Mean: mean, StdDev: std}
	case "uniform":
		spec = Uniform{Min: minimum, Max: maximum}
	default:
		return nil, fmt.Errorf("%w: unknown distribution %q (expected normal or uniform)", ErrRange, name)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return spec, nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
