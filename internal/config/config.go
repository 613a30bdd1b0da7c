// Package config turns flags, environment variables and an optional config
// file into validated read and generate configurations.
package config

import (
	"fmt"
	"strings"

	"github.com/boel-dev/boel/internal/array"
	"github.com/boel-dev/boel/internal/codec"
	"github.com/boel-dev/boel/internal/random"
	"github.com/boel-dev/boel/internal/rawfile"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. BOEL_ENDIAN.
const EnvPrefix = "BOEL"

// Configuration keys. They double as flag names.
const (
	KeyLogLevel     = "log-level"
	KeyEndian       = "endian"
	KeyType         = "type"
	KeyShape        = "shape"
	KeyNBytes       = "nbytes"
	KeyMmap         = "mmap"
	KeyFormat       = "format"
	KeyDistribution = "distribution"
	KeyMean         = "mean"
	KeyStd          = "std"
	KeyMinimum      = "minimum"
	KeyMaximum      = "maximum"
	KeySeed         = "seed"
	KeyChunk        = "chunk"
	KeyWindow       = "window"
	KeyStride       = "stride"
)

// Output formats accepted by the read command.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config manages configuration using Viper.
type Config struct {
	v *viper.Viper
}

// New creates a configuration with defaults and environment lookup enabled.
func New() *Config {
	v := viper.New()

	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyEndian, "native")
	v.SetDefault(KeyType, "f64")
	v.SetDefault(KeyNBytes, 0)
	v.SetDefault(KeyMmap, false)
	v.SetDefault(KeyFormat, FormatText)
	v.SetDefault(KeyChunk, 0)
	v.SetDefault(KeyWindow, 0)
	v.SetDefault(KeyStride, 1)

	v.SetDefault(KeyDistribution, "normal")
	v.SetDefault(KeyMean, 10.0)
	v.SetDefault(KeyStd, 1.0)
	v.SetDefault(KeyMinimum, 0.0)
	v.SetDefault(KeyMaximum, 1.0)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return &Config{v: v}
}

// LoadFromFile merges a YAML, TOML or JSON config file.
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	if err := c.v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// BindFlags lets command-line flags override file and environment values.
func (c *Config) BindFlags(flags *pflag.FlagSet) error {
	return c.v.BindPFlags(flags)
}

// Set overrides a single key.
func (c *Config) Set(key string, value any) {
	c.v.Set(key, value)
}

func (c *Config) LogLevel() string { return c.v.GetString(KeyLogLevel) }
func (c *Config) Format() string   { return strings.ToLower(c.v.GetString(KeyFormat)) }

// Endianness parses the configured byte order.
func (c *Config) Endianness() (codec.Endianness, error) {
	return codec.ParseEndianness(c.v.GetString(KeyEndian))
}

// Width parses the configured element type.
func (c *Config) Width() (codec.Width, error) {
	return codec.ParseWidth(c.v.GetString(KeyType))
}

// Shape parses the configured shape. ok is false when no shape is set.
func (c *Config) Shape() (shape array.Shape, ok bool, err error) {
	text := strings.TrimSpace(c.v.GetString(KeyShape))
	if text == "" {
		return nil, false, nil
	}
	shape, err = array.ParseShape(text)
	return shape, err == nil, err
}

// Policy builds the byte-count policy; 0 or unset means the whole file.
func (c *Config) Policy() (rawfile.ByteCountPolicy, error) {
	n := c.v.GetInt64(KeyNBytes)
	switch {
	case n == 0:
		return rawfile.WholeFile(), nil
	case n < 0:
		return rawfile.ByteCountPolicy{}, fmt.Errorf("--%s must be > 0, got %d", KeyNBytes, n)
	default:
		return rawfile.LimitedBytes(n)
	}
}

// Distribution builds the configured distribution spec.
func (c *Config) Distribution() (random.Spec, error) {
	return random.ParseDistribution(
		strings.ToLower(c.v.GetString(KeyDistribution)),
		c.v.GetFloat64(KeyMean),
		c.v.GetFloat64(KeyStd),
		c.v.GetFloat64(KeyMinimum),
		c.v.GetFloat64(KeyMaximum),
	)
}

// Seed returns the configured seed. ok is false when no seed is set.
func (c *Config) Seed() (seed uint64, ok bool) {
	if !c.v.IsSet(KeySeed) {
		return 0, false
	}
	return c.v.GetUint64(KeySeed), true
}

// ReadConfig holds the validated inputs of a decode.
type ReadConfig struct {
	Path       string
	Policy     rawfile.ByteCountPolicy
	Endianness codec.Endianness
	Width      codec.Width
	Shape      array.Shape // nil selects a 1D shape sized to the decoded values
	UseMmap    bool
	Format     string
	Chunk      int // > 0 prints consecutive chunks of this many values
	Window     int // > 0 prints sliding windows of this many values
	Stride     int // Window advance; used only with Window
}

// Read validates and returns the configuration of a decode of path.
// A malformed shape is rejected here, before any file is touched.
func (c *Config) Read(path string) (*ReadConfig, error) {
	if path == "" {
		return nil, fmt.Errorf("no input file given")
	}
	shape, _, err := c.Shape()
	if err != nil {
		return nil, err
	}
	policy, err := c.Policy()
	if err != nil {
		return nil, err
	}
	endian, err := c.Endianness()
	if err != nil {
		return nil, err
	}
	width, err := c.Width()
	if err != nil {
		return nil, err
	}
	format := c.Format()
	switch format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return nil, fmt.Errorf("unknown output format %q (expected text, json or yaml)", format)
	}
	chunk, window, stride := c.v.GetInt(KeyChunk), c.v.GetInt(KeyWindow), c.v.GetInt(KeyStride)
	switch {
	case chunk < 0 || window < 0:
		return nil, fmt.Errorf("%w: --%s and --%s must be >= 0", array.ErrInvalidWindow, KeyChunk, KeyWindow)
	case chunk > 0 && window > 0:
		return nil, fmt.Errorf("%w: --%s and --%s are mutually exclusive", array.ErrInvalidWindow, KeyChunk, KeyWindow)
	case window > 0 && stride <= 0:
		return nil, fmt.Errorf("%w: --%s must be > 0, got %d", array.ErrInvalidWindow, KeyStride, stride)
	}

	return &ReadConfig{
		Path:       path,
		Policy:     policy,
		Endianness: endian,
		Width:      width,
		Shape:      shape,
		UseMmap:    c.v.GetBool(KeyMmap),
		Format:     format,
		Chunk:      chunk,
		Window:     window,
		Stride:     stride,
	}, nil
}

// GenerateConfig holds the validated inputs of a generation.
type GenerateConfig struct {
	Path         string
	Distribution random.Spec
	Shape        array.Shape
	Width        codec.Width
	Endianness   codec.Endianness
	Seed         uint64
	Seeded       bool
}

// Generate validates and returns the configuration of a generation into path.
// The shape is required and must have exactly two dimensions.
func (c *Config) Generate(path string) (*GenerateConfig, error) {
	if path == "" {
		return nil, fmt.Errorf("no output file given")
	}
	shape, ok, err := c.Shape()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: --%s is required", array.ErrShape, KeyShape)
	}
	if shape.NDim() != 2 {
		return nil, fmt.Errorf("%w: generation needs exactly 2 dimensions, got %v", array.ErrShape, shape)
	}
	spec, err := c.Distribution()
	if err != nil {
		return nil, err
	}
	width, err := c.Width()
	if err != nil {
		return nil, err
	}
	endian, err := c.Endianness()
	if err != nil {
		return nil, err
	}
	seed, seeded := c.Seed()

	return &GenerateConfig{
		Path:         path,
		Distribution: spec,
		Shape:        shape,
		Width:        width,
		Endianness:   endian,
		Seed:         seed,
		Seeded:       seeded,
	}, nil
}
