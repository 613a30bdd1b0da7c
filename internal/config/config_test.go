package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/boel-dev/boel/internal/array"
	"github.com/boel-dev/boel/internal/codec"
	"github.com/boel-dev/boel/internal/random"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDefaults(t *testing.T) {
	c := New()
	rc, err := c.Read("data.bin")
	require.NoError(t, err)

	assert.Equal(t, "data.bin", rc.Path)
	assert.True(t, rc.Policy.IsWhole())
	assert.Equal(t, codec.Native, rc.Endianness)
	assert.Equal(t, codec.Double, rc.Width)
	assert.Nil(t, rc.Shape)
	assert.False(t, rc.UseMmap)
	assert.Equal(t, FormatText, rc.Format)
	assert.Zero(t, rc.Chunk)
	assert.Zero(t, rc.Window)
	assert.Equal(t, 1, rc.Stride)
}

func TestReadOverrides(t *testing.T) {
	c := New()
	c.Set(KeyNBytes, 80)
	c.Set(KeyEndian, "big")
	c.Set(KeyType, "f32")
	c.Set(KeyShape, "2,5")
	c.Set(KeyFormat, "JSON")

	rc, err := c.Read("data.bin")
	require.NoError(t, err)
	assert.Equal(t, int64(80), rc.Policy.Limit())
	assert.Equal(t, codec.Big, rc.Endianness)
	assert.Equal(t, codec.Single, rc.Width)
	assert.Equal(t, array.Shape{2, 5}, rc.Shape)
	assert.Equal(t, FormatJSON, rc.Format)
}

func TestReadRejectsBadValues(t *testing.T) {
	tests := []struct {
		key   string
		value any
	}{
		{KeyShape, "2,3,4"},
		{KeyShape, "0"},
		{KeyNBytes, -1},
		{KeyEndian, "sideways"},
		{KeyType, "f16"},
		{KeyFormat, "xml"},
		{KeyShape, "4294967296,4294967296"},
		{KeyChunk, -1},
		{KeyWindow, -2},
	}
	for _, tt := range tests {
		c := New()
		c.Set(tt.key, tt.value)
		_, err := c.Read("data.bin")
		assert.Error(t, err, "%s=%v", tt.key, tt.value)
	}

	_, err := New().Read("")
	assert.Error(t, err)
}

func TestReadSplitting(t *testing.T) {
	c := New()
	c.Set(KeyWindow, 4)
	c.Set(KeyStride, 2)
	rc, err := c.Read("data.bin")
	require.NoError(t, err)
	assert.Equal(t, 4, rc.Window)
	assert.Equal(t, 2, rc.Stride)

	c.Set(KeyChunk, 3)
	_, err = c.Read("data.bin")
	assert.ErrorIs(t, err, array.ErrInvalidWindow)

	c = New()
	c.Set(KeyWindow, 4)
	c.Set(KeyStride, 0)
	_, err = c.Read("data.bin")
	assert.ErrorIs(t, err, array.ErrInvalidWindow)
}

func TestGenerateDefaults(t *testing.T) {
	c := New()
	c.Set(KeyShape, "3,4")

	gc, err := c.Generate("out.bin")
	require.NoError(t, err)
	assert.Equal(t, random.Normal{Mean: 10, StdDev: 1}, gc.Distribution)
	assert.Equal(t, array.Shape{3, 4}, gc.Shape)
	assert.Equal(t, codec.Double, gc.Width)
	assert.Equal(t, codec.Native, gc.Endianness)
	assert.False(t, gc.Seeded)
}

func TestGenerateUniform(t *testing.T) {
	c := New()
	c.Set(KeyShape, "3x4")
	c.Set(KeyDistribution, "uniform")
	c.Set(KeyType, "f32")
	c.Set(KeyEndian, "little")
	c.Set(KeySeed, 7)

	gc, err := c.Generate("out.bin")
	require.NoError(t, err)
	assert.Equal(t, random.Uniform{Min: 0, Max: 1}, gc.Distribution)
	assert.Equal(t, codec.Single, gc.Width)
	assert.Equal(t, codec.Little, gc.Endianness)
	assert.True(t, gc.Seeded)
	assert.Equal(t, uint64(7), gc.Seed)
}

func TestGenerateShapeRules(t *testing.T) {
	_, err := New().Generate("out.bin")
	assert.ErrorIs(t, err, array.ErrShape)

	c := New()
	c.Set(KeyShape, "12")
	_, err = c.Generate("out.bin")
	assert.ErrorIs(t, err, array.ErrShape)

	c = New()
	c.Set(KeyShape, "3,4")
	c.Set(KeyDistribution, "uniform")
	c.Set(KeyMinimum, 2)
	c.Set(KeyMaximum, 1)
	_, err = c.Generate("out.bin")
	assert.ErrorIs(t, err, random.ErrRange)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("BOEL_ENDIAN", "big")
	t.Setenv("BOEL_LOG_LEVEL", "debug")

	c := New()
	e, err := c.Endianness()
	require.NoError(t, err)
	assert.Equal(t, codec.Big, e)
	assert.Equal(t, "debug", c.LogLevel())
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("BOEL_TYPE", "f64")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String(KeyType, "f64", "")
	require.NoError(t, flags.Parse([]string{"--type", "f32"}))

	c := New()
	require.NoError(t, c.BindFlags(flags))
	w, err := c.Width()
	require.NoError(t, err)
	assert.Equal(t, codec.Single, w)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boel.yaml")
	require.NoError(t, os.WriteFile(path, []byte("endian: little\ntype: f32\nshape: \"2,2\"\n"), 0o600))

	c := New()
	require.NoError(t, c.LoadFromFile(path))
	rc, err := c.Read("x.bin")
	require.NoError(t, err)
	assert.Equal(t, codec.Little, rc.Endianness)
	assert.Equal(t, codec.Single, rc.Width)
	assert.Equal(t, array.Shape{2, 2}, rc.Shape)

	assert.Error(t, New().LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("debug", &buf)
	logger.Debug().Msg("visible")
	assert.Contains(t, buf.String(), "visible")

	buf.Reset()
	logger = NewLogger("error", &buf)
	logger.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	buf.Reset()
	logger = NewLogger("nonsense", &buf)
	logger.Info().Msg("fallback")
	assert.Contains(t, buf.String(), "fallback")
}
