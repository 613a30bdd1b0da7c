// Package rawfile reads and writes flat, headerless files of IEEE-754 values.
//
// The on-disk format carries no metadata: a file is a sequence of values of a
// single element width in a single byte order. Width, byte order and shape
// must be supplied on every read.
//
// Example usage:
//
//	values, err := rawfile.Decode("data.bin", rawfile.WholeFile(), codec.Big, codec.Double)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	arr, err := array.New(values, array.Shape{2, 5})
package rawfile

import (
	"fmt"
	"io"
	"os"

	"github.com/boel-dev/boel/internal/array"
	"github.com/boel-dev/boel/internal/codec"
	"github.com/rs/zerolog"
)

// Options configures a decode.
type Options struct {
	Policy     ByteCountPolicy
	Endianness codec.Endianness
	Width      codec.Width
	UseMmap    bool            // Decode from a read-only memory mapping instead of a read
	Logger     *zerolog.Logger // Optional; receives clamp and mapping diagnostics
}

// Decode reads a file and reinterprets its bytes as values of width w in byte order e.
//
// The byte count is resolved by policy and clamped to the file size. It fails
// with an *IOError when the file cannot be opened, stat'ed or read and with a
// *codec.AlignmentError when the resolved byte count is not a whole number of
// elements.
func Decode(path string, policy ByteCountPolicy, e codec.Endianness, w codec.Width) (array.FlatValues, error) {
	return DecodeWithOptions(path, Options{Policy: policy, Endianness: e, Width: w})
}

// DecodeWithOptions is Decode with the full set of options.
func DecodeWithOptions(path string, opts Options) (array.FlatValues, error) {
	if !opts.Width.Valid() {
		return array.FlatValues{}, fmt.Errorf("%w: %d bytes", codec.ErrUnknownWidth, int(opts.Width))
	}
	logger := opts.Logger
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	//nolint:gosec // G304: reading user-supplied paths is the purpose of this package
	file, err := os.Open(path)
	if err != nil {
		return array.FlatValues{}, ioErr("open", path, err)
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return array.FlatValues{}, ioErr("stat", path, err)
	}

	n, clamped := opts.Policy.Resolve(stat.Size())
	if clamped {
		logger.Debug().
			Str("file", path).
			Int64("requested", opts.Policy.Limit()).
			Int64("size", stat.Size()).
			Msg("byte limit exceeds file size, reading whole file")
	}
	if err := codec.CheckAlignment(n, opts.Width); err != nil {
		return array.FlatValues{}, fmt.Errorf("%s: %w", path, err)
	}

	var data []byte
	if opts.UseMmap && n > 0 {
		mapped, err := mapPrefix(file, n)
		if err != nil {
			return array.FlatValues{}, ioErr("mmap", path, err)
		}
		defer func() {
			if err := unmap(mapped); err != nil {
				logger.Warn().Err(err).Str("file", path).Msg("munmap failed")
			}
		}()
		logger.Debug().Str("file", path).Int64("bytes", n).Msg("decoding from memory mapping")
		data = mapped
	} else {
		data = make([]byte, n)
		if _, err := io.ReadFull(file, data); err != nil {
			return array.FlatValues{}, ioErr("read", path, err)
		}
	}

	// DecodeValues copies out of data, so the mapping may be released afterwards.
	return array.DecodeValues(data, opts.Endianness, opts.Width)
}

// Stat describes a raw file without decoding it.
type Stat struct {
	Path      string
	Size      int64
	Width     codec.Width
	Elements  int64
	Remainder int64    // Trailing bytes that do not form a whole element
	Checksum  Checksum // SHA-256 of the file contents
}

// Inspect reports the size, element count for width w, and checksum of a file.
func Inspect(path string, w codec.Width) (*Stat, error) {
	if !w.Valid() {
		return nil, fmt.Errorf("%w: %d bytes", codec.ErrUnknownWidth, int(w))
	}
	//nolint:gosec // G304: reading user-supplied paths is the purpose of this package
	file, err := os.Open(path)
	if err != nil {
		return nil, ioErr("open", path, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, ioErr("stat", path, err)
	}
	sum, err := SumReader(file)
	if err != nil {
		return nil, ioErr("read", path, err)
	}

	size := int64(w.Size())
	return &Stat{
		Path:      path,
		Size:      info.Size(),
		Width:     w,
		Elements:  info.Size() / size,
		Remainder: info.Size() % size,
		Checksum:  sum,
	}, nil
}
