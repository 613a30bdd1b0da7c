package codec

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Endianness selects the byte order used to read and write values.
type Endianness int

// Supported byte orders.
const (
	Native Endianness = iota
	Little
	Big
)

// ParseEndianness converts "native", "little" or "big" to an Endianness.
func ParseEndianness(s string) (Endianness, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "native", "":
		return Native, nil
	case "little", "le":
		return Little, nil
	case "big", "be":
		return Big, nil
	default:
		return Native, fmt.Errorf("%w: %q (expected native, little or big)", ErrUnknownEndianness, s)
	}
}

// ByteOrder returns the binary.ByteOrder for e.
// Native resolves to the host byte order.
func (e Endianness) ByteOrder() binary.ByteOrder {
	switch e {
	case Little:
		return binary.LittleEndian
	case Big:
		return binary.BigEndian
	default:
		return binary.NativeEndian
	}
}

// Resolve maps Native to Little or Big according to the host.
func (e Endianness) Resolve() Endianness {
	if e != Native {
		return e
	}
	var buf [2]byte
	binary.NativeEndian.PutUint16(buf[:], 1)
	if buf[0] == 1 {
		return Little
	}
	return Big
}

// String returns the name used on the command line.
func (e Endianness) String() string {
	switch e {
	case Native:
		return "native"
	case Little:
		return "little"
	case Big:
		return "big"
	default:
		return "unknown"
	}
}
