//go:build !unix && !windows

package rawfile

import (
	"errors"
	"os"
)

var errMmapUnsupported = errors.New("memory mapping not supported on this platform")

func mapPrefix(_ *os.File, _ int64) ([]byte, error) {
	return nil, errMmapUnsupported
}

func unmap(_ []byte) error {
	return errMmapUnsupported
}
