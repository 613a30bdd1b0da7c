//go:build unix

package rawfile

import (
	"fmt"
	"math"
	"os"
	"syscall"
)

// mapPrefix maps the leading n bytes of f read-only. The mapping stays valid
// after f is closed and must be released with unmap.
func mapPrefix(f *os.File, n int64) ([]byte, error) {
	if n > math.MaxInt {
		return nil, fmt.Errorf("cannot map %d bytes", n)
	}
	fd := int(f.Fd()) //nolint:gosec // G115: descriptors are small non-negative ints
	return syscall.Mmap(fd, 0, int(n), syscall.PROT_READ, syscall.MAP_PRIVATE)
}

func unmap(region []byte) error {
	return syscall.Munmap(region)
}
