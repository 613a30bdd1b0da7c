package rawfile

import "fmt"

// ByteCountPolicy decides how many bytes are read from the start of a file.
// The zero value reads the whole file.
type ByteCountPolicy struct {
	limit int64 // 0 means whole file
}

// WholeFile reads every byte of the file.
func WholeFile() ByteCountPolicy {
	return ByteCountPolicy{}
}

// LimitedBytes reads at most n bytes. n must be positive.
func LimitedBytes(n int64) (ByteCountPolicy, error) {
	if n <= 0 {
		return ByteCountPolicy{}, fmt.Errorf("byte limit must be > 0, got %d", n)
	}
	return ByteCountPolicy{limit: n}, nil
}

// IsWhole reports whether the policy reads the whole file.
func (p ByteCountPolicy) IsWhole() bool {
	return p.limit == 0
}

// Limit returns the configured byte limit, or 0 for WholeFile.
func (p ByteCountPolicy) Limit() int64 {
	return p.limit
}

// Resolve returns the number of bytes to read from a file of fileSize bytes.
// A limit larger than the file is clamped down to the file size.
func (p ByteCountPolicy) Resolve(fileSize int64) (n int64, clamped bool) {
	if p.limit == 0 {
		return fileSize, false
	}
	if p.limit > fileSize {
		return fileSize, true
	}
	return p.limit, false
}

// String describes the policy.
func (p ByteCountPolicy) String() string {
	if p.limit == 0 {
		return "whole file"
	}
	return fmt.Sprintf("%d bytes", p.limit)
}
