package rawfile

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
)

// Checksum is the SHA-256 digest of a file or payload.
type Checksum [sha256.Size]byte

// String returns the digest as lowercase hex, the form sha256sum prints.
func (c Checksum) String() string {
	return hex.EncodeToString(c[:])
}

// SumBytes digests an in-memory payload.
func SumBytes(data []byte) Checksum {
	return sha256.Sum256(data)
}

// SumReader digests r to EOF without buffering it.
func SumReader(r io.Reader) (Checksum, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return Checksum{}, err
	}
	var c Checksum
	h.Sum(c[:0])
	return c, nil
}
