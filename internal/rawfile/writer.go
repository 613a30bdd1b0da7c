package rawfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/boel-dev/boel/internal/array"
	"github.com/boel-dev/boel/internal/codec"
	"github.com/google/uuid"
)

// WriteResult describes a completed write.
type WriteResult struct {
	Path     string
	Bytes    int
	Checksum Checksum // SHA-256 of the written payload
}

// WriteFile encodes values in byte order e and replaces the file at path.
//
// The payload goes to a uniquely named temporary file next to path, is synced
// to stable storage, and is then renamed over path. The parent directory is
// synced after the rename. An existing file is only replaced once the new
// content is durable.
func WriteFile(path string, values array.FlatValues, e codec.Endianness) (*WriteResult, error) {
	payload := values.Encode(e)

	tmp, err := tempPath(path)
	if err != nil {
		return nil, ioErr("create", path, err)
	}

	//nolint:gosec // G304: writing user-supplied paths is the purpose of this package
	file, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, ioErr("create", tmp, err)
	}

	if err := writeAndSync(file, tmp, payload); err != nil {
		_ = file.Close()
		_ = os.Remove(tmp)
		return nil, err
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(tmp)
		return nil, ioErr("write", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return nil, ioErr("rename", path, err)
	}
	if err := syncDir(filepath.Dir(path)); err != nil {
		return nil, ioErr("sync", filepath.Dir(path), err)
	}

	return &WriteResult{
		Path:     path,
		Bytes:    len(payload),
		Checksum: SumBytes(payload),
	}, nil
}

func writeAndSync(file *os.File, name string, payload []byte) error {
	if _, err := file.Write(payload); err != nil {
		return ioErr("write", name, err)
	}
	if err := file.Sync(); err != nil {
		return ioErr("sync", name, err)
	}
	return nil
}

// tempPath returns a fresh sibling path for path, e.g. ".data.bin.<uuid>.tmp".
func tempPath(path string) (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate temp name: %w", err)
	}
	dir, base := filepath.Split(path)
	return filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", base, id.String())), nil
}
