//go:build unix

package rawfile

import "os"

// syncDir flushes the directory entry table of dir, making a completed
// rename survive a crash.
func syncDir(dir string) error {
	//nolint:gosec // G304: dir is the parent of a caller-chosen output path
	d, err := os.Open(dir)
	if err != nil {
		return err
	}
	if err := d.Sync(); err != nil {
		_ = d.Close()
		return err
	}
	return d.Close()
}
