package paths

import (
	"os"
	"path/filepath"
)

const (
	OutputDir = "public"
	DirPerm   = 0755
	FilePerm  = 0644
)

// AtomicWrite writes data to path via a temporary file + rename to avoid
// partial writes. The temp file is removed on any failure. The parent
// directory is created if needed and an existing file at path is replaced.
func AtomicWrite(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, FilePerm); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
