package store

import (
	"os"
	"path/filepath"
	"strings"
)

// PhotoStore resolves stored photo filenames against the upload
// directory. Lookups are tolerant: a missing file is simply not found.
type PhotoStore struct {
	dir string
}

func NewPhotoStore(dir string) *PhotoStore {
	return &PhotoStore{dir: dir}
}

// Dir returns the backing upload directory.
func (s *PhotoStore) Dir() string { return s.dir }

// Resolve maps a stored filename to an absolute path, rejecting names
// that try to escape the upload directory.
func (s *PhotoStore) Resolve(filename string) (string, bool) {
	if filename == "" || filename != filepath.Base(filename) || strings.HasPrefix(filename, ".") {
		return "", false
	}
	path := filepath.Join(s.dir, filename)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", false
	}
	return path, true
}

// Save writes an uploaded photo under its sanitized filename and
// returns the stored size.
func (s *PhotoStore) Save(filename string, data []byte) (int64, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return 0, err
	}
	path := filepath.Join(s.dir, filepath.Base(filename))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return 0, err
	}
	return int64(len(data)), nil
}
