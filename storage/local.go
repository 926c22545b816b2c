package storage

import (
	"io"
	"os"
	"path/filepath"
)

// LocalStore writes attachment files to a directory served at /uploads.
type LocalStore struct {
	Dir string
}

var _ FileStore = (*LocalStore)(nil)

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{Dir: dir}, nil
}

func (s *LocalStore) Save(filename, contentType string, r io.Reader) (string, error) {
	// filepath.Base guards against path traversal in the stored name.
	name := filepath.Base(filename)
	f, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return "/uploads/" + name, nil
}

func (s *LocalStore) Remove(fileURL string) error {
	name := filepath.Base(fileURL)
	return os.Remove(filepath.Join(s.Dir, name))
}
