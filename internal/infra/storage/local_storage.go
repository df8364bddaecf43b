// Package storage provides the local disk implementation of the FileStorage service.
package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/PaulCari/PawPals/internal/domain/service"
	"github.com/PaulCari/PawPals/internal/errors"
)

type localStorage struct {
	root string
}

// NewLocalStorage is the constructor for localStorage.
// Files are written under root, which is created on demand.
func NewLocalStorage(root string) service.FileStorage {
	return &localStorage{root: root}
}

// Save writes the content under root/dir/name and returns the relative path.
func (s *localStorage) Save(_ context.Context, dir, name string, content io.Reader) (string, error) {
	targetDir := filepath.Join(s.root, dir)
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return "", errors.Wrap(err, "failed to create upload directory")
	}

	targetPath := filepath.Join(targetDir, name)
	f, err := os.Create(targetPath)
	if err != nil {
		return "", errors.Wrap(err, "failed to create upload file")
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		return "", errors.Wrap(err, "failed to write upload file")
	}

	return filepath.ToSlash(filepath.Join(dir, name)), nil
}

// Remove deletes a previously stored file. Missing files are not an error.
func (s *localStorage) Remove(_ context.Context, path string) error {
	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(path)))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to remove stored file")
	}

	return nil
}
