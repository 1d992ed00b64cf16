package files

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Store keeps generated documents in a single local directory that is also
// served statically under /generated.
type Store struct {
	baseDir string
}

// New creates a store rooted at baseDir.
func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Dir returns the directory backing the store.
func (s *Store) Dir() string {
	return s.baseDir
}

// Save writes data under fileName and returns the absolute path.
func (s *Store) Save(ctx context.Context, fileName string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fullPath, err := s.Path(fileName)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir: %w", err)
	}
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return fullPath, nil
}

// Open opens a stored file for reading.
func (s *Store) Open(ctx context.Context, fileName string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fullPath, err := s.Path(fileName)
	if err != nil {
		return nil, err
	}
	return os.Open(fullPath)
}

// Exists reports whether fileName is present on disk.
func (s *Store) Exists(fileName string) bool {
	fullPath, err := s.Path(fileName)
	if err != nil {
		return false
	}
	info, err := os.Stat(fullPath)
	return err == nil && !info.IsDir()
}

// Remove deletes a stored file. Missing files are not an error.
func (s *Store) Remove(fileName string) error {
	fullPath, err := s.Path(fileName)
	if err != nil {
		return err
	}
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Path resolves fileName inside the store, rejecting traversal attempts.
func (s *Store) Path(fileName string) (string, error) {
	clean := filepath.Clean(fileName)
	if clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) || strings.ContainsRune(clean, os.PathSeparator) {
		return "", fmt.Errorf("invalid file name %q", fileName)
	}
	return filepath.Join(s.baseDir, clean), nil
}
