// Package storage stores attachment files on the local filesystem under a
// ticket-scoped directory. Paths are always computed server-side from the
// ticket ID and the bare uploaded filename; client-supplied paths are
// never trusted.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type LocalStorage struct {
	baseDir string
}

func NewLocalStorage(baseDir string) *LocalStorage {
	if baseDir == "" {
		baseDir = "uploads"
	}
	return &LocalStorage{baseDir: baseDir}
}

// PathFor returns the storage path for a file belonging to a ticket. The
// filename is reduced to its base name so path traversal segments are
// discarded.
func (s *LocalStorage) PathFor(ticketID uint, filename string) (string, error) {
	name := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "" || name == "." || name == ".." || name == "/" {
		return "", fmt.Errorf("invalid filename %q", filename)
	}
	return filepath.ToSlash(filepath.Join(s.baseDir, strconv.FormatUint(uint64(ticketID), 10), name)), nil
}

// Write stores the file content at the path computed for the ticket and
// filename, creating the ticket directory as needed. It returns the
// stored path.
func (s *LocalStorage) Write(ticketID uint, filename string, content io.Reader) (string, error) {
	path, err := s.PathFor(ticketID, filename)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, content); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return path, nil
}

// Exists reports whether the stored file is present on disk.
func (s *LocalStorage) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Remove deletes the stored file. A missing file is not an error.
func (s *LocalStorage) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}
