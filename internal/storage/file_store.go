package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	tempPrefix      = "temp_"
	processedSubdir = "processed"
	stampLayout     = "20060102_150405"
	maxNameAttempts = 1000
)

// FileStore keeps uploaded résumés in a working directory. Files being
// processed are stored as temp_<random>_<name>; accepted files move to
// processed/<timestamp>_<name>.
type FileStore struct {
	dir string
	now func() time.Time
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Join(dir, processedSubdir), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &FileStore{dir: dir, now: time.Now}, nil
}

func (fs *FileStore) Dir() string {
	return fs.dir
}

// SafeName strips any directory components a client put in the filename.
func SafeName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	if name == "." || name == "/" || name == ".." {
		return ""
	}
	return name
}

// SaveTemp writes content to a fresh temp_<random>_<name> file and returns
// its path. Concurrent uploads of the same name never share a file.
func (fs *FileStore) SaveTemp(name string, content io.Reader) (string, error) {
	name = SafeName(name)
	if name == "" {
		return "", fmt.Errorf("invalid filename")
	}

	file, err := os.CreateTemp(fs.dir, tempPrefix+"*_"+name)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	path := file.Name()
	if _, err := io.Copy(file, content); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return path, nil
}

// MoveProcessed moves a temp file into processed/ and returns the stored
// name, <timestamp>_<name>. When that name is taken a counter is inserted,
// <timestamp>_<n>_<name>, so stored files are never replaced.
func (fs *FileStore) MoveProcessed(tempPath, name string) (string, error) {
	name = SafeName(name)
	stamp := fs.now().Format(stampLayout)

	for n := 0; n < maxNameAttempts; n++ {
		stored := fmt.Sprintf("%s_%s", stamp, name)
		if n > 0 {
			stored = fmt.Sprintf("%s_%d_%s", stamp, n, name)
		}
		target := filepath.Join(fs.dir, processedSubdir, stored)

		// Reserve the name first; rename alone would overwrite.
		reserved, err := os.OpenFile(target, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to reserve processed file: %w", err)
		}
		reserved.Close()

		if err := os.Rename(tempPath, target); err != nil {
			_ = os.Remove(target)
			return "", fmt.Errorf("failed to move processed file: %w", err)
		}
		return stored, nil
	}
	return "", fmt.Errorf("no free processed name for %s", name)
}

// ProcessedPath returns the location of a stored name.
func (fs *FileStore) ProcessedPath(stored string) string {
	return filepath.Join(fs.dir, processedSubdir, SafeName(stored))
}

// Remove deletes path, ignoring files that are already gone.
func (fs *FileStore) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
