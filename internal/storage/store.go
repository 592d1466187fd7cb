// Package storage persists the task collection. The on-disk form is one
// pipe-delimited storage line per task, in list order.
package storage

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdxmph/tasks-tui/internal/task"
)

// Store is the persistence seam for the task collection.
type Store interface {
	// Load reads the persisted collection. A missing sink yields an
	// empty collection, not an error.
	Load() ([]task.Task, error)
	// Save writes the whole collection, replacing previous contents.
	Save(tasks []task.Task) error
}

// FileStore persists tasks to a plain-text file.
type FileStore struct {
	path string
}

// NewFileStore creates a store writing to the given file path. The
// parent directory is created on the first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load parses the backing file into tasks. Any line that fails to parse
// fails the whole load; the caller is expected to report the error and
// continue with an empty list.
func (s *FileStore) Load() ([]task.Task, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: opening %s: %v", task.ErrStorage, s.path, err)
	}
	defer f.Close()

	var tasks []task.Task
	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if line == "" {
			continue
		}
		t, err := task.ParseStorageLine(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", s.path, lineno, err)
		}
		tasks = append(tasks, t)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", task.ErrStorage, s.path, err)
	}
	return tasks, nil
}

// Save writes one storage line per task, newline-terminated.
func (s *FileStore) Save(tasks []task.Task) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("%w: creating data directory: %v", task.ErrStorage, err)
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("%w: creating %s: %v", task.ErrStorage, s.path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, t := range tasks {
		if _, err := w.WriteString(t.StorageLine() + "\n"); err != nil {
			return fmt.Errorf("%w: writing %s: %v", task.ErrStorage, s.path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("%w: writing %s: %v", task.ErrStorage, s.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: closing %s: %v", task.ErrStorage, s.path, err)
	}
	return nil
}
