package storage

import "github.com/pdxmph/tasks-tui/internal/task"

// MemoryStore keeps the persisted form in memory. It backs tests and
// ephemeral runs where no file should be touched.
type MemoryStore struct {
	lines []string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load parses the stored lines back into tasks.
func (s *MemoryStore) Load() ([]task.Task, error) {
	var tasks []task.Task
	for _, line := range s.lines {
		t, err := task.ParseStorageLine(line)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// Save captures the storage lines of the given tasks.
func (s *MemoryStore) Save(tasks []task.Task) error {
	lines := make([]string, 0, len(tasks))
	for _, t := range tasks {
		lines = append(lines, t.StorageLine())
	}
	s.lines = lines
	return nil
}
