package task

import "errors"

// Error kinds surfaced by the list engine. Callers classify with
// errors.Is; the wrapped message carries the user-facing detail.
var (
	ErrFormat    = errors.New("invalid format")
	ErrNotFound  = errors.New("task not found")
	ErrDuplicate = errors.New("duplicate task")
	ErrEmptyList = errors.New("task list is empty")
	ErrStorage   = errors.New("storage failure")
)
