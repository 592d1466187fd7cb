package task

import (
	"fmt"
	"strings"
)

// ParseStorageLine rebuilds a task from its pipe-delimited storage line,
// selecting the variant by the leading type tag.
func ParseStorageLine(line string) (Task, error) {
	fields := strings.Split(line, " | ")
	if len(fields) < 4 {
		return nil, fmt.Errorf("%w: storage line has %d fields, want at least 4: %q",
			ErrFormat, len(fields), line)
	}

	tag, status, priorityName, description := fields[0], fields[1], fields[2], fields[3]

	var done bool
	switch status {
	case "0":
		done = false
	case "1":
		done = true
	default:
		return nil, fmt.Errorf("%w: invalid status %q in storage line %q", ErrFormat, status, line)
	}

	priority, err := parsePriorityName(priorityName)
	if err != nil {
		return nil, fmt.Errorf("%w in storage line %q", err, line)
	}

	var t Task
	switch tag {
	case "T":
		if len(fields) != 4 {
			return nil, fmt.Errorf("%w: todo storage line has %d fields, want 4: %q",
				ErrFormat, len(fields), line)
		}
		t, err = NewTodo(description)
	case "D":
		if len(fields) != 5 {
			return nil, fmt.Errorf("%w: deadline storage line has %d fields, want 5: %q",
				ErrFormat, len(fields), line)
		}
		t, err = NewDeadline(description, fields[4])
	case "E":
		if len(fields) != 6 {
			return nil, fmt.Errorf("%w: event storage line has %d fields, want 6: %q",
				ErrFormat, len(fields), line)
		}
		t, err = NewEvent(description, fields[4], fields[5])
	default:
		return nil, fmt.Errorf("%w: unknown task type %q in storage line %q", ErrFormat, tag, line)
	}
	if err != nil {
		return nil, err
	}

	if done {
		t.Mark()
	}
	t.SetPriority(priority)
	return t, nil
}
