// Package task implements the task-list engine: the task variants, the
// ordered collection with its command operations, and the storage line
// codec used for persistence.
package task

import (
	"fmt"
	"strings"
	"time"
)

// Date-time layouts. Input and storage share one layout; queries and
// display each have their own.
const (
	StorageTimeLayout = "02-01-2006 15:04"
	QueryDateLayout   = "2006/01/02"

	displayTimeLayout = "2006/01/02 1504"
	displayDateLayout = "02/01/2006"
)

// Priority is the user-assignable priority of a task.
type Priority int

const (
	PriorityHigh Priority = iota
	PriorityMedium
	PriorityLow
)

func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "HIGH"
	case PriorityMedium:
		return "MEDIUM"
	case PriorityLow:
		return "LOW"
	}
	return "UNKNOWN"
}

// ParsePriority maps a single-letter priority code to a Priority.
func ParsePriority(code string) (Priority, error) {
	switch code {
	case "h":
		return PriorityHigh, nil
	case "m":
		return PriorityMedium, nil
	case "l":
		return PriorityLow, nil
	}
	return 0, fmt.Errorf("%w: unknown priority code %q, expected h, m or l", ErrFormat, code)
}

func parsePriorityName(name string) (Priority, error) {
	switch name {
	case "HIGH":
		return PriorityHigh, nil
	case "MEDIUM":
		return PriorityMedium, nil
	case "LOW":
		return PriorityLow, nil
	}
	return 0, fmt.Errorf("%w: unknown priority %q", ErrFormat, name)
}

// Task is the contract shared by all task variants. Mutators change the
// task in place; the list returns the affected task for reporting.
type Task interface {
	Description() string
	Done() bool
	Priority() Priority

	Mark()
	Unmark()
	SetPriority(p Priority)

	// Equal reports variant-aware equality, used for duplicate
	// detection on create.
	Equal(other Task) bool

	// String renders the human-readable display line.
	String() string
	// StorageLine renders the pipe-delimited persistence line.
	StorageLine() string
}

// base carries the fields common to every variant.
type base struct {
	description string
	done        bool
	priority    Priority
}

func (b *base) Description() string    { return b.description }
func (b *base) Done() bool             { return b.done }
func (b *base) Priority() Priority     { return b.priority }
func (b *base) Mark()                  { b.done = true }
func (b *base) Unmark()                { b.done = false }
func (b *base) SetPriority(p Priority) { b.priority = p }

func (b *base) statusMarker() string {
	if b.done {
		return "X"
	}
	return " "
}

func (b *base) statusField() string {
	if b.done {
		return "1"
	}
	return "0"
}

func newBase(description string) (base, error) {
	if strings.TrimSpace(description) == "" {
		return base{}, fmt.Errorf("%w: description must not be empty", ErrFormat)
	}
	return base{description: description, priority: PriorityMedium}, nil
}

// Todo is a plain task with no date fields.
type Todo struct {
	base
}

// NewTodo creates a plain task.
func NewTodo(description string) (*Todo, error) {
	b, err := newBase(description)
	if err != nil {
		return nil, err
	}
	return &Todo{base: b}, nil
}

func (t *Todo) Equal(other Task) bool {
	o, ok := other.(*Todo)
	return ok && o.description == t.description
}

func (t *Todo) String() string {
	return fmt.Sprintf("[T][%s] %s", t.statusMarker(), t.description)
}

func (t *Todo) StorageLine() string {
	return fmt.Sprintf("T | %s | %s | %s", t.statusField(), t.priority, t.description)
}

// Deadline is a task with a single due date-time.
type Deadline struct {
	base
	due time.Time
}

// NewDeadline creates a deadline task. The due field must parse under
// the input layout.
func NewDeadline(description, by string) (*Deadline, error) {
	b, err := newBase(description)
	if err != nil {
		return nil, err
	}
	due, err := parseDateTime(by)
	if err != nil {
		return nil, err
	}
	return &Deadline{base: b, due: due}, nil
}

// Due returns the due date-time.
func (d *Deadline) Due() time.Time { return d.due }

func (d *Deadline) Equal(other Task) bool {
	o, ok := other.(*Deadline)
	return ok && o.description == d.description && o.due.Equal(d.due)
}

func (d *Deadline) String() string {
	return fmt.Sprintf("[D][%s] %s (by: %s)",
		d.statusMarker(), d.description, d.due.Format(displayTimeLayout))
}

func (d *Deadline) StorageLine() string {
	return fmt.Sprintf("D | %s | %s | %s | %s",
		d.statusField(), d.priority, d.description, d.due.Format(StorageTimeLayout))
}

// Event is a task spanning a start and an end date-time.
type Event struct {
	base
	from time.Time
	to   time.Time
}

// NewEvent creates an event task. Both date-times must parse under the
// input layout and the start must not be after the end.
func NewEvent(description, from, to string) (*Event, error) {
	b, err := newBase(description)
	if err != nil {
		return nil, err
	}
	start, err := parseDateTime(from)
	if err != nil {
		return nil, err
	}
	end, err := parseDateTime(to)
	if err != nil {
		return nil, err
	}
	if start.After(end) {
		return nil, fmt.Errorf("%w: start of event has to be before end of event", ErrFormat)
	}
	return &Event{base: b, from: start, to: end}, nil
}

// From returns the start date-time.
func (e *Event) From() time.Time { return e.from }

// To returns the end date-time.
func (e *Event) To() time.Time { return e.to }

func (e *Event) Equal(other Task) bool {
	o, ok := other.(*Event)
	return ok && o.description == e.description &&
		o.from.Equal(e.from) && o.to.Equal(e.to)
}

func (e *Event) String() string {
	return fmt.Sprintf("[E][%s] %s (from: %s to: %s)",
		e.statusMarker(), e.description,
		e.from.Format(displayTimeLayout), e.to.Format(displayTimeLayout))
}

func (e *Event) StorageLine() string {
	return fmt.Sprintf("E | %s | %s | %s | %s | %s",
		e.statusField(), e.priority, e.description,
		e.from.Format(StorageTimeLayout), e.to.Format(StorageTimeLayout))
}

func parseDateTime(value string) (time.Time, error) {
	t, err := time.Parse(StorageTimeLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf(
			"%w: invalid date-time %q, use dd-MM-yyyy HH:mm (01-01-2024 00:00)", ErrFormat, value)
	}
	return t, nil
}

// dateOf truncates a date-time to midnight for date-granularity
// comparisons in occurrence queries.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
