package task

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Grammar reminders embedded in format errors.
const (
	todoGrammar        = "todo <description>"
	deadlineGrammar    = "deadline <description> /by <dd-MM-yyyy HH:mm>"
	eventGrammar       = "event <description> /from <dd-MM-yyyy HH:mm> /to <dd-MM-yyyy HH:mm>"
	markGrammar        = "mark <task number>"
	unmarkGrammar      = "unmark <task number>"
	deleteGrammar      = "delete <task number>"
	setPriorityGrammar = "setPriority <task number> <h/m/l>"
	onGrammar          = "on yyyy/MM/dd"
)

// List owns the ordered task collection. Indices are 1-based in every
// operation argument and 0-based internally.
type List struct {
	tasks []Task
}

// NewList creates an empty list.
func NewList() *List {
	return &List{}
}

// SetTasks replaces the collection, used when hydrating from storage.
func (l *List) SetTasks(tasks []Task) {
	l.tasks = tasks
}

// Tasks returns the collection in insertion order for serialization.
func (l *List) Tasks() []Task {
	return l.tasks
}

// Len returns the number of tasks.
func (l *List) Len() int {
	return len(l.tasks)
}

// AddTodo creates a plain task from its description and appends it.
func (l *List) AddTodo(description string) (Task, int, error) {
	if strings.TrimSpace(description) == "" {
		return nil, 0, fmt.Errorf("%w: try again with: %s", ErrFormat, todoGrammar)
	}
	t, err := NewTodo(description)
	if err != nil {
		return nil, 0, err
	}
	return l.append(t)
}

// AddDeadline creates a deadline task from "<description> /by <date>"
// and appends it.
func (l *List) AddDeadline(args string) (Task, int, error) {
	description, by, ok := strings.Cut(args, " /by ")
	if !ok || strings.TrimSpace(description) == "" || strings.TrimSpace(by) == "" {
		return nil, 0, fmt.Errorf("%w: try again with: %s", ErrFormat, deadlineGrammar)
	}
	t, err := NewDeadline(description, by)
	if err != nil {
		return nil, 0, err
	}
	return l.append(t)
}

// AddEvent creates an event task from
// "<description> /from <date> /to <date>" and appends it.
func (l *List) AddEvent(args string) (Task, int, error) {
	description, rest, ok := strings.Cut(args, " /from ")
	if !ok {
		return nil, 0, fmt.Errorf("%w: try again with: %s", ErrFormat, eventGrammar)
	}
	from, to, ok := strings.Cut(rest, " /to ")
	if !ok || strings.TrimSpace(description) == "" ||
		strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
		return nil, 0, fmt.Errorf("%w: try again with: %s", ErrFormat, eventGrammar)
	}
	t, err := NewEvent(description, from, to)
	if err != nil {
		return nil, 0, err
	}
	return l.append(t)
}

func (l *List) append(t Task) (Task, int, error) {
	for _, existing := range l.tasks {
		if t.Equal(existing) {
			return nil, 0, fmt.Errorf("%w: you already have this task added", ErrDuplicate)
		}
	}
	l.tasks = append(l.tasks, t)
	return t, len(l.tasks), nil
}

// Mark marks the task at the given 1-based index as complete.
func (l *List) Mark(arg string) (Task, error) {
	i, err := l.resolve(arg, markGrammar)
	if err != nil {
		return nil, err
	}
	l.tasks[i].Mark()
	return l.tasks[i], nil
}

// Unmark marks the task at the given 1-based index as incomplete.
func (l *List) Unmark(arg string) (Task, error) {
	i, err := l.resolve(arg, unmarkGrammar)
	if err != nil {
		return nil, err
	}
	l.tasks[i].Unmark()
	return l.tasks[i], nil
}

// Delete removes the task at the given 1-based index and returns it
// along with the resulting size.
func (l *List) Delete(arg string) (Task, int, error) {
	i, err := l.resolve(arg, deleteGrammar)
	if err != nil {
		return nil, 0, err
	}
	removed := l.tasks[i]
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	return removed, len(l.tasks), nil
}

// SetPriority sets the priority of a task from "<task number> <h/m/l>".
func (l *List) SetPriority(args string) (Task, error) {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		return nil, fmt.Errorf("%w: try again with: %s", ErrFormat, setPriorityGrammar)
	}
	p, err := ParsePriority(fields[1])
	if err != nil {
		return nil, fmt.Errorf("%w: try again with: %s", ErrFormat, setPriorityGrammar)
	}
	i, err := l.resolve(fields[0], setPriorityGrammar)
	if err != nil {
		return nil, err
	}
	l.tasks[i].SetPriority(p)
	return l.tasks[i], nil
}

// All returns the full ordered collection, or ErrEmptyList when there is
// nothing to show.
func (l *List) All() ([]Task, error) {
	if len(l.tasks) == 0 {
		return nil, ErrEmptyList
	}
	return l.tasks, nil
}

// Find returns the tasks whose description contains the keyword as an
// exact, case-sensitive substring.
func (l *List) Find(keyword string) []Task {
	var matches []Task
	for _, t := range l.tasks {
		if strings.Contains(t.Description(), keyword) {
			matches = append(matches, t)
		}
	}
	return matches
}

// FindPriority returns the tasks whose priority matches the given code.
func (l *List) FindPriority(code string) (Priority, []Task, error) {
	p, err := ParsePriority(code)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: try again with: findPriority <h/m/l>", ErrFormat)
	}
	var matches []Task
	for _, t := range l.tasks {
		if t.Priority() == p {
			matches = append(matches, t)
		}
	}
	return p, matches, nil
}

// TasksOn evaluates the occurrence query from its verbatim command text,
// e.g. "on 2024/06/15". Plain tasks never occur; an incomplete deadline
// occurs on any date up to and including its due date; an incomplete
// event occurs on any date within its start/end range inclusive.
func (l *List) TasksOn(raw string) (time.Time, []Task, error) {
	fields := strings.Fields(raw)
	if len(fields) != 2 {
		return time.Time{}, nil, fmt.Errorf("%w: try again with: %s", ErrFormat, onGrammar)
	}
	target, err := time.Parse(QueryDateLayout, fields[1])
	if err != nil {
		return time.Time{}, nil, fmt.Errorf(
			"%w: incorrect date %q, try again with: %s", ErrFormat, fields[1], onGrammar)
	}

	var matches []Task
	for _, t := range l.tasks {
		if occursOn(t, target) {
			matches = append(matches, t)
		}
	}
	return target, matches, nil
}

func occursOn(t Task, target time.Time) bool {
	if t.Done() {
		return false
	}
	switch v := t.(type) {
	case *Deadline:
		due := dateOf(v.Due())
		return target.Before(due) || target.Equal(due)
	case *Event:
		start, end := dateOf(v.From()), dateOf(v.To())
		return !target.Before(start) && !target.After(end)
	}
	return false
}

func (l *List) resolve(arg, grammar string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("%w: try again with: %s", ErrFormat, grammar)
	}
	i := n - 1
	if i < 0 || i >= len(l.tasks) {
		return 0, fmt.Errorf("%w: no task numbered %d", ErrNotFound, n)
	}
	return i, nil
}

// FormatDate renders a date the way user-facing occurrence messages
// expect it.
func FormatDate(t time.Time) string {
	return t.Format(displayDateLayout)
}
