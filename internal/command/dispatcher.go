// Package command maps raw user input to task-list operations and
// renders the response for each.
package command

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pdxmph/tasks-tui/internal/storage"
	"github.com/pdxmph/tasks-tui/internal/task"
)

// Result is the outcome of one dispatched command.
type Result struct {
	Response string
	Quit     bool
}

type handler struct {
	run func(args string) (string, error)
	// mutating commands trigger a re-save after they succeed
	mutating bool
}

// Dispatcher resolves command words against a handler table closing
// over the shared list and store.
type Dispatcher struct {
	list     *task.List
	store    storage.Store
	handlers map[string]handler
}

// NewDispatcher wires a dispatcher to a list and its persistence store.
func NewDispatcher(list *task.List, store storage.Store) *Dispatcher {
	d := &Dispatcher{list: list, store: store}
	d.handlers = map[string]handler{
		"todo":         {run: d.addTodo, mutating: true},
		"deadline":     {run: d.addDeadline, mutating: true},
		"event":        {run: d.addEvent, mutating: true},
		"list":         {run: d.listAll},
		"mark":         {run: d.mark, mutating: true},
		"unmark":       {run: d.unmark, mutating: true},
		"delete":       {run: d.delete, mutating: true},
		"setPriority":  {run: d.setPriority, mutating: true},
		"find":         {run: d.find},
		"findPriority": {run: d.findPriority},
		"on":           {run: d.tasksOn},
	}
	return d
}

// Handle dispatches one line of user input. Every returned error is
// recoverable; the caller renders its message and resumes.
func (d *Dispatcher) Handle(raw string) (Result, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Result{}, fmt.Errorf("%w: empty command, known commands: %s",
			task.ErrFormat, d.commandNames())
	}

	word, args, _ := strings.Cut(trimmed, " ")
	if word == "bye" {
		return Result{Response: "Bye. Hope to see you again soon!", Quit: true}, nil
	}

	h, ok := d.handlers[word]
	if !ok {
		return Result{}, fmt.Errorf("%w: unknown command %q, known commands: %s",
			task.ErrFormat, word, d.commandNames())
	}

	// "on" parses the full command text itself; everything else takes
	// the argument remainder.
	if word == "on" {
		args = trimmed
	}

	response, err := h.run(args)
	if err != nil {
		return Result{}, err
	}
	if h.mutating {
		if err := d.store.Save(d.list.Tasks()); err != nil {
			response += "\nWarning: " + err.Error()
		}
	}
	return Result{Response: response}, nil
}

func (d *Dispatcher) commandNames() string {
	names := make([]string, 0, len(d.handlers)+1)
	for name := range d.handlers {
		names = append(names, name)
	}
	names = append(names, "bye")
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func (d *Dispatcher) addTodo(args string) (string, error) {
	t, size, err := d.list.AddTodo(args)
	if err != nil {
		return "", err
	}
	return addedResponse(t, size), nil
}

func (d *Dispatcher) addDeadline(args string) (string, error) {
	t, size, err := d.list.AddDeadline(args)
	if err != nil {
		return "", err
	}
	return addedResponse(t, size), nil
}

func (d *Dispatcher) addEvent(args string) (string, error) {
	t, size, err := d.list.AddEvent(args)
	if err != nil {
		return "", err
	}
	return addedResponse(t, size), nil
}

func (d *Dispatcher) listAll(string) (string, error) {
	tasks, err := d.list.All()
	if err != nil {
		return "", err
	}
	return "Here are the tasks in your list:\n" + numbered(tasks), nil
}

func (d *Dispatcher) mark(args string) (string, error) {
	t, err := d.list.Mark(args)
	if err != nil {
		return "", err
	}
	return "Nice! I've marked this task as done:\n  " + t.String(), nil
}

func (d *Dispatcher) unmark(args string) (string, error) {
	t, err := d.list.Unmark(args)
	if err != nil {
		return "", err
	}
	return "OK, I've marked this task as not done yet:\n  " + t.String(), nil
}

func (d *Dispatcher) delete(args string) (string, error) {
	t, size, err := d.list.Delete(args)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Noted. I've removed this task:\n  %s\nNow you have %s in the list.",
		t, countNoun(size)), nil
}

func (d *Dispatcher) setPriority(args string) (string, error) {
	t, err := d.list.SetPriority(args)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Set the priority of this task to %s:\n  %s", t.Priority(), t), nil
}

func (d *Dispatcher) find(args string) (string, error) {
	matches := d.list.Find(args)
	if len(matches) == 0 {
		return "No matching tasks found!", nil
	}
	return "Here are the matching tasks in your list:\n" + numbered(matches), nil
}

func (d *Dispatcher) findPriority(args string) (string, error) {
	p, matches, err := d.list.FindPriority(strings.TrimSpace(args))
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return fmt.Sprintf("You have no %s priority tasks!", p), nil
	}
	return fmt.Sprintf("Here are the %s priority tasks in your list:\n%s", p, numbered(matches)), nil
}

func (d *Dispatcher) tasksOn(raw string) (string, error) {
	target, matches, err := d.list.TasksOn(raw)
	if err != nil {
		return "", err
	}
	date := task.FormatDate(target)
	if len(matches) == 0 {
		return fmt.Sprintf("You have no tasks on %s!", date), nil
	}
	return fmt.Sprintf("Here are your tasks on %s:\n%s", date, numbered(matches)), nil
}

func addedResponse(t task.Task, size int) string {
	return fmt.Sprintf("Got it. I've added this task:\n  %s\nNow you have %s in the list.",
		t, countNoun(size))
}

func numbered(tasks []task.Task) string {
	lines := make([]string, 0, len(tasks))
	for i, t := range tasks {
		lines = append(lines, fmt.Sprintf("%d.%s", i+1, t))
	}
	return strings.Join(lines, "\n")
}

func countNoun(n int) string {
	if n == 1 {
		return "1 task"
	}
	return fmt.Sprintf("%d tasks", n)
}
