package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pdxmph/tasks-tui/internal/command"
	"github.com/pdxmph/tasks-tui/internal/config"
	"github.com/pdxmph/tasks-tui/internal/storage"
	"github.com/pdxmph/tasks-tui/internal/task"
	"github.com/pdxmph/tasks-tui/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default ~/.config/tasks-tui/config.toml)")
	filePath := flag.String("file", "", "path to tasks file (overrides config)")
	flag.Parse()

	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadFrom(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatal(err)
	}

	path := cfg.Storage.Path
	if *filePath != "" {
		path = *filePath
	}

	store := storage.NewFileStore(path)
	list := task.NewList()

	// A load failure is reported, not fatal: the session starts with an
	// empty list and the file is rewritten on the next mutation.
	tasks, err := store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v (starting with an empty list)\n", err)
	} else {
		list.SetTasks(tasks)
	}

	model := tui.New(command.NewDispatcher(list, store))

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
