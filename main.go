package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"notetaker/internal/app"
	"notetaker/internal/logging"
	"notetaker/internal/notebook"
	"notetaker/internal/store"
)

const (
	dataDirName    = "notes_data"
	configFileName = "app_config.json"
	logFileName    = "notetaker.log"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "notetaker: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	log := logging.New(filepath.Join(dataDirName, logFileName))

	st, err := store.NewFileStore(dataDirName, configFileName, log)
	if err != nil {
		return err
	}

	nb := notebook.Open(st, log)

	p := tea.NewProgram(app.New(nb), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}

	return nil
}
