package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"tablegrip/internal/config"
	"tablegrip/internal/ui"
	"tablegrip/internal/ui/services/events"
)

// exitAborted is returned when the user quits with ctrl+c
const exitAborted = 130

func main() {
	// Parse command line arguments
	var configPath string
	flag.StringVar(&configPath, "config", "", "Table definition to pick rows from (TOML)")
	flag.StringVar(&configPath, "f", "", "Table definition to pick rows from (shorthand)")
	flag.Parse()

	if configPath == "" && flag.NArg() > 0 {
		configPath = flag.Arg(0)
	}

	os.Exit(run(configPath, os.Stdout, os.Stderr))
}

// run shows the table and returns the process exit code. Deferred cleanup
// finishes before main exits.
func run(configPath string, stdout, stderr io.Writer) int {
	bus := events.NewBus()
	cfg, err := loadConfig(config.NewConfigServiceWithBus(bus), configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return 1
	}

	// Set up logging; stderr belongs to the table while it runs
	log.SetOutput(io.Discard)
	if cfg.UI.LogFile != "" {
		logFile, err := os.OpenFile(cfg.UI.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			fmt.Fprintf(stderr, "Could not open log file: %v\n", err)
		} else {
			defer logFile.Close()
			log.SetOutput(logFile)
		}
	}
	log.Printf("Loaded %d rows (%s)", len(cfg.Table.Rows), describeSource(configPath))

	model, err := ui.NewModel(cfg, bus)
	if err != nil {
		fmt.Fprintf(stderr, "Error creating table: %v\n", err)
		return 1
	}
	defer model.Close()

	// The table draws on stderr so the picked ids can be piped from stdout
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithOutput(stderr))
	model.SetProgram(p)

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Fprintf(stderr, "Error running program: %v\n", err)
		return 1
	}
	log.Printf("UI exited normally")

	return finish(model, stdout)
}

// finish prints the picked ids, one per line, when the user quit with q
func finish(model *ui.Model, stdout io.Writer) int {
	if !model.Done() || model.Aborted() {
		return exitAborted
	}
	for _, id := range model.Selected() {
		fmt.Fprintln(stdout, id)
	}
	return 0
}

// loadConfig reads the table from path, or from the default location when
// no path was given
func loadConfig(configSvc config.ConfigService, path string) (*config.Config, error) {
	if path == "" {
		return configSvc.Load()
	}
	cfg, err := configSvc.LoadFromPath(path)
	if errors.Is(err, config.ErrNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return cfg, nil
}

func describeSource(path string) string {
	if path == "" {
		return "default location"
	}
	return path
}
