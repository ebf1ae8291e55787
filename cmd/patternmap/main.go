package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"patternmap/internal/adapters/source"
	"patternmap/internal/adapters/tui"
	"patternmap/internal/adapters/tui/views"
	"patternmap/internal/application/commands"
	"patternmap/internal/config"
	"patternmap/internal/logging"
)

func main() {
	datasetFlag := flag.String("dataset", config.DatasetPath(), "catalog to explore (.json, .hcl or .db; empty for the built-in sample)")
	configFlag := flag.String("config", "", "config file (default "+config.DefaultPath()+")")
	flag.Parse()

	if err := run(*configFlag, *datasetFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, datasetPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "dataset" {
			cfg.Dataset.Path = datasetPath
		}
	})

	// The terminal belongs to the UI; logs go to a file or nowhere
	logger := logging.Discard()
	if path := config.LogPath(); path != "" {
		f, err := tea.LogToFile(path, "patternmap")
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		if logger, err = logging.New(cfg.Log.Level, cfg.Log.Format, f); err != nil {
			return err
		}
	}
	slog.SetDefault(logger)

	src, err := source.ForPath(cfg.Dataset.Path)
	if err != nil {
		return err
	}
	cat, err := commands.NewLoadCatalogCommand(src).Execute(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load pattern data: %w", err)
	}
	logger.Info("catalog_loaded", "source", src.Describe(), "patterns", len(cat.Data.Patterns))

	// Create and run TUI app
	app := tui.NewApp(cat, views.ExplorerOptions{
		SearchDebounce: cfg.UI.SearchDebounce.Duration,
		ResizeDebounce: cfg.UI.ResizeDebounce.Duration,
		Logger:         logger,
	})

	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
