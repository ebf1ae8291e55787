package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"patternmap/internal/adapters/source"
	"patternmap/internal/application"
	"patternmap/internal/application/commands"
	"patternmap/internal/config"
	"patternmap/internal/logging"
)

var (
	datasetPath string
	configPath  string
	logLevel    string

	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "patternmap-cli",
	Short: "CLI for exploring the agentic pattern graph",
	Long: `patternmap-cli is a command-line interface for the agentic pattern graph.

It lists patterns and layers, shows the detail of a pattern, searches the
catalog, applies a view (selection, layer filters and search), exports the
graph as a standalone HTML page, serves it over HTTP and manages the local
SQLite catalog.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		// Flags take precedence over the environment and the config file
		if cmd.Flags().Changed("dataset") {
			loaded.Dataset.Path = datasetPath
		}
		if cmd.Flags().Changed("log-level") {
			loaded.Log.Level = logLevel
		}

		l, err := logging.New(loaded.Log.Level, loaded.Log.Format, os.Stderr)
		if err != nil {
			return err
		}
		cfg, logger = loaded, l
		cmd.SetContext(logging.WithLogger(cmd.Context(), l))
		return nil
	},
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&datasetPath, "dataset", "d", config.DatasetPath(), "catalog to explore (.json, .hcl or .db; empty for the built-in sample)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
}

// loadCatalog opens the configured dataset
func loadCatalog(ctx context.Context) (*application.Catalog, error) {
	src, err := source.ForPath(cfg.Dataset.Path)
	if err != nil {
		return nil, err
	}
	cat, err := commands.NewLoadCatalogCommand(src).Execute(ctx)
	if err != nil {
		return nil, err
	}
	logger.Debug("catalog_loaded", "source", src.Describe(), "patterns", len(cat.Data.Patterns), "links", len(cat.Data.Links))
	return cat, nil
}
