package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"patternmap/internal/adapters/source"
	"patternmap/internal/adapters/sqlite"
	"patternmap/internal/application/commands"
	"patternmap/internal/ports"
	"patternmap/internal/ui"
)

var catalogDB string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the local SQLite catalog",
	Long: `Import a dataset into the local SQLite catalog and inspect it.

An imported catalog can be explored with --dataset <path to the .db file>.

Examples:
  patternmap-cli catalog import patterns.json
  patternmap-cli catalog import patterns.hcl --db ./catalog.db
  patternmap-cli catalog info`,
}

var catalogImportCmd = &cobra.Command{
	Use:   "import [dataset]",
	Short: "Replace the stored catalog with a dataset (default: the built-in sample)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		src, err := source.ForPath(path)
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		info, err := commands.NewImportCatalogCommand(store, src).Execute(cmd.Context())
		if err != nil {
			return err
		}
		logger.Info("catalog_imported", "source", info.Source, "db", info.Path)
		ui.Good.Fprintf(cmd.OutOrStdout(), "%s Imported %s\n", ui.StatusIcon(true), info.Source)
		printInfo(cmd.OutOrStdout(), info)
		return nil
	},
}

var catalogInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show what the stored catalog holds",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		info, err := commands.NewCatalogInfoCommand(store).Execute(cmd.Context())
		if err != nil {
			return err
		}
		printInfo(cmd.OutOrStdout(), info)
		return nil
	},
}

func openStore() (*sqlite.Store, error) {
	path := cfg.Catalog.Path
	if catalogDB != "" {
		path = catalogDB
	}
	if path == "" {
		path = sqlite.DefaultPath()
	}

	store := sqlite.NewStore()
	if err := store.Open(path); err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	return store, nil
}

func printInfo(w io.Writer, info *ports.CatalogInfo) {
	imported := "never"
	if !info.ImportedAt.IsZero() {
		imported = info.ImportedAt.Local().Format(time.DateTime)
	}
	source := info.Source
	if source == "" {
		source = "none"
	}
	ui.Table(w, []string{"FIELD", "VALUE"}, [][]string{
		{"path", info.Path},
		{"source", source},
		{"imported", imported},
		{"patterns", fmt.Sprint(info.Patterns)},
		{"links", fmt.Sprint(info.Links)},
		{"layers", fmt.Sprint(info.Layers)},
	})
}

func init() {
	catalogCmd.PersistentFlags().StringVar(&catalogDB, "db", "", "catalog database (default "+sqlite.DefaultPath()+")")
	catalogCmd.AddCommand(catalogImportCmd)
	catalogCmd.AddCommand(catalogInfoCmd)
	rootCmd.AddCommand(catalogCmd)
}
