package cmd

import (
	"github.com/spf13/cobra"

	"patternmap/internal/adapters/browser"
	"patternmap/internal/adapters/htmlview"
	"patternmap/internal/application/commands"
	"patternmap/internal/ui"
)

var (
	exportOpts   viewFlags
	exportOutput string
	exportOpen   bool
	exportTitle  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the graph as a standalone HTML page",
	Long: `Render the pattern graph as a single HTML page with an interactive
force layout. The page carries the view for every possible selection, so
clicking a pattern works without a server.

The --select, --layer and --query flags set the initial view.

Examples:
  patternmap-cli export -o graph.html --open
  patternmap-cli export --select RT --layer orchestration`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cat, err := loadCatalog(ctx)
		if err != nil {
			return err
		}

		export := commands.NewExportCommand(
			exportOpts.command(cat),
			htmlview.NewRenderer(),
			browser.NewOpener(),
			exportOutput,
			cfg.PageOptions(exportTitle),
			exportOpen,
		)
		path, err := export.Execute(ctx)
		if path != "" {
			ui.Good.Fprintf(cmd.OutOrStdout(), "%s Wrote %s\n", ui.StatusIcon(true), path)
		}
		return err
	},
}

func init() {
	exportOpts.register(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "patternmap.html", "page to write")
	exportCmd.Flags().BoolVar(&exportOpen, "open", false, "open the page in the default browser")
	exportCmd.Flags().StringVar(&exportTitle, "title", "Agentic Pattern Map", "page title")
	rootCmd.AddCommand(exportCmd)
}
