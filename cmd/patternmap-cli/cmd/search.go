package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"patternmap/internal/application/commands"
	"patternmap/internal/ui"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the catalog",
	Long: `Search for patterns whose label, id or aliases contain the query,
ignoring case.

Results are ranked by relevance using fuzzy matching.

Examples:
  patternmap-cli search routing
  patternmap-cli search "tool use"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		ctx := cmd.Context()
		cat, err := loadCatalog(ctx)
		if err != nil {
			return err
		}

		results, err := commands.NewSearchCommand(cat, query).Execute(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(results) == 0 {
			ui.Warn.Fprintln(out, "No results found")
			return nil
		}

		for _, r := range results {
			fmt.Fprintf(out, "%s %-4s %s", ui.Swatch(layerColor(cat, r.Pattern.Layer)), r.Pattern.ShortID, r.Pattern.Label)
			if r.MatchedText != r.Pattern.Label {
				ui.Subtle.Fprintf(out, "  (%s)", r.MatchedText)
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
