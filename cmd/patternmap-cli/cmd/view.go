package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"patternmap/internal/application"
	"patternmap/internal/application/commands"
	"patternmap/internal/ui"
)

// viewFlags are the three view inputs shared by view and export
type viewFlags struct {
	selectID string
	layers   []string
	query    string
}

func (f *viewFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.selectID, "select", "s", "", "pattern to select")
	cmd.Flags().StringSliceVarP(&f.layers, "layer", "l", nil, "active layer filters")
	cmd.Flags().StringVarP(&f.query, "query", "q", "", "search text")
}

func (f *viewFlags) command(cat *application.Catalog) *commands.ViewCommand {
	return commands.NewViewCommand(cat, f.selectID, f.layers, f.query)
}

var viewOpts viewFlags

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Apply a selection, layer filters and a search, and print the result",
	Long: `Rebuild a view from its inputs and print which patterns are visible,
selected or dimmed, and which links touch the selection.

Layer filters apply first, then the search, then the selection.

Examples:
  patternmap-cli view --select RT
  patternmap-cli view --layer safety --query guard`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cat, err := loadCatalog(ctx)
		if err != nil {
			return err
		}

		res, err := viewOpts.command(cat).Execute(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		state := res.State
		ui.Header(out, "View")
		fmt.Fprintf(out, "selected: %s  layers: %s  query: %q\n\n",
			orNone(state.SelectedID), orNone(strings.Join(state.ActiveLayers, ",")), state.SearchQuery)

		var rows [][]string
		for i, p := range cat.Data.Patterns {
			flags := res.Nodes[i]
			if !flags.Visible {
				continue
			}
			mark := ""
			switch {
			case flags.Selected:
				mark = ui.Good.Sprint("*")
			case flags.Dimmed:
				mark = ui.Subtle.Sprint(".")
			}
			rows = append(rows, []string{p.ShortID, p.Label, cat.Data.LayerName(p.Layer), mark})
		}
		ui.Table(out, []string{"ID", "PATTERN", "LAYER", ""}, rows)

		nodes, edges := res.Engine.VisibleCount()
		ui.Subtle.Fprintf(out, "\nvisible: %d patterns, %d links\n", nodes, edges)

		if state.SelectedID == "" {
			return nil
		}
		fmt.Fprintln(out)
		ui.Info.Fprintln(out, "Highlighted links")
		for i, l := range cat.Data.Links {
			e := res.Edges[i]
			if e.Highlighted && e.Visible {
				fmt.Fprintf(out, "  %s → %s %s\n", l.Source, l.Target, ui.Subtle.Sprintf("(%.2f)", l.Weight))
			}
		}
		return nil
	},
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}

func layerColor(cat *application.Catalog, key string) string {
	l, _ := cat.Data.Layer(key)
	return l.Color
}

func init() {
	viewOpts.register(viewCmd)
	rootCmd.AddCommand(viewCmd)
}
