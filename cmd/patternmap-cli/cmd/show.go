package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"patternmap/internal/application"
	"patternmap/internal/application/commands"
	"patternmap/internal/ui"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show the detail of a pattern",
	Long: `Show the detail panel of a pattern: badges, graph metrics, the
descriptive sections and its outgoing and incoming connections.

The id may be the short id in any case or the long id.

Examples:
  patternmap-cli show RT
  patternmap-cli show smart-routing --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cat, err := loadCatalog(ctx)
		if err != nil {
			return err
		}

		d, err := commands.NewShowPatternCommand(cat, args[0]).Execute(ctx)
		if err != nil {
			return err
		}

		if showJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(d)
		}
		printDetail(cmd.OutOrStdout(), d)
		return nil
	},
}

func printDetail(w io.Writer, d *application.Detail) {
	ui.Header(w, d.ShortID+"  "+d.Label)
	if d.Description != "" {
		fmt.Fprintln(w, d.Description)
	}
	fmt.Fprintln(w)

	fmt.Fprint(w, ui.Swatch(d.Layer.Color))
	for _, b := range d.Badges {
		fmt.Fprintf(w, " [%s]", b)
	}
	fmt.Fprintln(w)

	section(w, "Graph Metrics")
	rows := make([][]string, 0, len(d.Metrics))
	for _, m := range d.Metrics {
		rows = append(rows, []string{m.Label, m.Value})
	}
	ui.Table(w, []string{"METRIC", "VALUE"}, rows)

	for _, s := range d.Sections {
		section(w, s.Title)
		if !s.IsList() {
			fmt.Fprintf(w, "  %s\n", s.Text)
			continue
		}
		for _, item := range s.Items {
			fmt.Fprintf(w, "  • %s\n", item)
		}
	}

	if !d.HasConnections() {
		return
	}
	section(w, "Connections")
	printConnections(w, "Outgoing", "→", d.Outgoing)
	printConnections(w, "Incoming", "←", d.Incoming)
}

func section(w io.Writer, title string) {
	fmt.Fprintln(w)
	ui.Info.Fprintln(w, title)
}

func printConnections(w io.Writer, title, arrow string, rows []application.ConnectionRow) {
	if len(rows) == 0 {
		return
	}
	fmt.Fprintf(w, "  %s (%d)\n", title, len(rows))
	for _, r := range rows {
		fmt.Fprintf(w, "    %s %-4s %s %s\n", arrow, r.ShortID, r.Label, ui.Subtle.Sprintf("(%s)", r.WeightText()))
	}
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "print the detail as JSON")
	rootCmd.AddCommand(showCmd)
}
