package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"patternmap/internal/application/commands"
	"patternmap/internal/ui"
)

var listLayers []string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the patterns of the catalog",
	Long: `List every pattern, or only the patterns of the given layers.

Examples:
  patternmap-cli list
  patternmap-cli list --layer orchestration,safety`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cat, err := loadCatalog(ctx)
		if err != nil {
			return err
		}

		patterns, err := commands.NewListPatternsCommand(cat, listLayers).Execute(ctx)
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(patterns))
		for _, p := range patterns {
			l, _ := cat.Data.Layer(p.Layer)
			rows = append(rows, []string{p.ShortID, p.Label, ui.Swatch(l.Color) + " " + cat.Data.LayerName(p.Layer)})
		}
		out := cmd.OutOrStdout()
		ui.Table(out, []string{"ID", "PATTERN", "LAYER"}, rows)
		ui.Subtle.Fprintf(out, "\n%d patterns\n", len(patterns))
		return nil
	},
}

var layersCmd = &cobra.Command{
	Use:   "layers",
	Short: "List the layers of the legend",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cat, err := loadCatalog(ctx)
		if err != nil {
			return err
		}

		entries, err := commands.NewListLayersCommand(cat).Execute(ctx)
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, []string{e.Key, e.Name, strconv.Itoa(e.Count), ui.Swatch(e.Color) + " " + e.Color})
		}
		ui.Table(cmd.OutOrStdout(), []string{"KEY", "NAME", "PATTERNS", "COLOR"}, rows)
		return nil
	},
}

func init() {
	listCmd.Flags().StringSliceVarP(&listLayers, "layer", "l", nil, "only patterns of these layers")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(layersCmd)
}
