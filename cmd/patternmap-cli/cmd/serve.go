package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"patternmap/internal/adapters/httpapi"
	"patternmap/internal/adapters/htmlview"
	"patternmap/internal/ui"
)

var (
	serveAddr  string
	serveTitle string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the live graph page and its JSON API",
	Long: `Serve the pattern graph over HTTP. The page asks the server for each
new view, so search and layer filters run on the server.

Endpoints:
  GET /                           graph page (select, layer, q parameters)
  GET /api/view                   flags and detail for a view
  GET /api/layers                 legend with pattern counts
  GET /api/patterns               patterns, optionally ?layer=a,b
  GET /api/patterns/{id}          detail as JSON
  GET /api/patterns/{id}/detail   detail as an HTML fragment
  GET /metrics                    Prometheus metrics
  GET /v1/health                  health check`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cat, err := loadCatalog(ctx)
		if err != nil {
			return err
		}

		addr := cfg.Server.Addr
		if cmd.Flags().Changed("addr") {
			addr = serveAddr
		}
		srv := httpapi.NewServer(cat, htmlview.NewRenderer(), cfg.PageOptions(serveTitle), addr, logger)

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.Start()
		}()
		ui.Info.Fprintf(cmd.OutOrStdout(), "Serving on http://%s\n", srv.Addr())

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Stop(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", httpapi.DefaultAddr, "listen address")
	serveCmd.Flags().StringVar(&serveTitle, "title", "Agentic Pattern Map", "page title")
	rootCmd.AddCommand(serveCmd)
}
