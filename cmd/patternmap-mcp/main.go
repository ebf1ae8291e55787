package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "patternmap/internal/adapters/mcp"
	"patternmap/internal/adapters/source"
	"patternmap/internal/adapters/sqlite"
	"patternmap/internal/application/commands"
	"patternmap/internal/config"
	"patternmap/internal/logging"
)

func main() {
	configFlag := flag.String("config", "", "config file (default "+config.DefaultPath()+")")
	datasetFlag := flag.String("dataset", config.DatasetPath(), "catalog to explore (.json, .hcl or .db; empty for the built-in sample)")
	dbFlag := flag.String("db", "", "catalog database for the import tools (default "+sqlite.DefaultPath()+")")
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("patternmap-mcp: %v", err)
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "dataset" {
			cfg.Dataset.Path = *datasetFlag
		}
	})

	// stdout carries the protocol
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	if err != nil {
		log.Fatalf("patternmap-mcp: %v", err)
	}

	src, err := source.ForPath(cfg.Dataset.Path)
	if err != nil {
		log.Fatalf("patternmap-mcp: %v", err)
	}
	cat, err := commands.NewLoadCatalogCommand(src).Execute(context.Background())
	if err != nil {
		log.Fatalf("patternmap-mcp: %v", err)
	}

	dbPath := *dbFlag
	if dbPath == "" {
		dbPath = cfg.Catalog.Path
	}
	if dbPath == "" {
		dbPath = sqlite.DefaultPath()
	}
	store := sqlite.NewStore()
	if err := store.Open(dbPath); err != nil {
		log.Fatalf("patternmap-mcp: %v", err)
	}
	defer store.Close()

	mcpServer := server.NewMCPServer(
		"patternmap-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, cat)
	mcpadapter.RegisterCatalogTools(mcpServer, store, source.ForPath)

	logger.Info("mcp_serving", "source", src.Describe(), "patterns", len(cat.Data.Patterns), "catalog_db", dbPath)
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Error("mcp_stopped", "error", err)
		store.Close()
		os.Exit(1)
	}
}
