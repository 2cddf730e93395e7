package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/urmzd/homeview/pkg/config"
	"github.com/urmzd/homeview/pkg/db"
	"github.com/urmzd/homeview/pkg/entity"
	homeviewmcp "github.com/urmzd/homeview/pkg/mcp"
)

func main() {
	env, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Parse flags
	dbPath := flag.String("db", env.DBPath, "Path to database file (default: ~/.config/homeview/homeview.db)")
	profile := flag.String("profile", env.Profile, "Profile to activate, created if missing")
	basePath := flag.String("base-path", env.BasePath, "Path the pages are mounted under (stored in the database)")
	flag.Parse()

	// Logging must go to stderr, stdout is the MCP transport
	if err := env.SetupLogging(os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx := context.Background()

	var source entity.Source = entity.NewNullSource()
	hrefBase := "/"

	database, cfg, err := db.Setup(ctx, *dbPath, db.Settings{
		Profile:  *profile,
		BasePath: *basePath,
	})
	if err != nil {
		log.Warn().Err(err).Msg("Database unavailable, using null source")
	} else {
		defer func() {
			if err := database.Close(); err != nil {
				log.Error().Err(err).Msg("Failed to close database")
			}
		}()
		source = database.Entities()
		hrefBase = cfg.BasePath()
	}

	mcpServer := homeviewmcp.NewServer(source, hrefBase)

	log.Info().Str("base_path", hrefBase).Msg("Starting MCP server on stdio")

	if err := mcpServer.ServeStdio(); err != nil {
		log.Fatal().Err(err).Msg("MCP server failed")
	}
}
