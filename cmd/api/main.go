package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/urmzd/homeview/pkg/api"
	"github.com/urmzd/homeview/pkg/api/handlers"
	"github.com/urmzd/homeview/pkg/config"
	"github.com/urmzd/homeview/pkg/db"
	"github.com/urmzd/homeview/pkg/entity"
	"github.com/urmzd/homeview/pkg/entity/schema"

	_ "github.com/urmzd/homeview/docs"
)

// @title           Homeview API
// @version         1.0
// @description     Browse devices, groups and adapters and read their attribute values

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https

const shutdownTimeout = 10 * time.Second

func main() {
	env, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Parse flags; environment values are the defaults
	dbPath := flag.String("db", env.DBPath, "Path to database file (default: ~/.config/homeview/homeview.db)")
	seedFile := flag.String("seed", env.SeedFile, "YAML entity fixture imported at startup")
	profile := flag.String("profile", env.Profile, "Profile to activate, created if missing")
	basePath := flag.String("base-path", env.BasePath, "Path the pages are mounted under (stored in the database)")
	logLevel := flag.String("log-level", env.LogLevel, "Log level")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s:\n", os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintln(flag.CommandLine.Output())
		fmt.Fprint(flag.CommandLine.Output(), config.Usage())
	}
	flag.Parse()

	env.LogLevel = *logLevel
	if err := env.SetupLogging(os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Open, migrate and bootstrap the database, then persist overrides
	database, cfg, err := db.Setup(ctx, *dbPath, db.Settings{
		Profile:  *profile,
		BasePath: *basePath,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set up database")
	}
	defer func() {
		if err := database.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database")
		}
	}()

	log.Info().
		Str("profile", cfg.Profile.Name).
		Str("timezone", cfg.Timezone()).
		Str("api_address", cfg.APIAddress()).
		Str("base_path", cfg.BasePath()).
		Msg("Configuration loaded")

	if *seedFile != "" {
		entities, err := db.LoadSeed(*seedFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", *seedFile).Msg("Failed to load seed file")
		}
		if err := database.ImportSeed(ctx, entities); err != nil {
			log.Fatal().Err(err).Str("file", *seedFile).Msg("Failed to import seed file")
		}
		log.Info().Int("entities", len(entities)).Str("file", *seedFile).Msg("Seed imported")
	}

	broker := entity.NewBroker(16)
	defer broker.Close()

	validator := schema.NewValidator()

	router, err := api.NewRouter(database.Entities(), broker, validator, api.Options{
		BasePath: cfg.BasePath(),
		Site: handlers.Site{
			Profile:  cfg.Profile.Name,
			Timezone: cfg.Timezone(),
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create router")
	}

	srv := &http.Server{
		Addr:              cfg.APIAddress(),
		Handler:           router.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	// Ends open event streams so Shutdown does not wait on them
	srv.RegisterOnShutdown(broker.Close)

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("address", srv.Addr).Msg("Starting API server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("Server failed")
		}
	case <-ctx.Done():
		log.Info().Msg("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Graceful shutdown failed")
		}
	}
}
