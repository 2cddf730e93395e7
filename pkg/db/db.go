package db

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// busyTimeout is how long a writer waits for the WAL lock before failing
// with SQLITE_BUSY. Seed imports and concurrent PUTs contend for it.
const busyTimeout = 5 * time.Second

// pragmas are applied to every pooled connection.
var pragmas = []string{
	"foreign_keys(1)",
	"journal_mode(WAL)",
	fmt.Sprintf("busy_timeout(%d)", busyTimeout.Milliseconds()),
}

// DB is the homeview SQLite database.
type DB struct {
	*sql.DB
	path string
}

// Setup opens the database at path and makes it ready to serve: migrations
// are applied, a first run is bootstrapped and settings are persisted. It
// returns the resulting active configuration.
func Setup(ctx context.Context, path string, settings Settings) (*DB, *Config, error) {
	database, err := Open(path)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := database.setup(ctx, settings)
	if err != nil {
		_ = database.Close()
		return nil, nil, err
	}
	return database, cfg, nil
}

func (db *DB) setup(ctx context.Context, settings Settings) (*Config, error) {
	if err := db.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	needsBootstrap, err := db.NeedsBootstrap(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check bootstrap status: %w", err)
	}
	if needsBootstrap {
		log.Info().Msg("First run detected, bootstrapping database...")
		if err := db.Bootstrap(ctx); err != nil {
			return nil, fmt.Errorf("failed to bootstrap database: %w", err)
		}
	}

	if err := db.Apply(ctx, settings); err != nil {
		return nil, err
	}
	return db.ActiveConfig(ctx)
}

// Open opens or creates the database file. An empty path selects
// ~/.config/homeview/homeview.db and a leading ~ expands to the home
// directory. The schema is not touched; see Setup.
func Open(path string) (*DB, error) {
	path, err := resolvePath(path)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	sqlDB, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Info().Str("path", path).Msg("Database opened")
	return &DB{DB: sqlDB, path: path}, nil
}

func dsn(path string) string {
	q := url.Values{"_pragma": pragmas}
	return path + "?" + q.Encode()
}

func resolvePath(path string) (string, error) {
	switch {
	case path == "":
		dir, err := configDir()
		if err != nil {
			return "", fmt.Errorf("failed to determine database path: %w", err)
		}
		return filepath.Join(dir, "homeview", "homeview.db"), nil
	case strings.HasPrefix(path, "~"):
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to expand home directory: %w", err)
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}

// configDir honours XDG_CONFIG_HOME on linux and falls back to ~/.config.
func configDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" && runtime.GOOS == "linux" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config"), nil
}

// Path returns the database file location.
func (db *DB) Path() string {
	return db.path
}

// Tx runs fn inside a transaction, rolling back when fn fails.
func (db *DB) Tx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
