package db

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/rs/zerolog/log"
)

var (
	ErrNoActiveProfile = errors.New("no active profile found")
	ErrInvalidBasePath = errors.New("invalid base path")
)

// Config is the server configuration stored for the active profile.
type Config struct {
	Profile   *Profile
	APIServer *APIServer
}

// APIAddress returns the API server listen address.
func (c *Config) APIAddress() string {
	if c.APIServer == nil {
		return "0.0.0.0:8080"
	}
	return c.APIServer.Address()
}

// BasePath returns the path the page routes are mounted under.
func (c *Config) BasePath() string {
	if c.APIServer == nil || c.APIServer.BasePath == "" {
		return "/"
	}
	return c.APIServer.BasePath
}

// Timezone returns the profile timezone.
func (c *Config) Timezone() string {
	if c.Profile == nil {
		return "UTC"
	}
	return c.Profile.Timezone
}

// ActiveConfig loads the complete configuration for the active profile.
func (db *DB) ActiveConfig(ctx context.Context) (*Config, error) {
	profile, err := db.Profiles().GetActive(ctx)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return nil, ErrNoActiveProfile
		}
		return nil, fmt.Errorf("failed to get active profile: %w", err)
	}

	config := &Config{
		Profile: profile,
	}

	apiServer, err := db.APIServers().Get(ctx, profile.ID)
	if err != nil && !errors.Is(err, ErrAPIServerNotFound) {
		return nil, fmt.Errorf("failed to get API server config: %w", err)
	}
	config.APIServer = apiServer

	return config, nil
}

// Settings override the stored configuration at startup. Empty fields keep
// what is stored.
type Settings struct {
	// Profile selects the active profile by name, creating it if needed.
	Profile string
	// BasePath is persisted on the active profile's API server.
	BasePath string
}

// Apply persists settings onto the database.
func (db *DB) Apply(ctx context.Context, s Settings) error {
	if s.Profile != "" {
		if err := db.activateProfile(ctx, s.Profile); err != nil {
			return err
		}
	}
	if s.BasePath != "" {
		if err := db.setBasePath(ctx, s.BasePath); err != nil {
			return err
		}
	}
	return nil
}

func (db *DB) activateProfile(ctx context.Context, name string) error {
	profiles, err := db.Profiles().List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}

	var profile *Profile
	for _, p := range profiles {
		if p.Name == name {
			profile = p
			break
		}
	}
	if profile == nil {
		profile = &Profile{Name: name, Timezone: detectTimezone()}
		if err := db.Profiles().Create(ctx, profile); err != nil {
			return err
		}
		server := &APIServer{ProfileID: profile.ID, Host: "0.0.0.0", Port: 8080}
		if err := db.APIServers().Create(ctx, server); err != nil {
			return err
		}
		log.Info().Str("profile", name).Msg("Profile created")
	}
	if profile.IsActive {
		return nil
	}

	if err := db.Profiles().SetActive(ctx, profile.ID); err != nil {
		return fmt.Errorf("failed to activate profile %q: %w", name, err)
	}
	log.Info().Str("profile", name).Msg("Profile activated")
	return nil
}

func (db *DB) setBasePath(ctx context.Context, basePath string) error {
	basePath, err := NormalizeBasePath(basePath)
	if err != nil {
		return err
	}

	profile, err := db.Profiles().GetActive(ctx)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return ErrNoActiveProfile
		}
		return err
	}

	server, err := db.APIServers().Get(ctx, profile.ID)
	switch {
	case errors.Is(err, ErrAPIServerNotFound):
		server = &APIServer{ProfileID: profile.ID, Host: "0.0.0.0", Port: 8080, BasePath: basePath}
		return db.APIServers().Create(ctx, server)
	case err != nil:
		return fmt.Errorf("failed to get API server config: %w", err)
	case server.BasePath == basePath:
		return nil
	}

	server.BasePath = basePath
	if err := db.APIServers().Update(ctx, server); err != nil {
		return fmt.Errorf("failed to update base path: %w", err)
	}
	log.Info().Str("base_path", basePath).Msg("Base path updated")
	return nil
}

// NormalizeBasePath cleans p into an absolute path without a trailing
// slash. Route pattern characters are rejected.
func NormalizeBasePath(p string) (string, error) {
	p = strings.TrimSpace(p)
	if p == "" {
		return "/", nil
	}
	if strings.ContainsAny(p, ":*?#") {
		return "", fmt.Errorf("%w: %q", ErrInvalidBasePath, p)
	}
	return path.Clean("/" + p), nil
}
