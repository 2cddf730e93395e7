package db

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// Bootstrap creates the default profile and server config on first run.
// It is a no-op once any profile exists.
func (db *DB) Bootstrap(ctx context.Context) error {
	needed, err := db.NeedsBootstrap(ctx)
	if err != nil {
		return fmt.Errorf("failed to check profiles: %w", err)
	}
	if !needed {
		return nil
	}

	profile := &Profile{Name: "default", Timezone: detectTimezone(), IsActive: true}
	if err := db.Profiles().Create(ctx, profile); err != nil {
		return fmt.Errorf("failed to create default profile: %w", err)
	}

	server := &APIServer{ProfileID: profile.ID, Host: "0.0.0.0", Port: 8080, BasePath: "/"}
	if err := db.APIServers().Create(ctx, server); err != nil {
		return fmt.Errorf("failed to create default API server: %w", err)
	}

	return nil
}

// NeedsBootstrap returns true if the database needs initial setup.
func (db *DB) NeedsBootstrap(ctx context.Context) (bool, error) {
	var count int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM profiles`).Scan(&count)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// detectTimezone attempts to detect the system timezone.
func detectTimezone() string {
	if tz := os.Getenv("TZ"); tz != "" {
		return tz
	}

	switch runtime.GOOS {
	case "darwin":
		out, err := exec.Command("systemsetup", "-gettimezone").Output()
		if err == nil {
			parts := strings.SplitN(string(out), ": ", 2)
			if len(parts) == 2 {
				return strings.TrimSpace(parts[1])
			}
		}
	case "linux":
		if data, err := os.ReadFile("/etc/timezone"); err == nil {
			if tz := strings.TrimSpace(string(data)); tz != "" {
				return tz
			}
		}
	}

	// /etc/localtime links into the zoneinfo tree on both platforms
	if link, err := os.Readlink("/etc/localtime"); err == nil {
		if idx := strings.Index(link, "zoneinfo/"); idx != -1 {
			return link[idx+len("zoneinfo/"):]
		}
	}

	return "UTC"
}
