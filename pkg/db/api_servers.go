package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"strconv"
)

var ErrAPIServerNotFound = errors.New("api server config not found")

// APIServer holds the HTTP listen address and the path pages are mounted under.
type APIServer struct {
	ID        int64
	ProfileID int64
	Host      string
	Port      int
	BasePath  string
}

// Address returns the API server listen address (host:port).
func (a *APIServer) Address() string {
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// APIServerStore provides API server config operations.
type APIServerStore interface {
	Get(ctx context.Context, profileID int64) (*APIServer, error)
	Create(ctx context.Context, a *APIServer) error
	Update(ctx context.Context, a *APIServer) error
}

// APIServers returns an APIServerStore for this database.
func (db *DB) APIServers() APIServerStore {
	return &apiServerStore{db: db}
}

type apiServerStore struct {
	db *DB
}

func (s *apiServerStore) Get(ctx context.Context, profileID int64) (*APIServer, error) {
	a := &APIServer{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, profile_id, host, port, base_path
		FROM api_servers WHERE profile_id = ?
	`, profileID).Scan(&a.ID, &a.ProfileID, &a.Host, &a.Port, &a.BasePath)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAPIServerNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (s *apiServerStore) Create(ctx context.Context, a *APIServer) error {
	if a.BasePath == "" {
		a.BasePath = "/"
	}
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO api_servers (profile_id, host, port, base_path)
		VALUES (?, ?, ?, ?)
	`, a.ProfileID, a.Host, a.Port, a.BasePath)
	if err != nil {
		return fmt.Errorf("failed to create API server config: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = id
	return nil
}

func (s *apiServerStore) Update(ctx context.Context, a *APIServer) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE api_servers SET host = ?, port = ?, base_path = ?
		WHERE profile_id = ?
	`, a.Host, a.Port, a.BasePath, a.ProfileID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrAPIServerNotFound
	}
	return nil
}
