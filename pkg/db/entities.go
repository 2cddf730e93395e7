package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/urmzd/homeview/pkg/entity"
)

// Entities returns an entity.Store backed by this database.
func (db *DB) Entities() entity.Store {
	return &entityStore{db: db}
}

type entityStore struct {
	db *DB
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

const entityColumns = `kind, id, name, attributes, updated_at`

func scanEntity(row interface{ Scan(...any) error }) (*entity.Entity, error) {
	e := &entity.Entity{}
	var attrs sql.NullString
	var updatedAt string
	if err := row.Scan(&e.Kind, &e.ID, &e.Name, &attrs, &updatedAt); err != nil {
		return nil, err
	}
	if attrs.Valid {
		e.Attributes = entity.DecodeAttributes([]byte(attrs.String))
	}
	e.UpdatedAt, _ = time.Parse(time.DateTime, updatedAt)
	return e, nil
}

func (s *entityStore) List(ctx context.Context, kind entity.Kind) ([]entity.Entity, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+entityColumns+` FROM entities WHERE kind = ? ORDER BY id`, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list %ss: %w", kind, err)
	}
	defer func() { _ = rows.Close() }()

	entities := []entity.Entity{}
	for rows.Next() {
		e, err := scanEntity(rows)
		if err != nil {
			return nil, err
		}
		entities = append(entities, *e)
	}
	return entities, rows.Err()
}

func (s *entityStore) Get(ctx context.Context, kind entity.Kind, id string) (*entity.Entity, error) {
	e, err := scanEntity(s.db.QueryRowContext(ctx,
		`SELECT `+entityColumns+` FROM entities WHERE kind = ? AND id = ?`, kind, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s %q: %w", kind, id, err)
	}
	return e, nil
}

func (s *entityStore) Count(ctx context.Context, kind entity.Kind) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entities WHERE kind = ?`, kind).Scan(&n)
	return n, err
}

func (s *entityStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *entityStore) Put(ctx context.Context, e *entity.Entity) error {
	return putEntity(ctx, s.db, e)
}

func (s *entityStore) Delete(ctx context.Context, kind entity.Kind, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM entities WHERE kind = ? AND id = ?`, kind, id)
	if err != nil {
		return fmt.Errorf("failed to delete %s %q: %w", kind, id, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return entity.ErrNotFound
	}
	return nil
}

// putEntity upserts e. A nil attribute list is stored as NULL so that the
// missing collection survives a round trip.
func putEntity(ctx context.Context, ex execer, e *entity.Entity) error {
	if e.ID == "" {
		return fmt.Errorf("%w: entity id is required", entity.ErrValidation)
	}
	// Ids end up as one segment of the detail route path.
	if strings.Contains(e.ID, "/") || e.ID == "." || e.ID == ".." {
		return fmt.Errorf("%w: entity id %q must be a single path segment", entity.ErrValidation, e.ID)
	}
	if _, err := entity.ParseKind(string(e.Kind)); err != nil {
		return fmt.Errorf("%w: %v", entity.ErrValidation, err)
	}

	var attrs sql.NullString
	if e.Attributes != nil {
		b, err := json.Marshal(e.Attributes)
		if err != nil {
			return fmt.Errorf("failed to encode attributes: %w", err)
		}
		attrs = sql.NullString{String: string(b), Valid: true}
	}

	now := time.Now().UTC()
	_, err := ex.ExecContext(ctx, `
		INSERT INTO entities (kind, id, name, attributes, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (kind, id) DO UPDATE SET
			name = excluded.name,
			attributes = excluded.attributes,
			updated_at = excluded.updated_at
	`, e.Kind, e.ID, e.Name, attrs, now.Format(time.DateTime))
	if err != nil {
		return fmt.Errorf("failed to store %s %q: %w", e.Kind, e.ID, err)
	}
	e.UpdatedAt = now.Truncate(time.Second)
	return nil
}
