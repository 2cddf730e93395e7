package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

var ErrProfileNotFound = errors.New("profile not found")

// Profile names an installation and its timezone.
type Profile struct {
	ID        int64
	Name      string
	Timezone  string
	IsActive  bool
	CreatedAt time.Time
}

// ProfileStore provides profile operations.
type ProfileStore interface {
	GetActive(ctx context.Context) (*Profile, error)
	List(ctx context.Context) ([]*Profile, error)
	Create(ctx context.Context, p *Profile) error
	SetActive(ctx context.Context, id int64) error
}

// Profiles returns a ProfileStore for this database.
func (db *DB) Profiles() ProfileStore {
	return &profileStore{db: db}
}

type profileStore struct {
	db *DB
}

const profileColumns = `id, name, timezone, is_active, created_at`

func scanProfile(row interface{ Scan(...any) error }) (*Profile, error) {
	p := &Profile{}
	var createdAt string
	if err := row.Scan(&p.ID, &p.Name, &p.Timezone, &p.IsActive, &createdAt); err != nil {
		return nil, err
	}
	p.CreatedAt, _ = time.Parse(time.DateTime, createdAt)
	return p, nil
}

func (s *profileStore) GetActive(ctx context.Context) (*Profile, error) {
	p, err := scanProfile(s.db.QueryRowContext(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE is_active = 1 LIMIT 1`))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	return p, err
}

func (s *profileStore) List(ctx context.Context) ([]*Profile, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+profileColumns+` FROM profiles ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var profiles []*Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (s *profileStore) Create(ctx context.Context, p *Profile) error {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO profiles (name, timezone, is_active)
		VALUES (?, ?, ?)
	`, p.Name, p.Timezone, p.IsActive)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

func (s *profileStore) SetActive(ctx context.Context, id int64) error {
	return s.db.Tx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `UPDATE profiles SET is_active = 0`); err != nil {
			return err
		}
		result, err := tx.ExecContext(ctx, `UPDATE profiles SET is_active = 1 WHERE id = ?`, id)
		if err != nil {
			return err
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrProfileNotFound
		}
		return nil
	})
}
