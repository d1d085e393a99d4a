package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/midas/internal/database"
	"github.com/MrJamesThe3rd/midas/internal/setting"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectColumns = `id, code, description, value, active, created_at, updated_at`

func scanSetting(s scanner) (*setting.Setting, error) {
	var st setting.Setting

	if err := s.Scan(&st.ID, &st.Code, &st.Description, &st.Value, &st.Active, &st.CreatedAt, &st.UpdatedAt); err != nil {
		return nil, err
	}

	return &st, nil
}

func (s *Store) Create(ctx context.Context, st *setting.Setting) error {
	query := `
		INSERT INTO settings (code, description, value, active, created_at, updated_at)
		VALUES ($1, $2, $3, TRUE, NOW(), NOW())
		RETURNING id, active, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query, st.Code, st.Description, st.Value).
		Scan(&st.ID, &st.Active, &st.CreatedAt, &st.UpdatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return setting.ErrDuplicate
		}

		return fmt.Errorf("creating setting: %w", err)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*setting.Setting, error) {
	return s.getOne(ctx, `WHERE id = $1 AND active`, id)
}

func (s *Store) GetByCode(ctx context.Context, code string) (*setting.Setting, error) {
	return s.getOne(ctx, `WHERE code = $1 AND active`, code)
}

func (s *Store) getOne(ctx context.Context, where string, arg any) (*setting.Setting, error) {
	st, err := scanSetting(s.db.QueryRowContext(ctx, `SELECT `+selectColumns+` FROM settings `+where, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, setting.ErrNotFound
		}

		return nil, fmt.Errorf("getting setting: %w", err)
	}

	return st, nil
}

func (s *Store) List(ctx context.Context) ([]*setting.Setting, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+selectColumns+` FROM settings WHERE active ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("listing settings: %w", err)
	}
	defer rows.Close()

	var settings []*setting.Setting

	for rows.Next() {
		st, err := scanSetting(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning setting: %w", err)
		}

		settings = append(settings, st)
	}

	return settings, rows.Err()
}

func (s *Store) Update(ctx context.Context, st *setting.Setting) error {
	query := `
		UPDATE settings
		SET code = $1, description = $2, value = $3, updated_at = NOW()
		WHERE id = $4 AND active
		RETURNING updated_at
	`

	err := s.db.QueryRowContext(ctx, query, st.Code, st.Description, st.Value, st.ID).Scan(&st.UpdatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return setting.ErrNotFound
		case database.IsUniqueViolation(err):
			return setting.ErrDuplicate
		}

		return fmt.Errorf("updating setting: %w", err)
	}

	return nil
}

func (s *Store) Deactivate(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `UPDATE settings SET active = FALSE, updated_at = NOW() WHERE id = $1 AND active`, id)
	if err != nil {
		return fmt.Errorf("deactivating setting: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return setting.ErrNotFound
	}

	return nil
}
