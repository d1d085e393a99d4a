package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/midas/internal/database"
	"github.com/MrJamesThe3rd/midas/internal/user"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectColumns = `id, email, name, password_hash, staff, active, created_at, updated_at`

func (s *Store) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (email, name, password_hash, staff, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, TRUE, NOW(), NOW())
		RETURNING id, active, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query, u.Email, u.Name, u.PasswordHash, u.Staff).
		Scan(&u.ID, &u.Active, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return user.ErrEmailTaken
		}

		return fmt.Errorf("creating user: %w", err)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return s.getOne(ctx, `id = $1`, id)
}

func (s *Store) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return s.getOne(ctx, `email = $1`, email)
}

func (s *Store) getOne(ctx context.Context, cond string, arg any) (*user.User, error) {
	var u user.User

	err := s.db.QueryRowContext(ctx, `SELECT `+selectColumns+` FROM users WHERE active AND `+cond, arg).
		Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Staff, &u.Active, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, user.ErrNotFound
		}

		return nil, fmt.Errorf("getting user: %w", err)
	}

	return &u, nil
}

func (s *Store) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2 AND active`, hash, id)
	if err != nil {
		return fmt.Errorf("updating password: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return user.ErrNotFound
	}

	return nil
}
