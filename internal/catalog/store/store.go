package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/midas/internal/catalog"
	"github.com/MrJamesThe3rd/midas/internal/page"
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

const (
	selectCategoryColumns    = `id, code, name, description, active, created_at, updated_at`
	selectDestinationColumns = `id, name, description, active, created_at, updated_at`
)

func scanCategory(s scanner) (*catalog.Category, error) {
	var c catalog.Category

	var code string

	if err := s.Scan(&c.ID, &code, &c.Name, &c.Description, &c.Active, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}

	c.Code = catalog.Code(code)

	return &c, nil
}

func scanDestination(s scanner) (*catalog.Destination, error) {
	var d catalog.Destination

	if err := s.Scan(&d.ID, &d.Name, &d.Description, &d.Active, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, err
	}

	return &d, nil
}

// CreateCategories inserts all categories or none.
func (s *Store) CreateCategories(ctx context.Context, cats []*catalog.Category) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	stmt, err := dbTx.PrepareContext(ctx, `
		INSERT INTO categories (code, name, description, active, created_at, updated_at)
		VALUES ($1, $2, $3, TRUE, NOW(), NOW())
		RETURNING id, active, created_at, updated_at
	`)
	if err != nil {
		return fmt.Errorf("preparing category insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range cats {
		if err := stmt.QueryRowContext(ctx, c.Code, c.Name, c.Description).
			Scan(&c.ID, &c.Active, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return fmt.Errorf("creating category %q: %w", c.Name, err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing categories: %w", err)
	}

	return nil
}

func (s *Store) GetCategory(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	query := `SELECT ` + selectCategoryColumns + ` FROM categories WHERE id = $1 AND active`

	c, err := scanCategory(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalog.ErrNotFound
		}

		return nil, fmt.Errorf("getting category: %w", err)
	}

	return c, nil
}

func (s *Store) ListCategories(ctx context.Context, p page.Request) ([]*catalog.Category, int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories WHERE active`).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("counting categories: %w", err)
	}

	query := `SELECT ` + selectCategoryColumns + ` FROM categories WHERE active ORDER BY name`

	var args []any
	if !p.IsZero() {
		query += ` LIMIT $1 OFFSET $2`

		args = append(args, p.Limit(), p.Offset())
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var cats []*catalog.Category

	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning category: %w", err)
		}

		cats = append(cats, c)
	}

	return cats, count, rows.Err()
}

func (s *Store) UpdateCategory(ctx context.Context, c *catalog.Category) error {
	query := `
		UPDATE categories
		SET code = $1, name = $2, description = $3, updated_at = NOW()
		WHERE id = $4 AND active
		RETURNING updated_at
	`

	err := s.db.QueryRowContext(ctx, query, c.Code, c.Name, c.Description, c.ID).Scan(&c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return catalog.ErrNotFound
		}

		return fmt.Errorf("updating category: %w", err)
	}

	return nil
}

func (s *Store) DeactivateCategory(ctx context.Context, id uuid.UUID) error {
	return s.deactivate(ctx, "categories", id)
}

// CreateDestinations inserts all destinations or none.
func (s *Store) CreateDestinations(ctx context.Context, dests []*catalog.Destination) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	stmt, err := dbTx.PrepareContext(ctx, `
		INSERT INTO destinations (name, description, active, created_at, updated_at)
		VALUES ($1, $2, TRUE, NOW(), NOW())
		RETURNING id, active, created_at, updated_at
	`)
	if err != nil {
		return fmt.Errorf("preparing destination insert: %w", err)
	}
	defer stmt.Close()

	for _, d := range dests {
		if err := stmt.QueryRowContext(ctx, d.Name, d.Description).
			Scan(&d.ID, &d.Active, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return fmt.Errorf("creating destination %q: %w", d.Name, err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing destinations: %w", err)
	}

	return nil
}

func (s *Store) GetDestination(ctx context.Context, id uuid.UUID) (*catalog.Destination, error) {
	query := `SELECT ` + selectDestinationColumns + ` FROM destinations WHERE id = $1 AND active`

	d, err := scanDestination(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalog.ErrNotFound
		}

		return nil, fmt.Errorf("getting destination: %w", err)
	}

	return d, nil
}

func (s *Store) ListDestinations(ctx context.Context, p page.Request) ([]*catalog.Destination, int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM destinations WHERE active`).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("counting destinations: %w", err)
	}

	query := `SELECT ` + selectDestinationColumns + ` FROM destinations WHERE active ORDER BY name`

	var args []any
	if !p.IsZero() {
		query += ` LIMIT $1 OFFSET $2`

		args = append(args, p.Limit(), p.Offset())
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing destinations: %w", err)
	}
	defer rows.Close()

	var dests []*catalog.Destination

	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning destination: %w", err)
		}

		dests = append(dests, d)
	}

	return dests, count, rows.Err()
}

func (s *Store) UpdateDestination(ctx context.Context, d *catalog.Destination) error {
	query := `
		UPDATE destinations
		SET name = $1, description = $2, updated_at = NOW()
		WHERE id = $3 AND active
		RETURNING updated_at
	`

	err := s.db.QueryRowContext(ctx, query, d.Name, d.Description, d.ID).Scan(&d.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return catalog.ErrNotFound
		}

		return fmt.Errorf("updating destination: %w", err)
	}

	return nil
}

func (s *Store) DeactivateDestination(ctx context.Context, id uuid.UUID) error {
	return s.deactivate(ctx, "destinations", id)
}

func (s *Store) deactivate(ctx context.Context, table string, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `UPDATE `+table+` SET active = FALSE, updated_at = NOW() WHERE id = $1 AND active`, id)
	if err != nil {
		return fmt.Errorf("deactivating %s: %w", table, err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return catalog.ErrNotFound
	}

	return nil
}
