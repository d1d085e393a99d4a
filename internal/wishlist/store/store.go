package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/midas/internal/wishlist"
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

const selectColumns = `id, name, kind, price, link, purchased, active, created_at, updated_at`

func scanItem(s scanner) (*wishlist.Item, error) {
	var it wishlist.Item

	var kind string

	if err := s.Scan(&it.ID, &it.Name, &kind, &it.Price, &it.Link, &it.Purchased, &it.Active, &it.CreatedAt, &it.UpdatedAt); err != nil {
		return nil, err
	}

	it.Kind = wishlist.Kind(kind)

	return &it, nil
}

// CreateItems inserts all items or none.
func (s *Store) CreateItems(ctx context.Context, items []*wishlist.Item) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	stmt, err := dbTx.PrepareContext(ctx, `
		INSERT INTO wishlist_items (name, kind, price, link, purchased, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, TRUE, NOW(), NOW())
		RETURNING id, active, created_at, updated_at
	`)
	if err != nil {
		return fmt.Errorf("preparing wishlist insert: %w", err)
	}
	defer stmt.Close()

	for _, it := range items {
		if err := stmt.QueryRowContext(ctx, it.Name, it.Kind, it.Price, it.Link, it.Purchased).
			Scan(&it.ID, &it.Active, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return fmt.Errorf("creating wishlist item %q: %w", it.Name, err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing wishlist items: %w", err)
	}

	return nil
}

func (s *Store) GetItem(ctx context.Context, id uuid.UUID) (*wishlist.Item, error) {
	query := `SELECT ` + selectColumns + ` FROM wishlist_items WHERE id = $1 AND active`

	it, err := scanItem(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, wishlist.ErrNotFound
		}

		return nil, fmt.Errorf("getting wishlist item: %w", err)
	}

	return it, nil
}

func (s *Store) ListItems(ctx context.Context, filter wishlist.ListFilter) ([]*wishlist.Item, int, error) {
	where := ` WHERE active`

	var args []any

	argIdx := 1

	if filter.Kind != nil {
		where += fmt.Sprintf(" AND kind = $%d", argIdx)

		args = append(args, *filter.Kind)
		argIdx++
	}

	if filter.Purchased != nil {
		where += fmt.Sprintf(" AND purchased = $%d", argIdx)

		args = append(args, *filter.Purchased)
		argIdx++
	}

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM wishlist_items`+where, args...).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("counting wishlist items: %w", err)
	}

	query := `SELECT ` + selectColumns + ` FROM wishlist_items` + where + ` ORDER BY purchased, name`

	if !filter.Page.IsZero() {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)

		args = append(args, filter.Page.Limit(), filter.Page.Offset())
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing wishlist items: %w", err)
	}
	defer rows.Close()

	var items []*wishlist.Item

	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning wishlist item: %w", err)
		}

		items = append(items, it)
	}

	return items, count, rows.Err()
}

func (s *Store) UpdateItem(ctx context.Context, it *wishlist.Item) error {
	query := `
		UPDATE wishlist_items
		SET name = $1, kind = $2, price = $3, link = $4, purchased = $5, updated_at = NOW()
		WHERE id = $6 AND active
		RETURNING active, updated_at
	`

	err := s.db.QueryRowContext(ctx, query, it.Name, it.Kind, it.Price, it.Link, it.Purchased, it.ID).
		Scan(&it.Active, &it.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return wishlist.ErrNotFound
		}

		return fmt.Errorf("updating wishlist item: %w", err)
	}

	return nil
}

func (s *Store) TogglePurchased(ctx context.Context, id uuid.UUID) (*wishlist.Item, error) {
	query := `
		UPDATE wishlist_items
		SET purchased = NOT purchased, updated_at = NOW()
		WHERE id = $1 AND active
		RETURNING ` + selectColumns

	it, err := scanItem(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, wishlist.ErrNotFound
		}

		return nil, fmt.Errorf("toggling wishlist item: %w", err)
	}

	return it, nil
}

func (s *Store) DeactivateItem(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `UPDATE wishlist_items SET active = FALSE, updated_at = NOW() WHERE id = $1 AND active`, id)
	if err != nil {
		return fmt.Errorf("deactivating wishlist item: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return wishlist.ErrNotFound
	}

	return nil
}
