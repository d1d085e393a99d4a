package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MrJamesThe3rd/midas/internal/ledger"
	"github.com/MrJamesThe3rd/midas/internal/report"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) DailyTotals(ctx context.Context, start, end time.Time) ([]report.DayTotal, error) {
	query := `
		SELECT expense_date, SUM(amount)
		FROM outflows
		WHERE active AND expense_date BETWEEN $1 AND $2
		GROUP BY expense_date
		ORDER BY expense_date
	`

	rows, err := s.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("querying daily totals: %w", err)
	}
	defer rows.Close()

	var totals []report.DayTotal

	for rows.Next() {
		var d report.DayTotal
		if err := rows.Scan(&d.Date, &d.Total); err != nil {
			return nil, fmt.Errorf("scanning daily total: %w", err)
		}

		d.Date = ledger.DateOnly(d.Date)
		totals = append(totals, d)
	}

	return totals, rows.Err()
}

func (s *Store) CategoryTotals(ctx context.Context, start, end time.Time) ([]report.CategoryTotal, error) {
	query := `
		SELECT c.name, SUM(o.amount)
		FROM outflows o
		JOIN categories c ON c.id = o.category_id
		WHERE o.active AND o.expense_date BETWEEN $1 AND $2
		GROUP BY c.name
		ORDER BY c.name
	`

	rows, err := s.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("querying category totals: %w", err)
	}
	defer rows.Close()

	var totals []report.CategoryTotal

	for rows.Next() {
		var c report.CategoryTotal
		if err := rows.Scan(&c.Category, &c.Total); err != nil {
			return nil, fmt.Errorf("scanning category total: %w", err)
		}

		totals = append(totals, c)
	}

	return totals, rows.Err()
}

func (s *Store) OriginTotals(ctx context.Context, start, end time.Time) ([]report.OriginTotal, error) {
	query := `
		SELECT origin, SUM(amount)
		FROM inflows
		WHERE active AND date BETWEEN $1 AND $2
		GROUP BY origin
		ORDER BY origin
	`

	rows, err := s.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("querying origin totals: %w", err)
	}
	defer rows.Close()

	var totals []report.OriginTotal

	for rows.Next() {
		var (
			o      report.OriginTotal
			origin string
		)

		if err := rows.Scan(&origin, &o.Total); err != nil {
			return nil, fmt.Errorf("scanning origin total: %w", err)
		}

		o.Origin = ledger.Origin(origin)
		totals = append(totals, o)
	}

	return totals, rows.Err()
}
