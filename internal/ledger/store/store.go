package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/midas/internal/database"
	"github.com/MrJamesThe3rd/midas/internal/ledger"
	"github.com/MrJamesThe3rd/midas/internal/validate"
)

// salaryLockKey serialises transactions that may create the salary inflow of
// a month, so two concurrent generators do not both insert one.
const salaryLockKey int64 = 0x6d69646173

// outflowReferences maps the outflow foreign keys to the request field that
// carries the missing id.
var outflowReferences = map[string]string{
	"outflows_inflow_id_fkey":      "inflow_id",
	"outflows_category_id_fkey":    "category_id",
	"outflows_destination_id_fkey": "destination_id",
	"outflows_parent_id_fkey":      "parent_id",
}

// referenceError turns a violated outflow foreign key into a field error, or
// returns nil when err is something else.
func referenceError(err error) error {
	constraint, ok := database.ForeignKeyConstraint(err)
	if !ok {
		return nil
	}

	field, ok := outflowReferences[constraint]
	if !ok {
		return nil
	}

	return validate.Field(field, "Objeto não encontrado.")
}

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type scanner interface {
	Scan(dest ...any) error
}

const selectInflowColumns = `id, origin, amount, date, active, created_at, updated_at`

func scanInflow(s scanner) (*ledger.Inflow, error) {
	var in ledger.Inflow

	var origin string

	if err := s.Scan(&in.ID, &origin, &in.Amount, &in.Date, &in.Active, &in.CreatedAt, &in.UpdatedAt); err != nil {
		return nil, err
	}

	in.Origin = ledger.Origin(origin)
	in.Date = ledger.DateOnly(in.Date)

	return &in, nil
}

// Expected column order matches selectOutflowColumns.
const selectOutflowColumns = `
	o.id, o.inflow_id, o.description, o.amount, o.installment, o.total_installments,
	o.expense_date, o.category_id, COALESCE(c.name, '') AS category_name, o.destination_id,
	o.parent_id, o.paid, o.fixed, o.mandatory, o.active, o.created_at, o.updated_at
`

const fromOutflows = `
	FROM outflows o
	LEFT JOIN categories c ON c.id = o.category_id
`

func scanOutflow(s scanner) (*ledger.Outflow, error) {
	var out ledger.Outflow

	if err := s.Scan(
		&out.ID, &out.InflowID, &out.Description, &out.Amount, &out.Installment, &out.TotalInstallments,
		&out.ExpenseDate, &out.CategoryID, &out.CategoryName, &out.DestinationID,
		&out.ParentID, &out.Paid, &out.Fixed, &out.Mandatory, &out.Active, &out.CreatedAt, &out.UpdatedAt,
	); err != nil {
		return nil, err
	}

	out.ExpenseDate = ledger.DateOnly(out.ExpenseDate)

	return &out, nil
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}

	return out
}

func createInflow(ctx context.Context, q queryer, in *ledger.Inflow) error {
	query := `
		INSERT INTO inflows (origin, amount, date, active, created_at, updated_at)
		VALUES ($1, $2, $3, TRUE, NOW(), NOW())
		RETURNING id, active, created_at, updated_at
	`

	err := q.QueryRowContext(ctx, query, in.Origin, in.Amount, in.Date).
		Scan(&in.ID, &in.Active, &in.CreatedAt, &in.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating inflow: %w", err)
	}

	return nil
}

func updateInflow(ctx context.Context, q queryer, in *ledger.Inflow) error {
	query := `
		UPDATE inflows
		SET origin = $1, amount = $2, date = $3, updated_at = NOW()
		WHERE id = $4 AND active
		RETURNING updated_at
	`

	err := q.QueryRowContext(ctx, query, in.Origin, in.Amount, in.Date, in.ID).Scan(&in.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ledger.ErrNotFound
		}

		return fmt.Errorf("updating inflow: %w", err)
	}

	return nil
}

func createOutflow(ctx context.Context, q queryer, out *ledger.Outflow) error {
	query := `
		INSERT INTO outflows (
			inflow_id, description, amount, installment, total_installments, expense_date,
			category_id, destination_id, parent_id, paid, fixed, mandatory, active, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, TRUE, NOW(), NOW())
		RETURNING id, active, created_at, updated_at
	`

	err := q.QueryRowContext(ctx, query,
		out.InflowID,
		out.Description,
		out.Amount,
		out.Installment,
		out.TotalInstallments,
		out.ExpenseDate,
		out.CategoryID,
		out.DestinationID,
		out.ParentID,
		out.Paid,
		out.Fixed,
		out.Mandatory,
	).Scan(&out.ID, &out.Active, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		if ferr := referenceError(err); ferr != nil {
			return ferr
		}

		return fmt.Errorf("creating outflow: %w", err)
	}

	return nil
}

func (s *Store) CreateInflow(ctx context.Context, in *ledger.Inflow) error {
	return createInflow(ctx, s.db, in)
}

func (s *Store) GetInflow(ctx context.Context, id uuid.UUID) (*ledger.Inflow, error) {
	query := `SELECT ` + selectInflowColumns + ` FROM inflows WHERE id = $1 AND active`

	in, err := scanInflow(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("getting inflow: %w", err)
	}

	return in, nil
}

func (s *Store) ListInflows(ctx context.Context, filter ledger.InflowFilter) ([]*ledger.Inflow, int, error) {
	where := ` WHERE active`

	var args []any

	argIdx := 1

	if filter.Origin != nil {
		where += fmt.Sprintf(" AND origin = $%d", argIdx)

		args = append(args, *filter.Origin)
		argIdx++
	}

	if filter.StartDate != nil {
		where += fmt.Sprintf(" AND date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		where += fmt.Sprintf(" AND date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM inflows`+where, args...).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("counting inflows: %w", err)
	}

	query := `SELECT ` + selectInflowColumns + ` FROM inflows` + where + ` ORDER BY date DESC, created_at DESC`

	if !filter.Page.IsZero() {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)

		args = append(args, filter.Page.Limit(), filter.Page.Offset())
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing inflows: %w", err)
	}
	defer rows.Close()

	var inflows []*ledger.Inflow

	for rows.Next() {
		in, err := scanInflow(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning inflow: %w", err)
		}

		inflows = append(inflows, in)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating inflows: %w", err)
	}

	return inflows, count, nil
}

func (s *Store) DeactivateInflow(ctx context.Context, id uuid.UUID) error {
	return deactivate(ctx, s.db, "inflows", id)
}

func (s *Store) CreateOutflow(ctx context.Context, out *ledger.Outflow) error {
	return createOutflow(ctx, s.db, out)
}

func (s *Store) GetOutflow(ctx context.Context, id uuid.UUID) (*ledger.Outflow, error) {
	query := `SELECT ` + selectOutflowColumns + fromOutflows + ` WHERE o.id = $1 AND o.active`

	out, err := scanOutflow(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("getting outflow: %w", err)
	}

	return out, nil
}

// GetOutflows loads the active outflows among ids, in expense date order.
func (s *Store) GetOutflows(ctx context.Context, ids []uuid.UUID) ([]*ledger.Outflow, error) {
	query := `SELECT ` + selectOutflowColumns + fromOutflows + `
		WHERE o.id = ANY($1::uuid[]) AND o.active
		ORDER BY o.expense_date, o.created_at`

	rows, err := s.db.QueryContext(ctx, query, idStrings(ids))
	if err != nil {
		return nil, fmt.Errorf("getting outflows: %w", err)
	}
	defer rows.Close()

	return collectOutflows(rows)
}

func (s *Store) ListOutflows(ctx context.Context, filter ledger.OutflowFilter) ([]*ledger.Outflow, int, error) {
	where := ` WHERE o.active`

	var args []any

	argIdx := 1

	if filter.InflowID != nil {
		where += fmt.Sprintf(" AND o.inflow_id = $%d", argIdx)

		args = append(args, *filter.InflowID)
		argIdx++
	}

	if filter.CategoryID != nil {
		where += fmt.Sprintf(" AND o.category_id = $%d", argIdx)

		args = append(args, *filter.CategoryID)
		argIdx++
	}

	if filter.Paid != nil {
		where += fmt.Sprintf(" AND o.paid = $%d", argIdx)

		args = append(args, *filter.Paid)
		argIdx++
	}

	if filter.Fixed != nil {
		where += fmt.Sprintf(" AND o.fixed = $%d", argIdx)

		args = append(args, *filter.Fixed)
		argIdx++
	}

	if filter.StartDate != nil {
		where += fmt.Sprintf(" AND o.expense_date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		where += fmt.Sprintf(" AND o.expense_date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM outflows o`+where, args...).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("counting outflows: %w", err)
	}

	query := `SELECT ` + selectOutflowColumns + fromOutflows + where + ` ORDER BY o.expense_date DESC, o.created_at DESC`

	if !filter.Page.IsZero() {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)

		args = append(args, filter.Page.Limit(), filter.Page.Offset())
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing outflows: %w", err)
	}
	defer rows.Close()

	outflows, err := collectOutflows(rows)
	if err != nil {
		return nil, 0, err
	}

	return outflows, count, nil
}

func collectOutflows(rows *sql.Rows) ([]*ledger.Outflow, error) {
	var outflows []*ledger.Outflow

	for rows.Next() {
		out, err := scanOutflow(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning outflow: %w", err)
		}

		outflows = append(outflows, out)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating outflows: %w", err)
	}

	return outflows, nil
}

func (s *Store) UpdateOutflow(ctx context.Context, out *ledger.Outflow) error {
	query := `
		UPDATE outflows
		SET inflow_id = $1, description = $2, amount = $3, installment = $4, total_installments = $5,
			expense_date = $6, category_id = $7, destination_id = $8, parent_id = $9, paid = $10,
			fixed = $11, mandatory = $12, updated_at = NOW()
		WHERE id = $13 AND active
		RETURNING updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		out.InflowID,
		out.Description,
		out.Amount,
		out.Installment,
		out.TotalInstallments,
		out.ExpenseDate,
		out.CategoryID,
		out.DestinationID,
		out.ParentID,
		out.Paid,
		out.Fixed,
		out.Mandatory,
		out.ID,
	).Scan(&out.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ledger.ErrNotFound
		}

		if ferr := referenceError(err); ferr != nil {
			return ferr
		}

		return fmt.Errorf("updating outflow: %w", err)
	}

	return nil
}

func (s *Store) DeactivateOutflow(ctx context.Context, id uuid.UUID) error {
	return deactivate(ctx, s.db, "outflows", id)
}

func (s *Store) SetPaid(ctx context.Context, ids []uuid.UUID, paid bool) (int64, error) {
	query := `
		UPDATE outflows
		SET paid = $1, updated_at = NOW()
		WHERE id = ANY($2::uuid[]) AND active
	`

	res, err := s.db.ExecContext(ctx, query, paid, idStrings(ids))
	if err != nil {
		return 0, fmt.Errorf("setting paid: %w", err)
	}

	return res.RowsAffected()
}

// SumOutflows counts and totals the active outflows among ids.
func (s *Store) SumOutflows(ctx context.Context, ids []uuid.UUID) (int, decimal.Decimal, error) {
	query := `SELECT COUNT(*), COALESCE(SUM(amount), 0) FROM outflows WHERE id = ANY($1::uuid[]) AND active`

	var (
		count int
		total decimal.Decimal
	)

	if err := s.db.QueryRowContext(ctx, query, idStrings(ids)).Scan(&count, &total); err != nil {
		return 0, decimal.Zero, fmt.Errorf("summing outflows: %w", err)
	}

	return count, total, nil
}

// deactivate soft-deletes a row; table is always a package constant.
func deactivate(ctx context.Context, q queryer, table string, id uuid.UUID) error {
	res, err := q.ExecContext(ctx, `UPDATE `+table+` SET active = FALSE, updated_at = NOW() WHERE id = $1 AND active`, id)
	if err != nil {
		return fmt.Errorf("deactivating %s: %w", table, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deactivating %s: %w", table, err)
	}

	if n == 0 {
		return ledger.ErrNotFound
	}

	return nil
}

type ledgerTx struct {
	tx *sql.Tx
}

func (s *Store) Begin(ctx context.Context) (ledger.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning ledger tx: %w", err)
	}

	return &ledgerTx{tx: dbTx}, nil
}

// LockSalary takes the salary advisory lock, released when the transaction
// ends.
func (t *ledgerTx) LockSalary(ctx context.Context) error {
	if _, err := t.tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", salaryLockKey); err != nil {
		return fmt.Errorf("acquiring salary lock: %w", err)
	}

	return nil
}

func (t *ledgerTx) Commit() error   { return t.tx.Commit() }
func (t *ledgerTx) Rollback() error { return t.tx.Rollback() }

func (t *ledgerTx) FindInflow(ctx context.Context, origin ledger.Origin, year int, month time.Month) (*ledger.Inflow, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := ledger.LastOfMonth(start)

	query := `SELECT ` + selectInflowColumns + `
		FROM inflows
		WHERE origin = $1 AND date BETWEEN $2 AND $3 AND active
		ORDER BY date, created_at
		LIMIT 1`

	in, err := scanInflow(t.tx.QueryRowContext(ctx, query, origin, start, end))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("finding inflow: %w", err)
	}

	return in, nil
}

func (t *ledgerTx) CreateInflow(ctx context.Context, in *ledger.Inflow) error {
	return createInflow(ctx, t.tx, in)
}

func (t *ledgerTx) UpdateInflow(ctx context.Context, in *ledger.Inflow) error {
	return updateInflow(ctx, t.tx, in)
}

func (t *ledgerTx) SyncOutflowDates(ctx context.Context, inflowID uuid.UUID, date time.Time) (int64, error) {
	query := `
		UPDATE outflows
		SET expense_date = $1, updated_at = NOW()
		WHERE inflow_id = $2 AND active AND expense_date <> $1
	`

	res, err := t.tx.ExecContext(ctx, query, date, inflowID)
	if err != nil {
		return 0, fmt.Errorf("syncing outflow dates: %w", err)
	}

	return res.RowsAffected()
}

func (t *ledgerTx) CreateOutflow(ctx context.Context, out *ledger.Outflow) error {
	return createOutflow(ctx, t.tx, out)
}
