package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/midas/internal/money"
)

// MarkPaid sets the paid flag on every listed outflow and returns how many
// rows changed.
func (s *Service) MarkPaid(ctx context.Context, ids []uuid.UUID, paid bool) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	n, err := s.repo.SetPaid(ctx, ids, paid)
	if err != nil {
		return 0, fmt.Errorf("set paid=%t: %w", paid, err)
	}

	slog.InfoContext(ctx, "outflows payment status changed", "paid", paid, "count", n)

	return n, nil
}

// Duplicate clones each outflow as a new unpaid record. A clone of an
// installment moves to the next index unless the source is already the last.
func (s *Service) Duplicate(ctx context.Context, ids []uuid.UUID) ([]*Outflow, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	sources, err := s.repo.GetOutflows(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load outflows: %w", err)
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin duplicate: %w", err)
	}
	defer tx.Rollback()

	clones := make([]*Outflow, 0, len(sources))

	for _, src := range sources {
		clone := src.Clone()
		if src.HasRemainingInstallments() {
			clone.Installment = new(*src.Installment + 1)
		}

		if err := tx.CreateOutflow(ctx, clone); err != nil {
			return nil, fmt.Errorf("duplicate outflow %s: %w", src.ID, err)
		}

		clones = append(clones, clone)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit duplicate: %w", err)
	}

	slog.InfoContext(ctx, "outflows duplicated", "count", len(clones))

	return clones, nil
}

type SumResult struct {
	Count     int
	Total     decimal.Decimal
	Formatted string
}

// Sum totals the amounts of the listed outflows, rounded to cents. Unknown
// or deactivated ids are neither counted nor summed.
func (s *Service) Sum(ctx context.Context, ids []uuid.UUID) (SumResult, error) {
	if len(ids) == 0 {
		return SumResult{Total: decimal.Zero, Formatted: money.Format(decimal.Zero)}, nil
	}

	count, total, err := s.repo.SumOutflows(ctx, ids)
	if err != nil {
		return SumResult{}, fmt.Errorf("sum outflows: %w", err)
	}

	total = money.Round(total)

	return SumResult{
		Count:     count,
		Total:     total,
		Formatted: money.Format(total),
	}, nil
}
