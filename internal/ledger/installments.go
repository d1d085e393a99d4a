package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/midas/internal/validate"
)

// GenerateInstallments creates the remaining installments of an outflow plan.
// Each installment lands on the salary inflow of the month it falls in, which
// is created with the fallback amount when missing and moved to the configured
// business day. Everything runs in one transaction.
func (s *Service) GenerateInstallments(ctx context.Context, id uuid.UUID) ([]*Outflow, error) {
	source, err := s.repo.GetOutflow(ctx, id)
	if err != nil {
		return nil, err
	}

	if source.Installment == nil || source.TotalInstallments == nil {
		return nil, validate.Field("installment", "Esta saída não possui informação de parcelas.")
	}

	if !source.HasRemainingInstallments() {
		return nil, fmt.Errorf("%w: %w", ErrNoInstallments,
			validate.Field("installment", "Esta saída já está na última parcela."))
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin installment generation: %w", err)
	}
	defer tx.Rollback()

	if err := tx.LockSalary(ctx); err != nil {
		return nil, fmt.Errorf("lock salary inflows: %w", err)
	}

	today := s.Today()
	amount := s.fallbackAmount(ctx)

	created := make([]*Outflow, 0, *source.TotalInstallments-*source.Installment)

	for n := *source.Installment + 1; n <= *source.TotalInstallments; n++ {
		month := InstallmentMonth(today, n)

		in, err := s.salaryInflow(ctx, tx, month, amount)
		if err != nil {
			return nil, fmt.Errorf("installment %d: %w", n, err)
		}

		clone := source.Clone()
		clone.Installment = new(n)
		clone.InflowID = in.ID
		clone.ExpenseDate = in.Date

		if err := tx.CreateOutflow(ctx, clone); err != nil {
			return nil, fmt.Errorf("create installment %d: %w", n, err)
		}

		slog.InfoContext(ctx, "installment generated",
			"outflow_id", source.ID,
			"installment", n,
			"inflow_id", in.ID,
			"month", month.Format("2006-01"),
		)

		created = append(created, clone)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit installments: %w", err)
	}

	return created, nil
}

// salaryInflow finds or creates the salary inflow for month, then pins its
// date to the salary business day and cascades that date to its outflows.
func (s *Service) salaryInflow(ctx context.Context, tx Tx, month time.Time, amount decimal.Decimal) (*Inflow, error) {
	in, err := tx.FindInflow(ctx, OriginSalary, month.Year(), month.Month())
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("find salary inflow: %w", err)
	}

	if in == nil {
		in = &Inflow{
			Origin: OriginSalary,
			Amount: amount,
			Date:   month,
			Active: true,
		}

		if err := in.Validate(); err != nil {
			return nil, err
		}

		if err := tx.CreateInflow(ctx, in); err != nil {
			return nil, fmt.Errorf("create salary inflow: %w", err)
		}

		slog.InfoContext(ctx, "salary inflow created", "inflow_id", in.ID, "month", month.Format("2006-01"))
	}

	in.Date = s.calendar.NthBusinessDay(month.Year(), month.Month(), s.salaryBusinessDay)

	if err := tx.UpdateInflow(ctx, in); err != nil {
		return nil, fmt.Errorf("update salary inflow: %w", err)
	}

	if _, err := tx.SyncOutflowDates(ctx, in.ID, in.Date); err != nil {
		return nil, fmt.Errorf("sync outflow dates: %w", err)
	}

	return in, nil
}

func (s *Service) fallbackAmount(ctx context.Context) decimal.Decimal {
	if s.settings == nil {
		return s.fallbackSalary
	}

	amount := s.settings.Decimal(ctx, SettingFallbackSalary, s.fallbackSalary)
	if !amount.IsPositive() {
		slog.WarnContext(ctx, "fallback salary setting is not positive, using default",
			"code", SettingFallbackSalary, "value", amount.String())

		return s.fallbackSalary
	}

	return amount
}
