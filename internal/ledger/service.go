package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/midas/internal/page"
	"github.com/MrJamesThe3rd/midas/internal/validate"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger
type Repository interface {
	GetInflow(ctx context.Context, id uuid.UUID) (*Inflow, error)
	ListInflows(ctx context.Context, filter InflowFilter) ([]*Inflow, int, error)
	CreateInflow(ctx context.Context, in *Inflow) error
	DeactivateInflow(ctx context.Context, id uuid.UUID) error

	GetOutflow(ctx context.Context, id uuid.UUID) (*Outflow, error)
	GetOutflows(ctx context.Context, ids []uuid.UUID) ([]*Outflow, error)
	ListOutflows(ctx context.Context, filter OutflowFilter) ([]*Outflow, int, error)
	CreateOutflow(ctx context.Context, out *Outflow) error
	UpdateOutflow(ctx context.Context, out *Outflow) error
	DeactivateOutflow(ctx context.Context, id uuid.UUID) error
	SetPaid(ctx context.Context, ids []uuid.UUID, paid bool) (int64, error)
	SumOutflows(ctx context.Context, ids []uuid.UUID) (int, decimal.Decimal, error)

	Begin(ctx context.Context) (Tx, error)
}

// Tx groups the writes that must land together: an inflow date change with
// its cascade, installment schedules and batch duplication.
type Tx interface {
	// LockSalary serialises salary inflow creation until the transaction ends.
	LockSalary(ctx context.Context) error
	FindInflow(ctx context.Context, origin Origin, year int, month time.Month) (*Inflow, error)
	CreateInflow(ctx context.Context, in *Inflow) error
	UpdateInflow(ctx context.Context, in *Inflow) error
	SyncOutflowDates(ctx context.Context, inflowID uuid.UUID, date time.Time) (int64, error)
	CreateOutflow(ctx context.Context, out *Outflow) error
	Commit() error
	Rollback() error
}

// SettingSource resolves runtime overrides stored in the settings table.
type SettingSource interface {
	Decimal(ctx context.Context, code string, fallback decimal.Decimal) decimal.Decimal
}

// SettingFallbackSalary overrides the amount given to salary inflows that the
// installment generator has to create.
const SettingFallbackSalary = "salary.fallback_amount"

type Service struct {
	repo     Repository
	settings SettingSource
	calendar Calendar
	now      func() time.Time
	loc      *time.Location

	fallbackSalary    decimal.Decimal
	salaryBusinessDay int
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithLocation(loc *time.Location) Option {
	return func(s *Service) { s.loc = loc }
}

func WithCalendar(c Calendar) Option {
	return func(s *Service) { s.calendar = c }
}

func WithSettings(src SettingSource) Option {
	return func(s *Service) { s.settings = src }
}

// WithSalaryDefaults sets the amount of auto-created salary inflows and which
// business day of the month they are paid on.
func WithSalaryDefaults(amount decimal.Decimal, businessDay int) Option {
	return func(s *Service) {
		s.fallbackSalary = amount
		s.salaryBusinessDay = businessDay
	}
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo:              repo,
		calendar:          Calendar{SaturdayIsBusinessDay: true},
		now:               time.Now,
		loc:               time.UTC,
		fallbackSalary:    decimal.NewFromInt(2500),
		salaryBusinessDay: 5,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Today is the current calendar day in the configured location.
func (s *Service) Today() time.Time {
	return DateOnly(s.now().In(s.loc))
}

type InflowFilter struct {
	Origin    *Origin
	StartDate *time.Time
	EndDate   *time.Time
	Page      page.Request
}

type OutflowFilter struct {
	InflowID   *uuid.UUID
	CategoryID *uuid.UUID
	Paid       *bool
	Fixed      *bool
	StartDate  *time.Time
	EndDate    *time.Time
	Page       page.Request
}

type CreateInflowParams struct {
	Origin Origin
	Amount decimal.Decimal
	Date   time.Time
}

type UpdateInflowParams struct {
	Origin *Origin
	Amount *decimal.Decimal
	Date   *time.Time
}

type CreateOutflowParams struct {
	InflowID          uuid.UUID
	Description       string
	Amount            decimal.Decimal
	Installment       *int
	TotalInstallments *int
	ExpenseDate       *time.Time
	CategoryID        uuid.UUID
	DestinationID     *uuid.UUID
	ParentID          *uuid.UUID
	Paid              bool
	Fixed             bool
	Mandatory         *bool
}

type UpdateOutflowParams struct {
	InflowID          *uuid.UUID
	Description       *string
	Amount            *decimal.Decimal
	Installment       *int
	TotalInstallments *int
	ExpenseDate       *time.Time
	CategoryID        *uuid.UUID
	DestinationID     *uuid.UUID
	ParentID          *uuid.UUID
	Paid              *bool
	Fixed             *bool
	Mandatory         *bool
}

func (s *Service) CreateInflow(ctx context.Context, params CreateInflowParams) (*Inflow, error) {
	in := &Inflow{
		Origin: params.Origin,
		Amount: params.Amount,
		Date:   params.Date,
		Active: true,
	}

	if in.Origin == "" {
		in.Origin = OriginSalary
	}

	if in.Date.IsZero() {
		in.Date = s.Today()
	}

	in.Date = DateOnly(in.Date)

	if err := in.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.CreateInflow(ctx, in); err != nil {
		return nil, err
	}

	return in, nil
}

func (s *Service) GetInflow(ctx context.Context, id uuid.UUID) (*Inflow, error) {
	return s.repo.GetInflow(ctx, id)
}

func (s *Service) ListInflows(ctx context.Context, filter InflowFilter) ([]*Inflow, int, error) {
	return s.repo.ListInflows(ctx, filter)
}

// UpdateInflow applies params and, when the date moves, rewrites the expense
// date of every outflow drawn from this inflow in the same transaction.
func (s *Service) UpdateInflow(ctx context.Context, id uuid.UUID, params UpdateInflowParams) (*Inflow, error) {
	in, err := s.repo.GetInflow(ctx, id)
	if err != nil {
		return nil, err
	}

	previousDate := in.Date

	if params.Origin != nil {
		in.Origin = *params.Origin
	}

	if params.Amount != nil {
		in.Amount = *params.Amount
	}

	if params.Date != nil {
		in.Date = DateOnly(*params.Date)
	}

	if err := in.Validate(); err != nil {
		return nil, err
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin inflow update: %w", err)
	}
	defer tx.Rollback()

	if err := tx.UpdateInflow(ctx, in); err != nil {
		return nil, fmt.Errorf("update inflow: %w", err)
	}

	if !in.Date.Equal(previousDate) {
		n, err := tx.SyncOutflowDates(ctx, in.ID, in.Date)
		if err != nil {
			return nil, fmt.Errorf("sync outflow dates: %w", err)
		}

		slog.InfoContext(ctx, "inflow date cascaded", "inflow_id", in.ID, "date", in.Date.Format(time.DateOnly), "outflows", n)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit inflow update: %w", err)
	}

	return in, nil
}

func (s *Service) DeactivateInflow(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeactivateInflow(ctx, id)
}

// InflowOutflows lists the outflows drawn from one inflow.
func (s *Service) InflowOutflows(ctx context.Context, id uuid.UUID, p page.Request) ([]*Outflow, int, error) {
	if _, err := s.repo.GetInflow(ctx, id); err != nil {
		return nil, 0, err
	}

	return s.repo.ListOutflows(ctx, OutflowFilter{InflowID: &id, Page: p})
}

func (s *Service) CreateOutflow(ctx context.Context, params CreateOutflowParams) (*Outflow, error) {
	out := &Outflow{
		InflowID:          params.InflowID,
		Description:       params.Description,
		Amount:            params.Amount,
		Installment:       params.Installment,
		TotalInstallments: params.TotalInstallments,
		CategoryID:        params.CategoryID,
		DestinationID:     params.DestinationID,
		ParentID:          params.ParentID,
		Paid:              params.Paid,
		Fixed:             params.Fixed,
		Mandatory:         params.Mandatory,
		Active:            true,
	}

	if err := out.Validate(); err != nil {
		return nil, err
	}

	if params.ExpenseDate != nil {
		out.ExpenseDate = DateOnly(*params.ExpenseDate)
	} else {
		in, err := s.repo.GetInflow(ctx, params.InflowID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, validate.Field("inflow_id", "Objeto não encontrado.")
			}

			return nil, fmt.Errorf("loading inflow for expense date: %w", err)
		}

		out.ExpenseDate = in.Date
	}

	if err := s.repo.CreateOutflow(ctx, out); err != nil {
		return nil, err
	}

	return out, nil
}

func (s *Service) GetOutflow(ctx context.Context, id uuid.UUID) (*Outflow, error) {
	return s.repo.GetOutflow(ctx, id)
}

func (s *Service) ListOutflows(ctx context.Context, filter OutflowFilter) ([]*Outflow, int, error) {
	return s.repo.ListOutflows(ctx, filter)
}

// FixedOutflows lists outflows flagged as fixed/recurring.
func (s *Service) FixedOutflows(ctx context.Context, filter OutflowFilter) ([]*Outflow, int, error) {
	filter.Fixed = new(true)
	return s.repo.ListOutflows(ctx, filter)
}

func (s *Service) UpdateOutflow(ctx context.Context, id uuid.UUID, params UpdateOutflowParams) (*Outflow, error) {
	out, err := s.repo.GetOutflow(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.InflowID != nil {
		out.InflowID = *params.InflowID
	}

	if params.Description != nil {
		out.Description = *params.Description
	}

	if params.Amount != nil {
		out.Amount = *params.Amount
	}

	if params.Installment != nil {
		out.Installment = params.Installment
	}

	if params.TotalInstallments != nil {
		out.TotalInstallments = params.TotalInstallments
	}

	if params.ExpenseDate != nil {
		out.ExpenseDate = DateOnly(*params.ExpenseDate)
	}

	if params.CategoryID != nil {
		out.CategoryID = *params.CategoryID
	}

	if params.DestinationID != nil {
		out.DestinationID = params.DestinationID
	}

	if params.ParentID != nil {
		out.ParentID = params.ParentID
	}

	if params.Paid != nil {
		out.Paid = *params.Paid
	}

	if params.Fixed != nil {
		out.Fixed = *params.Fixed
	}

	if params.Mandatory != nil {
		out.Mandatory = params.Mandatory
	}

	if err := out.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateOutflow(ctx, out); err != nil {
		return nil, err
	}

	return out, nil
}

func (s *Service) DeactivateOutflow(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeactivateOutflow(ctx, id)
}
