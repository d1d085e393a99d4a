package setting

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=setting
type Repository interface {
	Create(ctx context.Context, s *Setting) error
	Get(ctx context.Context, id uuid.UUID) (*Setting, error)
	GetByCode(ctx context.Context, code string) (*Setting, error)
	List(ctx context.Context) ([]*Setting, error)
	Update(ctx context.Context, s *Setting) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type Params struct {
	Code        string
	Description string
	Value       string
}

func (s *Service) Create(ctx context.Context, params Params) (*Setting, error) {
	st := &Setting{
		Code:        params.Code,
		Description: params.Description,
		Value:       params.Value,
		Active:      true,
	}

	if err := st.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, st); err != nil {
		return nil, err
	}

	return st, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Setting, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Setting, error) {
	return s.repo.List(ctx)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params Params) (*Setting, error) {
	st, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	st.Code = params.Code
	st.Description = params.Description
	st.Value = params.Value

	if err := st.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, st); err != nil {
		return nil, err
	}

	return st, nil
}

func (s *Service) Deactivate(ctx context.Context, id uuid.UUID) error {
	return s.repo.Deactivate(ctx, id)
}

// Decimal returns the setting stored under code parsed as a decimal, or
// fallback when it is missing or unparsable.
func (s *Service) Decimal(ctx context.Context, code string, fallback decimal.Decimal) decimal.Decimal {
	st, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			slog.WarnContext(ctx, "failed to load setting", "code", code, "error", err)
		}

		return fallback
	}

	d, err := decimal.NewFromString(st.Value)
	if err != nil {
		slog.WarnContext(ctx, "setting is not a number", "code", code, "value", st.Value)
		return fallback
	}

	return d
}
