package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/midas/internal/page"
	"github.com/MrJamesThe3rd/midas/internal/validate"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=catalog
type Repository interface {
	CreateCategories(ctx context.Context, cats []*Category) error
	GetCategory(ctx context.Context, id uuid.UUID) (*Category, error)
	ListCategories(ctx context.Context, p page.Request) ([]*Category, int, error)
	UpdateCategory(ctx context.Context, c *Category) error
	DeactivateCategory(ctx context.Context, id uuid.UUID) error

	CreateDestinations(ctx context.Context, dests []*Destination) error
	GetDestination(ctx context.Context, id uuid.UUID) (*Destination, error)
	ListDestinations(ctx context.Context, p page.Request) ([]*Destination, int, error)
	UpdateDestination(ctx context.Context, d *Destination) error
	DeactivateDestination(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CategoryParams struct {
	Code        Code
	Name        string
	Description string
}

type DestinationParams struct {
	Name        string
	Description string
}

func newCategory(p CategoryParams) *Category {
	c := &Category{Code: p.Code, Name: p.Name, Description: p.Description, Active: true}
	if c.Code == "" {
		c.Code = CodeFixedExpense
	}

	return c
}

func (s *Service) CreateCategory(ctx context.Context, params CategoryParams) (*Category, error) {
	c := newCategory(params)
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.CreateCategories(ctx, []*Category{c}); err != nil {
		return nil, err
	}

	return c, nil
}

// ImportCategories validates every row before writing any, then creates them
// all in one transaction. Field errors are keyed "<row>.<field>".
func (s *Service) ImportCategories(ctx context.Context, rows []CategoryParams) ([]*Category, error) {
	cats := make([]*Category, len(rows))
	verr := &validate.Error{}

	for i, p := range rows {
		cats[i] = newCategory(p)
		collect(verr, i, cats[i].Validate())
	}

	if err := verr.Err(); err != nil {
		return nil, err
	}

	if err := s.repo.CreateCategories(ctx, cats); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "categories imported", "count", len(cats))

	return cats, nil
}

func (s *Service) GetCategory(ctx context.Context, id uuid.UUID) (*Category, error) {
	return s.repo.GetCategory(ctx, id)
}

func (s *Service) ListCategories(ctx context.Context, p page.Request) ([]*Category, int, error) {
	return s.repo.ListCategories(ctx, p)
}

func (s *Service) UpdateCategory(ctx context.Context, id uuid.UUID, params CategoryParams) (*Category, error) {
	c, err := s.repo.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	upd := newCategory(params)
	c.Code, c.Name, c.Description = upd.Code, upd.Name, upd.Description

	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateCategory(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) DeactivateCategory(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeactivateCategory(ctx, id)
}

func (s *Service) CreateDestination(ctx context.Context, params DestinationParams) (*Destination, error) {
	d := &Destination{Name: params.Name, Description: params.Description, Active: true}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.CreateDestinations(ctx, []*Destination{d}); err != nil {
		return nil, err
	}

	return d, nil
}

func (s *Service) ImportDestinations(ctx context.Context, rows []DestinationParams) ([]*Destination, error) {
	dests := make([]*Destination, len(rows))
	verr := &validate.Error{}

	for i, p := range rows {
		dests[i] = &Destination{Name: p.Name, Description: p.Description, Active: true}
		collect(verr, i, dests[i].Validate())
	}

	if err := verr.Err(); err != nil {
		return nil, err
	}

	if err := s.repo.CreateDestinations(ctx, dests); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "destinations imported", "count", len(dests))

	return dests, nil
}

func (s *Service) GetDestination(ctx context.Context, id uuid.UUID) (*Destination, error) {
	return s.repo.GetDestination(ctx, id)
}

func (s *Service) ListDestinations(ctx context.Context, p page.Request) ([]*Destination, int, error) {
	return s.repo.ListDestinations(ctx, p)
}

func (s *Service) UpdateDestination(ctx context.Context, id uuid.UUID, params DestinationParams) (*Destination, error) {
	d, err := s.repo.GetDestination(ctx, id)
	if err != nil {
		return nil, err
	}

	d.Name, d.Description = params.Name, params.Description

	if err := d.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateDestination(ctx, d); err != nil {
		return nil, err
	}

	return d, nil
}

func (s *Service) DeactivateDestination(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeactivateDestination(ctx, id)
}

func collect(verr *validate.Error, row int, err error) {
	rowErr, ok := validate.As(err)
	if !ok {
		return
	}

	for field, msg := range rowErr.Fields {
		verr.Add(fmt.Sprintf("%d.%s", row+1, field), msg)
	}
}
