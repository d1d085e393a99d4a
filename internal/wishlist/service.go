package wishlist

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/midas/internal/page"
	"github.com/MrJamesThe3rd/midas/internal/validate"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=wishlist
type Repository interface {
	CreateItems(ctx context.Context, items []*Item) error
	GetItem(ctx context.Context, id uuid.UUID) (*Item, error)
	ListItems(ctx context.Context, filter ListFilter) ([]*Item, int, error)
	UpdateItem(ctx context.Context, item *Item) error
	TogglePurchased(ctx context.Context, id uuid.UUID) (*Item, error)
	DeactivateItem(ctx context.Context, id uuid.UUID) error
}

type ListFilter struct {
	Kind      *Kind
	Purchased *bool
	Page      page.Request
}

type Params struct {
	Name      string
	Kind      Kind
	Price     decimal.Decimal
	Link      string
	Purchased bool
}

func (p Params) item() *Item {
	it := &Item{
		Name:      p.Name,
		Kind:      p.Kind,
		Price:     p.Price,
		Link:      p.Link,
		Purchased: p.Purchased,
		Active:    true,
	}

	if it.Kind == "" {
		it.Kind = KindBook
	}

	return it
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, params Params) (*Item, error) {
	it := params.item()
	if err := it.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.CreateItems(ctx, []*Item{it}); err != nil {
		return nil, err
	}

	return it, nil
}

// Import creates every row in one transaction after validating all of them.
// Field errors are keyed "<row>.<field>", rows counted from 1.
func (s *Service) Import(ctx context.Context, rows []Params) ([]*Item, error) {
	items := make([]*Item, len(rows))
	verr := &validate.Error{}

	for i, p := range rows {
		items[i] = p.item()

		if rowErr, ok := validate.As(items[i].Validate()); ok {
			for field, msg := range rowErr.Fields {
				verr.Add(fmt.Sprintf("%d.%s", i+1, field), msg)
			}
		}
	}

	if err := verr.Err(); err != nil {
		return nil, err
	}

	if err := s.repo.CreateItems(ctx, items); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "wishlist imported", "count", len(items))

	return items, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Item, error) {
	return s.repo.GetItem(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Item, int, error) {
	return s.repo.ListItems(ctx, filter)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params Params) (*Item, error) {
	it, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	upd := params.item()
	upd.ID = it.ID
	upd.CreatedAt = it.CreatedAt

	if err := upd.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateItem(ctx, upd); err != nil {
		return nil, err
	}

	return upd, nil
}

// TogglePurchased flips the purchased flag and returns the updated item.
func (s *Service) TogglePurchased(ctx context.Context, id uuid.UUID) (*Item, error) {
	it, err := s.repo.TogglePurchased(ctx, id)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "wishlist item toggled", "item_id", id, "purchased", it.Purchased)

	return it, nil
}

func (s *Service) Deactivate(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeactivateItem(ctx, id)
}

// Pending sums the prices of items not yet purchased.
func (s *Service) Pending(ctx context.Context) (decimal.Decimal, error) {
	items, _, err := s.repo.ListItems(ctx, ListFilter{Purchased: new(false)})
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price)
	}

	return total, nil
}
