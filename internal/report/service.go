package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=report
type Repository interface {
	// DailyTotals returns only the days that have outflows.
	DailyTotals(ctx context.Context, start, end time.Time) ([]DayTotal, error)
	CategoryTotals(ctx context.Context, start, end time.Time) ([]CategoryTotal, error)
	OriginTotals(ctx context.Context, start, end time.Time) ([]OriginTotal, error)
}

type Service struct {
	repo Repository
	now  func() time.Time
	loc  *time.Location
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithLocation(loc *time.Location) Option {
	return func(s *Service) { s.loc = loc }
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{repo: repo, now: time.Now, loc: time.UTC}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Period resolves month and year query values against today in the
// configured location.
func (s *Service) Period(month, year string) (Period, error) {
	return ParsePeriod(month, year, s.now().In(s.loc))
}

// DailyTotals returns one entry per day of the period, zero where nothing
// was spent.
func (s *Service) DailyTotals(ctx context.Context, p Period) ([]DayTotal, error) {
	sparse, err := s.repo.DailyTotals(ctx, p.Start, p.End)
	if err != nil {
		return nil, fmt.Errorf("daily totals: %w", err)
	}

	byDay := make(map[int]decimal.Decimal, len(sparse))
	for _, d := range sparse {
		if d.Date.Before(p.Start) || d.Date.After(p.End) {
			continue
		}

		byDay[d.Date.Day()] = byDay[d.Date.Day()].Add(d.Total)
	}

	out := make([]DayTotal, p.Days())
	for i := range out {
		total, ok := byDay[i+1]
		if !ok {
			total = decimal.Zero
		}

		out[i] = DayTotal{Date: p.Start.AddDate(0, 0, i), Total: total}
	}

	return out, nil
}

func (s *Service) CategoryTotals(ctx context.Context, p Period) ([]CategoryTotal, error) {
	totals, err := s.repo.CategoryTotals(ctx, p.Start, p.End)
	if err != nil {
		return nil, fmt.Errorf("category totals: %w", err)
	}

	return totals, nil
}

func (s *Service) OriginTotals(ctx context.Context, p Period) ([]OriginTotal, error) {
	totals, err := s.repo.OriginTotals(ctx, p.Start, p.End)
	if err != nil {
		return nil, fmt.Errorf("origin totals: %w", err)
	}

	return totals, nil
}

// Summary runs the three aggregations concurrently and derives the month's
// income, spending and balance from them.
func (s *Service) Summary(ctx context.Context, p Period) (*Summary, error) {
	sum := &Summary{Period: p}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		days, err := s.DailyTotals(gctx, p)
		sum.Days = days

		return err
	})

	g.Go(func() error {
		cats, err := s.CategoryTotals(gctx, p)
		sum.Categories = cats

		return err
	})

	g.Go(func() error {
		origins, err := s.OriginTotals(gctx, p)
		sum.Origins = origins

		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sum.Spent = decimal.Zero
	for _, d := range sum.Days {
		sum.Spent = sum.Spent.Add(d.Total)
	}

	sum.Income = decimal.Zero
	for _, o := range sum.Origins {
		sum.Income = sum.Income.Add(o.Total)
	}

	sum.Balance = sum.Income.Sub(sum.Spent)

	return sum, nil
}
