package report_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/midas/internal/ledger"
	"github.com/MrJamesThe3rd/midas/internal/report"
	"github.com/MrJamesThe3rd/midas/internal/validate"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParsePeriod(t *testing.T) {
	today := day(2025, time.July, 14)

	tests := []struct {
		name      string
		month     string
		year      string
		want      report.Period
		wantField string
		wantMsg   string
	}{
		{
			name:  "DefaultYear",
			month: "2",
			want:  report.NewPeriod(2025, time.February),
		},
		{
			name:  "ExplicitLeapYear",
			month: "2",
			year:  "2024",
			want: report.Period{
				Year: 2024, Month: time.February,
				Start: day(2024, time.February, 1), End: day(2024, time.February, 29),
			},
		},
		{
			name:      "MissingMonth",
			wantField: "month",
			wantMsg:   "Essa query é obrigatória.",
		},
		{
			name:      "MonthOutOfRange",
			month:     "13",
			wantField: "month",
		},
		{
			name:      "MonthNotNumeric",
			month:     "fev",
			wantField: "month",
		},
		{
			name:      "BadYear",
			month:     "3",
			year:      "dois mil",
			wantField: "year",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := report.ParsePeriod(tt.month, tt.year, today)
			if tt.wantField != "" {
				verr, ok := validate.As(err)
				require.True(t, ok)
				require.Contains(t, verr.Fields, tt.wantField)

				if tt.wantMsg != "" {
					assert.Equal(t, tt.wantMsg, verr.Fields[tt.wantField])
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_DailyTotals(t *testing.T) {
	feb := report.NewPeriod(2025, time.February)

	tests := []struct {
		name    string
		period  report.Period
		sparse  []report.DayTotal
		wantLen int
		nonZero map[int]string
	}{
		{
			name:    "FebruaryNonLeap",
			period:  feb,
			sparse:  []report.DayTotal{{Date: day(2025, time.February, 15), Total: decimal.NewFromInt(100)}},
			wantLen: 28,
			nonZero: map[int]string{15: "100"},
		},
		{
			name:    "EmptyMonth",
			period:  report.NewPeriod(2025, time.April),
			wantLen: 30,
		},
		{
			name:   "LeapFebruary",
			period: report.NewPeriod(2024, time.February),
			sparse: []report.DayTotal{
				{Date: day(2024, time.February, 29), Total: decimal.RequireFromString("10.50")},
			},
			wantLen: 29,
			nonZero: map[int]string{29: "10.50"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := report.NewMockRepository(ctrl)
			repo.EXPECT().DailyTotals(gomock.Any(), tt.period.Start, tt.period.End).Return(tt.sparse, nil)

			got, err := report.NewService(repo).DailyTotals(context.Background(), tt.period)
			require.NoError(t, err)
			require.Len(t, got, tt.wantLen)

			for i, d := range got {
				assert.Equal(t, tt.period.Start.AddDate(0, 0, i), d.Date)

				want := decimal.Zero
				if s, ok := tt.nonZero[i+1]; ok {
					want = decimal.RequireFromString(s)
				}

				assert.True(t, d.Total.Equal(want), "day %d: got %s", i+1, d.Total)
			}
		})
	}
}

func TestService_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)

	p := report.NewPeriod(2025, time.March)
	repo := report.NewMockRepository(ctrl)

	repo.EXPECT().DailyTotals(gomock.Any(), p.Start, p.End).Return([]report.DayTotal{
		{Date: day(2025, time.March, 6), Total: decimal.RequireFromString("1500.00")},
		{Date: day(2025, time.March, 10), Total: decimal.RequireFromString("250.40")},
	}, nil)
	repo.EXPECT().CategoryTotals(gomock.Any(), p.Start, p.End).Return([]report.CategoryTotal{
		{Category: "Aluguel", Total: decimal.RequireFromString("1500.00")},
		{Category: "Mercado", Total: decimal.RequireFromString("250.40")},
	}, nil)
	repo.EXPECT().OriginTotals(gomock.Any(), p.Start, p.End).Return([]report.OriginTotal{
		{Origin: ledger.OriginSalary, Total: decimal.NewFromInt(4000)},
		{Origin: ledger.OriginProject, Total: decimal.NewFromInt(600)},
	}, nil)

	got, err := report.NewService(repo).Summary(context.Background(), p)
	require.NoError(t, err)

	assert.Len(t, got.Days, 31)
	assert.Len(t, got.Categories, 2)
	assert.True(t, got.Income.Equal(decimal.NewFromInt(4600)))
	assert.True(t, got.Spent.Equal(decimal.RequireFromString("1750.40")))
	assert.True(t, got.Balance.Equal(decimal.RequireFromString("2849.60")))
}

func TestService_Summary_Error(t *testing.T) {
	ctrl := gomock.NewController(t)

	p := report.NewPeriod(2025, time.March)
	repo := report.NewMockRepository(ctrl)

	repo.EXPECT().DailyTotals(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	repo.EXPECT().CategoryTotals(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout")).AnyTimes()
	repo.EXPECT().OriginTotals(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	got, err := report.NewService(repo).Summary(context.Background(), p)
	assert.Nil(t, got)
	assert.ErrorContains(t, err, "timeout")
}

func TestService_Period_UsesLocation(t *testing.T) {
	// 02:00 UTC on Jan 1st is still Dec 31st in São Paulo.
	now := time.Date(2026, time.January, 1, 2, 0, 0, 0, time.UTC)
	loc := time.FixedZone("BRT", -3*60*60)

	svc := report.NewService(nil, report.WithClock(func() time.Time { return now }), report.WithLocation(loc))

	got, err := svc.Period("12", "")
	require.NoError(t, err)
	assert.Equal(t, 2025, got.Year)
	assert.Equal(t, time.December, got.Month)
}
