package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/midas/internal/ledger"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestCalendar_NthBusinessDay(t *testing.T) {
	tests := []struct {
		name     string
		calendar ledger.Calendar
		year     int
		month    time.Month
		n        int
		want     time.Time
	}{
		{
			// March 2025 starts on a Saturday; Sunday 2nd is skipped.
			name:     "MondayToSaturday_StartsSaturday",
			calendar: ledger.Calendar{SaturdayIsBusinessDay: true},
			year:     2025, month: time.March, n: 5,
			want: date(2025, 3, 6),
		},
		{
			name:     "MondayToFriday_StartsSaturday",
			calendar: ledger.Calendar{},
			year:     2025, month: time.March, n: 5,
			want: date(2025, 3, 7),
		},
		{
			// June 2025 starts on a Sunday.
			name:     "MondayToSaturday_StartsSunday",
			calendar: ledger.Calendar{SaturdayIsBusinessDay: true},
			year:     2025, month: time.June, n: 5,
			want: date(2025, 6, 6),
		},
		{
			// September 2025 starts on a Monday.
			name:     "FirstDayIsBusinessDay",
			calendar: ledger.Calendar{SaturdayIsBusinessDay: true},
			year:     2025, month: time.September, n: 1,
			want: date(2025, 9, 1),
		},
		{
			// November 2025 starts on a Saturday; weekdays only.
			name:     "MondayToFriday_SpansWeekend",
			calendar: ledger.Calendar{},
			year:     2025, month: time.November, n: 5,
			want: date(2025, 11, 7),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.calendar.NthBusinessDay(tt.year, tt.month, tt.n)
			assert.Equal(t, tt.want, got)
			assert.True(t, tt.calendar.IsBusinessDay(got))
		})
	}
}

func TestInstallmentMonth(t *testing.T) {
	today := date(2025, 1, 20)

	assert.Equal(t, date(2025, 2, 1), ledger.InstallmentMonth(today, 1))
	assert.Equal(t, date(2025, 3, 1), ledger.InstallmentMonth(today, 2))
	assert.Equal(t, date(2025, 4, 1), ledger.InstallmentMonth(today, 3))
}

func TestMonthBounds(t *testing.T) {
	assert.Equal(t, date(2025, 2, 1), ledger.FirstOfMonth(date(2025, 2, 17)))
	assert.Equal(t, date(2025, 2, 28), ledger.LastOfMonth(date(2025, 2, 17)))
	assert.Equal(t, date(2024, 2, 29), ledger.LastOfMonth(date(2024, 2, 1)))
}
