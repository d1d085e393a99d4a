package ledger

import "time"

// daysPerInstallment spaces generated installments roughly one month apart.
const daysPerInstallment = 30

// Calendar decides which days count as business days when locating the
// salary payment date of a month.
type Calendar struct {
	// SaturdayIsBusinessDay follows the Brazilian labour-law reading of
	// "dia útil", where only Sundays are excluded.
	SaturdayIsBusinessDay bool
}

func (c Calendar) IsBusinessDay(t time.Time) bool {
	switch t.Weekday() {
	case time.Sunday:
		return false
	case time.Saturday:
		return c.SaturdayIsBusinessDay
	}

	return true
}

// NthBusinessDay walks forward from the first day of month, one calendar day
// at a time, and returns the day on which the n-th business day is reached.
// The first of the month counts when it is itself a business day.
func (c Calendar) NthBusinessDay(year int, month time.Month, n int) time.Time {
	day := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	count := 0
	for {
		if c.IsBusinessDay(day) {
			count++
			if count >= n {
				return day
			}
		}

		day = day.AddDate(0, 0, 1)
	}
}

// FirstOfMonth normalises t to the first day of its month.
func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// LastOfMonth returns the last calendar day of t's month.
func LastOfMonth(t time.Time) time.Time {
	return FirstOfMonth(t).AddDate(0, 1, -1)
}

// InstallmentMonth is the first day of the month in which installment n is
// due, counting n×30 days from today.
func InstallmentMonth(today time.Time, n int) time.Time {
	return FirstOfMonth(DateOnly(today).AddDate(0, 0, n*daysPerInstallment))
}
