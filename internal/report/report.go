// Package report aggregates a month of inflows and outflows for charts.
package report

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/midas/internal/ledger"
	"github.com/MrJamesThe3rd/midas/internal/validate"
)

// Period is one calendar month, both bounds inclusive.
type Period struct {
	Year  int
	Month time.Month
	Start time.Time
	End   time.Time
}

func NewPeriod(year int, month time.Month) Period {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	return Period{
		Year:  year,
		Month: month,
		Start: start,
		End:   ledger.LastOfMonth(start),
	}
}

// Days is the number of days in the period.
func (p Period) Days() int {
	return p.End.Day()
}

// ParsePeriod reads the month and year query values. Month is required;
// year defaults to the year of today.
func ParsePeriod(month, year string, today time.Time) (Period, error) {
	verr := &validate.Error{}

	month = strings.TrimSpace(month)
	year = strings.TrimSpace(year)

	m, err := strconv.Atoi(month)

	switch {
	case month == "":
		verr.Add("month", "Essa query é obrigatória.")
	case err != nil || m < 1 || m > 12:
		verr.Add("month", "Informe um mês entre 1 e 12.")
	}

	y := today.Year()

	if year != "" {
		parsed, err := strconv.Atoi(year)
		if err != nil || parsed < 1900 || parsed > 9999 {
			verr.Add("year", "Informe um ano válido.")
		}

		y = parsed
	}

	if err := verr.Err(); err != nil {
		return Period{}, err
	}

	return NewPeriod(y, time.Month(m)), nil
}

type DayTotal struct {
	Date  time.Time
	Total decimal.Decimal
}

type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

type OriginTotal struct {
	Origin ledger.Origin
	Total  decimal.Decimal
}

type Summary struct {
	Period     Period
	Days       []DayTotal
	Categories []CategoryTotal
	Origins    []OriginTotal
	Income     decimal.Decimal
	Spent      decimal.Decimal
	Balance    decimal.Decimal
}
