package view

import (
	"fmt"
	"time"

	"github.com/MrJamesThe3rd/midas/internal/report"
)

// Month is the calendar month a screen is filtered to. "[" and "]" step it.
type Month struct {
	report.Period
}

func ThisMonth(today time.Time) Month {
	return Month{report.NewPeriod(today.Year(), today.Month())}
}

func (m Month) Prev() Month {
	p := m.Start.AddDate(0, -1, 0)
	return Month{report.NewPeriod(p.Year(), p.Month())}
}

func (m Month) Next() Month {
	n := m.Start.AddDate(0, 1, 0)
	return Month{report.NewPeriod(n.Year(), n.Month())}
}

func (m Month) String() string {
	return fmt.Sprintf("%02d/%d", int(m.Month), m.Year)
}

// step moves m for the month navigation keys and reports whether key was one.
func (m *Month) step(key string) bool {
	switch key {
	case "[":
		*m = m.Prev()
	case "]":
		*m = m.Next()
	default:
		return false
	}

	return true
}
