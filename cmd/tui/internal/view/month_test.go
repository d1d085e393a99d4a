package view

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/midas/internal/report"
)

func TestMonth_Step(t *testing.T) {
	m := ThisMonth(time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC))

	assert.True(t, m.step("["))
	assert.Equal(t, "12/2024", m.String())
	assert.Equal(t, 31, m.Days())

	assert.True(t, m.step("]"))
	assert.True(t, m.step("]"))
	assert.Equal(t, "02/2025", m.String())
	assert.Equal(t, time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC), m.End)

	assert.False(t, m.step("x"))
	assert.Equal(t, "02/2025", m.String())
}

func TestSparkline(t *testing.T) {
	days := []report.DayTotal{
		{Total: decimal.Zero},
		{Total: decimal.NewFromInt(50)},
		{Total: decimal.NewFromInt(100)},
	}

	assert.Equal(t, "▁▄█", sparkline(days))
	assert.Equal(t, "▁▁", sparkline([]report.DayTotal{{Total: decimal.Zero}, {Total: decimal.Zero}}))
}
