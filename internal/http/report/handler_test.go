package report_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	reporthttp "github.com/MrJamesThe3rd/midas/internal/http/report"
	"github.com/MrJamesThe3rd/midas/internal/report"
)

func newRouter(repo report.Repository) http.Handler {
	svc := report.NewService(repo, report.WithClock(func() time.Time {
		return time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	}))
	h := reporthttp.NewHandler(svc)

	r := chi.NewRouter()
	r.Route("/outflows", h.OutflowRoutes)
	r.Route("/reports", h.Routes)

	return r
}

func TestHandler_DailyTotals(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := report.NewMockRepository(ctrl)

	feb15 := time.Date(2025, time.February, 15, 0, 0, 0, 0, time.UTC)
	repo.EXPECT().
		DailyTotals(gomock.Any(), time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC)).
		Return([]report.DayTotal{{Date: feb15, Total: decimal.NewFromInt(100)}}, nil)

	rec := httptest.NewRecorder()
	newRouter(repo).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/outflows/daily-totals?month=2", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Results []struct {
			Date  string `json:"date"`
			Total string `json:"total"`
		} `json:"results"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body.Results, 28)

	for i, d := range body.Results {
		if i == 14 {
			assert.Equal(t, "2025-02-15", d.Date)
			assert.Equal(t, "100.00", d.Total)

			continue
		}

		assert.Equal(t, "0.00", d.Total, d.Date)
	}
}

func TestHandler_MissingMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := report.NewMockRepository(ctrl)

	for _, path := range []string{"/outflows/daily-totals", "/outflows/category-totals", "/outflows/origin-totals", "/reports/summary"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newRouter(repo).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"month":"Essa query é obrigatória."}`, rec.Body.String())
		})
	}
}

func TestHandler_CategoryTotals(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := report.NewMockRepository(ctrl)

	repo.EXPECT().
		CategoryTotals(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]report.CategoryTotal{
			{Category: "Mercado", Total: decimal.RequireFromString("310.5")},
			{Category: "Transporte", Total: decimal.NewFromInt(90)},
		}, nil)

	rec := httptest.NewRecorder()
	newRouter(repo).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/outflows/category-totals?month=3&year=2025", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"results":[
		{"category":"Mercado","total":"310.50"},
		{"category":"Transporte","total":"90.00"}
	]}`, rec.Body.String())
}
