package report

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/midas/internal/http/render"
	"github.com/MrJamesThe3rd/midas/internal/ledger"
	"github.com/MrJamesThe3rd/midas/internal/report"
)

type Handler struct {
	svc *report.Service
}

func NewHandler(svc *report.Service) *Handler {
	return &Handler{svc: svc}
}

// OutflowRoutes mounts the chart endpoints under the outflows resource.
func (h *Handler) OutflowRoutes(r chi.Router) {
	r.Get("/daily-totals", h.daily)
	r.Get("/category-totals", h.categories)
	r.Get("/origin-totals", h.origins)
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/summary", h.summary)
}

type results[T any] struct {
	Results []T `json:"results"`
}

type dayResponse struct {
	Date  render.Date `json:"date"`
	Total string      `json:"total"`
}

type categoryResponse struct {
	Category string `json:"category"`
	Total    string `json:"total"`
}

type originResponse struct {
	Origin      ledger.Origin `json:"origin"`
	OriginLabel string        `json:"origin_label"`
	Total       string        `json:"total"`
}

type summaryResponse struct {
	Year       int                `json:"year"`
	Month      int                `json:"month"`
	Income     string             `json:"income"`
	Spent      string             `json:"spent"`
	Balance    string             `json:"balance"`
	Days       []dayResponse      `json:"days"`
	Categories []categoryResponse `json:"categories"`
	Origins    []originResponse   `json:"origins"`
}

func toDays(in []report.DayTotal) []dayResponse {
	out := make([]dayResponse, len(in))
	for i, d := range in {
		out[i] = dayResponse{Date: render.NewDate(d.Date), Total: d.Total.StringFixed(2)}
	}

	return out
}

func toCategories(in []report.CategoryTotal) []categoryResponse {
	out := make([]categoryResponse, len(in))
	for i, c := range in {
		out[i] = categoryResponse{Category: c.Category, Total: c.Total.StringFixed(2)}
	}

	return out
}

func toOrigins(in []report.OriginTotal) []originResponse {
	out := make([]originResponse, len(in))
	for i, o := range in {
		out[i] = originResponse{Origin: o.Origin, OriginLabel: o.Origin.Label(), Total: o.Total.StringFixed(2)}
	}

	return out
}

func (h *Handler) period(w http.ResponseWriter, r *http.Request) (report.Period, bool) {
	q := r.URL.Query()

	p, err := h.svc.Period(q.Get("month"), q.Get("year"))
	if err != nil {
		render.Error(w, r, err)
		return report.Period{}, false
	}

	return p, true
}

func (h *Handler) daily(w http.ResponseWriter, r *http.Request) {
	p, ok := h.period(w, r)
	if !ok {
		return
	}

	days, err := h.svc.DailyTotals(r.Context(), p)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, results[dayResponse]{Results: toDays(days)})
}

func (h *Handler) categories(w http.ResponseWriter, r *http.Request) {
	p, ok := h.period(w, r)
	if !ok {
		return
	}

	cats, err := h.svc.CategoryTotals(r.Context(), p)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, results[categoryResponse]{Results: toCategories(cats)})
}

func (h *Handler) origins(w http.ResponseWriter, r *http.Request) {
	p, ok := h.period(w, r)
	if !ok {
		return
	}

	origins, err := h.svc.OriginTotals(r.Context(), p)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, results[originResponse]{Results: toOrigins(origins)})
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	p, ok := h.period(w, r)
	if !ok {
		return
	}

	s, err := h.svc.Summary(r.Context(), p)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, summaryResponse{
		Year:       s.Period.Year,
		Month:      int(s.Period.Month),
		Income:     s.Income.StringFixed(2),
		Spent:      s.Spent.StringFixed(2),
		Balance:    s.Balance.StringFixed(2),
		Days:       toDays(s.Days),
		Categories: toCategories(s.Categories),
		Origins:    toOrigins(s.Origins),
	})
}
