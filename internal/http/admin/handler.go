// Package admin exposes the bulk actions the back-office runs over a
// selection of outflows.
package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/midas/internal/http/outflow"
	"github.com/MrJamesThe3rd/midas/internal/http/render"
	"github.com/MrJamesThe3rd/midas/internal/ledger"
)

type Handler struct {
	svc *ledger.Service
}

func NewHandler(svc *ledger.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/mark-paid", h.markPaid(true))
	r.Post("/mark-unpaid", h.markPaid(false))
	r.Post("/duplicate", h.duplicate)
	r.Post("/sum", h.sum)
}

type selectionRequest struct {
	IDs []uuid.UUID `json:"ids" validate:"required,min=1"`
}

type updatedResponse struct {
	Updated int64 `json:"updated"`
}

type sumResponse struct {
	Count     int    `json:"count"`
	Total     string `json:"total"`
	Formatted string `json:"formatted"`
}

func (h *Handler) markPaid(paid bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req selectionRequest
		if err := render.Decode(w, r, &req); err != nil {
			render.Error(w, r, err)
			return
		}

		n, err := h.svc.MarkPaid(r.Context(), req.IDs, paid)
		if err != nil {
			render.Error(w, r, err)
			return
		}

		render.JSON(w, http.StatusOK, updatedResponse{Updated: n})
	}
}

func (h *Handler) duplicate(w http.ResponseWriter, r *http.Request) {
	var req selectionRequest
	if err := render.Decode(w, r, &req); err != nil {
		render.Error(w, r, err)
		return
	}

	clones, err := h.svc.Duplicate(r.Context(), req.IDs)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusCreated, render.List(clones, len(clones), outflow.ToResponse))
}

// sum accepts an empty selection and answers with a zero total.
func (h *Handler) sum(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs []uuid.UUID `json:"ids"`
	}

	if err := render.Decode(w, r, &req); err != nil {
		render.Error(w, r, err)
		return
	}

	res, err := h.svc.Sum(r.Context(), req.IDs)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, sumResponse{
		Count:     res.Count,
		Total:     res.Total.StringFixed(2),
		Formatted: res.Formatted,
	})
}
