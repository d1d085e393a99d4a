package inflow

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/midas/internal/http/outflow"
	"github.com/MrJamesThe3rd/midas/internal/http/render"
	"github.com/MrJamesThe3rd/midas/internal/ledger"
	"github.com/MrJamesThe3rd/midas/internal/page"
	"github.com/MrJamesThe3rd/midas/internal/report"
	"github.com/MrJamesThe3rd/midas/internal/validate"
)

type Handler struct {
	svc *ledger.Service
}

func NewHandler(svc *ledger.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Get("/{id}/outflows", h.outflows)
}

type inflowResponse struct {
	ID          uuid.UUID     `json:"id"`
	Origin      ledger.Origin `json:"origin"`
	OriginLabel string        `json:"origin_label"`
	Amount      string        `json:"amount"`
	Date        render.Date   `json:"date"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func toResponse(in *ledger.Inflow) inflowResponse {
	return inflowResponse{
		ID:          in.ID,
		Origin:      in.Origin,
		OriginLabel: in.Origin.Label(),
		Amount:      in.Amount.StringFixed(2),
		Date:        render.NewDate(in.Date),
		CreatedAt:   in.CreatedAt,
		UpdatedAt:   in.UpdatedAt,
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := ledger.InflowFilter{Page: page.FromQuery(q)}

	if s := q.Get("origin"); s != "" {
		o := ledger.Origin(s)
		if !o.Valid() {
			render.Error(w, r, validate.Field("origin", "Escolha uma origem válida."))
			return
		}

		filter.Origin = &o
	}

	if q.Get("month") != "" {
		p, err := report.ParsePeriod(q.Get("month"), q.Get("year"), h.svc.Today())
		if err != nil {
			render.Error(w, r, err)
			return
		}

		filter.StartDate, filter.EndDate = &p.Start, &p.End
	}

	inflows, count, err := h.svc.ListInflows(r.Context(), filter)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, render.List(inflows, count, toResponse))
}

type createRequest struct {
	Origin ledger.Origin   `json:"origin" validate:"omitempty,oneof=SAL DEC FER PRO MAN OUT"`
	Amount decimal.Decimal `json:"amount"`
	Date   *render.Date    `json:"date"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := render.Decode(w, r, &req); err != nil {
		render.Error(w, r, err)
		return
	}

	params := ledger.CreateInflowParams{Origin: req.Origin, Amount: req.Amount}
	if req.Date != nil {
		params.Date = req.Date.Time
	}

	in, err := h.svc.CreateInflow(r.Context(), params)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusCreated, toResponse(in))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := render.ID(r)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	in, err := h.svc.GetInflow(r.Context(), id)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, toResponse(in))
}

type updateRequest struct {
	Origin *ledger.Origin   `json:"origin,omitempty" validate:"omitempty,oneof=SAL DEC FER PRO MAN OUT"`
	Amount *decimal.Decimal `json:"amount,omitempty"`
	Date   *render.Date     `json:"date,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := render.ID(r)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	var req updateRequest
	if err := render.Decode(w, r, &req); err != nil {
		render.Error(w, r, err)
		return
	}

	params := ledger.UpdateInflowParams{Origin: req.Origin, Amount: req.Amount}
	if req.Date != nil {
		params.Date = &req.Date.Time
	}

	in, err := h.svc.UpdateInflow(r.Context(), id, params)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, toResponse(in))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := render.ID(r)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	if err := h.svc.DeactivateInflow(r.Context(), id); err != nil {
		render.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) outflows(w http.ResponseWriter, r *http.Request) {
	id, err := render.ID(r)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	outflows, count, err := h.svc.InflowOutflows(r.Context(), id, page.FromQuery(r.URL.Query()))
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, render.List(outflows, count, outflow.ToResponse))
}
