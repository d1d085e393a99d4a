package outflow

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/midas/internal/auth"
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
	r.Get("/fixed", h.fixed)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.With(auth.RequireStaff).Post("/{id}/installments", h.installments)
}

type Response struct {
	ID                uuid.UUID   `json:"id"`
	InflowID          uuid.UUID   `json:"inflow_id"`
	Description       string      `json:"description"`
	Amount            string      `json:"amount"`
	Installment       *int        `json:"installment"`
	TotalInstallments *int        `json:"total_installments"`
	ExpenseDate       render.Date `json:"expense_date"`
	CategoryID        uuid.UUID   `json:"category_id"`
	CategoryName      string      `json:"category_name,omitempty"`
	DestinationID     *uuid.UUID  `json:"destination_id"`
	ParentID          *uuid.UUID  `json:"parent_id"`
	Paid              bool        `json:"paid"`
	Fixed             bool        `json:"fixed"`
	Mandatory         *bool       `json:"mandatory"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

func ToResponse(o *ledger.Outflow) Response {
	return Response{
		ID:                o.ID,
		InflowID:          o.InflowID,
		Description:       o.Description,
		Amount:            o.Amount.StringFixed(2),
		Installment:       o.Installment,
		TotalInstallments: o.TotalInstallments,
		ExpenseDate:       render.NewDate(o.ExpenseDate),
		CategoryID:        o.CategoryID,
		CategoryName:      o.CategoryName,
		DestinationID:     o.DestinationID,
		ParentID:          o.ParentID,
		Paid:              o.Paid,
		Fixed:             o.Fixed,
		Mandatory:         o.Mandatory,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}

func (h *Handler) filter(r *http.Request) (ledger.OutflowFilter, error) {
	q := r.URL.Query()
	filter := ledger.OutflowFilter{Page: page.FromQuery(q)}
	verr := &validate.Error{}

	if q.Get("month") != "" {
		p, err := report.ParsePeriod(q.Get("month"), q.Get("year"), h.svc.Today())
		verr.Merge(err)

		if err == nil {
			filter.StartDate, filter.EndDate = &p.Start, &p.End
		}
	}

	if s := q.Get("paid"); s != "" {
		paid, err := strconv.ParseBool(s)
		if err != nil {
			verr.Add("paid", "Informe true ou false.")
		}

		filter.Paid = &paid
	}

	for key, dst := range map[string]**uuid.UUID{"category_id": &filter.CategoryID, "inflow_id": &filter.InflowID} {
		s := q.Get(key)
		if s == "" {
			continue
		}

		id, err := uuid.Parse(s)
		if err != nil {
			verr.Add(key, "Identificador inválido.")
			continue
		}

		*dst = &id
	}

	return filter, verr.Err()
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter, err := h.filter(r)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	outflows, count, err := h.svc.ListOutflows(r.Context(), filter)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, render.List(outflows, count, ToResponse))
}

func (h *Handler) fixed(w http.ResponseWriter, r *http.Request) {
	filter, err := h.filter(r)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	outflows, count, err := h.svc.FixedOutflows(r.Context(), filter)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, render.List(outflows, count, ToResponse))
}

type createRequest struct {
	InflowID          uuid.UUID       `json:"inflow_id"`
	Description       string          `json:"description"`
	Amount            decimal.Decimal `json:"amount"`
	Installment       *int            `json:"installment" validate:"omitempty,gte=1"`
	TotalInstallments *int            `json:"total_installments" validate:"omitempty,gte=1"`
	ExpenseDate       *render.Date    `json:"expense_date"`
	CategoryID        uuid.UUID       `json:"category_id"`
	DestinationID     *uuid.UUID      `json:"destination_id"`
	ParentID          *uuid.UUID      `json:"parent_id"`
	Paid              bool            `json:"paid"`
	Fixed             bool            `json:"fixed"`
	Mandatory         *bool           `json:"mandatory"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := render.Decode(w, r, &req); err != nil {
		render.Error(w, r, err)
		return
	}

	params := ledger.CreateOutflowParams{
		InflowID:          req.InflowID,
		Description:       req.Description,
		Amount:            req.Amount,
		Installment:       req.Installment,
		TotalInstallments: req.TotalInstallments,
		CategoryID:        req.CategoryID,
		DestinationID:     req.DestinationID,
		ParentID:          req.ParentID,
		Paid:              req.Paid,
		Fixed:             req.Fixed,
		Mandatory:         req.Mandatory,
	}

	if req.ExpenseDate != nil {
		params.ExpenseDate = &req.ExpenseDate.Time
	}

	out, err := h.svc.CreateOutflow(r.Context(), params)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusCreated, ToResponse(out))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := render.ID(r)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	out, err := h.svc.GetOutflow(r.Context(), id)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, ToResponse(out))
}

type updateRequest struct {
	InflowID          *uuid.UUID       `json:"inflow_id,omitempty"`
	Description       *string          `json:"description,omitempty"`
	Amount            *decimal.Decimal `json:"amount,omitempty"`
	Installment       *int             `json:"installment,omitempty"`
	TotalInstallments *int             `json:"total_installments,omitempty"`
	ExpenseDate       *render.Date     `json:"expense_date,omitempty"`
	CategoryID        *uuid.UUID       `json:"category_id,omitempty"`
	DestinationID     *uuid.UUID       `json:"destination_id,omitempty"`
	ParentID          *uuid.UUID       `json:"parent_id,omitempty"`
	Paid              *bool            `json:"paid,omitempty"`
	Fixed             *bool            `json:"fixed,omitempty"`
	Mandatory         *bool            `json:"mandatory,omitempty"`
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

	params := ledger.UpdateOutflowParams{
		InflowID:          req.InflowID,
		Description:       req.Description,
		Amount:            req.Amount,
		Installment:       req.Installment,
		TotalInstallments: req.TotalInstallments,
		CategoryID:        req.CategoryID,
		DestinationID:     req.DestinationID,
		ParentID:          req.ParentID,
		Paid:              req.Paid,
		Fixed:             req.Fixed,
		Mandatory:         req.Mandatory,
	}

	if req.ExpenseDate != nil {
		params.ExpenseDate = &req.ExpenseDate.Time
	}

	out, err := h.svc.UpdateOutflow(r.Context(), id, params)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, ToResponse(out))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := render.ID(r)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	if err := h.svc.DeactivateOutflow(r.Context(), id); err != nil {
		render.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) installments(w http.ResponseWriter, r *http.Request) {
	id, err := render.ID(r)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	created, err := h.svc.GenerateInstallments(r.Context(), id)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusCreated, render.List(created, len(created), ToResponse))
}
