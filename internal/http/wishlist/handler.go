package wishlist

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/midas/internal/http/render"
	"github.com/MrJamesThe3rd/midas/internal/page"
	"github.com/MrJamesThe3rd/midas/internal/validate"
	"github.com/MrJamesThe3rd/midas/internal/wishlist"
)

type Handler struct {
	svc *wishlist.Service
}

func NewHandler(svc *wishlist.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/pending", h.pending)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/toggle-purchased", h.toggle)
}

type itemResponse struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Kind      wishlist.Kind `json:"kind"`
	KindLabel string        `json:"kind_label"`
	Price     string        `json:"price"`
	Link      string        `json:"link"`
	Purchased bool          `json:"purchased"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func toResponse(it *wishlist.Item) itemResponse {
	return itemResponse{
		ID:        it.ID,
		Name:      it.Name,
		Kind:      it.Kind,
		KindLabel: it.Kind.Label(),
		Price:     it.Price.StringFixed(2),
		Link:      it.Link,
		Purchased: it.Purchased,
		CreatedAt: it.CreatedAt,
		UpdatedAt: it.UpdatedAt,
	}
}

type itemRequest struct {
	Name      string          `json:"name" validate:"required,max=50"`
	Kind      wishlist.Kind   `json:"kind" validate:"omitempty,oneof=LIV SON ROP TEN PER OUT"`
	Price     decimal.Decimal `json:"price" validate:"required"`
	Link      string          `json:"link" validate:"omitempty,url"`
	Purchased bool            `json:"purchased"`
}

func (req itemRequest) params() wishlist.Params {
	return wishlist.Params{
		Name:      req.Name,
		Kind:      req.Kind,
		Price:     req.Price,
		Link:      req.Link,
		Purchased: req.Purchased,
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := wishlist.ListFilter{Page: page.FromQuery(q)}

	if s := q.Get("kind"); s != "" {
		k := wishlist.Kind(s)
		if !k.Valid() {
			render.Error(w, r, validate.Field("kind", "Escolha um tipo válido."))
			return
		}

		filter.Kind = &k
	}

	if s := q.Get("purchased"); s != "" {
		purchased, err := strconv.ParseBool(s)
		if err != nil {
			render.Error(w, r, validate.Field("purchased", "Informe true ou false."))
			return
		}

		filter.Purchased = &purchased
	}

	items, count, err := h.svc.List(r.Context(), filter)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, render.List(items, count, toResponse))
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := render.Decode(w, r, &req); err != nil {
		render.Error(w, r, err)
		return
	}

	it, err := h.svc.Create(r.Context(), req.params())
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusCreated, toResponse(it))
}

func (h *Handler) pending(w http.ResponseWriter, r *http.Request) {
	total, err := h.svc.Pending(r.Context())
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, map[string]string{"total": total.StringFixed(2)})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := render.ID(r)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	it, err := h.svc.Get(r.Context(), id)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, toResponse(it))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := render.ID(r)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	var req itemRequest
	if err := render.Decode(w, r, &req); err != nil {
		render.Error(w, r, err)
		return
	}

	it, err := h.svc.Update(r.Context(), id, req.params())
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, toResponse(it))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := render.ID(r)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	if err := h.svc.Deactivate(r.Context(), id); err != nil {
		render.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) toggle(w http.ResponseWriter, r *http.Request) {
	id, err := render.ID(r)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	it, err := h.svc.TogglePurchased(r.Context(), id)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, toResponse(it))
}
