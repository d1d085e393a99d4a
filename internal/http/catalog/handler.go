package catalog

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/midas/internal/catalog"
	"github.com/MrJamesThe3rd/midas/internal/http/render"
	"github.com/MrJamesThe3rd/midas/internal/page"
)

type Handler struct {
	svc *catalog.Service
}

func NewHandler(svc *catalog.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) CategoryRoutes(r chi.Router) {
	r.Get("/", h.listCategories)
	r.Post("/", h.createCategory)
	r.Get("/{id}", h.getCategory)
	r.Put("/{id}", h.updateCategory)
	r.Delete("/{id}", h.deleteCategory)
}

func (h *Handler) DestinationRoutes(r chi.Router) {
	r.Get("/", h.listDestinations)
	r.Post("/", h.createDestination)
	r.Get("/{id}", h.getDestination)
	r.Put("/{id}", h.updateDestination)
	r.Delete("/{id}", h.deleteDestination)
}

type categoryResponse struct {
	ID          uuid.UUID    `json:"id"`
	Code        catalog.Code `json:"code"`
	CodeLabel   string       `json:"code_label"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

func toCategory(c *catalog.Category) categoryResponse {
	return categoryResponse{
		ID:          c.ID,
		Code:        c.Code,
		CodeLabel:   c.Code.Label(),
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

type categoryRequest struct {
	Code        catalog.Code `json:"code" validate:"omitempty,oneof=DES LAZ ECO INV CRE IMP"`
	Name        string       `json:"name" validate:"required,max=50"`
	Description string       `json:"description"`
}

func (req categoryRequest) params() catalog.CategoryParams {
	return catalog.CategoryParams{Code: req.Code, Name: req.Name, Description: req.Description}
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	cats, count, err := h.svc.ListCategories(r.Context(), page.FromQuery(r.URL.Query()))
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, render.List(cats, count, toCategory))
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := render.Decode(w, r, &req); err != nil {
		render.Error(w, r, err)
		return
	}

	c, err := h.svc.CreateCategory(r.Context(), req.params())
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusCreated, toCategory(c))
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	id, err := render.ID(r)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	c, err := h.svc.GetCategory(r.Context(), id)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, toCategory(c))
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := render.ID(r)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	var req categoryRequest
	if err := render.Decode(w, r, &req); err != nil {
		render.Error(w, r, err)
		return
	}

	c, err := h.svc.UpdateCategory(r.Context(), id, req.params())
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, toCategory(c))
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := render.ID(r)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	if err := h.svc.DeactivateCategory(r.Context(), id); err != nil {
		render.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type destinationResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toDestination(d *catalog.Destination) destinationResponse {
	return destinationResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

type destinationRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
}

func (h *Handler) listDestinations(w http.ResponseWriter, r *http.Request) {
	dests, count, err := h.svc.ListDestinations(r.Context(), page.FromQuery(r.URL.Query()))
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, render.List(dests, count, toDestination))
}

func (h *Handler) createDestination(w http.ResponseWriter, r *http.Request) {
	var req destinationRequest
	if err := render.Decode(w, r, &req); err != nil {
		render.Error(w, r, err)
		return
	}

	d, err := h.svc.CreateDestination(r.Context(), catalog.DestinationParams{Name: req.Name, Description: req.Description})
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusCreated, toDestination(d))
}

func (h *Handler) getDestination(w http.ResponseWriter, r *http.Request) {
	id, err := render.ID(r)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	d, err := h.svc.GetDestination(r.Context(), id)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, toDestination(d))
}

func (h *Handler) updateDestination(w http.ResponseWriter, r *http.Request) {
	id, err := render.ID(r)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	var req destinationRequest
	if err := render.Decode(w, r, &req); err != nil {
		render.Error(w, r, err)
		return
	}

	d, err := h.svc.UpdateDestination(r.Context(), id, catalog.DestinationParams{Name: req.Name, Description: req.Description})
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, toDestination(d))
}

func (h *Handler) deleteDestination(w http.ResponseWriter, r *http.Request) {
	id, err := render.ID(r)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	if err := h.svc.DeactivateDestination(r.Context(), id); err != nil {
		render.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
