package setting

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/midas/internal/http/render"
	"github.com/MrJamesThe3rd/midas/internal/setting"
	"github.com/MrJamesThe3rd/midas/internal/validate"
)

type Handler struct {
	svc *setting.Service
}

func NewHandler(svc *setting.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type settingResponse struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Description string    `json:"description"`
	Value       string    `json:"value"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toResponse(s *setting.Setting) settingResponse {
	return settingResponse{
		ID:          s.ID,
		Code:        s.Code,
		Description: s.Description,
		Value:       s.Value,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

type settingRequest struct {
	Code        string `json:"code" validate:"required,max=125"`
	Description string `json:"description" validate:"max=350"`
	Value       string `json:"value" validate:"required,max=50"`
}

func (req settingRequest) params() setting.Params {
	return setting.Params{Code: req.Code, Description: req.Description, Value: req.Value}
}

// fail reports a taken code as a field error on top of render.Error.
func fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, setting.ErrDuplicate) {
		err = validate.Field("code", "Já existe uma configuração com este código.")
	}

	render.Error(w, r, err)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	settings, err := h.svc.List(r.Context())
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, render.List(settings, len(settings), toResponse))
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req settingRequest
	if err := render.Decode(w, r, &req); err != nil {
		render.Error(w, r, err)
		return
	}

	s, err := h.svc.Create(r.Context(), req.params())
	if err != nil {
		fail(w, r, err)
		return
	}

	render.JSON(w, http.StatusCreated, toResponse(s))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := render.ID(r)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	s, err := h.svc.Get(r.Context(), id)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, toResponse(s))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := render.ID(r)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	var req settingRequest
	if err := render.Decode(w, r, &req); err != nil {
		render.Error(w, r, err)
		return
	}

	s, err := h.svc.Update(r.Context(), id, req.params())
	if err != nil {
		fail(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, toResponse(s))
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
