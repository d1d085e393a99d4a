package auth

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/midas/internal/auth"
	"github.com/MrJamesThe3rd/midas/internal/http/render"
	"github.com/MrJamesThe3rd/midas/internal/user"
)

type Handler struct {
	users  *user.Service
	issuer *auth.Issuer
}

func NewHandler(users *user.Service, issuer *auth.Issuer) *Handler {
	return &Handler{users: users, issuer: issuer}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/obtain", h.obtain)
	r.Post("/refresh", h.refresh)
	r.Post("/verify", h.verify)
}

type obtainRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type pairResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

func (h *Handler) obtain(w http.ResponseWriter, r *http.Request) {
	var req obtainRequest
	if err := render.Decode(w, r, &req); err != nil {
		render.Error(w, r, err)
		return
	}

	u, err := h.users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			render.Detail(w, http.StatusUnauthorized, "Nenhuma conta ativa encontrada com as credenciais fornecidas.")
			return
		}

		render.Error(w, r, err)

		return
	}

	pair, err := h.issuer.Pair(u.ID, u.Staff)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, pairResponse{Access: pair.Access, Refresh: pair.Refresh})
}

type refreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := render.Decode(w, r, &req); err != nil {
		render.Error(w, r, err)
		return
	}

	access, err := h.issuer.Refresh(req.Refresh, func(id uuid.UUID) (bool, error) {
		u, err := h.users.Get(r.Context(), id)
		if err != nil {
			return false, err
		}

		return u.Staff, nil
	})
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) || errors.Is(err, user.ErrNotFound) {
			render.Detail(w, http.StatusUnauthorized, "O token é inválido ou expirado.")
			return
		}

		render.Error(w, r, err)

		return
	}

	render.JSON(w, http.StatusOK, map[string]string{"access": access})
}

type verifyRequest struct {
	Token string `json:"token" validate:"required"`
}

func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := render.Decode(w, r, &req); err != nil {
		render.Error(w, r, err)
		return
	}

	if _, err := h.issuer.Parse(req.Token, ""); err != nil {
		render.Detail(w, http.StatusUnauthorized, "O token é inválido ou expirado.")
		return
	}

	render.JSON(w, http.StatusOK, struct{}{})
}
