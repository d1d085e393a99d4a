// Package render holds the JSON plumbing shared by the API handlers.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/midas/internal/catalog"
	"github.com/MrJamesThe3rd/midas/internal/ledger"
	"github.com/MrJamesThe3rd/midas/internal/setting"
	"github.com/MrJamesThe3rd/midas/internal/user"
	"github.com/MrJamesThe3rd/midas/internal/validate"
	"github.com/MrJamesThe3rd/midas/internal/wishlist"
)

const maxBodyBytes = 1 << 20

var notFound = []error{
	ledger.ErrNotFound,
	catalog.ErrNotFound,
	wishlist.ErrNotFound,
	setting.ErrNotFound,
	user.ErrNotFound,
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Detail writes {"detail": msg}.
func Detail(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"detail": msg})
}

// Error maps service errors to responses: field errors become a 400 with the
// field map, missing records a 404, anything else a logged 500.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	if verr, ok := validate.As(err); ok {
		JSON(w, http.StatusBadRequest, verr.Fields)
		return
	}

	for _, target := range notFound {
		if errors.Is(err, target) {
			Detail(w, http.StatusNotFound, "Não encontrado.")
			return
		}
	}

	slog.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	Detail(w, http.StatusInternalServerError, "Erro interno do servidor.")
}

// Decode reads a JSON body into v and runs its validate tags.
func Decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))

	if err := dec.Decode(v); err != nil {
		return validate.Field("non_field_errors", fmt.Sprintf("JSON inválido: %v", err))
	}

	return validate.Struct(v)
}

// ID parses the {id} URL parameter.
func ID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, validate.Field("id", "Identificador inválido.")
	}

	return id, nil
}

// Page is the paginated list envelope.
type Page[T any] struct {
	Count   int `json:"count"`
	Results []T `json:"results"`
}

func List[S any, T any](items []S, count int, convert func(S) T) Page[T] {
	out := Page[T]{Count: count, Results: make([]T, len(items))}
	for i, it := range items {
		out.Results[i] = convert(it)
	}

	return out
}
