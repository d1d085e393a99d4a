package importcsv

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/midas/internal/catalog"
	"github.com/MrJamesThe3rd/midas/internal/http/render"
	"github.com/MrJamesThe3rd/midas/internal/tabular"
	"github.com/MrJamesThe3rd/midas/internal/validate"
	"github.com/MrJamesThe3rd/midas/internal/wishlist"
)

const maxUploadBytes = 10 << 20

type Handler struct {
	catalogSvc  *catalog.Service
	wishlistSvc *wishlist.Service
}

func NewHandler(catalogSvc *catalog.Service, wishlistSvc *wishlist.Service) *Handler {
	return &Handler{
		catalogSvc:  catalogSvc,
		wishlistSvc: wishlistSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/categories", h.categories)
	r.Post("/destinations", h.destinations)
	r.Post("/wishlist", h.wishlist)
}

type importResponse struct {
	Imported int `json:"imported"`
}

// upload runs parse over the "file" part of a multipart form.
func upload[T any](w http.ResponseWriter, r *http.Request, parse func(io.Reader) ([]T, error)) ([]T, bool) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		render.Error(w, r, validate.Field("file", "Envie um arquivo CSV."))
		return nil, false
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		render.Error(w, r, validate.Field("file", "Este campo é obrigatório."))
		return nil, false
	}
	defer file.Close()

	rows, err := parse(file)
	if err != nil {
		switch _, ok := validate.As(err); {
		case errors.Is(err, tabular.ErrEmpty):
			err = validate.Field("file", "O arquivo enviado está vazio.")
		case !ok:
			err = validate.Field("file", "Não foi possível ler o arquivo CSV.")
		}

		render.Error(w, r, err)

		return nil, false
	}

	return rows, true
}

func (h *Handler) categories(w http.ResponseWriter, r *http.Request) {
	rows, ok := upload(w, r, tabular.ParseCategories)
	if !ok {
		return
	}

	cats, err := h.catalogSvc.ImportCategories(r.Context(), rows)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusCreated, importResponse{Imported: len(cats)})
}

func (h *Handler) destinations(w http.ResponseWriter, r *http.Request) {
	rows, ok := upload(w, r, tabular.ParseDestinations)
	if !ok {
		return
	}

	dests, err := h.catalogSvc.ImportDestinations(r.Context(), rows)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusCreated, importResponse{Imported: len(dests)})
}

func (h *Handler) wishlist(w http.ResponseWriter, r *http.Request) {
	rows, ok := upload(w, r, tabular.ParseWishlist)
	if !ok {
		return
	}

	items, err := h.wishlistSvc.Import(r.Context(), rows)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusCreated, importResponse{Imported: len(items)})
}
