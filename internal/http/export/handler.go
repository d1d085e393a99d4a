package export

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/midas/internal/catalog"
	"github.com/MrJamesThe3rd/midas/internal/http/render"
	"github.com/MrJamesThe3rd/midas/internal/page"
	"github.com/MrJamesThe3rd/midas/internal/tabular"
	"github.com/MrJamesThe3rd/midas/internal/wishlist"
)

type Handler struct {
	catalogSvc  *catalog.Service
	wishlistSvc *wishlist.Service
	now         func() time.Time
}

func NewHandler(catalogSvc *catalog.Service, wishlistSvc *wishlist.Service) *Handler {
	return &Handler{
		catalogSvc:  catalogSvc,
		wishlistSvc: wishlistSvc,
		now:         time.Now,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/categories", h.categories)
	r.Get("/destinations", h.destinations)
	r.Get("/wishlist", h.wishlist)
}

// download buffers the sheet so a write failure can still become a 500.
func (h *Handler) download(w http.ResponseWriter, r *http.Request, name string, write func(*tabular.Writer) error) {
	var buf bytes.Buffer

	if err := write(tabular.NewWriter(&buf)); err != nil {
		render.Error(w, r, fmt.Errorf("export %s: %w", name, err))
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"%s_%s.csv\"", name, h.now().Format("20060102")))

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write export", "sheet", name, "error", err)
	}
}

func (h *Handler) categories(w http.ResponseWriter, r *http.Request) {
	cats, _, err := h.catalogSvc.ListCategories(r.Context(), page.Request{})
	if err != nil {
		render.Error(w, r, err)
		return
	}

	h.download(w, r, "categories", func(tw *tabular.Writer) error { return tw.Categories(cats) })
}

func (h *Handler) destinations(w http.ResponseWriter, r *http.Request) {
	dests, _, err := h.catalogSvc.ListDestinations(r.Context(), page.Request{})
	if err != nil {
		render.Error(w, r, err)
		return
	}

	h.download(w, r, "destinations", func(tw *tabular.Writer) error { return tw.Destinations(dests) })
}

func (h *Handler) wishlist(w http.ResponseWriter, r *http.Request) {
	items, _, err := h.wishlistSvc.List(r.Context(), wishlist.ListFilter{})
	if err != nil {
		render.Error(w, r, err)
		return
	}

	h.download(w, r, "wishlist", func(tw *tabular.Writer) error { return tw.Wishlist(items) })
}
