package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/midas/internal/auth"
	"github.com/MrJamesThe3rd/midas/internal/http/admin"
	authhttp "github.com/MrJamesThe3rd/midas/internal/http/auth"
	"github.com/MrJamesThe3rd/midas/internal/http/catalog"
	"github.com/MrJamesThe3rd/midas/internal/http/export"
	"github.com/MrJamesThe3rd/midas/internal/http/importcsv"
	"github.com/MrJamesThe3rd/midas/internal/http/inflow"
	"github.com/MrJamesThe3rd/midas/internal/http/outflow"
	"github.com/MrJamesThe3rd/midas/internal/http/report"
	"github.com/MrJamesThe3rd/midas/internal/http/setting"
	"github.com/MrJamesThe3rd/midas/internal/http/user"
	"github.com/MrJamesThe3rd/midas/internal/http/wishlist"
)

type Handlers struct {
	Token     *authhttp.Handler
	Users     *user.Handler
	Inflows   *inflow.Handler
	Outflows  *outflow.Handler
	Reports   *report.Handler
	Catalog   *catalog.Handler
	Wishlist  *wishlist.Handler
	Settings  *setting.Handler
	Admin     *admin.Handler
	ImportCSV *importcsv.Handler
	Export    *export.Handler
}

func New(issuer *auth.Issuer, allowedOrigins []string, h Handlers) http.Handler {
	router := chi.NewRouter()

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Route("/api/token", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		h.Token.Routes(r)
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Group(h.Users.PublicRoutes)
			r.Group(func(r chi.Router) {
				r.Use(issuer.Authenticate)
				h.Users.Routes(r)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(issuer.Authenticate)

			r.Route("/auth", h.Users.PasswordRoutes)
			r.Route("/inflows", h.Inflows.Routes)
			r.Route("/outflows", func(r chi.Router) {
				h.Reports.OutflowRoutes(r)
				h.Outflows.Routes(r)
			})
			r.Route("/reports", h.Reports.Routes)
			r.Route("/categories", h.Catalog.CategoryRoutes)
			r.Route("/destinations", h.Catalog.DestinationRoutes)
			r.Route("/wishlist", h.Wishlist.Routes)

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireStaff)

				r.Route("/settings", h.Settings.Routes)
				r.Route("/admin", func(r chi.Router) {
					r.Route("/outflows", h.Admin.Routes)
					r.Route("/import", h.ImportCSV.Routes)
					r.Route("/export", h.Export.Routes)
				})
			})
		})
	})

	return router
}
