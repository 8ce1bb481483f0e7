package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	authSvc "github.com/rizkyhp/gudangpro/internal/auth"
	authHandler "github.com/rizkyhp/gudangpro/internal/http/auth"
	documentHandler "github.com/rizkyhp/gudangpro/internal/http/document"
	importHandler "github.com/rizkyhp/gudangpro/internal/http/importcsv"
	ledgerHandler "github.com/rizkyhp/gudangpro/internal/http/ledger"
)

func New(
	session *authSvc.Service,
	authV1 *authHandler.Handler,
	ledgerV1 *ledgerHandler.Handler,
	documentV1 *documentHandler.Handler,
	importV1 *importHandler.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			authV1.Routes(r)
		})

		// Everything below the session boundary.
		r.Group(func(r chi.Router) {
			r.Use(session.Middleware)

			r.Route("/transactions", func(r chi.Router) {
				ledgerV1.Routes(r)
				documentV1.Routes(r)
			})

			r.Get("/summary", ledgerV1.Summary)

			r.Route("/import", importV1.Routes)
		})
	})

	return router
}
