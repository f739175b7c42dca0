package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/recount/pkg/app"
	"github.com/ghuser/recount/services/wardrobe/application/handlers"
	appsvcs "github.com/ghuser/recount/services/wardrobe/application/services"
)

// WardrobeRoutes registers item endpoints on the provided chi router.
func WardrobeRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			r.Get("/", handlers.NewListItemsHandler(svcs).Execute)
			r.Post("/", handlers.NewPostItemHandler(svcs).Execute)
			r.Get("/stats", handlers.NewGetStatsHandler(svcs).Execute)
			r.Post("/seed", handlers.NewSeedItemsHandler(svcs).Execute)
			r.Get("/{id}", handlers.NewGetItemHandler(svcs).Execute)
			r.Patch("/{id}", handlers.NewPatchItemHandler(svcs).Execute)
			r.Delete("/{id}", handlers.NewDeleteItemHandler(svcs).Execute)
		})
	})
}
