package routers

import (
	"openhours-service/internal/app/delivery/http/middlewares"
	"openhours-service/internal/app/services/core/businesses"

	"github.com/go-chi/chi/v5"
)

func attachIndexRoutes(router chi.Router, middlewares *middlewares.Middlewares, indexController *businesses.IndexController) {
	router.Get("/snapshot", indexController.Snapshot)
	router.With(
		middlewares.RequireSuperadminAPIKey,
		middlewares.ReloadRateLimit(),
	).Post("/reload", indexController.Reload)
}
