package routers

import (
	"openhours-service/internal/app/delivery/http/middlewares"
	"openhours-service/internal/app/services/core/businesses"

	"github.com/go-chi/chi/v5"
)

func attachBusinessRoutes(router chi.Router, middlewares *middlewares.Middlewares, businessController *businesses.BusinessController) {
	router.Get("/open", businessController.FindOpen)
}

func attachRestaurantRoutes(router chi.Router, middlewares *middlewares.Middlewares, businessController *businesses.BusinessController) {
	router.Get("/", businessController.FindOpen)
}
