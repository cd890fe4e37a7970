package routers

import (
	"fmt"
	"net/http"
	"openhours-service/internal/app/config"
	"openhours-service/internal/app/delivery/http/middlewares"
	"openhours-service/internal/app/services/core/businesses"
	"openhours-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	businessController *businesses.BusinessController,
	indexController *businesses.IndexController,
	metricsHandler http.Handler,
) {
	allowedOrigins := internalConfig.App.CORSAllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	corsOptions := cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{constvars.MethodGet, constvars.MethodPost, constvars.MethodOptions},
		AllowedHeaders:   []string{constvars.HeaderAccept, constvars.HeaderContentType, constvars.HeaderXAPIKey, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderXRequestID, constvars.HeaderRetryAfter},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.RequestMetrics)
	router.Use(middlewares.GlobalRateLimit())
	router.Use(middlewares.ErrorHandler)

	router.Get("/healthz", indexController.Health)
	if metricsHandler != nil {
		router.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/"+constvars.ResourceBusinesses, func(r chi.Router) {
				attachBusinessRoutes(r, middlewares, businessController)
			})

			r.Route("/"+constvars.ResourceRestaurants, func(r chi.Router) {
				attachRestaurantRoutes(r, middlewares, businessController)
			})

			r.Route("/"+constvars.ResourceIndex, func(r chi.Router) {
				attachIndexRoutes(r, middlewares, indexController)
			})
		})
	})
}
