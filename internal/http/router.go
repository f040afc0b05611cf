package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	authSvc "github.com/rafaelbdn/autolog/internal/auth"
	"github.com/rafaelbdn/autolog/internal/http/auth"
	"github.com/rafaelbdn/autolog/internal/http/dashboard"
	"github.com/rafaelbdn/autolog/internal/http/fueling"
	"github.com/rafaelbdn/autolog/internal/http/importcsv"
	"github.com/rafaelbdn/autolog/internal/http/maintenance"
	"github.com/rafaelbdn/autolog/internal/http/mileage"
	"github.com/rafaelbdn/autolog/internal/http/station"
	"github.com/rafaelbdn/autolog/internal/http/trip"
	"github.com/rafaelbdn/autolog/internal/http/vehicle"
)

func New(
	authService *authSvc.Service,
	allowedOrigins []string,
	authV1 *auth.Handler,
	vehiclesV1 *vehicle.Handler,
	fuelingsV1 *fueling.Handler,
	maintenancesV1 *maintenance.Handler,
	mileagesV1 *mileage.Handler,
	tripsV1 *trip.Handler,
	dashboardV1 *dashboard.Handler,
	stationsV1 *station.Handler,
	importV1 *importcsv.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			authV1.Routes(r)
		})

		// Everything below requires a valid token.
		r.Group(func(r chi.Router) {
			r.Use(authService.Middleware)

			r.Route("/me", authV1.ProtectedRoutes)

			r.Route("/vehicles", func(r chi.Router) {
				vehiclesV1.Routes(r)
			})

			r.Route("/fuelings", func(r chi.Router) {
				fuelingsV1.Routes(r)
			})

			r.Route("/maintenances", func(r chi.Router) {
				maintenancesV1.Routes(r)
			})

			r.Route("/mileages", func(r chi.Router) {
				mileagesV1.Routes(r)
			})

			r.Route("/trips", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				tripsV1.Routes(r)
			})

			r.Route("/dashboard", dashboardV1.Routes)
			r.Route("/alerts", dashboardV1.AlertRoutes)

			r.Route("/stations", stationsV1.Routes)

			r.Route("/import", importV1.Routes)
		})
	})

	return router
}
