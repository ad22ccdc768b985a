package routes

import (
	"airport-booking/concourse/internal/api"
	"airport-booking/concourse/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes registers all API v1 routes and handlers.
//
// Methods that are not registered for a matched path (PUT/PATCH/DELETE on routes,
// DELETE on airplanes, any write on orders) get chi's 405.
func RegisterAPIRoutes(r chi.Router, handlers *api.Handlers, deps *api.Dependencies, limiter *middleware.RateLimiter) {

	r.Route("/api/v1", func(v1 chi.Router) {

		// Public, rate limited
		v1.Group(func(public chi.Router) {
			public.Use(limiter.Handler)
			public.Post("/users/register", handlers.RegisterUser())
			public.Post("/users/token", handlers.IssueToken())
		})

		// Everything else must be authenticated
		v1.Group(func(authed chi.Router) {
			authed.Use(middleware.AuthMiddleware(deps.Services.Signer, deps.Repo.Keys))

			authed.Get("/users/me", handlers.GetUserDetails())
			authed.Post("/users/logout", handlers.Logout())

			authed.Get("/airports", handlers.ListAirports())
			authed.Get("/airports/{id}", handlers.GetAirport())
			authed.Get("/routes", handlers.ListRoutes())
			authed.Get("/routes/{id}", handlers.GetRoute())
			authed.Get("/airplane_types", handlers.ListAirplaneTypes())
			authed.Get("/airplanes", handlers.ListAirplanes())
			authed.Get("/airplanes/{id}", handlers.GetAirplane())
			authed.Get("/crews", handlers.ListCrews())
			authed.Get("/flights", handlers.ListFlights())
			authed.Get("/flights/{id}", handlers.GetFlight())

			authed.Get("/orders", handlers.ListOrders())
			authed.Post("/orders", handlers.CreateOrder())

			// Admin-only group
			authed.Group(func(admin chi.Router) {
				admin.Use(middleware.IsAdminMiddleware())

				admin.Post("/airports", handlers.CreateAirport())
				admin.Post("/routes", handlers.CreateRoute())
				admin.Post("/airplane_types", handlers.CreateAirplaneType())
				admin.Post("/airplanes", handlers.CreateAirplane())
				admin.Put("/airplanes/{id}", handlers.UpdateAirplane())
				admin.Patch("/airplanes/{id}", handlers.UpdateAirplane())
				admin.Post("/crews", handlers.CreateCrew())
				admin.Post("/flights", handlers.CreateFlight())
				admin.Put("/flights/{id}", handlers.UpdateFlight())
				admin.Patch("/flights/{id}", handlers.UpdateFlight())
				admin.Delete("/flights/{id}", handlers.DeleteFlight())
			})
		})
	})
}
