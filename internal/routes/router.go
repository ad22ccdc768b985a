package routes

import (
	"errors"
	"net/http"
	"time"

	"airport-booking/concourse/internal/api"
	"airport-booking/concourse/internal/common"
	"airport-booking/concourse/internal/config"
	"airport-booking/concourse/internal/logging"
	"airport-booking/concourse/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// RouterConfig is the slice of configuration the HTTP surface needs
type RouterConfig struct {
	CORSOrigins []string
	RateLimit   config.RateLimitConfig
	UpSince     time.Time
}

func RegisterRoutes(deps *api.Dependencies, cfg RouterConfig) http.Handler {

	// initialize Chi router
	r := chi.NewRouter()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(deps.Infra.Metrics))
	r.Use(middleware.Logging)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-API-Key", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	// set before mounting so /api/v1 inherits them
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		common.RespondError(w, time.Now(), errors.New("not found"), "", http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		common.RespondError(w, time.Now(), errors.New("method "+req.Method+" not allowed"), "", http.StatusMethodNotAllowed)
	})

	logging.Info("Router initialized with metrics and logging middleware")
	// health check
	r.Get("/healthCheck", api.HealthCheckHandler(deps.Infra.SQL, deps.Infra.Redis, cfg.UpSince))

	handlers := api.NewHandlers(deps)
	limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)

	RegisterAPIRoutes(r, handlers, deps, limiter)

	return r
}
