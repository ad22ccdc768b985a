package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"airport-booking/concourse/internal/models/entities"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const healthProbeTimeout = 2 * time.Second

// HealthCheckHandler handles GET /healthCheck
//
// @Summary Health check
// @Description Reports database and redis connectivity.
// @Tags Misc
// @Success 200 {object} entities.HealthCheckResponse
// @Failure 503 {object} entities.HealthCheckResponse
// @Router /healthCheck [get]
func HealthCheckHandler(db *sqlx.DB, rdb *redis.Client, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthProbeTimeout)
		defer cancel()

		var dbStatus, redisStatus entities.ServiceStatus

		// probes report through their own status and never fail the group
		var g errgroup.Group
		g.Go(func() error {
			dbStatus = probe("Database connected", func() error { return db.PingContext(ctx) })
			return nil
		})
		g.Go(func() error {
			if rdb == nil {
				redisStatus = entities.ServiceStatus{Status: "disabled", Details: "Using in-memory token store"}
				return nil
			}
			redisStatus = probe("Redis connected", func() error { return rdb.Ping(ctx).Err() })
			return nil
		})
		_ = g.Wait()

		services := map[string]entities.ServiceStatus{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		overallStatus := "ok"
		for _, svc := range services {
			if svc.Status == "down" {
				overallStatus = "down"
				break
			}
		}

		resp := entities.HealthCheckResponse{
			Services: services,
			Status:   overallStatus,
			UpSince:  upSince.UTC(),
			Uptime:   time.Since(upSince).Round(time.Second).String(),
		}

		code := http.StatusOK
		if overallStatus != "ok" {
			code = http.StatusServiceUnavailable
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func probe(okDetails string, ping func() error) entities.ServiceStatus {
	if err := ping(); err != nil {
		return entities.ServiceStatus{Status: "down", Details: err.Error()}
	}
	return entities.ServiceStatus{Status: "ok", Details: okDetails}
}
