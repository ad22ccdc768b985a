package api

import (
	"net/http"
	"time"

	"airport-booking/concourse/internal/common"
	"airport-booking/concourse/internal/models/dtos"
)

// ListRoutes handles GET /api/v1/routes?source=&destination=
// Filters match airport names case-insensitively.
func (h *Handlers) ListRoutes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		routes, err := h.deps.Services.Routes.List(r.Context(), routeFilterFrom(r))
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Routes fetched", routes)
	}
}

// GetRoute handles GET /api/v1/routes/{id}
func (h *Handlers) GetRoute() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r)
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}
		route, err := h.deps.Services.Routes.Get(r.Context(), id)
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Route fetched", route)
	}
}

// CreateRoute handles POST /api/v1/routes (admin). Routes are immutable afterwards.
func (h *Handlers) CreateRoute() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.RouteRequest
		if err := decodeBody(r, &req); err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}
		route, err := h.deps.Services.Routes.Create(r.Context(), req)
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Route created", route, http.StatusCreated)
	}
}
