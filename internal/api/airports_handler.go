package api

import (
	"net/http"
	"time"

	"airport-booking/concourse/internal/common"
	"airport-booking/concourse/internal/models/dtos"
)

// ListAirports handles GET /api/v1/airports
func (h *Handlers) ListAirports() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		airports, err := h.deps.Services.Reference.ListAirports(r.Context())
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Airports fetched", airports)
	}
}

// GetAirport handles GET /api/v1/airports/{id}
func (h *Handlers) GetAirport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r)
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}
		airport, err := h.deps.Services.Reference.GetAirport(r.Context(), id)
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Airport fetched", airport)
	}
}

// CreateAirport handles POST /api/v1/airports (admin)
func (h *Handlers) CreateAirport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.AirportRequest
		if err := decodeBody(r, &req); err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}
		airport, err := h.deps.Services.Reference.CreateAirport(r.Context(), req)
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Airport created", airport, http.StatusCreated)
	}
}
