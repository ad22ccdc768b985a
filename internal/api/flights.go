package api

import (
	"net/http"
	"time"

	"airport-booking/concourse/internal/common"
	"airport-booking/concourse/internal/models/dtos"
)

// ListFlights handles GET /api/v1/flights?from=&to=&departure_date=&arrival_date=
//
// Only flights that have not departed yet are listed, soonest first, each with
// its remaining ticket count.
func (h *Handlers) ListFlights() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		filter, err := flightFilterFrom(r)
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}
		flights, err := h.deps.Services.Flights.List(r.Context(), filter)
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Flights fetched", flights)
	}
}

// GetFlight handles GET /api/v1/flights/{id} with the taken seat map
func (h *Handlers) GetFlight() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r)
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}
		flight, err := h.deps.Services.Flights.Get(r.Context(), id)
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Flight fetched", flight)
	}
}

func (h *Handlers) CreateFlight() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.FlightRequest
		if err := decodeBody(r, &req); err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}
		flight, err := h.deps.Services.Flights.Create(r.Context(), req)
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Flight created", flight, http.StatusCreated)
	}
}

// UpdateFlight handles PUT and PATCH /api/v1/flights/{id}
func (h *Handlers) UpdateFlight() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r)
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}
		var req dtos.FlightRequest
		if err := decodeBody(r, &req); err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}
		flight, err := h.deps.Services.Flights.Update(r.Context(), id, req, r.Method == http.MethodPatch)
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Flight updated", flight)
	}
}

// DeleteFlight handles DELETE /api/v1/flights/{id}. Tickets on the flight go with it.
func (h *Handlers) DeleteFlight() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r)
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}
		if err := h.deps.Services.Flights.Delete(r.Context(), id); err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
