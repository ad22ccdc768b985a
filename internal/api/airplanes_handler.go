package api

import (
	"net/http"
	"time"

	"airport-booking/concourse/internal/common"
	"airport-booking/concourse/internal/models/dtos"
)

func (h *Handlers) ListAirplaneTypes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		types, err := h.deps.Services.Reference.ListAirplaneTypes(r.Context())
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Airplane types fetched", types)
	}
}

func (h *Handlers) CreateAirplaneType() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.AirplaneTypeRequest
		if err := decodeBody(r, &req); err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}
		airplaneType, err := h.deps.Services.Reference.CreateAirplaneType(r.Context(), req)
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Airplane type created", airplaneType, http.StatusCreated)
	}
}

// ListAirplanes handles GET /api/v1/airplanes
func (h *Handlers) ListAirplanes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		airplanes, err := h.deps.Services.Reference.ListAirplanes(r.Context())
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Airplanes fetched", airplanes)
	}
}

func (h *Handlers) GetAirplane() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r)
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}
		airplane, err := h.deps.Services.Reference.GetAirplane(r.Context(), id)
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Airplane fetched", airplane)
	}
}

func (h *Handlers) CreateAirplane() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.AirplaneRequest
		if err := decodeBody(r, &req); err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}
		airplane, err := h.deps.Services.Reference.CreateAirplane(r.Context(), req)
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Airplane created", airplane, http.StatusCreated)
	}
}

// UpdateAirplane handles PUT and PATCH /api/v1/airplanes/{id}. PATCH only touches the fields sent.
func (h *Handlers) UpdateAirplane() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r)
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}
		var req dtos.AirplaneRequest
		if err := decodeBody(r, &req); err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}
		airplane, err := h.deps.Services.Reference.UpdateAirplane(r.Context(), id, req, r.Method == http.MethodPatch)
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Airplane updated", airplane)
	}
}

func (h *Handlers) ListCrews() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		crews, err := h.deps.Services.Reference.ListCrews(r.Context())
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Crew fetched", crews)
	}
}

func (h *Handlers) CreateCrew() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CrewRequest
		if err := decodeBody(r, &req); err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}
		crew, err := h.deps.Services.Reference.CreateCrew(r.Context(), req)
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Crew member created", crew, http.StatusCreated)
	}
}
