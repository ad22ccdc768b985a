package api

import (
	"net/http"
	"time"

	"airport-booking/concourse/internal/common"
	"airport-booking/concourse/internal/constants"
	"airport-booking/concourse/internal/models/dtos"
)

// RegisterUser handles POST /api/v1/users/register (public)
func (h *Handlers) RegisterUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.RegisterRequest
		if err := decodeBody(r, &req); err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}
		user, err := h.deps.Services.Users.Register(r.Context(), req)
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "User registered", user, http.StatusCreated)
	}
}

// IssueToken handles POST /api/v1/users/token (public)
func (h *Handlers) IssueToken() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.TokenRequest
		if err := decodeBody(r, &req); err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}
		token, err := h.deps.Services.Users.Login(r.Context(), req)
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Token issued", token)
	}
}

// GetUserDetails handles GET /api/v1/users/me
func (h *Handlers) GetUserDetails() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims, err := callerClaims(r)
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}
		user, err := h.deps.Services.Users.Me(r.Context(), claims.UserID())
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "User details fetched", user)
	}
}

// Logout handles POST /api/v1/users/logout by revoking the bearer token used to call it
func (h *Handlers) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims, err := callerClaims(r)
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}
		if claims.Source() != constants.RequestSourceJWT {
			common.RespondAppError(w, r, initTime, common.NewValidationError("non_field_errors", constants.MsgLogoutNeedsBearer))
			return
		}
		if err := h.deps.Services.Users.Logout(r.Context(), claims.TokenID(), claims.ExpiresAt()); err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Logged out", nil)
	}
}
