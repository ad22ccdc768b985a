package api

import (
	"net/http"
	"time"

	"airport-booking/concourse/internal/common"
	"airport-booking/concourse/internal/models/dtos"
)

// ListOrders handles GET /api/v1/orders?page=&page_size=
// Callers only ever see their own orders.
func (h *Handlers) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims, err := callerClaims(r)
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}
		page, pageSize, err := pagination(r)
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}
		orders, err := h.deps.Services.Orders.List(r.Context(), claims.UserID(), page, pageSize)
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Orders fetched", orders)
	}
}

// CreateOrder handles POST /api/v1/orders
//
// Body: {"tickets": [{"row": 1, "seat": 1, "flight": 7}]}. Either every ticket is
// booked or none is; failures come back keyed by ticket position.
func (h *Handlers) CreateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims, err := callerClaims(r)
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}
		var req dtos.OrderRequest
		if err := decodeBody(r, &req); err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}
		order, err := h.deps.Services.Orders.Create(r.Context(), claims.UserID(), req)
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Order created", order, http.StatusCreated)
	}
}
