package services

import (
	"context"
	"fmt"

	"airport-booking/concourse/internal/booking"
	"airport-booking/concourse/internal/common"
	"airport-booking/concourse/internal/constants"
	"airport-booking/concourse/internal/db/repositories"
	"airport-booking/concourse/internal/models/dtos"
)

type OrderService struct {
	engine *booking.Engine
	orders *repositories.OrderRepository
}

func NewOrderService(engine *booking.Engine, orders *repositories.OrderRepository) *OrderService {
	return &OrderService{engine: engine, orders: orders}
}

// Create books the requested tickets for userID as one order
func (s *OrderService) Create(ctx context.Context, userID uint, req dtos.OrderRequest) (*dtos.OrderView, error) {
	order, err := s.engine.CreateOrder(ctx, userID, req.Tickets)
	if err != nil {
		return nil, err
	}
	view := dtos.OrderOf(*order)
	return &view, nil
}

// List pages through the caller's own orders, newest first
func (s *OrderService) List(ctx context.Context, userID uint, page, pageSize int) (*dtos.Page[dtos.OrderListView], error) {
	if page < 1 || pageSize < 1 {
		return nil, common.NewValidationError("page", constants.MsgInvalidPagination)
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}

	orders, count, err := s.orders.ListByUser(ctx, userID, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	results := make([]dtos.OrderListView, 0, len(orders))
	for _, o := range orders {
		results = append(results, dtos.OrderListOf(o))
	}
	return &dtos.Page[dtos.OrderListView]{
		Count:    count,
		Page:     page,
		PageSize: pageSize,
		Results:  results,
	}, nil
}
