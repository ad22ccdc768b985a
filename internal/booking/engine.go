// Package booking turns ticket requests into a persisted order, all or nothing.
package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"airport-booking/concourse/internal/common"
	"airport-booking/concourse/internal/constants"
	"airport-booking/concourse/internal/db"
	"airport-booking/concourse/internal/db/repositories"
	"airport-booking/concourse/internal/metrics"
	"airport-booking/concourse/internal/models/dtos"
	gormModels "airport-booking/concourse/internal/models/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const tracerName = "airport-booking/concourse/booking"

// Engine validates ticket requests against flight geometry and existing tickets and
// writes the order and its tickets in one transaction. The unique index on
// (flight_id, seat_row, seat_number) decides any race the in-transaction check misses.
type Engine struct {
	db      *gorm.DB
	metrics *metrics.MetricsRegistry
	tracer  trace.Tracer
}

func NewEngine(db *gorm.DB, m *metrics.MetricsRegistry) *Engine {
	return &Engine{
		db:      db,
		metrics: m,
		tracer:  otel.Tracer(tracerName),
	}
}

// CreateOrder books every request for userID or none of them.
// The returned order's tickets are sorted by (row, seat).
func (e *Engine) CreateOrder(ctx context.Context, userID uint, reqs []dtos.TicketRequest) (*gormModels.Order, error) {
	ctx, span := e.tracer.Start(ctx, "booking.CreateOrder", trace.WithAttributes(
		attribute.Int64("user_id", int64(userID)),
		attribute.Int("tickets", len(reqs)),
	))
	defer span.End()

	start := time.Now()
	order, err := e.createOrder(ctx, userID, reqs)
	outcome := outcomeOf(err)
	e.metrics.ObserveOrder(outcome, len(reqs), time.Since(start))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		return nil, err
	}
	span.SetAttributes(attribute.Int64("order_id", int64(order.ID)))
	span.SetStatus(codes.Ok, "")
	return order, nil
}

func (e *Engine) createOrder(ctx context.Context, userID uint, reqs []dtos.TicketRequest) (*gormModels.Order, error) {
	if len(reqs) == 0 {
		return nil, common.NewValidationError("tickets", constants.MsgEmptyOrder)
	}

	var order *gormModels.Order
	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		flights := repositories.NewFlightRepository(tx)
		orders := repositories.NewOrderRepository(tx)

		flightIDs := distinctFlightIDs(reqs)
		geometries, err := flights.Geometries(ctx, flightIDs)
		if err != nil {
			return fmt.Errorf("failed to load flight geometry: %w", err)
		}
		persisted, err := flights.TakenSeatsFor(ctx, flightIDs)
		if err != nil {
			return fmt.Errorf("failed to load taken seats: %w", err)
		}

		taken := make(SeatSet, len(persisted)+len(reqs))
		for _, s := range persisted {
			taken.Add(SeatKey{FlightID: s.FlightID, Row: s.Row, Seat: s.Seat})
		}

		tickets := make([]gormModels.Ticket, 0, len(reqs))
		for i, req := range reqs {
			field := fmt.Sprintf("tickets[%d]", i)

			geo, ok := geometries[req.Flight]
			if !ok {
				return common.WithFieldPrefix(&common.NotFoundError{Resource: "flight", ID: req.Flight, Field: "flight"}, field)
			}
			if err := ValidateTicket(req, AirplaneGeometry{Rows: geo.Rows, SeatsInRow: geo.SeatsInRow}, taken); err != nil {
				return common.WithFieldPrefix(err, field)
			}

			taken.Add(SeatKey{FlightID: req.Flight, Row: req.Row, Seat: req.Seat})
			tickets = append(tickets, gormModels.Ticket{Row: req.Row, Seat: req.Seat, FlightID: req.Flight})
		}

		o := &gormModels.Order{UserID: userID}
		if err := orders.Create(ctx, o); err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		for i := range tickets {
			tickets[i].OrderID = o.ID
		}
		if err := orders.CreateTickets(ctx, tickets); err != nil {
			if db.IsUniqueViolation(err) {
				return common.NewConstraintError("tickets", constants.MsgSeatAlreadyBooked)
			}
			return fmt.Errorf("failed to create tickets: %w", err)
		}

		dtos.SortTickets(tickets)
		o.Tickets = tickets
		order = o
		return nil
	})
	if err != nil {
		// a commit-time unique violation also lands here
		if db.IsUniqueViolation(err) {
			return nil, common.NewConstraintError("tickets", constants.MsgSeatAlreadyBooked)
		}
		return nil, err
	}
	return order, nil
}

func distinctFlightIDs(reqs []dtos.TicketRequest) []uint {
	seen := make(map[uint]struct{}, len(reqs))
	ids := make([]uint, 0, len(reqs))
	for _, r := range reqs {
		if _, ok := seen[r.Flight]; ok {
			continue
		}
		seen[r.Flight] = struct{}{}
		ids = append(ids, r.Flight)
	}
	return ids
}

func outcomeOf(err error) string {
	var ce *common.ConstraintError
	switch {
	case err == nil:
		return metrics.OutcomeCreated
	case errors.As(err, &ce):
		return metrics.OutcomeSeatTaken
	case common.IsValidationError(err):
		return metrics.OutcomeInvalid
	case common.IsNotFoundError(err):
		return metrics.OutcomeNotFound
	default:
		return metrics.OutcomeError
	}
}
