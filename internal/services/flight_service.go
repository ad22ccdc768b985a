package services

import (
	"context"
	"fmt"
	"time"

	"airport-booking/concourse/internal/common"
	"airport-booking/concourse/internal/constants"
	"airport-booking/concourse/internal/db/repositories"
	"airport-booking/concourse/internal/models/dtos"
	"airport-booking/concourse/internal/models/entities"
	gormModels "airport-booking/concourse/internal/models/gorm"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type FlightService struct {
	flights   *repositories.FlightRepository
	routes    *repositories.RouteRepository
	airplanes *repositories.AirplaneRepository
	crews     *repositories.CrewRepository
	now       func() time.Time
}

func NewFlightService(
	flights *repositories.FlightRepository,
	routes *repositories.RouteRepository,
	airplanes *repositories.AirplaneRepository,
	crews *repositories.CrewRepository,
) *FlightService {
	return &FlightService{
		flights:   flights,
		routes:    routes,
		airplanes: airplanes,
		crews:     crews,
		now:       time.Now,
	}
}

func (s *FlightService) Create(ctx context.Context, req dtos.FlightRequest) (*dtos.FlightView, error) {
	var flight gormModels.Flight
	crew, err := s.apply(ctx, &flight, req, false)
	if err != nil {
		return nil, err
	}
	if crew != nil {
		flight.Crew = *crew
	}

	if err := s.flights.Create(ctx, &flight); err != nil {
		return nil, fmt.Errorf("failed to create flight: %w", err)
	}
	view := dtos.FlightWriteView(flight)
	return &view, nil
}

// Update handles both PUT (partial=false) and PATCH. The patch is merged onto the
// stored flight before the departure/arrival ordering is checked. The flight row is
// locked for the whole update so no booking lands between the seat check and the save.
func (s *FlightService) Update(ctx context.Context, id uint, req dtos.FlightRequest, partial bool) (*dtos.FlightView, error) {
	var flight *gormModels.Flight
	err := s.flights.Transaction(ctx, func(tx *gorm.DB) error {
		txs := s.withTx(tx)

		var err error
		flight, err = txs.flights.LockByID(ctx, id)
		if err != nil {
			return err
		}
		previous := flight.AirplaneID

		crew, err := txs.apply(ctx, flight, req, partial)
		if err != nil {
			return err
		}
		if flight.AirplaneID != previous {
			if err := txs.checkSeatsFit(ctx, flight); err != nil {
				return err
			}
		}
		if !partial && crew == nil {
			crew = &[]gormModels.Crew{}
		}

		if err := txs.flights.Update(ctx, flight, crew); err != nil {
			return fmt.Errorf("failed to update flight: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view := dtos.FlightWriteView(*flight)
	return &view, nil
}

// checkSeatsFit refuses an airplane whose layout cannot hold every ticket
// already sold on the flight
func (s *FlightService) checkSeatsFit(ctx context.Context, flight *gormModels.Flight) error {
	airplane, err := s.airplanes.LockByID(ctx, flight.AirplaneID, false)
	if err != nil {
		return asField(err, "airplane")
	}
	extent, err := s.flights.BookedExtent(ctx, flight.ID)
	if err != nil {
		return fmt.Errorf("failed to check booked seats: %w", err)
	}
	if airplane.Rows < extent.MaxRow || airplane.SeatsInRow < extent.MaxSeat {
		return common.NewConstraintError("airplane", constants.MsgAirplaneTooSmall)
	}
	return nil
}

// withTx returns a copy whose repositories all run on tx
func (s *FlightService) withTx(tx *gorm.DB) *FlightService {
	return &FlightService{
		flights:   s.flights.WithTx(tx),
		routes:    s.routes.WithTx(tx),
		airplanes: s.airplanes.WithTx(tx),
		crews:     s.crews.WithTx(tx),
		now:       s.now,
	}
}

func (s *FlightService) Delete(ctx context.Context, id uint) error {
	return s.flights.Delete(ctx, id)
}

// apply validates req and merges it onto flight. It returns the resolved crew
// roster, or nil when the request leaves the crew untouched.
func (s *FlightService) apply(ctx context.Context, flight *gormModels.Flight, req dtos.FlightRequest, partial bool) (*[]gormModels.Crew, error) {
	var c fieldChecks
	if !partial {
		c.required("route", req.Route != nil)
		c.required("airplane", req.Airplane != nil)
		c.required("departure_time", req.DepartureTime != nil)
		c.required("arrival_time", req.ArrivalTime != nil)
	}
	if req.Route != nil {
		c.id("route", *req.Route)
	}
	if req.Airplane != nil {
		c.id("airplane", *req.Airplane)
	}
	if err := c.err(); err != nil {
		return nil, err
	}

	if req.DepartureTime != nil {
		flight.DepartureTime = req.DepartureTime.UTC()
	}
	if req.ArrivalTime != nil {
		flight.ArrivalTime = req.ArrivalTime.UTC()
	}
	if !flight.DepartureTime.Before(flight.ArrivalTime) {
		return nil, common.NewValidationError(nonFieldErrors, constants.MsgArrivalBeforeDeparture)
	}

	if req.Route != nil {
		route, err := s.routes.FindByID(ctx, *req.Route)
		if err != nil {
			return nil, asField(err, "route")
		}
		flight.RouteID = route.ID
	}
	if req.Airplane != nil {
		airplane, err := s.airplanes.FindByID(ctx, *req.Airplane)
		if err != nil {
			return nil, asField(err, "airplane")
		}
		flight.AirplaneID = airplane.ID
	}

	if req.Crew == nil {
		return nil, nil
	}
	crew, err := s.crews.FindByIDs(ctx, uniqueIDs(*req.Crew))
	if err != nil {
		return nil, err
	}
	return &crew, nil
}

// List returns flights departing after now that match filter
func (s *FlightService) List(ctx context.Context, filter dtos.FlightFilter) ([]dtos.FlightListView, error) {
	rows, err := s.flights.ListAvailable(ctx, filter, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to list flights: %w", err)
	}
	views := make([]dtos.FlightListView, 0, len(rows))
	for _, row := range rows {
		views = append(views, dtos.FlightListOf(row))
	}
	return views, nil
}

// Get loads the flight graph and its taken seats concurrently
func (s *FlightService) Get(ctx context.Context, id uint) (*dtos.FlightDetailView, error) {
	var (
		flight *gormModels.Flight
		taken  []entities.SeatPosition
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		flight, err = s.flights.FindDetail(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		taken, err = s.flights.TakenSeats(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	view := dtos.FlightDetailOf(*flight, taken)
	return &view, nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
