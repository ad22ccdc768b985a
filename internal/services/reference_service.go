package services

import (
	"context"
	"fmt"

	"airport-booking/concourse/internal/common"
	"airport-booking/concourse/internal/constants"
	"airport-booking/concourse/internal/db/repositories"
	"airport-booking/concourse/internal/models/dtos"
	gormModels "airport-booking/concourse/internal/models/gorm"

	"gorm.io/gorm"
)

// ReferenceService manages airports, airplane types, airplanes and crew
type ReferenceService struct {
	airports  *repositories.AirportRepository
	types     *repositories.AirplaneTypeRepository
	airplanes *repositories.AirplaneRepository
	crews     *repositories.CrewRepository
}

func NewReferenceService(
	airports *repositories.AirportRepository,
	types *repositories.AirplaneTypeRepository,
	airplanes *repositories.AirplaneRepository,
	crews *repositories.CrewRepository,
) *ReferenceService {
	return &ReferenceService{
		airports:  airports,
		types:     types,
		airplanes: airplanes,
		crews:     crews,
	}
}

func (s *ReferenceService) CreateAirport(ctx context.Context, req dtos.AirportRequest) (*dtos.AirportView, error) {
	var c fieldChecks
	airport := gormModels.Airport{
		Name:           c.text("name", req.Name),
		ClosestBigCity: c.text("closest_big_city", req.ClosestBigCity),
	}
	if err := c.err(); err != nil {
		return nil, err
	}

	if err := s.airports.Create(ctx, &airport); err != nil {
		return nil, fmt.Errorf("failed to create airport: %w", err)
	}
	view := dtos.AirportOf(airport)
	return &view, nil
}

func (s *ReferenceService) ListAirports(ctx context.Context) ([]dtos.AirportView, error) {
	airports, err := s.airports.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list airports: %w", err)
	}
	views := make([]dtos.AirportView, 0, len(airports))
	for _, a := range airports {
		views = append(views, dtos.AirportOf(a))
	}
	return views, nil
}

func (s *ReferenceService) GetAirport(ctx context.Context, id uint) (*dtos.AirportView, error) {
	airport, err := s.airports.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := dtos.AirportOf(*airport)
	return &view, nil
}

func (s *ReferenceService) CreateAirplaneType(ctx context.Context, req dtos.AirplaneTypeRequest) (*dtos.AirplaneTypeView, error) {
	var c fieldChecks
	t := gormModels.AirplaneType{Name: c.text("name", req.Name)}
	if err := c.err(); err != nil {
		return nil, err
	}

	if err := s.types.Create(ctx, &t); err != nil {
		return nil, fmt.Errorf("failed to create airplane type: %w", err)
	}
	view := dtos.AirplaneTypeOf(t)
	return &view, nil
}

func (s *ReferenceService) ListAirplaneTypes(ctx context.Context) ([]dtos.AirplaneTypeView, error) {
	types, err := s.types.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list airplane types: %w", err)
	}
	views := make([]dtos.AirplaneTypeView, 0, len(types))
	for _, t := range types {
		views = append(views, dtos.AirplaneTypeOf(t))
	}
	return views, nil
}

func (s *ReferenceService) CreateAirplane(ctx context.Context, req dtos.AirplaneRequest) (any, error) {
	var airplane gormModels.Airplane
	if err := s.applyAirplane(ctx, &airplane, req, false); err != nil {
		return nil, err
	}

	if err := s.airplanes.Create(ctx, &airplane); err != nil {
		return nil, fmt.Errorf("failed to create airplane: %w", err)
	}
	return dtos.AirplaneAs(dtos.ViewWrite, airplane), nil
}

// UpdateAirplane applies a full (partial=false) or partial update. Shrinking the
// layout below a seat some ticket already holds is rejected. The airplane row stays
// locked until the save so bookings on its flights wait for the new layout.
func (s *ReferenceService) UpdateAirplane(ctx context.Context, id uint, req dtos.AirplaneRequest, partial bool) (any, error) {
	var airplane *gormModels.Airplane
	err := s.airplanes.Transaction(ctx, func(tx *gorm.DB) error {
		txs := *s
		txs.types = s.types.WithTx(tx)
		txs.airplanes = s.airplanes.WithTx(tx)

		var err error
		airplane, err = txs.airplanes.LockByID(ctx, id, true)
		if err != nil {
			return err
		}
		if err := txs.applyAirplane(ctx, airplane, req, partial); err != nil {
			return err
		}

		extent, err := txs.airplanes.BookedExtent(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to check booked seats: %w", err)
		}
		if airplane.Rows < extent.MaxRow {
			return common.NewConstraintError("rows", constants.MsgGeometryShrinksBooked)
		}
		if airplane.SeatsInRow < extent.MaxSeat {
			return common.NewConstraintError("seats_in_row", constants.MsgGeometryShrinksBooked)
		}

		if err := txs.airplanes.Save(ctx, airplane); err != nil {
			return fmt.Errorf("failed to update airplane: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dtos.AirplaneAs(dtos.ViewWrite, *airplane), nil
}

// applyAirplane validates req and copies it onto airplane. In partial mode absent
// fields keep their stored value.
func (s *ReferenceService) applyAirplane(ctx context.Context, airplane *gormModels.Airplane, req dtos.AirplaneRequest, partial bool) error {
	var c fieldChecks
	if !partial {
		c.required("name", req.Name != nil)
		c.required("rows", req.Rows != nil)
		c.required("seats_in_row", req.SeatsInRow != nil)
		c.required("airplane_type", req.AirplaneType != nil)
	}
	if req.Name != nil {
		airplane.Name = c.text("name", *req.Name)
	}
	if req.Rows != nil {
		c.positive("rows", *req.Rows)
		airplane.Rows = *req.Rows
	}
	if req.SeatsInRow != nil {
		c.positive("seats_in_row", *req.SeatsInRow)
		airplane.SeatsInRow = *req.SeatsInRow
	}
	if req.AirplaneType != nil {
		c.id("airplane_type", *req.AirplaneType)
	}
	if err := c.err(); err != nil {
		return err
	}

	if req.AirplaneType != nil {
		t, err := s.types.FindByID(ctx, *req.AirplaneType)
		if err != nil {
			return asField(err, "airplane_type")
		}
		airplane.AirplaneTypeID = t.ID
		airplane.AirplaneType = *t
	}
	return nil
}

func (s *ReferenceService) ListAirplanes(ctx context.Context) ([]any, error) {
	airplanes, err := s.airplanes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list airplanes: %w", err)
	}
	return dtos.AirplanesAs(dtos.ViewList, airplanes), nil
}

func (s *ReferenceService) GetAirplane(ctx context.Context, id uint) (any, error) {
	airplane, err := s.airplanes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dtos.AirplaneAs(dtos.ViewRetrieve, *airplane), nil
}

func (s *ReferenceService) CreateCrew(ctx context.Context, req dtos.CrewRequest) (*dtos.CrewView, error) {
	var c fieldChecks
	crew := gormModels.Crew{
		FirstName: c.text("first_name", req.FirstName),
		LastName:  c.text("last_name", req.LastName),
		Position:  constants.CrewPosition(req.Position),
	}
	if !crew.Position.Valid() {
		c.v.Add("position", fmt.Sprintf("%q %s", req.Position, constants.MsgInvalidCrewPosition))
	}
	if err := c.err(); err != nil {
		return nil, err
	}

	if err := s.crews.Create(ctx, &crew); err != nil {
		return nil, fmt.Errorf("failed to create crew: %w", err)
	}
	view := dtos.CrewOf(crew)
	return &view, nil
}

func (s *ReferenceService) ListCrews(ctx context.Context) ([]dtos.CrewView, error) {
	crews, err := s.crews.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list crews: %w", err)
	}
	views := make([]dtos.CrewView, 0, len(crews))
	for _, c := range crews {
		views = append(views, dtos.CrewOf(c))
	}
	return views, nil
}
