package services

import (
	"context"
	"fmt"

	"airport-booking/concourse/internal/common"
	"airport-booking/concourse/internal/constants"
	"airport-booking/concourse/internal/db/repositories"
	"airport-booking/concourse/internal/models/dtos"
	gormModels "airport-booking/concourse/internal/models/gorm"
)

// RouteService creates and reads routes. Routes are immutable once created.
type RouteService struct {
	routes   *repositories.RouteRepository
	airports *repositories.AirportRepository
}

func NewRouteService(routes *repositories.RouteRepository, airports *repositories.AirportRepository) *RouteService {
	return &RouteService{routes: routes, airports: airports}
}

func (s *RouteService) Create(ctx context.Context, req dtos.RouteRequest) (any, error) {
	var c fieldChecks
	c.id("source", req.Source)
	c.id("destination", req.Destination)
	c.positive("distance", req.Distance)
	if err := c.err(); err != nil {
		return nil, err
	}
	if req.Source == req.Destination {
		return nil, common.NewValidationError(nonFieldErrors, constants.MsgSameSourceDestination)
	}

	source, err := s.airports.FindByID(ctx, req.Source)
	if err != nil {
		return nil, asField(err, "source")
	}
	destination, err := s.airports.FindByID(ctx, req.Destination)
	if err != nil {
		return nil, asField(err, "destination")
	}

	exists, err := s.routes.Exists(ctx, source.ID, destination.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check route: %w", err)
	}
	if exists {
		return nil, common.NewConstraintError(nonFieldErrors, constants.MsgRouteAlreadyExists)
	}

	route := gormModels.Route{
		SourceID:      source.ID,
		DestinationID: destination.ID,
		Distance:      req.Distance,
		Source:        *source,
		Destination:   *destination,
	}
	if err := s.routes.Create(ctx, &route); err != nil {
		if common.IsConstraintError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create route: %w", err)
	}
	return dtos.RouteAs(dtos.ViewWrite, route), nil
}

func (s *RouteService) List(ctx context.Context, filter dtos.RouteFilter) ([]any, error) {
	routes, err := s.routes.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list routes: %w", err)
	}
	return dtos.RoutesAs(dtos.ViewList, routes), nil
}

func (s *RouteService) Get(ctx context.Context, id uint) (any, error) {
	route, err := s.routes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dtos.RouteAs(dtos.ViewRetrieve, *route), nil
}
