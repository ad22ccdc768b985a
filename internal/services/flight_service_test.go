package services

import (
	"context"
	"testing"
	"time"

	"airport-booking/concourse/internal/common"
	"airport-booking/concourse/internal/db/dbtest"
	"airport-booking/concourse/internal/models/dtos"
	gormModels "airport-booking/concourse/internal/models/gorm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlightService_ArrivalBeforeDeparture(t *testing.T) {
	s := setupServices(t)

	departure := time.Date(2024, 4, 4, 14, 45, 0, 0, time.UTC)
	arrival := time.Date(2024, 4, 3, 14, 45, 0, 0, time.UTC)

	_, err := s.flights.Create(context.Background(), dtos.FlightRequest{
		Route:         ptr(s.fixture.Route.ID),
		Airplane:      ptr(s.fixture.Airplane.ID),
		DepartureTime: &departure,
		ArrivalTime:   &arrival,
	})
	require.Error(t, err)
	assert.True(t, common.IsValidationError(err))
	assert.Contains(t, common.FieldsOf(err), "non_field_errors")
}

func TestFlightService_CreateWithCrew(t *testing.T) {
	s := setupServices(t)
	departure := dbtest.Tomorrow().Add(24 * time.Hour)
	arrival := departure.Add(2 * time.Hour)

	view, err := s.flights.Create(context.Background(), dtos.FlightRequest{
		Route:         ptr(s.fixture.Route.ID),
		Airplane:      ptr(s.fixture.Airplane.ID),
		DepartureTime: &departure,
		ArrivalTime:   &arrival,
		Crew:          &[]uint{s.fixture.Pilot.ID, s.fixture.Pilot.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, []uint{s.fixture.Pilot.ID}, view.Crew)

	_, err = s.flights.Create(context.Background(), dtos.FlightRequest{
		Route:         ptr(s.fixture.Route.ID),
		Airplane:      ptr(s.fixture.Airplane.ID),
		DepartureTime: &departure,
		ArrivalTime:   &arrival,
		Crew:          &[]uint{77},
	})
	assert.True(t, common.IsNotFoundError(err))
}

func TestFlightService_PatchIsMergedBeforeValidation(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	// moving only the departure past the stored arrival must fail
	late := s.fixture.Flight.ArrivalTime.Add(time.Hour)
	_, err := s.flights.Update(ctx, s.fixture.Flight.ID, dtos.FlightRequest{DepartureTime: &late}, true)
	require.Error(t, err)
	assert.True(t, common.IsValidationError(err))

	earlier := s.fixture.Flight.DepartureTime.Add(-time.Hour)
	view, err := s.flights.Update(ctx, s.fixture.Flight.ID, dtos.FlightRequest{DepartureTime: &earlier}, true)
	require.NoError(t, err)
	assert.True(t, view.DepartureTime.Equal(earlier))
	assert.True(t, view.ArrivalTime.Equal(s.fixture.Flight.ArrivalTime))
	assert.Equal(t, s.fixture.Route.ID, view.Route)
}

func TestFlightService_PutRequiresAllFields(t *testing.T) {
	s := setupServices(t)

	_, err := s.flights.Update(context.Background(), s.fixture.Flight.ID, dtos.FlightRequest{}, false)
	require.Error(t, err)
	fields := common.FieldsOf(err)
	assert.Contains(t, fields, "route")
	assert.Contains(t, fields, "arrival_time")
}

func TestFlightService_DetailShowsTakenPlaces(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	dbtest.Book(t, s.db, s.fixture.User.ID, s.fixture.Flight.ID, [2]int{2, 2}, [2]int{1, 1})

	detail, err := s.flights.Get(ctx, s.fixture.Flight.ID)
	require.NoError(t, err)
	assert.Equal(t, 18, detail.TicketsAvailable)
	assert.Equal(t, []dtos.SeatView{{Row: 1, Seat: 1}, {Row: 2, Seat: 2}}, detail.TakenPlaces)
	assert.Equal(t, "Boryspil", detail.Route.Source.Name)
	assert.Equal(t, 20, detail.Airplane.Capacity)

	_, err = s.flights.Get(ctx, 12345)
	assert.True(t, common.IsNotFoundError(err))
}

func TestFlightService_ListUsesClock(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	list, err := s.flights.List(ctx, dtos.FlightFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 20, list[0].TicketsAvailable)
	assert.Equal(t, "Kyiv", list[0].FromCity)

	s.flights.now = func() time.Time { return dbtest.Tomorrow().Add(time.Hour) }
	list, err = s.flights.List(ctx, dtos.FlightFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestFlightService_Delete(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	require.NoError(t, s.flights.Delete(ctx, s.fixture.Flight.ID))
	_, err := s.flights.Get(ctx, s.fixture.Flight.ID)
	assert.True(t, common.IsNotFoundError(err))
}

func TestFlightService_AirplaneSwapMustHoldBookedSeats(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	dbtest.Book(t, s.db, s.fixture.User.ID, s.fixture.Flight.ID, [2]int{2, 10})

	tiny := gormModels.Airplane{Name: "Cessna", Rows: 1, SeatsInRow: 1, AirplaneTypeID: s.fixture.Type.ID}
	require.NoError(t, s.db.Omit("AirplaneType").Create(&tiny).Error)
	narrow := gormModels.Airplane{Name: "Antonov", Rows: 3, SeatsInRow: 9, AirplaneTypeID: s.fixture.Type.ID}
	require.NoError(t, s.db.Omit("AirplaneType").Create(&narrow).Error)
	wide := gormModels.Airplane{Name: "Dreamliner", Rows: 2, SeatsInRow: 10, AirplaneTypeID: s.fixture.Type.ID}
	require.NoError(t, s.db.Omit("AirplaneType").Create(&wide).Error)

	for _, airplane := range []gormModels.Airplane{tiny, narrow} {
		_, err := s.flights.Update(ctx, s.fixture.Flight.ID, dtos.FlightRequest{Airplane: ptr(airplane.ID)}, true)
		require.Error(t, err, airplane.Name)
		assert.True(t, common.IsConstraintError(err), airplane.Name)
		assert.Contains(t, common.FieldsOf(err), "airplane")
	}

	// the rejected swaps left the flight where it was
	detail, err := s.flights.Get(ctx, s.fixture.Flight.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, detail.Airplane.Capacity)
	assert.Equal(t, []dtos.SeatView{{Row: 2, Seat: 10}}, detail.TakenPlaces)

	view, err := s.flights.Update(ctx, s.fixture.Flight.ID, dtos.FlightRequest{Airplane: ptr(wide.ID)}, true)
	require.NoError(t, err)
	assert.Equal(t, wide.ID, view.Airplane)
}

func TestFlightService_AirplaneSwapWithoutTickets(t *testing.T) {
	s := setupServices(t)

	tiny := gormModels.Airplane{Name: "Cessna", Rows: 1, SeatsInRow: 1, AirplaneTypeID: s.fixture.Type.ID}
	require.NoError(t, s.db.Omit("AirplaneType").Create(&tiny).Error)

	view, err := s.flights.Update(context.Background(), s.fixture.Flight.ID, dtos.FlightRequest{Airplane: ptr(tiny.ID)}, true)
	require.NoError(t, err)
	assert.Equal(t, tiny.ID, view.Airplane)

	_, err = s.flights.Update(context.Background(), 9999, dtos.FlightRequest{Airplane: ptr(tiny.ID)}, true)
	assert.True(t, common.IsNotFoundError(err))
}
