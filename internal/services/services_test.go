package services

import (
	"testing"
	"time"

	"airport-booking/concourse/internal/booking"
	"airport-booking/concourse/internal/common"
	"airport-booking/concourse/internal/db/dbtest"
	"airport-booking/concourse/internal/db/repositories"

	"gorm.io/gorm"
)

type testServices struct {
	db        *gorm.DB
	fixture   *dbtest.Fixture
	reference *ReferenceService
	routes    *RouteService
	flights   *FlightService
	orders    *OrderService
	users     *UserService
	signer    *common.TokenSigner
}

// Setup test database
func setupServices(t *testing.T) *testServices {
	t.Helper()

	orm := dbtest.Open(t)
	fx := dbtest.Seed(t, orm)

	airports := repositories.NewAirportRepository(orm)
	routes := repositories.NewRouteRepository(orm)
	types := repositories.NewAirplaneTypeRepository(orm)
	airplanes := repositories.NewAirplaneRepository(orm)
	crews := repositories.NewCrewRepository(orm)
	flights := repositories.NewFlightRepository(orm)
	orders := repositories.NewOrderRepository(orm)
	users := repositories.NewUserRepository(orm)
	signer := common.NewTokenSigner([]byte("test-secret"), time.Hour, common.NewMemoryTokenStore(time.Minute))

	return &testServices{
		db:        orm,
		fixture:   fx,
		reference: NewReferenceService(airports, types, airplanes, crews),
		routes:    NewRouteService(routes, airports),
		flights:   NewFlightService(flights, routes, airplanes, crews),
		orders:    NewOrderService(booking.NewEngine(orm, nil), orders),
		users:     NewUserService(users, signer),
		signer:    signer,
	}
}

func ptr[T any](v T) *T { return &v }
