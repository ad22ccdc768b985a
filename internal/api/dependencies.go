package api

import (
	"airport-booking/concourse/internal/booking"
	"airport-booking/concourse/internal/common"
	"airport-booking/concourse/internal/db/repositories"
	"airport-booking/concourse/internal/metrics"
	"airport-booking/concourse/internal/services"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Repositories struct {
	Airports      *repositories.AirportRepository
	Routes        *repositories.RouteRepository
	AirplaneTypes *repositories.AirplaneTypeRepository
	Airplanes     *repositories.AirplaneRepository
	Crews         *repositories.CrewRepository
	Flights       *repositories.FlightRepository
	Orders        *repositories.OrderRepository
	Users         *repositories.UserRepository
	Keys          *repositories.KeysRepo
}

type Services struct {
	Reference *services.ReferenceService
	Routes    *services.RouteService
	Flights   *services.FlightService
	Orders    *services.OrderService
	Users     *services.UserService
	Signer    *common.TokenSigner
}

// Infra is everything built by main before the dependency graph
type Infra struct {
	ORM     *gorm.DB
	SQL     *sqlx.DB
	Redis   *redis.Client // nil when REDIS_ENABLED=false
	Signer  *common.TokenSigner
	Metrics *metrics.MetricsRegistry
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Infra    Infra
}

func InitDependencies(infra Infra) (*Dependencies, error) {

	repos := &Repositories{
		Airports:      repositories.NewAirportRepository(infra.ORM),
		Routes:        repositories.NewRouteRepository(infra.ORM),
		AirplaneTypes: repositories.NewAirplaneTypeRepository(infra.ORM),
		Airplanes:     repositories.NewAirplaneRepository(infra.ORM),
		Crews:         repositories.NewCrewRepository(infra.ORM),
		Flights:       repositories.NewFlightRepository(infra.ORM),
		Orders:        repositories.NewOrderRepository(infra.ORM),
		Users:         repositories.NewUserRepository(infra.ORM),
		Keys:          repositories.NewApiKeysRepo(infra.SQL),
	}

	engine := booking.NewEngine(infra.ORM, infra.Metrics)

	svcs := &Services{
		Reference: services.NewReferenceService(repos.Airports, repos.AirplaneTypes, repos.Airplanes, repos.Crews),
		Routes:    services.NewRouteService(repos.Routes, repos.Airports),
		Flights:   services.NewFlightService(repos.Flights, repos.Routes, repos.Airplanes, repos.Crews),
		Orders:    services.NewOrderService(engine, repos.Orders),
		Users:     services.NewUserService(repos.Users, infra.Signer),
		Signer:    infra.Signer,
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		Infra:    infra,
	}, nil

}
