// Package dbtest opens migrated in-memory SQLite databases and seeds fixtures for tests.
package dbtest

import (
	"testing"
	"time"

	"airport-booking/concourse/internal/config"
	"airport-booking/concourse/internal/constants"
	"airport-booking/concourse/internal/db"
	gormModels "airport-booking/concourse/internal/models/gorm"

	"gorm.io/gorm"
)

// Open returns a fresh migrated database that is closed when the test ends
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	orm, err := db.InitORM(config.DatabaseConfig{Driver: "sqlite", SQLitePath: ":memory:"})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.Migrate(orm); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := orm.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return orm
}

// Fixture is a small connected graph: two airports, a route, a 2x10 airplane,
// one crew member and a flight departing tomorrow.
type Fixture struct {
	Source      gormModels.Airport
	Destination gormModels.Airport
	Route       gormModels.Route
	Type        gormModels.AirplaneType
	Airplane    gormModels.Airplane
	Pilot       gormModels.Crew
	Flight      gormModels.Flight
	User        gormModels.User
	Admin       gormModels.User
}

// Seed writes the fixture graph
func Seed(t testing.TB, orm *gorm.DB) *Fixture {
	t.Helper()

	f := &Fixture{
		Source:      gormModels.Airport{Name: "Boryspil", ClosestBigCity: "Kyiv"},
		Destination: gormModels.Airport{Name: "Heathrow", ClosestBigCity: "London"},
		Type:        gormModels.AirplaneType{Name: "Narrow-body"},
		Pilot:       gormModels.Crew{FirstName: "Amelia", LastName: "Earhart", Position: constants.CrewPilot},
		User:        gormModels.User{Email: "user@example.com", PasswordHash: "x", IsActive: true},
		Admin:       gormModels.User{Email: "admin@example.com", PasswordHash: "x", IsStaff: true, IsActive: true},
	}

	mustCreate(t, orm, &f.Source)
	mustCreate(t, orm, &f.Destination)
	mustCreate(t, orm, &f.Type)
	mustCreate(t, orm, &f.Pilot)
	mustCreate(t, orm, &f.User)
	mustCreate(t, orm, &f.Admin)

	f.Route = gormModels.Route{SourceID: f.Source.ID, DestinationID: f.Destination.ID, Distance: 2130}
	mustCreate(t, orm.Omit("Source", "Destination"), &f.Route)

	f.Airplane = gormModels.Airplane{Name: "Mriya", Rows: 2, SeatsInRow: 10, AirplaneTypeID: f.Type.ID}
	mustCreate(t, orm.Omit("AirplaneType"), &f.Airplane)

	f.Flight = NewFlight(t, orm, f.Route.ID, f.Airplane.ID, Tomorrow())
	return f
}

// NewFlight inserts a three-hour flight leaving at departure
func NewFlight(t testing.TB, orm *gorm.DB, routeID, airplaneID uint, departure time.Time) gormModels.Flight {
	t.Helper()

	flight := gormModels.Flight{
		RouteID:       routeID,
		AirplaneID:    airplaneID,
		DepartureTime: departure,
		ArrivalTime:   departure.Add(3 * time.Hour),
	}
	mustCreate(t, orm.Omit("Route", "Airplane", "Crew"), &flight)
	return flight
}

// Book inserts an order holding the given (row, seat) pairs on flightID
func Book(t testing.TB, orm *gorm.DB, userID, flightID uint, seats ...[2]int) gormModels.Order {
	t.Helper()

	order := gormModels.Order{UserID: userID}
	mustCreate(t, orm.Omit("User", "Tickets"), &order)
	for _, s := range seats {
		ticket := gormModels.Ticket{Row: s[0], Seat: s[1], FlightID: flightID, OrderID: order.ID}
		mustCreate(t, orm.Omit("Flight"), &ticket)
		order.Tickets = append(order.Tickets, ticket)
	}
	return order
}

// Tomorrow is noon UTC the next day, truncated so it round-trips through SQLite unchanged
func Tomorrow() time.Time {
	d := time.Now().UTC().Add(24 * time.Hour)
	return time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, time.UTC)
}

func mustCreate(t testing.TB, orm *gorm.DB, value any) {
	t.Helper()
	if err := orm.Create(value).Error; err != nil {
		t.Fatalf("Failed to seed %T: %v", value, err)
	}
}
