package repositories

import (
	"context"
	"strings"
	"time"

	"airport-booking/concourse/internal/common"
	"airport-booking/concourse/internal/models/dtos"
	"airport-booking/concourse/internal/models/entities"
	gormModels "airport-booking/concourse/internal/models/gorm"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const flightAvailabilityColumns = `
	flights.id, flights.departure_time, flights.arrival_time, flights.route_id,
	src.name AS source_name, src.closest_big_city AS source_city,
	dst.name AS destination_name, dst.closest_big_city AS destination_city,
	airplanes.id AS airplane_id, airplanes.name AS airplane_name,
	airplanes.seat_rows AS airplane_rows, airplanes.seats_in_row AS airplane_seats_in_row,
	(SELECT COUNT(*) FROM tickets WHERE tickets.flight_id = flights.id) AS tickets_taken`

type FlightRepository struct {
	db *gorm.DB
}

func NewFlightRepository(db *gorm.DB) *FlightRepository {
	return &FlightRepository{db: db}
}

// WithTx returns a repository bound to tx
func (r *FlightRepository) WithTx(tx *gorm.DB) *FlightRepository {
	return &FlightRepository{db: tx}
}

// Transaction runs fn inside one database transaction
func (r *FlightRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

// Create inserts the flight and its crew links. Crew rows must already exist.
func (r *FlightRepository) Create(ctx context.Context, f *gormModels.Flight) error {
	return r.db.WithContext(ctx).Omit("Route", "Airplane", "Crew.*").Create(f).Error
}

// Update saves the flight columns and, when crew is non-nil, replaces the roster
func (r *FlightRepository) Update(ctx context.Context, f *gormModels.Flight, crew *[]gormModels.Crew) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Route", "Airplane", "Crew", "Tickets").Save(f).Error; err != nil {
			return err
		}
		if crew == nil {
			return nil
		}
		if err := tx.Model(f).Association("Crew").Clear(); err != nil {
			return err
		}
		if len(*crew) == 0 {
			f.Crew = nil
			return nil
		}
		if err := tx.Model(f).Association("Crew").Append(*crew); err != nil {
			return err
		}
		f.Crew = *crew
		return nil
	})
}

// Delete removes the flight together with its tickets and crew links
func (r *FlightRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var f gormModels.Flight
		if err := tx.First(&f, id).Error; err != nil {
			return notFound(err, "flight", id)
		}
		if err := tx.Where("flight_id = ?", id).Delete(&gormModels.Ticket{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&f).Association("Crew").Clear(); err != nil {
			return err
		}
		return tx.Delete(&f).Error
	})
}

// FindByID loads the flight with its crew ids only
func (r *FlightRepository) FindByID(ctx context.Context, id uint) (*gormModels.Flight, error) {
	var f gormModels.Flight
	err := r.db.WithContext(ctx).Preload("Crew", orderByCrewID).First(&f, id).Error
	if err != nil {
		return nil, notFound(err, "flight", id)
	}
	return &f, nil
}

// LockByID is FindByID under a row lock that holds off bookings on the flight
// until the transaction ends. Call it on a repository bound to a transaction.
func (r *FlightRepository) LockByID(ctx context.Context, id uint) (*gormModels.Flight, error) {
	if err := lockRow(r.db.WithContext(ctx), &gormModels.Flight{}, id, clause.LockingStrengthUpdate); err != nil {
		return nil, notFound(err, "flight", id)
	}
	return r.FindByID(ctx, id)
}

// BookedExtent is the highest row and seat held by the flight's tickets
func (r *FlightRepository) BookedExtent(ctx context.Context, flightID uint) (BookedExtent, error) {
	var extent BookedExtent
	err := r.db.WithContext(ctx).
		Table("tickets").
		Select("COALESCE(MAX(seat_row), 0) AS max_row, COALESCE(MAX(seat_number), 0) AS max_seat").
		Where("flight_id = ?", flightID).
		Scan(&extent).Error
	return extent, err
}

// FindDetail loads everything the detail view nests: route airports, airplane type and crew
func (r *FlightRepository) FindDetail(ctx context.Context, id uint) (*gormModels.Flight, error) {
	var f gormModels.Flight
	err := r.db.WithContext(ctx).
		Preload("Route.Source").
		Preload("Route.Destination").
		Preload("Airplane.AirplaneType").
		Preload("Crew", orderByCrewID).
		First(&f, id).Error
	if err != nil {
		return nil, notFound(err, "flight", id)
	}
	return &f, nil
}

// ListAvailable returns upcoming flights with their free-seat count.
// Every join is many-to-one, so each flight appears once.
func (r *FlightRepository) ListAvailable(ctx context.Context, filter dtos.FlightFilter, now time.Time) ([]entities.FlightAvailability, error) {
	q := r.db.WithContext(ctx).
		Table("flights").
		Select(flightAvailabilityColumns).
		Joins("JOIN routes ON routes.id = flights.route_id").
		Joins("JOIN airports src ON src.id = routes.source_id").
		Joins("JOIN airports dst ON dst.id = routes.destination_id").
		Joins("JOIN airplanes ON airplanes.id = flights.airplane_id").
		Where("flights.departure_time > ?", now.UTC())

	if from := strings.TrimSpace(filter.FromCity); from != "" {
		q = q.Where(likeLower("src.closest_big_city"), containsPattern(from))
	}
	if to := strings.TrimSpace(filter.ToCity); to != "" {
		q = q.Where(likeLower("dst.closest_big_city"), containsPattern(to))
	}
	if filter.DepartureDate != nil {
		start, end := common.DayRange(*filter.DepartureDate)
		q = q.Where("flights.departure_time >= ? AND flights.departure_time < ?", start, end)
	}
	if filter.ArrivalDate != nil {
		start, end := common.DayRange(*filter.ArrivalDate)
		q = q.Where("flights.arrival_time >= ? AND flights.arrival_time < ?", start, end)
	}

	var rows []entities.FlightAvailability
	err := q.Order("flights.departure_time, flights.id").Scan(&rows).Error
	return rows, err
}

// TakenSeats lists the booked (row, seat) pairs of a flight in seat-map order
func (r *FlightRepository) TakenSeats(ctx context.Context, flightID uint) ([]entities.SeatPosition, error) {
	var seats []entities.SeatPosition
	err := r.db.WithContext(ctx).
		Model(&gormModels.Ticket{}).
		Select("seat_row, seat_number").
		Where("flight_id = ?", flightID).
		Order("seat_row, seat_number").
		Scan(&seats).Error
	return seats, err
}

// Geometries resolves the airplane layout for each flight id that exists. The
// flight and airplane rows stay share-locked so a concurrent airplane swap or
// layout shrink waits for the booking transaction.
func (r *FlightRepository) Geometries(ctx context.Context, flightIDs []uint) (map[uint]entities.FlightGeometry, error) {
	var rows []entities.FlightGeometry
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthShare}).
		Table("flights").
		Select("flights.id AS flight_id, airplanes.seat_rows, airplanes.seats_in_row").
		Joins("JOIN airplanes ON airplanes.id = flights.airplane_id").
		Where("flights.id IN ?", flightIDs).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[uint]entities.FlightGeometry, len(rows))
	for _, g := range rows {
		out[g.FlightID] = g
	}
	return out, nil
}

// TakenSeatsFor returns every persisted seat on the given flights
func (r *FlightRepository) TakenSeatsFor(ctx context.Context, flightIDs []uint) ([]entities.TakenSeat, error) {
	var seats []entities.TakenSeat
	err := r.db.WithContext(ctx).
		Model(&gormModels.Ticket{}).
		Select("flight_id, seat_row, seat_number").
		Where("flight_id IN ?", flightIDs).
		Scan(&seats).Error
	return seats, err
}

func orderByCrewID(db *gorm.DB) *gorm.DB {
	return db.Order("crews.id")
}
