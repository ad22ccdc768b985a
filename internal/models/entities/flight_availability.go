package entities

import "time"

// FlightAvailability is one row of the flight listing query. TicketsTaken comes from
// a correlated COUNT over tickets; nothing here is stored.
type FlightAvailability struct {
	ID                 uint      `gorm:"column:id"`
	DepartureTime      time.Time `gorm:"column:departure_time"`
	ArrivalTime        time.Time `gorm:"column:arrival_time"`
	RouteID            uint      `gorm:"column:route_id"`
	SourceName         string    `gorm:"column:source_name"`
	SourceCity         string    `gorm:"column:source_city"`
	DestinationName    string    `gorm:"column:destination_name"`
	DestinationCity    string    `gorm:"column:destination_city"`
	AirplaneID         uint      `gorm:"column:airplane_id"`
	AirplaneName       string    `gorm:"column:airplane_name"`
	AirplaneRows       int       `gorm:"column:airplane_rows"`
	AirplaneSeatsInRow int       `gorm:"column:airplane_seats_in_row"`
	TicketsTaken       int64     `gorm:"column:tickets_taken"`
}

func (f FlightAvailability) Capacity() int {
	return f.AirplaneRows * f.AirplaneSeatsInRow
}

// TicketsAvailable = rows * seats_in_row - count(tickets)
func (f FlightAvailability) TicketsAvailable() int {
	return f.Capacity() - int(f.TicketsTaken)
}

// SeatPosition is a taken (row, seat) pair on a flight
type SeatPosition struct {
	Row  int `gorm:"column:seat_row"`
	Seat int `gorm:"column:seat_number"`
}

// FlightGeometry is the seat layout of the airplane assigned to a flight
type FlightGeometry struct {
	FlightID   uint `gorm:"column:flight_id"`
	Rows       int  `gorm:"column:seat_rows"`
	SeatsInRow int  `gorm:"column:seats_in_row"`
}

// TakenSeat is a persisted ticket's seat, keyed by flight
type TakenSeat struct {
	FlightID uint `gorm:"column:flight_id"`
	Row      int  `gorm:"column:seat_row"`
	Seat     int  `gorm:"column:seat_number"`
}
