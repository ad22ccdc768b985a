package dtos

import "time"

type AirportRequest struct {
	Name           string `json:"name"`
	ClosestBigCity string `json:"closest_big_city"`
}

type AirplaneTypeRequest struct {
	Name string `json:"name"`
}

// AirplaneRequest uses pointers so PATCH can tell absent fields from zero values
type AirplaneRequest struct {
	Name         *string `json:"name"`
	Rows         *int    `json:"rows"`
	SeatsInRow   *int    `json:"seats_in_row"`
	AirplaneType *uint   `json:"airplane_type"`
}

type CrewRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Position  string `json:"position"`
}

type RouteRequest struct {
	Source      uint `json:"source"`
	Destination uint `json:"destination"`
	Distance    int  `json:"distance"`
}

type FlightRequest struct {
	Route         *uint      `json:"route"`
	Airplane      *uint      `json:"airplane"`
	DepartureTime *time.Time `json:"departure_time"`
	ArrivalTime   *time.Time `json:"arrival_time"`
	Crew          *[]uint    `json:"crew"`
}

// FlightFilter carries the optional list filters; empty means no constraint
type FlightFilter struct {
	FromCity      string
	ToCity        string
	DepartureDate *time.Time
	ArrivalDate   *time.Time
}

type RouteFilter struct {
	Source      string
	Destination string
}

type TicketRequest struct {
	Row    int  `json:"row"`
	Seat   int  `json:"seat"`
	Flight uint `json:"flight"`
}

type OrderRequest struct {
	Tickets []TicketRequest `json:"tickets"`
}

type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type TokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
