package dtos

import "time"

type APIResponse struct {
	Status       string            `json:"status"`
	Message      string            `json:"message"`
	ResponseTime string            `json:"response_time"`
	Data         any               `json:"data,omitempty"`
	Errors       map[string]string `json:"errors,omitempty"`
}

// Page wraps a paginated list
type Page[T any] struct {
	Count    int64 `json:"count"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Results  []T   `json:"results"`
}

type AirportView struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	ClosestBigCity string `json:"closest_big_city"`
}

type AirplaneTypeView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type AirplaneView struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Rows         int    `json:"rows"`
	SeatsInRow   int    `json:"seats_in_row"`
	AirplaneType uint   `json:"airplane_type"`
	Capacity     int    `json:"capacity"`
}

// AirplaneDetailView shows the type by name instead of id
type AirplaneDetailView struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Rows         int    `json:"rows"`
	SeatsInRow   int    `json:"seats_in_row"`
	AirplaneType string `json:"airplane_type"`
	Capacity     int    `json:"capacity"`
}

type CrewView struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
	Position  string `json:"position"`
}

type RouteView struct {
	ID          uint `json:"id"`
	Source      uint `json:"source"`
	Destination uint `json:"destination"`
	Distance    int  `json:"distance"`
}

type RouteListView struct {
	ID          uint   `json:"id"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Distance    int    `json:"distance"`
}

type RouteDetailView struct {
	ID          uint        `json:"id"`
	Source      AirportView `json:"source"`
	Destination AirportView `json:"destination"`
	Distance    int         `json:"distance"`
}

type FlightView struct {
	ID            uint      `json:"id"`
	Route         uint      `json:"route"`
	Airplane      uint      `json:"airplane"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	Crew          []uint    `json:"crew"`
}

type FlightListView struct {
	ID               uint      `json:"id"`
	RouteSource      string    `json:"route_source"`
	RouteDestination string    `json:"route_destination"`
	FromCity         string    `json:"from_city"`
	ToCity           string    `json:"to_city"`
	AirplaneName     string    `json:"airplane_name"`
	AirplaneCapacity int       `json:"airplane_capacity"`
	DepartureTime    time.Time `json:"departure_time"`
	ArrivalTime      time.Time `json:"arrival_time"`
	TicketsAvailable int       `json:"tickets_available"`
}

type SeatView struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

type FlightDetailView struct {
	ID               uint               `json:"id"`
	Route            RouteDetailView    `json:"route"`
	Airplane         AirplaneDetailView `json:"airplane"`
	DepartureTime    time.Time          `json:"departure_time"`
	ArrivalTime      time.Time          `json:"arrival_time"`
	Crew             []string           `json:"crew"`
	TicketsAvailable int                `json:"tickets_available"`
	TakenPlaces      []SeatView         `json:"taken_places"`
}

// FlightSummaryView is the flight as embedded in an order listing
type FlightSummaryView struct {
	ID            uint      `json:"id"`
	Route         string    `json:"route"`
	AirplaneName  string    `json:"airplane_name"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
}

type TicketView struct {
	ID     uint `json:"id"`
	Row    int  `json:"row"`
	Seat   int  `json:"seat"`
	Flight uint `json:"flight"`
}

type TicketListView struct {
	ID     uint              `json:"id"`
	Row    int               `json:"row"`
	Seat   int               `json:"seat"`
	Flight FlightSummaryView `json:"flight"`
}

type OrderView struct {
	ID        uint         `json:"id"`
	CreatedAt time.Time    `json:"created_at"`
	Tickets   []TicketView `json:"tickets"`
}

type OrderListView struct {
	ID        uint             `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	Tickets   []TicketListView `json:"tickets"`
}

type UserView struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	IsStaff   bool      `json:"is_staff"`
	CreatedAt time.Time `json:"created_at"`
}

type TokenView struct {
	Access    string    `json:"access"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
}
