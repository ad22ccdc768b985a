package gorm

import "time"

type Flight struct {
	ID            uint      `gorm:"column:id;primaryKey"`
	RouteID       uint      `gorm:"column:route_id;not null;index"`
	AirplaneID    uint      `gorm:"column:airplane_id;not null;index"`
	DepartureTime time.Time `gorm:"column:departure_time;not null;index"`
	ArrivalTime   time.Time `gorm:"column:arrival_time;not null"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Route    Route    `gorm:"foreignKey:RouteID;constraint:OnDelete:CASCADE"`
	Airplane Airplane `gorm:"foreignKey:AirplaneID;constraint:OnDelete:CASCADE"`
	Crew     []Crew   `gorm:"many2many:flight_crews;constraint:OnDelete:CASCADE"`
	Tickets  []Ticket `gorm:"foreignKey:FlightID;constraint:OnDelete:CASCADE"`
}

func (Flight) TableName() string {
	return "flights"
}

// Order is a user's checkout; it exclusively owns its tickets
type Order struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	UserID    uint      `gorm:"column:user_id;not null;index"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index"`

	// Relationships
	User    User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Tickets []Ticket `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (Order) TableName() string {
	return "orders"
}

// Ticket claims one seat on one flight. (flight_id, seat_row, seat_number) is unique
// and that index is the final arbiter for concurrent bookings.
type Ticket struct {
	ID       uint `gorm:"column:id;primaryKey"`
	Row      int  `gorm:"column:seat_row;not null;uniqueIndex:idx_tickets_flight_row_seat,priority:2"`
	Seat     int  `gorm:"column:seat_number;not null;uniqueIndex:idx_tickets_flight_row_seat,priority:3"`
	FlightID uint `gorm:"column:flight_id;not null;uniqueIndex:idx_tickets_flight_row_seat,priority:1"`
	OrderID  uint `gorm:"column:order_id;not null;index"`

	// Relationships
	Flight Flight `gorm:"foreignKey:FlightID"`
}

func (Ticket) TableName() string {
	return "tickets"
}
