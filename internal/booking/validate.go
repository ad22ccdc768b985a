package booking

import (
	"fmt"

	"airport-booking/concourse/internal/common"
	"airport-booking/concourse/internal/constants"
	"airport-booking/concourse/internal/models/dtos"
)

// AirplaneGeometry is the seat layout a ticket must fit
type AirplaneGeometry struct {
	Rows       int
	SeatsInRow int
}

// SeatKey identifies one physical seat on one flight
type SeatKey struct {
	FlightID uint
	Row      int
	Seat     int
}

// SeatSet is the set of seats already claimed, persisted or earlier in the batch
type SeatSet map[SeatKey]struct{}

func (s SeatSet) Has(k SeatKey) bool {
	_, ok := s[k]
	return ok
}

func (s SeatSet) Add(k SeatKey) {
	s[k] = struct{}{}
}

// ValidateTicket checks one ticket request. Row is checked before seat, and range
// checks before uniqueness. Field keys are relative to the ticket.
func ValidateTicket(req dtos.TicketRequest, geo AirplaneGeometry, taken SeatSet) error {
	if req.Row < 1 || req.Row > geo.Rows {
		return common.NewValidationError("row", rangeMessage("row", "rows", geo.Rows))
	}
	if req.Seat < 1 || req.Seat > geo.SeatsInRow {
		return common.NewValidationError("seat", rangeMessage("seat", "seats_in_row", geo.SeatsInRow))
	}
	if taken.Has(SeatKey{FlightID: req.Flight, Row: req.Row, Seat: req.Seat}) {
		return common.NewConstraintError("", constants.MsgSeatAlreadyBooked)
	}
	return nil
}

func rangeMessage(field, limitName string, limit int) string {
	return fmt.Sprintf("%s number must be in available range: (1, %s): (1, %d)", field, limitName, limit)
}
