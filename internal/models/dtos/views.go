package dtos

import (
	"sort"

	"airport-booking/concourse/internal/models/entities"
	gormModels "airport-booking/concourse/internal/models/gorm"
)

// ViewKind selects which projection an operation renders
type ViewKind string

const (
	ViewList     ViewKind = "list"
	ViewRetrieve ViewKind = "retrieve"
	ViewWrite    ViewKind = "write"
)

var routeViews = map[ViewKind]func(gormModels.Route) any{
	ViewList: func(r gormModels.Route) any {
		return RouteListView{
			ID:          r.ID,
			Source:      r.Source.Name,
			Destination: r.Destination.Name,
			Distance:    r.Distance,
		}
	},
	ViewRetrieve: func(r gormModels.Route) any { return routeDetail(r) },
	ViewWrite: func(r gormModels.Route) any {
		return RouteView{ID: r.ID, Source: r.SourceID, Destination: r.DestinationID, Distance: r.Distance}
	},
}

var airplaneViews = map[ViewKind]func(gormModels.Airplane) any{
	ViewList:     func(a gormModels.Airplane) any { return airplaneDetail(a) },
	ViewRetrieve: func(a gormModels.Airplane) any { return airplaneDetail(a) },
	ViewWrite: func(a gormModels.Airplane) any {
		return AirplaneView{
			ID:           a.ID,
			Name:         a.Name,
			Rows:         a.Rows,
			SeatsInRow:   a.SeatsInRow,
			AirplaneType: a.AirplaneTypeID,
			Capacity:     a.Capacity(),
		}
	},
}

// RouteAs projects a route for the given operation
func RouteAs(kind ViewKind, r gormModels.Route) any {
	return routeViews[kind](r)
}

func RoutesAs(kind ViewKind, routes []gormModels.Route) []any {
	out := make([]any, 0, len(routes))
	for _, r := range routes {
		out = append(out, RouteAs(kind, r))
	}
	return out
}

func AirplaneAs(kind ViewKind, a gormModels.Airplane) any {
	return airplaneViews[kind](a)
}

func AirplanesAs(kind ViewKind, airplanes []gormModels.Airplane) []any {
	out := make([]any, 0, len(airplanes))
	for _, a := range airplanes {
		out = append(out, AirplaneAs(kind, a))
	}
	return out
}

func AirportOf(a gormModels.Airport) AirportView {
	return AirportView{ID: a.ID, Name: a.Name, ClosestBigCity: a.ClosestBigCity}
}

func AirplaneTypeOf(t gormModels.AirplaneType) AirplaneTypeView {
	return AirplaneTypeView{ID: t.ID, Name: t.Name}
}

func CrewOf(c gormModels.Crew) CrewView {
	return CrewView{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		FullName:  c.FullName(),
		Position:  c.Position.String(),
	}
}

func routeDetail(r gormModels.Route) RouteDetailView {
	return RouteDetailView{
		ID:          r.ID,
		Source:      AirportOf(r.Source),
		Destination: AirportOf(r.Destination),
		Distance:    r.Distance,
	}
}

func airplaneDetail(a gormModels.Airplane) AirplaneDetailView {
	return AirplaneDetailView{
		ID:           a.ID,
		Name:         a.Name,
		Rows:         a.Rows,
		SeatsInRow:   a.SeatsInRow,
		AirplaneType: a.AirplaneType.Name,
		Capacity:     a.Capacity(),
	}
}

// FlightWriteView is what create/update respond with
func FlightWriteView(f gormModels.Flight) FlightView {
	crew := make([]uint, 0, len(f.Crew))
	for _, c := range f.Crew {
		crew = append(crew, c.ID)
	}
	sort.Slice(crew, func(i, j int) bool { return crew[i] < crew[j] })

	return FlightView{
		ID:            f.ID,
		Route:         f.RouteID,
		Airplane:      f.AirplaneID,
		DepartureTime: f.DepartureTime,
		ArrivalTime:   f.ArrivalTime,
		Crew:          crew,
	}
}

func FlightListOf(row entities.FlightAvailability) FlightListView {
	return FlightListView{
		ID:               row.ID,
		RouteSource:      row.SourceName,
		RouteDestination: row.DestinationName,
		FromCity:         row.SourceCity,
		ToCity:           row.DestinationCity,
		AirplaneName:     row.AirplaneName,
		AirplaneCapacity: row.Capacity(),
		DepartureTime:    row.DepartureTime,
		ArrivalTime:      row.ArrivalTime,
		TicketsAvailable: row.TicketsAvailable(),
	}
}

// FlightDetailOf renders the seat-map view. taken must already be sorted by (row, seat).
func FlightDetailOf(f gormModels.Flight, taken []entities.SeatPosition) FlightDetailView {
	crew := make([]string, 0, len(f.Crew))
	for _, c := range f.Crew {
		crew = append(crew, c.FullName())
	}

	places := make([]SeatView, 0, len(taken))
	for _, p := range taken {
		places = append(places, SeatView{Row: p.Row, Seat: p.Seat})
	}

	return FlightDetailView{
		ID:               f.ID,
		Route:            routeDetail(f.Route),
		Airplane:         airplaneDetail(f.Airplane),
		DepartureTime:    f.DepartureTime,
		ArrivalTime:      f.ArrivalTime,
		Crew:             crew,
		TicketsAvailable: f.Airplane.Capacity() - len(taken),
		TakenPlaces:      places,
	}
}

// SortTickets orders tickets by (row, seat) ascending in place
func SortTickets(tickets []gormModels.Ticket) {
	sort.Slice(tickets, func(i, j int) bool {
		if tickets[i].Row != tickets[j].Row {
			return tickets[i].Row < tickets[j].Row
		}
		return tickets[i].Seat < tickets[j].Seat
	})
}

func OrderOf(o gormModels.Order) OrderView {
	SortTickets(o.Tickets)
	tickets := make([]TicketView, 0, len(o.Tickets))
	for _, t := range o.Tickets {
		tickets = append(tickets, TicketView{ID: t.ID, Row: t.Row, Seat: t.Seat, Flight: t.FlightID})
	}
	return OrderView{ID: o.ID, CreatedAt: o.CreatedAt, Tickets: tickets}
}

func OrderListOf(o gormModels.Order) OrderListView {
	SortTickets(o.Tickets)
	tickets := make([]TicketListView, 0, len(o.Tickets))
	for _, t := range o.Tickets {
		tickets = append(tickets, TicketListView{
			ID:   t.ID,
			Row:  t.Row,
			Seat: t.Seat,
			Flight: FlightSummaryView{
				ID:            t.Flight.ID,
				Route:         t.Flight.Route.Source.Name + "-" + t.Flight.Route.Destination.Name,
				AirplaneName:  t.Flight.Airplane.Name,
				DepartureTime: t.Flight.DepartureTime,
				ArrivalTime:   t.Flight.ArrivalTime,
			},
		})
	}
	return OrderListView{ID: o.ID, CreatedAt: o.CreatedAt, Tickets: tickets}
}

func UserOf(u gormModels.User) UserView {
	return UserView{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsStaff:   u.IsStaff,
		CreatedAt: u.CreatedAt,
	}
}
