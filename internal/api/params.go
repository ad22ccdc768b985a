package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"airport-booking/concourse/internal/common"
	"airport-booking/concourse/internal/constants"
	"airport-booking/concourse/internal/models/dtos"
)

// flightFilterFrom reads ?from=&to=&departure_date=&arrival_date=
func flightFilterFrom(r *http.Request) (dtos.FlightFilter, error) {
	q := r.URL.Query()
	filter := dtos.FlightFilter{
		FromCity: strings.TrimSpace(q.Get("from")),
		ToCity:   strings.TrimSpace(q.Get("to")),
	}

	verr := &common.ValidationError{}
	for _, p := range []struct {
		key string
		dst **time.Time
	}{
		{"departure_date", &filter.DepartureDate},
		{"arrival_date", &filter.ArrivalDate},
	} {
		raw := strings.TrimSpace(q.Get(p.key))
		if raw == "" {
			continue
		}
		d, err := time.ParseInLocation(constants.DateLayout, raw, time.UTC)
		if err != nil {
			verr.Add(p.key, constants.MsgInvalidDate)
			continue
		}
		*p.dst = &d
	}

	return filter, verr.OrNil()
}

// routeFilterFrom reads ?source=&destination=
func routeFilterFrom(r *http.Request) dtos.RouteFilter {
	q := r.URL.Query()
	return dtos.RouteFilter{
		Source:      strings.TrimSpace(q.Get("source")),
		Destination: strings.TrimSpace(q.Get("destination")),
	}
}

// pagination reads ?page=&page_size=, defaulting to the first page
func pagination(r *http.Request) (page, pageSize int, err error) {
	q := r.URL.Query()
	page, pageSize = 1, constants.DefaultPageSize

	if raw := q.Get("page"); raw != "" {
		if page, err = strconv.Atoi(raw); err != nil {
			return 0, 0, common.NewValidationError("page", constants.MsgInvalidPagination)
		}
	}
	if raw := q.Get("page_size"); raw != "" {
		if pageSize, err = strconv.Atoi(raw); err != nil {
			return 0, 0, common.NewValidationError("page_size", constants.MsgInvalidPagination)
		}
	}
	return page, pageSize, nil
}
