package constants

import (
	"database/sql/driver"
	"fmt"
)

// Role is the access level attached to request claims
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) String() string { return string(r) }

// RoleFor maps the users.is_staff flag to a Role
func RoleFor(isStaff bool) Role {
	if isStaff {
		return RoleAdmin
	}
	return RoleUser
}

// CrewPosition mirrors the crews.position column
type CrewPosition string

const (
	CrewPilot                CrewPosition = "pilot"
	CrewCopilot              CrewPosition = "copilot"
	CrewFlightAttendant      CrewPosition = "flight_attendant"
	CrewAirTrafficController CrewPosition = "air_traffic_controller"
	CrewGroundCrew           CrewPosition = "ground_crew"
	CrewSecurityOfficer      CrewPosition = "security_officer"
	CrewAirportStaff         CrewPosition = "airport_staff"
)

var crewPositions = map[CrewPosition]string{
	CrewPilot:                "Pilot",
	CrewCopilot:              "Co-Pilot",
	CrewFlightAttendant:      "Flight Attendant",
	CrewAirTrafficController: "Air Traffic Controller",
	CrewGroundCrew:           "Ground Crew",
	CrewSecurityOfficer:      "Security Officer",
	CrewAirportStaff:         "Airport Staff",
}

func (p CrewPosition) String() string { return string(p) }

// Valid reports whether p is one of the known positions
func (p CrewPosition) Valid() bool {
	_, ok := crewPositions[p]
	return ok
}

// Label is the human readable position name
func (p CrewPosition) Label() string { return crewPositions[p] }

/* ---------- DB adapters so sqlx (or database/sql) scans/values cleanly ---------- */

// Scan implements the sql.Scanner interface
func (p *CrewPosition) Scan(src interface{}) error {
	if src == nil {
		*p = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*p = CrewPosition(v)
	case []byte:
		*p = CrewPosition(v)
	default:
		return fmt.Errorf("CrewPosition: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (p CrewPosition) Value() (driver.Value, error) { return string(p), nil }
