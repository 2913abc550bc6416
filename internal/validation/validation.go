package validation

import (
	"fmt"
	"time"

	"github.com/Domenick1991/airlink/internal/domain"
)

const (
	MaxFlightDuration = 24 * time.Hour
	MinDepartureLead  = time.Hour
)

// FlightTimes checks a candidate schedule. Rules run in a fixed order and the
// first failure wins: ordering and duration are attributed to arrival_time,
// the future and lead-time rules to departure_time.
func FlightTimes(clock Clock, departureTime, arrivalTime time.Time) error {
	if !arrivalTime.After(departureTime) {
		return domain.NewValidationError("arrival_time", "Arrival time must be later than departure time.")
	}

	if arrivalTime.Sub(departureTime) > MaxFlightDuration {
		return domain.NewValidationError("arrival_time", "Flight duration cannot exceed 24 hours.")
	}

	now := clock.Now()
	if !departureTime.After(now) {
		return domain.NewValidationError("departure_time", "Departure time must be in the future.")
	}

	if !departureTime.After(now.Add(MinDepartureLead)) {
		return domain.NewValidationError("departure_time", "Departure time must be at least one hour later than the current time.")
	}

	return nil
}

// SeatWithinAirplane checks a ticket's seat against the airplane grid.
// Row and seat are 1-indexed; a violation flags both fields.
func SeatWithinAirplane(row, seat int, airplane *domain.Airplane) error {
	if airplane == nil {
		return domain.NewValidationError("flight", "Flight has no airplane assigned.")
	}

	if row > airplane.Rows || seat > airplane.SeatsInRow {
		return &domain.ValidationError{Fields: map[string]string{
			"row":  fmt.Sprintf("Row must be between 1 and %d", airplane.Rows),
			"seat": fmt.Sprintf("Seat must be between 1 and %d", airplane.SeatsInRow),
		}}
	}
	return nil
}

// Overlaps is the half-open interval test: [aStart, aEnd) and [bStart, bEnd)
// overlap iff aStart < bEnd and bStart < aEnd. Touching endpoints do not conflict.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// CrewConflictError reports the first crew member already assigned to an
// overlapping flight.
func CrewConflictError(member domain.Crew) error {
	return domain.NewValidationError("crew", fmt.Sprintf(
		"Crew member %s is not available for this flight time. They already have an assigned flight during this period.",
		member.FullName(),
	))
}
