package domain

import "time"

type Flight struct {
	ID            int64
	RouteID       *int64
	AirplaneID    *int64
	DepartureTime time.Time
	ArrivalTime   time.Time
	Route         *Route
	Airplane      *Airplane
	Crew          []Crew
}

// SeatRef identifies one seat on a flight's grid.
type SeatRef struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

// FlightListItem is the denormalized read model for flight lists.
// TicketsAvailable and RouteLabel are derived at read time, never stored.
type FlightListItem struct {
	ID               int64
	RouteLabel       string
	AirplaneName     string
	DepartureTime    time.Time
	ArrivalTime      time.Time
	Crew             []string
	TicketsAvailable int
}

// FlightDetail is the nested read model for a single flight.
type FlightDetail struct {
	Flight
	RouteLabel       string
	TicketsAvailable int
	TakenPlaces      []SeatRef
}

// DepartureNotice is one passenger to remind about an upcoming departure.
type DepartureNotice struct {
	Email         string
	FlightID      int64
	RouteLabel    string
	DepartureTime time.Time
	Row           int
	Seat          int
}
