package domain

import "time"

type Order struct {
	ID        int64
	Number    string
	UserID    *int64
	CreatedAt time.Time
	Tickets   []Ticket
}

type Ticket struct {
	ID       int64
	Row      int
	Seat     int
	FlightID *int64
	OrderID  *int64
}

// TicketDetail pairs a ticket with the list shape of its flight.
type TicketDetail struct {
	Ticket
	Flight *FlightListItem
}

// OrderDetail carries the flight list shape for each flight referenced by the
// order's tickets, keyed by flight id.
type OrderDetail struct {
	Order
	TicketFlights map[int64]FlightListItem
}
