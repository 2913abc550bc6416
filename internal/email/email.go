package email

import (
	"context"
	"fmt"

	"github.com/Domenick1991/airlink/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.OrderEvent) error {
	switch event.Type {
	case "departure_reminder":
		fmt.Printf("send email to %s: flight %d (%s) departs at %s, row %d seat %d\n",
			event.Email, event.FlightID, event.RouteLabel, event.DepartureTime, event.Row, event.Seat)
	default:
		fmt.Printf("send email to %s about %s for order %s (%d tickets)\n",
			event.Email, event.Type, event.OrderNumber, event.TicketCount)
	}
	return nil
}
