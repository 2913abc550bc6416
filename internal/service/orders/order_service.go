package orders

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Domenick1991/airlink/internal/domain"
	"github.com/Domenick1991/airlink/internal/kafka"
	"github.com/Domenick1991/airlink/internal/repository"
	"github.com/Domenick1991/airlink/internal/validation"
	"github.com/google/uuid"
)

type OrderUseCase interface {
	Create(ctx context.Context, userID int64, input CreateOrderInput) (*domain.Order, error)
	List(ctx context.Context, viewer Viewer, params repository.ListParams) ([]domain.Order, int, error)
	GetByID(ctx context.Context, viewer Viewer, id int64) (*domain.OrderDetail, error)
}

// Viewer is the authenticated caller; staff see every order, others only their own.
type Viewer struct {
	UserID  int64
	IsStaff bool
}

type CreateOrderInput struct {
	Tickets []TicketInput `json:"tickets"`
}

type TicketInput struct {
	Row      int   `json:"row"`
	Seat     int   `json:"seat"`
	FlightID int64 `json:"flight"`
}

type Cache interface {
	InvalidateFlights(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type OrderService struct {
	orders             repository.OrderRepository
	flights            repository.FlightRepository
	users              repository.UserRepository
	cache              Cache
	producer           Producer
	ordersTopic        string
	notificationsTopic string
}

type OrderServiceOption func(*OrderService)

func WithNotificationsTopic(topic string) OrderServiceOption {
	return func(s *OrderService) {
		s.notificationsTopic = topic
	}
}

func NewOrderService(
	orders repository.OrderRepository,
	flights repository.FlightRepository,
	users repository.UserRepository,
	cache Cache,
	producer Producer,
	ordersTopic string,
	opts ...OrderServiceOption,
) *OrderService {
	service := &OrderService{
		orders:      orders,
		flights:     flights,
		users:       users,
		cache:       cache,
		producer:    producer,
		ordersTopic: ordersTopic,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Create runs the two-phase order flow: validate every ticket against a flight
// snapshot first, then persist the order and all tickets in one transaction.
// The unique (row, seat, flight) index is the authoritative guard against a
// concurrent order for the same seat.
func (s *OrderService) Create(ctx context.Context, userID int64, input CreateOrderInput) (*domain.Order, error) {
	if len(input.Tickets) == 0 {
		return nil, domain.NewValidationError("tickets", "This list may not be empty.")
	}

	seen := make(map[TicketInput]struct{}, len(input.Tickets))
	flightsByID := make(map[int64]*domain.FlightDetail)
	tickets := make([]domain.Ticket, 0, len(input.Tickets))

	for _, t := range input.Tickets {
		if t.Row < 1 || t.Seat < 1 {
			return nil, &domain.ValidationError{Fields: map[string]string{
				"row":  "Row must be a positive integer",
				"seat": "Seat must be a positive integer",
			}}
		}
		if _, dup := seen[t]; dup {
			return nil, domain.NewValidationError("tickets",
				fmt.Sprintf("Duplicate ticket for flight %d, row %d, seat %d.", t.FlightID, t.Row, t.Seat))
		}
		seen[t] = struct{}{}

		flight, ok := flightsByID[t.FlightID]
		if !ok {
			var err error
			flight, err = s.flights.GetByID(ctx, t.FlightID)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return nil, domain.NewValidationError("flight", fmt.Sprintf("Flight %d does not exist.", t.FlightID))
				}
				return nil, err
			}
			flightsByID[t.FlightID] = flight
		}

		if err := validation.SeatWithinAirplane(t.Row, t.Seat, flight.Airplane); err != nil {
			return nil, err
		}
		for _, taken := range flight.TakenPlaces {
			if taken.Row == t.Row && taken.Seat == t.Seat {
				return nil, fmt.Errorf("%w: seat %d-%d on flight %d is taken", domain.ErrConflict, t.Row, t.Seat, t.FlightID)
			}
		}

		flightID := t.FlightID
		tickets = append(tickets, domain.Ticket{Row: t.Row, Seat: t.Seat, FlightID: &flightID})
	}

	order := &domain.Order{Number: uuid.NewString(), UserID: &userID}
	if err := s.orders.CreateWithTickets(ctx, order, tickets); err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.InvalidateFlights(ctx)
	}
	if err := s.publishCreated(ctx, userID, order); err != nil {
		log.Printf("WARNING: failed to publish order_created event for order %s: %v", order.Number, err)
	}
	return order, nil
}

func (s *OrderService) List(ctx context.Context, viewer Viewer, params repository.ListParams) ([]domain.Order, int, error) {
	if viewer.IsStaff {
		return s.orders.List(ctx, nil, params)
	}
	return s.orders.List(ctx, &viewer.UserID, params)
}

// GetByID returns the order with the flight list shape resolved for every
// ticket, so the detail response can nest each ticket's flight.
func (s *OrderService) GetByID(ctx context.Context, viewer Viewer, id int64) (*domain.OrderDetail, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !viewer.IsStaff && (order.UserID == nil || *order.UserID != viewer.UserID) {
		return nil, domain.ErrNotFound
	}

	detail := &domain.OrderDetail{Order: *order, TicketFlights: make(map[int64]domain.FlightListItem)}
	for _, t := range order.Tickets {
		if t.FlightID == nil {
			continue
		}
		if _, seen := detail.TicketFlights[*t.FlightID]; seen {
			continue
		}
		items, _, err := s.flights.List(ctx, repository.FlightFilter{ID: t.FlightID, Limit: 1})
		if err != nil {
			return nil, err
		}
		if len(items) > 0 {
			detail.TicketFlights[*t.FlightID] = items[0]
		}
	}
	return detail, nil
}

func (s *OrderService) publishCreated(ctx context.Context, userID int64, order *domain.Order) error {
	if s.producer == nil || s.ordersTopic == "" {
		return nil
	}

	email := ""
	if user, err := s.users.GetByID(ctx, userID); err == nil {
		email = user.Email
	}
	event := kafka.OrderEvent{
		Type:        "order_created",
		OrderNumber: order.Number,
		Email:       email,
		TicketCount: len(order.Tickets),
	}
	if err := s.producer.Publish(ctx, s.ordersTopic, order.Number, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, order.Number, event)
	}
	return nil
}

var _ OrderUseCase = (*OrderService)(nil)
