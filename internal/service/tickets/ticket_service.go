package tickets

import (
	"context"

	"github.com/Domenick1991/airlink/internal/domain"
	"github.com/Domenick1991/airlink/internal/repository"
)

// TicketUseCase is the staff-facing read surface over sold tickets, across
// all orders and flights.
type TicketUseCase interface {
	List(ctx context.Context, params repository.ListParams) ([]domain.Ticket, int, error)
	GetByID(ctx context.Context, id int64) (*domain.TicketDetail, error)
}

type TicketService struct {
	tickets repository.TicketRepository
	flights repository.FlightRepository
}

func NewTicketService(tickets repository.TicketRepository, flights repository.FlightRepository) *TicketService {
	return &TicketService{tickets: tickets, flights: flights}
}

func (s *TicketService) List(ctx context.Context, params repository.ListParams) ([]domain.Ticket, int, error) {
	return s.tickets.List(ctx, params)
}

func (s *TicketService) GetByID(ctx context.Context, id int64) (*domain.TicketDetail, error) {
	t, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &domain.TicketDetail{Ticket: *t}
	if t.FlightID != nil {
		items, _, err := s.flights.List(ctx, repository.FlightFilter{ID: t.FlightID, Limit: 1})
		if err != nil {
			return nil, err
		}
		if len(items) > 0 {
			detail.Flight = &items[0]
		}
	}
	return detail, nil
}

var _ TicketUseCase = (*TicketService)(nil)
