package flights

import (
	"context"
	"time"

	"github.com/Domenick1991/airlink/internal/domain"
	"github.com/Domenick1991/airlink/internal/repository"
	"github.com/Domenick1991/airlink/internal/validation"
)

type FlightUseCase interface {
	List(ctx context.Context, filter repository.FlightFilter) ([]domain.FlightListItem, int, error)
	GetByID(ctx context.Context, id int64) (*domain.FlightDetail, error)
	Create(ctx context.Context, input FlightInput) (*domain.FlightDetail, error)
	Update(ctx context.Context, id int64, input FlightInput) (*domain.FlightDetail, error)
	Delete(ctx context.Context, id int64) error
}

type Cache interface {
	GetFlightList(ctx context.Context) ([]domain.FlightListItem, int, error)
	SetFlightList(ctx context.Context, items []domain.FlightListItem, total int) error
	InvalidateFlights(ctx context.Context) error
}

type FlightInput struct {
	RouteID       *int64    `json:"route"`
	AirplaneID    *int64    `json:"airplane"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	CrewIDs       []int64   `json:"crew"`
}

type FlightService struct {
	repo  repository.FlightRepository
	cache Cache
	clock validation.Clock
}

func NewFlightService(repo repository.FlightRepository, cache Cache, clock validation.Clock) *FlightService {
	return &FlightService{repo: repo, cache: cache, clock: clock}
}

// cachedPageLimit is the page size the shared cache entry holds; it must stay
// in sync with the API's default page size. Other page sizes go to the database.
const cachedPageLimit = 10

func (s *FlightService) List(ctx context.Context, filter repository.FlightFilter) ([]domain.FlightListItem, int, error) {
	cacheable := s.cache != nil && filter.Limit == cachedPageLimit && filter.Offset == 0 &&
		filter.ID == nil && filter.RouteID == nil &&
		filter.DepartureFrom == nil && filter.ArrivalFrom == nil

	if cacheable {
		if cached, total, err := s.cache.GetFlightList(ctx); err == nil && cached != nil {
			return cached, total, nil
		}
	}

	flights, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	if cacheable {
		_ = s.cache.SetFlightList(ctx, flights, total)
	}
	return flights, total, nil
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.FlightDetail, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *FlightService) Create(ctx context.Context, input FlightInput) (*domain.FlightDetail, error) {
	if err := s.validate(ctx, input, 0); err != nil {
		return nil, err
	}

	flight := &domain.Flight{
		RouteID:       input.RouteID,
		AirplaneID:    input.AirplaneID,
		DepartureTime: input.DepartureTime,
		ArrivalTime:   input.ArrivalTime,
	}
	if err := s.repo.Create(ctx, flight, input.CrewIDs); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return s.repo.GetByID(ctx, flight.ID)
}

func (s *FlightService) Update(ctx context.Context, id int64, input FlightInput) (*domain.FlightDetail, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.validate(ctx, input, id); err != nil {
		return nil, err
	}

	flight := &domain.Flight{
		ID:            id,
		RouteID:       input.RouteID,
		AirplaneID:    input.AirplaneID,
		DepartureTime: input.DepartureTime,
		ArrivalTime:   input.ArrivalTime,
	}
	if err := s.repo.Update(ctx, flight, input.CrewIDs); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return s.repo.GetByID(ctx, id)
}

func (s *FlightService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// validate applies the schedule rules and the crew availability check.
// excludeFlightID keeps an updated flight from conflicting with itself.
func (s *FlightService) validate(ctx context.Context, input FlightInput, excludeFlightID int64) error {
	if err := validation.FlightTimes(s.clock, input.DepartureTime, input.ArrivalTime); err != nil {
		return err
	}

	if len(input.CrewIDs) == 0 {
		return nil
	}
	conflicts, err := s.repo.FindCrewConflicts(ctx, input.CrewIDs, input.DepartureTime, input.ArrivalTime, excludeFlightID)
	if err != nil {
		return err
	}
	if len(conflicts) > 0 {
		return validation.CrewConflictError(conflicts[0])
	}
	return nil
}

func (s *FlightService) invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.InvalidateFlights(ctx)
	}
}

var _ FlightUseCase = (*FlightService)(nil)
