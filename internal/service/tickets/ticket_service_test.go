package tickets

import (
	"context"
	"testing"
	"time"

	"github.com/Domenick1991/airlink/internal/domain"
	"github.com/Domenick1991/airlink/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockTicketRepository struct {
	mock.Mock
}

func (m *MockTicketRepository) List(ctx context.Context, params repository.ListParams) ([]domain.Ticket, int, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]domain.Ticket), args.Int(1), args.Error(2)
}

func (m *MockTicketRepository) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) List(ctx context.Context, filter repository.FlightFilter) ([]domain.FlightListItem, int, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.FlightListItem), args.Int(1), args.Error(2)
}

func (m *MockFlightRepository) GetByID(ctx context.Context, id int64) (*domain.FlightDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FlightDetail), args.Error(1)
}

func (m *MockFlightRepository) Create(ctx context.Context, f *domain.Flight, crewIDs []int64) error {
	args := m.Called(ctx, f, crewIDs)
	return args.Error(0)
}

func (m *MockFlightRepository) Update(ctx context.Context, f *domain.Flight, crewIDs []int64) error {
	args := m.Called(ctx, f, crewIDs)
	return args.Error(0)
}

func (m *MockFlightRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFlightRepository) FindCrewConflicts(ctx context.Context, crewIDs []int64, departureTime, arrivalTime time.Time, excludeFlightID int64) ([]domain.Crew, error) {
	args := m.Called(ctx, crewIDs, departureTime, arrivalTime, excludeFlightID)
	return args.Get(0).([]domain.Crew), args.Error(1)
}

func (m *MockFlightRepository) ListDepartureNotices(ctx context.Context, from, to time.Time) ([]domain.DepartureNotice, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]domain.DepartureNotice), args.Error(1)
}

func TestTicketService_List(t *testing.T) {
	mockTickets := &MockTicketRepository{}
	service := NewTicketService(mockTickets, &MockFlightRepository{})

	ctx := context.Background()
	params := repository.ListParams{Limit: 10}
	flightID := int64(4)

	mockTickets.On("List", ctx, params).
		Return([]domain.Ticket{{ID: 1, Row: 1, Seat: 1, FlightID: &flightID}}, 25, nil).Once()

	result, total, err := service.List(ctx, params)

	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, 25, total)

	mockTickets.AssertExpectations(t)
}

func TestTicketService_GetByID_NestsFlight(t *testing.T) {
	mockTickets := &MockTicketRepository{}
	mockFlights := &MockFlightRepository{}
	service := NewTicketService(mockTickets, mockFlights)

	ctx := context.Background()
	flightID := int64(4)
	ticket := &domain.Ticket{ID: 9, Row: 2, Seat: 3, FlightID: &flightID}
	item := domain.FlightListItem{ID: 4, RouteLabel: "VKO - LED"}

	mockTickets.On("GetByID", ctx, int64(9)).Return(ticket, nil).Once()
	mockFlights.On("List", ctx, repository.FlightFilter{ID: &flightID, Limit: 1}).
		Return([]domain.FlightListItem{item}, 1, nil).Once()

	detail, err := service.GetByID(ctx, 9)

	assert.NoError(t, err)
	assert.Equal(t, int64(9), detail.ID)
	assert.Equal(t, &item, detail.Flight)

	mockTickets.AssertExpectations(t)
	mockFlights.AssertExpectations(t)
}

func TestTicketService_GetByID_NotFound(t *testing.T) {
	mockTickets := &MockTicketRepository{}
	mockFlights := &MockFlightRepository{}
	service := NewTicketService(mockTickets, mockFlights)

	ctx := context.Background()

	mockTickets.On("GetByID", ctx, int64(99)).Return(nil, domain.ErrNotFound).Once()

	detail, err := service.GetByID(ctx, 99)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, detail)

	mockFlights.AssertNotCalled(t, "List")
}

func TestTicketService_GetByID_NoFlight(t *testing.T) {
	mockTickets := &MockTicketRepository{}
	mockFlights := &MockFlightRepository{}
	service := NewTicketService(mockTickets, mockFlights)

	ctx := context.Background()
	ticket := &domain.Ticket{ID: 9, Row: 2, Seat: 3}

	mockTickets.On("GetByID", ctx, int64(9)).Return(ticket, nil).Once()

	detail, err := service.GetByID(ctx, 9)

	assert.NoError(t, err)
	assert.Nil(t, detail.Flight)

	mockFlights.AssertNotCalled(t, "List")
}
