package catalog

import (
	"context"
	"testing"

	"github.com/Domenick1991/airlink/internal/domain"
	"github.com/Domenick1991/airlink/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAirplaneTypeRepository struct {
	mock.Mock
}

func (m *MockAirplaneTypeRepository) List(ctx context.Context, params repository.ListParams) ([]domain.AirplaneType, int, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]domain.AirplaneType), args.Int(1), args.Error(2)
}

func (m *MockAirplaneTypeRepository) GetByID(ctx context.Context, id int64) (*domain.AirplaneType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AirplaneType), args.Error(1)
}

func (m *MockAirplaneTypeRepository) Create(ctx context.Context, t *domain.AirplaneType) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockAirplaneTypeRepository) Update(ctx context.Context, t *domain.AirplaneType) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockAirplaneTypeRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAirplaneRepository struct {
	mock.Mock
}

func (m *MockAirplaneRepository) List(ctx context.Context, params repository.ListParams) ([]domain.Airplane, int, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]domain.Airplane), args.Int(1), args.Error(2)
}

func (m *MockAirplaneRepository) GetByID(ctx context.Context, id int64) (*domain.Airplane, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airplane), args.Error(1)
}

func (m *MockAirplaneRepository) Create(ctx context.Context, a *domain.Airplane) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAirplaneRepository) Update(ctx context.Context, a *domain.Airplane) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAirplaneRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAirportRepository struct {
	mock.Mock
}

func (m *MockAirportRepository) List(ctx context.Context, params repository.ListParams) ([]domain.Airport, int, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]domain.Airport), args.Int(1), args.Error(2)
}

func (m *MockAirportRepository) GetByID(ctx context.Context, id int64) (*domain.Airport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airport), args.Error(1)
}

func (m *MockAirportRepository) Create(ctx context.Context, a *domain.Airport) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAirportRepository) Update(ctx context.Context, a *domain.Airport) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAirportRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCrewRepository struct {
	mock.Mock
}

func (m *MockCrewRepository) List(ctx context.Context, params repository.ListParams) ([]domain.Crew, int, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]domain.Crew), args.Int(1), args.Error(2)
}

func (m *MockCrewRepository) GetByID(ctx context.Context, id int64) (*domain.Crew, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Crew), args.Error(1)
}

func (m *MockCrewRepository) Create(ctx context.Context, c *domain.Crew) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCrewRepository) Update(ctx context.Context, c *domain.Crew) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCrewRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockRouteRepository struct {
	mock.Mock
}

func (m *MockRouteRepository) List(ctx context.Context, params repository.ListParams) ([]domain.Route, int, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]domain.Route), args.Int(1), args.Error(2)
}

func (m *MockRouteRepository) GetByID(ctx context.Context, id int64) (*domain.Route, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Route), args.Error(1)
}

func (m *MockRouteRepository) Create(ctx context.Context, rt *domain.Route) error {
	args := m.Called(ctx, rt)
	return args.Error(0)
}

func (m *MockRouteRepository) Update(ctx context.Context, rt *domain.Route) error {
	args := m.Called(ctx, rt)
	return args.Error(0)
}

func (m *MockRouteRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) InvalidateFlights(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type catalogMocks struct {
	airplaneTypes *MockAirplaneTypeRepository
	airplanes     *MockAirplaneRepository
	airports      *MockAirportRepository
	crews         *MockCrewRepository
	routes        *MockRouteRepository
	cache         *MockCache
}

func newTestCatalog() (*CatalogService, catalogMocks) {
	m := catalogMocks{
		airplaneTypes: &MockAirplaneTypeRepository{},
		airplanes:     &MockAirplaneRepository{},
		airports:      &MockAirportRepository{},
		crews:         &MockCrewRepository{},
		routes:        &MockRouteRepository{},
		cache:         &MockCache{},
	}
	service := NewCatalogService(m.airplaneTypes, m.airplanes, m.airports, m.crews, m.routes, m.cache)
	return service, m
}

func TestCatalogService_CreateAirplaneType_BlankName(t *testing.T) {
	service, m := newTestCatalog()

	err := service.CreateAirplaneType(context.Background(), &domain.AirplaneType{})

	assert.Error(t, err)
	verr, ok := domain.IsValidation(err)
	assert.True(t, ok)
	assert.Equal(t, "This field may not be blank.", verr.Fields["name"])

	m.airplaneTypes.AssertNotCalled(t, "Create")
}

func TestCatalogService_CreateAirplaneType_Success(t *testing.T) {
	service, m := newTestCatalog()
	ctx := context.Background()
	airplaneType := &domain.AirplaneType{Name: "Boeing 737"}

	m.airplaneTypes.On("Create", ctx, airplaneType).Return(nil).Once()

	assert.NoError(t, service.CreateAirplaneType(ctx, airplaneType))
	m.airplaneTypes.AssertExpectations(t)
}

func TestCatalogService_CreateAirplane_InvalidGrid(t *testing.T) {
	service, m := newTestCatalog()
	ctx := context.Background()

	err := service.CreateAirplane(ctx, &domain.Airplane{Name: "A1", Rows: 0, SeatsInRow: 6})
	verr, ok := domain.IsValidation(err)
	assert.True(t, ok)
	assert.Contains(t, verr.Fields, "rows")

	err = service.CreateAirplane(ctx, &domain.Airplane{Name: "A1", Rows: 10, SeatsInRow: 0})
	verr, ok = domain.IsValidation(err)
	assert.True(t, ok)
	assert.Contains(t, verr.Fields, "seats_in_row")

	m.airplanes.AssertNotCalled(t, "Create")
}

func TestCatalogService_UpdateAirplane_InvalidatesFlightCache(t *testing.T) {
	service, m := newTestCatalog()
	ctx := context.Background()
	airplane := &domain.Airplane{ID: 1, Name: "A1", Rows: 10, SeatsInRow: 6, AirplaneTypeID: 2}

	m.airplanes.On("Update", ctx, airplane).Return(nil).Once()
	m.cache.On("InvalidateFlights", ctx).Return(nil).Once()

	assert.NoError(t, service.UpdateAirplane(ctx, airplane))
	m.airplanes.AssertExpectations(t)
	m.cache.AssertExpectations(t)
}

func TestCatalogService_CreateAirplane_DoesNotInvalidateCache(t *testing.T) {
	service, m := newTestCatalog()
	ctx := context.Background()
	airplane := &domain.Airplane{Name: "A1", Rows: 10, SeatsInRow: 6, AirplaneTypeID: 2}

	m.airplanes.On("Create", ctx, airplane).Return(nil).Once()

	assert.NoError(t, service.CreateAirplane(ctx, airplane))

	// A new airplane is not referenced by any flight yet.
	m.cache.AssertNotCalled(t, "InvalidateFlights")
}

func TestCatalogService_CreateCrew_BlankNames(t *testing.T) {
	service, m := newTestCatalog()
	ctx := context.Background()

	err := service.CreateCrew(ctx, &domain.Crew{LastName: "Berg"})
	verr, ok := domain.IsValidation(err)
	assert.True(t, ok)
	assert.Contains(t, verr.Fields, "first_name")

	err = service.CreateCrew(ctx, &domain.Crew{FirstName: "Anna"})
	verr, ok = domain.IsValidation(err)
	assert.True(t, ok)
	assert.Contains(t, verr.Fields, "last_name")

	m.crews.AssertNotCalled(t, "Create")
}

func TestCatalogService_CreateRoute_InvalidDistance(t *testing.T) {
	service, m := newTestCatalog()

	err := service.CreateRoute(context.Background(), &domain.Route{SourceID: 1, DestinationID: 2, Distance: 0})
	verr, ok := domain.IsValidation(err)
	assert.True(t, ok)
	assert.Contains(t, verr.Fields, "distance")

	m.routes.AssertNotCalled(t, "Create")
}

func TestCatalogService_CreateRoute_DuplicatePair(t *testing.T) {
	service, m := newTestCatalog()
	ctx := context.Background()
	route := &domain.Route{SourceID: 1, DestinationID: 2, Distance: 500}

	m.routes.On("Create", ctx, route).Return(domain.ErrConflict).Once()

	err := service.CreateRoute(ctx, route)

	assert.ErrorIs(t, err, domain.ErrConflict)
	m.routes.AssertExpectations(t)
}

func TestCatalogService_DeleteAirport_InvalidatesFlightCache(t *testing.T) {
	service, m := newTestCatalog()
	ctx := context.Background()

	m.airports.On("Delete", ctx, int64(3)).Return(nil).Once()
	m.cache.On("InvalidateFlights", ctx).Return(nil).Once()

	assert.NoError(t, service.DeleteAirport(ctx, 3))
	m.airports.AssertExpectations(t)
	m.cache.AssertExpectations(t)
}

func TestCatalogService_ListAirports(t *testing.T) {
	service, m := newTestCatalog()
	ctx := context.Background()
	params := repository.ListParams{Limit: 10}
	airports := []domain.Airport{{ID: 1, Name: "Heathrow", ClosestBigCity: "London"}}

	m.airports.On("List", ctx, params).Return(airports, 1, nil).Once()

	got, total, err := service.ListAirports(ctx, params)

	assert.NoError(t, err)
	assert.Equal(t, airports, got)
	assert.Equal(t, 1, total)
	m.airports.AssertExpectations(t)
}
