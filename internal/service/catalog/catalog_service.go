package catalog

import (
	"context"

	"github.com/Domenick1991/airlink/internal/domain"
	"github.com/Domenick1991/airlink/internal/repository"
)

// CatalogUseCase covers the reference data: airplane types, airplanes,
// airports, crews and routes. Uniqueness is enforced by the persistence
// layer; repositories surface violations as domain.ErrConflict.
type CatalogUseCase interface {
	ListAirplaneTypes(ctx context.Context, params repository.ListParams) ([]domain.AirplaneType, int, error)
	GetAirplaneType(ctx context.Context, id int64) (*domain.AirplaneType, error)
	CreateAirplaneType(ctx context.Context, t *domain.AirplaneType) error
	UpdateAirplaneType(ctx context.Context, t *domain.AirplaneType) error
	DeleteAirplaneType(ctx context.Context, id int64) error

	ListAirplanes(ctx context.Context, params repository.ListParams) ([]domain.Airplane, int, error)
	GetAirplane(ctx context.Context, id int64) (*domain.Airplane, error)
	CreateAirplane(ctx context.Context, a *domain.Airplane) error
	UpdateAirplane(ctx context.Context, a *domain.Airplane) error
	DeleteAirplane(ctx context.Context, id int64) error

	ListAirports(ctx context.Context, params repository.ListParams) ([]domain.Airport, int, error)
	GetAirport(ctx context.Context, id int64) (*domain.Airport, error)
	CreateAirport(ctx context.Context, a *domain.Airport) error
	UpdateAirport(ctx context.Context, a *domain.Airport) error
	DeleteAirport(ctx context.Context, id int64) error

	ListCrews(ctx context.Context, params repository.ListParams) ([]domain.Crew, int, error)
	GetCrew(ctx context.Context, id int64) (*domain.Crew, error)
	CreateCrew(ctx context.Context, c *domain.Crew) error
	UpdateCrew(ctx context.Context, c *domain.Crew) error
	DeleteCrew(ctx context.Context, id int64) error

	ListRoutes(ctx context.Context, params repository.ListParams) ([]domain.Route, int, error)
	GetRoute(ctx context.Context, id int64) (*domain.Route, error)
	CreateRoute(ctx context.Context, rt *domain.Route) error
	UpdateRoute(ctx context.Context, rt *domain.Route) error
	DeleteRoute(ctx context.Context, id int64) error
}

type Cache interface {
	InvalidateFlights(ctx context.Context) error
}

type CatalogService struct {
	airplaneTypes repository.AirplaneTypeRepository
	airplanes     repository.AirplaneRepository
	airports      repository.AirportRepository
	crews         repository.CrewRepository
	routes        repository.RouteRepository
	cache         Cache
}

func NewCatalogService(
	airplaneTypes repository.AirplaneTypeRepository,
	airplanes repository.AirplaneRepository,
	airports repository.AirportRepository,
	crews repository.CrewRepository,
	routes repository.RouteRepository,
	cache Cache,
) *CatalogService {
	return &CatalogService{
		airplaneTypes: airplaneTypes,
		airplanes:     airplanes,
		airports:      airports,
		crews:         crews,
		routes:        routes,
		cache:         cache,
	}
}

// Reference data feeds derived flight fields (labels, capacity, crew names),
// so every write drops the cached flight list.
func (s *CatalogService) invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.InvalidateFlights(ctx)
	}
}

func (s *CatalogService) ListAirplaneTypes(ctx context.Context, params repository.ListParams) ([]domain.AirplaneType, int, error) {
	return s.airplaneTypes.List(ctx, params)
}

func (s *CatalogService) GetAirplaneType(ctx context.Context, id int64) (*domain.AirplaneType, error) {
	return s.airplaneTypes.GetByID(ctx, id)
}

func (s *CatalogService) CreateAirplaneType(ctx context.Context, t *domain.AirplaneType) error {
	if t.Name == "" {
		return domain.NewValidationError("name", "This field may not be blank.")
	}
	return s.airplaneTypes.Create(ctx, t)
}

func (s *CatalogService) UpdateAirplaneType(ctx context.Context, t *domain.AirplaneType) error {
	if t.Name == "" {
		return domain.NewValidationError("name", "This field may not be blank.")
	}
	if err := s.airplaneTypes.Update(ctx, t); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogService) DeleteAirplaneType(ctx context.Context, id int64) error {
	// Deleting a type cascades to its airplanes, which nulls them off flights.
	if err := s.airplaneTypes.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogService) ListAirplanes(ctx context.Context, params repository.ListParams) ([]domain.Airplane, int, error) {
	return s.airplanes.List(ctx, params)
}

func (s *CatalogService) GetAirplane(ctx context.Context, id int64) (*domain.Airplane, error) {
	return s.airplanes.GetByID(ctx, id)
}

func (s *CatalogService) CreateAirplane(ctx context.Context, a *domain.Airplane) error {
	if err := validateAirplane(a); err != nil {
		return err
	}
	return s.airplanes.Create(ctx, a)
}

func (s *CatalogService) UpdateAirplane(ctx context.Context, a *domain.Airplane) error {
	if err := validateAirplane(a); err != nil {
		return err
	}
	if err := s.airplanes.Update(ctx, a); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogService) DeleteAirplane(ctx context.Context, id int64) error {
	if err := s.airplanes.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func validateAirplane(a *domain.Airplane) error {
	if a.Name == "" {
		return domain.NewValidationError("name", "This field may not be blank.")
	}
	if a.Rows < 1 {
		return domain.NewValidationError("rows", "Ensure this value is greater than or equal to 1.")
	}
	if a.SeatsInRow < 1 {
		return domain.NewValidationError("seats_in_row", "Ensure this value is greater than or equal to 1.")
	}
	return nil
}

func (s *CatalogService) ListAirports(ctx context.Context, params repository.ListParams) ([]domain.Airport, int, error) {
	return s.airports.List(ctx, params)
}

func (s *CatalogService) GetAirport(ctx context.Context, id int64) (*domain.Airport, error) {
	return s.airports.GetByID(ctx, id)
}

func (s *CatalogService) CreateAirport(ctx context.Context, a *domain.Airport) error {
	if a.Name == "" {
		return domain.NewValidationError("name", "This field may not be blank.")
	}
	return s.airports.Create(ctx, a)
}

func (s *CatalogService) UpdateAirport(ctx context.Context, a *domain.Airport) error {
	if a.Name == "" {
		return domain.NewValidationError("name", "This field may not be blank.")
	}
	if err := s.airports.Update(ctx, a); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogService) DeleteAirport(ctx context.Context, id int64) error {
	if err := s.airports.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogService) ListCrews(ctx context.Context, params repository.ListParams) ([]domain.Crew, int, error) {
	return s.crews.List(ctx, params)
}

func (s *CatalogService) GetCrew(ctx context.Context, id int64) (*domain.Crew, error) {
	return s.crews.GetByID(ctx, id)
}

func (s *CatalogService) CreateCrew(ctx context.Context, c *domain.Crew) error {
	if err := validateCrew(c); err != nil {
		return err
	}
	return s.crews.Create(ctx, c)
}

func (s *CatalogService) UpdateCrew(ctx context.Context, c *domain.Crew) error {
	if err := validateCrew(c); err != nil {
		return err
	}
	if err := s.crews.Update(ctx, c); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogService) DeleteCrew(ctx context.Context, id int64) error {
	if err := s.crews.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func validateCrew(c *domain.Crew) error {
	if c.FirstName == "" {
		return domain.NewValidationError("first_name", "This field may not be blank.")
	}
	if c.LastName == "" {
		return domain.NewValidationError("last_name", "This field may not be blank.")
	}
	return nil
}

func (s *CatalogService) ListRoutes(ctx context.Context, params repository.ListParams) ([]domain.Route, int, error) {
	return s.routes.List(ctx, params)
}

func (s *CatalogService) GetRoute(ctx context.Context, id int64) (*domain.Route, error) {
	return s.routes.GetByID(ctx, id)
}

func (s *CatalogService) CreateRoute(ctx context.Context, rt *domain.Route) error {
	if err := validateRoute(rt); err != nil {
		return err
	}
	return s.routes.Create(ctx, rt)
}

func (s *CatalogService) UpdateRoute(ctx context.Context, rt *domain.Route) error {
	if err := validateRoute(rt); err != nil {
		return err
	}
	if err := s.routes.Update(ctx, rt); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogService) DeleteRoute(ctx context.Context, id int64) error {
	if err := s.routes.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func validateRoute(rt *domain.Route) error {
	if rt.Distance < 1 {
		return domain.NewValidationError("distance", "Ensure this value is greater than or equal to 1.")
	}
	return nil
}

var _ CatalogUseCase = (*CatalogService)(nil)
