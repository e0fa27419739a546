package routes

import (
	"context"
	"errors"
	"math"

	"github.com/nshubina/airport-api/internal/domain"
	"github.com/nshubina/airport-api/internal/geo"
	"github.com/nshubina/airport-api/internal/repository"
)

type UseCase interface {
	Create(ctx context.Context, input RouteInput) (*domain.Route, error)
	Get(ctx context.Context, id int64) (*domain.Route, error)
	List(ctx context.Context, filter domain.RouteFilter, params domain.ListParams) ([]domain.Route, error)
	Update(ctx context.Context, id int64, input RouteInput) (*domain.Route, error)
	Delete(ctx context.Context, id int64) error
}

type RouteInput struct {
	SourceID      int64
	DestinationID int64
}

type RouteService struct {
	routes   repository.RouteRepository
	airports repository.AirportRepository
}

func NewRouteService(routes repository.RouteRepository, airports repository.AirportRepository) *RouteService {
	return &RouteService{routes: routes, airports: airports}
}

// resolve validates the airport pair and computes the great-circle distance.
func (s *RouteService) resolve(ctx context.Context, input RouteInput) (int, error) {
	if input.SourceID == input.DestinationID {
		return 0, domain.NewValidationError("destination", "must differ from source")
	}

	verr := &domain.ValidationError{}
	source, err := s.airports.GetByID(ctx, input.SourceID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return 0, err
		}
		verr.Add("source", "unknown airport")
	}
	destination, err := s.airports.GetByID(ctx, input.DestinationID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return 0, err
		}
		verr.Add("destination", "unknown airport")
	}
	if !verr.Empty() {
		return 0, verr
	}

	distance := geo.DistanceKM(source.Lat, source.Lon, destination.Lat, destination.Lon)
	return int(math.Round(distance)), nil
}

func (s *RouteService) Create(ctx context.Context, input RouteInput) (*domain.Route, error) {
	distance, err := s.resolve(ctx, input)
	if err != nil {
		return nil, err
	}
	route := &domain.Route{
		SourceID:      input.SourceID,
		DestinationID: input.DestinationID,
		DistanceKM:    distance,
	}
	if err := s.routes.Create(ctx, route); err != nil {
		return nil, err
	}
	return s.routes.GetByID(ctx, route.ID)
}

func (s *RouteService) Get(ctx context.Context, id int64) (*domain.Route, error) {
	return s.routes.GetByID(ctx, id)
}

func (s *RouteService) List(ctx context.Context, filter domain.RouteFilter, params domain.ListParams) ([]domain.Route, error) {
	return s.routes.List(ctx, filter, params)
}

func (s *RouteService) Update(ctx context.Context, id int64, input RouteInput) (*domain.Route, error) {
	distance, err := s.resolve(ctx, input)
	if err != nil {
		return nil, err
	}
	route := &domain.Route{
		ID:            id,
		SourceID:      input.SourceID,
		DestinationID: input.DestinationID,
		DistanceKM:    distance,
	}
	if err := s.routes.Update(ctx, route); err != nil {
		return nil, err
	}
	return s.routes.GetByID(ctx, id)
}

func (s *RouteService) Delete(ctx context.Context, id int64) error {
	return s.routes.Delete(ctx, id)
}

var _ UseCase = (*RouteService)(nil)
