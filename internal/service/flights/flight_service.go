package flights

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nshubina/airport-api/internal/domain"
	"github.com/nshubina/airport-api/internal/repository"
)

type UseCase interface {
	Create(ctx context.Context, input FlightInput) (*domain.Flight, error)
	Get(ctx context.Context, id int64) (*domain.Flight, error)
	List(ctx context.Context, filter domain.FlightFilter, params domain.ListParams) ([]domain.Flight, error)
	Update(ctx context.Context, id int64, input FlightInput) (*domain.Flight, error)
	Delete(ctx context.Context, id int64) error
}

type FlightInput struct {
	RouteID       int64
	AirplaneID    int64
	DepartureTime time.Time
	ArrivalTime   time.Time
	CrewIDs       []int64
}

type FlightService struct {
	flights   repository.FlightRepository
	routes    repository.RouteRepository
	airplanes repository.AirplaneRepository
	crews     repository.CrewRepository

	// now is injectable for the departure-in-the-past check.
	now func() time.Time
}

func NewFlightService(flights repository.FlightRepository, routes repository.RouteRepository,
	airplanes repository.AirplaneRepository, crews repository.CrewRepository) *FlightService {
	return &FlightService{
		flights:   flights,
		routes:    routes,
		airplanes: airplanes,
		crews:     crews,
		now:       time.Now,
	}
}

// No overlap detection across flights happens here: a flight is purely a
// record, and double-booking of airplanes or crew is not a business rule.
func (s *FlightService) validate(ctx context.Context, input FlightInput) error {
	verr := &domain.ValidationError{}

	if input.DepartureTime.Before(s.now()) {
		verr.Add("departure_time", "departure time cannot be in the past")
	}
	if !input.ArrivalTime.After(input.DepartureTime) {
		verr.Add("arrival_time", "arrival time must be after departure time")
	}

	if _, err := s.routes.GetByID(ctx, input.RouteID); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		verr.Add("route", "unknown route")
	}
	if _, err := s.airplanes.GetByID(ctx, input.AirplaneID); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		verr.Add("airplane", "unknown airplane")
	}
	for _, crewID := range input.CrewIDs {
		if _, err := s.crews.GetByID(ctx, crewID); err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				return err
			}
			verr.Add("crew", fmt.Sprintf("unknown crew member %d", crewID))
		}
	}

	if !verr.Empty() {
		return verr
	}
	return nil
}

func (s *FlightService) Create(ctx context.Context, input FlightInput) (*domain.Flight, error) {
	if err := s.validate(ctx, input); err != nil {
		return nil, err
	}
	f := &domain.Flight{
		RouteID:       input.RouteID,
		AirplaneID:    input.AirplaneID,
		DepartureTime: input.DepartureTime,
		ArrivalTime:   input.ArrivalTime,
		CrewIDs:       input.CrewIDs,
	}
	if err := s.flights.Create(ctx, f); err != nil {
		return nil, err
	}
	return s.flights.GetByID(ctx, f.ID)
}

func (s *FlightService) Get(ctx context.Context, id int64) (*domain.Flight, error) {
	return s.flights.GetByID(ctx, id)
}

func (s *FlightService) List(ctx context.Context, filter domain.FlightFilter, params domain.ListParams) ([]domain.Flight, error) {
	return s.flights.List(ctx, filter, params)
}

func (s *FlightService) Update(ctx context.Context, id int64, input FlightInput) (*domain.Flight, error) {
	if err := s.validate(ctx, input); err != nil {
		return nil, err
	}
	f := &domain.Flight{
		ID:            id,
		RouteID:       input.RouteID,
		AirplaneID:    input.AirplaneID,
		DepartureTime: input.DepartureTime,
		ArrivalTime:   input.ArrivalTime,
		CrewIDs:       input.CrewIDs,
	}
	if err := s.flights.Update(ctx, f); err != nil {
		return nil, err
	}
	return s.flights.GetByID(ctx, id)
}

func (s *FlightService) Delete(ctx context.Context, id int64) error {
	return s.flights.Delete(ctx, id)
}

var _ UseCase = (*FlightService)(nil)
