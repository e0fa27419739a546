package airports

import (
	"context"
	"regexp"

	"github.com/nshubina/airport-api/internal/domain"
	"github.com/nshubina/airport-api/internal/repository"
	"github.com/nshubina/airport-api/internal/weather"
)

// IATA-style codes: three or four uppercase letters.
var airportCodeRe = regexp.MustCompile(`^[A-Z]{3,4}$`)

type UseCase interface {
	Create(ctx context.Context, input AirportInput) (*domain.Airport, error)
	Get(ctx context.Context, id int64) (*domain.Airport, error)
	List(ctx context.Context, filter domain.AirportFilter, params domain.ListParams) ([]domain.Airport, error)
	Update(ctx context.Context, id int64, input AirportInput) (*domain.Airport, error)
	Delete(ctx context.Context, id int64) error
	Weather(ctx context.Context, id int64) (*weather.Conditions, error)
}

// WeatherProvider is satisfied by weather.Client.
type WeatherProvider interface {
	Current(ctx context.Context, lat, lon float64) (*weather.Conditions, error)
}

type AirportInput struct {
	Name           string
	Code           string
	ClosestBigCity string
	Country        string
	Lat            float64
	Lon            float64
}

type AirportService struct {
	airports repository.AirportRepository
	weather  WeatherProvider
}

func NewAirportService(airports repository.AirportRepository, weather WeatherProvider) *AirportService {
	return &AirportService{airports: airports, weather: weather}
}

func validateAirport(input AirportInput) error {
	verr := &domain.ValidationError{}
	if input.Name == "" {
		verr.Add("name", "must not be empty")
	}
	if !airportCodeRe.MatchString(input.Code) {
		verr.Add("code", "must be 3 or 4 uppercase letters")
	}
	if input.Lat < -90 || input.Lat > 90 {
		verr.Add("lat", "must be between -90 and 90")
	}
	if input.Lon < -180 || input.Lon > 180 {
		verr.Add("lon", "must be between -180 and 180")
	}
	if !verr.Empty() {
		return verr
	}
	return nil
}

func (s *AirportService) Create(ctx context.Context, input AirportInput) (*domain.Airport, error) {
	if err := validateAirport(input); err != nil {
		return nil, err
	}
	a := &domain.Airport{
		Name:           input.Name,
		Code:           input.Code,
		ClosestBigCity: input.ClosestBigCity,
		Country:        input.Country,
		Lat:            input.Lat,
		Lon:            input.Lon,
	}
	if err := s.airports.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AirportService) Get(ctx context.Context, id int64) (*domain.Airport, error) {
	return s.airports.GetByID(ctx, id)
}

func (s *AirportService) List(ctx context.Context, filter domain.AirportFilter, params domain.ListParams) ([]domain.Airport, error) {
	return s.airports.List(ctx, filter, params)
}

func (s *AirportService) Update(ctx context.Context, id int64, input AirportInput) (*domain.Airport, error) {
	if err := validateAirport(input); err != nil {
		return nil, err
	}
	a := &domain.Airport{
		ID:             id,
		Name:           input.Name,
		Code:           input.Code,
		ClosestBigCity: input.ClosestBigCity,
		Country:        input.Country,
		Lat:            input.Lat,
		Lon:            input.Lon,
	}
	if err := s.airports.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AirportService) Delete(ctx context.Context, id int64) error {
	return s.airports.Delete(ctx, id)
}

// Weather fetches live conditions for the airport's coordinates. Nothing is
// cached or persisted; upstream failures go straight back to the caller.
func (s *AirportService) Weather(ctx context.Context, id int64) (*weather.Conditions, error) {
	airport, err := s.airports.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.weather.Current(ctx, airport.Lat, airport.Lon)
}

var _ UseCase = (*AirportService)(nil)
