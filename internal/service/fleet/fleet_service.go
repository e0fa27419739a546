package fleet

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/nshubina/airport-api/internal/domain"
	"github.com/nshubina/airport-api/internal/repository"
)

// Airplane codes look like "AB123".
var airplaneCodeRe = regexp.MustCompile(`^[A-Z]{2}[0-9]{3}$`)

type UseCase interface {
	CreateAirplaneType(ctx context.Context, name string) (*domain.AirplaneType, error)
	ListAirplaneTypes(ctx context.Context, params domain.ListParams) ([]domain.AirplaneType, error)

	CreateAirplane(ctx context.Context, input AirplaneInput) (*domain.Airplane, error)
	GetAirplane(ctx context.Context, id int64) (*domain.Airplane, error)
	ListAirplanes(ctx context.Context, filter domain.AirplaneFilter, params domain.ListParams) ([]domain.Airplane, error)
	UpdateAirplane(ctx context.Context, id int64, input AirplaneInput) (*domain.Airplane, error)
	DeleteAirplane(ctx context.Context, id int64) error

	CreateCrew(ctx context.Context, input CrewInput) (*domain.Crew, error)
	GetCrew(ctx context.Context, id int64) (*domain.Crew, error)
	ListCrews(ctx context.Context, params domain.ListParams) ([]domain.Crew, error)
	UpdateCrew(ctx context.Context, id int64, input CrewInput) (*domain.Crew, error)
	DeleteCrew(ctx context.Context, id int64) error
}

type AirplaneInput struct {
	Name           string
	Code           string
	Rows           int
	SeatsInRow     int
	AirplaneTypeID int64
}

type CrewInput struct {
	FirstName string
	LastName  string
	Title     string
}

type FleetService struct {
	types     repository.AirplaneTypeRepository
	airplanes repository.AirplaneRepository
	crews     repository.CrewRepository
}

func NewFleetService(types repository.AirplaneTypeRepository, airplanes repository.AirplaneRepository, crews repository.CrewRepository) *FleetService {
	return &FleetService{types: types, airplanes: airplanes, crews: crews}
}

func (s *FleetService) CreateAirplaneType(ctx context.Context, name string) (*domain.AirplaneType, error) {
	if name == "" {
		return nil, domain.NewValidationError("name", "must not be empty")
	}
	t := &domain.AirplaneType{Name: name}
	if err := s.types.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *FleetService) ListAirplaneTypes(ctx context.Context, params domain.ListParams) ([]domain.AirplaneType, error) {
	return s.types.List(ctx, params)
}

func (s *FleetService) validateAirplane(ctx context.Context, input AirplaneInput) error {
	verr := &domain.ValidationError{}
	if input.Name == "" {
		verr.Add("name", "must not be empty")
	}
	if !airplaneCodeRe.MatchString(input.Code) {
		verr.Add("code", "must match the pattern 'AB123': two uppercase letters and three digits")
	}
	if input.Rows <= 0 {
		verr.Add("rows", "must be a positive integer")
	}
	if input.SeatsInRow <= 0 {
		verr.Add("seats_in_row", "must be a positive integer")
	}
	if _, err := s.types.GetByID(ctx, input.AirplaneTypeID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			verr.Add("airplane_type", "unknown airplane type")
		} else {
			return err
		}
	}
	if !verr.Empty() {
		return verr
	}
	return nil
}

func (s *FleetService) CreateAirplane(ctx context.Context, input AirplaneInput) (*domain.Airplane, error) {
	if err := s.validateAirplane(ctx, input); err != nil {
		return nil, err
	}
	a := &domain.Airplane{
		Name:           input.Name,
		Code:           input.Code,
		Rows:           input.Rows,
		SeatsInRow:     input.SeatsInRow,
		AirplaneTypeID: input.AirplaneTypeID,
	}
	if err := s.airplanes.Create(ctx, a); err != nil {
		return nil, err
	}
	return s.airplanes.GetByID(ctx, a.ID)
}

func (s *FleetService) GetAirplane(ctx context.Context, id int64) (*domain.Airplane, error) {
	return s.airplanes.GetByID(ctx, id)
}

func (s *FleetService) ListAirplanes(ctx context.Context, filter domain.AirplaneFilter, params domain.ListParams) ([]domain.Airplane, error) {
	return s.airplanes.List(ctx, filter, params)
}

func (s *FleetService) UpdateAirplane(ctx context.Context, id int64, input AirplaneInput) (*domain.Airplane, error) {
	if err := s.validateAirplane(ctx, input); err != nil {
		return nil, err
	}
	a := &domain.Airplane{
		ID:             id,
		Name:           input.Name,
		Code:           input.Code,
		Rows:           input.Rows,
		SeatsInRow:     input.SeatsInRow,
		AirplaneTypeID: input.AirplaneTypeID,
	}
	if err := s.airplanes.Update(ctx, a); err != nil {
		return nil, err
	}
	return s.airplanes.GetByID(ctx, id)
}

func (s *FleetService) DeleteAirplane(ctx context.Context, id int64) error {
	return s.airplanes.Delete(ctx, id)
}

func validateCrew(input CrewInput) error {
	verr := &domain.ValidationError{}
	if input.FirstName == "" {
		verr.Add("first_name", "must not be empty")
	}
	if input.LastName == "" {
		verr.Add("last_name", "must not be empty")
	}
	if !domain.CrewTitle(input.Title).Valid() {
		verr.Add("title", fmt.Sprintf("unknown title %q", input.Title))
	}
	if !verr.Empty() {
		return verr
	}
	return nil
}

func (s *FleetService) CreateCrew(ctx context.Context, input CrewInput) (*domain.Crew, error) {
	if err := validateCrew(input); err != nil {
		return nil, err
	}
	c := &domain.Crew{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Title:     domain.CrewTitle(input.Title),
	}
	if err := s.crews.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *FleetService) GetCrew(ctx context.Context, id int64) (*domain.Crew, error) {
	return s.crews.GetByID(ctx, id)
}

func (s *FleetService) ListCrews(ctx context.Context, params domain.ListParams) ([]domain.Crew, error) {
	return s.crews.List(ctx, params)
}

func (s *FleetService) UpdateCrew(ctx context.Context, id int64, input CrewInput) (*domain.Crew, error) {
	if err := validateCrew(input); err != nil {
		return nil, err
	}
	c := &domain.Crew{
		ID:        id,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Title:     domain.CrewTitle(input.Title),
	}
	if err := s.crews.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *FleetService) DeleteCrew(ctx context.Context, id int64) error {
	return s.crews.Delete(ctx, id)
}

var _ UseCase = (*FleetService)(nil)
