package routes

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/nshubina/airport-api/internal/domain"
)

type MockRouteRepository struct {
	mock.Mock
}

func (m *MockRouteRepository) Create(ctx context.Context, route *domain.Route) error {
	args := m.Called(ctx, route)
	return args.Error(0)
}

func (m *MockRouteRepository) GetByID(ctx context.Context, id int64) (*domain.Route, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Route), args.Error(1)
}

func (m *MockRouteRepository) List(ctx context.Context, filter domain.RouteFilter, params domain.ListParams) ([]domain.Route, error) {
	args := m.Called(ctx, filter, params)
	return args.Get(0).([]domain.Route), args.Error(1)
}

func (m *MockRouteRepository) Update(ctx context.Context, route *domain.Route) error {
	args := m.Called(ctx, route)
	return args.Error(0)
}

func (m *MockRouteRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAirportRepository struct {
	mock.Mock
}

func (m *MockAirportRepository) Create(ctx context.Context, a *domain.Airport) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAirportRepository) GetByID(ctx context.Context, id int64) (*domain.Airport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airport), args.Error(1)
}

func (m *MockAirportRepository) List(ctx context.Context, filter domain.AirportFilter, params domain.ListParams) ([]domain.Airport, error) {
	args := m.Called(ctx, filter, params)
	return args.Get(0).([]domain.Airport), args.Error(1)
}

func (m *MockAirportRepository) Update(ctx context.Context, a *domain.Airport) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAirportRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var (
	anaa = domain.Airport{
		ID: 1, Name: "Anaa Airport", Code: "AAA",
		ClosestBigCity: "Anaa", Country: "French Polynesia",
		Lat: -17.3595, Lon: -145.494,
	}
	aalborg = domain.Airport{
		ID: 2, Name: "Aalborg Airport", Code: "AAL",
		ClosestBigCity: "Norresundby", Country: "Denmark",
		Lat: 57.0952, Lon: 9.85606,
	}
)

func TestRouteService_Create_ComputesDistance(t *testing.T) {
	mockRoutes := &MockRouteRepository{}
	mockAirports := &MockAirportRepository{}
	service := NewRouteService(mockRoutes, mockAirports)

	ctx := context.Background()
	mockAirports.On("GetByID", ctx, int64(1)).Return(&anaa, nil).Once()
	mockAirports.On("GetByID", ctx, int64(2)).Return(&aalborg, nil).Once()

	var storedDistance int
	mockRoutes.On("Create", ctx, mock.AnythingOfType("*domain.Route")).
		Run(func(args mock.Arguments) {
			route := args.Get(1).(*domain.Route)
			route.ID = 10
			storedDistance = route.DistanceKM
		}).
		Return(nil).Once()
	mockRoutes.On("GetByID", ctx, int64(10)).
		Return(&domain.Route{ID: 10, SourceID: 1, DestinationID: 2, Source: &anaa, Destination: &aalborg}, nil).Once()

	route, err := service.Create(ctx, RouteInput{SourceID: 1, DestinationID: 2})

	assert.NoError(t, err)
	assert.NotNil(t, route)
	assert.Greater(t, storedDistance, 0)
	assert.InDelta(t, 15142, storedDistance, 150)

	mockRoutes.AssertExpectations(t)
	mockAirports.AssertExpectations(t)
}

func TestRouteService_Create_DistanceSymmetric(t *testing.T) {
	ctx := context.Background()

	distanceFor := func(srcID, dstID int64) int {
		mockRoutes := &MockRouteRepository{}
		mockAirports := &MockAirportRepository{}
		service := NewRouteService(mockRoutes, mockAirports)

		mockAirports.On("GetByID", ctx, int64(1)).Return(&anaa, nil)
		mockAirports.On("GetByID", ctx, int64(2)).Return(&aalborg, nil)

		var stored int
		mockRoutes.On("Create", ctx, mock.AnythingOfType("*domain.Route")).
			Run(func(args mock.Arguments) {
				route := args.Get(1).(*domain.Route)
				route.ID = 10
				stored = route.DistanceKM
			}).
			Return(nil)
		mockRoutes.On("GetByID", ctx, int64(10)).Return(&domain.Route{ID: 10}, nil)

		_, err := service.Create(ctx, RouteInput{SourceID: srcID, DestinationID: dstID})
		assert.NoError(t, err)
		return stored
	}

	assert.Equal(t, distanceFor(1, 2), distanceFor(2, 1))
}

func TestRouteService_Create_SameAirports(t *testing.T) {
	service := NewRouteService(&MockRouteRepository{}, &MockAirportRepository{})

	_, err := service.Create(context.Background(), RouteInput{SourceID: 1, DestinationID: 1})

	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "destination")
}

func TestRouteService_Create_UnknownAirport(t *testing.T) {
	mockRoutes := &MockRouteRepository{}
	mockAirports := &MockAirportRepository{}
	service := NewRouteService(mockRoutes, mockAirports)

	ctx := context.Background()
	mockAirports.On("GetByID", ctx, int64(1)).Return(&anaa, nil).Once()
	mockAirports.On("GetByID", ctx, int64(99)).Return(nil, domain.ErrNotFound).Once()

	_, err := service.Create(ctx, RouteInput{SourceID: 1, DestinationID: 99})

	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "destination")
	mockAirports.AssertExpectations(t)
}
