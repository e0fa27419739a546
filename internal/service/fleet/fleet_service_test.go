package fleet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/nshubina/airport-api/internal/domain"
)

type MockAirplaneTypeRepository struct {
	mock.Mock
}

func (m *MockAirplaneTypeRepository) Create(ctx context.Context, t *domain.AirplaneType) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockAirplaneTypeRepository) GetByID(ctx context.Context, id int64) (*domain.AirplaneType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AirplaneType), args.Error(1)
}

func (m *MockAirplaneTypeRepository) List(ctx context.Context, params domain.ListParams) ([]domain.AirplaneType, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]domain.AirplaneType), args.Error(1)
}

type MockAirplaneRepository struct {
	mock.Mock
}

func (m *MockAirplaneRepository) Create(ctx context.Context, a *domain.Airplane) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAirplaneRepository) GetByID(ctx context.Context, id int64) (*domain.Airplane, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airplane), args.Error(1)
}

func (m *MockAirplaneRepository) List(ctx context.Context, filter domain.AirplaneFilter, params domain.ListParams) ([]domain.Airplane, error) {
	args := m.Called(ctx, filter, params)
	return args.Get(0).([]domain.Airplane), args.Error(1)
}

func (m *MockAirplaneRepository) Update(ctx context.Context, a *domain.Airplane) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAirplaneRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCrewRepository struct {
	mock.Mock
}

func (m *MockCrewRepository) Create(ctx context.Context, c *domain.Crew) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCrewRepository) GetByID(ctx context.Context, id int64) (*domain.Crew, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Crew), args.Error(1)
}

func (m *MockCrewRepository) List(ctx context.Context, params domain.ListParams) ([]domain.Crew, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]domain.Crew), args.Error(1)
}

func (m *MockCrewRepository) Update(ctx context.Context, c *domain.Crew) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCrewRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestService() (*FleetService, *MockAirplaneTypeRepository, *MockAirplaneRepository, *MockCrewRepository) {
	types := &MockAirplaneTypeRepository{}
	airplanes := &MockAirplaneRepository{}
	crews := &MockCrewRepository{}
	return NewFleetService(types, airplanes, crews), types, airplanes, crews
}

func TestFleetService_CreateAirplane_Success(t *testing.T) {
	service, types, airplanes, _ := newTestService()

	ctx := context.Background()
	types.On("GetByID", ctx, int64(1)).Return(&domain.AirplaneType{ID: 1, Name: "Jet"}, nil).Once()
	airplanes.On("Create", ctx, mock.AnythingOfType("*domain.Airplane")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Airplane).ID = 3
		}).
		Return(nil).Once()
	airplanes.On("GetByID", ctx, int64(3)).
		Return(&domain.Airplane{ID: 3, Name: "Vantage", Code: "VG100", Rows: 20, SeatsInRow: 6, AirplaneTypeID: 1, TypeName: "Jet"}, nil).Once()

	airplane, err := service.CreateAirplane(ctx, AirplaneInput{
		Name: "Vantage", Code: "VG100", Rows: 20, SeatsInRow: 6, AirplaneTypeID: 1,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(3), airplane.ID)
	assert.Equal(t, "Jet", airplane.TypeName)
	types.AssertExpectations(t)
	airplanes.AssertExpectations(t)
}

func TestFleetService_CreateAirplane_BadCode(t *testing.T) {
	service, types, airplanes, _ := newTestService()

	ctx := context.Background()
	types.On("GetByID", ctx, int64(1)).Return(&domain.AirplaneType{ID: 1}, nil)

	testCases := []string{"", "A123", "AB12", "ab123", "AB1234", "123AB"}
	for _, code := range testCases {
		t.Run("code "+code, func(t *testing.T) {
			_, err := service.CreateAirplane(ctx, AirplaneInput{
				Name: "Vantage", Code: code, Rows: 20, SeatsInRow: 6, AirplaneTypeID: 1,
			})

			var verr *domain.ValidationError
			assert.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, "code")
		})
	}
	airplanes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestFleetService_CreateAirplane_BadGeometry(t *testing.T) {
	service, types, _, _ := newTestService()

	ctx := context.Background()
	types.On("GetByID", ctx, int64(1)).Return(&domain.AirplaneType{ID: 1}, nil)

	_, err := service.CreateAirplane(ctx, AirplaneInput{
		Name: "Vantage", Code: "VG100", Rows: 0, SeatsInRow: -2, AirplaneTypeID: 1,
	})

	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "rows")
	assert.Contains(t, verr.Fields, "seats_in_row")
}

func TestFleetService_CreateAirplane_UnknownType(t *testing.T) {
	service, types, _, _ := newTestService()

	ctx := context.Background()
	types.On("GetByID", ctx, int64(99)).Return(nil, domain.ErrNotFound).Once()

	_, err := service.CreateAirplane(ctx, AirplaneInput{
		Name: "Vantage", Code: "VG100", Rows: 20, SeatsInRow: 6, AirplaneTypeID: 99,
	})

	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "airplane_type")
}

func TestFleetService_CreateAirplaneType_EmptyName(t *testing.T) {
	service, types, _, _ := newTestService()

	_, err := service.CreateAirplaneType(context.Background(), "")

	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "name")
	types.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestFleetService_CreateCrew_TitleEnum(t *testing.T) {
	service, _, _, crews := newTestService()
	ctx := context.Background()

	crews.On("Create", ctx, mock.AnythingOfType("*domain.Crew")).Return(nil)

	for _, title := range []string{"Captain", "Co-Pilot", "Flight Attendant", "Flight Engineer", "Flight Medic"} {
		crew, err := service.CreateCrew(ctx, CrewInput{FirstName: "Jean", LastName: "Moreau", Title: title})
		assert.NoError(t, err)
		assert.Equal(t, domain.CrewTitle(title), crew.Title)
	}

	_, err := service.CreateCrew(ctx, CrewInput{FirstName: "Jean", LastName: "Moreau", Title: "Navigator"})
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "title")
}

func TestFleetService_CreateCrew_MissingNames(t *testing.T) {
	service, _, _, crews := newTestService()

	_, err := service.CreateCrew(context.Background(), CrewInput{Title: "Captain"})

	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "first_name")
	assert.Contains(t, verr.Fields, "last_name")
	crews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
