package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/nshubina/airport-api/internal/domain"
	"github.com/nshubina/airport-api/internal/service/orders"
)

type MockOrderUseCase struct {
	mock.Mock
}

func (m *MockOrderUseCase) Create(ctx context.Context, input orders.CreateOrderInput) (*domain.Order, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderUseCase) Get(ctx context.Context, caller orders.Caller, id int64) (*domain.Order, error) {
	args := m.Called(ctx, caller, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderUseCase) List(ctx context.Context, caller orders.Caller, params domain.ListParams) ([]domain.Order, error) {
	args := m.Called(ctx, caller, params)
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderUseCase) Delete(ctx context.Context, caller orders.Caller, id int64) error {
	args := m.Called(ctx, caller, id)
	return args.Error(0)
}

func newOrderRouter(service orders.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := testMiddleware()
	engine := gin.New()
	engine.Use(mw.Authenticate())
	NewOrderHandler(service).Register(engine.Group("/api/v1/airport/orders"), mw)
	return engine
}

func TestOrders_RequireAuth(t *testing.T) {
	service := &MockOrderUseCase{}
	router := newOrderRouter(service)

	w := doRequest(router, http.MethodGet, "/api/v1/airport/orders", "", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	service.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrders_Create_Success(t *testing.T) {
	service := &MockOrderUseCase{}
	service.On("Create", mock.Anything, mock.MatchedBy(func(input orders.CreateOrderInput) bool {
		return input.Caller.UserID == 1 && len(input.Tickets) == 1 &&
			input.Tickets[0] == (orders.TicketInput{FlightID: 4, Row: 1, Seat: 2})
	})).Return(&domain.Order{ID: 9, Number: "ord-9", Tickets: []domain.Ticket{
		{ID: 100, Row: 1, Seat: 2, FlightID: 4},
	}}, nil).Once()
	router := newOrderRouter(service)

	w := doRequest(router, http.MethodPost, "/api/v1/airport/orders", "user-token",
		`{"tickets": [{"flight": 4, "row": 1, "seat": 2}]}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"ord-9"`)
	service.AssertExpectations(t)
}

func TestOrders_Create_SeatTaken(t *testing.T) {
	service := &MockOrderUseCase{}
	service.On("Create", mock.Anything, mock.Anything).Return(nil, domain.ErrSeatTaken).Once()
	router := newOrderRouter(service)

	w := doRequest(router, http.MethodPost, "/api/v1/airport/orders", "user-token",
		`{"tickets": [{"flight": 4, "row": 1, "seat": 2}]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already taken")
}

func TestOrders_Create_EmptyTickets(t *testing.T) {
	service := &MockOrderUseCase{}
	router := newOrderRouter(service)

	w := doRequest(router, http.MethodPost, "/api/v1/airport/orders", "user-token",
		`{"tickets": []}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	service.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrders_Get_PassesCaller(t *testing.T) {
	service := &MockOrderUseCase{}
	service.On("Get", mock.Anything, orders.Caller{UserID: 2, Email: "staff@example.com", IsStaff: true}, int64(9)).
		Return(&domain.Order{ID: 9, Number: "ord-9"}, nil).Once()
	router := newOrderRouter(service)

	w := doRequest(router, http.MethodGet, "/api/v1/airport/orders/9", "staff-token", "")

	assert.Equal(t, http.StatusOK, w.Code)
	service.AssertExpectations(t)
}

func TestOrders_Get_NotFound(t *testing.T) {
	service := &MockOrderUseCase{}
	service.On("Get", mock.Anything, mock.Anything, int64(9)).Return(nil, domain.ErrNotFound).Once()
	router := newOrderRouter(service)

	w := doRequest(router, http.MethodGet, "/api/v1/airport/orders/9", "user-token", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrders_Delete(t *testing.T) {
	service := &MockOrderUseCase{}
	service.On("Delete", mock.Anything, orders.Caller{UserID: 1, Email: "user@example.com"}, int64(9)).
		Return(nil).Once()
	router := newOrderRouter(service)

	w := doRequest(router, http.MethodDelete, "/api/v1/airport/orders/9", "user-token", "")

	assert.Equal(t, http.StatusNoContent, w.Code)
	service.AssertExpectations(t)
}
