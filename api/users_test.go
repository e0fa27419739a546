package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/nshubina/airport-api/internal/domain"
	"github.com/nshubina/airport-api/internal/service/users"
)

type MockUserUseCase struct {
	mock.Mock
}

func (m *MockUserUseCase) Register(ctx context.Context, input users.RegisterInput) (*domain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserUseCase) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockUserUseCase) Me(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserUseCase) UpdateMe(ctx context.Context, userID int64, input users.UpdateInput) (*domain.User, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserUseCase) List(ctx context.Context, params domain.ListParams) ([]domain.User, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]domain.User), args.Error(1)
}

func newUserRouter(service users.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := testMiddleware()
	engine := gin.New()
	engine.Use(mw.Authenticate())
	handler := NewUserHandler(service)
	engine.POST("/api/v1/token", handler.token)
	handler.Register(engine.Group("/api/v1/users"), mw)
	return engine
}

func TestUsers_Register_Permissions(t *testing.T) {
	body := `{"email": "new@example.com", "password": "s3cret-password", "first_name": "Ada", "last_name": "Lovelace"}`

	t.Run("anonymous gets 201", func(t *testing.T) {
		service := &MockUserUseCase{}
		service.On("Register", mock.Anything, mock.AnythingOfType("users.RegisterInput")).
			Return(&domain.User{ID: 5, Email: "new@example.com"}, nil).Once()
		router := newUserRouter(service)

		w := doRequest(router, http.MethodPost, "/api/v1/users", "", body)

		assert.Equal(t, http.StatusCreated, w.Code)
		service.AssertExpectations(t)
	})

	t.Run("authenticated non-staff gets 403", func(t *testing.T) {
		service := &MockUserUseCase{}
		router := newUserRouter(service)

		w := doRequest(router, http.MethodPost, "/api/v1/users", "user-token", body)

		assert.Equal(t, http.StatusForbidden, w.Code)
		service.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("staff gets 201", func(t *testing.T) {
		service := &MockUserUseCase{}
		service.On("Register", mock.Anything, mock.AnythingOfType("users.RegisterInput")).
			Return(&domain.User{ID: 6, Email: "new@example.com"}, nil).Once()
		router := newUserRouter(service)

		w := doRequest(router, http.MethodPost, "/api/v1/users", "staff-token", body)

		assert.Equal(t, http.StatusCreated, w.Code)
		service.AssertExpectations(t)
	})
}

func TestUsers_Register_EmailTaken(t *testing.T) {
	service := &MockUserUseCase{}
	service.On("Register", mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken).Once()
	router := newUserRouter(service)

	w := doRequest(router, http.MethodPost, "/api/v1/users", "",
		`{"email": "dup@example.com", "password": "s3cret-password"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already registered")
}

func TestUsers_Token(t *testing.T) {
	t.Run("valid credentials return access token", func(t *testing.T) {
		service := &MockUserUseCase{}
		service.On("Login", mock.Anything, "user@example.com", "s3cret-password").
			Return("signed-token", nil).Once()
		router := newUserRouter(service)

		w := doRequest(router, http.MethodPost, "/api/v1/token", "",
			`{"email": "user@example.com", "password": "s3cret-password"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"access":"signed-token"`)
	})

	t.Run("invalid credentials give 401", func(t *testing.T) {
		service := &MockUserUseCase{}
		service.On("Login", mock.Anything, "user@example.com", "wrong").
			Return("", domain.ErrInvalidCredentials).Once()
		router := newUserRouter(service)

		w := doRequest(router, http.MethodPost, "/api/v1/token", "",
			`{"email": "user@example.com", "password": "wrong"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestUsers_Me(t *testing.T) {
	t.Run("anonymous gets 401", func(t *testing.T) {
		service := &MockUserUseCase{}
		router := newUserRouter(service)

		w := doRequest(router, http.MethodGet, "/api/v1/users/me", "", "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		service.AssertNotCalled(t, "Me", mock.Anything, mock.Anything)
	})

	t.Run("authenticated user sees own profile", func(t *testing.T) {
		service := &MockUserUseCase{}
		service.On("Me", mock.Anything, int64(1)).
			Return(&domain.User{ID: 1, Email: "user@example.com"}, nil).Once()
		router := newUserRouter(service)

		w := doRequest(router, http.MethodGet, "/api/v1/users/me", "user-token", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "user@example.com")
	})
}

func TestUsers_List_StaffOnly(t *testing.T) {
	service := &MockUserUseCase{}
	router := newUserRouter(service)

	w := doRequest(router, http.MethodGet, "/api/v1/users", "user-token", "")

	assert.Equal(t, http.StatusForbidden, w.Code)
	service.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}
