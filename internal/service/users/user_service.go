package users

import (
	"context"

	"github.com/nshubina/airport-api/internal/auth"
	"github.com/nshubina/airport-api/internal/domain"
	"github.com/nshubina/airport-api/internal/repository"
)

type UseCase interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	Me(ctx context.Context, userID int64) (*domain.User, error)
	UpdateMe(ctx context.Context, userID int64, input UpdateInput) (*domain.User, error)
	List(ctx context.Context, params domain.ListParams) ([]domain.User, error)
}

// TokenIssuer is satisfied by auth.TokenManager.
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type UpdateInput struct {
	Email     string
	Password  string // empty keeps the current password
	FirstName string
	LastName  string
}

type UserService struct {
	users  repository.UserRepository
	tokens TokenIssuer
}

func NewUserService(users repository.UserRepository, tokens TokenIssuer) *UserService {
	return &UserService{users: users, tokens: tokens}
}

func (s *UserService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        input.Email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		// Do not reveal whether the account exists.
		return "", domain.ErrInvalidCredentials
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", domain.ErrInvalidCredentials
	}
	return s.tokens.Issue(user)
}

func (s *UserService) Me(ctx context.Context, userID int64) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}

func (s *UserService) UpdateMe(ctx context.Context, userID int64, input UpdateInput) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Email = input.Email
	user.FirstName = input.FirstName
	user.LastName = input.LastName
	if input.Password != "" {
		hash, err := auth.HashPassword(input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context, params domain.ListParams) ([]domain.User, error) {
	return s.users.List(ctx, params)
}

var _ UseCase = (*UserService)(nil)
