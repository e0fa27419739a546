package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nshubina/airport-api/internal/domain"
)

func TestTokenManager_IssueAndVerify(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)
	user := &domain.User{ID: 42, Email: "staff@example.com", IsStaff: true}

	token, err := manager.Issue(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := manager.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "staff@example.com", claims.Email)
	assert.True(t, claims.IsStaff)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)
	other := NewTokenManager("other-secret", time.Hour)

	token, err := manager.Issue(&domain.User{ID: 1, Email: "user@example.com"})
	assert.NoError(t, err)

	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_Expired(t *testing.T) {
	manager := NewTokenManager("test-secret", -time.Minute)

	token, err := manager.Issue(&domain.User{ID: 1, Email: "user@example.com"})
	assert.NoError(t, err)

	_, err = manager.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_Garbage(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)
	_, err := manager.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	assert.NoError(t, err)
	assert.True(t, CheckPassword(hash, "correct horse battery staple"))
	assert.False(t, CheckPassword(hash, "wrong password"))
}
