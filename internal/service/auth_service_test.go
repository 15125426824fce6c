package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/niharsaraf26/smartdocs/internal/config"
	"github.com/niharsaraf26/smartdocs/internal/domain"
	"github.com/niharsaraf26/smartdocs/mocks"
)

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{
		Secret:             "test-secret",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 24 * time.Hour,
		Issuer:             "smartdocs-test",
	}
}

func TestRegisterLowercasesEmailAndHashesPassword(t *testing.T) {
	users := new(mocks.MockUserRepo)
	svc := NewAuthService(users, testJWTConfig())

	users.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "priya@example.com" &&
			u.IsActive &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("hunter2hunter2")) == nil
	})).Return(nil)

	user, err := svc.Register(context.Background(), "  Priya@Example.COM ", "hunter2hunter2", "Priya Sharma")

	assert.NoError(t, err)
	assert.Equal(t, "priya@example.com", user.Email)
	users.AssertExpectations(t)
}

func TestLoginIssuesVerifiableTokens(t *testing.T) {
	users := new(mocks.MockUserRepo)
	svc := NewAuthService(users, testJWTConfig())

	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), bcrypt.MinCost)
	user := &domain.User{Email: "priya@example.com", PasswordHash: string(hash), IsActive: true}
	users.On("GetByEmail", mock.Anything, "priya@example.com").Return(user, nil)

	pair, _, err := svc.Login(context.Background(), "priya@example.com", "hunter2hunter2")
	assert.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, "priya@example.com", claims.Email)

	// Token kinds are not interchangeable.
	_, err = svc.ValidateAccessToken(pair.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLoginWrongPassword(t *testing.T) {
	users := new(mocks.MockUserRepo)
	svc := NewAuthService(users, testJWTConfig())

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	users.On("GetByEmail", mock.Anything, "priya@example.com").
		Return(&domain.User{Email: "priya@example.com", PasswordHash: string(hash), IsActive: true}, nil)

	_, _, err := svc.Login(context.Background(), "priya@example.com", "wrong-password")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginUnknownUserMapsToInvalidCredentials(t *testing.T) {
	users := new(mocks.MockUserRepo)
	svc := NewAuthService(users, testJWTConfig())

	users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, domain.ErrNotFound)

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginInactiveUser(t *testing.T) {
	users := new(mocks.MockUserRepo)
	svc := NewAuthService(users, testJWTConfig())

	users.On("GetByEmail", mock.Anything, "priya@example.com").
		Return(&domain.User{Email: "priya@example.com", IsActive: false}, nil)

	_, _, err := svc.Login(context.Background(), "priya@example.com", "whatever")
	assert.ErrorIs(t, err, domain.ErrUserInactive)
}

func TestRefreshRoundTrip(t *testing.T) {
	users := new(mocks.MockUserRepo)
	svc := NewAuthService(users, testJWTConfig())

	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), bcrypt.MinCost)
	user := &domain.User{Email: "priya@example.com", PasswordHash: string(hash), IsActive: true}
	users.On("GetByEmail", mock.Anything, "priya@example.com").Return(user, nil)

	pair, _, err := svc.Login(context.Background(), "priya@example.com", "hunter2hunter2")
	assert.NoError(t, err)

	fresh, err := svc.Refresh(context.Background(), pair.RefreshToken)
	assert.NoError(t, err)
	assert.NotEmpty(t, fresh.AccessToken)

	// An access token is not a refresh token.
	_, err = svc.Refresh(context.Background(), pair.AccessToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
