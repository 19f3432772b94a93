package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/job-board/internal/config"
	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/events"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:          "test-secret",
		CookieName:         "job_board_session",
		TokenValidityHours: 5,
		BcryptCost:         bcrypt.MinCost,
	}
}

func TestRegister(t *testing.T) {
	users := newMemUserRepo()
	dispatcher := events.NewInMemoryDispatcher()
	captured := captureEvents(dispatcher, events.EventUserRegistered)
	svc := NewAuthService(testAuthConfig(), users, dispatcher)

	user, err := svc.Register(context.Background(), "alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.NotEqual(t, "s3cret", user.PasswordHash, "password must be stored hashed")

	require.Len(t, *captured, 1)
	assert.Equal(t, events.EventUserRegistered, (*captured)[0].Type)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	users := newMemUserRepo()
	svc := NewAuthService(testAuthConfig(), users, events.NewInMemoryDispatcher())

	first, err := svc.Register(context.Background(), "alice", "first-pass")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "alice", "second-pass")
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "CONFLICT", domainErr.Code)

	// The stored identity still matches the first registration.
	stored, err := users.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, first.PasswordHash, stored.PasswordHash)
	assert.Equal(t, domain.RoleUser, stored.Role)
}

func TestLoginSuccess(t *testing.T) {
	users := newMemUserRepo()
	svc := NewAuthService(testAuthConfig(), users, events.NewInMemoryDispatcher())

	_, err := svc.Register(context.Background(), "alice", "s3cret")
	require.NoError(t, err)

	user, token, err := svc.Login(context.Background(), "alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, domain.RoleUser, claims.Role)
	assert.Equal(t, 5*time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	users := newMemUserRepo()
	svc := NewAuthService(testAuthConfig(), users, events.NewInMemoryDispatcher())

	_, err := svc.Register(context.Background(), "alice", "s3cret")
	require.NoError(t, err)

	_, _, unknownErr := svc.Login(context.Background(), "nobody", "whatever")
	_, _, wrongPassErr := svc.Login(context.Background(), "alice", "wrong")

	require.Error(t, unknownErr)
	require.Error(t, wrongPassErr)

	unknown := apperrors.ToDomainError(unknownErr)
	wrongPass := apperrors.ToDomainError(wrongPassErr)
	assert.Equal(t, unknown.Code, wrongPass.Code)
	assert.Equal(t, unknown.Message, wrongPass.Message)
	assert.Equal(t, unknown.HTTPStatus, wrongPass.HTTPStatus)
}
