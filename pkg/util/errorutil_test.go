package util

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainErrorPassthrough(t *testing.T) {
	original := NewForbidden("no")
	mapped := ToDomainError(fmt.Errorf("wrapped: %w", original))
	require.NotNil(t, mapped)
	assert.Equal(t, "FORBIDDEN", mapped.Code)
	assert.Equal(t, http.StatusForbidden, mapped.HTTPStatus)
}

func TestToDomainErrorMappings(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		code   string
		status int
	}{
		{"no rows", pgx.ErrNoRows, "NOT_FOUND", http.StatusNotFound},
		{"deadline", context.DeadlineExceeded, "UNAVAILABLE", http.StatusServiceUnavailable},
		{"generic", errors.New("boom"), "INTERNAL_ERROR", http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mapped := ToDomainError(tc.err)
			require.NotNil(t, mapped)
			assert.Equal(t, tc.code, mapped.Code)
			assert.Equal(t, tc.status, mapped.HTTPStatus)
		})
	}
}

func TestToDomainErrorNil(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))
}

func TestDistinctAuthFailureKinds(t *testing.T) {
	unauthenticated := ToDomainError(NewUnauthorized("authentication required"))
	forbidden := ToDomainError(NewForbidden("insufficient role"))
	notFound := ToDomainError(NewNotFound("job offer", nil))

	assert.NotEqual(t, unauthenticated.Code, forbidden.Code)
	assert.NotEqual(t, forbidden.Code, notFound.Code)
	assert.Equal(t, http.StatusUnauthorized, unauthenticated.HTTPStatus)
	assert.Equal(t, http.StatusForbidden, forbidden.HTTPStatus)
	assert.Equal(t, http.StatusNotFound, notFound.HTTPStatus)
}
