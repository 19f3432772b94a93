package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/repository"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller for the rest of the request.
// It is built per request and never shared across requests.
type Principal struct {
	User         *domain.User
	capabilities map[string]struct{}
}

// NewPrincipal derives the principal and its capability set from the user's
// role. An empty role yields an authenticated but capability-less principal.
func NewPrincipal(user *domain.User) *Principal {
	capabilities := make(map[string]struct{}, 1)
	if user.Role != "" {
		capabilities[CapabilityFor(user.Role)] = struct{}{}
	}
	return &Principal{User: user, capabilities: capabilities}
}

// HasCapability reports whether the principal holds the capability grant.
func (p *Principal) HasCapability(capability string) bool {
	_, ok := p.capabilities[capability]
	return ok
}

// SessionMiddleware derives the request principal from the session cookie.
// It runs once per request and never rejects: authorization happens in the
// route guards, not here.
type SessionMiddleware struct {
	tokens     *TokenManager
	users      repository.UserRepository
	cookieName string
}

// NewSessionMiddleware constructs the middleware.
func NewSessionMiddleware(tokens *TokenManager, users repository.UserRepository, cookieName string) *SessionMiddleware {
	return &SessionMiddleware{tokens: tokens, users: users, cookieName: cookieName}
}

// Handle scans for the session cookie and installs the principal on success.
// A missing cookie is not an error; an undecodable or expired token, or a
// token whose subject no longer exists, downgrades the request to anonymous
// and expires the stale cookie in the response.
func (m *SessionMiddleware) Handle(c *fiber.Ctx) error {
	raw := c.Cookies(m.cookieName)
	if raw == "" {
		return c.Next()
	}

	claims, err := m.tokens.ParseToken(raw)
	if err != nil {
		ExpireSessionCookie(c, m.cookieName)
		return c.Next()
	}

	user, err := m.users.GetByUsername(c.UserContext(), claims.Subject)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Token outlived the identity.
			ExpireSessionCookie(c, m.cookieName)
			return c.Next()
		}
		return apperrors.MapError(err)
	}

	c.Locals(principalKey, NewPrincipal(user))
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated caller, if any.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
