package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-board/internal/domain"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

// CapabilityFor maps a role to its single capability grant.
func CapabilityFor(role domain.Role) string {
	return "ROLE_" + string(role)
}

// RequireAuthenticated rejects requests that carry no principal.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		return c.Next()
	}
}

// RequireRole rejects requests whose principal lacks the role's capability.
// Anonymous callers get unauthorized; known callers without the grant get
// forbidden.
func RequireRole(role domain.Role) fiber.Handler {
	capability := CapabilityFor(role)
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if !principal.HasCapability(capability) {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}
