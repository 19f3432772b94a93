package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// IssueSessionCookie attaches the token to the response as an http-only
// session cookie (no max-age; it lives until the user agent closes).
func IssueSessionCookie(c *fiber.Ctx, name, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
	})
}

// ExpireSessionCookie attaches a cookie that deletes the session cookie
// immediately. Used by logout and by the middleware's stale-cookie cleanup.
func ExpireSessionCookie(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		MaxAge:   -1,
		Expires:  time.Now().Add(-time.Hour),
	})
}
