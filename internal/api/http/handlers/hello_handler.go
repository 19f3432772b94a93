package handlers

import "github.com/gofiber/fiber/v2"

// HelloHandler serves the demo endpoints with the three access levels.
type HelloHandler struct{}

// NewHelloHandler returns a new handler instance.
func NewHelloHandler() *HelloHandler {
	return &HelloHandler{}
}

// Public GET /hello/public.
func (h *HelloHandler) Public(c *fiber.Ctx) error {
	return c.SendString("hello, anyone")
}

// Private GET /hello/private.
func (h *HelloHandler) Private(c *fiber.Ctx) error {
	return c.SendString("hello, authenticated caller")
}

// PrivateAdmin GET /hello/private-admin.
func (h *HelloHandler) PrivateAdmin(c *fiber.Ctx) error {
	return c.SendString("hello, admin")
}
