package handlers

import "github.com/gofiber/fiber/v2"

// PagesHandler serves the navigation endpoints. There is no HTML templating;
// pages are JSON descriptors pointing at the API endpoints behind them.
type PagesHandler struct{}

// NewPagesHandler returns a new handler instance.
func NewPagesHandler() *PagesHandler {
	return &PagesHandler{}
}

// Index GET /.
func (h *PagesHandler) Index(c *fiber.Ctx) error {
	return c.Redirect("/offers")
}

// Login GET /login.
func (h *PagesHandler) Login(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"page": "login", "submit": "POST /auth/login"})
}

// Register GET /register.
func (h *PagesHandler) Register(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"page": "register", "submit": "POST /auth/register"})
}

// AddOffer GET /add-offer.
func (h *PagesHandler) AddOffer(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"page": "add-offer", "submit": "POST /offers"})
}
