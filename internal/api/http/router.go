package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-board/internal/api/http/handlers"
	"github.com/spec-kit/job-board/internal/auth"
	"github.com/spec-kit/job-board/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health  *handlers.HealthHandler
	Pages   *handlers.PagesHandler
	Auth    *handlers.AuthHandler
	Offers  *handlers.OffersHandler
	Hello   *handlers.HelloHandler
	Session *auth.SessionMiddleware
}

// RegisterRoutes wires HTTP routes. The session middleware runs on every
// request before any guard; guards enforce the access level per route.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Use(cfg.Session.Handle)

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Get("/", cfg.Pages.Index)
	app.Get("/login", cfg.Pages.Login)
	app.Get("/register", cfg.Pages.Register)
	app.Get("/add-offer", auth.RequireAuthenticated(), cfg.Pages.AddOffer)

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/logout", cfg.Auth.Logout)
	authGroup.Get("/status", cfg.Auth.Status)

	offers := app.Group("/offers")
	offers.Get("/", cfg.Offers.List)
	offers.Post("/", auth.RequireAuthenticated(), cfg.Offers.Create)
	offers.Delete("/:id", auth.RequireAuthenticated(), cfg.Offers.Delete)

	hello := app.Group("/hello")
	hello.Get("/public", cfg.Hello.Public)
	hello.Get("/private", auth.RequireAuthenticated(), cfg.Hello.Private)
	hello.Get("/private-admin", auth.RequireRole(domain.RoleAdmin), cfg.Hello.PrivateAdmin)
}
