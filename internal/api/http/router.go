package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-api/internal/api/http/handlers"
	"github.com/spec-kit/helpdesk-api/internal/auth"
	"github.com/spec-kit/helpdesk-api/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Items          *handlers.ItemsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Get("/me", cfg.AuthMiddleware.Handle, auth.RequireActive(), cfg.Auth.Me)

	items := app.Group("/items", cfg.AuthMiddleware.Handle, auth.RequireActive())
	items.Post("", cfg.Items.Create)
	items.Get("", cfg.Items.List)
	// literal segment registered before :id so /items/statuses resolves here
	items.Get("/statuses", cfg.Items.ListStatuses)
	items.Get("/:id", cfg.Items.Get)
	items.Put("/:id", cfg.Items.Update)
	items.Patch("/:id/status", auth.RequireRole(domain.RoleAdmin, domain.RoleAgent), cfg.Items.UpdateStatus)
	items.Delete("/:id", auth.RequireRole(domain.RoleAdmin), cfg.Items.Delete)
}
