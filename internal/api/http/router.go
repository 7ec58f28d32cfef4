package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-board-service/internal/api/http/handlers"
	"github.com/spec-kit/job-board-service/internal/auth"
	"github.com/spec-kit/job-board-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Jobs           *handlers.JobsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Reads require a verified token;
// mutations additionally require the admin role.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/login", cfg.Auth.Login)

	jobs := app.Group("/jobs", cfg.AuthMiddleware.Handle)
	jobs.Get("/", cfg.Jobs.List)

	admin := jobs.Group("", auth.RequireRole(domain.RoleAdmin))
	admin.Post("/", cfg.Jobs.Create)
	admin.Put("/:id", cfg.Jobs.Update)
	admin.Delete("/:id", cfg.Jobs.Delete)
}
