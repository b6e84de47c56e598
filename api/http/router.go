package http

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/abalakin/userauth/api/http/handlers"
	"github.com/abalakin/userauth/api/http/presenter"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, auth *handlers.AuthHandler, health *handlers.HealthHandler, authMW fiber.Handler) {
	app.Get("/", welcome)

	api := app.Group("/api")

	// Health and readiness endpoints for probes/monitoring
	api.Get("/health", health.Health)
	api.Get("/ready", health.Ready)

	a := api.Group("/auth")
	a.Post("/register", auth.Register)
	a.Post("/login", auth.Login)
	a.Get("/profile", authMW, auth.Profile)

	api.Get("/protected", authMW, auth.Protected)

	// Fallback for unmatched routes; must be registered last.
	app.Use(notFound)
}

// ErrorHandler is the app-level fallback. Handlers translate domain failures
// themselves, so anything arriving here is either a routing-level fiber.Error
// or an unexpected failure reported generically.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) && fiberErr.Code != http.StatusInternalServerError {
		return presenter.Error(c, fiberErr.Code, fiberErr.Message)
	}
	return presenter.Error(c, http.StatusInternalServerError, "internal server error")
}

// welcome answers with message and endpoints at the top level, next to
// success, rather than nested under data.
func welcome(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Welcome to User Authentication API",
		"endpoints": fiber.Map{
			"register":  "POST /api/auth/register",
			"login":     "POST /api/auth/login",
			"profile":   "GET /api/auth/profile (requires JWT token)",
			"protected": "GET /api/protected (requires JWT token)",
		},
	})
}

func notFound(c *fiber.Ctx) error {
	return presenter.Error(c, http.StatusNotFound, "not found")
}
