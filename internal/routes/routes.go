package routes

import (
	"github.com/ardakaya/secondbrain-backend/internal/config"
	"github.com/ardakaya/secondbrain-backend/internal/handlers"
	"github.com/ardakaya/secondbrain-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	contentHandler *handlers.ContentHandler,
	shareHandler *handlers.ShareHandler,
	healthHandler *handlers.HealthHandler,
) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Second Brain API is running",
			"version": "1.0.0",
			"endpoints": fiber.Map{
				"health":       "/api/health",
				"signup":       "/api/v1/signup",
				"signin":       "/api/v1/signin",
				"googleSignIn": "/api/v1/google-signin",
				"content":      "/api/v1/content",
				"share":        "/api/v1/brain/share",
			},
		})
	})

	app.Get("/api/health", healthHandler.Check)

	api := app.Group("/api/v1")

	// Public auth routes
	api.Post("/signup", authHandler.Signup)
	api.Post("/signin", authHandler.Signin)
	api.Post("/google-signin", authHandler.GoogleSignIn)

	// Content routes require a bearer token
	api.Post("/content", middleware.JWTProtected(cfg), contentHandler.Create)
	api.Get("/content", middleware.JWTProtected(cfg), contentHandler.List)
	api.Delete("/content", middleware.JWTProtected(cfg), contentHandler.Delete)

	// Share: creating a link is protected, resolving one is public
	api.Post("/brain/share", middleware.JWTProtected(cfg), shareHandler.CreateLink)
	api.Get("/brain/:shareId", shareHandler.ResolveLink)
}
