package middleware

import (
	"strings"

	"github.com/ardakaya/secondbrain-backend/internal/config"
	"github.com/ardakaya/secondbrain-backend/internal/dto"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

// JWTProtected guards a route with bearer-token verification. The client may
// send the Authorization header either as a raw token or with the standard
// "Bearer " scheme; the raw form is normalized before verification. Every
// failure mode produces the same 401 body.
func JWTProtected(cfg *config.Config) fiber.Handler {
	verify := jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Unauthorized: invalid or expired token",
			})
		},
	})

	return func(c *fiber.Ctx) error {
		auth := c.Get(fiber.HeaderAuthorization)
		if auth != "" && !strings.HasPrefix(auth, "Bearer ") {
			c.Request().Header.Set(fiber.HeaderAuthorization, "Bearer "+auth)
		}
		return verify(c)
	}
}
