package middleware

import (
	"log/slog"

	"github.com/colipio/gtm-backend/internal/config"
	"github.com/colipio/gtm-backend/internal/dto"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

// JWTProtected verifies the Authorization bearer token against the shared
// identity-provider secret. Every failure mode (missing header, malformed
// token, bad signature, expired token) gets the same 401 body so callers
// can't probe which one they hit; the detail goes to the log only.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.SupabaseJWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			slog.Debug("token verification failed", "path", c.Path(), "reason", err.Error())
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Unauthorized",
			})
		},
	})
}
