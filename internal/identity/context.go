package identity

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Identity is the verified caller extracted from the bearer token. Subject is
// the identity provider's user id and is the value every ownership check
// compares against.
type Identity struct {
	Subject string
	Email   string
}

// FromContext extracts the caller identity from the verified JWT the auth
// middleware placed in Fiber locals. It never re-verifies the signature.
func FromContext(c *fiber.Ctx) (Identity, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return Identity{}, errors.New("invalid token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, errors.New("invalid claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return Identity{}, errors.New("missing sub claim")
	}

	email, _ := claims["email"].(string)

	return Identity{Subject: sub, Email: email}, nil
}
