package handlers

import (
	"github.com/colipio/gtm-backend/internal/dto"
	"github.com/colipio/gtm-backend/internal/identity"
	"github.com/colipio/gtm-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Me handles GET /users/me - resolves (and lazily creates) the caller's user row.
func (h *UserHandler) Me(c *fiber.Ctx) error {
	caller, err := identity.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	user, err := h.userService.GetOrCreateByAuthID(caller.Subject, caller.Email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to resolve user",
		})
	}

	return c.JSON(user)
}
