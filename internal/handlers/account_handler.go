package handlers

import (
	"errors"

	"github.com/colipio/gtm-backend/internal/dto"
	"github.com/colipio/gtm-backend/internal/identity"
	"github.com/colipio/gtm-backend/internal/metrics"
	"github.com/colipio/gtm-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AccountHandler struct {
	accountService *services.AccountService
}

func NewAccountHandler(accountService *services.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// List handles GET /accounts - returns the caller's accounts.
func (h *AccountHandler) List(c *fiber.Ctx) error {
	caller, err := identity.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	accounts, err := h.accountService.ListByOwner(caller.Subject)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list accounts",
		})
	}

	return c.JSON(accounts)
}

// Create handles POST /accounts - creates an account owned by the caller.
func (h *AccountHandler) Create(c *fiber.Ctx) error {
	caller, err := identity.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	account, err := h.accountService.CreateForOwner(caller.Subject, &req)
	if err != nil {
		if errors.Is(err, services.ErrNameRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create account",
		})
	}

	metrics.RecordCreated("account")
	return c.Status(fiber.StatusCreated).JSON(account)
}
