package handlers

import (
	"errors"

	"github.com/colipio/gtm-backend/internal/dto"
	"github.com/colipio/gtm-backend/internal/identity"
	"github.com/colipio/gtm-backend/internal/metrics"
	"github.com/colipio/gtm-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ContactHandler struct {
	contactService *services.ContactService
}

func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// List handles GET /contacts - returns the caller's contacts.
func (h *ContactHandler) List(c *fiber.Ctx) error {
	caller, err := identity.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	contacts, err := h.contactService.ListByOwner(caller.Subject)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list contacts",
		})
	}

	return c.JSON(contacts)
}

// Create handles POST /contacts - creates a contact owned by the caller.
func (h *ContactHandler) Create(c *fiber.Ctx) error {
	caller, err := identity.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateContactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	contact, err := h.contactService.CreateForOwner(caller.Subject, &req)
	if err != nil {
		if errors.Is(err, services.ErrFullNameRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create contact",
		})
	}

	metrics.RecordCreated("contact")
	return c.Status(fiber.StatusCreated).JSON(contact)
}
