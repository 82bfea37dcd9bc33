package handlers

import (
	"errors"

	"github.com/colipio/gtm-backend/internal/dto"
	"github.com/colipio/gtm-backend/internal/identity"
	"github.com/colipio/gtm-backend/internal/metrics"
	"github.com/colipio/gtm-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type DealHandler struct {
	dealService *services.DealService
}

func NewDealHandler(dealService *services.DealService) *DealHandler {
	return &DealHandler{dealService: dealService}
}

// List handles GET /deals - returns the caller's deals.
func (h *DealHandler) List(c *fiber.Ctx) error {
	caller, err := identity.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	deals, err := h.dealService.ListByOwner(caller.Subject)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list deals",
		})
	}

	return c.JSON(deals)
}

// Create handles POST /deals - creates a deal owned by the caller.
func (h *DealHandler) Create(c *fiber.Ctx) error {
	caller, err := identity.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateDealRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	deal, err := h.dealService.CreateForOwner(caller.Subject, &req)
	if err != nil {
		if errors.Is(err, services.ErrTitleRequired) || errors.Is(err, services.ErrInvalidStage) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create deal",
		})
	}

	metrics.RecordCreated("deal")
	return c.Status(fiber.StatusCreated).JSON(deal)
}

// Update handles PUT /deals/:id - updates a deal iff the caller owns it.
func (h *DealHandler) Update(c *fiber.Ctx) error {
	caller, err := identity.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		// An unparseable id can't name anyone's record; same outcome as
		// not-yours to keep the responses uniform.
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Not allowed",
		})
	}

	var req dto.UpdateDealRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	deal, err := h.dealService.UpdateForOwner(caller.Subject, id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotAllowed):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Not allowed",
			})
		case errors.Is(err, services.ErrTitleRequired), errors.Is(err, services.ErrInvalidStage):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to update deal",
			})
		}
	}

	return c.JSON(deal)
}
