package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rangachimalgi/real-estate-crm-backend/internal/dto"
	"github.com/rangachimalgi/real-estate-crm-backend/internal/models"
	"github.com/rangachimalgi/real-estate-crm-backend/internal/services"
)

type SiteVisitHandler struct {
	siteVisitService *services.SiteVisitService
}

func NewSiteVisitHandler(siteVisitService *services.SiteVisitService) *SiteVisitHandler {
	return &SiteVisitHandler{siteVisitService: siteVisitService}
}

// Create handles the public lead-capture form.
func (h *SiteVisitHandler) Create(c *fiber.Ctx) error {
	var visit models.SiteVisit
	if err := c.BodyParser(&visit); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid request body",
		})
	}

	if err := h.siteVisitService.Create(&visit); err != nil {
		return serverError(c, "failed to save site visit", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Site visit request submitted!",
	})
}

func (h *SiteVisitHandler) List(c *fiber.Ctx) error {
	visits, err := h.siteVisitService.List()
	if err != nil {
		return serverError(c, "failed to list site visits", err)
	}
	return c.JSON(visits)
}
