package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rangachimalgi/real-estate-crm-backend/internal/dto"
)

// serverError logs the failure with request context and returns a generic 500
// body; internals never leak to clients.
func serverError(c *fiber.Ctx, msg string, err error) error {
	slog.Error(msg,
		"error", err,
		"method", c.Method(),
		"path", c.Path(),
		"request_id", requestID(c),
	)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: "Internal server error",
	})
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return ""
}

// parseIDParam reads a uuid path parameter; failures map to 400.
func parseIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(name))
}
