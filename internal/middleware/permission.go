package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rangachimalgi/real-estate-crm-backend/internal/dto"
	"github.com/rangachimalgi/real-estate-crm-backend/internal/models"
	"gorm.io/gorm"
)

// ScreenRequired enforces Role.screens server-side: the authenticated user's
// role must grant the screen. Superadmin passes unconditionally. Must run
// after JWTProtected.
func ScreenRequired(db *gorm.DB, screen string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := UserID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: "Access token required",
			})
		}

		var user models.User
		if err := db.Preload("Role").First(&user, "id = ?", userID).Error; err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: "Invalid or expired token",
			})
		}

		if user.Role == nil {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: "Access denied",
			})
		}
		if user.Role.Name == models.RoleSuperAdmin || user.Role.HasScreen(screen) {
			return c.Next()
		}

		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: "Access denied",
		})
	}
}
