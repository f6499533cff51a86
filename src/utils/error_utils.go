package utils

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hasnainotho/formbrick-backend/src/models"
)

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
	})
}
