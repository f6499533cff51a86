package routes

import (
	"github.com/gofiber/fiber/v2"
)

func InitRoutes(app *fiber.App) {
	FormRoutes(app)
	ResponseRoutes(app)
	TicketRoutes(app)
	AdminRoutes(app)

	// liveness probe
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
}
