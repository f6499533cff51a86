package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hasnainotho/formbrick-backend/src/controllers"
)

// AdminRoutes wires the admin helpers
func AdminRoutes(router fiber.Router) {
	admin := router.Group("/admin")

	admin.Post("/forms/:id/remap-conditions", controllers.RemapFormConditions)
	admin.Post("/seed-forms", controllers.SeedSampleForms)
}
