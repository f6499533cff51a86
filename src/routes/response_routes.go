package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hasnainotho/formbrick-backend/src/controllers"
)

// ResponseRoutes wires response submission and review
func ResponseRoutes(router fiber.Router) {
	responses := router.Group("/responses")

	responses.Post("/", controllers.SubmitResponse)
	responses.Get("/", controllers.GetResponses)
	responses.Get("/:id", controllers.GetResponse)
	responses.Put("/:id", controllers.UpdateResponse)
	responses.Put("/:id/answers", controllers.UpdateAnswers)
	responses.Post("/:id/approve", controllers.ApproveResponse)
}
