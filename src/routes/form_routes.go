package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hasnainotho/formbrick-backend/src/controllers"
)

// FormRoutes wires form and question management
func FormRoutes(router fiber.Router) {
	forms := router.Group("/forms")

	forms.Post("/", controllers.CreateForm)
	forms.Get("/", controllers.GetForms)
	forms.Get("/:id", controllers.GetFormByID)
	forms.Put("/:id", controllers.UpdateForm)
	forms.Delete("/:id", controllers.DeleteForm)

	forms.Post("/:id/questions", controllers.CreateQuestions)

	questions := router.Group("/questions")
	questions.Put("/:id", controllers.UpdateQuestion)
	questions.Delete("/:id", controllers.DeleteQuestion)
}
