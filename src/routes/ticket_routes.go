package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hasnainotho/formbrick-backend/src/controllers"
)

// TicketRoutes wires the ticketing flow
func TicketRoutes(router fiber.Router) {
	tickets := router.Group("/tickets")

	tickets.Post("/", controllers.CreateTicket)
	tickets.Get("/:id", controllers.GetTicket)
	tickets.Post("/:id/assign", controllers.AssignForm)
}
