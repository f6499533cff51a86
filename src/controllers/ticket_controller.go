package controllers

import (
	"errors"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hasnainotho/formbrick-backend/src/models"
	"github.com/hasnainotho/formbrick-backend/src/services/email"
	"github.com/hasnainotho/formbrick-backend/src/services/tickets"
	"github.com/hasnainotho/formbrick-backend/src/utils"
)

func formFillLink(formID, ticketID string) string {
	base := strings.TrimRight(os.Getenv("API_BASE_URL"), "/")
	if base == "" {
		base = "http://localhost:8888"
	}
	return base + "/forms/fill/" + formID + "?ticketId=" + ticketID
}

// CreateTicket godoc
// @Summary      Create a ticket
// @Description  Create a ticket and mail the holder a link to the base form
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        body body models.CreateTicketRequest true "Ticket"
// @Success      201  {object}  models.Ticket
// @Failure      400  {object}  models.ErrorResponse
// @Router       /tickets [post]
func CreateTicket(c *fiber.Ctx) error {
	var req models.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	var formRef *primitive.ObjectID
	if req.InitialFormID != "" {
		oid, err := primitive.ObjectIDFromHex(req.InitialFormID)
		if err != nil {
			return utils.HandleError(c, fiber.StatusBadRequest, "Invalid initialFormId")
		}
		formRef = &oid
	}

	ticket, err := tickets.CreateTicket(c.Context(), req.Email, formRef, nil)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}

	if formRef != nil && ticket.Email != "" {
		link := formFillLink(formRef.Hex(), ticket.ID.Hex())
		email.NewNotifier().Notify(ticket.Email,
			"Please complete the base form",
			"Please complete the form: "+link)
	}

	return c.Status(fiber.StatusCreated).JSON(ticket)
}

// GetTicket retrieves a ticket by ID
func GetTicket(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ticket ID")
	}

	ticket, err := tickets.GetTicketByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, tickets.ErrTicketNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Ticket not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(ticket)
}

// AssignForm points a ticket at the next form its holder should fill
func AssignForm(c *fiber.Ctx) error {
	ticketID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ticket ID")
	}

	var req models.AssignFormRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	formID, err := primitive.ObjectIDFromHex(req.FormID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid form ID")
	}

	ticket, err := tickets.AssignFormToTicket(c.Context(), ticketID, formID)
	if err != nil {
		if errors.Is(err, tickets.ErrTicketNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Ticket not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}

	if ticket.Email != "" {
		link := formFillLink(formID.Hex(), ticket.ID.Hex())
		email.NewNotifier().Notify(ticket.Email,
			"Please complete the event-specific form",
			"Please complete the form: "+link)
	}

	return c.JSON(ticket)
}
