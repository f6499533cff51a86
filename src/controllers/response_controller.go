package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hasnainotho/formbrick-backend/src/models"
	"github.com/hasnainotho/formbrick-backend/src/services/forms"
	"github.com/hasnainotho/formbrick-backend/src/services/responses"
	"github.com/hasnainotho/formbrick-backend/src/utils"
)

// SubmitResponse godoc
// @Summary      Submit a form response
// @Description  Persist a response with its answers and run the conditional-logic workflow pass
// @Tags         responses
// @Accept       json
// @Produce      json
// @Param        body body models.SubmitResponseRequest true "Response and answers"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /responses [post]
func SubmitResponse(c *fiber.Ctx) error {
	var req models.SubmitResponseRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	response, workflowResult, err := responses.SubmitResponse(c.Context(), &req)
	if err != nil {
		if errors.Is(err, forms.ErrFormNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Form not found")
		}
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	body := fiber.Map{"response": fiber.Map{"id": response.ID.Hex(), "status": response.Status}}
	if workflowResult != nil && workflowResult.NextFormID != "" {
		body["nextFormId"] = workflowResult.NextFormID
	}
	return c.Status(fiber.StatusCreated).JSON(body)
}

// GetResponses lists responses for a form
func GetResponses(c *fiber.Ctx) error {
	formIDHex := c.Query("formId")
	if formIDHex == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "formId is required")
	}
	formID, err := primitive.ObjectIDFromHex(formIDHex)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid form ID")
	}

	list, err := responses.GetResponsesByForm(c.Context(), formID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"responses": list})
}

// GetResponse retrieves one response with its answers
func GetResponse(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid response ID")
	}

	response, err := responses.GetResponse(c.Context(), id)
	if err != nil {
		if errors.Is(err, responses.ErrResponseNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Response not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(response)
}

// UpdateResponse applies an allow-listed partial update to a response
func UpdateResponse(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid response ID")
	}

	var upd models.ResponseUpdate
	if err := c.BodyParser(&upd); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	response, err := responses.UpdateResponse(c.Context(), id, &upd)
	if err != nil {
		if errors.Is(err, responses.ErrResponseNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Response not found")
		}
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(response)
}

// UpdateAnswers replaces the response's answers
func UpdateAnswers(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid response ID")
	}

	var in []models.AnswerIn
	if err := c.BodyParser(&in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	answers, err := responses.UpdateAnswers(c.Context(), id, in)
	if err != nil {
		if errors.Is(err, responses.ErrResponseNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Response not found")
		}
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	ids := make([]string, 0, len(answers))
	for _, a := range answers {
		ids = append(ids, a.ID.Hex())
	}
	return c.JSON(fiber.Map{"updated": ids})
}

// ApproveResponse records an approval decision on a response
func ApproveResponse(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid response ID")
	}

	var req models.ApproveRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	response, err := responses.ApproveResponse(c.Context(), id, req.Approve)
	if err != nil {
		if errors.Is(err, responses.ErrResponseNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Response not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"response": fiber.Map{"id": response.ID.Hex(), "status": response.Status}})
}
