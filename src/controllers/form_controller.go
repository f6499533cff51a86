package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hasnainotho/formbrick-backend/src/models"
	"github.com/hasnainotho/formbrick-backend/src/services/forms"
	"github.com/hasnainotho/formbrick-backend/src/utils"
)

// CreateForm godoc
// @Summary      Create a new form
// @Description  Create a form together with its questions
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        body body models.CreateFormRequest true "Form and questions"
// @Success      201  {object}  models.FormWithQuestions
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /forms [post]
func CreateForm(c *fiber.Ctx) error {
	var req models.CreateFormRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	created, err := forms.CreateForm(c.Context(), &req)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetForms godoc
// @Summary      List forms
// @Description  List forms with pagination and an optional formType filter
// @Tags         forms
// @Produce      json
// @Param        formType query string false "Filter by form type"
// @Param        page     query int    false "Page number"
// @Param        limit    query int    false "Items per page"
// @Success      200  {object}  models.PaginatedFormsResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /forms [get]
func GetForms(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	result, err := forms.GetForms(c.Context(), c.Query("formType"), page, limit)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(result)
}

// GetFormByID godoc
// @Summary      Get a form by ID
// @Description  Get a form with its questions sorted by order index
// @Tags         forms
// @Produce      json
// @Param        id path string true "Form ID"
// @Success      200  {object}  models.FormWithQuestions
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{id} [get]
func GetFormByID(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid form ID")
	}

	form, err := forms.GetFormByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, forms.ErrFormNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Form not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(form)
}

// UpdateForm updates a form's editable attributes
func UpdateForm(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid form ID")
	}

	var req models.UpdateFormRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	form, err := forms.UpdateForm(c.Context(), id, &req)
	if err != nil {
		if errors.Is(err, forms.ErrFormNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Form not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(form)
}

// DeleteForm removes a form and its questions
func DeleteForm(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid form ID")
	}

	if err := forms.DeleteForm(c.Context(), id); err != nil {
		if errors.Is(err, forms.ErrFormNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Form not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"ok": true})
}
