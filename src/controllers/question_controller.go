package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hasnainotho/formbrick-backend/src/models"
	"github.com/hasnainotho/formbrick-backend/src/services/forms"
	"github.com/hasnainotho/formbrick-backend/src/utils"
)

// CreateQuestions appends questions to an existing form
func CreateQuestions(c *fiber.Ctx) error {
	formID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid form ID")
	}

	var questions []models.Question
	if err := c.BodyParser(&questions); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	created, err := forms.CreateQuestions(c.Context(), formID, questions)
	if err != nil {
		if errors.Is(err, forms.ErrFormNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Form not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}

	ids := make([]string, 0, len(created))
	for _, q := range created {
		ids = append(ids, q.ID.Hex())
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"created": ids})
}

// UpdateQuestion applies an allow-listed partial update to a question
func UpdateQuestion(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid question ID")
	}

	var upd models.QuestionUpdate
	if err := c.BodyParser(&upd); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	question, err := forms.UpdateQuestion(c.Context(), id, &upd)
	if err != nil {
		if errors.Is(err, forms.ErrQuestionNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Question not found")
		}
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(question)
}

// DeleteQuestion removes a question
func DeleteQuestion(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid question ID")
	}

	if err := forms.DeleteQuestion(c.Context(), id); err != nil {
		if errors.Is(err, forms.ErrQuestionNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Question not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"ok": true})
}
