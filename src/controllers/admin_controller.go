package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hasnainotho/formbrick-backend/src/seeder"
	"github.com/hasnainotho/formbrick-backend/src/services/forms"
	"github.com/hasnainotho/formbrick-backend/src/utils"
)

type remapIn struct {
	Mappings map[string]string `json:"mappings"`
	DryRun   *bool             `json:"dryRun"`
}

// RemapFormConditions godoc
// @Summary      Remap conditional logic question references
// @Description  Rewrite conditionalLogic questionId references through an old-to-new mapping, with dry-run support
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id   path string  true "Form ID"
// @Param        body body remapIn true "Mappings and dry-run flag"
// @Success      200  {object}  models.RemapResult
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /admin/forms/{id}/remap-conditions [post]
func RemapFormConditions(c *fiber.Ctx) error {
	formID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid form ID")
	}

	var in remapIn
	if err := c.BodyParser(&in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if len(in.Mappings) == 0 {
		return utils.HandleError(c, fiber.StatusBadRequest, "mappings required")
	}

	// dry-run unless explicitly disabled
	dryRun := true
	if in.DryRun != nil {
		dryRun = *in.DryRun
	}

	result, err := forms.RemapFormConditions(c.Context(), formID, in.Mappings, dryRun)
	if err != nil {
		if errors.Is(err, forms.ErrFormNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Form not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(result)
}

// SeedSampleForms loads the demo forms used for manual testing
func SeedSampleForms(c *fiber.Ctx) error {
	created, err := seeder.SeedSampleForms(c.Context())
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"created": created})
}
