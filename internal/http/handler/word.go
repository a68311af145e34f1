package handler

import (
	"github.com/gofiber/fiber/v2"

	"vocabapi/internal/model"
	"vocabapi/internal/service"
)

// CreateWord godoc
// @Summary Add a dictionary word
// @Tags words
// @Accept json
// @Param body body model.WordInput true "word"
// @Success 200 {object} successPayload
// @Failure 400,409 {object} errorPayload
// @Router /words [post]
func CreateWord(svc service.WordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.WordInput
		if err := decodeJSON(c, &in); err != nil {
			return writeServiceError(c, err)
		}
		w, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return writeSuccess(c, toWordResponse(*w), "word created")
	}
}

// GetWord godoc
// @Summary Get a dictionary word by business id
// @Tags words
// @Param businessId path string true "business id"
// @Success 200 {object} successPayload
// @Failure 404 {object} errorPayload
// @Router /words/{businessId} [get]
func GetWord(svc service.WordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		w, err := svc.Get(c.UserContext(), c.Params("businessId"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return writeSuccess(c, toWordResponse(*w), "word retrieved")
	}
}

// UpdateWord godoc
// @Summary Update the fields present in the body
// @Tags words
// @Accept json
// @Param businessId path string true "business id"
// @Success 200 {object} successPayload
// @Failure 400,404 {object} errorPayload
// @Router /words/{businessId} [put]
func UpdateWord(svc service.WordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var patch model.WordPatch
		if err := decodeJSON(c, &patch); err != nil {
			return writeServiceError(c, err)
		}
		w, err := svc.Update(c.UserContext(), c.Params("businessId"), patch)
		if err != nil {
			return writeServiceError(c, err)
		}
		return writeSuccess(c, toWordResponse(*w), "word updated")
	}
}
