package handler

import (
	"github.com/gofiber/fiber/v2"

	"vocabapi/internal/http/middleware"
)

// CurrentUser godoc
// @Summary The identity every request runs as
// @Tags users
// @Success 200 {object} successPayload
// @Router /me [get]
func CurrentUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return writeSuccess(c, toUserResponse(*middleware.UserFromCtx(c)), "current user")
	}
}
