package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"vocabapi/internal/service"
)

// statusOf returns the status the client will see. When a handler returns an error the
// response has not been written yet; the global error handler derives the status from it.
func statusOf(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	if se, ok := service.AsError(err); ok {
		return se.Status
	}
	return fiber.StatusInternalServerError
}
