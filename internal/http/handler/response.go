package handler

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"

	"vocabapi/internal/service"
)

// successPayload is the success envelope.
type successPayload struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	RequestID string `json:"request_id"`
}

func writeSuccess(c *fiber.Ctx, data any, message string) error {
	return c.Status(fiber.StatusOK).JSON(successPayload{
		Success:   true,
		Data:      data,
		Message:   message,
		Timestamp: timestamp(),
		RequestID: requestIDFromCtx(c),
	})
}

var errInvalidBody = &service.Error{
	Status:  fiber.StatusBadRequest,
	Code:    service.CodeValidation,
	Message: "request body must be a JSON object",
}

// decodeJSON reads the request body into v. An empty body decodes as {} so a missing
// patch surfaces as NO_UPDATE_FIELDS rather than a parse error.
func decodeJSON(c *fiber.Ctx, v any) error {
	body := c.Body()
	if len(strings.TrimSpace(string(body))) == 0 {
		body = []byte("{}")
	}
	if err := json.Unmarshal(body, v); err != nil {
		e := *errInvalidBody
		e.Err = err
		return &e
	}
	return nil
}

// pageParams reads ?limit and ?skip.
func pageParams(c *fiber.Ctx) (service.PageParams, error) {
	return service.ParsePageParams(c.Query("limit"), c.Query("skip"))
}
