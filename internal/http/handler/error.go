package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"vocabapi/internal/http/middleware"
	"vocabapi/internal/service"
)

// errorPayload is the failure envelope.
type errorPayload struct {
	Success   bool   `json:"success"`
	Code      string `json:"code"`
	Message   string `json:"message"`
	Field     string `json:"field,omitempty"`
	Timestamp string `json:"timestamp"`
	RequestID string `json:"request_id"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// writeError writes a failure envelope. message must be safe to show to clients.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return writeFieldError(c, status, code, message, "")
}

func writeFieldError(c *fiber.Ctx, status int, code, message, field string) error {
	return c.Status(status).JSON(errorPayload{
		Success:   false,
		Code:      code,
		Message:   message,
		Field:     field,
		Timestamp: timestamp(),
		RequestID: requestIDFromCtx(c),
	})
}

// writeServiceError renders a service failure. Anything that is not a *service.Error is
// treated as internal; internal causes are logged and never sent to the client.
func writeServiceError(c *fiber.Ctx, err error) error {
	se, ok := service.AsError(err)
	if !ok {
		se = service.Internal(err)
	}
	if se.Code == service.CodeInternal {
		middleware.LoggerFromCtx(c).Error("request_failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(se.Err),
		)
	}
	return writeFieldError(c, se.Status, se.Code, se.Message, se.Field)
}

// ErrorHandler returns a Fiber global error handler producing the failure envelope for
// routing errors, oversized bodies and errors returned by middleware.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if _, ok := service.AsError(err); ok {
			return writeServiceError(c, err)
		}

		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, service.CodeNotFound, "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, service.CodeImageTooLarge, "request body too large")
		case fiber.StatusUnsupportedMediaType:
			return writeError(c, status, "UNSUPPORTED_MEDIA_TYPE", "unsupported media type")
		default:
			if fe == nil {
				return writeServiceError(c, err)
			}
			return writeError(c, status, service.CodeInternal, "internal server error")
		}
	}
}
