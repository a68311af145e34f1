package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// LoggerLocalKey holds the request-scoped *zap.Logger in Fiber's context locals.
const LoggerLocalKey = "logger"

// Logger logs each HTTP request as one structured line carrying request_id, method, path,
// status and latency in milliseconds. It also stores a logger tagged with the request id
// in the context locals for handlers to use.
func Logger(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		rid, _ := c.Locals(RequestIDLocalKey).(string)
		reqLog := log.With(zap.String("request_id", rid))
		c.Locals(LoggerLocalKey, reqLog)

		err := c.Next()

		status := statusOf(c, err)
		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Float64("latency", float64(time.Since(start).Microseconds())/1000),
		}
		switch {
		case status >= fiber.StatusInternalServerError:
			reqLog.Error("http_request", fields...)
		case status >= fiber.StatusBadRequest:
			reqLog.Warn("http_request", fields...)
		default:
			reqLog.Info("http_request", fields...)
		}
		return err
	}
}

// LoggerFromCtx returns the request-scoped logger, or a no-op logger outside Logger.
func LoggerFromCtx(c *fiber.Ctx) *zap.Logger {
	if l, ok := c.Locals(LoggerLocalKey).(*zap.Logger); ok && l != nil {
		return l
	}
	return zap.NewNop()
}
