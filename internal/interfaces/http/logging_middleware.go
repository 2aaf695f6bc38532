package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/hwelikannage/pos-api/pkg/logger"
)

// RequestLogger tags every request with a generated id (echoed in the
// X-Request-Id header) and logs method, path, status and duration.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("X-Request-Id", requestID)

		start := time.Now()
		err := c.Next()

		event := log.Info()
		if err != nil || c.Response().StatusCode() >= fiber.StatusInternalServerError {
			event = log.Error()
		}
		event.
			Str("request_id", requestID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("request")
		return err
	}
}
