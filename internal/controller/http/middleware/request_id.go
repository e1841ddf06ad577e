package middleware

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/shortsync/shortsync/pkg/logger"
)

type requestIDKey struct{}

func RequestID(log *logger.Logger) fiber.Handler {
	log.RegisterHook(func(ctx context.Context) (string, string) {
		if val, ok := ctx.Value(requestIDKey{}).(string); ok {
			return "request_id", val
		}
		return "request_id", ""
	})

	return func(c *fiber.Ctx) error {
		ctx := context.WithValue(c.UserContext(), requestIDKey{}, uuid.NewString())
		c.SetUserContext(ctx)
		return c.Next()
	}
}
