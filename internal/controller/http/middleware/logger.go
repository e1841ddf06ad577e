package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/shortsync/shortsync/pkg/logger"
)

func Logger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()

		log.Info(ctx).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("-> New request")

		err := c.Next()

		// Different log level depending on status code
		var msg *zerolog.Event

		code := c.Response().StatusCode()
		switch {
		case code >= 400 && code < 500:
			msg = log.Warn(ctx)
		case code >= 500:
			msg = log.Error(ctx, errors.New(http.StatusText(code)))
		default:
			msg = log.Info(ctx)
		}

		msg.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("code", code).
			Str("status", http.StatusText(code))

		if qs := string(c.Request().URI().QueryString()); qs != "" {
			msg.Str("query", qs)
		}

		// Add request body
		if body := c.Body(); len(body) > 0 {
			if strings.Contains(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
				msg.RawJSON("request", body)
			} else {
				msg.Bytes("request", body)
			}
		}

		msg.Msg("<- Request handled")

		return err
	}
}
