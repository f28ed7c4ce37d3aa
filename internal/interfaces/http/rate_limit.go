package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/ulule/limiter/v3"

	"github.com/jhoicas/Styllo-POS/internal/application/dto"
	"github.com/jhoicas/Styllo-POS/pkg/logger"
)

// RateLimit limita por IP con un limiter de ulule (store en memoria o Redis).
func RateLimit(l *limiter.Limiter, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ip := c.IP()
		lc, err := l.Get(c.UserContext(), ip)
		if err != nil {
			// Si el store falla se deja pasar la petición.
			log.Error().Err(err).Str("ip", ip).Msg("rate limit indisponível")
			return c.Next()
		}
		c.Set("X-RateLimit-Limit", strconv.FormatInt(lc.Limit, 10))
		c.Set("X-RateLimit-Remaining", strconv.FormatInt(lc.Remaining, 10))
		c.Set("X-RateLimit-Reset", strconv.FormatInt(lc.Reset, 10))
		if lc.Reached {
			log.Warn().Str("ip", ip).Int64("limit", lc.Limit).Msg("rate limit excedido")
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{Code: "TOO_MANY_REQUESTS", Message: "muitas tentativas, tente novamente mais tarde"})
		}
		return c.Next()
	}
}
