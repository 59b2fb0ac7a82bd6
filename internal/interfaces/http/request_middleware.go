package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/restaurante-rb-api/pkg/logger"
)

const (
	// HeaderRequestID cabecera de correlación de peticiones.
	HeaderRequestID = "X-Request-ID"
	// LocalLogger key del logger por petición en c.Locals.
	LocalLogger = "logger"
)

// RequestLogger asigna un request id (o respeta el que llega), deja un logger con ese
// id en c.Locals y registra método, ruta, estado y duración al terminar.
func RequestLogger(log *logger.Logger) fiber.Handler {
	base := log.Component("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqID := c.Get(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(HeaderRequestID, reqID)

		reqLog := logger.Wrap(base.With().Str("request_id", reqID).Logger())
		c.Locals(LocalLogger, reqLog)

		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
		ev := reqLog.Info()
		if status >= fiber.StatusInternalServerError {
			ev = reqLog.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Msg("petición atendida")
		return err
	}
}

// requestLog devuelve el logger de la petición o uno nulo si no hay middleware.
func requestLog(c *fiber.Ctx) *logger.Logger {
	if l, ok := c.Locals(LocalLogger).(*logger.Logger); ok {
		return l
	}
	return logger.Nop()
}
