package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"emotions_api/pkg/metrics"
)

// RequestLogger returns middleware that attaches a request-scoped
// zerolog logger (keyed by X-Request-ID), logs every request and feeds
// the metrics registry.
func RequestLogger(reg *metrics.Registry) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			rid := req.Header.Get("X-Request-ID")
			if rid == "" {
				rid = uuid.NewString()
				c.Response().Header().Set("X-Request-ID", rid)
			}

			logger := log.With().
				Str("request_id", rid).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Logger()

			ctx := logger.WithContext(req.Context())
			c.SetRequest(req.WithContext(ctx))

			err := next(c)

			status := c.Response().Status
			duration := time.Since(start)

			if reg != nil {
				reg.Inc(ctx, "http_requests_total", map[string]string{
					"method": req.Method,
					"path":   req.URL.Path,
					"status": statusClass(status),
				})
			}

			if status >= 500 || err != nil {
				logger.Error().
					Err(err).
					Int("status", status).
					Dur("duration", duration).
					Msg("http request failed")
			} else {
				logger.Info().
					Int("status", status).
					Dur("duration", duration).
					Msg("http request served")
			}

			return err
		}
	}
}

func statusClass(code int) string {
	if code < 100 || code >= 600 {
		return "0"
	}
	return string(rune('0'+code/100)) + "xx"
}
