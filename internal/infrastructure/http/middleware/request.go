package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// HeaderRequestID carries the per-request correlation ID
const HeaderRequestID = echo.HeaderXRequestID

// RequestID reuses the caller's X-Request-ID or assigns a new UUID, and echoes
// it on both the request and the response.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(HeaderRequestID)
			if id == "" {
				id = uuid.NewString()
				c.Request().Header.Set(HeaderRequestID, id)
			}
			c.Response().Header().Set(HeaderRequestID, id)
			return next(c)
		}
	}
}

// ZapLogger writes one structured line per request
func ZapLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			fields := []zap.Field{
				zap.String("request_id", req.Header.Get(HeaderRequestID)),
				zap.String("method", req.Method),
				zap.String("uri", req.RequestURI),
				zap.Int("status", res.Status),
				zap.Int64("bytes_out", res.Size),
				zap.Duration("latency", time.Since(start)),
			}

			switch {
			case res.Status >= 500:
				logger.Error("http.request", fields...)
			case res.Status >= 400:
				logger.Warn("http.request", fields...)
			default:
				logger.Info("http.request", fields...)
			}
			return nil
		}
	}
}
