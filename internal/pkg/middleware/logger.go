package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/hoopspot/hoopspot/internal/pkg/logger"
)

// RequestLogger logs each request with method, path, status and latency
func RequestLogger(appLogger *logger.AppLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			entry := appLogger.WithFields(logrus.Fields{
				"method":     c.Request().Method,
				"path":       c.Request().URL.Path,
				"status":     c.Response().Status,
				"latency_ms": time.Since(start).Milliseconds(),
				"remote_ip":  c.RealIP(),
			})

			if err != nil {
				entry.WithError(err).Error("request failed")
			} else if c.Response().Status >= 500 {
				entry.Error("request completed")
			} else {
				entry.Info("request completed")
			}

			return nil
		}
	}
}
