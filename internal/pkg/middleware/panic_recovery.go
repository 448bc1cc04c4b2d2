package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/hoopspot/hoopspot/internal/pkg/logger"
	"github.com/hoopspot/hoopspot/internal/utils"
)

// PanicRecovery returns a middleware that recovers from panics, logs the
// stack and responds with a 500 instead of crashing the process.
func PanicRecovery(appLogger *logger.AppLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					appLogger.WithFields(logrus.Fields{
						"panic":  fmt.Sprintf("%v", r),
						"stack":  string(debug.Stack()),
						"method": c.Request().Method,
						"path":   c.Request().URL.Path,
					}).Error("panic recovered")

					err = utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Internal server error")
				}
			}()
			return next(c)
		}
	}
}
