package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/acecbt/acetoken/internal/pkg/logger"
	"github.com/labstack/echo/v4"
)

// PanicRecoveryMiddleware creates a middleware that recovers from panics,
// logs them with a stack trace, and returns a 500 response.
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, zapLogger)
				}
			}()

			return next(c)
		}
	}
}

// handlePanic handles the panic recovery, logging, and response
func handlePanic(c echo.Context, r interface{}, zapLogger *logger.ZapLogger) {
	stack := debug.Stack()

	zapLogger.Error("Panic recovered during request handling",
		logger.Any("panic", r),
		logger.String("method", c.Request().Method),
		logger.String("path", c.Request().URL.Path),
		logger.String("client_ip", c.RealIP()),
		logger.String("stacktrace", string(stack)),
	)

	if !c.Response().Committed {
		_ = c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   "Internal server error",
		})
	}
}
