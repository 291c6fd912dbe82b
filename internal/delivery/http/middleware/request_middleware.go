package middleware

import (
	"log/slog"

	deliverycontext "markethub/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// RequestContext is middleware that stamps every request with a request ID
// and a request-scoped logger, both reachable from the standard context so
// the application layer can log with request correlation.
func RequestContext(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
			if requestID == "" {
				requestID = deliverycontext.GetRequestID(c)
			}
			deliverycontext.SetRequestID(c, requestID)
			c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

			requestLogger := logger.With(slog.String("requestID", requestID))
			ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
			ctx = deliverycontext.WithLogger(ctx, requestLogger)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
