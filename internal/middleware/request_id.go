package middleware

import (
	"regexp"

	"bank-transactions/internal/handlers"
	"bank-transactions/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	TraceIDHeader     = handlers.TraceIDHeader
	TraceIDContextKey = handlers.TraceIDContextKey
)

// Incoming trace IDs end up in logs and response headers, so only short
// token-like values are trusted
var traceIDPattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,128}$`)

// RequestID assigns every request a trace ID. A well-formed X-Trace-ID header
// is reused, otherwise a UUID is generated. The ID is echoed in the response
// header and carried on the request context as the import correlation ID.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			traceID := req.Header.Get(TraceIDHeader)
			if !traceIDPattern.MatchString(traceID) {
				traceID = uuid.New().String()
			}

			c.Set(TraceIDContextKey, traceID)
			c.SetRequest(req.WithContext(services.WithCorrelationID(req.Context(), traceID)))
			c.Response().Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

// GetTraceID returns the request's trace ID, or "unknown" outside RequestID
func GetTraceID(c echo.Context) string {
	if traceID, ok := c.Get(TraceIDContextKey).(string); ok && traceID != "" {
		return traceID
	}
	return "unknown"
}
