package handlers

import (
	"log/slog"
	"net/http"

	"bank-transactions/internal/errors"

	"github.com/labstack/echo/v4"
)

// Handlers report failures through SendError (client and lookup failures)
// or SendSystemError (anything whose cause must stay server-side).
// Validator errors are returned as-is for the HTTP error handler to render.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
	// TraceIDHeader carries the trace ID on requests and responses
	TraceIDHeader = "X-Trace-ID"
)

// getTraceID extracts the trace ID set by the request ID middleware, falling
// back to the X-Trace-ID header for handlers mounted without it
func getTraceID(c echo.Context) string {
	if traceID, ok := c.Get(TraceIDContextKey).(string); ok && traceID != "" {
		return traceID
	}
	if traceID := c.Request().Header.Get(TraceIDHeader); traceID != "" {
		return traceID
	}
	return "unknown"
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, internalErr := errors.WrapSystemError(err, traceID)
	slog.ErrorContext(c.Request().Context(), "request failed",
		"trace_id", traceID,
		"path", c.Request().URL.Path,
		"error", internalErr,
	)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}
