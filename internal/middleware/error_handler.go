package middleware

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"bank-transactions/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var apiErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "api_errors_total",
		Help: "Total number of API errors by code, route and status",
	},
	[]string{"code", "route", "status"},
)

// CustomHTTPErrorHandler renders every error that reaches Echo as the
// standard error envelope. Validator errors become VALIDATION_001 with one
// "field: message" detail per failing field; anything unrecognised is a
// SYSTEM_001 whose cause is only logged.
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := GetTraceID(c)
	errorResponse, status := toErrorResponse(err, traceID)

	level := slog.LevelWarn
	if errorResponse.IsServerError() {
		level = slog.LevelError
	}
	slog.Log(c.Request().Context(), level, "request error",
		"trace_id", traceID,
		"error_code", errorResponse.Error.Code,
		"status", status,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", err.Error(),
	)

	apiErrorsTotal.WithLabelValues(errorResponse.Error.Code, c.Path(), strconv.Itoa(status)).Inc()

	if sendErr := c.JSON(status, errorResponse); sendErr != nil {
		slog.Error("failed to send error response",
			"response", errorResponse.String(),
			"error", sendErr.Error(),
		)
	}
}

func toErrorResponse(err error, traceID string) (*errors.ErrorResponse, int) {
	var httpErr *echo.HTTPError
	if stderrors.As(err, &httpErr) {
		resp := errors.NewErrorResponse(
			codeForStatus(httpErr.Code),
			traceID,
			errors.WithMessage(fmt.Sprintf("%v", httpErr.Message)),
		)
		return resp, httpErr.Code
	}

	var validationErrs validator.ValidationErrors
	if stderrors.As(err, &validationErrs) {
		fields := make(map[string]string, len(validationErrs))
		for _, fe := range validationErrs {
			fields[fe.Field()] = formatValidationError(fe)
		}
		return errors.NewValidationError(fields, traceID), http.StatusBadRequest
	}

	resp, _ := errors.WrapSystemError(err, traceID)
	return resp, resp.GetHTTPStatus()
}

// codeForStatus picks the envelope code for errors Echo raises itself
// (unknown routes, bad methods, rate limiting, oversized bodies).
func codeForStatus(status int) errors.ErrorCode {
	switch status {
	case http.StatusBadRequest:
		return errors.ValidationInvalidFormat
	case http.StatusNotFound:
		return errors.SystemRouteNotFound
	case http.StatusMethodNotAllowed, http.StatusUnprocessableEntity:
		return errors.ValidationGeneral
	case http.StatusRequestEntityTooLarge:
		return errors.ValidationOutOfRange
	case http.StatusTooManyRequests:
		return errors.SystemRateLimitExceeded
	case http.StatusInternalServerError:
		return errors.SystemInternalError
	case http.StatusServiceUnavailable:
		return errors.SystemServiceUnavailable
	default:
		return errors.SystemUnexpectedError
	}
}

func formatValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "statement_date":
		return "must match dd/Mon/yyyy, e.g. 06/Dec/2021"
	case "transaction_type":
		return "must be one of CARD, DIRECT_DEBIT, INTERNET"
	case "decimal_amount":
		return "must be a decimal number"
	case "spend_mode":
		return "must be one of lowest, highest"
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}
