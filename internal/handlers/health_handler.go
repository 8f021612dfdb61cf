package handlers

import (
	"net/http"
	"time"

	"bank-transactions/internal/errors"
	"bank-transactions/internal/repositories"

	"github.com/labstack/echo/v4"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(transactionRepo repositories.TransactionRepositoryInterface) *HealthCheckHandler {
	return &HealthCheckHandler{transactionRepo: transactionRepo}
}

// HealthCheck reports store connectivity and the size of the working set
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,time=string,transactions=int} "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Service unavailable (store unreachable)"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	if err := h.transactionRepo.HealthCheck(); err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Transaction store unreachable"))
	}

	count, err := h.transactionRepo.Count()
	if err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Transaction store unreachable"))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":       "healthy",
		"time":         time.Now().UTC().Format(time.RFC3339),
		"transactions": count,
	})
}
