package handlers

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"bank-transactions/internal/dto"
	"bank-transactions/internal/errors"
	"bank-transactions/internal/models"
	"bank-transactions/internal/services"

	"github.com/labstack/echo/v4"
)

// TransactionHandler handles transaction query HTTP requests
type TransactionHandler struct {
	queryService services.TransactionQueryServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(queryService services.TransactionQueryServiceInterface) *TransactionHandler {
	return &TransactionHandler{
		queryService: queryService,
	}
}

// ListTransactions lists stored transactions
// @Summary List transactions
// @Description Without a category every transaction is returned in import order.
// @Description With a category (possibly empty) the matching transactions are returned latest first.
// @Tags Transactions
// @Produce json
// @Param category query string false "Category, matched case-insensitively after trimming"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	var category *string
	if c.QueryParams().Has("category") {
		value := c.QueryParam("category")
		category = &value
	}

	transactions, err := h.queryService.ListTransactions(category)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewListTransactionsResponse(transactions, category))
}

// CategoryTotals returns the spend total of every stored category
// @Summary Totals per category
// @Tags Transactions
// @Produce json
// @Success 200 {object} dto.CategoryTotalsResponse
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/totals [get]
func (h *TransactionHandler) CategoryTotals(c echo.Context) error {
	summaries, err := h.queryService.CategorySummaries()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewCategoryTotalsResponse(summaries))
}

// MonthlyAverage returns the average monthly spend of a category
// @Summary Monthly average spend
// @Description Months without transactions are not counted. A category with no transactions averages 0.00.
// @Tags Transactions
// @Produce json
// @Param category query string true "Category"
// @Success 200 {object} dto.MonthlyAverageResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_002 - category is required"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/monthly-average [get]
func (h *TransactionHandler) MonthlyAverage(c echo.Context) error {
	if !c.QueryParams().Has("category") {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("category: is required"))
	}

	average, err := h.queryService.MonthlyAverageForCategory(c.QueryParam("category"))
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewMonthlyAverageResponse(average))
}

// HighestSpend returns the largest transaction of a category within a year
// @Summary Highest spend
// @Tags Transactions
// @Produce json
// @Param category query string true "Category"
// @Param year query int true "Calendar year"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid parameters"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - No matching transaction"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/highest-spend [get]
func (h *TransactionHandler) HighestSpend(c echo.Context) error {
	return h.extremalSpend(c, h.queryService.HighestSpend)
}

// LowestSpend returns the smallest transaction of a category within a year
// @Summary Lowest spend
// @Tags Transactions
// @Produce json
// @Param category query string true "Category"
// @Param year query int true "Calendar year"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid parameters"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - No matching transaction"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/lowest-spend [get]
func (h *TransactionHandler) LowestSpend(c echo.Context) error {
	return h.extremalSpend(c, h.queryService.LowestSpend)
}

func (h *TransactionHandler) extremalSpend(c echo.Context, lookup func(category string, year int) (*models.Transaction, error)) error {
	if !c.QueryParams().Has("category") {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("category: is required"))
	}

	var params dto.SpendQueryParams
	if err := c.Bind(&params); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("year: must be an integer"))
	}
	if err := c.Validate(&params); err != nil {
		return err
	}

	txn, err := lookup(params.Category, params.Year)
	if err != nil {
		if stderrors.Is(err, services.ErrNoMatchingTransaction) {
			return SendError(c, errors.TransactionNoMatch, errors.WithDetails(
				fmt.Sprintf("category %q has no transactions in %d", params.Category, params.Year)))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTransactionResponse(*txn))
}
