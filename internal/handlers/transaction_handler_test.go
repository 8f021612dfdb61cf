package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"bank-transactions/internal/dto"
	"bank-transactions/internal/errors"
	"bank-transactions/internal/models"
	"bank-transactions/internal/services"
	"bank-transactions/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionHandlerTestSuite struct {
	suite.Suite
	echo             *echo.Echo
	ctrl             *gomock.Controller
	mockQueryService *service_mocks.MockTransactionQueryServiceInterface
	handler          *TransactionHandler
}

func TestTransactionHandlerSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}

func (s *TransactionHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.ctrl = gomock.NewController(s.T())
	s.mockQueryService = service_mocks.NewMockTransactionQueryServiceInterface(s.ctrl)
	s.handler = NewTransactionHandler(s.mockQueryService)
}

func (s *TransactionHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TransactionHandlerTestSuite) newContext(target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "test-trace")
	return c, rec
}

func (s *TransactionHandlerTestSuite) decodeError(rec *httptest.ResponseRecorder) errors.ErrorResponse {
	var response errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

func newTransaction(date string, category string, amount string) models.Transaction {
	parsed, _ := models.ParseStatementDate(date)
	return models.Transaction{
		ID:       uuid.New(),
		Date:     parsed,
		Vendor:   gofakeit.Company(),
		Type:     models.TransactionTypeCard,
		Amount:   decimal.RequireFromString(amount),
		Category: category,
	}
}

func (s *TransactionHandlerTestSuite) TestListTransactions_WithoutCategory() {
	transactions := []models.Transaction{
		newTransaction("06/Dec/2021", "Groceries", "845.03"),
		newTransaction("05/Mar/2020", "", "877.03"),
	}
	s.mockQueryService.EXPECT().ListTransactions(gomock.Nil()).Return(transactions, nil)

	c, rec := s.newContext("/api/v1/transactions")
	err := s.handler.ListTransactions(c)

	s.Require().NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response dto.ListTransactionsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(2, response.Count)
	s.Nil(response.Category)
	s.Equal("2021-12-06", response.Transactions[0].Date)
	s.Equal("845.03", response.Transactions[0].Amount)
	s.Equal("", response.Transactions[1].Category)
}

func (s *TransactionHandlerTestSuite) TestListTransactions_WithCategory() {
	s.mockQueryService.EXPECT().
		ListTransactions(gomock.Any()).
		DoAndReturn(func(category *string) ([]models.Transaction, error) {
			s.Require().NotNil(category)
			s.Equal(" groceries ", *category)
			return []models.Transaction{newTransaction("06/Dec/2021", "Groceries", "845.03")}, nil
		})

	c, rec := s.newContext("/api/v1/transactions?category=%20groceries%20")
	err := s.handler.ListTransactions(c)

	s.Require().NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response dto.ListTransactionsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(1, response.Count)
	s.Require().NotNil(response.Category)
}

func (s *TransactionHandlerTestSuite) TestListTransactions_EmptyCategoryIsAFilter() {
	s.mockQueryService.EXPECT().
		ListTransactions(gomock.Any()).
		DoAndReturn(func(category *string) ([]models.Transaction, error) {
			s.Require().NotNil(category)
			s.Equal("", *category)
			return []models.Transaction{}, nil
		})

	c, rec := s.newContext("/api/v1/transactions?category=")
	s.Require().NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *TransactionHandlerTestSuite) TestListTransactions_StoreError() {
	s.mockQueryService.EXPECT().ListTransactions(gomock.Nil()).Return(nil, fmt.Errorf("failed to load transactions: %w", fmt.Errorf("database is locked")))

	c, rec := s.newContext("/api/v1/transactions")
	s.Require().NoError(s.handler.ListTransactions(c))

	s.Equal(http.StatusInternalServerError, rec.Code)
	response := s.decodeError(rec)
	s.Equal(string(errors.SystemInternalError), response.Error.Code)
	s.Equal("test-trace", response.Error.TraceID)
}

func (s *TransactionHandlerTestSuite) TestCategoryTotals() {
	s.mockQueryService.EXPECT().CategorySummaries().Return([]models.CategorySummary{
		{Category: "", TransactionCount: 1, TotalAmount: decimal.RequireFromString("877.03")},
		{Category: "MyMonthlyDD", TransactionCount: 3, TotalAmount: decimal.RequireFromString("2325.09")},
	}, nil)

	c, rec := s.newContext("/api/v1/transactions/totals")
	s.Require().NoError(s.handler.CategoryTotals(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.CategoryTotalsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Require().Len(response.Totals, 2)
	s.Equal("MyMonthlyDD", response.Totals[1].Category)
	s.Equal("2325.09", response.Totals[1].Total)
	s.Equal(int64(3), response.Totals[1].TransactionCount)
}

func (s *TransactionHandlerTestSuite) TestMonthlyAverage() {
	s.mockQueryService.EXPECT().MonthlyAverageForCategory("MyMonthlyDD").Return(&models.CategoryAverage{
		Category:   "MyMonthlyDD",
		Average:    decimal.RequireFromString("775.03"),
		MonthCount: 3,
	}, nil)

	c, rec := s.newContext("/api/v1/transactions/monthly-average?category=MyMonthlyDD")
	s.Require().NoError(s.handler.MonthlyAverage(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.MonthlyAverageResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("775.03", response.Average)
	s.Equal(3, response.MonthCount)
}

func (s *TransactionHandlerTestSuite) TestMonthlyAverage_UnknownCategoryIsZero() {
	s.mockQueryService.EXPECT().MonthlyAverageForCategory("Holidays").Return(&models.CategoryAverage{
		Category: "Holidays",
		Average:  decimal.Zero,
	}, nil)

	c, rec := s.newContext("/api/v1/transactions/monthly-average?category=Holidays")
	s.Require().NoError(s.handler.MonthlyAverage(c))

	var response dto.MonthlyAverageResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("0.00", response.Average)
	s.Equal(0, response.MonthCount)
}

func (s *TransactionHandlerTestSuite) TestMonthlyAverage_MissingCategory() {
	c, rec := s.newContext("/api/v1/transactions/monthly-average")
	s.Require().NoError(s.handler.MonthlyAverage(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(errors.ValidationRequiredField), s.decodeError(rec).Error.Code)
}

func (s *TransactionHandlerTestSuite) TestHighestSpend() {
	txn := newTransaction("12/Mar/2020", "MyMonthlyDD", "1475.03")
	s.mockQueryService.EXPECT().HighestSpend("MyMonthlyDD", 2020).Return(&txn, nil)

	c, rec := s.newContext("/api/v1/transactions/highest-spend?category=MyMonthlyDD&year=2020")
	s.Require().NoError(s.handler.HighestSpend(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.TransactionResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(txn.ID, response.ID)
	s.Equal("1475.03", response.Amount)
	s.Equal("2020-03-12", response.Date)
	s.Equal("CARD", response.Type)
}

func (s *TransactionHandlerTestSuite) TestLowestSpend_EmptyCategory() {
	txn := newTransaction("05/Mar/2020", "", "877.03")
	s.mockQueryService.EXPECT().LowestSpend("", 2020).Return(&txn, nil)

	c, rec := s.newContext("/api/v1/transactions/lowest-spend?category=&year=2020")
	s.Require().NoError(s.handler.LowestSpend(c))

	s.Equal(http.StatusOK, rec.Code)
}

func (s *TransactionHandlerTestSuite) TestLowestSpend_NoMatch() {
	s.mockQueryService.EXPECT().LowestSpend("MyMonthlyDD", 2000).
		Return(nil, fmt.Errorf("%w: category %q, year %d", services.ErrNoMatchingTransaction, "MyMonthlyDD", 2000))

	c, rec := s.newContext("/api/v1/transactions/lowest-spend?category=MyMonthlyDD&year=2000")
	s.Require().NoError(s.handler.LowestSpend(c))

	s.Equal(http.StatusNotFound, rec.Code)
	response := s.decodeError(rec)
	s.Equal(string(errors.TransactionNoMatch), response.Error.Code)
	s.Equal([]string{`category "MyMonthlyDD" has no transactions in 2000`}, response.Error.Details)
}

func (s *TransactionHandlerTestSuite) TestHighestSpend_InvalidParameters() {
	testCases := []struct {
		name       string
		target     string
		wantStatus int
		wantCode   errors.ErrorCode
	}{
		{"missing category", "/api/v1/transactions/highest-spend?year=2020", http.StatusBadRequest, errors.ValidationRequiredField},
		{"non numeric year", "/api/v1/transactions/highest-spend?category=x&year=twenty", http.StatusBadRequest, errors.ValidationInvalidFormat},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c, rec := s.newContext(tc.target)
			s.Require().NoError(s.handler.HighestSpend(c))

			s.Equal(tc.wantStatus, rec.Code)
			s.Equal(string(tc.wantCode), s.decodeError(rec).Error.Code)
		})
	}
}

func (s *TransactionHandlerTestSuite) TestHighestSpend_MissingYearFailsValidation() {
	c, _ := s.newContext("/api/v1/transactions/highest-spend?category=MyMonthlyDD")
	err := s.handler.HighestSpend(c)

	s.Require().Error(err)
	s.IsType(validator.ValidationErrors{}, err)
}
