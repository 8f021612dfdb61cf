package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"bank-transactions/internal/models"
	"bank-transactions/internal/parser"
	"bank-transactions/internal/repositories"
	"bank-transactions/internal/repositories/repository_mocks"
	"bank-transactions/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const testStatementPath = "statements/december.json"

type ImportServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockParser          *service_mocks.MockTransactionParserInterface
	mockTransactionRepo *repository_mocks.MockTransactionRepositoryInterface
	mockLogger          *service_mocks.MockImportLoggerInterface
	mockMetrics         *service_mocks.MockMetricsRecorderInterface
	service             ImportServiceInterface
}

func (s *ImportServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockParser = service_mocks.NewMockTransactionParserInterface(s.ctrl)
	s.mockTransactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.mockLogger = service_mocks.NewMockImportLoggerInterface(s.ctrl)
	s.mockMetrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.service = NewImportService(s.mockParser, s.mockTransactionRepo, s.mockLogger, s.mockMetrics, testStatementPath)
}

func (s *ImportServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestImportServiceSuite(t *testing.T) {
	suite.Run(t, new(ImportServiceTestSuite))
}

func (s *ImportServiceTestSuite) expectFailure(reason string) {
	s.mockLogger.EXPECT().LogImportFailed(gomock.Any(), gomock.Any(), testStatementPath, gomock.Any(), gomock.Any())
	s.mockMetrics.EXPECT().IncrementCounter(MetricImportFailed, map[string]string{"reason": reason})
	s.mockMetrics.EXPECT().RecordProcessingTime(MetricImportDuration, gomock.Any())
}

func (s *ImportServiceTestSuite) TestImportDefault_Success() {
	transactions := sampleTransactions()

	gomock.InOrder(
		s.mockLogger.EXPECT().LogImportStarted(gomock.Any(), gomock.Any(), testStatementPath),
		s.mockParser.EXPECT().ParseFile(testStatementPath).Return(transactions, nil),
		s.mockTransactionRepo.EXPECT().SaveAll(transactions).Return(nil),
		s.mockLogger.EXPECT().LogImportCompleted(gomock.Any(), gomock.Any(), testStatementPath, len(transactions), gomock.Any()),
	)
	s.mockMetrics.EXPECT().IncrementCounter(MetricImportSucceeded, gomock.Nil())
	s.mockMetrics.EXPECT().RecordProcessingTime(MetricImportDuration, gomock.Any())
	s.mockMetrics.EXPECT().RecordGauge(MetricImportedRows, float64(len(transactions)), gomock.Nil())
	s.mockMetrics.EXPECT().RecordGauge(MetricStoredRows, float64(len(transactions)), gomock.Nil())

	batch, err := s.service.ImportDefault(context.Background())

	s.Require().NoError(err)
	s.Equal(testStatementPath, batch.Source)
	s.Equal(len(transactions), batch.Count)
	s.NotEmpty(batch.ID.String())
	s.False(batch.ImportedAt.IsZero())
}

func (s *ImportServiceTestSuite) TestImportFile_ParserErrorsAreNotStored() {
	testCases := []struct {
		name   string
		err    error
		reason string
	}{
		{"unreadable", fmt.Errorf("%w: open wrong: no such file", parser.ErrFileUnreadable), "unreadable"},
		{"unparseable", fmt.Errorf("%w: unexpected EOF", parser.ErrFileUnparseable), "unparseable"},
		{"field invalid", &parser.FieldError{Index: 2, Field: "type", Value: gofakeit.Word(), Reason: "must be one of CARD, DIRECT_DEBIT, INTERNET"}, "field_invalid"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockLogger.EXPECT().LogImportStarted(gomock.Any(), gomock.Any(), testStatementPath)
			s.mockParser.EXPECT().ParseFile(testStatementPath).Return(nil, tc.err)
			s.mockTransactionRepo.EXPECT().SaveAll(gomock.Any()).Times(0)
			s.expectFailure(tc.reason)

			batch, err := s.service.ImportFile(context.Background(), testStatementPath)

			s.Nil(batch)
			s.ErrorIs(err, tc.err)
		})
	}
}

func (s *ImportServiceTestSuite) TestImportFile_StoreError() {
	storeErr := errors.New("disk full")
	transactions := sampleTransactions()

	s.mockLogger.EXPECT().LogImportStarted(gomock.Any(), gomock.Any(), testStatementPath)
	s.mockParser.EXPECT().ParseFile(testStatementPath).Return(transactions, nil)
	s.mockTransactionRepo.EXPECT().SaveAll(transactions).Return(storeErr)
	s.expectFailure("store")

	batch, err := s.service.ImportFile(context.Background(), testStatementPath)

	s.Nil(batch)
	s.ErrorIs(err, storeErr)
	s.Contains(err.Error(), "failed to store imported transactions")
}

func (s *ImportServiceTestSuite) TestImportFile_CancelledBeforeStore() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s.mockLogger.EXPECT().LogImportStarted(gomock.Any(), gomock.Any(), testStatementPath)
	s.mockParser.EXPECT().ParseFile(testStatementPath).Return(sampleTransactions(), nil)
	s.mockTransactionRepo.EXPECT().SaveAll(gomock.Any()).Times(0)
	s.expectFailure("cancelled")

	_, err := s.service.ImportFile(ctx, testStatementPath)

	s.ErrorIs(err, context.Canceled)
}

func (s *ImportServiceTestSuite) TestImportFile_EmptyPath() {
	batch, err := s.service.ImportFile(context.Background(), "")

	s.Nil(batch)
	s.ErrorIs(err, ErrImportPathRequired)
}

func TestImportService_RoundTripThroughMemoryStore(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "statement.json")
	content := `[
		{"date": "06/Dec/2021", "vendor": "Vendor1", "type": "INTERNET", "amount": "845.03", "category": "Groceries"},
		{"date": "18/Nov/2020", "vendor": "Vendor2", "type": "CARD", "amount": "75.03", "category": "MyMonthlyDD"},
		{"date": "05/Mar/2020", "vendor": "Vendor5", "type": "CARD", "amount": "877.03"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	repo := repositories.NewMemoryTransactionRepository()
	service := NewImportService(parser.NewParser(), repo, NewImportLogger(nil), nil, path)

	batch, err := service.ImportDefault(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, batch.Count)

	query := NewTransactionQueryService(repo, nil)
	transactions, err := query.ListTransactions(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Vendor1", "Vendor2", "Vendor5"}, vendors(transactions))
	assert.Equal(t, models.Uncategorized, transactions[2].Category)

	_, err = service.ImportFile(context.Background(), filepath.Join(dir, "missing.json"))
	require.ErrorIs(t, err, parser.ErrFileUnreadable)

	transactions, err = query.ListTransactions(nil)
	require.NoError(t, err)
	assert.Len(t, transactions, 3, "a failed import keeps the previous working set")
}
