package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"bank-transactions/internal/errors"
	"bank-transactions/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck_Healthy(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repository_mocks.NewMockTransactionRepositoryInterface(ctrl)
	repo.EXPECT().HealthCheck().Return(nil)
	repo.EXPECT().Count().Return(int64(18), nil)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

	require.NoError(t, NewHealthCheckHandler(repo).HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, float64(18), body["transactions"])
}

func TestHealthCheck_StoreUnreachable(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repository_mocks.NewMockTransactionRepositoryInterface(ctrl)
	repo.EXPECT().HealthCheck().Return(fmt.Errorf("connection refused"))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

	require.NoError(t, NewHealthCheckHandler(repo).HealthCheck(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var response errors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, string(errors.SystemServiceUnavailable), response.Error.Code)
	assert.Equal(t, "unknown", response.Error.TraceID)
}
