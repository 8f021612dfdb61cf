package app

import (
	"net/http"
	"path/filepath"

	"bank-transactions/internal/handlers"
	"bank-transactions/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewServer builds the HTTP API over the container's services.
// gatherer backs the /metrics endpoint.
func NewServer(c *Container, gatherer prometheus.Gatherer) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.IPExtractor = clientIPExtractor(c.Config.Security.TrustProxyHeaders)

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.BodyLimit("64K"))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  c.Config.Server.CORSAllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderContentType, handlers.TraceIDHeader},
		ExposeHeaders: []string{handlers.TraceIDHeader},
	}))

	healthHandler := handlers.NewHealthCheckHandler(c.TransactionRepo)
	transactionHandler := handlers.NewTransactionHandler(c.QueryService)
	importHandler := handlers.NewImportHandler(c.ImportService, filepath.Dir(c.Config.Import.DataFile))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := e.Group("/api/v1")
	api.Use(middleware.RateLimiterWithConfig(
		c.Config.Security.RateLimitPerSecond,
		c.Config.Security.RateLimitBurst,
	))

	transactions := api.Group("/transactions")
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.GET("/totals", transactionHandler.CategoryTotals)
	transactions.GET("/monthly-average", transactionHandler.MonthlyAverage)
	transactions.GET("/highest-spend", transactionHandler.HighestSpend)
	transactions.GET("/lowest-spend", transactionHandler.LowestSpend)

	api.POST("/imports", importHandler.RunImport)

	return e
}

// clientIPExtractor ignores forwarding headers unless the deployment sits
// behind a proxy. Only loopback and private network hops are trusted then.
func clientIPExtractor(trustProxyHeaders bool) echo.IPExtractor {
	if trustProxyHeaders {
		return echo.ExtractIPFromXFFHeader()
	}
	return echo.ExtractIPDirect()
}
