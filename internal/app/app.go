// Package app wires configuration, gateways, services, and handlers into one
// application instance.
package app

import (
	"net/http"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/arush-mehrotra/finance-ai-agent/internal/ai"
	"github.com/arush-mehrotra/finance-ai-agent/internal/common"
	"github.com/arush-mehrotra/finance-ai-agent/internal/handlers"
	"github.com/arush-mehrotra/finance-ai-agent/internal/interfaces"
	"github.com/arush-mehrotra/finance-ai-agent/internal/marketdata"
	"github.com/arush-mehrotra/finance-ai-agent/internal/news"
	"github.com/arush-mehrotra/finance-ai-agent/internal/services/analysis"
)

// App holds all application components and dependencies
type App struct {
	Config *common.Config
	Logger arbor.ILogger

	// Provider gateways
	MarketDataService interfaces.MarketDataService
	NewsService       interfaces.NewsService
	AIService         interfaces.AIService

	// Orchestration
	AnalysisService interfaces.AnalysisService

	// HTTP handlers
	APIHandler      *handlers.APIHandler
	StockHandler    *handlers.StockHandler
	NewsHandler     *handlers.NewsHandler
	AnalysisHandler *handlers.AnalysisHandler
}

// New creates and wires the application.
func New(config *common.Config, logger arbor.ILogger) *App {
	a := &App{
		Config: config,
		Logger: logger,
	}

	a.MarketDataService = marketdata.NewClient(
		config.MarketData.APIKey,
		marketdata.WithBaseURL(config.MarketData.BaseURL),
		marketdata.WithHTTPClient(httpClient(config.MarketData.Timeout)),
		marketdata.WithRateLimit(config.MarketData.RateLimit),
		marketdata.WithLogger(logger),
	)

	a.NewsService = news.NewClient(
		config.News.APIKey,
		news.WithBaseURL(config.News.BaseURL),
		news.WithHTTPClient(httpClient(config.News.Timeout)),
		news.WithRateLimit(config.News.RateLimit),
		news.WithWindowDays(config.News.WindowDays),
		news.WithLogger(logger),
	)

	a.AIService = ai.NewClient(config.Claude, logger)

	a.AnalysisService = analysis.NewService(a.MarketDataService, a.NewsService, a.AIService, logger)

	a.APIHandler = handlers.NewAPIHandler(config)
	a.StockHandler = handlers.NewStockHandler(a.MarketDataService, logger)
	a.NewsHandler = handlers.NewNewsHandler(a.NewsService, logger)
	a.AnalysisHandler = handlers.NewAnalysisHandler(a.AnalysisService, logger)

	logger.Info().
		Str("environment", config.Environment).
		Str("model", config.Claude.Model).
		Msg("Application wired")

	return a
}

// httpClient builds an HTTP client with the configured timeout, falling back
// to 30s when the duration does not parse.
func httpClient(timeout string) *http.Client {
	d, err := time.ParseDuration(timeout)
	if err != nil || d <= 0 {
		d = 30 * time.Second
	}
	return &http.Client{Timeout: d}
}
