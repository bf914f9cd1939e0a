// Package interfaces defines the service contracts wired through the app.
// Handlers and the orchestrator depend on these, never on concrete clients.
package interfaces

import (
	"context"

	"github.com/arush-mehrotra/finance-ai-agent/internal/models"
)

// MarketDataService fetches quotes, fundamentals, and historical prices for a
// ticker symbol. Every call re-queries the upstream provider; nothing is
// cached across requests.
type MarketDataService interface {
	// Snapshot returns the current view of a ticker. Returns a
	// *models.NotFoundError when the provider has no data for the symbol.
	Snapshot(ctx context.Context, ticker string) (*models.StockSnapshot, error)

	// History returns an ordered OHLCV series for the given period and interval.
	History(ctx context.Context, ticker string, period models.Period, interval models.Interval) (*models.HistoricalSeries, error)

	// Metrics returns detailed valuation, profitability, and growth metrics.
	Metrics(ctx context.Context, ticker string) (*models.FinancialMetrics, error)

	// PriceSummary returns summary statistics over the given period.
	PriceSummary(ctx context.Context, ticker string, period models.Period) (*models.PriceSummary, error)
}

// NewsService fetches recent articles for a ticker or for the market at large.
// An empty list is a valid result, not an error.
type NewsService interface {
	// CompanyNews returns up to limit recent articles for a ticker, in the
	// provider's native order.
	CompanyNews(ctx context.Context, ticker string, limit int) ([]models.NewsArticle, error)

	// MarketNews returns up to limit general market articles for a category
	// (general, forex, crypto, merger).
	MarketNews(ctx context.Context, category string, limit int) ([]models.NewsArticle, error)
}

// AIService generates investment commentary from market data and news.
type AIService interface {
	// Analyze produces a free-text investment narrative. question is optional;
	// when set the narrative addresses it directly.
	Analyze(ctx context.Context, ticker, question string, snapshot *models.StockSnapshot, news []models.NewsArticle) (string, error)

	// Answer responds to a specific question about a ticker.
	Answer(ctx context.Context, ticker, question string, snapshot *models.StockSnapshot, news []models.NewsArticle) (string, error)

	// Recommend extracts a structured BUY/HOLD/SELL call from a prior
	// narrative. Returns a *models.MalformedResponseError when the model's
	// output contains no recognizable label.
	Recommend(ctx context.Context, ticker, narrative string, snapshot *models.StockSnapshot) (*models.Recommendation, error)

	// SummarizeNews condenses recent articles into a short digest.
	SummarizeNews(ctx context.Context, ticker string, news []models.NewsArticle) (*models.NewsDigest, error)
}

// AnalysisService composes the gateways into per-request aggregate results.
type AnalysisService interface {
	AnalyzeInvestment(ctx context.Context, ticker, question string, includeRecommendation bool) (*models.InvestmentAnalysis, error)
	AnswerQuestion(ctx context.Context, ticker, question string) (*models.ChatExchange, error)
	CompareStocks(ctx context.Context, tickers []string) []models.ComparisonEntry
	NewsSummary(ctx context.Context, ticker string) (*models.NewsDigest, int, error)
}
