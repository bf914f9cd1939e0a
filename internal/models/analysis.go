package models

import "time"

// RecommendationLabel is the structured investment call extracted from the
// model's free-text output.
type RecommendationLabel string

const (
	RecommendationBuy  RecommendationLabel = "BUY"
	RecommendationHold RecommendationLabel = "HOLD"
	RecommendationSell RecommendationLabel = "SELL"
)

// Valid reports whether the label is one of BUY, HOLD, SELL.
func (l RecommendationLabel) Valid() bool {
	switch l {
	case RecommendationBuy, RecommendationHold, RecommendationSell:
		return true
	}
	return false
}

// Recommendation is the structured result of the recommendation prompt.
type Recommendation struct {
	Ticker     string              `json:"ticker"`
	Label      RecommendationLabel `json:"recommendation"`
	Confidence string              `json:"confidence"`
	Reasoning  string              `json:"reasoning"`
	Risks      string              `json:"risks"`
}

// AnalysisResult is the AI narrative for one ticker. Transient - it exists
// only for the duration of one request/response cycle.
type AnalysisResult struct {
	Ticker      string    `json:"ticker"`
	Analysis    string    `json:"analysis"`
	KeyPoints   []string  `json:"key_points"`
	GeneratedAt time.Time `json:"generated_at"`
}

// InvestmentAnalysis is the merged payload produced by the orchestrator:
// snapshot, metrics, sentiment, narrative, and the optional recommendation.
// A nil Recommendation marks a degraded (but still successful) result.
type InvestmentAnalysis struct {
	Ticker           string            `json:"ticker"`
	StockInfo        StockOverview     `json:"stock_info"`
	FinancialMetrics *FinancialMetrics `json:"financial_metrics,omitempty"`
	NewsSummary      SentimentSummary  `json:"news_summary"`
	AIAnalysis       AnalysisResult    `json:"ai_analysis"`
	Recommendation   *Recommendation   `json:"recommendation"`
}

// ChatExchange is a single stateless question/answer pair about a ticker.
type ChatExchange struct {
	Ticker     string   `json:"ticker"`
	Question   string   `json:"question"`
	Answer     string   `json:"answer"`
	StockPrice *float64 `json:"stock_price,omitempty"`
}

// ComparisonEntry is one ticker's row in a comparison response. Entries for
// tickers that failed carry Error and Success=false instead of aborting the
// whole batch.
type ComparisonEntry struct {
	Ticker        string         `json:"ticker"`
	Name          string         `json:"name,omitempty"`
	Price         float64        `json:"price,omitempty"`
	PERatio       *float64       `json:"pe_ratio,omitempty"`
	MarketCap     *float64       `json:"market_cap,omitempty"`
	ProfitMargin  *float64       `json:"profit_margin,omitempty"`
	RevenueGrowth *float64       `json:"revenue_growth,omitempty"`
	NewsSentiment SentimentLabel `json:"news_sentiment,omitempty"`
	Error         string         `json:"error,omitempty"`
	Success       bool           `json:"success"`
}
