package handlers

import (
	"net/http"
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/arush-mehrotra/finance-ai-agent/internal/common"
	"github.com/arush-mehrotra/finance-ai-agent/internal/interfaces"
)

// AnalyzeRequest is the body for POST /api/analyze.
type AnalyzeRequest struct {
	Ticker                string `json:"ticker" validate:"required"`
	Question              string `json:"question,omitempty"`
	IncludeRecommendation bool   `json:"include_recommendation,omitempty"`
}

// AskRequest is the body for POST /api/ask.
type AskRequest struct {
	Ticker   string `json:"ticker" validate:"required"`
	Question string `json:"question" validate:"required,min=3"`
}

// CompareRequest is the body for POST /api/compare.
type CompareRequest struct {
	Tickers []string `json:"tickers" validate:"required,min=2,max=10"`
}

// AnalysisHandler serves the AI analysis endpoints.
type AnalysisHandler struct {
	analysis interfaces.AnalysisService
	logger   arbor.ILogger
}

// NewAnalysisHandler creates a new analysis handler.
func NewAnalysisHandler(analysis interfaces.AnalysisService, logger arbor.ILogger) *AnalysisHandler {
	return &AnalysisHandler{analysis: analysis, logger: logger}
}

// Analyze handles POST /api/analyze.
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req AnalyzeRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	ticker := common.NormalizeTicker(req.Ticker)
	if ticker == "" {
		WriteError(w, http.StatusBadRequest, "validation failed", "invalid ticker: "+req.Ticker)
		return
	}

	h.logger.Info().Str("ticker", ticker).Bool("recommendation", req.IncludeRecommendation).Msg("Analysis requested")

	result, err := h.analysis.AnalyzeInvestment(r.Context(), ticker, req.Question, req.IncludeRecommendation)
	if err != nil {
		h.logger.Warn().Err(err).Str("ticker", ticker).Msg("Analysis failed")
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":           true,
		"ticker":            result.Ticker,
		"stock_info":        result.StockInfo,
		"financial_metrics": result.FinancialMetrics,
		"news_summary":      result.NewsSummary,
		"ai_analysis":       result.AIAnalysis,
		"recommendation":    result.Recommendation,
	})
}

// Ask handles POST /api/ask.
func (h *AnalysisHandler) Ask(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req AskRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	ticker := common.NormalizeTicker(req.Ticker)
	if ticker == "" {
		WriteError(w, http.StatusBadRequest, "validation failed", "invalid ticker: "+req.Ticker)
		return
	}

	exchange, err := h.analysis.AnswerQuestion(r.Context(), ticker, req.Question)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"ticker":      exchange.Ticker,
		"question":    exchange.Question,
		"answer":      exchange.Answer,
		"stock_price": exchange.StockPrice,
	})
}

// Compare handles POST /api/compare.
func (h *AnalysisHandler) Compare(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req CompareRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	tickers := make([]string, len(req.Tickers))
	for i, raw := range req.Tickers {
		ticker := common.NormalizeTicker(raw)
		if ticker == "" {
			WriteError(w, http.StatusBadRequest, "validation failed", "invalid ticker: "+raw)
			return
		}
		tickers[i] = ticker
	}

	h.logger.Info().Int("count", len(tickers)).Msg("Comparison requested")

	entries := h.analysis.CompareStocks(r.Context(), tickers)
	WriteData(w, entries)
}

// NewsSummary handles GET /api/analyze/{ticker}/news-summary.
func (h *AnalysisHandler) NewsSummary(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	if !strings.HasSuffix(r.URL.Path, "/news-summary") {
		WriteError(w, http.StatusNotFound, "not found", "no route for "+r.URL.Path)
		return
	}

	ticker := PathTicker(w, r, "/api/analyze/", "news-summary")
	if ticker == "" {
		return
	}

	digest, count, err := h.analysis.NewsSummary(r.Context(), ticker)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":       true,
		"ticker":        digest.Ticker,
		"summary":       digest.Summary,
		"sentiment":     digest.Sentiment,
		"key_points":    digest.KeyPoints,
		"article_count": count,
	})
}
