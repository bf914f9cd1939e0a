package handlers

import (
	"net/http"
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/arush-mehrotra/finance-ai-agent/internal/interfaces"
	"github.com/arush-mehrotra/finance-ai-agent/internal/sentiment"
)

const (
	// defaultNewsLimit applies when the query carries no limit.
	defaultNewsLimit = 20

	// sentimentNewsLimit is how many articles feed the sentiment summary.
	sentimentNewsLimit = 10
)

// marketCategories are the Finnhub market news categories.
var marketCategories = map[string]bool{
	"general": true,
	"forex":   true,
	"crypto":  true,
	"merger":  true,
}

// NewsHandler serves the news endpoints.
type NewsHandler struct {
	news   interfaces.NewsService
	logger arbor.ILogger
}

// NewNewsHandler creates a new news handler.
func NewNewsHandler(news interfaces.NewsService, logger arbor.ILogger) *NewsHandler {
	return &NewsHandler{news: news, logger: logger}
}

// Route dispatches /api/news/market, /api/news/{ticker}, and
// /api/news/{ticker}/sentiment. The literal "market" segment wins over
// ticker matching.
func (h *NewsHandler) Route(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/news/"), "/")
	parts := strings.Split(rest, "/")

	switch {
	case len(parts) == 1 && parts[0] == "market":
		h.market(w, r)
	case len(parts) == 1:
		h.company(w, r)
	case len(parts) == 2 && parts[1] == "sentiment":
		h.sentiment(w, r)
	default:
		WriteError(w, http.StatusNotFound, "not found", "no route for "+r.URL.Path)
	}
}

func (h *NewsHandler) company(w http.ResponseWriter, r *http.Request) {
	ticker := PathTicker(w, r, "/api/news/")
	if ticker == "" {
		return
	}
	limit, ok := QueryLimit(w, r, defaultNewsLimit)
	if !ok {
		return
	}

	articles, err := h.news.CompanyNews(r.Context(), ticker, limit)
	if err != nil {
		h.logger.Warn().Err(err).Str("ticker", ticker).Msg("Company news fetch failed")
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    sentiment.Annotate(articles),
		"count":   len(articles),
	})
}

func (h *NewsHandler) market(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		category = "general"
	}
	if !marketCategories[category] {
		WriteError(w, http.StatusBadRequest, "validation failed", "unknown category: "+category)
		return
	}
	limit, ok := QueryLimit(w, r, defaultNewsLimit)
	if !ok {
		return
	}

	articles, err := h.news.MarketNews(r.Context(), category, limit)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteData(w, sentiment.Annotate(articles))
}

func (h *NewsHandler) sentiment(w http.ResponseWriter, r *http.Request) {
	ticker := PathTicker(w, r, "/api/news/", "sentiment")
	if ticker == "" {
		return
	}

	articles, err := h.news.CompanyNews(r.Context(), ticker, sentimentNewsLimit)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteData(w, sentiment.Summarize(ticker, articles))
}
