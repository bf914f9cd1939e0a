package handlers

import (
	"net/http"
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/arush-mehrotra/finance-ai-agent/internal/interfaces"
	"github.com/arush-mehrotra/finance-ai-agent/internal/models"
)

// StockHandler serves the market data endpoints.
type StockHandler struct {
	market interfaces.MarketDataService
	logger arbor.ILogger
}

// NewStockHandler creates a new stock handler.
func NewStockHandler(market interfaces.MarketDataService, logger arbor.ILogger) *StockHandler {
	return &StockHandler{market: market, logger: logger}
}

// Route dispatches /api/stock/{ticker}[/history|/metrics|/summary].
func (h *StockHandler) Route(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/stock/"), "/")
	parts := strings.Split(rest, "/")

	switch {
	case len(parts) == 1:
		h.snapshot(w, r)
	case len(parts) == 2 && parts[1] == "history":
		h.history(w, r)
	case len(parts) == 2 && parts[1] == "metrics":
		h.metrics(w, r)
	case len(parts) == 2 && parts[1] == "summary":
		h.summary(w, r)
	default:
		WriteError(w, http.StatusNotFound, "not found", "no route for "+r.URL.Path)
	}
}

func (h *StockHandler) snapshot(w http.ResponseWriter, r *http.Request) {
	ticker := PathTicker(w, r, "/api/stock/")
	if ticker == "" {
		return
	}

	snapshot, err := h.market.Snapshot(r.Context(), ticker)
	if err != nil {
		h.logger.Warn().Err(err).Str("ticker", ticker).Msg("Snapshot fetch failed")
		WriteServiceError(w, err)
		return
	}

	WriteData(w, snapshot)
}

func (h *StockHandler) history(w http.ResponseWriter, r *http.Request) {
	ticker := PathTicker(w, r, "/api/stock/", "history")
	if ticker == "" {
		return
	}

	period := models.Period(r.URL.Query().Get("period"))
	if period == "" {
		period = models.Period1Mo
	}
	interval := models.Interval(r.URL.Query().Get("interval"))
	if interval == "" {
		interval = models.IntervalDaily
	}

	series, err := h.market.History(r.Context(), ticker, period, interval)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteData(w, series)
}

func (h *StockHandler) metrics(w http.ResponseWriter, r *http.Request) {
	ticker := PathTicker(w, r, "/api/stock/", "metrics")
	if ticker == "" {
		return
	}

	metrics, err := h.market.Metrics(r.Context(), ticker)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteData(w, metrics)
}

func (h *StockHandler) summary(w http.ResponseWriter, r *http.Request) {
	ticker := PathTicker(w, r, "/api/stock/", "summary")
	if ticker == "" {
		return
	}

	period := models.Period(r.URL.Query().Get("period"))
	if period == "" {
		period = models.Period1Mo
	}
	if !period.Valid() {
		WriteServiceError(w, &models.ValidationError{Field: "period", Detail: string(period)})
		return
	}

	summary, err := h.market.PriceSummary(r.Context(), ticker, period)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteData(w, summary)
}
