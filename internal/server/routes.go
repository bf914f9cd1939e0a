package server

import (
	"net/http"
)

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// Service endpoints
	mux.HandleFunc("/health", s.app.APIHandler.Health)
	mux.HandleFunc("/api/version", s.app.APIHandler.Version)

	// Market data
	mux.HandleFunc("/api/stock/", s.app.StockHandler.Route) // /{ticker}[/history|/metrics|/summary]

	// News; the literal /api/news/market segment is handled inside Route
	mux.HandleFunc("/api/news/", s.app.NewsHandler.Route) // /market, /{ticker}[/sentiment]

	// AI analysis
	mux.HandleFunc("/api/analyze", s.app.AnalysisHandler.Analyze)      // POST
	mux.HandleFunc("/api/analyze/", s.app.AnalysisHandler.NewsSummary) // GET /{ticker}/news-summary
	mux.HandleFunc("/api/ask", s.app.AnalysisHandler.Ask)              // POST
	mux.HandleFunc("/api/compare", s.app.AnalysisHandler.Compare)      // POST

	// Everything else, including bare /api/ paths
	mux.HandleFunc("/", s.app.APIHandler.NotFound)

	return mux
}
