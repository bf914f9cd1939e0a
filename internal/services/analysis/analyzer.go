// Package analysis composes the market data, news, and AI gateways into
// per-request aggregate results. The service holds no state between requests;
// every call fans out to the providers and merges fresh results.
package analysis

import (
	"context"
	"sync"

	"github.com/ternarybob/arbor"

	"github.com/arush-mehrotra/finance-ai-agent/internal/ai"
	"github.com/arush-mehrotra/finance-ai-agent/internal/interfaces"
	"github.com/arush-mehrotra/finance-ai-agent/internal/models"
	"github.com/arush-mehrotra/finance-ai-agent/internal/sentiment"
)

const (
	// newsFetchLimit is how many articles feed one analysis.
	newsFetchLimit = 10

	// answerNewsLimit is the smaller batch backing one Q&A turn.
	answerNewsLimit = 5
)

// Service orchestrates the provider gateways.
type Service struct {
	market interfaces.MarketDataService
	news   interfaces.NewsService
	ai     interfaces.AIService
	logger arbor.ILogger
}

// NewService creates the orchestrator.
func NewService(market interfaces.MarketDataService, news interfaces.NewsService, aiService interfaces.AIService, logger arbor.ILogger) *Service {
	return &Service{
		market: market,
		news:   news,
		ai:     aiService,
		logger: logger,
	}
}

// fetchNews returns recent articles for a ticker, degrading to an empty
// list when the news provider fails. Market data failures abort a request;
// news failures never do.
func (s *Service) fetchNews(ctx context.Context, ticker string, limit int) []models.NewsArticle {
	articles, err := s.news.CompanyNews(ctx, ticker, limit)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn().Err(err).Str("ticker", ticker).Msg("News fetch failed, continuing without news")
		}
		return nil
	}
	return articles
}

// AnalyzeInvestment produces the full aggregate for one ticker: snapshot,
// metrics, classified news, AI narrative, and optionally a structured
// recommendation. A failed recommendation parse degrades to a nil
// recommendation rather than failing the request.
func (s *Service) AnalyzeInvestment(ctx context.Context, ticker, question string, includeRecommendation bool) (*models.InvestmentAnalysis, error) {
	snapshot, err := s.market.Snapshot(ctx, ticker)
	if err != nil {
		return nil, err
	}

	metrics, err := s.market.Metrics(ctx, ticker)
	if err != nil {
		// Fundamentals already answered once for the snapshot; a metrics
		// failure here degrades rather than aborting.
		if s.logger != nil {
			s.logger.Warn().Err(err).Str("ticker", ticker).Msg("Metrics fetch failed, continuing without metrics")
		}
		metrics = nil
	}

	articles := sentiment.Annotate(s.fetchNews(ctx, ticker, newsFetchLimit))

	narrative, err := s.ai.Analyze(ctx, ticker, question, snapshot, articles)
	if err != nil {
		return nil, err
	}

	result := &models.InvestmentAnalysis{
		Ticker:           ticker,
		StockInfo:        snapshot.Overview(),
		FinancialMetrics: metrics,
		NewsSummary:      *sentiment.Summarize(ticker, articles),
		AIAnalysis:       ai.StructureAnalysis(ticker, narrative),
	}

	if includeRecommendation {
		rec, err := s.ai.Recommend(ctx, ticker, narrative, snapshot)
		if err != nil {
			// The narrative already succeeded; a failed recommendation call
			// degrades to nil rather than discarding it, whatever the cause.
			if s.logger != nil {
				s.logger.Warn().Err(err).Str("ticker", ticker).Msg("Recommendation failed, returning analysis without it")
			}
		} else {
			result.Recommendation = rec
		}
	}

	return result, nil
}

// AnswerQuestion answers one stateless question about a ticker.
func (s *Service) AnswerQuestion(ctx context.Context, ticker, question string) (*models.ChatExchange, error) {
	snapshot, err := s.market.Snapshot(ctx, ticker)
	if err != nil {
		return nil, err
	}

	articles := sentiment.Annotate(s.fetchNews(ctx, ticker, answerNewsLimit))

	answer, err := s.ai.Answer(ctx, ticker, question, snapshot, articles)
	if err != nil {
		return nil, err
	}

	price := snapshot.CurrentPrice
	return &models.ChatExchange{
		Ticker:     ticker,
		Question:   question,
		Answer:     answer,
		StockPrice: &price,
	}, nil
}

// CompareStocks fetches every ticker concurrently and returns one entry per
// requested position, in request order. Failures are recorded per entry and
// never abort the batch; duplicate tickers are fetched once each, as given.
func (s *Service) CompareStocks(ctx context.Context, tickers []string) []models.ComparisonEntry {
	entries := make([]models.ComparisonEntry, len(tickers))

	var wg sync.WaitGroup
	for i, ticker := range tickers {
		wg.Add(1)
		go func(i int, ticker string) {
			defer wg.Done()
			entries[i] = s.compareOne(ctx, ticker)
		}(i, ticker)
	}
	wg.Wait()

	return entries
}

// compareOne builds one comparison row: snapshot plus locally classified
// news sentiment.
func (s *Service) compareOne(ctx context.Context, ticker string) models.ComparisonEntry {
	snapshot, err := s.market.Snapshot(ctx, ticker)
	if err != nil {
		return models.ComparisonEntry{Ticker: ticker, Error: err.Error()}
	}

	summary := sentiment.Summarize(ticker, s.fetchNews(ctx, ticker, newsFetchLimit))

	return models.ComparisonEntry{
		Ticker:        ticker,
		Name:          snapshot.Name,
		Price:         snapshot.CurrentPrice,
		PERatio:       snapshot.PERatio,
		MarketCap:     snapshot.MarketCap,
		ProfitMargin:  snapshot.ProfitMargins,
		RevenueGrowth: snapshot.RevenueGrowth,
		NewsSentiment: summary.Overall,
		Success:       true,
	}
}

// NewsSummary condenses recent news for a ticker into an AI digest. With no
// recent articles the digest short-circuits locally, without a model call.
// The second return value is the number of articles summarized.
func (s *Service) NewsSummary(ctx context.Context, ticker string) (*models.NewsDigest, int, error) {
	articles, err := s.news.CompanyNews(ctx, ticker, newsFetchLimit)
	if err != nil {
		return nil, 0, err
	}

	if len(articles) == 0 {
		return &models.NewsDigest{
			Ticker:    ticker,
			Summary:   "No recent news available.",
			Sentiment: models.SentimentNeutral,
			KeyPoints: []string{},
		}, 0, nil
	}

	digest, err := s.ai.SummarizeNews(ctx, ticker, articles)
	if err != nil {
		return nil, 0, err
	}

	return digest, len(articles), nil
}
