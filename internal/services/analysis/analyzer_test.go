package analysis

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arush-mehrotra/finance-ai-agent/internal/models"
)

type fakeMarket struct {
	snapshots map[string]*models.StockSnapshot
	metrics   map[string]*models.FinancialMetrics
	errs      map[string]error
}

func (f *fakeMarket) Snapshot(ctx context.Context, ticker string) (*models.StockSnapshot, error) {
	if err := f.errs[ticker]; err != nil {
		return nil, err
	}
	if s, ok := f.snapshots[ticker]; ok {
		return s, nil
	}
	return nil, &models.NotFoundError{Resource: "symbol", Detail: ticker}
}

func (f *fakeMarket) Metrics(ctx context.Context, ticker string) (*models.FinancialMetrics, error) {
	if m, ok := f.metrics[ticker]; ok {
		return m, nil
	}
	return nil, &models.UpstreamError{Provider: "eodhd", Detail: "metrics unavailable"}
}

func (f *fakeMarket) History(ctx context.Context, ticker string, period models.Period, interval models.Interval) (*models.HistoricalSeries, error) {
	return &models.HistoricalSeries{Ticker: ticker, Period: period, Interval: interval}, nil
}

func (f *fakeMarket) PriceSummary(ctx context.Context, ticker string, period models.Period) (*models.PriceSummary, error) {
	return &models.PriceSummary{Ticker: ticker, Period: period}, nil
}

type fakeNews struct {
	articles  []models.NewsArticle
	err       error
	lastLimit int
}

func (f *fakeNews) CompanyNews(ctx context.Context, ticker string, limit int) ([]models.NewsArticle, error) {
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	if limit > 0 && len(f.articles) > limit {
		return f.articles[:limit], nil
	}
	return f.articles, nil
}

func (f *fakeNews) MarketNews(ctx context.Context, category string, limit int) ([]models.NewsArticle, error) {
	return f.CompanyNews(ctx, category, limit)
}

type fakeAI struct {
	narrative    string
	answer       string
	rec          *models.Recommendation
	recErr       error
	digest       *models.NewsDigest
	analyzeErr   error
	summarizeErr error
}

func (f *fakeAI) Analyze(ctx context.Context, ticker, question string, snapshot *models.StockSnapshot, news []models.NewsArticle) (string, error) {
	if f.analyzeErr != nil {
		return "", f.analyzeErr
	}
	return f.narrative, nil
}

func (f *fakeAI) Answer(ctx context.Context, ticker, question string, snapshot *models.StockSnapshot, news []models.NewsArticle) (string, error) {
	return f.answer, nil
}

func (f *fakeAI) Recommend(ctx context.Context, ticker, narrative string, snapshot *models.StockSnapshot) (*models.Recommendation, error) {
	if f.recErr != nil {
		return nil, f.recErr
	}
	return f.rec, nil
}

func (f *fakeAI) SummarizeNews(ctx context.Context, ticker string, news []models.NewsArticle) (*models.NewsDigest, error) {
	if f.summarizeErr != nil {
		return nil, f.summarizeErr
	}
	return f.digest, nil
}

func snapshotFor(ticker, name string, price float64) *models.StockSnapshot {
	return &models.StockSnapshot{Ticker: ticker, Name: name, CurrentPrice: price}
}

func newTestService(market *fakeMarket, news *fakeNews, aiSvc *fakeAI) *Service {
	return NewService(market, news, aiSvc, nil)
}

func TestAnalyzeInvestment(t *testing.T) {
	market := &fakeMarket{
		snapshots: map[string]*models.StockSnapshot{"AAPL": snapshotFor("AAPL", "Apple Inc", 230)},
		metrics:   map[string]*models.FinancialMetrics{"AAPL": {Ticker: "AAPL"}},
	}
	news := &fakeNews{articles: []models.NewsArticle{
		{Headline: "Apple shares surge on record profit"},
		{Headline: "Regulators raise concern over app store"},
	}}
	aiSvc := &fakeAI{
		narrative: "Detailed narrative.\n- Strong services growth\n- Healthy margins",
		rec:       &models.Recommendation{Ticker: "AAPL", Label: models.RecommendationBuy, Confidence: "High"},
	}

	result, err := newTestService(market, news, aiSvc).AnalyzeInvestment(context.Background(), "AAPL", "", true)
	require.NoError(t, err)

	assert.Equal(t, "AAPL", result.Ticker)
	assert.Equal(t, "Apple Inc", result.StockInfo.Name)
	require.NotNil(t, result.FinancialMetrics)
	assert.Equal(t, 2, result.NewsSummary.ArticleCount)
	assert.Equal(t, 1, result.NewsSummary.Positive)
	assert.Equal(t, 1, result.NewsSummary.Negative)
	assert.Contains(t, result.AIAnalysis.Analysis, "Detailed narrative.")
	assert.Equal(t, []string{"Strong services growth", "Healthy margins"}, result.AIAnalysis.KeyPoints)
	require.NotNil(t, result.Recommendation)
	assert.Equal(t, models.RecommendationBuy, result.Recommendation.Label)
}

func TestAnalyzeInvestmentUnknownTicker(t *testing.T) {
	market := &fakeMarket{}
	svc := newTestService(market, &fakeNews{}, &fakeAI{})

	_, err := svc.AnalyzeInvestment(context.Background(), "NOPE", "", false)
	require.Error(t, err)
	assert.True(t, models.IsNotFound(err))
}

func TestAnalyzeInvestmentNewsFailureDegrades(t *testing.T) {
	market := &fakeMarket{
		snapshots: map[string]*models.StockSnapshot{"AAPL": snapshotFor("AAPL", "Apple Inc", 230)},
	}
	news := &fakeNews{err: &models.UpstreamError{Provider: "finnhub", Detail: "down"}}
	aiSvc := &fakeAI{narrative: "narrative"}

	result, err := newTestService(market, news, aiSvc).AnalyzeInvestment(context.Background(), "AAPL", "", false)
	require.NoError(t, err)

	// News failure degrades to an empty neutral summary, not an error.
	assert.Zero(t, result.NewsSummary.ArticleCount)
	assert.Equal(t, models.SentimentNeutral, result.NewsSummary.Overall)
	assert.Nil(t, result.Recommendation)
}

func TestAnalyzeInvestmentRecommendationParseFailureDegrades(t *testing.T) {
	market := &fakeMarket{
		snapshots: map[string]*models.StockSnapshot{"AAPL": snapshotFor("AAPL", "Apple Inc", 230)},
	}
	aiSvc := &fakeAI{
		narrative: "narrative",
		recErr:    &models.MalformedResponseError{Detail: "no label"},
	}

	result, err := newTestService(market, &fakeNews{}, aiSvc).AnalyzeInvestment(context.Background(), "AAPL", "", true)
	require.NoError(t, err)
	assert.Nil(t, result.Recommendation)
}

func TestAnalyzeInvestmentRecommendationUpstreamFailureDegrades(t *testing.T) {
	market := &fakeMarket{
		snapshots: map[string]*models.StockSnapshot{"AAPL": snapshotFor("AAPL", "Apple Inc", 230)},
	}
	aiSvc := &fakeAI{
		narrative: "narrative",
		recErr:    &models.UpstreamError{Provider: "anthropic", Detail: "timeout"},
	}

	// The narrative is kept even when the follow-up recommendation call
	// fails at the provider, not just when its output fails to parse.
	result, err := newTestService(market, &fakeNews{}, aiSvc).AnalyzeInvestment(context.Background(), "AAPL", "", true)
	require.NoError(t, err)
	assert.Equal(t, "narrative", result.AIAnalysis.Analysis)
	assert.Nil(t, result.Recommendation)
}

func TestAnalyzeInvestmentAIFailureFails(t *testing.T) {
	market := &fakeMarket{
		snapshots: map[string]*models.StockSnapshot{"AAPL": snapshotFor("AAPL", "Apple Inc", 230)},
	}
	aiSvc := &fakeAI{analyzeErr: errors.New("model exploded")}

	_, err := newTestService(market, &fakeNews{}, aiSvc).AnalyzeInvestment(context.Background(), "AAPL", "", false)
	require.Error(t, err)
}

func TestAnswerQuestion(t *testing.T) {
	market := &fakeMarket{
		snapshots: map[string]*models.StockSnapshot{"TSLA": snapshotFor("TSLA", "Tesla", 250.5)},
	}
	aiSvc := &fakeAI{answer: "It depends on your horizon."}

	exchange, err := newTestService(market, &fakeNews{}, aiSvc).AnswerQuestion(context.Background(), "TSLA", "Good long-term buy?")
	require.NoError(t, err)

	assert.Equal(t, "TSLA", exchange.Ticker)
	assert.Equal(t, "Good long-term buy?", exchange.Question)
	assert.Equal(t, "It depends on your horizon.", exchange.Answer)
	require.NotNil(t, exchange.StockPrice)
	assert.Equal(t, 250.5, *exchange.StockPrice)
}

func TestNewsFetchLimits(t *testing.T) {
	market := &fakeMarket{
		snapshots: map[string]*models.StockSnapshot{"AAPL": snapshotFor("AAPL", "Apple Inc", 230)},
	}
	news := &fakeNews{}
	aiSvc := &fakeAI{narrative: "narrative", answer: "answer"}
	svc := newTestService(market, news, aiSvc)

	// A full analysis draws on a larger news batch than a single Q&A turn.
	_, err := svc.AnalyzeInvestment(context.Background(), "AAPL", "", false)
	require.NoError(t, err)
	assert.Equal(t, newsFetchLimit, news.lastLimit)

	_, err = svc.AnswerQuestion(context.Background(), "AAPL", "Good buy?")
	require.NoError(t, err)
	assert.Equal(t, answerNewsLimit, news.lastLimit)
}

func TestCompareStocks(t *testing.T) {
	market := &fakeMarket{
		snapshots: map[string]*models.StockSnapshot{
			"AAPL": snapshotFor("AAPL", "Apple Inc", 230),
			"MSFT": snapshotFor("MSFT", "Microsoft", 420),
		},
	}
	svc := newTestService(market, &fakeNews{}, &fakeAI{})

	entries := svc.CompareStocks(context.Background(), []string{"AAPL", "NOPE", "MSFT"})

	// One entry per requested position, in request order.
	require.Len(t, entries, 3)
	assert.Equal(t, "AAPL", entries[0].Ticker)
	assert.True(t, entries[0].Success)
	assert.Equal(t, 230.0, entries[0].Price)

	assert.Equal(t, "NOPE", entries[1].Ticker)
	assert.False(t, entries[1].Success)
	assert.NotEmpty(t, entries[1].Error)

	assert.Equal(t, "MSFT", entries[2].Ticker)
	assert.True(t, entries[2].Success)
}

func TestCompareStocksDuplicates(t *testing.T) {
	market := &fakeMarket{
		snapshots: map[string]*models.StockSnapshot{"AAPL": snapshotFor("AAPL", "Apple Inc", 230)},
	}
	svc := newTestService(market, &fakeNews{}, &fakeAI{})

	entries := svc.CompareStocks(context.Background(), []string{"AAPL", "AAPL"})

	require.Len(t, entries, 2)
	assert.Equal(t, entries[0].Ticker, entries[1].Ticker)
	assert.True(t, entries[0].Success)
	assert.True(t, entries[1].Success)
}

func TestCompareStocksOrderIsStable(t *testing.T) {
	tickers := []string{"E", "D", "C", "B", "A"}
	snapshots := make(map[string]*models.StockSnapshot, len(tickers))
	for _, tk := range tickers {
		snapshots[tk] = snapshotFor(tk, tk+" Corp", 100)
	}
	svc := newTestService(&fakeMarket{snapshots: snapshots}, &fakeNews{}, &fakeAI{})

	entries := svc.CompareStocks(context.Background(), tickers)

	got := make([]string, len(entries))
	for i, e := range entries {
		got[i] = e.Ticker
	}
	assert.Equal(t, tickers, got)
	assert.False(t, sort.StringsAreSorted(got))
}

func TestNewsSummary(t *testing.T) {
	news := &fakeNews{articles: []models.NewsArticle{{Headline: "a"}, {Headline: "b"}}}
	aiSvc := &fakeAI{digest: &models.NewsDigest{
		Ticker:    "AAPL",
		Summary:   "Busy week.",
		Sentiment: models.SentimentPositive,
		KeyPoints: []string{"point"},
	}}

	digest, count, err := newTestService(&fakeMarket{}, news, aiSvc).NewsSummary(context.Background(), "AAPL")
	require.NoError(t, err)

	assert.Equal(t, 2, count)
	assert.Equal(t, "Busy week.", digest.Summary)
}

func TestNewsSummaryNoArticles(t *testing.T) {
	aiSvc := &fakeAI{summarizeErr: errors.New("must not be called")}

	digest, count, err := newTestService(&fakeMarket{}, &fakeNews{}, aiSvc).NewsSummary(context.Background(), "OBSCURE")
	require.NoError(t, err)

	// Empty news short-circuits without a model call.
	assert.Zero(t, count)
	assert.Equal(t, "No recent news available.", digest.Summary)
	assert.Equal(t, models.SentimentNeutral, digest.Sentiment)
	assert.Empty(t, digest.KeyPoints)
}

func TestNewsSummaryNewsFailure(t *testing.T) {
	news := &fakeNews{err: &models.UpstreamError{Provider: "finnhub", Detail: "down"}}

	_, _, err := newTestService(&fakeMarket{}, news, &fakeAI{}).NewsSummary(context.Background(), "AAPL")
	require.Error(t, err)
	assert.True(t, models.IsUpstream(err))
}
