// Package marketdata provides the market data gateway backed by the EODHD
// (End of Day Historical Data) API. This package centralizes all EODHD API
// interactions for the application.
package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ternarybob/arbor"
	"golang.org/x/time/rate"

	"github.com/arush-mehrotra/finance-ai-agent/internal/models"
)

const (
	// DefaultBaseURL is the base URL for the EODHD API.
	DefaultBaseURL = "https://eodhd.com/api"

	// DefaultTimeout is the default HTTP timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultRateLimit is the default rate limit (requests per second).
	DefaultRateLimit = 10

	providerName = "eodhd"
)

// Client is the market data gateway. It performs no caching and no retries;
// every call re-queries the upstream provider.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     arbor.ILogger
	limiter    *rate.Limiter
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithBaseURL sets a custom base URL.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets a logger.
func WithLogger(logger arbor.ILogger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets a custom rate limit. Non-positive values are ignored.
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		if requestsPerSecond > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
		}
	}
}

// NewClient creates a new market data client.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// symbol converts a canonical ticker to the EODHD symbol format. Tickers
// without an exchange qualifier default to the US composite.
func symbol(ticker string) string {
	return ticker + ".US"
}

// get performs a GET request to the API and decodes the JSON response.
func (c *Client) get(ctx context.Context, path string, params url.Values, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &models.UpstreamError{Provider: providerName, Detail: "rate limiter wait aborted", Err: err}
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("api_token", c.apiKey)
	params.Set("fmt", "json")

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return &models.UpstreamError{Provider: providerName, Detail: "failed to create request", Err: err}
	}

	if c.logger != nil {
		c.logger.Debug().
			Str("url", c.baseURL+path).
			Msg("EODHD API request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &models.UpstreamError{Provider: providerName, Detail: "request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return &models.NotFoundError{Resource: "symbol", Detail: path}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &models.UpstreamError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Detail:     string(body),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return &models.UpstreamError{Provider: providerName, Detail: "failed to decode response", Err: err}
	}

	return nil
}

// Snapshot fetches fundamentals and the real-time quote for a ticker and
// merges them into a StockSnapshot.
func (c *Client) Snapshot(ctx context.Context, ticker string) (*models.StockSnapshot, error) {
	sym := symbol(ticker)

	var fund fundamentalsResponse
	if err := c.get(ctx, "/fundamentals/"+sym, nil, &fund); err != nil {
		return nil, err
	}
	if fund.General == nil || fund.General.Name == "" {
		// EODHD answers 200 with an empty object for some unknown symbols.
		return nil, &models.NotFoundError{Resource: "symbol", Detail: ticker}
	}

	var quote realTimeQuote
	if err := c.get(ctx, "/real-time/"+sym, nil, &quote); err != nil {
		return nil, err
	}

	return buildSnapshot(ticker, &fund, &quote), nil
}

// History fetches the end-of-day price series for a ticker over the given
// period, with bars spaced at the given interval.
func (c *Client) History(ctx context.Context, ticker string, period models.Period, interval models.Interval) (*models.HistoricalSeries, error) {
	if !period.Valid() {
		return nil, &models.ValidationError{Field: "period", Detail: string(period)}
	}
	if !interval.Valid() {
		return nil, &models.ValidationError{Field: "interval", Detail: string(interval)}
	}

	params := url.Values{}
	params.Set("period", eodhdPeriod(interval))
	params.Set("order", "a")
	if days := period.Days(); days > 0 {
		from := time.Now().UTC().AddDate(0, 0, -days)
		params.Set("from", from.Format("2006-01-02"))
	}

	var bars []eodBar
	if err := c.get(ctx, "/eod/"+symbol(ticker), params, &bars); err != nil {
		return nil, err
	}

	series := &models.HistoricalSeries{
		Ticker:   ticker,
		Period:   period,
		Interval: interval,
		Candles:  make([]models.Candle, 0, len(bars)),
	}
	for _, bar := range bars {
		ts, err := time.Parse("2006-01-02", bar.Date)
		if err != nil {
			continue
		}
		series.Candles = append(series.Candles, models.Candle{
			Timestamp: ts,
			Open:      bar.Open,
			High:      bar.High,
			Low:       bar.Low,
			Close:     bar.Close,
			Volume:    bar.Volume,
		})
	}

	return series, nil
}

// Metrics fetches the detailed financial metric set for a ticker.
func (c *Client) Metrics(ctx context.Context, ticker string) (*models.FinancialMetrics, error) {
	var fund fundamentalsResponse
	if err := c.get(ctx, "/fundamentals/"+symbol(ticker), nil, &fund); err != nil {
		return nil, err
	}
	if fund.General == nil || fund.General.Name == "" {
		return nil, &models.NotFoundError{Resource: "symbol", Detail: ticker}
	}

	return buildMetrics(ticker, &fund), nil
}

// PriceSummary fetches daily history over the period and computes summary
// statistics locally.
func (c *Client) PriceSummary(ctx context.Context, ticker string, period models.Period) (*models.PriceSummary, error) {
	series, err := c.History(ctx, ticker, period, models.IntervalDaily)
	if err != nil {
		return nil, err
	}
	if len(series.Candles) == 0 {
		return nil, &models.NotFoundError{Resource: "historical data", Detail: ticker}
	}

	summary := computePriceSummary(series.Candles)
	summary.Ticker = ticker
	summary.Period = period
	return summary, nil
}

// eodhdPeriod maps a bar interval to the EODHD period query value.
func eodhdPeriod(interval models.Interval) string {
	switch interval {
	case models.IntervalWeekly:
		return "w"
	case models.IntervalMonthly:
		return "m"
	default:
		return "d"
	}
}
