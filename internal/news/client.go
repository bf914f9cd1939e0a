// Package news provides the company and market news gateway backed by the
// Finnhub API.
package news

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
	// DefaultBaseURL is the base URL for the Finnhub API.
	DefaultBaseURL = "https://finnhub.io/api/v1"

	// DefaultTimeout is the default HTTP timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultRateLimit is the default rate limit (requests per second).
	DefaultRateLimit = 10

	// DefaultWindowDays is the default company news lookback window.
	DefaultWindowDays = 7

	providerName = "finnhub"
)

// finnhubArticle is the wire format shared by the company-news and
// market-news endpoints.
type finnhubArticle struct {
	Category string `json:"category"`
	Datetime int64  `json:"datetime"`
	Headline string `json:"headline"`
	ID       int64  `json:"id"`
	Image    string `json:"image"`
	Related  string `json:"related"`
	Source   string `json:"source"`
	Summary  string `json:"summary"`
	URL      string `json:"url"`
}

// Client is the news gateway. Responses are returned in the provider's
// native order (newest first) and truncated to the caller's limit.
type Client struct {
	baseURL    string
	apiKey     string
	windowDays int
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

// WithWindowDays sets the company news lookback window.
func WithWindowDays(days int) ClientOption {
	return func(c *Client) {
		if days > 0 {
			c.windowDays = days
		}
	}
}

// NewClient creates a new news client.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		windowDays: DefaultWindowDays,
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

// get performs a GET request to the API and decodes the JSON response.
func (c *Client) get(ctx context.Context, path string, params url.Values, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &models.UpstreamError{Provider: providerName, Detail: "rate limiter wait aborted", Err: err}
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("token", c.apiKey)

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return &models.UpstreamError{Provider: providerName, Detail: "failed to create request", Err: err}
	}

	if c.logger != nil {
		c.logger.Debug().
			Str("url", c.baseURL+path).
			Msg("Finnhub API request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &models.UpstreamError{Provider: providerName, Detail: "request failed", Err: err}
	}
	defer resp.Body.Close()

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

// CompanyNews returns up to limit recent articles about a ticker, published
// within the configured lookback window. An empty list is a valid result.
func (c *Client) CompanyNews(ctx context.Context, ticker string, limit int) ([]models.NewsArticle, error) {
	now := time.Now().UTC()
	from := now.AddDate(0, 0, -c.windowDays)

	params := url.Values{}
	params.Set("symbol", ticker)
	params.Set("from", from.Format("2006-01-02"))
	params.Set("to", now.Format("2006-01-02"))

	var raw []finnhubArticle
	if err := c.get(ctx, "/company-news", params, &raw); err != nil {
		return nil, err
	}

	return convertArticles(raw, limit), nil
}

// MarketNews returns up to limit general market articles for a category
// (general, forex, crypto, merger).
func (c *Client) MarketNews(ctx context.Context, category string, limit int) ([]models.NewsArticle, error) {
	if category == "" {
		category = "general"
	}

	params := url.Values{}
	params.Set("category", category)

	var raw []finnhubArticle
	if err := c.get(ctx, "/news", params, &raw); err != nil {
		return nil, err
	}

	return convertArticles(raw, limit), nil
}

// convertArticles maps wire articles to the canonical record, dropping
// entries with no headline and truncating to limit.
func convertArticles(raw []finnhubArticle, limit int) []models.NewsArticle {
	articles := make([]models.NewsArticle, 0, len(raw))
	for _, a := range raw {
		if a.Headline == "" {
			continue
		}
		articles = append(articles, models.NewsArticle{
			Headline:    a.Headline,
			Description: a.Summary,
			URL:         a.URL,
			ImageURL:    a.Image,
			Source:      a.Source,
			Category:    a.Category,
			PublishedAt: a.Datetime,
		})
		if limit > 0 && len(articles) >= limit {
			break
		}
	}
	return articles
}
