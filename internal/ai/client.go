// Package ai provides the Claude-backed commentary service. Every call is
// stateless; prompts carry all context and no conversation history is kept.
package ai

import (
	"context"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/ternarybob/arbor"

	"github.com/arush-mehrotra/finance-ai-agent/internal/common"
	"github.com/arush-mehrotra/finance-ai-agent/internal/models"
)

const (
	// DefaultTimeout bounds one model call when the configured timeout does
	// not parse.
	DefaultTimeout = 2 * time.Minute

	// DefaultMaxTokens is the narrative budget when none is configured.
	DefaultMaxTokens = 2048

	// Smaller budgets for the structured prompts.
	answerMaxTokens    = 1024
	summaryMaxTokens   = 1024
	recommendMaxTokens = 512

	// The structured prompts run cooler than the narrative ones.
	structuredTemperature = 0.5

	providerName = "anthropic"
)

// Client generates investment commentary via the Anthropic API.
type Client struct {
	client      anthropic.Client
	model       string
	maxTokens   int
	temperature float64
	timeout     time.Duration
	logger      arbor.ILogger
}

// NewClient creates a Claude client from configuration.
func NewClient(config common.ClaudeConfig, logger arbor.ILogger) *Client {
	timeout, err := time.ParseDuration(config.Timeout)
	if err != nil || timeout <= 0 {
		timeout = DefaultTimeout
	}

	maxTokens := config.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	return &Client{
		client:      anthropic.NewClient(option.WithAPIKey(config.APIKey)),
		model:       config.Model,
		maxTokens:   maxTokens,
		temperature: float64(config.Temperature),
		timeout:     timeout,
		logger:      logger,
	}
}

// generate performs one model call and returns the concatenated text blocks.
func (c *Client) generate(ctx context.Context, system, prompt string, maxTokens int, temperature float64) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: int64(maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
	if temperature > 0 {
		params.Temperature = anthropic.Float(temperature)
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{
			{Text: system},
		}
	}

	resp, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", &models.UpstreamError{Provider: providerName, Detail: "message request failed", Err: err}
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return "", &models.UpstreamError{Provider: providerName, Detail: "empty completion"}
	}

	return text.String(), nil
}

// Analyze produces a free-text investment narrative for a ticker. When
// question is set the narrative addresses it directly.
func (c *Client) Analyze(ctx context.Context, ticker, question string, snapshot *models.StockSnapshot, news []models.NewsArticle) (string, error) {
	if c.logger != nil {
		c.logger.Debug().Str("ticker", ticker).Msg("Generating investment analysis")
	}
	return c.generate(ctx, analystSystemPrompt, analysisPrompt(ticker, question, snapshot, news), c.maxTokens, c.temperature)
}

// Answer responds to a specific question about a ticker.
func (c *Client) Answer(ctx context.Context, ticker, question string, snapshot *models.StockSnapshot, news []models.NewsArticle) (string, error) {
	if c.logger != nil {
		c.logger.Debug().Str("ticker", ticker).Msg("Answering stock question")
	}
	return c.generate(ctx, analystSystemPrompt, questionPrompt(ticker, question, snapshot, news), answerMaxTokens, c.temperature)
}

// Recommend compresses a prior narrative into a structured BUY/HOLD/SELL
// call. A response with no recognizable label is a
// *models.MalformedResponseError.
func (c *Client) Recommend(ctx context.Context, ticker, narrative string, snapshot *models.StockSnapshot) (*models.Recommendation, error) {
	text, err := c.generate(ctx, advisorSystemPrompt, recommendationPrompt(ticker, narrative, snapshot), recommendMaxTokens, structuredTemperature)
	if err != nil {
		return nil, err
	}
	return parseRecommendation(ticker, text)
}

// SummarizeNews condenses recent articles into a short digest. Callers pass
// a non-empty article list; the orchestrator short-circuits the empty case
// without a model call.
func (c *Client) SummarizeNews(ctx context.Context, ticker string, news []models.NewsArticle) (*models.NewsDigest, error) {
	text, err := c.generate(ctx, newsAnalystSystemPrompt, newsSummaryPrompt(ticker, news), summaryMaxTokens, structuredTemperature)
	if err != nil {
		return nil, err
	}
	return parseNewsDigest(ticker, text), nil
}

// StructureAnalysis wraps a raw narrative into the result record, pulling
// bullet points out as key points.
func StructureAnalysis(ticker, narrative string) models.AnalysisResult {
	return models.AnalysisResult{
		Ticker:      ticker,
		Analysis:    narrative,
		KeyPoints:   extractKeyPoints(narrative),
		GeneratedAt: time.Now().UTC(),
	}
}
