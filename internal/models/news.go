package models

import "time"

// SentimentLabel classifies the tone of a news article or a group of articles.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNeutral  SentimentLabel = "neutral"
	SentimentNegative SentimentLabel = "negative"
)

// NewsArticle is a single article returned by the news gateway.
// Sentiment is derived locally by the classifier, never by the provider.
type NewsArticle struct {
	Headline    string         `json:"headline"`
	Description string         `json:"description,omitempty"`
	URL         string         `json:"url"`
	ImageURL    string         `json:"image_url,omitempty"`
	Source      string         `json:"source"`
	Category    string         `json:"category,omitempty"`
	PublishedAt int64          `json:"published_at"`
	Sentiment   SentimentLabel `json:"sentiment,omitempty"`
}

// PublishedTime returns the publication timestamp as a time.Time.
func (a NewsArticle) PublishedTime() time.Time {
	return time.Unix(a.PublishedAt, 0).UTC()
}

// SentimentSummary aggregates per-article sentiment for one ticker.
type SentimentSummary struct {
	Ticker         string         `json:"ticker"`
	Overall        SentimentLabel `json:"sentiment"`
	Score          float64        `json:"sentiment_score"`
	ArticleCount   int            `json:"article_count"`
	Positive       int            `json:"positive_mentions"`
	Negative       int            `json:"negative_mentions"`
	Neutral        int            `json:"neutral_mentions"`
	RecentArticles []NewsArticle  `json:"recent_news"`
}

// NewsDigest is an AI-generated summary of recent news for a ticker.
type NewsDigest struct {
	Ticker    string         `json:"ticker"`
	Summary   string         `json:"summary"`
	Sentiment SentimentLabel `json:"sentiment"`
	KeyPoints []string       `json:"key_points"`
}
