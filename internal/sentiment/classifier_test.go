package sentiment

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arush-mehrotra/finance-ai-agent/internal/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		headline string
		desc     string
		want     models.SentimentLabel
	}{
		{"positive headline", "Shares surge after record profit", "", models.SentimentPositive},
		{"negative headline", "Stock plunges on weak guidance", "", models.SentimentNegative},
		{"no keywords", "Company schedules annual meeting", "", models.SentimentNeutral},
		{"tie is neutral", "Profit falls", "", models.SentimentNeutral},
		{"description counts", "Quarterly report", "Earnings beat expectations with strong growth", models.SentimentPositive},
		{"case insensitive", "SHARES RALLY ON UPGRADE", "", models.SentimentPositive},
		{"empty article", "", "", models.SentimentNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(models.NewsArticle{Headline: tt.headline, Description: tt.desc})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAnnotate(t *testing.T) {
	articles := []models.NewsArticle{
		{Headline: "Shares surge"},
		{Headline: "Stock tumbles"},
	}

	annotated := Annotate(articles)

	assert.Equal(t, models.SentimentPositive, annotated[0].Sentiment)
	assert.Equal(t, models.SentimentNegative, annotated[1].Sentiment)
	// Annotation mutates in place.
	assert.Equal(t, models.SentimentPositive, articles[0].Sentiment)
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize("AAPL", nil)

	assert.Equal(t, "AAPL", summary.Ticker)
	assert.Equal(t, models.SentimentNeutral, summary.Overall)
	assert.Zero(t, summary.Score)
	assert.Zero(t, summary.ArticleCount)
	assert.NotNil(t, summary.RecentArticles)
	assert.Empty(t, summary.RecentArticles)
}

func TestSummarizeOverallLabel(t *testing.T) {
	positive := models.NewsArticle{Headline: "record profit surge"}
	negative := models.NewsArticle{Headline: "shares slump on loss"}
	neutral := models.NewsArticle{Headline: "board meets tuesday"}

	tests := []struct {
		name      string
		articles  []models.NewsArticle
		wantLabel models.SentimentLabel
		wantScore float64
	}{
		{"all positive", []models.NewsArticle{positive, positive}, models.SentimentPositive, 1.0},
		{"all negative", []models.NewsArticle{negative, negative}, models.SentimentNegative, -1.0},
		{"mixed within threshold", []models.NewsArticle{positive, negative, neutral, neutral, neutral}, models.SentimentNeutral, 0.0},
		{"score at threshold stays neutral", []models.NewsArticle{positive, neutral, neutral, neutral, neutral}, models.SentimentNeutral, 0.2},
		{"score above threshold", []models.NewsArticle{positive, positive, neutral, neutral}, models.SentimentPositive, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := Summarize("TSLA", tt.articles)
			assert.Equal(t, tt.wantLabel, summary.Overall)
			assert.InDelta(t, tt.wantScore, summary.Score, 0.001)
			assert.Equal(t, len(tt.articles), summary.ArticleCount)
		})
	}
}

func TestSummarizeCounts(t *testing.T) {
	articles := []models.NewsArticle{
		{Headline: "profit surge"},
		{Headline: "shares crash"},
		{Headline: "annual meeting"},
		{Headline: "dividend boost"},
	}

	summary := Summarize("MSFT", articles)

	assert.Equal(t, 2, summary.Positive)
	assert.Equal(t, 1, summary.Negative)
	assert.Equal(t, 1, summary.Neutral)
	assert.InDelta(t, 0.25, summary.Score, 0.001)
	assert.Equal(t, models.SentimentPositive, summary.Overall)
}

func TestSummarizeRecentArticlesCapped(t *testing.T) {
	articles := make([]models.NewsArticle, 8)
	for i := range articles {
		articles[i] = models.NewsArticle{Headline: fmt.Sprintf("headline %d", i)}
	}

	summary := Summarize("NVDA", articles)

	require.Len(t, summary.RecentArticles, 5)
	assert.Equal(t, "headline 0", summary.RecentArticles[0].Headline)
	assert.Equal(t, 8, summary.ArticleCount)
}
