// Package sentiment classifies news article tone with a lexical keyword
// scorer. The classifier is deterministic and needs no network calls, so
// sentiment stays available even when the AI provider is down.
package sentiment

import (
	"strings"

	"github.com/arush-mehrotra/finance-ai-agent/internal/models"
)

var positiveKeywords = []string{
	"surge", "soar", "rally", "gain", "profit", "beat", "upgrade",
	"bullish", "growth", "strong", "outperform", "success", "record",
	"high", "jump", "rise", "climbs", "boost", "positive",
}

var negativeKeywords = []string{
	"fall", "drop", "plunge", "loss", "miss", "downgrade", "bearish",
	"decline", "weak", "concern", "risk", "cut", "underperform", "low",
	"tumble", "sink", "crash", "slump", "negative", "disappointing",
}

const (
	// score thresholds for the overall label
	positiveThreshold = 0.2
	negativeThreshold = -0.2

	// recentArticleCount is how many constituents a summary carries.
	recentArticleCount = 5
)

// Classify returns the sentiment label for one article based on keyword
// occurrences in its headline and description. Ties are neutral.
func Classify(article models.NewsArticle) models.SentimentLabel {
	text := strings.ToLower(article.Headline + " " + article.Description)

	var positive, negative int
	for _, kw := range positiveKeywords {
		if strings.Contains(text, kw) {
			positive++
		}
	}
	for _, kw := range negativeKeywords {
		if strings.Contains(text, kw) {
			negative++
		}
	}

	switch {
	case positive > negative:
		return models.SentimentPositive
	case negative > positive:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}

// Annotate classifies each article in place and returns the same slice.
func Annotate(articles []models.NewsArticle) []models.NewsArticle {
	for i := range articles {
		articles[i].Sentiment = Classify(articles[i])
	}
	return articles
}

// Summarize classifies the articles and aggregates them into a per-ticker
// summary. Score is (positive - negative) / total rounded to two decimals;
// the overall label flips positive above 0.2 and negative below -0.2.
// An empty article list yields a neutral summary with zero counts.
func Summarize(ticker string, articles []models.NewsArticle) *models.SentimentSummary {
	summary := &models.SentimentSummary{
		Ticker:         ticker,
		Overall:        models.SentimentNeutral,
		RecentArticles: []models.NewsArticle{},
	}
	if len(articles) == 0 {
		return summary
	}

	articles = Annotate(articles)

	for _, a := range articles {
		switch a.Sentiment {
		case models.SentimentPositive:
			summary.Positive++
		case models.SentimentNegative:
			summary.Negative++
		default:
			summary.Neutral++
		}
	}

	summary.ArticleCount = len(articles)
	score := float64(summary.Positive-summary.Negative) / float64(len(articles))
	summary.Score = round2(score)

	switch {
	case score > positiveThreshold:
		summary.Overall = models.SentimentPositive
	case score < negativeThreshold:
		summary.Overall = models.SentimentNegative
	}

	recent := articles
	if len(recent) > recentArticleCount {
		recent = recent[:recentArticleCount]
	}
	summary.RecentArticles = recent

	return summary
}

func round2(v float64) float64 {
	if v >= 0 {
		return float64(int(v*100+0.5)) / 100
	}
	return float64(int(v*100-0.5)) / 100
}
