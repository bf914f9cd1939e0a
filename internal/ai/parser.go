package ai

import (
	"strings"

	"github.com/arush-mehrotra/finance-ai-agent/internal/models"
)

const maxKeyPoints = 5

// fallbackLength caps the raw-text fallback used when a structured field
// could not be parsed.
const fallbackLength = 200

// parseRecommendation extracts the structured recommendation from the
// model's line-oriented response. A response with no recognizable
// RECOMMENDATION line is a *models.MalformedResponseError; the other fields
// degrade to defaults instead of failing.
func parseRecommendation(ticker, text string) (*models.Recommendation, error) {
	rec := &models.Recommendation{
		Ticker:     ticker,
		Confidence: "Medium",
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "RECOMMENDATION:"):
			label := models.RecommendationLabel(strings.ToUpper(strings.TrimSpace(strings.TrimPrefix(line, "RECOMMENDATION:"))))
			if label.Valid() {
				rec.Label = label
			}
		case strings.HasPrefix(line, "CONFIDENCE:"):
			conf := strings.TrimSpace(strings.TrimPrefix(line, "CONFIDENCE:"))
			switch conf {
			case "High", "Medium", "Low":
				rec.Confidence = conf
			}
		case strings.HasPrefix(line, "REASONING:"):
			rec.Reasoning = strings.TrimSpace(strings.TrimPrefix(line, "REASONING:"))
		case strings.HasPrefix(line, "RISKS:"):
			rec.Risks = strings.TrimSpace(strings.TrimPrefix(line, "RISKS:"))
		}
	}

	if rec.Label == "" {
		return nil, &models.MalformedResponseError{
			Detail: "no RECOMMENDATION line with BUY/HOLD/SELL: " + truncate(text, fallbackLength),
		}
	}
	if rec.Reasoning == "" {
		rec.Reasoning = truncate(text, fallbackLength)
	}

	return rec, nil
}

// parseNewsDigest extracts the structured digest from the model's response.
// An unparseable summary degrades to the first 200 characters of raw text;
// an unrecognized sentiment degrades to neutral.
func parseNewsDigest(ticker, text string) *models.NewsDigest {
	digest := &models.NewsDigest{
		Ticker:    ticker,
		Sentiment: models.SentimentNeutral,
		KeyPoints: []string{},
	}

	inKeyPoints := false
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "SUMMARY:"):
			digest.Summary = strings.TrimSpace(strings.TrimPrefix(line, "SUMMARY:"))
			inKeyPoints = false
		case strings.HasPrefix(line, "SENTIMENT:"):
			label := models.SentimentLabel(strings.ToLower(strings.TrimSpace(strings.TrimPrefix(line, "SENTIMENT:"))))
			switch label {
			case models.SentimentPositive, models.SentimentNegative, models.SentimentNeutral:
				digest.Sentiment = label
			}
			inKeyPoints = false
		case strings.HasPrefix(line, "KEY POINTS:"):
			inKeyPoints = true
		case inKeyPoints && strings.HasPrefix(line, "-"):
			point := strings.TrimSpace(strings.TrimLeft(line, "- "))
			if point != "" {
				digest.KeyPoints = append(digest.KeyPoints, point)
			}
		}
	}

	if digest.Summary == "" {
		digest.Summary = truncate(text, fallbackLength)
	}

	return digest
}

// extractKeyPoints pulls bullet and numbered lines out of a free-text
// narrative, capped at five.
func extractKeyPoints(text string) []string {
	var points []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•") || strings.HasPrefix(line, "*") || isNumberedItem(line) {
			point := strings.TrimLeft(line, "-•*0123456789. ")
			if point != "" {
				points = append(points, point)
			}
		}
		if len(points) >= maxKeyPoints {
			break
		}
	}
	if len(points) == 0 {
		points = []string{"See full analysis for details"}
	}
	return points
}

func isNumberedItem(line string) bool {
	if line == "" || line[0] < '0' || line[0] > '9' {
		return false
	}
	return strings.Contains(line, ". ")
}
