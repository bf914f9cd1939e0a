package ai

import (
	"fmt"
	"strings"

	"github.com/arush-mehrotra/finance-ai-agent/internal/models"
)

const analystSystemPrompt = `You are an expert financial analyst and investment advisor with deep knowledge of:
- Fundamental analysis (P/E ratios, earnings, revenue, margins, etc.)
- Market sentiment and news analysis
- Risk assessment and portfolio management
- Technical and quantitative analysis

Your role is to:
1. Provide objective, data-driven analysis
2. Explain complex financial concepts clearly
3. Consider both opportunities and risks
4. Give actionable insights for investors
5. Be honest about uncertainty and limitations

Always base your analysis on the provided data and clearly state when you're making assumptions.`

const newsAnalystSystemPrompt = `You are a financial news analyst. Summarize news articles and extract key insights that would impact investment decisions.`

const advisorSystemPrompt = `You are a financial advisor providing investment recommendations. Be objective and consider both risks and opportunities.`

const (
	// contextNewsCount caps how many articles the analysis context includes.
	contextNewsCount = 5

	// summaryNewsCount caps how many articles the news summary prompt includes.
	summaryNewsCount = 10
)

// buildContext renders the snapshot and recent news into the data block
// shared by the analysis and question prompts. Missing metrics render as
// N/A rather than being omitted, so the model knows the data is absent.
func buildContext(ticker string, snapshot *models.StockSnapshot, news []models.NewsArticle) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Stock Analysis for %s (%s)\n", ticker, orNA(snapshot.Name))
	fmt.Fprintf(&b, "\nCurrent Price: $%.2f\n", snapshot.CurrentPrice)
	fmt.Fprintf(&b, "Market Cap: %s\n", formatDollars(snapshot.MarketCap))
	fmt.Fprintf(&b, "Sector: %s\n", orNA(snapshot.Sector))
	fmt.Fprintf(&b, "Industry: %s\n", orNA(snapshot.Industry))

	b.WriteString("\nValuation Metrics:\n")
	fmt.Fprintf(&b, "- P/E Ratio: %s\n", formatFloat(snapshot.PERatio))
	fmt.Fprintf(&b, "- Forward P/E: %s\n", formatFloat(snapshot.ForwardPE))
	fmt.Fprintf(&b, "- Beta: %s\n", formatFloat(snapshot.Beta))

	b.WriteString("\nProfitability:\n")
	fmt.Fprintf(&b, "- Profit Margin: %s\n", formatPercent(snapshot.ProfitMargins))

	b.WriteString("\nGrowth:\n")
	fmt.Fprintf(&b, "- Revenue Growth: %s\n", formatPercent(snapshot.RevenueGrowth))

	if len(news) > 0 {
		b.WriteString("\nRecent News:\n")
		for i, article := range news {
			if i >= contextNewsCount {
				break
			}
			fmt.Fprintf(&b, "\n%d. %s\n", i+1, article.Headline)
			sentiment := article.Sentiment
			if sentiment == "" {
				sentiment = models.SentimentNeutral
			}
			fmt.Fprintf(&b, "   Source: %s | Sentiment: %s\n", orNA(article.Source), sentiment)
			if article.Description != "" {
				fmt.Fprintf(&b, "   %s\n", truncate(article.Description, 150))
			}
		}
	}

	return b.String()
}

// analysisPrompt produces the user turn for the investment narrative.
func analysisPrompt(ticker, question string, snapshot *models.StockSnapshot, news []models.NewsArticle) string {
	context := buildContext(ticker, snapshot, news)
	if question != "" {
		return fmt.Sprintf("%s\n\nUser Question: %s\n\nProvide a detailed analysis addressing the user's question.", context, question)
	}
	return fmt.Sprintf("%s\n\nProvide a comprehensive investment analysis for %s.", context, ticker)
}

// questionPrompt produces the user turn for the stateless Q&A endpoint.
func questionPrompt(ticker, question string, snapshot *models.StockSnapshot, news []models.NewsArticle) string {
	context := buildContext(ticker, snapshot, news)
	return fmt.Sprintf("%s\n\nQuestion: %s\n\nProvide a clear, concise answer based on the data provided.", context, question)
}

// recommendationPrompt asks the model to compress a prior narrative into the
// line-oriented RECOMMENDATION/CONFIDENCE/REASONING/RISKS format the parser
// expects.
func recommendationPrompt(ticker, narrative string, snapshot *models.StockSnapshot) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Based on the following analysis for %s:\n\n%s\n\n", ticker, narrative)
	fmt.Fprintf(&b, "Current Price: $%.2f\n", snapshot.CurrentPrice)
	fmt.Fprintf(&b, "P/E Ratio: %s\n", formatFloat(snapshot.PERatio))
	fmt.Fprintf(&b, "Market Cap: %s\n", formatDollars(snapshot.MarketCap))

	b.WriteString(`
Provide a recommendation (BUY/HOLD/SELL) with:
1. Your recommendation
2. Confidence level (High/Medium/Low)
3. Brief reasoning (2-3 sentences)
4. Key risk factors

Format as:
RECOMMENDATION: [BUY/HOLD/SELL]
CONFIDENCE: [High/Medium/Low]
REASONING: [your reasoning]
RISKS: [key risks]
`)

	return b.String()
}

// newsSummaryPrompt asks the model for the SUMMARY/SENTIMENT/KEY POINTS
// format.
func newsSummaryPrompt(ticker string, news []models.NewsArticle) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Analyze the following news articles for %s:\n\n", ticker)
	for i, article := range news {
		if i >= summaryNewsCount {
			break
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, article.Headline)
		if article.Description != "" {
			fmt.Fprintf(&b, "   %s\n", article.Description)
		}
		fmt.Fprintf(&b, "   Source: %s\n\n", orNA(article.Source))
	}

	b.WriteString(`Provide:
1. A brief summary (2-3 sentences)
2. Overall sentiment (positive/negative/neutral)
3. 3-5 key points that investors should know

Format your response as:
SUMMARY: [your summary]
SENTIMENT: [positive/negative/neutral]
KEY POINTS:
- [point 1]
- [point 2]
- [point 3]
`)

	return b.String()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func formatFloat(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", *v)
}

func formatPercent(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", *v*100)
}

func formatDollars(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("$%.0f", *v)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
