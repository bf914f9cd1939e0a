package marketdata

import (
	"github.com/arush-mehrotra/finance-ai-agent/internal/models"
)

// eodBar represents a single end-of-day price bar from the EOD endpoint.
type eodBar struct {
	Date          string  `json:"date"`
	Open          float64 `json:"open"`
	High          float64 `json:"high"`
	Low           float64 `json:"low"`
	Close         float64 `json:"close"`
	AdjustedClose float64 `json:"adjusted_close"`
	Volume        int64   `json:"volume"`
}

// realTimeQuote represents the real-time quote response.
type realTimeQuote struct {
	Code          string  `json:"code"`
	Timestamp     int64   `json:"timestamp"`
	Open          float64 `json:"open"`
	High          float64 `json:"high"`
	Low           float64 `json:"low"`
	Close         float64 `json:"close"`
	PreviousClose float64 `json:"previousClose"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_p"`
	Volume        int64   `json:"volume"`
}

// fundamentalsResponse is the subset of the fundamentals payload this
// gateway consumes. The upstream document is far larger; unknown fields are
// ignored by the decoder.
type fundamentalsResponse struct {
	General    *generalInfo `json:"General"`
	Highlights *highlights  `json:"Highlights"`
	Valuation  *valuation   `json:"Valuation"`
	Technicals *technicals  `json:"Technicals"`
}

type generalInfo struct {
	Code     string `json:"Code"`
	Name     string `json:"Name"`
	Exchange string `json:"Exchange"`
	Sector   string `json:"Sector"`
	Industry string `json:"Industry"`
}

type highlights struct {
	MarketCapitalization       *float64 `json:"MarketCapitalization"`
	PERatio                    *float64 `json:"PERatio"`
	PEGRatio                   *float64 `json:"PEGRatio"`
	DividendYield              *float64 `json:"DividendYield"`
	ProfitMargin               *float64 `json:"ProfitMargin"`
	OperatingMarginTTM         *float64 `json:"OperatingMarginTTM"`
	ReturnOnEquityTTM          *float64 `json:"ReturnOnEquityTTM"`
	ReturnOnAssetsTTM          *float64 `json:"ReturnOnAssetsTTM"`
	RevenueTTM                 *float64 `json:"RevenueTTM"`
	GrossProfitTTM             *float64 `json:"GrossProfitTTM"`
	QuarterlyRevenueGrowthYOY  *float64 `json:"QuarterlyRevenueGrowthYOY"`
	QuarterlyEarningsGrowthYOY *float64 `json:"QuarterlyEarningsGrowthYOY"`
}

type valuation struct {
	TrailingPE             *float64 `json:"TrailingPE"`
	ForwardPE              *float64 `json:"ForwardPE"`
	PriceSalesTTM          *float64 `json:"PriceSalesTTM"`
	PriceBookMRQ           *float64 `json:"PriceBookMRQ"`
	EnterpriseValue        *float64 `json:"EnterpriseValue"`
	EnterpriseValueRevenue *float64 `json:"EnterpriseValueRevenue"`
	EnterpriseValueEbitda  *float64 `json:"EnterpriseValueEbitda"`
}

type technicals struct {
	Beta           *float64 `json:"Beta"`
	FiftyTwoWkHigh *float64 `json:"52WeekHigh"`
	FiftyTwoWkLow  *float64 `json:"52WeekLow"`
}

// buildSnapshot merges fundamentals and the real-time quote into the
// canonical snapshot record.
func buildSnapshot(ticker string, fund *fundamentalsResponse, quote *realTimeQuote) *models.StockSnapshot {
	snapshot := &models.StockSnapshot{
		Ticker:       ticker,
		Name:         fund.General.Name,
		Sector:       fund.General.Sector,
		Industry:     fund.General.Industry,
		CurrentPrice: quote.Close,
	}
	if quote.Volume > 0 {
		volume := quote.Volume
		snapshot.Volume = &volume
	}
	if h := fund.Highlights; h != nil {
		snapshot.MarketCap = h.MarketCapitalization
		snapshot.PERatio = h.PERatio
		snapshot.DividendYield = h.DividendYield
		snapshot.ProfitMargins = h.ProfitMargin
		snapshot.RevenueGrowth = h.QuarterlyRevenueGrowthYOY
	}
	if v := fund.Valuation; v != nil {
		snapshot.ForwardPE = v.ForwardPE
	}
	if t := fund.Technicals; t != nil {
		snapshot.Beta = t.Beta
		snapshot.FiftyTwoWeekHigh = t.FiftyTwoWkHigh
		snapshot.FiftyTwoWeekLow = t.FiftyTwoWkLow
	}
	return snapshot
}

// buildMetrics maps the fundamentals payload into grouped financial metrics.
func buildMetrics(ticker string, fund *fundamentalsResponse) *models.FinancialMetrics {
	metrics := &models.FinancialMetrics{Ticker: ticker}

	if h := fund.Highlights; h != nil {
		metrics.Valuation.PERatio = h.PERatio
		metrics.Valuation.PEGRatio = h.PEGRatio
		metrics.Profitability.ProfitMargins = h.ProfitMargin
		metrics.Profitability.OperatingMargins = h.OperatingMarginTTM
		metrics.Profitability.ReturnOnEquity = h.ReturnOnEquityTTM
		metrics.Profitability.ReturnOnAssets = h.ReturnOnAssetsTTM
		metrics.Growth.QuarterlyRevenueGrowth = h.QuarterlyRevenueGrowthYOY
		metrics.Growth.QuarterlyEarningsGrowth = h.QuarterlyEarningsGrowthYOY
		metrics.Growth.RevenueGrowth = h.QuarterlyRevenueGrowthYOY
		metrics.Growth.EarningsGrowth = h.QuarterlyEarningsGrowthYOY
		// Gross margin is not published directly; derive it when possible.
		if h.GrossProfitTTM != nil && h.RevenueTTM != nil && *h.RevenueTTM != 0 {
			gross := *h.GrossProfitTTM / *h.RevenueTTM
			metrics.Profitability.GrossMargins = &gross
		}
	}
	if v := fund.Valuation; v != nil {
		if metrics.Valuation.PERatio == nil {
			metrics.Valuation.PERatio = v.TrailingPE
		}
		metrics.Valuation.ForwardPE = v.ForwardPE
		metrics.Valuation.PriceToBook = v.PriceBookMRQ
		metrics.Valuation.PriceToSales = v.PriceSalesTTM
		metrics.Valuation.EnterpriseValue = v.EnterpriseValue
		metrics.Valuation.EVToRevenue = v.EnterpriseValueRevenue
		metrics.Valuation.EVToEBITDA = v.EnterpriseValueEbitda
	}

	return metrics
}
