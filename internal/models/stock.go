// Package models defines the typed records exchanged between the gateways,
// the analysis orchestrator, and the HTTP API.
package models

import "time"

// StockSnapshot holds the current view of a single ticker. It is fetched
// fresh on every request and never cached.
type StockSnapshot struct {
	Ticker           string   `json:"ticker"`
	Name             string   `json:"name"`
	CurrentPrice     float64  `json:"current_price"`
	MarketCap        *float64 `json:"market_cap"`
	PERatio          *float64 `json:"pe_ratio"`
	ForwardPE        *float64 `json:"forward_pe"`
	DividendYield    *float64 `json:"dividend_yield"`
	FiftyTwoWeekHigh *float64 `json:"fifty_two_week_high"`
	FiftyTwoWeekLow  *float64 `json:"fifty_two_week_low"`
	Volume           *int64   `json:"volume"`
	Beta             *float64 `json:"beta"`
	ProfitMargins    *float64 `json:"profit_margins"`
	RevenueGrowth    *float64 `json:"revenue_growth"`
	Sector           string   `json:"sector"`
	Industry         string   `json:"industry"`
}

// StockOverview is the condensed snapshot embedded in analysis and
// comparison responses.
type StockOverview struct {
	Name         string   `json:"name"`
	CurrentPrice float64  `json:"current_price"`
	MarketCap    *float64 `json:"market_cap"`
	PERatio      *float64 `json:"pe_ratio"`
	Sector       string   `json:"sector"`
	Industry     string   `json:"industry"`
}

// Overview returns the condensed form of the snapshot.
func (s *StockSnapshot) Overview() StockOverview {
	return StockOverview{
		Name:         s.Name,
		CurrentPrice: s.CurrentPrice,
		MarketCap:    s.MarketCap,
		PERatio:      s.PERatio,
		Sector:       s.Sector,
		Industry:     s.Industry,
	}
}

// Period is the lookback window for historical price queries.
type Period string

const (
	Period1D  Period = "1d"
	Period5D  Period = "5d"
	Period1Mo Period = "1mo"
	Period3Mo Period = "3mo"
	Period6Mo Period = "6mo"
	Period1Y  Period = "1y"
	Period2Y  Period = "2y"
	Period5Y  Period = "5y"
	PeriodMax Period = "max"
)

// periodDays maps each period to its lookback window in days.
// PeriodMax maps to zero, meaning no lower bound.
var periodDays = map[Period]int{
	Period1D:  1,
	Period5D:  7,
	Period1Mo: 31,
	Period3Mo: 92,
	Period6Mo: 183,
	Period1Y:  365,
	Period2Y:  730,
	Period5Y:  1826,
	PeriodMax: 0,
}

// Valid reports whether the period is one of the supported values.
func (p Period) Valid() bool {
	_, ok := periodDays[p]
	return ok
}

// Days returns the lookback window in days, or 0 for PeriodMax.
func (p Period) Days() int {
	return periodDays[p]
}

// Interval is the bar spacing for historical price queries.
type Interval string

const (
	IntervalDaily   Interval = "1d"
	IntervalWeekly  Interval = "1wk"
	IntervalMonthly Interval = "1mo"
)

// Valid reports whether the interval is one of the supported values.
func (i Interval) Valid() bool {
	switch i {
	case IntervalDaily, IntervalWeekly, IntervalMonthly:
		return true
	}
	return false
}

// Candle is a single OHLCV bar.
type Candle struct {
	Timestamp time.Time `json:"timestamp"`
	Open      float64   `json:"open"`
	High      float64   `json:"high"`
	Low       float64   `json:"low"`
	Close     float64   `json:"close"`
	Volume    int64     `json:"volume"`
}

// HistoricalSeries is an ordered sequence of price bars for one ticker.
type HistoricalSeries struct {
	Ticker   string   `json:"ticker"`
	Period   Period   `json:"period"`
	Interval Interval `json:"interval"`
	Candles  []Candle `json:"candles"`
}

// ValuationMetrics groups valuation ratios.
type ValuationMetrics struct {
	PERatio         *float64 `json:"pe_ratio"`
	ForwardPE       *float64 `json:"forward_pe"`
	PEGRatio        *float64 `json:"peg_ratio"`
	PriceToBook     *float64 `json:"price_to_book"`
	PriceToSales    *float64 `json:"price_to_sales"`
	EnterpriseValue *float64 `json:"enterprise_value"`
	EVToRevenue     *float64 `json:"ev_to_revenue"`
	EVToEBITDA      *float64 `json:"ev_to_ebitda"`
}

// ProfitabilityMetrics groups margin and return ratios.
type ProfitabilityMetrics struct {
	ProfitMargins    *float64 `json:"profit_margins"`
	OperatingMargins *float64 `json:"operating_margins"`
	GrossMargins     *float64 `json:"gross_margins"`
	ReturnOnEquity   *float64 `json:"return_on_equity"`
	ReturnOnAssets   *float64 `json:"return_on_assets"`
}

// GrowthMetrics groups growth rates.
type GrowthMetrics struct {
	EarningsGrowth          *float64 `json:"earnings_growth"`
	RevenueGrowth           *float64 `json:"revenue_growth"`
	QuarterlyRevenueGrowth  *float64 `json:"quarterly_revenue_growth"`
	QuarterlyEarningsGrowth *float64 `json:"quarterly_earnings_growth"`
}

// FinancialMetrics is the detailed metric set served by the metrics endpoint.
type FinancialMetrics struct {
	Ticker        string               `json:"ticker"`
	Valuation     ValuationMetrics     `json:"valuation"`
	Profitability ProfitabilityMetrics `json:"profitability"`
	Growth        GrowthMetrics        `json:"growth"`
}

// PriceSummary holds summary statistics computed over a historical window.
type PriceSummary struct {
	Ticker           string  `json:"ticker"`
	Period           Period  `json:"period"`
	CurrentPrice     float64 `json:"current_price"`
	PeriodStartPrice float64 `json:"period_start_price"`
	PeriodReturnPct  float64 `json:"period_return_pct"`
	PeriodHigh       float64 `json:"period_high"`
	PeriodLow        float64 `json:"period_low"`
	AvgVolume        int64   `json:"avg_volume"`
	Volatility       float64 `json:"volatility"`
}
