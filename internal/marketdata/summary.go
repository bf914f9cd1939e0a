package marketdata

import (
	"math"

	"github.com/arush-mehrotra/finance-ai-agent/internal/models"
)

// computePriceSummary derives summary statistics from an ordered sequence of
// daily candles. Callers guarantee len(candles) > 0.
func computePriceSummary(candles []models.Candle) *models.PriceSummary {
	current := candles[len(candles)-1].Close
	start := candles[0].Close

	var returnPct float64
	if start != 0 {
		returnPct = (current - start) / start * 100
	}

	high := candles[0].High
	low := candles[0].Low
	var volumeSum int64
	for _, c := range candles {
		if c.High > high {
			high = c.High
		}
		if c.Low < low {
			low = c.Low
		}
		volumeSum += c.Volume
	}

	return &models.PriceSummary{
		CurrentPrice:     round2(current),
		PeriodStartPrice: round2(start),
		PeriodReturnPct:  round2(returnPct),
		PeriodHigh:       round2(high),
		PeriodLow:        round2(low),
		AvgVolume:        volumeSum / int64(len(candles)),
		Volatility:       round2(dailyVolatility(candles) * 100),
	}
}

// dailyVolatility is the sample standard deviation of day-over-day close
// returns.
func dailyVolatility(candles []models.Candle) float64 {
	if len(candles) < 2 {
		return 0
	}

	changes := make([]float64, 0, len(candles)-1)
	for i := 1; i < len(candles); i++ {
		prev := candles[i-1].Close
		if prev == 0 {
			continue
		}
		changes = append(changes, (candles[i].Close-prev)/prev)
	}
	if len(changes) < 2 {
		return 0
	}

	var mean float64
	for _, ch := range changes {
		mean += ch
	}
	mean /= float64(len(changes))

	var variance float64
	for _, ch := range changes {
		variance += (ch - mean) * (ch - mean)
	}
	variance /= float64(len(changes) - 1)

	return math.Sqrt(variance)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
