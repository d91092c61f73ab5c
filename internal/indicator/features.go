// Package indicator computes the precomputed indicator columns of the feed
// from raw daily price bars. All rolling computations run over the adjusted
// close.
package indicator

import (
	"github.com/markcheno/go-talib"
	"github.com/MantraGGR/nvidiaTradingBotWGUI/internal/types"
	"github.com/MantraGGR/nvidiaTradingBotWGUI/pkg/errors"
)

const (
	// ShortMAPeriod and LongMAPeriod are the windows of the two simple
	// moving averages.
	ShortMAPeriod = 10
	LongMAPeriod  = 50
	// RSIPeriod is the lookback window of the relative strength index.
	RSIPeriod = 14
	// BollingerPeriod and BollingerWidth define the Bollinger bands:
	// a 20-day moving average plus/minus two standard deviations.
	BollingerPeriod = 20
	BollingerWidth  = 2.0
)

// BuildObservations computes the indicator columns for a chronological series
// of bars and returns the rows on which every indicator is defined. The
// leading warm-up window, where the longest rolling computation has not yet
// filled, is dropped.
func BuildObservations(bars []types.Bar) ([]types.Observation, error) {
	// The long moving average dominates every other warm-up window.
	if len(bars) < LongMAPeriod {
		return nil, errors.Newf(errors.ErrCodeFeedEmpty,
			"need at least %d bars to compute indicators, got %d", LongMAPeriod, len(bars))
	}

	adjClose := make([]float64, len(bars))
	for i, bar := range bars {
		adjClose[i] = bar.AdjClose
	}

	ma10 := talib.Sma(adjClose, ShortMAPeriod)
	ma50 := talib.Sma(adjClose, LongMAPeriod)
	bbUpper, _, bbLower := talib.BBands(adjClose, BollingerPeriod, BollingerWidth, BollingerWidth, talib.SMA)
	rsi := relativeStrengthIndex(adjClose, RSIPeriod)

	warmup := LongMAPeriod - 1

	observations := make([]types.Observation, 0, len(bars)-warmup)

	for i := warmup; i < len(bars); i++ {
		observations = append(observations, types.Observation{
			Date:     bars[i].Date,
			Open:     bars[i].Open,
			High:     bars[i].High,
			Low:      bars[i].Low,
			Close:    bars[i].Close,
			AdjClose: bars[i].AdjClose,
			Volume:   bars[i].Volume,
			MA10:     ma10[i],
			MA50:     ma50[i],
			RSI:      rsi[i],
			BBUpper:  bbUpper[i],
			BBLower:  bbLower[i],
		})
	}

	return observations, nil
}

// relativeStrengthIndex computes the RSI from simple rolling means of gains
// and losses rather than Wilder smoothing. Entries before the window fills
// are zero.
func relativeStrengthIndex(values []float64, period int) []float64 {
	rsi := make([]float64, len(values))
	if len(values) < period+1 {
		return rsi
	}

	gains := make([]float64, len(values))
	losses := make([]float64, len(values))

	for i := 1; i < len(values); i++ {
		delta := values[i] - values[i-1]
		if delta > 0 {
			gains[i] = delta
		} else {
			losses[i] = -delta
		}
	}

	// The first delta exists at index 1, so the first full window of gains
	// ends at index period.
	for i := period; i < len(values); i++ {
		var gainSum, lossSum float64
		for j := i - period + 1; j <= i; j++ {
			gainSum += gains[j]
			lossSum += losses[j]
		}

		avgGain := gainSum / float64(period)
		avgLoss := lossSum / float64(period)

		if avgLoss == 0 {
			rsi[i] = 100
			continue
		}

		rs := avgGain / avgLoss
		rsi[i] = 100 - 100/(1+rs)
	}

	return rsi
}
