package engine

import (
	"math"

	"github.com/MantraGGR/nvidiaTradingBotWGUI/internal/types"
)

// tradingDaysPerYear is the fixed annualization convention; the calculator
// is not calendar-aware.
const tradingDaysPerYear = 252

// ComputeMetrics derives the performance summary from a full equity curve.
// Curves with fewer than two points report all metrics as zero. The Sharpe
// ratio is left NaN or infinite when the daily return series has zero
// variance; callers must check MetricsSummary.IsSharpeDefined.
func ComputeMetrics(curve []types.EquityPoint) types.MetricsSummary {
	if len(curve) < 2 {
		return types.MetricsSummary{
			TotalReturn:      0.0,
			AnnualizedReturn: 0.0,
			MaxDrawdown:      0.0,
			SharpeRatio:      0.0,
		}
	}

	first := curve[0].Value
	last := curve[len(curve)-1].Value
	totalReturn := (last - first) / first

	// Daily returns exclude the first point, which has no predecessor.
	returns := make([]float64, 0, len(curve)-1)
	for i := 1; i < len(curve); i++ {
		returns = append(returns, (curve[i].Value-curve[i-1].Value)/curve[i-1].Value)
	}

	annualized := math.Pow(1+totalReturn, tradingDaysPerYear/float64(len(curve))) - 1

	// Running maximum includes the current point, so a point's own value
	// may set a new peak and its drawdown contribution is zero.
	peak := curve[0].Value
	maxDrawdown := 0.0

	for _, point := range curve {
		if point.Value > peak {
			peak = point.Value
		}

		drawdown := (point.Value - peak) / peak
		if drawdown < maxDrawdown {
			maxDrawdown = drawdown
		}
	}

	sharpe := mean(returns) / sampleStdDev(returns) * math.Sqrt(tradingDaysPerYear)

	return types.MetricsSummary{
		TotalReturn:      totalReturn,
		AnnualizedReturn: annualized,
		MaxDrawdown:      maxDrawdown,
		SharpeRatio:      sharpe,
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}

// sampleStdDev is the n-1 (sample) standard deviation. A series with fewer
// than two values has no defined deviation and yields NaN.
func sampleStdDev(values []float64) float64 {
	if len(values) < 2 {
		return math.NaN()
	}

	m := mean(values)

	sumSquares := 0.0
	for _, v := range values {
		sumSquares += (v - m) * (v - m)
	}

	return math.Sqrt(sumSquares / float64(len(values)-1))
}
