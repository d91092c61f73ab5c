package types

import "math"

// MetricsSummary holds the performance metrics derived from one equity curve.
// All four values are always computed together; none are persisted as part of
// portfolio state.
type MetricsSummary struct {
	// TotalReturn is (last - first) / first over the equity curve.
	TotalReturn float64 `yaml:"total_return" json:"total_return"`
	// AnnualizedReturn is (1 + TotalReturn)^(252/n) - 1, using the fixed
	// 252-trading-day convention.
	AnnualizedReturn float64 `yaml:"annualized_return" json:"annualized_return"`
	// MaxDrawdown is the largest peak-to-trough decline, expressed as a
	// non-positive fraction of the peak.
	MaxDrawdown float64 `yaml:"max_drawdown" json:"max_drawdown"`
	// SharpeRatio is mean(daily returns) / std(daily returns) * sqrt(252)
	// with a zero risk-free rate. It is NaN or infinite when the return
	// series has zero variance; callers must check IsSharpeDefined before
	// using it downstream.
	SharpeRatio float64 `yaml:"sharpe_ratio" json:"sharpe_ratio"`
}

// IsSharpeDefined reports whether the Sharpe ratio is a finite number.
func (m MetricsSummary) IsSharpeDefined() bool {
	return !math.IsNaN(m.SharpeRatio) && !math.IsInf(m.SharpeRatio, 0)
}
