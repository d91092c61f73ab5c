package types

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// RunResult is the complete outcome of one backtest run: one strategy name
// plus one starting capital plus one indicator feed in, one equity curve,
// trade ledger and metrics summary out. Results are immutable after
// construction; repeated runs never share state.
type RunResult struct {
	// ID is the unique identifier for this backtest run.
	ID string `yaml:"id" json:"id"`
	// Timestamp is when this backtest run was executed.
	Timestamp time.Time `yaml:"timestamp" json:"timestamp"`
	// Strategy is the name of the strategy that produced this result.
	Strategy StrategyName `yaml:"strategy" json:"strategy"`
	// InitialCapital is the starting cash for the run.
	InitialCapital float64 `yaml:"initial_capital" json:"initial_capital"`
	// EquityCurve is the per-day portfolio value series, in feed order.
	EquityCurve []EquityPoint `yaml:"equity_curve" json:"equity_curve"`
	// Trades is the append-only ledger of executed trades.
	Trades []TradeRecord `yaml:"trades" json:"trades"`
	// Metrics is the performance summary derived from the equity curve.
	Metrics MetricsSummary `yaml:"metrics" json:"metrics"`
	// FinalValue is cash plus the position valued at the feed's last close.
	FinalValue float64 `yaml:"final_value" json:"final_value"`
}

// ComparisonEntry is one strategy's result inside a comparison: the equity
// curve, metrics and final value, with the trade ledger omitted.
type ComparisonEntry struct {
	EquityCurve []EquityPoint  `yaml:"equity_curve" json:"equity_curve"`
	Metrics     MetricsSummary `yaml:"metrics" json:"metrics"`
	FinalValue  float64        `yaml:"final_value" json:"final_value"`
}

// WriteRunResult serializes a run result to a YAML file.
func WriteRunResult(path string, result RunResult) error {
	data, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal run result to YAML: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write run result to file: %w", err)
	}

	return nil
}
