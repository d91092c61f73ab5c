package types

// StrategyName identifies one of the built-in trading strategies. The set is
// closed: strategies are selected by exact, case-sensitive name.
type StrategyName string

const (
	StrategyRSI            StrategyName = "RSI"
	StrategyMovingAverages StrategyName = "MovingAverages"
	StrategyBollingerBands StrategyName = "BollingerBands"
	// StrategyMACD is a stand-in, not a true MACD: it compares the close
	// against the 10-day moving average because strategies are pure
	// functions of precomputed columns and carry no EMA state.
	StrategyMACD StrategyName = "MACD"
)

// AllStrategies lists every built-in strategy name.
var AllStrategies = []StrategyName{
	StrategyRSI,
	StrategyMovingAverages,
	StrategyBollingerBands,
	StrategyMACD,
}

// IsValidStrategy reports whether name is one of the built-in strategies.
func IsValidStrategy(name StrategyName) bool {
	for _, s := range AllStrategies {
		if s == name {
			return true
		}
	}

	return false
}
