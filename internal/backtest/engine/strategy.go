package engine

import (
	"github.com/moznion/go-optional"
	"github.com/MantraGGR/nvidiaTradingBotWGUI/internal/types"
)

// TradeIntent is a strategy's decision for one day: buy or sell a positive
// number of shares at the day's closing price.
type TradeIntent struct {
	Side     types.Side
	Quantity int64
}

// Strategy decides, for a single observation and the current portfolio state,
// whether to issue a trade intent. Implementations are pure functions with no
// memory beyond the observation's precomputed indicator columns; they issue
// at most one intent per day and evaluate only one branch (buy-check or
// sell-check) per day.
type Strategy interface {
	// Name returns the strategy's identifier in the closed strategy set.
	Name() types.StrategyName
	// Evaluate returns the trade intent for the given day, if any.
	Evaluate(obs types.Observation, portfolio PortfolioSnapshot) optional.Option[TradeIntent]
}

// strategyForName maps a name to its strategy implementation. The second
// return value is false for names outside the closed set.
func strategyForName(name types.StrategyName, config Config) (Strategy, bool) {
	switch name {
	case types.StrategyRSI:
		return &RSIStrategy{
			BuyThreshold:  config.RSIBuyThreshold,
			SellThreshold: config.RSISellThreshold,
		}, true
	case types.StrategyMovingAverages:
		return &MovingAveragesStrategy{}, true
	case types.StrategyBollingerBands:
		return &BollingerBandsStrategy{}, true
	case types.StrategyMACD:
		return &MACDStrategy{}, true
	default:
		return &HoldStrategy{name: name}, false
	}
}

// maxAffordableShares returns the largest whole number of shares purchasable
// at the given price with the given cash.
func maxAffordableShares(cash float64, price float64) int64 {
	if price <= 0 {
		return 0
	}

	return int64(cash / price)
}

// HoldStrategy never trades. Unknown strategy names run as a hold-only
// strategy so the engine still records a full equity curve for them.
type HoldStrategy struct {
	name types.StrategyName
}

// Name implements Strategy.
func (s *HoldStrategy) Name() types.StrategyName {
	return s.name
}

// Evaluate implements Strategy.
func (s *HoldStrategy) Evaluate(obs types.Observation, portfolio PortfolioSnapshot) optional.Option[TradeIntent] {
	return optional.None[TradeIntent]()
}
