package engine

import (
	"github.com/moznion/go-optional"
	"github.com/MantraGGR/nvidiaTradingBotWGUI/internal/types"
)

// RSIStrategy buys the maximum affordable whole number of shares when the
// RSI drops below the buy threshold and sells the entire position when it
// rises above the sell threshold.
type RSIStrategy struct {
	BuyThreshold  float64
	SellThreshold float64
}

// Name implements Strategy.
func (s *RSIStrategy) Name() types.StrategyName {
	return types.StrategyRSI
}

// Evaluate implements Strategy.
func (s *RSIStrategy) Evaluate(obs types.Observation, portfolio PortfolioSnapshot) optional.Option[TradeIntent] {
	if obs.RSI < s.BuyThreshold && portfolio.Cash > 0 {
		shares := maxAffordableShares(portfolio.Cash, obs.Close)
		if shares > 0 {
			return optional.Some(TradeIntent{Side: types.SideBuy, Quantity: shares})
		}
	} else if obs.RSI > s.SellThreshold && portfolio.Quantity > 0 {
		return optional.Some(TradeIntent{Side: types.SideSell, Quantity: portfolio.Quantity})
	}

	return optional.None[TradeIntent]()
}
