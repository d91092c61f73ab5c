package engine

import (
	"github.com/moznion/go-optional"
	"github.com/MantraGGR/nvidiaTradingBotWGUI/internal/types"
)

// MACDStrategy is a stand-in, not a true MACD. Strategies are memoryless
// functions of the observation's precomputed columns, and the data model
// carries no EMA or signal line, so this rule trades on close versus the
// 10-day moving average instead: buy max affordable while the close is above
// it, sell the entire position while below.
type MACDStrategy struct{}

// Name implements Strategy.
func (s *MACDStrategy) Name() types.StrategyName {
	return types.StrategyMACD
}

// Evaluate implements Strategy.
func (s *MACDStrategy) Evaluate(obs types.Observation, portfolio PortfolioSnapshot) optional.Option[TradeIntent] {
	if obs.Close > obs.MA10 && portfolio.Cash > 0 {
		shares := maxAffordableShares(portfolio.Cash, obs.Close)
		if shares > 0 {
			return optional.Some(TradeIntent{Side: types.SideBuy, Quantity: shares})
		}
	} else if obs.Close < obs.MA10 && portfolio.Quantity > 0 {
		return optional.Some(TradeIntent{Side: types.SideSell, Quantity: portfolio.Quantity})
	}

	return optional.None[TradeIntent]()
}
