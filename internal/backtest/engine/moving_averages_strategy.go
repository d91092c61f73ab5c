package engine

import (
	"github.com/moznion/go-optional"
	"github.com/MantraGGR/nvidiaTradingBotWGUI/internal/types"
)

// MovingAveragesStrategy buys max affordable while the short moving average
// sits above the long one and sells the entire position while it sits below.
// This is a level comparison, not a crossover edge: the rule fires every day
// the condition holds, and the redundant repeat intents are rejected by the
// executor once capital or position is exhausted.
type MovingAveragesStrategy struct{}

// Name implements Strategy.
func (s *MovingAveragesStrategy) Name() types.StrategyName {
	return types.StrategyMovingAverages
}

// Evaluate implements Strategy.
func (s *MovingAveragesStrategy) Evaluate(obs types.Observation, portfolio PortfolioSnapshot) optional.Option[TradeIntent] {
	if obs.MA10 > obs.MA50 && portfolio.Cash > 0 {
		shares := maxAffordableShares(portfolio.Cash, obs.Close)
		if shares > 0 {
			return optional.Some(TradeIntent{Side: types.SideBuy, Quantity: shares})
		}
	} else if obs.MA10 < obs.MA50 && portfolio.Quantity > 0 {
		return optional.Some(TradeIntent{Side: types.SideSell, Quantity: portfolio.Quantity})
	}

	return optional.None[TradeIntent]()
}
