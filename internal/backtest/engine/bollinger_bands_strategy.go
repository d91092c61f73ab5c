package engine

import (
	"github.com/moznion/go-optional"
	"github.com/MantraGGR/nvidiaTradingBotWGUI/internal/types"
)

// BollingerBandsStrategy buys max affordable when the close drops below the
// lower band and sells the entire position when it rises above the upper
// band. Like MovingAveragesStrategy this is a level rule and re-fires every
// day the condition holds.
type BollingerBandsStrategy struct{}

// Name implements Strategy.
func (s *BollingerBandsStrategy) Name() types.StrategyName {
	return types.StrategyBollingerBands
}

// Evaluate implements Strategy.
func (s *BollingerBandsStrategy) Evaluate(obs types.Observation, portfolio PortfolioSnapshot) optional.Option[TradeIntent] {
	if obs.Close < obs.BBLower && portfolio.Cash > 0 {
		shares := maxAffordableShares(portfolio.Cash, obs.Close)
		if shares > 0 {
			return optional.Some(TradeIntent{Side: types.SideBuy, Quantity: shares})
		}
	} else if obs.Close > obs.BBUpper && portfolio.Quantity > 0 {
		return optional.Some(TradeIntent{Side: types.SideSell, Quantity: portfolio.Quantity})
	}

	return optional.None[TradeIntent]()
}
