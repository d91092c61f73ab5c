package engine

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/MantraGGR/nvidiaTradingBotWGUI/internal/types"
)

// Executor converts trade intents into portfolio mutations and ledger
// entries. Every successful execution performs exactly one state mutation and
// one ledger append; a rejected trade leaves both untouched. Trades are
// all-or-nothing: there are no partial fills.
type Executor struct {
	portfolio *Portfolio
	ledger    []types.TradeRecord
}

// NewExecutor creates an executor bound to the given portfolio with an empty
// ledger.
func NewExecutor(portfolio *Portfolio) *Executor {
	return &Executor{
		portfolio: portfolio,
		ledger:    make([]types.TradeRecord, 0),
	}
}

// Execute attempts to apply a trade and reports whether it was executed.
// Buys require price*quantity <= cash; sells require quantity <= held
// quantity. Non-positive quantities and prices are rejected without side
// effects.
func (e *Executor) Execute(date time.Time, price float64, quantity int64, side types.Side) bool {
	if quantity <= 0 || price <= 0 {
		return false
	}

	// Cash movements use decimal arithmetic so a buy followed by a full
	// sell at the same price restores the exact cash balance.
	amount, _ := decimal.NewFromFloat(price).Mul(decimal.NewFromInt(quantity)).Float64()

	switch side {
	case types.SideBuy:
		if amount > e.portfolio.cash {
			return false
		}

		e.portfolio.cash, _ = decimal.NewFromFloat(e.portfolio.cash).
			Sub(decimal.NewFromFloat(amount)).Float64()
		e.portfolio.quantity += quantity
		e.ledger = append(e.ledger, types.TradeRecord{
			Date:      date,
			Side:      types.SideBuy,
			Quantity:  quantity,
			Price:     price,
			CashDelta: -amount,
		})

		return true
	case types.SideSell:
		if quantity > e.portfolio.quantity {
			return false
		}

		e.portfolio.cash, _ = decimal.NewFromFloat(e.portfolio.cash).
			Add(decimal.NewFromFloat(amount)).Float64()
		e.portfolio.quantity -= quantity
		e.ledger = append(e.ledger, types.TradeRecord{
			Date:      date,
			Side:      types.SideSell,
			Quantity:  quantity,
			Price:     price,
			CashDelta: amount,
		})

		return true
	default:
		return false
	}
}

// Ledger returns the trades executed so far, in execution order.
func (e *Executor) Ledger() []types.TradeRecord {
	return e.ledger
}
