package types

import "time"

type Side string

const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

// TradeRecord is a single executed trade in a backtest run. Records are
// appended to the ledger in execution order, which equals observation order
// since at most one trade decision is evaluated per day.
type TradeRecord struct {
	Date     time.Time `csv:"date" json:"date" yaml:"date" validate:"required"`
	Side     Side      `csv:"side" json:"side" yaml:"side" validate:"required,oneof=buy sell"`
	Quantity int64     `csv:"quantity" json:"quantity" yaml:"quantity" validate:"required,gt=0"`
	Price    float64   `csv:"price" json:"price" yaml:"price" validate:"required,gt=0"`
	// CashDelta is the signed cash movement: negative cost for buys,
	// positive proceeds for sells.
	CashDelta float64 `csv:"cash_delta" json:"cash_delta" yaml:"cash_delta"`
}

// Cost returns the cash spent on a buy trade, zero for sells.
func (t TradeRecord) Cost() float64 {
	if t.Side == SideBuy {
		return -t.CashDelta
	}

	return 0
}

// Revenue returns the cash received on a sell trade, zero for buys.
func (t TradeRecord) Revenue() float64 {
	if t.Side == SideSell {
		return t.CashDelta
	}

	return 0
}
