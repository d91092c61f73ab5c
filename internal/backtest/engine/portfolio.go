package engine

// Portfolio tracks the cash balance and held share quantity of a single
// backtest run. It is constructed fresh at run start and mutated only by the
// Executor, atomically together with a ledger append, so cash never goes
// negative and the position is never short.
type Portfolio struct {
	cash     float64
	quantity int64
}

// NewPortfolio creates a portfolio holding the given starting capital and no
// position.
func NewPortfolio(initialCapital float64) *Portfolio {
	return &Portfolio{
		cash:     initialCapital,
		quantity: 0,
	}
}

// Cash returns the current cash balance.
func (p *Portfolio) Cash() float64 {
	return p.cash
}

// Quantity returns the number of shares currently held.
func (p *Portfolio) Quantity() int64 {
	return p.quantity
}

// Value returns the total portfolio value with the position marked at the
// given price.
func (p *Portfolio) Value(price float64) float64 {
	return p.cash + float64(p.quantity)*price
}

// Snapshot returns a read-only copy of the portfolio state for strategy
// evaluation.
func (p *Portfolio) Snapshot() PortfolioSnapshot {
	return PortfolioSnapshot{
		Cash:     p.cash,
		Quantity: p.quantity,
	}
}

// PortfolioSnapshot is an immutable view of portfolio state handed to
// strategies. Strategies never see, or mutate, the live portfolio.
type PortfolioSnapshot struct {
	Cash     float64
	Quantity int64
}
