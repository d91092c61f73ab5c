package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/MantraGGR/nvidiaTradingBotWGUI/internal/types"
)

type ExecutorTestSuite struct {
	suite.Suite
}

func TestExecutorSuite(t *testing.T) {
	suite.Run(t, new(ExecutorTestSuite))
}

func (suite *ExecutorTestSuite) date(day int) time.Time {
	return time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC)
}

func (suite *ExecutorTestSuite) TestExecuteBuy() {
	portfolio := NewPortfolio(1000)
	executor := NewExecutor(portfolio)

	ok := executor.Execute(suite.date(1), 100, 10, types.SideBuy)

	suite.True(ok)
	suite.InDelta(0, portfolio.Cash(), 1e-9)
	suite.Equal(int64(10), portfolio.Quantity())
	suite.Require().Len(executor.Ledger(), 1)

	record := executor.Ledger()[0]
	suite.Equal(types.SideBuy, record.Side)
	suite.Equal(int64(10), record.Quantity)
	suite.InDelta(100, record.Price, 1e-9)
	suite.InDelta(-1000, record.CashDelta, 1e-9)
}

func (suite *ExecutorTestSuite) TestExecuteSell() {
	portfolio := NewPortfolio(1000)
	executor := NewExecutor(portfolio)

	suite.True(executor.Execute(suite.date(1), 100, 10, types.SideBuy))
	suite.True(executor.Execute(suite.date(2), 120, 10, types.SideSell))

	suite.InDelta(1200, portfolio.Cash(), 1e-9)
	suite.Equal(int64(0), portfolio.Quantity())
	suite.Len(executor.Ledger(), 2)
	suite.InDelta(1200, executor.Ledger()[1].CashDelta, 1e-9)
}

func (suite *ExecutorTestSuite) TestRejectedTradesHaveNoSideEffects() {
	tests := []struct {
		name     string
		cash     float64
		held     int64
		price    float64
		quantity int64
		side     types.Side
	}{
		{
			name:     "buy exceeding cash",
			cash:     500,
			held:     0,
			price:    100,
			quantity: 6,
			side:     types.SideBuy,
		},
		{
			name:     "sell exceeding position",
			cash:     500,
			held:     3,
			price:    100,
			quantity: 4,
			side:     types.SideSell,
		},
		{
			name:     "zero quantity buy",
			cash:     500,
			held:     0,
			price:    100,
			quantity: 0,
			side:     types.SideBuy,
		},
		{
			name:     "negative quantity sell",
			cash:     500,
			held:     3,
			price:    100,
			quantity: -1,
			side:     types.SideSell,
		},
		{
			name:     "non-positive price",
			cash:     500,
			held:     0,
			price:    0,
			quantity: 1,
			side:     types.SideBuy,
		},
		{
			name:     "unknown side",
			cash:     500,
			held:     3,
			price:    100,
			quantity: 1,
			side:     types.Side("short"),
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			portfolio := NewPortfolio(tc.cash)
			portfolio.quantity = tc.held
			executor := NewExecutor(portfolio)

			ok := executor.Execute(suite.date(1), tc.price, tc.quantity, tc.side)

			suite.False(ok)
			suite.InDelta(tc.cash, portfolio.Cash(), 1e-9)
			suite.Equal(tc.held, portfolio.Quantity())
			suite.Empty(executor.Ledger())
		})
	}
}

func (suite *ExecutorTestSuite) TestExactBuyAtFullCash() {
	portfolio := NewPortfolio(1000)
	executor := NewExecutor(portfolio)

	// Cost exactly equal to cash is allowed.
	suite.True(executor.Execute(suite.date(1), 250, 4, types.SideBuy))
	suite.InDelta(0, portfolio.Cash(), 1e-9)
}

func (suite *ExecutorTestSuite) TestRoundTripRestoresCashExactly() {
	// Fractional prices would accumulate float drift without decimal cash
	// arithmetic.
	portfolio := NewPortfolio(1000)
	executor := NewExecutor(portfolio)

	suite.True(executor.Execute(suite.date(1), 10.1, 99, types.SideBuy))
	suite.True(executor.Execute(suite.date(2), 10.1, 99, types.SideSell))

	suite.Equal(1000.0, portfolio.Cash())
	suite.Equal(int64(0), portfolio.Quantity())
}

func (suite *ExecutorTestSuite) TestCashNeverGoesNegative() {
	portfolio := NewPortfolio(999.99)
	executor := NewExecutor(portfolio)

	suite.False(executor.Execute(suite.date(1), 100, 10, types.SideBuy))
	suite.True(portfolio.Cash() >= 0)
}
