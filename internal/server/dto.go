package server

import (
	"time"

	"github.com/moznion/go-optional"
	"github.com/MantraGGR/nvidiaTradingBotWGUI/internal/types"
)

const dateLayout = "2006-01-02"

// BacktestRequest is the body of POST /api/backtest.
type BacktestRequest struct {
	Strategy       string   `json:"strategy" validate:"required"`
	InitialCapital *float64 `json:"initial_capital" validate:"omitempty,gt=0"`
}

// CompareRequest is the body of POST /api/compare-strategies. An empty
// strategy list means every known strategy.
type CompareRequest struct {
	Strategies     []string `json:"strategies" validate:"omitempty,dive,required"`
	InitialCapital *float64 `json:"initial_capital" validate:"omitempty,gt=0"`
}

// EquityPointDTO is one equity curve sample.
type EquityPointDTO struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// TradeDTO mirrors the ledger entry shape: buys report their cost, sells
// their revenue.
type TradeDTO struct {
	Date    string  `json:"date"`
	Type    string  `json:"type"`
	Shares  int64   `json:"shares"`
	Price   float64 `json:"price"`
	Cost    float64 `json:"cost,omitempty"`
	Revenue float64 `json:"revenue,omitempty"`
}

// MetricsDTO carries the performance summary. A Sharpe ratio that is NaN or
// infinite serializes as null.
type MetricsDTO struct {
	TotalReturn      float64                  `json:"total_return"`
	AnnualizedReturn float64                  `json:"annualized_return"`
	MaxDrawdown      float64                  `json:"max_drawdown"`
	SharpeRatio      optional.Option[float64] `json:"sharpe_ratio"`
}

// BacktestResponse is the body returned by POST /api/backtest. The history
// field names mirror the dashboard contract this API replaces.
type BacktestResponse struct {
	ID             string           `json:"id"`
	Timestamp      time.Time        `json:"timestamp"`
	Strategy       string           `json:"strategy"`
	InitialCapital float64          `json:"initial_capital"`
	FinalValue     float64          `json:"final_value"`
	EquityCurve    []EquityPointDTO `json:"portfolio_history"`
	Trades         []TradeDTO       `json:"trade_history"`
	Metrics        MetricsDTO       `json:"metrics"`
}

// ComparisonEntryDTO is one strategy's result inside a comparison response.
type ComparisonEntryDTO struct {
	EquityCurve []EquityPointDTO `json:"portfolio_history"`
	FinalValue  float64          `json:"final_value"`
	Metrics     MetricsDTO       `json:"metrics"`
}

// StrategiesResponse is the body returned by GET /api/strategies.
type StrategiesResponse struct {
	Strategies []string `json:"strategies"`
}

// StockDataRow is one feed row returned by GET /api/stock-data.
type StockDataRow struct {
	Date    string  `json:"date"`
	Open    float64 `json:"open"`
	High    float64 `json:"high"`
	Low     float64 `json:"low"`
	Close   float64 `json:"close"`
	Volume  int64   `json:"volume"`
	MA10    float64 `json:"ma_10"`
	MA50    float64 `json:"ma_50"`
	RSI     float64 `json:"rsi"`
	BBUpper float64 `json:"bb_upper"`
	BBLower float64 `json:"bb_lower"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

func equityCurveDTO(curve []types.EquityPoint) []EquityPointDTO {
	points := make([]EquityPointDTO, 0, len(curve))
	for _, p := range curve {
		points = append(points, EquityPointDTO{
			Date:  p.Date.Format(dateLayout),
			Value: p.Value,
		})
	}

	return points
}

func tradesDTO(trades []types.TradeRecord) []TradeDTO {
	dtos := make([]TradeDTO, 0, len(trades))

	for _, t := range trades {
		dto := TradeDTO{
			Date:   t.Date.Format(dateLayout),
			Type:   string(t.Side),
			Shares: t.Quantity,
			Price:  t.Price,
		}

		if t.Side == types.SideBuy {
			dto.Cost = -t.CashDelta
		} else {
			dto.Revenue = t.CashDelta
		}

		dtos = append(dtos, dto)
	}

	return dtos
}

func metricsDTO(metrics types.MetricsSummary) MetricsDTO {
	sharpe := optional.None[float64]()
	if metrics.IsSharpeDefined() {
		sharpe = optional.Some(metrics.SharpeRatio)
	}

	return MetricsDTO{
		TotalReturn:      metrics.TotalReturn,
		AnnualizedReturn: metrics.AnnualizedReturn,
		MaxDrawdown:      metrics.MaxDrawdown,
		SharpeRatio:      sharpe,
	}
}

func backtestResponseDTO(result types.RunResult) BacktestResponse {
	return BacktestResponse{
		ID:             result.ID,
		Timestamp:      result.Timestamp,
		Strategy:       string(result.Strategy),
		InitialCapital: result.InitialCapital,
		FinalValue:     result.FinalValue,
		EquityCurve:    equityCurveDTO(result.EquityCurve),
		Trades:         tradesDTO(result.Trades),
		Metrics:        metricsDTO(result.Metrics),
	}
}

func stockDataDTO(feed []types.Observation) []StockDataRow {
	rows := make([]StockDataRow, 0, len(feed))
	for _, obs := range feed {
		rows = append(rows, StockDataRow{
			Date:    obs.Date.Format(dateLayout),
			Open:    obs.Open,
			High:    obs.High,
			Low:     obs.Low,
			Close:   obs.Close,
			Volume:  obs.Volume,
			MA10:    obs.MA10,
			MA50:    obs.MA50,
			RSI:     obs.RSI,
			BBUpper: obs.BBUpper,
			BBLower: obs.BBLower,
		})
	}

	return rows
}
