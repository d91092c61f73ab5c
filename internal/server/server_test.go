package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/MantraGGR/nvidiaTradingBotWGUI/internal/backtest/engine"
	"github.com/MantraGGR/nvidiaTradingBotWGUI/internal/logger"
	"github.com/MantraGGR/nvidiaTradingBotWGUI/internal/types"
)

type ServerTestSuite struct {
	suite.Suite
	server *Server
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (suite *ServerTestSuite) SetupTest() {
	log, err := logger.NewLogger()
	suite.Require().NoError(err)

	config := engine.DefaultConfig()
	config.InitialCapital = 1000

	server, err := NewServer(suite.feed(), config, log)
	suite.Require().NoError(err)
	suite.server = server
}

// feed is a three day series: day one is oversold on RSI, the rest are
// neutral while the price slides.
func (suite *ServerTestSuite) feed() []types.Observation {
	date := func(day int) time.Time {
		return time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC)
	}

	return []types.Observation{
		{Date: date(1), Open: 101, High: 102, Low: 99, Close: 100, AdjClose: 100, Volume: 1000, RSI: 25, MA10: 100, MA50: 100, BBUpper: 110, BBLower: 95},
		{Date: date(2), Open: 100, High: 101, Low: 89, Close: 90, AdjClose: 90, Volume: 1100, RSI: 50, MA10: 99, MA50: 100, BBUpper: 110, BBLower: 95},
		{Date: date(3), Open: 90, High: 91, Low: 79, Close: 80, AdjClose: 80, Volume: 1200, RSI: 50, MA10: 97, MA50: 100, BBUpper: 110, BBLower: 95},
	}
}

func (suite *ServerTestSuite) request(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader

	if body != nil {
		encoded, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	recorder := httptest.NewRecorder()
	suite.server.Handler().ServeHTTP(recorder, req)

	return recorder
}

func (suite *ServerTestSuite) TestNewServerRejectsEmptyFeed() {
	log, err := logger.NewLogger()
	suite.Require().NoError(err)

	_, err = NewServer(nil, engine.DefaultConfig(), log)
	suite.Error(err)
}

func (suite *ServerTestSuite) TestStrategies() {
	recorder := suite.request(http.MethodGet, "/api/strategies", nil)
	suite.Equal(http.StatusOK, recorder.Code)

	var response StrategiesResponse
	suite.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &response))
	suite.ElementsMatch([]string{"RSI", "MovingAverages", "BollingerBands", "MACD"}, response.Strategies)
}

func (suite *ServerTestSuite) TestBacktest() {
	recorder := suite.request(http.MethodPost, "/api/backtest", map[string]any{
		"strategy": "RSI",
	})
	suite.Require().Equal(http.StatusOK, recorder.Code)

	var response BacktestResponse
	suite.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &response))

	suite.Equal("RSI", response.Strategy)
	suite.InDelta(1000, response.InitialCapital, 1e-9)
	suite.InDelta(800, response.FinalValue, 1e-9)

	suite.Require().Len(response.EquityCurve, 3)
	suite.Equal("2024-01-01", response.EquityCurve[0].Date)
	suite.InDelta(1000, response.EquityCurve[0].Value, 1e-9)

	suite.Require().Len(response.Trades, 1)
	suite.Equal("buy", response.Trades[0].Type)
	suite.Equal(int64(10), response.Trades[0].Shares)
	suite.InDelta(1000, response.Trades[0].Cost, 1e-9)
	suite.Zero(response.Trades[0].Revenue)

	suite.InDelta(-0.20, response.Metrics.TotalReturn, 1e-9)
}

func (suite *ServerTestSuite) TestBacktestCapitalOverride() {
	recorder := suite.request(http.MethodPost, "/api/backtest", map[string]any{
		"strategy":        "RSI",
		"initial_capital": 500.0,
	})
	suite.Require().Equal(http.StatusOK, recorder.Code)

	var response BacktestResponse
	suite.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &response))
	suite.InDelta(500, response.InitialCapital, 1e-9)
	suite.Require().Len(response.Trades, 1)
	suite.Equal(int64(5), response.Trades[0].Shares)
}

func (suite *ServerTestSuite) TestBacktestRejectsBadRequests() {
	tests := []struct {
		name string
		body any
	}{
		{
			name: "unknown strategy",
			body: map[string]any{"strategy": "GridTrading"},
		},
		{
			name: "missing strategy",
			body: map[string]any{"initial_capital": 1000.0},
		},
		{
			name: "non-positive capital",
			body: map[string]any{"strategy": "RSI", "initial_capital": -5.0},
		},
		{
			name: "malformed body",
			body: "not json",
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			recorder := suite.request(http.MethodPost, "/api/backtest", tc.body)
			suite.Equal(http.StatusBadRequest, recorder.Code)

			var response ErrorResponse
			suite.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &response))
			suite.NotEmpty(response.Error)
		})
	}
}

func (suite *ServerTestSuite) TestBacktestSharpeSerializesAsNullWhenUndefined() {
	// MACD holds on this feed (close below MA10 with nothing to sell), so
	// the curve is flat and the Sharpe ratio is undefined.
	recorder := suite.request(http.MethodPost, "/api/backtest", map[string]any{
		"strategy": "MACD",
	})
	suite.Require().Equal(http.StatusOK, recorder.Code)

	var raw map[string]any
	suite.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &raw))

	metrics, ok := raw["metrics"].(map[string]any)
	suite.Require().True(ok)
	suite.Contains(metrics, "sharpe_ratio")
	suite.Nil(metrics["sharpe_ratio"])
}

func (suite *ServerTestSuite) TestCompareDefaultsToAllStrategies() {
	recorder := suite.request(http.MethodPost, "/api/compare-strategies", map[string]any{})
	suite.Require().Equal(http.StatusOK, recorder.Code)

	var response map[string]ComparisonEntryDTO
	suite.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &response))
	suite.Len(response, len(types.AllStrategies))

	rsi, ok := response["RSI"]
	suite.Require().True(ok)
	suite.InDelta(800, rsi.FinalValue, 1e-9)
	suite.Len(rsi.EquityCurve, 3)
}

func (suite *ServerTestSuite) TestCompareExplicitList() {
	recorder := suite.request(http.MethodPost, "/api/compare-strategies", map[string]any{
		"strategies": []string{"RSI", "BollingerBands"},
	})
	suite.Require().Equal(http.StatusOK, recorder.Code)

	var response map[string]ComparisonEntryDTO
	suite.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &response))
	suite.Len(response, 2)
	suite.Contains(response, "RSI")
	suite.Contains(response, "BollingerBands")
}

func (suite *ServerTestSuite) TestCompareRejectsUnknownStrategy() {
	recorder := suite.request(http.MethodPost, "/api/compare-strategies", map[string]any{
		"strategies": []string{"RSI", "GridTrading"},
	})
	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func (suite *ServerTestSuite) TestStockData() {
	recorder := suite.request(http.MethodGet, "/api/stock-data", nil)
	suite.Require().Equal(http.StatusOK, recorder.Code)

	var rows []StockDataRow
	suite.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &rows))
	suite.Require().Len(rows, 3)
	suite.Equal("2024-01-01", rows[0].Date)
	suite.InDelta(100, rows[0].Close, 1e-9)
	suite.InDelta(25, rows[0].RSI, 1e-9)
}

func (suite *ServerTestSuite) TestMethodNotAllowed() {
	recorder := suite.request(http.MethodGet, "/api/backtest", nil)
	suite.Equal(http.StatusMethodNotAllowed, recorder.Code)
}
