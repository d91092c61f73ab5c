package engine

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/MantraGGR/nvidiaTradingBotWGUI/internal/types"
)

type MetricsTestSuite struct {
	suite.Suite
}

func TestMetricsSuite(t *testing.T) {
	suite.Run(t, new(MetricsTestSuite))
}

func (suite *MetricsTestSuite) curve(values ...float64) []types.EquityPoint {
	points := make([]types.EquityPoint, 0, len(values))
	for i, v := range values {
		points = append(points, types.EquityPoint{
			Date:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
			Value: v,
		})
	}

	return points
}

func (suite *MetricsTestSuite) TestDegenerateCurves() {
	tests := []struct {
		name  string
		curve []types.EquityPoint
	}{
		{name: "nil curve", curve: nil},
		{name: "empty curve", curve: suite.curve()},
		{name: "single point", curve: suite.curve(100000)},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			metrics := ComputeMetrics(tc.curve)

			suite.Zero(metrics.TotalReturn)
			suite.Zero(metrics.AnnualizedReturn)
			suite.Zero(metrics.MaxDrawdown)
			suite.Zero(metrics.SharpeRatio)
			suite.True(metrics.IsSharpeDefined())
		})
	}
}

func (suite *MetricsTestSuite) TestTotalAndAnnualizedReturn() {
	metrics := ComputeMetrics(suite.curve(100, 102, 105, 110))

	suite.InDelta(0.10, metrics.TotalReturn, 1e-9)
	suite.InDelta(math.Pow(1.10, 252.0/4.0)-1, metrics.AnnualizedReturn, 1e-9)
}

func (suite *MetricsTestSuite) TestMaxDrawdown() {
	tests := []struct {
		name  string
		curve []types.EquityPoint
		want  float64
	}{
		{
			name:  "monotonic rise has no drawdown",
			curve: suite.curve(100, 110, 120),
			want:  0,
		},
		{
			name:  "drop from peak",
			curve: suite.curve(100, 120, 90, 100),
			want:  (90.0 - 120.0) / 120.0,
		},
		{
			name:  "later peak does not erase earlier drawdown",
			curve: suite.curve(100, 80, 200, 190),
			want:  -0.20,
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			metrics := ComputeMetrics(tc.curve)
			suite.InDelta(tc.want, metrics.MaxDrawdown, 1e-9)
		})
	}
}

func (suite *MetricsTestSuite) TestSharpeRatio() {
	// Daily returns 0.10 and -0.05 give a hand-checkable mean and sample
	// deviation.
	metrics := ComputeMetrics(suite.curve(100, 110, 104.5))

	returns := []float64{0.10, -0.05}
	m := (returns[0] + returns[1]) / 2
	sd := math.Sqrt(((returns[0]-m)*(returns[0]-m) + (returns[1]-m)*(returns[1]-m)) / 1.0)

	suite.InDelta(m/sd*math.Sqrt(252), metrics.SharpeRatio, 1e-9)
	suite.True(metrics.IsSharpeDefined())
}

func (suite *MetricsTestSuite) TestFlatCurveSharpeIsUndefined() {
	metrics := ComputeMetrics(suite.curve(100000, 100000, 100000))

	suite.Zero(metrics.TotalReturn)
	suite.Zero(metrics.AnnualizedReturn)
	suite.Zero(metrics.MaxDrawdown)
	suite.True(math.IsNaN(metrics.SharpeRatio))
	suite.False(metrics.IsSharpeDefined())
}

func (suite *MetricsTestSuite) TestTwoPointCurveSharpeIsUndefined() {
	// One daily return has no sample deviation.
	metrics := ComputeMetrics(suite.curve(100, 110))

	suite.InDelta(0.10, metrics.TotalReturn, 1e-9)
	suite.False(metrics.IsSharpeDefined())
}

func (suite *MetricsTestSuite) TestConstantPositiveReturnsSharpeIsInfinite() {
	// Identical nonzero returns have zero deviation but a nonzero mean.
	metrics := ComputeMetrics(suite.curve(100, 110, 121))

	suite.True(math.IsInf(metrics.SharpeRatio, 1))
	suite.False(metrics.IsSharpeDefined())
}
