package indicator

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/MantraGGR/nvidiaTradingBotWGUI/internal/types"
	"github.com/MantraGGR/nvidiaTradingBotWGUI/pkg/errors"
)

type FeaturesTestSuite struct {
	suite.Suite
}

func TestFeaturesSuite(t *testing.T) {
	suite.Run(t, new(FeaturesTestSuite))
}

// bars builds a chronological series with the given adjusted closes.
func (suite *FeaturesTestSuite) bars(adjCloses ...float64) []types.Bar {
	bars := make([]types.Bar, 0, len(adjCloses))
	for i, v := range adjCloses {
		bars = append(bars, types.Bar{
			Date:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
			Open:     v,
			High:     v,
			Low:      v,
			Close:    v,
			AdjClose: v,
			Volume:   1000,
		})
	}

	return bars
}

func (suite *FeaturesTestSuite) rising(n int) []types.Bar {
	values := make([]float64, n)
	for i := range values {
		values[i] = float64(i + 1)
	}

	return suite.bars(values...)
}

func (suite *FeaturesTestSuite) TestBuildObservationsTooFewBars() {
	_, err := BuildObservations(suite.rising(LongMAPeriod - 1))

	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeFeedEmpty))
}

func (suite *FeaturesTestSuite) TestBuildObservationsDropsWarmup() {
	bars := suite.rising(60)

	observations, err := BuildObservations(bars)
	suite.Require().NoError(err)

	suite.Len(observations, 60-(LongMAPeriod-1))
	suite.True(observations[0].Date.Equal(bars[LongMAPeriod-1].Date))
}

func (suite *FeaturesTestSuite) TestBuildObservationsRisingSeries() {
	observations, err := BuildObservations(suite.rising(60))
	suite.Require().NoError(err)

	first := observations[0]

	// Day 50 of the series 1..60: the windows are 41..50, 1..50 and 31..50.
	suite.InDelta(45.5, first.MA10, 1e-9)
	suite.InDelta(25.5, first.MA50, 1e-9)

	// A strictly rising series has no losses.
	suite.InDelta(100, first.RSI, 1e-9)

	middle := 40.5
	sigma := math.Sqrt(399.0 / 12.0)
	suite.InDelta(middle+BollingerWidth*sigma, first.BBUpper, 1e-9)
	suite.InDelta(middle-BollingerWidth*sigma, first.BBLower, 1e-9)
}

func (suite *FeaturesTestSuite) TestBuildObservationsCarriesBarColumns() {
	bars := suite.rising(60)
	bars[55].Volume = 9999

	observations, err := BuildObservations(bars)
	suite.Require().NoError(err)

	obs := observations[55-(LongMAPeriod-1)]
	suite.True(obs.Date.Equal(bars[55].Date))
	suite.Equal(int64(9999), obs.Volume)
	suite.InDelta(56, obs.Close, 1e-9)
}

func (suite *FeaturesTestSuite) TestRelativeStrengthIndex() {
	// Alternating +2/-1 deltas give avg gain 1.0 and avg loss 0.5 over any
	// full 14-day window.
	values := []float64{100}
	for i := 0; i < 20; i++ {
		if i%2 == 0 {
			values = append(values, values[len(values)-1]+2)
		} else {
			values = append(values, values[len(values)-1]-1)
		}
	}

	rsi := relativeStrengthIndex(values, 14)

	// rs = 1.0/0.5, rsi = 100 - 100/(1+2).
	suite.InDelta(100-100.0/3.0, rsi[14], 1e-9)

	// Entries before the window fills stay zero.
	for i := 0; i < 14; i++ {
		suite.Zero(rsi[i])
	}
}

func (suite *FeaturesTestSuite) TestRelativeStrengthIndexFallingSeries() {
	values := make([]float64, 30)
	for i := range values {
		values[i] = float64(100 - i)
	}

	rsi := relativeStrengthIndex(values, 14)

	// A strictly falling series has no gains.
	suite.InDelta(0, rsi[len(rsi)-1], 1e-9)
}
