package feed

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/MantraGGR/nvidiaTradingBotWGUI/internal/types"
	"github.com/MantraGGR/nvidiaTradingBotWGUI/pkg/errors"
)

type FeedTestSuite struct {
	suite.Suite
}

func TestFeedSuite(t *testing.T) {
	suite.Run(t, new(FeedTestSuite))
}

func (suite *FeedTestSuite) observation(day int) types.Observation {
	return types.Observation{
		Date:  time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC),
		Close: 100,
	}
}

func (suite *FeedTestSuite) TestValidate() {
	tests := []struct {
		name     string
		feed     []types.Observation
		wantCode errors.ErrorCode
	}{
		{
			name:     "empty feed",
			feed:     nil,
			wantCode: errors.ErrCodeFeedEmpty,
		},
		{
			name:     "single observation",
			feed:     []types.Observation{suite.observation(1)},
			wantCode: 0,
		},
		{
			name: "sorted feed",
			feed: []types.Observation{
				suite.observation(1),
				suite.observation(2),
				suite.observation(3),
			},
			wantCode: 0,
		},
		{
			name: "duplicate date",
			feed: []types.Observation{
				suite.observation(1),
				suite.observation(1),
			},
			wantCode: errors.ErrCodeFeedDuplicateDate,
		},
		{
			name: "out of order",
			feed: []types.Observation{
				suite.observation(2),
				suite.observation(1),
			},
			wantCode: errors.ErrCodeFeedNotSorted,
		},
		{
			name: "non-finite indicator",
			feed: func() []types.Observation {
				obs := suite.observation(1)
				obs.RSI = math.NaN()

				return []types.Observation{obs}
			}(),
			wantCode: errors.ErrCodeFeedMissingIndicator,
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			err := Validate(tc.feed)

			if tc.wantCode == 0 {
				suite.NoError(err)
				return
			}

			suite.Require().Error(err)
			suite.True(errors.HasCode(err, tc.wantCode))
		})
	}
}

func (suite *FeedTestSuite) TestSliceSource() {
	observations := []types.Observation{
		suite.observation(1),
		suite.observation(2),
	}

	source := NewSliceSource(observations)
	suite.NoError(source.Initialize(""))

	loaded, err := source.Load()
	suite.Require().NoError(err)
	suite.Equal(observations, loaded)
	suite.NoError(source.Close())
}

func (suite *FeedTestSuite) TestSliceSourceRejectsInvalidFeed() {
	source := NewSliceSource(nil)

	_, err := source.Load()

	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeFeedEmpty))
}
