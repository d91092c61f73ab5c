// Package feed loads and validates the indicator feed consumed by the
// backtest engine: a chronological series of daily observations with
// precomputed indicator columns.
package feed

import (
	"math"

	"github.com/MantraGGR/nvidiaTradingBotWGUI/internal/types"
	"github.com/MantraGGR/nvidiaTradingBotWGUI/pkg/errors"
)

// Source provides a complete indicator feed. Implementations load the whole
// series eagerly; the engine operates on the slice, not the source.
type Source interface {
	// Initialize points the source at a dataset.
	Initialize(path string) error
	// Load returns the validated feed in chronological order.
	Load() ([]types.Observation, error)
	// Close releases the source's resources.
	Close() error
}

// Validate checks that a feed is usable by the engine: non-empty, strictly
// increasing unique dates, finite price and indicator values.
func Validate(feed []types.Observation) error {
	if len(feed) == 0 {
		return errors.New(errors.ErrCodeFeedEmpty, "feed contains no observations")
	}

	for i, obs := range feed {
		if i > 0 {
			prev := feed[i-1].Date

			if obs.Date.Equal(prev) {
				return errors.Newf(errors.ErrCodeFeedDuplicateDate,
					"duplicate observation date %s", obs.Date.Format("2006-01-02"))
			}

			if obs.Date.Before(prev) {
				return errors.Newf(errors.ErrCodeFeedNotSorted,
					"observation date %s precedes %s",
					obs.Date.Format("2006-01-02"), prev.Format("2006-01-02"))
			}
		}

		for _, v := range []float64{obs.Open, obs.High, obs.Low, obs.Close, obs.AdjClose,
			obs.MA10, obs.MA50, obs.RSI, obs.BBUpper, obs.BBLower} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return errors.Newf(errors.ErrCodeFeedMissingIndicator,
					"non-finite value on %s", obs.Date.Format("2006-01-02"))
			}
		}
	}

	return nil
}

// SliceSource wraps an in-memory feed as a Source. It is primarily useful for
// tests and for callers that assemble observations themselves.
type SliceSource struct {
	observations []types.Observation
}

// NewSliceSource creates a source over the given observations.
func NewSliceSource(observations []types.Observation) *SliceSource {
	return &SliceSource{observations: observations}
}

// Initialize implements Source. Slice sources carry their data already, so
// the path is ignored.
func (s *SliceSource) Initialize(path string) error {
	return nil
}

// Load implements Source.
func (s *SliceSource) Load() ([]types.Observation, error) {
	if err := Validate(s.observations); err != nil {
		return nil, err
	}

	return s.observations, nil
}

// Close implements Source.
func (s *SliceSource) Close() error {
	return nil
}
